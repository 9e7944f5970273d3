// Command amphipod computes the least energy needed to sort an amphipod burrow.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/go-ricrob/amphipod/internal/config"
	"github.com/go-ricrob/amphipod/internal/diagram"
	"github.com/go-ricrob/amphipod/internal/solver"
)

var partNames = map[string][]int{
	"1":   {1},
	"2":   {2},
	"all": {1, 2},
}

type flags struct {
	part          string
	configPath    string
	logLevel      string
	maxExpansions int
	stats         bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "amphipod [flags] <diagram file | ->",
		Short: "Compute the least energy needed to sort an amphipod burrow",
		Long: `Reads a burrow diagram and prints the least total energy needed to move
every amphipod into its home room. Part 1 solves the diagram as written,
part 2 first unfolds the rooms with the configured extra levels.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args[0])
		},
	}
	cmd.Flags().StringVarP(&f.part, "part", "p", "all", "puzzle part to solve: 1, 2 or all")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().IntVar(&f.maxExpansions, "max-expansions", 0, "give up after this many expanded states (0: no limit)")
	cmd.Flags().BoolVar(&f.stats, "stats", false, "print search statistics")
	return cmd
}

func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("max-expansions") {
		cfg.Solver.MaxExpansions = f.maxExpansions
	}
	return cfg, cfg.Validate()
}

func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	}
	b, err := os.ReadFile(name)
	return string(b), err
}

func run(cmd *cobra.Command, f flags, input string) error {
	parts, ok := partNames[f.part]
	if !ok {
		return fmt.Errorf("invalid part %q: want 1, 2 or all", f.part)
	}
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	text, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	outcomes, err := solveParts(cmd.Context(), cfg, logger, text, parts)
	if err != nil {
		return err
	}
	return report(cmd.OutOrStdout(), outcomes, f.stats)
}

type outcome struct {
	part   int
	result solver.Result
}

// solveParts solves every part on its own goroutine with its own solver.
func solveParts(ctx context.Context, cfg config.Config, logger *slog.Logger, text string, parts []int) ([]outcome, error) {
	outcomes := make([]outcome, len(parts))
	g, ctx := errgroup.WithContext(ctx)
	for i, part := range parts {
		g.Go(func() error {
			input := text
			if part == 2 {
				var err error
				if input, err = diagram.Unfold(text, cfg.UnfoldRows); err != nil {
					return fmt.Errorf("part %d: %w", part, err)
				}
			}
			l, s, err := diagram.ParseString(input)
			if err != nil {
				return fmt.Errorf("part %d: %w", part, err)
			}
			partLogger := logger.With(slog.Int("part", part))
			partLogger.Debug("solving", slog.String("burrow", diagram.Format(l, s)))

			res, err := solver.New(l, s, cfg.SolverOptions(partLogger)...).Run(ctx)
			if err != nil {
				return fmt.Errorf("part %d: %w", part, err)
			}
			outcomes[i] = outcome{part: part, result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func report(w io.Writer, outcomes []outcome, stats bool) error {
	for _, o := range outcomes {
		if _, err := fmt.Fprintf(w, "part %d: %d\n", o.part, o.result.Cost); err != nil {
			return err
		}
		if !stats {
			continue
		}
		r := o.result
		if _, err := fmt.Fprintf(w, "  %s states, %s expansions, %s stale, %s\n",
			humanize.Comma(int64(r.States)),
			humanize.Comma(int64(r.Expansions)),
			humanize.Comma(int64(r.StalePops)),
			r.Elapsed.Round(time.Millisecond),
		); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
