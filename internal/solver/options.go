package solver

import (
	"log/slog"

	"github.com/go-ricrob/amphipod/internal/burrow"
)

// Defaults used by DefaultOptions.
const (
	DefaultPartitions    = 64
	DefaultProgressEvery = 250_000
)

// Options configures a Solver.
//
// MaxExpansions   – stop with ErrExhausted after this many expansions (0: no limit).
// Partitions      – number of index partitions of the state interner.
// ProgressEvery   – log a progress record every n expansions (0: never).
// Logger          – structured logger; discards by default.
// OnExpand        – called for every expanded (non-stale) state with its final cost.
type Options struct {
	MaxExpansions int
	Partitions    int
	ProgressEvery int
	Logger        *slog.Logger
	OnExpand      func(cost int, s burrow.State)
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// DefaultOptions returns the options used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Partitions:    DefaultPartitions,
		ProgressEvery: DefaultProgressEvery,
		Logger:        slog.New(slog.DiscardHandler),
	}
}

// WithMaxExpansions caps the number of expanded states. n must not be negative.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadLimit.Error())
		}
		o.MaxExpansions = n
	}
}

// WithPartitions sets the number of interner index partitions. n must be positive.
func WithPartitions(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadLimit.Error())
		}
		o.Partitions = n
	}
}

// WithProgressEvery sets the progress logging interval; 0 disables progress records.
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadLimit.Error())
		}
		o.ProgressEvery = n
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithOnExpand registers a hook called for every expanded state.
func WithOnExpand(fn func(cost int, s burrow.State)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}
