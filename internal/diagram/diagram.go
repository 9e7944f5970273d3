// Package diagram reads and writes burrow diagrams:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// '#' and blanks are walls, '.' is open floor and the letters A to D are
// amphipods. The second line is the hallway, every following line up to the
// closing wall is one level of the rooms, shallowest first.
package diagram

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/go-ricrob/amphipod/internal/burrow"
)

var (
	// ErrGlyph is returned for symbols that are not part of the diagram alphabet.
	ErrGlyph = errors.New("diagram: unknown glyph")
	// ErrShape is returned if the diagram does not have the burrow structure.
	ErrShape = errors.New("diagram: malformed burrow")
	// ErrPieces is returned if the amphipods cannot fill every room with its home kind.
	ErrPieces = errors.New("diagram: unbalanced amphipods")
)

// DefaultUnfoldRows are the room levels inserted by Unfold if none are given.
var DefaultUnfoldRows = []string{"#D#C#B#A#", "#D#B#A#C#"}

// ParseString parses a diagram held in a string.
func ParseString(s string) (burrow.Layout, burrow.State, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a diagram and returns the burrow layout and configuration it shows.
func Parse(r io.Reader) (burrow.Layout, burrow.State, error) {
	var state burrow.State

	lines, err := readLines(r)
	if err != nil {
		return burrow.Layout{}, state, err
	}
	if len(lines) < 4 {
		return burrow.Layout{}, state, fmt.Errorf("%w: %d lines, want at least 4", ErrShape, len(lines))
	}
	g := make(grid, len(lines))
	for i, line := range lines {
		g[i] = []rune(line)
	}
	if err := g.check(); err != nil {
		return burrow.Layout{}, state, err
	}

	layout, err := g.layout()
	if err != nil {
		return burrow.Layout{}, state, err
	}
	hall, err := g.hall(layout)
	if err != nil {
		return layout, state, err
	}
	rooms, err := g.rooms(layout)
	if err != nil {
		return layout, state, err
	}
	if err := balanced(layout, hall, rooms); err != nil {
		return layout, state, err
	}
	state, err = burrow.NewState(layout, hall, rooms)
	if err != nil {
		return layout, state, fmt.Errorf("%w: %w", ErrShape, err)
	}
	return layout, state, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("diagram: read: %w", err)
	}
	return lines, nil
}

func (g grid) wallOnly(row int) bool {
	for _, r := range g[row] {
		if c, _, _ := classify(r); c != wall {
			return false
		}
	}
	return true
}

// layout derives the structural constants from the hallway width and the number of room levels.
func (g grid) layout() (burrow.Layout, error) {
	if !g.wallOnly(0) {
		return burrow.Layout{}, fmt.Errorf("%w: line 1 must be a wall", ErrShape)
	}
	last := len(g) - 1
	if !g.wallOnly(last) {
		return burrow.Layout{}, fmt.Errorf("%w: line %d must be a wall", ErrShape, last+1)
	}

	hall := g[1]
	if len(hall) < 2 || hall[0] != wallGlyph || hall[len(hall)-1] != wallGlyph {
		return burrow.Layout{}, fmt.Errorf("%w: hallway must be enclosed by walls", ErrShape)
	}
	hallLen := len(hall) - 2
	if hallLen < 5 || hallLen%2 == 0 {
		return burrow.Layout{}, fmt.Errorf("%w: hallway length %d", ErrShape, hallLen)
	}

	layout, err := burrow.NewLayout((hallLen-3)/2, len(g)-3)
	if err != nil {
		return burrow.Layout{}, fmt.Errorf("%w: %w", ErrShape, err)
	}
	return layout, nil
}

func (g grid) hall(l burrow.Layout) ([]burrow.Kind, error) {
	hall := make([]burrow.Kind, l.HallLen())
	for pos := range hall {
		c, k, _ := classify(g.at(1, pos+1))
		switch {
		case c == wall:
			return nil, fmt.Errorf("%w: wall inside the hallway at column %d", ErrShape, pos+2)
		case c == piece && l.IsEntrance(pos):
			return nil, fmt.Errorf("%w: %s stands on the entrance at column %d", ErrShape, k, pos+2)
		}
		hall[pos] = k
	}
	return hall, nil
}

// rooms returns the room stacks deepest amphipod first.
func (g grid) rooms(l burrow.Layout) ([][]burrow.Kind, error) {
	rooms := make([][]burrow.Kind, l.Rooms())
	for level := 0; level < l.Depth(); level++ {
		row := level + 2
		width := max(len(g[row]), l.HallLen()+2)
		for col := 0; col < width; col++ {
			c, _, _ := classify(g.at(row, col))
			isRoom := col >= 3 && col <= 2*l.Rooms()+1 && col%2 == 1
			if isRoom && c == wall {
				return nil, fmt.Errorf("%w: wall inside room %d at line %d", ErrShape, (col-3)/2, row+1)
			}
			if !isRoom && c != wall {
				return nil, fmt.Errorf("%w: open cell outside the rooms at line %d column %d", ErrShape, row+1, col+1)
			}
		}
	}

	for room := range rooms {
		col := l.Entrance(room) + 1
		for level := l.Depth() - 1; level >= 0; level-- {
			c, k, _ := classify(g.at(level+2, col))
			if c == piece {
				if len(rooms[room]) != l.Depth()-1-level {
					return nil, fmt.Errorf("%w: %s floats above an empty slot in room %d", ErrShape, k, room)
				}
				rooms[room] = append(rooms[room], k)
			}
		}
	}
	return rooms, nil
}

// balanced checks that every room can be filled with exactly its home kind.
func balanced(l burrow.Layout, hall []burrow.Kind, rooms [][]burrow.Kind) error {
	counts := make(map[burrow.Kind]int)
	for _, k := range hall {
		if k != burrow.None {
			counts[k]++
		}
	}
	for _, stack := range rooms {
		for _, k := range stack {
			counts[k]++
		}
	}
	for _, k := range burrow.Kinds {
		want := 0
		if k.Home() < l.Rooms() {
			want = l.Depth()
		}
		if counts[k] != want {
			return fmt.Errorf("%w: %d %s, want %d", ErrPieces, counts[k], k, want)
		}
	}
	return nil
}

// Unfold inserts room levels right below the first room level of a diagram.
// Rows are given without indentation, e.g. "#D#C#B#A#"; nil means DefaultUnfoldRows.
func Unfold(text string, rows []string) (string, error) {
	if rows == nil {
		rows = DefaultUnfoldRows
	}
	lines, err := readLines(strings.NewReader(text))
	if err != nil {
		return "", err
	}
	if len(lines) < 4 {
		return "", fmt.Errorf("%w: %d lines, want at least 4", ErrShape, len(lines))
	}

	levels := make([]string, len(rows))
	for i, row := range rows {
		levels[i] = "  " + strings.TrimSpace(row)
	}
	lines = slices.Insert(lines, 3, levels...)
	return strings.Join(lines, "\n") + "\n", nil
}

// Format renders s as a diagram. The result parses back into l and s.
func Format(l burrow.Layout, s burrow.State) string {
	var b strings.Builder
	width := l.HallLen() + 2

	b.WriteString(strings.Repeat(string(wallGlyph), width))
	b.WriteByte('\n')

	b.WriteRune(wallGlyph)
	for pos := 0; pos < l.HallLen(); pos++ {
		b.WriteRune(s.Hall(pos).Rune())
	}
	b.WriteString("#\n")

	for level := 0; level < l.Depth(); level++ {
		if level == 0 {
			b.WriteString("###")
		} else {
			b.WriteString("  #")
		}
		for room := 0; room < l.Rooms(); room++ {
			b.WriteRune(s.Slot(room, l.Depth()-1-level).Rune())
			b.WriteRune(wallGlyph)
		}
		if level == 0 {
			b.WriteString("##")
		}
		b.WriteByte('\n')
	}

	b.WriteString("  ")
	b.WriteString(strings.Repeat(string(wallGlyph), width-4))
	b.WriteByte('\n')
	return b.String()
}
