package diagram

import (
	"fmt"

	"github.com/go-ricrob/amphipod/internal/burrow"
)

// Diagram glyphs.
const (
	wallGlyph  = '#'
	blankGlyph = ' '
	floorGlyph = '.'
)

type cell int

const (
	wall cell = iota
	floor
	piece
)

// classify converts a glyph into a cell class and, for pieces, their kind.
func classify(r rune) (cell, burrow.Kind, bool) {
	switch r {
	case wallGlyph, blankGlyph:
		return wall, burrow.None, true
	case floorGlyph:
		return floor, burrow.None, true
	}
	if k, ok := burrow.KindOf(r); ok {
		return piece, k, true
	}
	return wall, burrow.None, false
}

// grid holds the diagram lines. Cells past the end of a line read as blank.
type grid [][]rune

func (g grid) at(row, col int) rune {
	if col >= len(g[row]) {
		return blankGlyph
	}
	return g[row][col]
}

func (g grid) check() error {
	for row, line := range g {
		for col, r := range line {
			if _, _, ok := classify(r); !ok {
				return fmt.Errorf("%w %q at line %d column %d", ErrGlyph, r, row+1, col+1)
			}
		}
	}
	return nil
}
