// Package burrow provides the amphipod burrow model: the structural layout,
// a packed configuration value and the generator of legal moves.
package burrow

import (
	"errors"
	"fmt"
)

var (
	// ErrLayout is returned for room counts or depths the packed State cannot hold.
	ErrLayout = errors.New("burrow: invalid layout")
	// ErrState is returned for configurations that break the burrow invariants.
	ErrState = errors.New("burrow: invalid state")
)

// Layout holds the structural constants of a burrow.
//
// Room r has its entrance at hallway position 2r+2 and is the home of
// Kind(r+1). The hallway has two cells left of the first entrance, one cell
// between neighboring entrances and two cells right of the last entrance.
type Layout struct {
	rooms, depth int
}

// NewLayout returns a layout with the given number of rooms of the given depth.
func NewLayout(rooms, depth int) (Layout, error) {
	if rooms < 1 || rooms > MaxRooms {
		return Layout{}, fmt.Errorf("%w: %d rooms (max %d)", ErrLayout, rooms, MaxRooms)
	}
	if depth < 1 || depth > MaxDepth {
		return Layout{}, fmt.Errorf("%w: room depth %d (max %d)", ErrLayout, depth, MaxDepth)
	}
	return Layout{rooms: rooms, depth: depth}, nil
}

// Rooms returns the number of rooms.
func (l Layout) Rooms() int { return l.rooms }

// Depth returns the room depth.
func (l Layout) Depth() int { return l.depth }

// HallLen returns the number of hallway cells.
func (l Layout) HallLen() int { return 2*l.rooms + 3 }

// Entrance returns the hallway position right above room.
func (l Layout) Entrance(room int) int { return 2*room + 2 }

// IsEntrance reports whether pos is right above a room. Amphipods never stop there.
func (l Layout) IsEntrance(pos int) bool {
	return pos >= 2 && pos <= 2*l.rooms && pos%2 == 0
}

// Home returns the kind room belongs to.
func (l Layout) Home(room int) Kind { return Kind(room + 1) }

// Settled reports whether room holds home kind amphipods only. Empty rooms are settled.
func (l Layout) Settled(s State, room int) bool {
	home := l.Home(room)
	for i := 0; i < l.depth; i++ {
		switch s.Slot(room, i) {
		case None:
			return true
		case home:
		default:
			return false
		}
	}
	return true
}

// Goal returns the sorted configuration: all rooms full with their home kind.
func (l Layout) Goal() State {
	var s State
	for room := 0; room < l.rooms; room++ {
		for i := 0; i < l.depth; i++ {
			s = s.Push(room, l.Home(room))
		}
	}
	return s
}

// NewState builds a configuration of layout l. hall holds one entry per
// hallway cell, rooms one stack per room listed deepest amphipod first.
func NewState(l Layout, hall []Kind, rooms [][]Kind) (State, error) {
	var s State
	if len(hall) != l.HallLen() {
		return s, fmt.Errorf("%w: hallway has %d cells, want %d", ErrState, len(hall), l.HallLen())
	}
	if len(rooms) != l.rooms {
		return s, fmt.Errorf("%w: %d rooms, want %d", ErrState, len(rooms), l.rooms)
	}
	for pos, k := range hall {
		s[pos] = byte(k)
	}
	for room, stack := range rooms {
		if len(stack) > l.depth {
			return s, fmt.Errorf("%w: room %d holds %d amphipods, depth is %d", ErrState, room, len(stack), l.depth)
		}
		for i, k := range stack {
			if k == None {
				return s, fmt.Errorf("%w: room %d has a gap at slot %d", ErrState, room, i)
			}
			s[slot(room, i)] = byte(k)
		}
	}
	return s, l.Validate(s)
}

// Validate checks s against the invariants of layout l.
func (l Layout) Validate(s State) error {
	for pos := 0; pos < MaxHall; pos++ {
		k := s.Hall(pos)
		if k == None {
			continue
		}
		switch {
		case pos >= l.HallLen():
			return fmt.Errorf("%w: amphipod outside the hallway at %d", ErrState, pos)
		case !k.Valid():
			return fmt.Errorf("%w: unknown kind %d at hallway %d", ErrState, k, pos)
		case l.IsEntrance(pos):
			return fmt.Errorf("%w: %s stops on entrance %d", ErrState, k, pos)
		}
	}
	for room := 0; room < MaxRooms; room++ {
		n := s.Len(room)
		if room >= l.rooms && n > 0 {
			return fmt.Errorf("%w: amphipod in missing room %d", ErrState, room)
		}
		if n > l.depth {
			return fmt.Errorf("%w: room %d holds %d amphipods, depth is %d", ErrState, room, n, l.depth)
		}
		for i := 0; i < MaxDepth; i++ {
			k := s.Slot(room, i)
			if i >= n && k != None {
				return fmt.Errorf("%w: room %d has a gap below slot %d", ErrState, room, i)
			}
			if i < n && !k.Valid() {
				return fmt.Errorf("%w: unknown kind %d in room %d", ErrState, k, room)
			}
		}
	}
	return nil
}
