package burrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kinds converts a glyph string into kinds, '.' being None.
func kinds(t *testing.T, s string) []Kind {
	t.Helper()
	ks := make([]Kind, 0, len(s))
	for _, r := range s {
		if r == '.' {
			ks = append(ks, None)
			continue
		}
		k, ok := KindOf(r)
		require.True(t, ok, "glyph %q", r)
		ks = append(ks, k)
	}
	return ks
}

// mustState builds a state from a hallway string and room stacks given deepest first.
func mustState(t *testing.T, l Layout, hall string, rooms ...string) State {
	t.Helper()
	stacks := make([][]Kind, len(rooms))
	for i, r := range rooms {
		stacks[i] = kinds(t, r)
	}
	s, err := NewState(l, kinds(t, hall), stacks)
	require.NoError(t, err)
	return s
}

func mustLayout(t *testing.T, rooms, depth int) Layout {
	t.Helper()
	l, err := NewLayout(rooms, depth)
	require.NoError(t, err)
	return l
}

func TestKind(t *testing.T) {
	tests := []struct {
		kind     Kind
		glyph    rune
		stepCost int
		home     int
	}{
		{Amber, 'A', 1, 0},
		{Bronze, 'B', 10, 1},
		{Copper, 'C', 100, 2},
		{Desert, 'D', 1000, 3},
	}
	for _, test := range tests {
		assert.Equal(t, test.glyph, test.kind.Rune())
		assert.Equal(t, test.stepCost, test.kind.StepCost())
		assert.Equal(t, test.home, test.kind.Home())
		k, ok := KindOf(test.glyph)
		assert.True(t, ok)
		assert.Equal(t, test.kind, k)
	}
	_, ok := KindOf('E')
	assert.False(t, ok)
	assert.Equal(t, '.', None.Rune())
	assert.Equal(t, 0, None.StepCost())
}

func TestNewLayout(t *testing.T) {
	for _, test := range []struct{ rooms, depth int }{{0, 2}, {5, 2}, {4, 0}, {4, MaxDepth + 1}} {
		_, err := NewLayout(test.rooms, test.depth)
		assert.ErrorIs(t, err, ErrLayout, "rooms %d depth %d", test.rooms, test.depth)
	}

	l := mustLayout(t, 4, 2)
	assert.Equal(t, 11, l.HallLen())
	assert.Equal(t, []int{2, 4, 6, 8}, []int{l.Entrance(0), l.Entrance(1), l.Entrance(2), l.Entrance(3)})
	for pos := 0; pos < l.HallLen(); pos++ {
		want := pos == 2 || pos == 4 || pos == 6 || pos == 8
		assert.Equal(t, want, l.IsEntrance(pos), "pos %d", pos)
	}

	l = mustLayout(t, 2, 2)
	assert.Equal(t, 7, l.HallLen())
	assert.False(t, l.IsEntrance(6))
}

func TestNewStateRejectsBrokenInvariants(t *testing.T) {
	l := mustLayout(t, 2, 2)
	tests := []struct {
		name  string
		hall  []Kind
		rooms [][]Kind
	}{
		{"short hallway", make([]Kind, 5), [][]Kind{{Amber}, {Bronze}}},
		{"missing room", make([]Kind, 7), [][]Kind{{Amber}}},
		{"overfull room", make([]Kind, 7), [][]Kind{{Amber, Amber, Bronze}, {Bronze}}},
		{"gap", make([]Kind, 7), [][]Kind{{None, Amber}, {Bronze}}},
		{"entrance", []Kind{None, None, Amber, None, None, None, None}, [][]Kind{{Amber}, {Bronze, Bronze}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewState(l, test.hall, test.rooms)
			assert.ErrorIs(t, err, ErrState)
		})
	}
}

func TestStateStack(t *testing.T) {
	l := mustLayout(t, 4, 4)
	s := mustState(t, l, "...........", "AB", "", "DDD", "")

	assert.Equal(t, 2, s.Len(0))
	top, ok := s.Top(0)
	assert.True(t, ok)
	assert.Equal(t, Bronze, top)
	_, ok = s.Top(1)
	assert.False(t, ok)

	next, k := s.Pop(0)
	assert.Equal(t, Bronze, k)
	assert.Equal(t, 1, next.Len(0))
	assert.Equal(t, 2, s.Len(0), "pop must not modify the receiver")

	next = next.Push(1, Bronze)
	assert.Equal(t, Bronze, next.Slot(1, 0))
	assert.NoError(t, l.Validate(next))
}

func TestGoal(t *testing.T) {
	l := mustLayout(t, 4, 4)
	goal := l.Goal()
	require.NoError(t, l.Validate(goal))
	for room := 0; room < l.Rooms(); room++ {
		assert.Equal(t, 4, goal.Len(room))
		assert.True(t, l.Settled(goal, room))
	}
	assert.Empty(t, l.AppendMoves(nil, goal))
	assert.Equal(t, mustState(t, l, "...........", "AAAA", "BBBB", "CCCC", "DDDD"), goal)
}

func TestMovesFromReferenceStart(t *testing.T) {
	l := mustLayout(t, 4, 2)
	s := mustState(t, l, "...........", "AB", "DC", "CB", "AD")

	moves := l.AppendMoves(nil, s)
	// 4 unsettled rooms times 7 stop cells, nobody can enter a room yet.
	assert.Len(t, moves, 28)

	want := mustState(t, l, "...B.......", "AB", "DC", "C", "AD")
	found := false
	for _, m := range moves {
		assert.Positive(t, m.Cost)
		assert.NoError(t, l.Validate(m.Next))
		if m.Next == want {
			found = true
			assert.Equal(t, 40, m.Cost)
		}
	}
	assert.True(t, found)
}

func TestSettledRoomsProduceNoExits(t *testing.T) {
	l := mustLayout(t, 4, 4)
	// rooms 0 and 2 are settled (partially filled), rooms 1 and 3 are not.
	s := mustState(t, l, "B.........C", "AA", "DB", "CCC", "AADD")

	for _, m := range l.AppendMoves(nil, s) {
		assert.Equal(t, s.Len(0), m.Next.Len(0), "room 0 must stay frozen")
		assert.GreaterOrEqual(t, m.Next.Len(2), s.Len(2), "room 2 must not be left")
	}

	empty := mustState(t, l, "A.........B", "", "", "", "")
	for _, m := range l.AppendMoves(nil, empty) {
		for room := 0; room < l.Rooms(); room++ {
			assert.GreaterOrEqual(t, m.Next.Len(room), empty.Len(room))
		}
	}
}

func TestEnterMoves(t *testing.T) {
	l := mustLayout(t, 4, 4)
	s := mustState(t, l, "C.........B", "AAAA", "B", "CC", "DDD")

	moves := l.AppendMoves(nil, s)
	var enters []Move
	for _, m := range moves {
		if m.Next.Hall(0) == None || m.Next.Hall(10) == None {
			enters = append(enters, m)
		}
	}
	require.Len(t, enters, 2)

	for _, m := range enters {
		switch {
		case m.Next.Hall(0) == None:
			// C walks 6 cells to the entrance of room 2 and two steps down to slot 2.
			assert.Equal(t, 3, m.Next.Len(2))
			assert.Equal(t, Copper, m.Next.Slot(2, 2))
			assert.Equal(t, (6+2)*100, m.Cost)
		case m.Next.Hall(10) == None:
			// B lands on the deepest empty slot of room 1, directly on top of the other B.
			assert.Equal(t, 2, m.Next.Len(1))
			assert.Equal(t, Bronze, m.Next.Slot(1, 1))
			assert.Equal(t, (6+3)*10, m.Cost)
		}
	}
}

func TestEnterBlockedByForeignOrHallway(t *testing.T) {
	l := mustLayout(t, 4, 2)

	// room 1 holds a foreign D, so B must wait.
	s := mustState(t, l, "B..........", "AA", "D", "CC", "BD")
	for _, m := range l.AppendMoves(nil, s) {
		assert.NotEqual(t, None, m.Next.Hall(0), "B must not enter an unsettled room")
	}

	// A at 3 blocks B at 1 from reaching room 1.
	s = mustState(t, l, ".B.A.......", "A", "B", "CC", "DD")
	for _, m := range l.AppendMoves(nil, s) {
		assert.NotEqual(t, None, m.Next.Hall(1), "B must not walk through A")
	}
}

func TestExitsStopAtOccupiedHallway(t *testing.T) {
	l := mustLayout(t, 2, 2)
	s := mustState(t, l, ".....A.", "BA", "A")

	moves := l.AppendMoves(nil, s)
	// both rooms can reach cells 0, 1 and 3 only.
	assert.Len(t, moves, 6)
	for _, m := range moves {
		assert.Equal(t, Amber, m.Next.Hall(5))
		assert.Equal(t, None, m.Next.Hall(6), "exit must not pass the A at 5")
	}
}
