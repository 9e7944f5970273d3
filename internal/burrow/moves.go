package burrow

// Move is a single amphipod relocation: the energy it costs and the resulting configuration.
type Move struct {
	Cost int
	Next State
}

// AppendMoves appends all legal moves from s to dst and returns the extended slice.
//
// An amphipod either leaves a room that still holds a foreign kind for a free
// hallway cell, or walks from the hallway into its home room once that room
// holds its own kind only. Rooms are never entered from another room directly.
func (l Layout) AppendMoves(dst []Move, s State) []Move {
	dst = l.appendExits(dst, s)
	return l.appendEnters(dst, s)
}

func (l Layout) appendExits(dst []Move, s State) []Move {
	hallLen := l.HallLen()
	for room := 0; room < l.rooms; room++ {
		if l.Settled(s, room) {
			continue
		}
		up := l.depth - s.Len(room) + 1
		next, k := s.Pop(room)
		entrance := l.Entrance(room)
		cost := k.StepCost()

		for pos := entrance + 1; pos < hallLen && s.Hall(pos) == None; pos++ {
			if !l.IsEntrance(pos) {
				dst = append(dst, Move{Cost: (up + pos - entrance) * cost, Next: next.SetHall(pos, k)})
			}
		}
		for pos := entrance - 1; pos >= 0 && s.Hall(pos) == None; pos-- {
			if !l.IsEntrance(pos) {
				dst = append(dst, Move{Cost: (up + entrance - pos) * cost, Next: next.SetHall(pos, k)})
			}
		}
	}
	return dst
}

func (l Layout) appendEnters(dst []Move, s State) []Move {
	for pos := 0; pos < l.HallLen(); pos++ {
		k := s.Hall(pos)
		if k == None {
			continue
		}
		room := k.Home()
		if room >= l.rooms || !l.Settled(s, room) {
			continue
		}
		n := s.Len(room)
		if n >= l.depth {
			continue
		}
		entrance := l.Entrance(room)
		if !s.hallClear(pos, entrance) {
			continue
		}
		cost := (abs(entrance-pos) + l.depth - n) * k.StepCost()
		dst = append(dst, Move{Cost: cost, Next: s.SetHall(pos, None).Push(room, k)})
	}
	return dst
}

// hallClear reports whether all hallway cells after from up to and including to are empty.
func (s State) hallClear(from, to int) bool {
	step := 1
	if to < from {
		step = -1
	}
	for pos := from + step; pos != to+step; pos += step {
		if s.Hall(pos) != None {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
