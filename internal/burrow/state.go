package burrow

import "hash/maphash"

// Capacity of the packed representation.
const (
	MaxRooms = 4
	MaxDepth = 6
	MaxHall  = 2*MaxRooms + 3

	stateLen = MaxHall + MaxRooms*MaxDepth
)

// State is a compressed, comparable representation of a burrow configuration.
//
// The first MaxHall bytes hold the hallway cells, followed by MaxDepth bytes
// per room. Rooms are stacks stored deepest slot first; slots above the top
// of a stack are None.
type State [stateLen]byte

func slot(room, i int) int { return MaxHall + room*MaxDepth + i }

// Hash returns a hash value of s.
func (s State) Hash(seed maphash.Seed) uint64 { return maphash.Bytes(seed, s[:]) }

// Hall returns the amphipod at hallway position pos.
func (s State) Hall(pos int) Kind { return Kind(s[pos]) }

// Slot returns the amphipod at stack index i of room (0 is the deepest slot).
func (s State) Slot(room, i int) Kind { return Kind(s[slot(room, i)]) }

// Len returns the number of amphipods in room.
func (s State) Len(room int) int {
	n := 0
	for n < MaxDepth && s[slot(room, n)] != byte(None) {
		n++
	}
	return n
}

// Top returns the amphipod nearest to the room entrance.
func (s State) Top(room int) (Kind, bool) {
	n := s.Len(room)
	if n == 0 {
		return None, false
	}
	return s.Slot(room, n-1), true
}

// SetHall sets hallway position pos to k and returns the result.
func (s State) SetHall(pos int, k Kind) State { s[pos] = byte(k); return s }

// Push puts k on top of room and returns the result.
func (s State) Push(room int, k Kind) State { s[slot(room, s.Len(room))] = byte(k); return s }

// Pop removes the top amphipod of room and returns the result and the removed kind.
func (s State) Pop(room int) (State, Kind) {
	n := s.Len(room)
	if n == 0 {
		return s, None
	}
	i := slot(room, n-1)
	k := Kind(s[i])
	s[i] = byte(None)
	return s, k
}
