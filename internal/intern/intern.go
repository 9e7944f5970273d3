// Package intern provides a table assigning dense integer ids to values.
package intern

import "hash/maphash"

// Hashable is the constraint for values stored in a Table.
type Hashable interface {
	comparable
	Hash(seed maphash.Seed) uint64
}

// ID identifies an interned value. Ids are dense, starting at 0.
// A Table holds at most MaxLen values.
type ID uint32

// MaxLen is the maximal number of values a Table can hold.
const MaxLen uint64 = 1 << 32

// limit is MaxLen; tests lower it.
var limit = MaxLen

// Table is a bidirectional value/id table.
//
// Values are kept in insertion order in one arena slice; the value to id
// index is split into partitions selected by hash so that growing the table
// rehashes one small map at a time. A Table only grows and is not safe for
// concurrent use.
type Table[K Hashable] struct {
	numPart uint64
	seed    maphash.Seed
	parts   []map[K]ID
	values  []K
}

// New returns an empty table with numPart index partitions (at least one).
func New[K Hashable](numPart int) *Table[K] {
	if numPart < 1 {
		numPart = 1
	}
	t := &Table[K]{
		numPart: uint64(numPart),
		seed:    maphash.MakeSeed(),
		parts:   make([]map[K]ID, numPart),
	}
	for i := range t.parts {
		t.parts[i] = make(map[K]ID)
	}
	return t
}

func (t *Table[K]) part(k K) map[K]ID { return t.parts[k.Hash(t.seed)%t.numPart] }

// Intern returns the id of k, allocating the next free id if k was not seen
// before. added reports whether a new id was allocated.
// It panics if the table already holds MaxLen values.
func (t *Table[K]) Intern(k K) (id ID, added bool) {
	part := t.part(k)
	if id, ok := part[k]; ok {
		return id, false
	}
	if uint64(len(t.values)) >= limit {
		panic("intern: table full")
	}
	id = ID(len(t.values))
	part[k] = id
	t.values = append(t.values, k)
	return id, true
}

// Lookup returns the id of k without allocating one.
func (t *Table[K]) Lookup(k K) (ID, bool) {
	id, ok := t.part(k)[k]
	return id, ok
}

// Value returns the value interned as id. It panics for ids not handed out by t.
func (t *Table[K]) Value(id ID) K { return t.values[id] }

// Len returns the number of interned values.
func (t *Table[K]) Len() int { return len(t.values) }
