package burrow

// Kind is an amphipod type. The zero value None marks an empty cell.
type Kind byte

// Amphipod kinds.
const (
	None Kind = iota
	Amber
	Bronze
	Copper
	Desert
)

// Kinds lists all amphipod kinds in home room order.
var Kinds = []Kind{Amber, Bronze, Copper, Desert}

var stepCosts = [...]int{None: 0, Amber: 1, Bronze: 10, Copper: 100, Desert: 1000}

// StepCost returns the energy needed to move an amphipod of kind k by one cell.
func (k Kind) StepCost() int {
	if int(k) >= len(stepCosts) {
		return 0
	}
	return stepCosts[k]
}

// Home returns the index of the room kind k belongs to, or -1 for None.
func (k Kind) Home() int { return int(k) - 1 }

// Valid reports whether k is one of the amphipod kinds.
func (k Kind) Valid() bool { return k >= Amber && k <= Desert }

// Rune returns the diagram glyph of k ('.' for None).
func (k Kind) Rune() rune {
	if !k.Valid() {
		return '.'
	}
	return 'A' + rune(k-Amber)
}

func (k Kind) String() string {
	switch k {
	case Amber:
		return "Amber"
	case Bronze:
		return "Bronze"
	case Copper:
		return "Copper"
	case Desert:
		return "Desert"
	default:
		return "None"
	}
}

// KindOf returns the kind of an amphipod glyph.
func KindOf(r rune) (Kind, bool) {
	if r < 'A' || r > 'D' {
		return None, false
	}
	return Amber + Kind(r-'A'), true
}
