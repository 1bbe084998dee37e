package rgui

import "fmt"

type tier uint8

const (
	tierNormal tier = iota
	tierOverlay
)

// ID identifies a widget's entry in the instruction collection.
//
// IDs are ordered in two tiers: every ID issued by an IDMachine sorts before
// every ID issued by an AbsoluteCollection, so overlays always paint on top of
// the normal tree. The zero ID means the widget is not currently drawn.
type ID struct {
	tier tier
	seq  uint64
}

// IsZero reports whether the ID is unassigned.
func (id ID) IsZero() bool {
	return id.seq == 0
}

// Overlay reports whether the ID belongs to the overlay tier.
func (id ID) Overlay() bool {
	return id.tier == tierOverlay
}

// Seq returns the sequence number within the ID's tier.
func (id ID) Seq() uint64 {
	return id.seq
}

// Less orders IDs by tier, then by sequence.
func (id ID) Less(other ID) bool {
	if id.tier != other.tier {
		return id.tier < other.tier
	}
	return id.seq < other.seq
}

func (id ID) String() string {
	if id.IsZero() {
		return "id(-)"
	}
	if id.Overlay() {
		return fmt.Sprintf("overlay(%d)", id.seq)
	}
	return fmt.Sprintf("id(%d)", id.seq)
}

// IDMachine hands out normal-tier IDs. Each call to FetchID returns a value
// strictly greater than every value returned before it; the first is 1.
type IDMachine struct {
	last uint64
}

// FetchID returns the next unused ID.
func (m *IDMachine) FetchID() ID {
	m.last++
	return ID{tier: tierNormal, seq: m.last}
}
