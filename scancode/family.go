package scancode

// Family identifies which of the three historical IBM encodings the attached
// keyboard speaks, decided once per lifecycle init (spec §3 "Keyboard
// Family").
type Family int

const (
	FamilyNone Family = iota
	FamilyXT
	FamilyAT
	FamilyTerminal
	FamilyOther
)

func (f Family) String() string {
	switch f {
	case FamilyNone:
		return "none"
	case FamilyXT:
		return "xt"
	case FamilyAT:
		return "at"
	case FamilyTerminal:
		return "terminal"
	case FamilyOther:
		return "other"
	default:
		return "unknown"
	}
}

// Table returns the active translation table for this family, or nil if the
// family has no table (FamilyNone, FamilyOther).
func (f Family) Table() *Table {
	switch f {
	case FamilyXT:
		return &Set1Table
	case FamilyAT:
		return &Set2Table
	case FamilyTerminal:
		return &Set3Table
	default:
		return nil
	}
}
