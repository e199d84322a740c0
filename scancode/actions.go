package scancode

// Action is an opaque value resolved from a layer and a universal key
// position; this core never interprets it (spec §3 "Layered Action Table",
// §4.5 "treated opaquely").
type Action uint16

// NoAction is returned whenever a (layer, row, col) resolves to nothing
// actionable: the family is unset, or the translation table has no UKP for
// that coordinate.
const NoAction Action = 0

// Layers bounds the number of layers an ActionTable may hold. Callers
// needing fewer layers simply leave the extra planes at NoAction.
const Layers = 8

// ActionTable is the three-dimensional immutable structure indexed by
// (layer, universal_row, universal_col) (spec §3 "Layered Action Table").
// Unlike the three code-set Tables, it depends on the user's logical
// layout rather than the physical keyboard, which is the entire point of
// the UKP indirection (spec §4.5 "Rationale").
type ActionTable struct {
	planes [Layers][8][16]Action
}

// NewActionTable builds an ActionTable from a flat list of (layer, ukp,
// action) assignments, leaving every other cell at NoAction.
func NewActionTable(entries []ActionEntry) *ActionTable {
	t := &ActionTable{}
	for _, e := range entries {
		row, col := e.Pos>>4, e.Pos&0x0F
		t.planes[e.Layer][row][col] = e.Action
	}
	return t
}

// ActionEntry is one assignment fed to NewActionTable.
type ActionEntry struct {
	Layer  int
	Pos    UKP
	Action Action
}

// ActionFor resolves (family, layer, row, col) to an Action (spec §4.5):
//  1. look up the UKP via the translation table for the active family;
//     an unset family yields NoAction.
//  2. a UKP of NoPos yields NoAction.
//  3. otherwise decompose the UKP into (ukp_row, ukp_col) and index the
//     layered action table.
func ActionFor(table *ActionTable, family Family, layer int, row, col uint8) Action {
	ft := family.Table()
	if ft == nil {
		return NoAction
	}
	pos := ft.Lookup(row, col)
	if pos == NoPos {
		return NoAction
	}
	if layer < 0 || layer >= Layers {
		return NoAction
	}
	ukpRow, ukpCol := pos>>4, pos&0x0F
	return table.planes[layer][ukpRow][ukpCol]
}
