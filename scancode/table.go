package scancode

// Table is an immutable mapping from an internal matrix coordinate to a
// Universal Key Position (spec §3 "Code-Set Translation Table"). It is
// always backed by the full 32-row address space so that Set 2's extended
// (E0-folded) coordinates and Set 1/Set 3's plain 16-row coordinates share
// one lookup path; a table built with fewer rows simply leaves the unused
// rows at NoPos, which is indistinguishable from "never assigned".
//
// Every package-level Table (Set1Table, Set2Table, Set3Table) is built once
// by an init() and never written to again — the closest a Go value gets to
// the spec's "placed in read-only storage" mandate for a table whose
// contents are not representable as a single composite constant.
type Table struct {
	rows    [32][8]UKP
	numRows uint8
}

type tableEntry struct {
	code uint8
	pos  UKP
}

func newTable(numRows uint8, entries []tableEntry) Table {
	var t Table
	t.numRows = numRows
	for r := range t.rows {
		for c := range t.rows[r] {
			t.rows[r][c] = NoPos
		}
	}
	for _, e := range entries {
		t.assign(e.code, e.pos)
	}
	return t
}

func (t *Table) assign(code uint8, pos UKP) {
	t.rows[code>>3][code&7] = pos
}

// Lookup returns the UKP for a matrix coordinate, or NoPos if the
// coordinate is out of range or unassigned.
func (t *Table) Lookup(row, col uint8) UKP {
	if row >= uint8(len(t.rows)) {
		return NoPos
	}
	return t.rows[row][col&7]
}

// LookupCode is a convenience wrapper decoding a raw matrix code (as used by
// the Set 2 addressing scheme: row = code>>3, col = code&7) directly.
func (t *Table) LookupCode(code uint8) UKP {
	return t.Lookup(code>>3, code&7)
}

// Rows reports how many rows of this table are meaningfully addressable by
// this code set (16 for Set 1/Set 3, 32 for Set 2).
func (t *Table) Rows() uint8 {
	return t.numRows
}
