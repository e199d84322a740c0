package scancode_test

import (
	"testing"

	"example.com/kbconv/scancode"
)

func TestActionForUnsetFamilyYieldsNoAction(t *testing.T) {
	table := scancode.NewActionTable([]scancode.ActionEntry{
		{Layer: 0, Pos: scancode.UKPA, Action: 1},
	})

	got := scancode.ActionFor(table, scancode.FamilyNone, 0, 3, 4) // (3,4) is 'A' in Set2
	if got != scancode.NoAction {
		t.Fatalf("expected NoAction for unset family, got %v", got)
	}
}

func TestActionForUnmappedCoordinateYieldsNoAction(t *testing.T) {
	table := scancode.NewActionTable([]scancode.ActionEntry{
		{Layer: 0, Pos: scancode.UKPA, Action: 1},
	})

	// Set2 has no tableEntry for code 0x38 (row 7, col 0) in set2.go; Lookup
	// should return NoPos there.
	got := scancode.ActionFor(table, scancode.FamilyAT, 0, 7, 0)
	if got != scancode.NoAction {
		t.Fatalf("expected NoAction for unmapped coordinate, got %v", got)
	}
}

func TestActionForOutOfRangeLayerYieldsNoAction(t *testing.T) {
	table := scancode.NewActionTable([]scancode.ActionEntry{
		{Layer: 0, Pos: scancode.UKPA, Action: 1},
	})

	row, col := uint8(0x1C>>3), uint8(0x1C&7)
	got := scancode.ActionFor(table, scancode.FamilyAT, scancode.Layers, row, col)
	if got != scancode.NoAction {
		t.Fatalf("expected NoAction for out-of-range layer, got %v", got)
	}
}

func TestActionForResolvesThroughFamilyTable(t *testing.T) {
	const wantAction scancode.Action = 42
	table := scancode.NewActionTable([]scancode.ActionEntry{
		{Layer: 0, Pos: scancode.UKPA, Action: wantAction},
	})

	// 0x1C is 'A' in Set2 (row 3, col 4 by bit-packed addressing).
	row, col := uint8(0x1C>>3), uint8(0x1C&7)
	got := scancode.ActionFor(table, scancode.FamilyAT, 0, row, col)
	if got != wantAction {
		t.Fatalf("expected %v, got %v", wantAction, got)
	}
}

func TestActionForIsDeterministic(t *testing.T) {
	table := scancode.NewActionTable([]scancode.ActionEntry{
		{Layer: 0, Pos: scancode.UKPA, Action: 7},
		{Layer: 1, Pos: scancode.UKPA, Action: 99},
	})

	row, col := uint8(0x1C>>3), uint8(0x1C&7)
	first := scancode.ActionFor(table, scancode.FamilyAT, 0, row, col)
	for i := 0; i < 5; i++ {
		if got := scancode.ActionFor(table, scancode.FamilyAT, 0, row, col); got != first {
			t.Fatalf("ActionFor not deterministic: got %v then %v", first, got)
		}
	}

	// Distinct layers resolve to distinct, independently configured actions.
	layer1 := scancode.ActionFor(table, scancode.FamilyAT, 1, row, col)
	if layer1 == first {
		t.Fatalf("expected layer 1 action to differ from layer 0, both %v", first)
	}
}

func TestActionForDifferentFamiliesUseDifferentTables(t *testing.T) {
	table := scancode.NewActionTable([]scancode.ActionEntry{
		{Layer: 0, Pos: scancode.UKPEsc, Action: 5},
	})

	set2Row, set2Col := uint8(0x76>>3), uint8(0x76&7) // Esc in Set2
	set1Row, set1Col := uint8(0x01>>3), uint8(0x01&7) // Esc in Set1

	gotAT := scancode.ActionFor(table, scancode.FamilyAT, 0, set2Row, set2Col)
	gotXT := scancode.ActionFor(table, scancode.FamilyXT, 0, set1Row, set1Col)

	if gotAT != 5 || gotXT != 5 {
		t.Fatalf("expected both families to resolve Esc to action 5, got AT=%v XT=%v", gotAT, gotXT)
	}
}
