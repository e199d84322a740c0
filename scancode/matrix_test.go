package scancode_test

import (
	"testing"

	"example.com/kbconv/scancode"
)

func TestMatrixMakeBreakIdempotent(t *testing.T) {
	var m scancode.Matrix

	m.Make(0x1C)
	m.Make(0x1C) // idempotent
	if !m.IsOn(3, 4) {
		t.Fatalf("expected (3,4) on after make(0x1C)")
	}
	if m.KeyCount() != 1 {
		t.Fatalf("expected key count 1, got %d", m.KeyCount())
	}

	m.Break(0x1C)
	m.Break(0x1C) // idempotent
	if m.IsOn(3, 4) {
		t.Fatalf("expected (3,4) off after break(0x1C)")
	}
	if m.KeyCount() != 0 {
		t.Fatalf("expected key count 0, got %d", m.KeyCount())
	}
}

func TestMatrixMakeBreakRoundTrip(t *testing.T) {
	var a, b scancode.Matrix

	a.Make(0x42)
	a.Break(0x42)

	if a != b {
		t.Fatalf("make then break did not restore prior matrix state: %+v != %+v", a, b)
	}
}

func TestMatrixClearIsAllZero(t *testing.T) {
	var m scancode.Matrix
	for code := uint8(0); code < 0x80; code += 7 {
		m.Make(code)
	}
	m.Clear()

	for row := uint8(0); row < scancode.MatrixRows; row++ {
		if m.GetRow(row) != 0 {
			t.Fatalf("row %d not zero after clear: %02x", row, m.GetRow(row))
		}
	}
	if m.KeyCount() != 0 {
		t.Fatalf("expected zero key count after clear, got %d", m.KeyCount())
	}
}

func TestMatrixKeyCountMatchesPopcount(t *testing.T) {
	var m scancode.Matrix
	codes := []uint8{0x01, 0x02, 0x03, 0x1C, 0x29, 0x80, 0x81, 0xFE}
	for _, c := range codes {
		m.Make(c)
	}

	want := 0
	for row := uint8(0); row < scancode.MatrixRows; row++ {
		r := m.GetRow(row)
		for r != 0 {
			want += int(r & 1)
			r >>= 1
		}
	}
	if got := m.KeyCount(); got != want {
		t.Fatalf("key count %d does not match manual popcount %d", got, want)
	}
}

func TestMatrixExtendedCodeAddressing(t *testing.T) {
	var m scancode.Matrix

	// E0-folded Up arrow: 0x75 | 0x80 = 0xF5 -> row 0x1E, col 5.
	m.Make(0x75 | 0x80)
	if !m.IsOn(0x1E, 5) {
		t.Fatalf("expected Up arrow coordinate (0x1E,5) set")
	}
	if !m.IsOnCode(0xF5) {
		t.Fatalf("expected IsOnCode(0xF5) true")
	}
}
