package scancode_test

import (
	"testing"

	"example.com/kbconv/scancode"
)

// mockHost and mockLogger are hand-rolled test doubles rather than a mocking
// library, per the teacher's own style (ne2000_test.go's MockInterruptRaiser
// / MockTapDevice).
type mockHost struct {
	cleared int
}

func (h *mockHost) ClearKeyboard() { h.cleared++ }

type mockLogger struct {
	lines []string
}

func (l *mockLogger) Debugf(format string, args ...any) {
	l.lines = append(l.lines, format)
}

func feed(t *testing.T, d *scancode.CS2Decoder, m *scancode.Matrix, host scancode.HostKeyboard, log scancode.Logger, bytes ...uint8) int {
	t.Helper()
	last := scancode.StepOK
	for _, b := range bytes {
		last = d.Step(b, m, host, log)
	}
	return last
}

func TestCS2DecoderScenario1PlainMakeBreak(t *testing.T) {
	var d scancode.CS2Decoder
	var m scancode.Matrix
	host, log := &mockHost{}, &mockLogger{}

	feed(t, &d, &m, host, log, 0x1C)
	if !m.IsOn(3, 4) {
		t.Fatalf("expected (3,4) set after 0x1C")
	}
	feed(t, &d, &m, host, log, 0xF0, 0x1C)
	if m.IsOn(3, 4) {
		t.Fatalf("expected (3,4) clear after F0 1C")
	}
	if d.State() != scancode.StateInit {
		t.Fatalf("expected decoder back in Init, got %v", d.State())
	}
}

func TestCS2DecoderScenario2ExtendedMakeBreak(t *testing.T) {
	var d scancode.CS2Decoder
	var m scancode.Matrix
	host, log := &mockHost{}, &mockLogger{}

	feed(t, &d, &m, host, log, scancode.CodeE0, 0x75)
	if !m.IsOn(0x1E, 5) {
		t.Fatalf("expected Up arrow set at (0x1E,5)")
	}
	feed(t, &d, &m, host, log, scancode.CodeE0, scancode.CodeF0, 0x75)
	if m.IsOn(0x1E, 5) {
		t.Fatalf("expected Up arrow cleared")
	}
}

func TestCS2DecoderScenario3PrintScreenIgnoresShadowShift(t *testing.T) {
	var d scancode.CS2Decoder
	var m scancode.Matrix
	host, log := &mockHost{}, &mockLogger{}

	feed(t, &d, &m, host, log, scancode.CodeE0, 0x12, scancode.CodeE0, 0x7C)
	if m.KeyCount() != 1 || !m.IsOnCode(scancode.MatPrintScreen) {
		t.Fatalf("expected only PrintScreen set, got count=%d", m.KeyCount())
	}

	feed(t, &d, &m, host, log,
		scancode.CodeE0, scancode.CodeF0, 0x7C,
		scancode.CodeE0, scancode.CodeF0, 0x12,
	)
	if m.KeyCount() != 0 {
		t.Fatalf("expected matrix clear, got count=%d", m.KeyCount())
	}
}

func TestCS2DecoderScenario4AltPrintScreen(t *testing.T) {
	var d scancode.CS2Decoder
	var m scancode.Matrix
	host, log := &mockHost{}, &mockLogger{}

	feed(t, &d, &m, host, log, scancode.CodePrtScrAlt)
	if !m.IsOnCode(scancode.MatPrintScreen) {
		t.Fatalf("expected PrintScreen set via alt form")
	}
	feed(t, &d, &m, host, log, scancode.CodeF0, scancode.CodePrtScrAlt)
	if m.IsOnCode(scancode.MatPrintScreen) {
		t.Fatalf("expected PrintScreen cleared via alt form")
	}
}

func TestCS2DecoderScenario5Pause(t *testing.T) {
	var d scancode.CS2Decoder
	var m scancode.Matrix
	host, log := &mockHost{}, &mockLogger{}

	feed(t, &d, &m, host, log, 0xE1, 0x14, 0x77, 0xE1, 0xF0, 0x14, 0xF0, 0x77)
	if !m.IsOnCode(scancode.MatPause) {
		t.Fatalf("expected Pause set after full sequence")
	}
	if d.State() != scancode.StateInit {
		t.Fatalf("expected decoder back in Init after pause sequence, got %v", d.State())
	}

	// Pre-step invariant: next decoder entry clears Pause (pseudo-break).
	d.Step(0x00, &m, host, log) // arbitrary next byte (buffer overrun in this case)
	if m.IsOnCode(scancode.MatPause) {
		t.Fatalf("expected Pause auto-cleared on next decoder entry")
	}
}

func TestCS2DecoderScenario6CtrlPause(t *testing.T) {
	var d scancode.CS2Decoder
	var m scancode.Matrix
	host, log := &mockHost{}, &mockLogger{}

	feed(t, &d, &m, host, log, scancode.CodeE0, 0x7E, scancode.CodeE0, scancode.CodeF0, 0x7E)
	if !m.IsOnCode(scancode.MatPause) {
		t.Fatalf("expected Pause set after ctrl-pause sequence")
	}
}

func TestCS2DecoderF7Irregular(t *testing.T) {
	var d scancode.CS2Decoder
	var m scancode.Matrix
	host, log := &mockHost{}, &mockLogger{}

	feed(t, &d, &m, host, log, 0x83)
	if !m.IsOnCode(scancode.MatF7) {
		t.Fatalf("expected F7 set")
	}
	feed(t, &d, &m, host, log, scancode.CodeF0, 0x83)
	if m.IsOnCode(scancode.MatF7) {
		t.Fatalf("expected F7 cleared")
	}
}

func TestCS2DecoderBufferOverrunClearsAndSignalsHost(t *testing.T) {
	var d scancode.CS2Decoder
	var m scancode.Matrix
	host, log := &mockHost{}, &mockLogger{}

	m.Make(0x1C)
	feed(t, &d, &m, host, log, 0x00)

	if m.KeyCount() != 0 {
		t.Fatalf("expected matrix cleared on overrun")
	}
	if host.cleared != 1 {
		t.Fatalf("expected host.ClearKeyboard called once, got %d", host.cleared)
	}
	if len(log.lines) != 1 {
		t.Fatalf("expected one debug log line, got %d", len(log.lines))
	}
}

func TestCS2DecoderCorruptionClearsMatrixAndReturnsToInit(t *testing.T) {
	var d scancode.CS2Decoder
	var m scancode.Matrix
	host, log := &mockHost{}, &mockLogger{}

	m.Make(0x1C)
	// 0x80..0xFF (excluding 0x83/0x84/0xAA/0xE0/0xE1/0xF0/0xFC) is not a
	// valid Init byte.
	ret := feed(t, &d, &m, host, log, 0x90)

	if ret != scancode.StepOK {
		t.Fatalf("corruption should not itself request reinit, got %d", ret)
	}
	if m.KeyCount() != 0 {
		t.Fatalf("expected matrix cleared on corruption")
	}
	if d.State() != scancode.StateInit {
		t.Fatalf("expected decoder state Init after corruption, got %v", d.State())
	}
}

func TestCS2DecoderSelfTestSignalsReinit(t *testing.T) {
	var d scancode.CS2Decoder
	var m scancode.Matrix
	host, log := &mockHost{}, &mockLogger{}

	if ret := feed(t, &d, &m, host, log, scancode.CodeSelfTestPass); ret != scancode.StepReinit {
		t.Fatalf("expected StepReinit on self-test pass, got %d", ret)
	}
	if ret := feed(t, &d, &m, host, log, scancode.CodeSelfTestFail); ret != scancode.StepReinit {
		t.Fatalf("expected StepReinit on self-test fail, got %d", ret)
	}
}

func TestCS2DecoderShadowShiftCodesProduceNoMatrixChange(t *testing.T) {
	sequences := [][]uint8{
		{scancode.CodeE0, 0x12},
		{scancode.CodeE0, 0x59},
		{scancode.CodeE0, scancode.CodeF0, 0x12},
		{scancode.CodeE0, scancode.CodeF0, 0x59},
	}
	for _, seq := range sequences {
		var d scancode.CS2Decoder
		var m scancode.Matrix
		host, log := &mockHost{}, &mockLogger{}
		feed(t, &d, &m, host, log, seq...)
		if m.KeyCount() != 0 {
			t.Fatalf("sequence %v: expected no matrix change from shadow-shift code, got count=%d", seq, m.KeyCount())
		}
	}
}

func TestCS2DecoderPauseFallbackOnMismatch(t *testing.T) {
	var d scancode.CS2Decoder
	var m scancode.Matrix
	host, log := &mockHost{}, &mockLogger{}

	// E1 14 <wrong byte> should fall back to Init without emitting Pause.
	feed(t, &d, &m, host, log, 0xE1, 0x14, 0x99)
	if m.IsOnCode(scancode.MatPause) {
		t.Fatalf("expected no Pause from a mismatched sequence")
	}
	if d.State() != scancode.StateInit {
		t.Fatalf("expected decoder back in Init after fallback, got %v", d.State())
	}
}

func TestCS2DecoderReturnsToInitAfterAnyCompleteSequence(t *testing.T) {
	sequences := [][]uint8{
		{0x1C},
		{0xF0, 0x1C},
		{scancode.CodeE0, 0x75},
		{scancode.CodeE0, scancode.CodeF0, 0x75},
		{0xE1, 0x14, 0x77, 0xE1, 0xF0, 0x14, 0xF0, 0x77},
		{scancode.CodeE0, 0x7E, scancode.CodeE0, scancode.CodeF0, 0x7E},
	}
	for _, seq := range sequences {
		var d scancode.CS2Decoder
		var m scancode.Matrix
		host, log := &mockHost{}, &mockLogger{}
		feed(t, &d, &m, host, log, seq...)
		if d.State() != scancode.StateInit {
			t.Fatalf("sequence %v did not return decoder to Init, got %v", seq, d.State())
		}
	}
}
