package scancode

// HostKeyboard is the slice of the host environment's services the decoder
// needs: a way to flush stuck keys from the host's own key-state tracking
// when the matrix is force-cleared (spec §4.3 "0x00 ... clear matrix,
// signal host to clear its own key state").
type HostKeyboard interface {
	ClearKeyboard()
}

// Logger is the byte-oriented diagnostic sink (spec §6 "Debug logger").
type Logger interface {
	Debugf(format string, args ...any)
}

// DecoderState enumerates the CS2Decoder's states (spec §4.3).
type DecoderState int

const (
	StateInit DecoderState = iota
	StateF0
	StateE0
	StateE0F0
	StateE1
	StateE1_14
	StateE1_14_77
	StateE1_14_77_E1
	StateE1_14_77_E1_F0
	StateE1_14_77_E1_F0_14
	StateE1_14_77_E1_F0_14_F0
	StateE0_7E
	StateE0_7E_E0
	StateE0_7E_E0_F0
)

// CS2Decoder is the stateful byte-sequence parser converting Code Set 2
// streams into make/break events on matrix positions (spec §4.3). It holds
// no lock: like Matrix, it is owned exclusively by the single-threaded scan
// driver (spec §5).
type CS2Decoder struct {
	state DecoderState
}

// State reports the decoder's current state, exposed for tests asserting
// spec invariant 6 ("returns to Init after consuming any complete valid
// sequence").
func (d *CS2Decoder) State() DecoderState {
	return d.state
}

// Step feeds one byte to the decoder. It returns StepReinit (-1) if the
// byte signals that the keyboard must be re-identified from scratch (a
// self-test pass/fail byte seen mid-stream), StepOK (0) otherwise.
//
// Pre-step invariant (spec §4.3): Pause has no real break sequence, so on
// every entry, if it is currently marked pressed, it is cleared first — the
// "pseudo-break" hack.
func (d *CS2Decoder) Step(b uint8, m *Matrix, host HostKeyboard, log Logger) int {
	if m.IsOnCode(MatPause) {
		m.Break(MatPause)
	}

	switch d.state {
	case StateInit:
		return d.stepInit(b, m, host, log)
	case StateF0:
		return d.stepF0(b, m, host, log)
	case StateE0:
		return d.stepE0(b, m, host, log)
	case StateE0F0:
		return d.stepE0F0(b, m, host, log)
	case StateE1:
		return d.stepPause(b, m)
	case StateE1_14:
		return d.stepPause(b, m)
	case StateE1_14_77:
		return d.stepPause(b, m)
	case StateE1_14_77_E1:
		return d.stepPause(b, m)
	case StateE1_14_77_E1_F0:
		return d.stepPause(b, m)
	case StateE1_14_77_E1_F0_14:
		return d.stepPause(b, m)
	case StateE1_14_77_E1_F0_14_F0:
		return d.stepPause(b, m)
	case StateE0_7E:
		return d.stepCtrlPause(b, m)
	case StateE0_7E_E0:
		return d.stepCtrlPause(b, m)
	case StateE0_7E_E0_F0:
		return d.stepCtrlPause(b, m)
	default:
		d.state = StateInit
		return StepOK
	}
}

func (d *CS2Decoder) corrupt(m *Matrix, host HostKeyboard, log Logger, format string, args ...any) int {
	m.Clear()
	host.ClearKeyboard()
	log.Debugf(format, args...)
	d.state = StateInit
	return StepOK
}

func (d *CS2Decoder) stepInit(b uint8, m *Matrix, host HostKeyboard, log Logger) int {
	switch {
	case b == CodeE0:
		d.state = StateE0
	case b == CodeF0:
		d.state = StateF0
	case b == CodeE1:
		d.state = StateE1
	case b == CodeF7Set2:
		m.Make(MatF7)
		d.state = StateInit
	case b == CodePrtScrAlt:
		m.Make(MatPrintScreen)
		d.state = StateInit
	case b == CodeBufferOver:
		return d.corrupt(m, host, log, "scancode: buffer overrun, clearing matrix")
	case b == CodeSelfTestPass || b == CodeSelfTestFail:
		d.state = StateInit
		return StepReinit
	case b < 0x80:
		m.Make(b)
		d.state = StateInit
	default:
		return d.corrupt(m, host, log, "scancode: unexpected byte 0x%02X in Init", b)
	}
	return StepOK
}

func (d *CS2Decoder) stepF0(b uint8, m *Matrix, host HostKeyboard, log Logger) int {
	switch {
	case b == CodeF7Set2:
		m.Break(MatF7)
	case b == CodePrtScrAlt:
		m.Break(MatPrintScreen)
	case b < 0x80:
		m.Break(b)
	default:
		d.state = StateInit
		return d.corrupt(m, host, log, "scancode: unexpected byte 0x%02X in F0", b)
	}
	d.state = StateInit
	return StepOK
}

func (d *CS2Decoder) stepE0(b uint8, m *Matrix, host HostKeyboard, log Logger) int {
	switch {
	case b == 0x12 || b == 0x59:
		// Shadow-shift codes the keyboard inserts/removes around certain
		// keys under NumLock/Shift influence; the host tracks Shift state
		// independently, so these are dropped (spec §4.3, §9).
		d.state = StateInit
	case b == 0x7E:
		d.state = StateE0_7E
		return StepOK
	case b == CodeF0:
		d.state = StateE0F0
		return StepOK
	case b < 0x80:
		m.Make(b | 0x80)
		d.state = StateInit
	default:
		d.state = StateInit
		return d.corrupt(m, host, log, "scancode: unexpected byte 0x%02X in E0", b)
	}
	return StepOK
}

func (d *CS2Decoder) stepE0F0(b uint8, m *Matrix, host HostKeyboard, log Logger) int {
	switch {
	case b == 0x12 || b == 0x59:
		d.state = StateInit
	case b < 0x80:
		m.Break(b | 0x80)
		d.state = StateInit
	default:
		d.state = StateInit
		return d.corrupt(m, host, log, "scancode: unexpected byte 0x%02X in E0_F0", b)
	}
	return StepOK
}

// Pause sequence: E1 14 77 E1 F0 14 F0 77 -> make(Pause) on the final 77.
// Any byte that fails to match the expected next byte falls back to Init
// without emission (spec §4.3).
func (d *CS2Decoder) stepPause(b uint8, m *Matrix) int {
	next, want := d.state, uint8(0)
	switch next {
	case StateE1:
		want = 0x14
	case StateE1_14:
		want = 0x77
	case StateE1_14_77:
		want = 0xE1
	case StateE1_14_77_E1:
		want = CodeF0
	case StateE1_14_77_E1_F0:
		want = 0x14
	case StateE1_14_77_E1_F0_14:
		want = CodeF0
	case StateE1_14_77_E1_F0_14_F0:
		want = 0x77
	}
	if b != want {
		d.state = StateInit
		return StepOK
	}
	if next == StateE1_14_77_E1_F0_14_F0 {
		m.Make(MatPause)
		d.state = StateInit
		return StepOK
	}
	d.state = pauseNextState(next)
	return StepOK
}

func pauseNextState(s DecoderState) DecoderState {
	switch s {
	case StateE1:
		return StateE1_14
	case StateE1_14:
		return StateE1_14_77
	case StateE1_14_77:
		return StateE1_14_77_E1
	case StateE1_14_77_E1:
		return StateE1_14_77_E1_F0
	case StateE1_14_77_E1_F0:
		return StateE1_14_77_E1_F0_14
	case StateE1_14_77_E1_F0_14:
		return StateE1_14_77_E1_F0_14_F0
	default:
		return StateInit
	}
}

// Control-modified Pause: E0 7E E0 F0 7E -> make(Pause) on the final 7E.
// Same fallback rule as the plain Pause sequence (spec §4.3).
func (d *CS2Decoder) stepCtrlPause(b uint8, m *Matrix) int {
	switch d.state {
	case StateE0_7E:
		if b != CodeE0 {
			d.state = StateInit
			return StepOK
		}
		d.state = StateE0_7E_E0
	case StateE0_7E_E0:
		if b != CodeF0 {
			d.state = StateInit
			return StepOK
		}
		d.state = StateE0_7E_E0_F0
	case StateE0_7E_E0_F0:
		if b != 0x7E {
			d.state = StateInit
			return StepOK
		}
		m.Make(MatPause)
		d.state = StateInit
	}
	return StepOK
}
