package kbconv

import "example.com/kbconv/scancode"

// LifecycleState enumerates the main scan entry point's own state machine
// (spec §3 "Lifecycle State", §4.4).
type LifecycleState int

const (
	StateInit LifecycleState = iota
	StateWaitStartup
	StateReadID
	StateLedSet
	StateLoop
	StateEnd
)

func (s LifecycleState) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateWaitStartup:
		return "wait_startup"
	case StateReadID:
		return "read_id"
	case StateLedSet:
		return "led_set"
	case StateLoop:
		return "loop"
	case StateEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Scan advances the lifecycle state machine by exactly one step and reports
// whether the matrix may have changed as a result (spec §6 "matrix_scan()").
func (c *DeviceContext) Scan() bool {
	switch c.state {
	case StateInit:
		c.doInit()
	case StateWaitStartup:
		c.doWaitStartup()
	case StateReadID:
		c.doReadID()
	case StateLedSet:
		c.doLedSet()
	case StateLoop:
		return c.doLoop()
	}
	return false
}

// doInit: clear family and ID, record a timestamp, clear matrix and decoder
// state, advance (spec §4.4 "Init"). There is no separate protocol setting:
// the decoder is chosen from the family once ReadID has classified the device.
func (c *DeviceContext) doInit() {
	c.family = scancode.FamilyNone
	c.id = 0
	c.stateEntered = c.timer.Now()
	c.matrix.Clear()
	c.decoder = scancode.CS2Decoder{}
	c.state = StateWaitStartup
}

// doWaitStartup: consume and discard any bytes for >=1000ms, absorbing BAT
// codes emitted at power-on. After timeout, advance (spec §4.4
// "WaitStartup").
func (c *DeviceContext) doWaitStartup() {
	for {
		if _, ok := c.transport.Recv(); !ok {
			break
		}
	}
	if c.timer.ElapsedMillis(c.stateEntered) >= startupWindowMillis {
		c.state = StateReadID
		c.stateEntered = c.timer.Now()
	}
}

// doReadID implements the ReadId probe and classification (spec §4.4
// "ReadId").
func (c *DeviceContext) doReadID() {
	if !c.transport.Send(CmdDisableScanning) {
		// not spec'd as fatal; fall through and still attempt identify
	}

	if !c.transport.Send(CmdIdentify) {
		c.id = idNoAck
		c.family = scancode.FamilyXT
		c.finishReadID()
		return
	}

	ack, ok := c.waitByte(idWindowMillis)
	if !ok || ack != 0xFA {
		c.id = idBrokenPS2
		c.family = scancode.FamilyAT
		c.finishReadID()
		return
	}

	b1, ok := c.waitByte(idWindowMillis)
	if !ok {
		c.id = id84KeyAT
		c.family = scancode.FamilyAT
		c.finishReadID()
		return
	}

	b2, ok := c.waitByte(idWindowMillis)
	if !ok {
		// Only one ID byte arrived; treat the missing second byte as 0x00
		// and classify on what we have, per the 0xAB??/0xBF?? prefix rule.
		b2 = 0x00
	}

	c.id = uint16(b1)<<8 | uint16(b2)
	switch {
	case b1 == 0xAB:
		c.family = scancode.FamilyAT
	case b1 == 0xBF:
		c.family = scancode.FamilyTerminal
	case c.id == idMouse:
		c.family = scancode.FamilyNone
		c.log.Debugf("kbconv: device identifies as a mouse (id=0x%04X), refusing", c.id)
	default:
		c.family = scancode.FamilyAT
	}
	c.finishReadID()
}

func (c *DeviceContext) finishReadID() {
	c.transport.Send(CmdEnableScanning)
	c.state = StateLedSet
}

// waitByte polls the transport for up to windowMillis for a single byte.
func (c *DeviceContext) waitByte(windowMillis int64) (byte, bool) {
	start := c.timer.Now()
	for {
		if b, ok := c.transport.Recv(); ok {
			return b, true
		}
		if c.timer.ElapsedMillis(start) >= windowMillis {
			return 0, false
		}
	}
}

// doLedSet: query the host LED state and push it to the keyboard; only
// meaningful for AT family (spec §4.4 "LedSet").
func (c *DeviceContext) doLedSet() {
	if c.family == scancode.FamilyAT {
		c.transport.SetLED(c.host.KeyboardLEDs())
	}
	c.state = StateLoop
}

// doLoop dispatches every available byte to the family-specific decoder,
// reports a receive error by re-entering Init (spec §4.4 "Loop", §7
// "Receive-path transport error"), and otherwise ignores send/buffer-full
// errors after logging them (spec §7).
func (c *DeviceContext) doLoop() bool {
	changed := false

	for {
		b, ok := c.transport.Recv()
		if !ok {
			break
		}
		ret := c.decoderFor(c.family).Step(b, &c.matrix, hostAdapter{c.host}, c.log)
		if ret == scancode.StepReinit {
			c.stats.ReInits++
			c.state = StateInit
			return true
		}
		changed = true
	}

	switch c.transport.Error() {
	case ErrReceive:
		c.log.Debugf("kbconv: receive-path transport error, re-initializing")
		c.transport.ClearError()
		c.stats.ReInits++
		c.state = StateInit
	case ErrSend, ErrBufferFull:
		c.log.Debugf("kbconv: transient transport error %v", c.transport.Error())
		c.transport.ClearError()
	}

	return changed
}

func (c *DeviceContext) decoderFor(f scancode.Family) scancode.Decoder {
	switch f {
	case scancode.FamilyXT:
		return c.set1Decoder
	case scancode.FamilyTerminal:
		return c.set3Decoder
	case scancode.FamilyAT:
		return &c.decoder
	default:
		// FamilyNone (refused device, e.g. a mouse) and FamilyOther: no
		// decoder applies, so bytes are silently discarded.
		return c.set1Decoder
	}
}

// hostAdapter narrows a kbconv.Host down to the scancode.HostKeyboard
// surface the decoder needs, without scancode importing kbconv.
type hostAdapter struct {
	host Host
}

func (h hostAdapter) ClearKeyboard() { h.host.ClearKeyboard() }
