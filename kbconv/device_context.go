package kbconv

import "example.com/kbconv/scancode"

// Stats are purely observational counters in the spirit of the teacher's
// device-internal counters (PICDevice's interrupt counts, RTCDevice's
// register reads) — never consulted by any control-flow decision, so they
// cannot change behavior under test.
type Stats struct {
	ReInits int
}

// DeviceContext is the single owned object holding all process-wide mutable
// state named in spec §3 — the matrix, lifecycle state, CS2 decoder state,
// family, and ID — plus the injected collaborators. Structuring it this way
// (rather than as package-level globals) is what spec §9 calls for ("a
// single owned device context passed explicitly"), and it is what makes the
// core testable with fakes for Transport/Timer/Host/Logger.
//
// Like scancode.Matrix and scancode.CS2Decoder, it holds no lock: it is
// driven by one cooperative scan loop (spec §5) and is not safe for
// concurrent use.
type DeviceContext struct {
	state        LifecycleState
	family       scancode.Family
	id           uint16
	stateEntered Tick

	matrix scancode.Matrix
	decoder scancode.CS2Decoder

	set1Decoder *scancode.Set1Decoder
	set3Decoder *scancode.Set3Decoder

	actions *scancode.ActionTable
	stats   Stats

	transport Transport
	timer     Timer
	host      Host
	log       Logger
}

// NewDeviceContext wires a DeviceContext to its four collaborators and an
// ActionTable, starting in LifecycleState Init.
func NewDeviceContext(transport Transport, timer Timer, host Host, log Logger, actions *scancode.ActionTable) *DeviceContext {
	return &DeviceContext{
		state:       StateInit,
		transport:   transport,
		timer:       timer,
		host:        host,
		log:         log,
		actions:     actions,
		set1Decoder: &scancode.Set1Decoder{},
		set3Decoder: &scancode.Set3Decoder{},
	}
}

// MatrixInit runs the lifecycle's Init step immediately (clearing the matrix,
// family and ID) and leaves the lifecycle in WaitStartup, so the following
// MatrixScan calls go through a full re-identification cycle (spec §6
// "matrix_init()").
func (c *DeviceContext) MatrixInit() {
	c.state = StateInit
	c.doInit()
}

// MatrixScan advances the lifecycle state machine by one tick and reports
// whether the matrix may have changed (spec §6 "matrix_scan()").
func (c *DeviceContext) MatrixScan() bool {
	return c.Scan()
}

// MatrixIsOn reports whether the matrix bit at (row, col) is set.
func (c *DeviceContext) MatrixIsOn(row, col uint8) bool {
	return c.matrix.IsOn(row, col)
}

// MatrixGetRow reads an entire matrix row.
func (c *DeviceContext) MatrixGetRow(row uint8) uint8 {
	return c.matrix.GetRow(row)
}

// MatrixKeyCount reports the population count across the whole matrix.
func (c *DeviceContext) MatrixKeyCount() int {
	return c.matrix.KeyCount()
}

// ActionForKey resolves (layer, row, col) against the active family's
// translation table and the layered action table (spec §6
// "action_for_key(layer, {row, col}) -> action", §4.5).
func (c *DeviceContext) ActionForKey(layer int, row, col uint8) scancode.Action {
	return scancode.ActionFor(c.actions, c.family, layer, row, col)
}

// LedSet pushes a host-side LED mask down to the keyboard immediately,
// independent of the lifecycle's own LedSet state (spec §6 "led_set(...)").
// A no-op unless the active family is AT.
func (c *DeviceContext) LedSet(hostLEDMask byte) {
	if c.family == scancode.FamilyAT {
		c.transport.SetLED(hostLEDMask)
	}
}

// Family reports the currently classified keyboard family.
func (c *DeviceContext) Family() scancode.Family {
	return c.family
}

// State reports the current lifecycle state.
func (c *DeviceContext) State() LifecycleState {
	return c.state
}

// ID reports the 16-bit keyboard ID captured during identification.
func (c *DeviceContext) ID() uint16 {
	return c.id
}

// Stats reports the observability counters accumulated so far.
func (c *DeviceContext) Stats() Stats {
	return c.stats
}
