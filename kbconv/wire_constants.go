package kbconv

// Host-to-device protocol bytes.
const (
	CmdIdentify        byte = 0xF2
	CmdEnableScanning  byte = 0xF4
	CmdDisableScanning byte = 0xF5
)

// startupWindowMillis bounds WaitStartup: the keyboard is given this long to
// finish emitting its BAT (power-on self-test) stream before the lifecycle
// moves on.
const startupWindowMillis = 1000

// idWindowMillis bounds how long ReadId waits for an ACK and ID bytes after
// sending 0xF2.
const idWindowMillis = 1000

// Sentinel 16-bit keyboard IDs (spec §4.4).
const (
	idNoAck       uint16 = 0xFFFF // send(0xF2) failed outright: XT can't ACK
	idBrokenPS2   uint16 = 0xFFFE // reply to 0xF2 missing or not 0xFA: PS/2 with broken handshake
	id84KeyAT     uint16 = 0x0000 // ACK'd, no further bytes within the window
	idMouse       uint16 = 0x00FF // identifies as a mouse; refused
)

// LED mask bits pushed to an AT keyboard (spec §6 "LED mask bits").
const (
	LEDScrollLock byte = 1 << iota
	LEDNumLock
	LEDCapsLock
)
