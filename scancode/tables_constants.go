// Package scancode implements the translation tables, bit-packed matrix,
// Code Set 2 decoder, and action resolver shared by every supported keyboard
// family.
package scancode

// UKP is a Universal Key Position: the high nibble addresses one of 8
// universal rows, the low nibble one of 16 universal columns.
type UKP = uint8

// NoPos is the reserved UKP sentinel meaning "this physical position maps to
// nothing on the universal layout". 0xFF can never collide with a real
// row<<4|col value since rows run 0..7 and columns 0..15.
const NoPos UKP = 0xFF

func ukp(row, col uint8) UKP {
	return (row << 4) | col
}

// Universal layout. Row 7 is entirely reserved (NoPos) for future growth and
// deliberately never assigned: neither code set maps anything there.
const (
	Row0Function uint8 = iota
	Row1Number
	Row2Qwerty
	Row3Asdf
	Row4Zxcv
	Row5Bottom
	Row6Numpad
	Row7Reserved
)

// Named universal positions, grouped by universal row. A key absent from a
// given code set's translation table simply never appears as a value in that
// table; it is not listed again there.
const (
	UKPEsc UKP = iota + ukpRow0Base
	UKPF1
	UKPF2
	UKPF3
	UKPF4
	UKPF5
	UKPF6
	UKPF7
	UKPF8
	UKPF9
	UKPF10
	UKPF11
	UKPF12
	UKPPrintScreen
	UKPScrollLock
	UKPPause
)

const ukpRow0Base = UKP(Row0Function) << 4

const (
	UKPGrave UKP = iota + ukpRow1Base
	UKP1
	UKP2
	UKP3
	UKP4
	UKP5
	UKP6
	UKP7
	UKP8
	UKP9
	UKP0
	UKPMinus
	UKPEqual
	UKPBackspace
	UKPHome
	UKPEnd
)

const ukpRow1Base = UKP(Row1Number) << 4

const (
	UKPTab UKP = iota + ukpRow2Base
	UKPQ
	UKPW
	UKPE
	UKPR
	UKPT
	UKPY
	UKPU
	UKPI
	UKPO
	UKPP
	UKPLBracket
	UKPRBracket
	UKPBackslash
	UKPPageUp
	UKPPageDown
)

const ukpRow2Base = UKP(Row2Qwerty) << 4

const (
	UKPCapsLock UKP = iota + ukpRow3Base
	UKPA
	UKPS
	UKPD
	UKPF
	UKPG
	UKPH
	UKPJ
	UKPK
	UKPL
	UKPSemicolon
	UKPQuote
	UKPEnter
	UKPInsert
	UKPDelete
	_ // row 3, col 15: unassigned
)

const ukpRow3Base = UKP(Row3Asdf) << 4

const (
	UKPLShift UKP = iota + ukpRow4Base
	UKPZ
	UKPX
	UKPC
	UKPV
	UKPB
	UKPN
	UKPM
	UKPComma
	UKPPeriod
	UKPSlash
	UKPRShift
	UKPUp
	_ // row 4, col 13: unassigned
	_ // row 4, col 14: unassigned
	_ // row 4, col 15: unassigned
)

const ukpRow4Base = UKP(Row4Zxcv) << 4

const (
	UKPLCtrl UKP = iota + ukpRow5Base
	UKPLWin
	UKPLAlt
	UKPSpace
	UKPRAlt
	UKPRWin
	UKPMenu
	UKPRCtrl
	UKPLeft
	UKPDown
	UKPRight
	UKPNumLock
	UKPKPEnter
	_ // row 5, col 13: unassigned
	_ // row 5, col 14: unassigned
	_ // row 5, col 15: unassigned
)

const ukpRow5Base = UKP(Row5Bottom) << 4

const (
	UKPKPSlash UKP = iota + ukpRow6Base
	UKPKPStar
	UKPKPMinus
	UKPKP7
	UKPKP8
	UKPKP9
	UKPKPPlus
	UKPKP4
	UKPKP5
	UKPKP6
	UKPKP1
	UKPKP2
	UKPKP3
	UKPKP0
	UKPKPDot
	_ // row 6, col 15: unassigned
)

const ukpRow6Base = UKP(Row6Numpad) << 4

// Reserved internal matrix coordinates for irregular keys (spec §3).
const (
	MatF7          = 0x83
	MatPrintScreen = 0xFC
	MatPause       = 0xFE
)

// Device-to-host distinguished bytes for Code Set 2 (spec §6).
const (
	CodeE0           = 0xE0
	CodeE1           = 0xE1
	CodeF0           = 0xF0
	CodeSelfTestPass = 0xAA
	CodeSelfTestFail = 0xFC
	CodeBufferOver   = 0x00
	CodeF7Set2       = 0x83
	CodePrtScrAlt    = 0x84
)

// StepReinit is returned by a decoder's Step when the keyboard must be
// re-identified from scratch (spec §4.3: "-1 signals reset / restart
// required").
const StepReinit = -1

// StepOK is the normal Step return value.
const StepOK = 0
