package scancode

// Set2Table is the Code Set 2 (AT/PS-2) translation table: 32 rows × 8
// columns. Non-extended codes occupy 0x00..0x7F; E0-prefixed codes are
// folded in by OR-ing the high bit, occupying 0x80..0xFF (spec §3 "Matrix
// Coordinate Encoding for CS2", §4.1 "Set 2 (AT/PS-2)").
var Set2Table Table

const e0 = 0x80 // folded-in E0 prefix bit, per spec's matrix coordinate encoding

func init() {
	Set2Table = newTable(32, []tableEntry{
		// Function row.
		{0x76, UKPEsc},
		{0x05, UKPF1}, {0x06, UKPF2}, {0x04, UKPF3}, {0x0C, UKPF4},
		{0x03, UKPF5}, {0x0B, UKPF6}, {0x83, UKPF7}, {0x0A, UKPF8},
		{0x01, UKPF9}, {0x09, UKPF10}, {0x78, UKPF11}, {0x07, UKPF12},
		{0x7E, UKPScrollLock},

		// Number row.
		{0x0E, UKPGrave},
		{0x16, UKP1}, {0x1E, UKP2}, {0x26, UKP3}, {0x25, UKP4}, {0x2E, UKP5},
		{0x36, UKP6}, {0x3D, UKP7}, {0x3E, UKP8}, {0x46, UKP9}, {0x45, UKP0},
		{0x4E, UKPMinus}, {0x55, UKPEqual}, {0x66, UKPBackspace},

		// Qwerty row.
		{0x0D, UKPTab},
		{0x15, UKPQ}, {0x1D, UKPW}, {0x24, UKPE}, {0x2D, UKPR}, {0x2C, UKPT},
		{0x35, UKPY}, {0x3C, UKPU}, {0x43, UKPI}, {0x44, UKPO}, {0x4D, UKPP},
		{0x54, UKPLBracket}, {0x5B, UKPRBracket}, {0x5D, UKPBackslash},

		// Asdf row.
		{0x58, UKPCapsLock},
		{0x1C, UKPA}, {0x1B, UKPS}, {0x23, UKPD}, {0x2B, UKPF}, {0x34, UKPG},
		{0x33, UKPH}, {0x3B, UKPJ}, {0x42, UKPK}, {0x4B, UKPL},
		{0x4C, UKPSemicolon}, {0x52, UKPQuote}, {0x5A, UKPEnter},

		// Zxcv row.
		{0x12, UKPLShift},
		{0x1A, UKPZ}, {0x22, UKPX}, {0x21, UKPC}, {0x2A, UKPV}, {0x32, UKPB},
		{0x31, UKPN}, {0x3A, UKPM}, {0x41, UKPComma}, {0x49, UKPPeriod},
		{0x4A, UKPSlash}, {0x59, UKPRShift},

		// Bottom row.
		{0x14, UKPLCtrl}, {0x11, UKPLAlt}, {0x29, UKPSpace},

		// Numpad.
		{0x77, UKPNumLock},
		{0x7C, UKPKPStar}, {0x7B, UKPKPMinus}, {0x79, UKPKPPlus},
		{0x71, UKPKPDot}, {0x70, UKPKP0},
		{0x69, UKPKP1}, {0x72, UKPKP2}, {0x7A, UKPKP3},
		{0x6B, UKPKP4}, {0x73, UKPKP5}, {0x74, UKPKP6},
		{0x6C, UKPKP7}, {0x75, UKPKP8}, {0x7D, UKPKP9},

		// Irregular keys, addressed at their fixed matrix constants
		// (spec §3): F7 is a plain code above and needs no fold, but
		// PrintScreen and Pause are synthesized by the decoder directly
		// at MatPrintScreen/MatPause rather than via a raw code, so they
		// are assigned by coordinate after this list, not by tableEntry code.

		// E0-prefixed (extended) keys: fold the high bit in per spec.
		{0x11 | e0, UKPRAlt}, {0x14 | e0, UKPRCtrl},
		{0x1F | e0, UKPLWin}, {0x27 | e0, UKPRWin}, {0x2F | e0, UKPMenu},
		{0x6C | e0, UKPHome}, {0x69 | e0, UKPEnd}, {0x7D | e0, UKPPageUp},
		{0x7A | e0, UKPPageDown}, {0x70 | e0, UKPInsert}, {0x71 | e0, UKPDelete},
		{0x75 | e0, UKPUp}, {0x6B | e0, UKPLeft}, {0x72 | e0, UKPDown},
		{0x74 | e0, UKPRight},
		{0x4A | e0, UKPKPSlash}, {0x5A | e0, UKPKPEnter},
	})

	// PrintScreen and Pause live at their reserved fixed matrix coordinates
	// (spec §3), never at a raw table-entry code: the decoder's make/break
	// of F7/PrintScreen/Pause addresses the matrix directly, but the
	// translation table must still resolve those coordinates back to a UKP
	// when the action resolver is asked about them.
	Set2Table.assign(MatPrintScreen, UKPPrintScreen)
	Set2Table.assign(MatPause, UKPPause)
}
