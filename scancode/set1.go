package scancode

// Set1Table is the Code Set 1 (XT) translation table: 16 rows × 8 columns,
// indexed directly by the raw 7-bit scan code (spec §4.1 "Set 1 (XT)").
var Set1Table Table

func init() {
	Set1Table = newTable(16, []tableEntry{
		{0x01, UKPEsc},
		{0x3B, UKPF1}, {0x3C, UKPF2}, {0x3D, UKPF3}, {0x3E, UKPF4},
		{0x3F, UKPF5}, {0x40, UKPF6}, {0x41, UKPF7}, {0x42, UKPF8},
		{0x43, UKPF9}, {0x44, UKPF10}, {0x57, UKPF11}, {0x58, UKPF12},

		{0x29, UKPGrave},
		{0x02, UKP1}, {0x03, UKP2}, {0x04, UKP3}, {0x05, UKP4}, {0x06, UKP5},
		{0x07, UKP6}, {0x08, UKP7}, {0x09, UKP8}, {0x0A, UKP9}, {0x0B, UKP0},
		{0x0C, UKPMinus}, {0x0D, UKPEqual}, {0x0E, UKPBackspace},

		{0x0F, UKPTab},
		{0x10, UKPQ}, {0x11, UKPW}, {0x12, UKPE}, {0x13, UKPR}, {0x14, UKPT},
		{0x15, UKPY}, {0x16, UKPU}, {0x17, UKPI}, {0x18, UKPO}, {0x19, UKPP},
		{0x1A, UKPLBracket}, {0x1B, UKPRBracket}, {0x2B, UKPBackslash},

		{0x3A, UKPCapsLock},
		{0x1E, UKPA}, {0x1F, UKPS}, {0x20, UKPD}, {0x21, UKPF}, {0x22, UKPG},
		{0x23, UKPH}, {0x24, UKPJ}, {0x25, UKPK}, {0x26, UKPL},
		{0x27, UKPSemicolon}, {0x28, UKPQuote}, {0x1C, UKPEnter},

		{0x2A, UKPLShift},
		{0x2C, UKPZ}, {0x2D, UKPX}, {0x2E, UKPC}, {0x2F, UKPV}, {0x30, UKPB},
		{0x31, UKPN}, {0x32, UKPM}, {0x33, UKPComma}, {0x34, UKPPeriod},
		{0x35, UKPSlash}, {0x36, UKPRShift},

		{0x1D, UKPLCtrl}, {0x38, UKPLAlt}, {0x39, UKPSpace},

		{0x45, UKPNumLock}, {0x46, UKPScrollLock},
		{0x37, UKPKPStar}, {0x4A, UKPKPMinus}, {0x4E, UKPKPPlus},
		{0x47, UKPKP7}, {0x48, UKPKP8}, {0x49, UKPKP9},
		{0x4B, UKPKP4}, {0x4C, UKPKP5}, {0x4D, UKPKP6},
		{0x4F, UKPKP1}, {0x50, UKPKP2}, {0x51, UKPKP3},
		{0x52, UKPKP0}, {0x53, UKPKPDot},
	})
}
