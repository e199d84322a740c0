package scancode

// Set3Table is the Code Set 3 (122-key Terminal) translation table: 16 rows
// × 8 columns, indexed directly by the raw scan code (spec §4.1 "Set 3
// (Terminal)"). No decoder consumes this table today (spec §9 open
// question, resolved as "leave stubbed"), but the table itself is required
// by spec §3 regardless.
var Set3Table Table

func init() {
	Set3Table = newTable(16, []tableEntry{
		{0x08, UKPEsc},
		{0x07, UKPF1}, {0x0F, UKPF2}, {0x17, UKPF3}, {0x1F, UKPF4},
		{0x27, UKPF5}, {0x2F, UKPF6}, {0x37, UKPF7}, {0x3F, UKPF8},
		{0x47, UKPF9}, {0x4F, UKPF10}, {0x56, UKPF11}, {0x5E, UKPF12},

		{0x0E, UKPGrave},
		{0x16, UKP1}, {0x1E, UKP2}, {0x26, UKP3}, {0x25, UKP4}, {0x2E, UKP5},
		{0x36, UKP6}, {0x3D, UKP7}, {0x3E, UKP8}, {0x46, UKP9}, {0x45, UKP0},
		{0x4E, UKPMinus}, {0x55, UKPEqual}, {0x66, UKPBackspace},

		{0x0D, UKPTab},
		{0x15, UKPQ}, {0x1D, UKPW}, {0x24, UKPE}, {0x2D, UKPR}, {0x2C, UKPT},
		{0x35, UKPY}, {0x3C, UKPU}, {0x43, UKPI}, {0x44, UKPO}, {0x4D, UKPP},
		{0x54, UKPLBracket}, {0x5B, UKPRBracket}, {0x5C, UKPBackslash},

		{0x14, UKPCapsLock},
		{0x1C, UKPA}, {0x1B, UKPS}, {0x23, UKPD}, {0x2B, UKPF}, {0x34, UKPG},
		{0x33, UKPH}, {0x3B, UKPJ}, {0x42, UKPK}, {0x4B, UKPL},
		{0x4C, UKPSemicolon}, {0x52, UKPQuote}, {0x5A, UKPEnter},

		{0x12, UKPLShift},
		{0x1A, UKPZ}, {0x22, UKPX}, {0x21, UKPC}, {0x2A, UKPV}, {0x32, UKPB},
		{0x31, UKPN}, {0x3A, UKPM}, {0x41, UKPComma}, {0x49, UKPPeriod},
		{0x4A, UKPSlash}, {0x59, UKPRShift},

		{0x11, UKPLCtrl}, {0x19, UKPLAlt}, {0x29, UKPSpace},

		{0x76, UKPNumLock}, {0x5F, UKPScrollLock},
		{0x7E, UKPKPStar}, {0x0C, UKPKPMinus}, {0x7C, UKPKPPlus},
		{0x6C, UKPKP7}, {0x75, UKPKP8}, {0x7D, UKPKP9},
		{0x6B, UKPKP4}, {0x73, UKPKP5}, {0x74, UKPKP6},
		{0x69, UKPKP1}, {0x72, UKPKP2}, {0x7A, UKPKP3},
		{0x70, UKPKP0}, {0x71, UKPKPDot},
	})
}
