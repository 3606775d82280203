// Package packer implements the 2-bit ACGT base codec: encoding a base
// byte to its 2-bit code and back, and bulk-unpacking a packed byte to
// its four ASCII characters via a precomputed lookup table (spec §4.4).
package packer

// codeTable maps an ASCII byte to its 2-bit code, or -1 if the byte is
// not one of A, C, G, T, a, c, g, t (such bases are never packed; they
// live in the implicit N gaps between fragments). Both cases map to the
// same code: the writer's base-stream protocol accepts lowercase input
// directly, without requiring a prior case-normalizing transform.
var codeTable [256]int8

// unpackTable maps a packed byte to its four ASCII characters, LSB-first:
// unpackTable[b][0] is the base at bit 0..2, unpackTable[b][3] the base
// at bit 6..8.
var unpackTable [256][4]byte

var baseChars = [4]byte{'A', 'C', 'G', 'T'}

func init() {
	for i := range codeTable {
		codeTable[i] = -1
	}
	codeTable['A'], codeTable['a'] = 0, 0
	codeTable['C'], codeTable['c'] = 1, 1
	codeTable['G'], codeTable['g'] = 2, 2
	codeTable['T'], codeTable['t'] = 3, 3

	for b := 0; b < 256; b++ {
		for shift := 0; shift < 4; shift++ {
			code := (b >> (shift * 2)) & 0x3
			unpackTable[b][shift] = baseChars[code]
		}
	}
}

// Encode returns b's 2-bit code and whether b is one of A, C, G, T (either case).
func Encode(b byte) (code uint8, isACGT bool) {
	c := codeTable[b]
	if c < 0 {
		return 0, false
	}

	return uint8(c), true
}

// Unpack returns the four ASCII bases packed into b, LSB-first.
func Unpack(b byte) [4]byte {
	return unpackTable[b]
}
