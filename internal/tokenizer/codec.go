package tokenizer

// getChar decodes one UTF-8 code point starting at buf[0] and reports its
// scalar value and its encoded length in bytes (1-4). It never reads past the
// slice bounds, tolerating truncated or malformed sequences the way the
// original C tokenizer's get_char does: a short or invalid trailing byte is
// simply folded into the running value rather than rejected.
//
// Classification is by the leading bits of the first byte:
//
//	0xxxxxxx -> length 1, low 7 bits
//	110xxxxx -> length 2, low 5 bits
//	1110xxxx -> length 3, low 4 bits
//	other    -> length 4, low 3 bits
//
// Continuation bytes each contribute their low six bits.
func getChar(buf []byte) (scalar uint32, length int) {
	c := buf[0]
	length = 4
	scalar = uint32(c & 0x07)

	switch {
	case c&0x80 == 0:
		scalar = uint32(c & 0x7F)
		length = 1
	case c&0xE0 == 0xC0:
		scalar = uint32(c & 0x1F)
		length = 2
	case c&0xF0 == 0xE0:
		scalar = uint32(c & 0x0F)
		length = 3
	}

	if length > len(buf) {
		length = len(buf)
	}

	for i := 1; i < length; i++ {
		scalar = (scalar << 6) | uint32(buf[i]&0x3F)
	}

	return scalar, length
}

// isASCIIByte reports whether a decoded code point is exactly the ASCII byte
// b, the comparison the state machine uses for the structural ASCII
// characters (newline, space, tab). Comparing the whole scalar avoids
// misclassifying a non-ASCII scalar whose low byte happens to coincide with
// one of these values.
func isASCIIByte(c uint32, b byte) bool {
	return c <= 0x7F && byte(c) == b
}

func isSpaceOrTab(c uint32) bool {
	return isASCIIByte(c, ' ') || isASCIIByte(c, '\t')
}
