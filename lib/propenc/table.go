/*
Translate text to and from the byte encoding of properties files

Properties files are stored as ISO-8859-1 bytes. Any code unit which
can't be represented that way, as well as most control characters, is
written as a \uXXXX escape sequence of six bytes.

The codec works on 16 bit code units (UTF-16) rather than runes as the
format knows nothing of surrogate pairs.
*/
package propenc

const (
	// EscapeLen is the length of a \uXXXX escape sequence
	EscapeLen = 6
	// the most bytes a Decoder holds between calls: `\uXXX`
	maxPending = EscapeLen - 1
	// printable ASCII, encoded as a single byte
	firstPrintable = 0x20
	lastPrintable  = 0x7E
)

const (
	upperHex = "0123456789ABCDEF"
	lowerHex = "0123456789abcdef"
)

// PassthroughExceptions are the code units which are not decoded
// from a valid escape sequence. The escape is kept as literal text
// instead.
//
// NB this list must only be changed to match the behaviour of
// existing properties editors - don't add to it by analogy.
var PassthroughExceptions = [...]uint16{
	0x09, // TAB
	0x0C, // FF
	0x20, // SPACE
}

// rawUnit is set for the code units the encoder writes as a single
// byte rather than an escape sequence
var rawUnit = func() (t [0x80]bool) {
	for u := firstPrintable; u <= lastPrintable; u++ {
		t[u] = true
	}
	for _, u := range []byte{'\t', '\n', '\f', '\r'} {
		t[u] = true
	}
	return t
}()

// hexValue maps a byte to its value as a hex digit or -1
var hexValue = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < 16; i++ {
		t[upperHex[i]] = int8(i)
		t[lowerHex[i]] = int8(i)
	}
	return t
}()

// IsPassthrough returns true if an escape sequence for u should be
// left undecoded
func IsPassthrough(u uint16) bool {
	for _, p := range PassthroughExceptions {
		if u == p {
			return true
		}
	}
	return false
}

// isRaw returns true if u is written as a single byte
func isRaw(u uint16) bool {
	return u < uint16(len(rawUnit)) && rawUnit[u]
}
