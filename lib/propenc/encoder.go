package propenc

import (
	"unicode"
	"unicode/utf16"
)

// Encoder converts code units into properties file bytes.
//
// It holds no state so the zero value is ready to use and may be
// shared between goroutines.
type Encoder struct{}

// Encode appends the encoding of units to dst and returns it
func (Encoder) Encode(dst []byte, units []uint16) []byte {
	for _, u := range units {
		dst = AppendUnit(dst, u)
	}
	return dst
}

// AppendUnit appends the encoding of a single code unit to dst.
//
// Printable ASCII and TAB, LF, FF, CR are written as is. Nothing is
// escaped with a backslash here, see EscapeKey for that. Anything
// else becomes \uXXXX with upper case hex digits.
func AppendUnit(dst []byte, u uint16) []byte {
	if isRaw(u) {
		return append(dst, byte(u))
	}
	return append(dst, '\\', 'u',
		upperHex[u>>12&0xF],
		upperHex[u>>8&0xF],
		upperHex[u>>4&0xF],
		upperHex[u&0xF])
}

// EncodeUnit returns the bytes for a single code unit
func EncodeUnit(u uint16) []byte {
	return AppendUnit(make([]byte, 0, EscapeLen), u)
}

// Encode returns the bytes for units
func Encode(units []uint16) []byte {
	return Encoder{}.Encode(make([]byte, 0, len(units)), units)
}

// AppendRune appends the encoding of r to dst.
//
// Runes outside the BMP are written as two escapes, one for each half
// of the surrogate pair.
func AppendRune(dst []byte, r rune) []byte {
	if r1, r2 := utf16.EncodeRune(r); r1 != unicode.ReplacementChar {
		dst = AppendUnit(dst, uint16(r1))
		return AppendUnit(dst, uint16(r2))
	}
	if r < 0 || r > unicode.MaxRune || utf16.IsSurrogate(r) {
		r = unicode.ReplacementChar
	}
	return AppendUnit(dst, uint16(r))
}

// EncodeString encodes a UTF-8 string.
//
// Invalid UTF-8 is encoded as U+FFFD.
func EncodeString(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = AppendRune(out, r)
	}
	return out
}
