package propenc

import (
	"unicode/utf8"
)

// mnemonic holds the short escapes used for keys
var mnemonic = [...]byte{
	'\b': 'b',
	'\t': 't',
	'\n': 'n',
	'\f': 'f',
	'\r': 'r',
	' ':  ' ',
	'=':  '=',
	':':  ':',
}

// needsEscape returns true if r must be escaped at position i of a key
func needsEscape(i int, r rune) bool {
	switch {
	case r < 0x20:
		return true
	case r == ' ', r == '=', r == ':':
		return true
	case r == '#', r == '!':
		return i == 0
	}
	return false
}

// appendKeyEscape appends the escape for a unit which needsEscape
func appendKeyEscape(out []byte, u uint16) []byte {
	if int(u) < len(mnemonic) && mnemonic[u] != 0 {
		return append(out, '\\', mnemonic[u])
	}
	if u == '#' || u == '!' {
		return append(out, '\\', byte(u))
	}
	return append(out, '\\', 'u',
		lowerHex[u>>12&0xF],
		lowerHex[u>>8&0xF],
		lowerHex[u>>4&0xF],
		lowerHex[u&0xF])
}

// EscapeKey escapes the characters in key which would otherwise be
// read as separators, whitespace or a comment marker.
//
// A # or ! is only escaped at the start of the key since only there it
// would begin a comment. Control characters without a short escape are
// written as \u with lower case hex digits. Everything else, including
// non ASCII text, is unchanged - run the result through EncodeString to
// make it safe for the file.
func EscapeKey(key string) string {
	index := indexEscape(key)
	// nothing to escape, return input
	if index == -1 {
		return key
	}

	out := make([]byte, 0, len(key)+8)
	out = append(out, key[:index]...)
	for i := index; i < len(key); {
		r, l := utf8.DecodeRuneInString(key[i:])
		if r == utf8.RuneError && l <= 1 {
			// keep invalid bytes as they are
			out = append(out, key[i])
			i++
			continue
		}
		if needsEscape(i, r) {
			out = appendKeyEscape(out, uint16(r))
		} else {
			out = append(out, key[i:i+l]...)
		}
		i += l
	}
	return string(out)
}

// EscapeKeyUnits is EscapeKey for text already held as code units
func EscapeKeyUnits(units []uint16) []uint16 {
	out := make([]uint16, 0, len(units))
	var buf [EscapeLen]byte
	for i, u := range units {
		if u > 0x7F || !needsEscape(i, rune(u)) {
			out = append(out, u)
			continue
		}
		for _, b := range appendKeyEscape(buf[:0], u) {
			out = append(out, uint16(b))
		}
	}
	return out
}

// NeedsEscape returns true if EscapeKey would change key
func NeedsEscape(key string) bool {
	return indexEscape(key) >= 0
}

// indexEscape returns the index of the first byte of key which needs
// escaping or -1
func indexEscape(key string) int {
	for i, r := range key {
		if needsEscape(i, r) {
			return i
		}
	}
	return -1
}
