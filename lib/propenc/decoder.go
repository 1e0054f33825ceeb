package propenc

import (
	"unicode/utf16"
)

// decodeState is where the Decoder is within an escape sequence
type decodeState uint8

const (
	stateText   decodeState = iota // outside an escape
	stateSlash                     // read `\`
	stateEscape                    // read `\u` and pending.n-2 hex digits
)

// Decoder converts properties file bytes into code units.
//
// Input may be supplied in chunks split at any point - an escape
// sequence which is incomplete at the end of one chunk is held until
// the next one arrives. Call Flush at the end of the stream.
//
// Bytes outside escapes map straight onto code units 0-255. Malformed
// escapes are never an error, they are passed through as literal
// text.
//
// A Decoder must not be used from more than one goroutine at once.
type Decoder struct {
	pending [maxPending]byte
	n       int
	state   decodeState
	value   uint16
}

// Decode decodes chunk appending the code units to dst
func (d *Decoder) Decode(dst []uint16, chunk []byte) []uint16 {
	for i := 0; i < len(chunk); i++ {
		b := chunk[i]
		switch d.state {
		case stateText:
			if b != '\\' {
				// copy up to the next backslash
				j := i + 1
				for j < len(chunk) && chunk[j] != '\\' {
					j++
				}
				for _, c := range chunk[i:j] {
					dst = append(dst, uint16(c))
				}
				i = j - 1
				continue
			}
			d.push(b)
			d.state = stateSlash
		case stateSlash:
			if b != 'u' {
				// not an escape - `\\` included
				dst = d.literal(dst, b)
				continue
			}
			d.push(b)
			d.state = stateEscape
			d.value = 0
		case stateEscape:
			v := hexValue[b]
			if v < 0 {
				dst = d.literal(dst, b)
				continue
			}
			d.value = d.value<<4 | uint16(v)
			if d.n < maxPending {
				d.push(b)
				continue
			}
			if IsPassthrough(d.value) {
				dst = d.literal(dst, b)
				continue
			}
			dst = append(dst, d.value)
			d.Reset()
		}
	}
	return dst
}

// Flush appends any incomplete escape sequence to dst as literal text
// and resets the Decoder
func (d *Decoder) Flush(dst []uint16) []uint16 {
	for _, c := range d.pending[:d.n] {
		dst = append(dst, uint16(c))
	}
	d.Reset()
	return dst
}

// Reset discards any pending input
func (d *Decoder) Reset() {
	*d = Decoder{}
}

// Pending returns the number of bytes held waiting for the rest of an
// escape sequence
func (d *Decoder) Pending() int {
	return d.n
}

func (d *Decoder) push(b byte) {
	d.pending[d.n] = b
	d.n++
}

// literal appends the pending bytes and b as they are and resets
func (d *Decoder) literal(dst []uint16, b byte) []uint16 {
	dst = d.Flush(dst)
	return append(dst, uint16(b))
}

// DecodeBytes decodes a complete stream
func DecodeBytes(b []byte) []uint16 {
	var d Decoder
	out := d.Decode(make([]uint16, 0, len(b)), b)
	return d.Flush(out)
}

// DecodeString decodes a complete stream into a string
//
// Surrogate pairs are combined. Unpaired surrogates become U+FFFD.
func DecodeString(b []byte) string {
	return string(utf16.Decode(DecodeBytes(b)))
}
