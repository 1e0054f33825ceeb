package propenc

import (
	"io"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// CharsetName is the name the properties encoding is known by
const CharsetName = "x-properties"

// Properties is the properties file encoding as an encoding.Encoding.
//
// Its decoder turns properties bytes into UTF-8 and its encoder turns
// UTF-8 into properties bytes.
var Properties encoding.Encoding = propertiesEncoding{}

type propertiesEncoding struct{}

// NewDecoder returns a decoder from properties bytes to UTF-8
func (propertiesEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: new(decodeTransformer)}
}

// NewEncoder returns an encoder from UTF-8 to properties bytes
func (propertiesEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: encodeTransformer{}}
}

// String returns the charset name
func (propertiesEncoding) String() string {
	return CharsetName
}

// NewReader returns a reader which decodes the properties bytes read
// from r into UTF-8
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, Properties.NewDecoder())
}

// NewWriter returns a writer which encodes UTF-8 written to it into
// properties bytes written to w.
//
// Close must be called to flush the last rune.
func NewWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, Properties.NewEncoder())
}

// decodeTransformer drives a Decoder and writes its output as UTF-8
type decodeTransformer struct {
	dec   Decoder
	high  uint16   // high surrogate waiting for its pair or 0
	units []uint16 // scratch
}

// Reset implements transform.Transformer
func (t *decodeTransformer) Reset() {
	t.dec.Reset()
	t.high = 0
}

// Transform implements transform.Transformer
//
// Input is taken a byte at a time so output is never split between
// calls - if it doesn't fit ErrShortDst is returned with nothing
// consumed.
func (t *decodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]
		// fast path for plain ASCII
		if b < utf8.RuneSelf && b != '\\' && t.dec.Pending() == 0 && t.high == 0 {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = b
			nDst++
			nSrc++
			continue
		}
		dec := t.dec
		t.units = dec.Decode(t.units[:0], src[nSrc:nSrc+1])
		n, high, ok := appendUTF8(dst[nDst:], t.units, t.high)
		if !ok {
			return nDst, nSrc, transform.ErrShortDst
		}
		t.dec, t.high = dec, high
		nDst += n
		nSrc++
	}
	if atEOF && (t.dec.Pending() > 0 || t.high != 0) {
		dec := t.dec
		t.units = dec.Flush(t.units[:0])
		n, high, ok := appendUTF8(dst[nDst:], t.units, t.high)
		if ok && high != 0 {
			// unpaired surrogate at the end
			if m := utf8.RuneLen(unicode.ReplacementChar); n+m <= len(dst)-nDst {
				n += utf8.EncodeRune(dst[nDst+n:], unicode.ReplacementChar)
				high = 0
			} else {
				ok = false
			}
		}
		if !ok {
			return nDst, nSrc, transform.ErrShortDst
		}
		t.dec, t.high = dec, high
		nDst += n
	}
	return nDst, nSrc, nil
}

// appendUTF8 writes units into dst as UTF-8 pairing up surrogates. It
// returns the bytes written, the new held high surrogate and false if
// dst was too small.
func appendUTF8(dst []byte, units []uint16, high uint16) (n int, held uint16, ok bool) {
	put := func(r rune) bool {
		if utf8.RuneLen(r) > len(dst)-n {
			return false
		}
		n += utf8.EncodeRune(dst[n:], r)
		return true
	}
	for _, u := range units {
		r := rune(u)
		if high != 0 {
			if utf16.IsSurrogate(r) && u >= 0xDC00 {
				if !put(utf16.DecodeRune(rune(high), r)) {
					return n, high, false
				}
				high = 0
				continue
			}
			if !put(unicode.ReplacementChar) {
				return n, high, false
			}
			high = 0
		}
		if utf16.IsSurrogate(r) {
			if u < 0xDC00 {
				high = u
				continue
			}
			r = unicode.ReplacementChar
		}
		if !put(r) {
			return n, high, false
		}
	}
	return n, high, true
}

// encodeTransformer turns UTF-8 into properties bytes
type encodeTransformer struct {
	transform.NopResetter
}

// Transform implements transform.Transformer
func (encodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var buf [2 * EscapeLen]byte
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			r, size = utf8.DecodeRune(src[nSrc:])
		}
		out := AppendRune(buf[:0], r)
		if len(out) > len(dst)-nDst {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += size
	}
	return nDst, nSrc, nil
}
