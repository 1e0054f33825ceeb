// Package charset finds text encodings by name
package charset

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/propkit/propenc/lib/propenc"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknownCharset is returned by Lookup for names it can't find
var ErrUnknownCharset = errors.New("unknown charset")

// Default is the charset used for plain text when none is given
const Default = "utf-8"

// Lookup returns the encoding for name.
//
// As well as the IANA and WHATWG names, "x-properties" finds the
// properties file encoding. An empty name is UTF-8.
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case propenc.CharsetName:
		return propenc.Properties, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err == nil && enc != nil {
		return enc, nil
	}
	enc, err = htmlindex.Get(name)
	if err == nil && enc != nil {
		return enc, nil
	}
	return nil, errors.Wrapf(ErrUnknownCharset, "%q", name)
}

// Name returns a name for enc suitable for showing to the user
func Name(enc encoding.Encoding) string {
	if enc == propenc.Properties {
		return propenc.CharsetName
	}
	if name, err := ianaindex.MIME.Name(enc); err == nil && name != "" {
		return name
	}
	if name, err := ianaindex.IANA.Name(enc); err == nil && name != "" {
		return name
	}
	if s, ok := enc.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", enc)
}
