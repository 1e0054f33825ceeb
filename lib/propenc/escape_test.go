package propenc

import (
	"strconv"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
)

func TestEscapeKey(t *testing.T) {
	for i, tc := range []struct {
		in  string
		out string
	}{
		{"", ""},
		{"simple.key", "simple.key"},
		{"a b", `a\ b`},
		{" lead", `\ lead`},
		{"trail ", `trail\ `},
		{"a=b", `a\=b`},
		{"a:b", `a\:b`},
		{"#abc#def", `\#abc#def`},
		{"!abc!def", `\!abc!def`},
		{"a#b", "a#b"},
		{"a!b", "a!b"},
		{"#", `\#`},
		{"\b\t\n\f\r", `\b\t\n\f\r`},
		{"\x00", `\` + "u0000"},
		{"\x01", `\` + "u0001"},
		{"\x0b", `\` + "u000b"},
		{"\x1f", `\` + "u001f"},
		{"\x7f", "\x7f"},
		{"Grüße", "Grüße"},
		{"ключ значение", `ключ\ значение`},
		{"a \x00=", `a\ \` + "u0000" + `\=`},
		{`\\`, `\\`},
		{"\xffa b", "\xffa\\ b"},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := EscapeKey(tc.in)
			assert.Equal(t, tc.out, got, "EscapeKey(%q)", tc.in)
			assert.Equal(t, tc.in != tc.out, NeedsEscape(tc.in))
		})
	}
}

func TestEscapeKeyIdempotentOnCleanInput(t *testing.T) {
	for _, s := range []string{"abc", "a.b.c", "a#b!c", "Grüße", "日本語", `\`} {
		once := EscapeKey(s)
		assert.Equal(t, s, once)
		assert.Equal(t, once, EscapeKey(once))
	}
}

func TestEscapeKeyUnits(t *testing.T) {
	for _, s := range []string{"", "a b", "#a#b", "a=b:c", "\x01\t", "Grüße", "\U0001F600 x"} {
		want := utf16.Encode([]rune(EscapeKey(s)))
		got := EscapeKeyUnits(utf16.Encode([]rune(s)))
		assert.Equal(t, want, got, "EscapeKeyUnits(%q)", s)
	}
	// lone surrogates are left alone
	assert.Equal(t, []uint16{0xD800, '\\', ' '}, EscapeKeyUnits([]uint16{0xD800, ' '}))
}

func TestEscapeKeyThenEncode(t *testing.T) {
	// the escaped key is still text - encoding makes it ASCII
	key := EscapeKey("# schlüssel")
	assert.Equal(t, `\#\ schlüssel`, key)
	assert.Equal(t, `\#\ schl`+esc("00FC")+"ssel", string(EncodeString(key)))
	// only the escapes the encoder makes are undone by decoding
	assert.Equal(t, key, DecodeString(EncodeString(key)))
}
