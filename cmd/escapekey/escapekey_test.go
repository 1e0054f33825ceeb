package escapekey

import (
	"bytes"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/propkit/propenc/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeKeys(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, escapeKeys(&out, []string{"plain", "a b", "!bang", "x:y", "tab\there"}, false))
	assert.Equal(t, "plain\na\\ b\n\\!bang\nx\\:y\ntab\\there\n", out.String())
}

func TestEscapeKeysEncode(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, escapeKeys(&out, []string{"größe x"}, true))
	bs := `\`
	assert.Equal(t, "gr"+bs+"u00F6"+bs+"u00DFe"+bs+" x\n", out.String())
}

func TestEscapeLines(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, escapeLines(&out, strings.NewReader("one two\r\n#three\nfour"), false))
	assert.Equal(t, "one\\ two\n\\#three\nfour\n", out.String())
}

func TestEscapeLinesReadError(t *testing.T) {
	var out bytes.Buffer
	err := escapeLines(&out, iotest.TimeoutReader(iotest.OneByteReader(strings.NewReader("ab"))), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read keys")
}

// setStdio replaces the command's stdin and stdout for the test
func setStdio(t *testing.T, in string) *bytes.Buffer {
	oldIn, oldOut := cmd.Stdin, cmd.Stdout
	out := new(bytes.Buffer)
	cmd.Stdin, cmd.Stdout = strings.NewReader(in), out
	t.Cleanup(func() {
		cmd.Stdin, cmd.Stdout = oldIn, oldOut
	})
	return out
}

func TestEscapeKeyArgs(t *testing.T) {
	out := setStdio(t, "ignored\n")
	require.NoError(t, escapeKey([]string{"a=b", "#c"}))
	assert.Equal(t, "a\\=b\n\\#c\n", out.String())
}

func TestEscapeKeyStdin(t *testing.T) {
	out := setStdio(t, "x y\n!z\n")
	require.NoError(t, escapeKey(nil))
	assert.Equal(t, "x\\ y\n\\!z\n", out.String())
}

func TestEscapeKeyStdinEncode(t *testing.T) {
	oldEncode := encode
	encode = true
	defer func() { encode = oldEncode }()
	out := setStdio(t, "é k\n")
	require.NoError(t, escapeKey(nil))
	assert.Equal(t, `\`+"u00E9"+`\ k`+"\n", out.String())
}
