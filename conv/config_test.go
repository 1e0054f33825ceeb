package conv

import (
	"testing"

	"github.com/propkit/propenc/lib/charset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

func TestNewConfig(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, LogLevelNotice, c.LogLevel)
	assert.Equal(t, 32*Kibi, c.ChunkSize)
	assert.Equal(t, charset.Default, c.Charset)
	assert.False(t, c.ReplaceUnsupported)

	enc, err := charset.Lookup(c.Charset)
	require.NoError(t, err)
	assert.Equal(t, unicode.UTF8, enc)
}

func TestOptionToEnv(t *testing.T) {
	assert.Equal(t, "PROPENC_CHUNK_SIZE", OptionToEnv("chunk-size"))
	assert.Equal(t, "PROPENC_REPLACE_UNSUPPORTED", OptionToEnv("replace-unsupported"))
}
