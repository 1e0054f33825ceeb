package conv

import (
	"strings"

	"github.com/propkit/propenc/lib/charset"
)

// Global
var (
	// Config is the global config
	Config = NewConfig()

	// Version of propenc
	Version = "v1.0.0-DEV"
)

// ConfigInfo is propenc's global config
type ConfigInfo struct {
	LogLevel           LogLevel
	UseJSONLog         bool
	ChunkSize          SizeSuffix
	Charset            string
	ReplaceUnsupported bool
}

// NewConfig creates a new config with everything set to the default
// value.  These are the ultimate defaults and are overridden by the
// config module.
func NewConfig() *ConfigInfo {
	c := new(ConfigInfo)

	// Set any values which aren't the zero for the type
	c.LogLevel = LogLevelNotice
	c.ChunkSize = SizeSuffix(32 * Kibi)
	c.Charset = charset.Default

	return c
}

// OptionToEnv converts an option name, eg "chunk-size" into an
// environment name "PROPENC_CHUNK_SIZE"
func OptionToEnv(name string) string {
	return "PROPENC_" + strings.ToUpper(strings.Replace(name, "-", "_", -1))
}
