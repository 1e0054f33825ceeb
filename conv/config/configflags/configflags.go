// Package configflags defines the flags used by propenc.  It is
// decoupled into a separate package so it can be replaced.
package configflags

// Options set by command line flags
import (
	"github.com/pkg/errors"
	"github.com/propkit/propenc/conv"
	"github.com/propkit/propenc/conv/config/flags"
	"github.com/propkit/propenc/conv/log"
	"github.com/spf13/pflag"
)

var (
	// these will get interpreted into conv.Config via SetFlags() below
	verbose int
	quiet   bool
)

// AddFlags adds the global flags to the command
func AddFlags(flagSet *pflag.FlagSet) {
	// NB defaults which aren't the zero for the type should be set in conv/config.go NewConfig
	flags.CountVarP(flagSet, &verbose, "verbose", "v", "Print lots more stuff (repeat for more)")
	flags.BoolVarP(flagSet, &quiet, "quiet", "q", false, "Print as little stuff as possible")
	flags.FVarP(flagSet, &conv.Config.LogLevel, "log-level", "", "Log level DEBUG|INFO|NOTICE|ERROR")
	flags.BoolVarP(flagSet, &conv.Config.UseJSONLog, "use-json-log", "", conv.Config.UseJSONLog, "Use json log format.")
	flags.StringVarP(flagSet, &log.Opt.File, "log-file", "", log.Opt.File, "Log everything to this file")
	flags.StringVarP(flagSet, &log.Opt.Format, "log-format", "", log.Opt.Format, "Comma separated list of log format options")
	flags.FVarP(flagSet, &conv.Config.ChunkSize, "chunk-size", "", "Read input in chunks of this size.")
	flags.StringVarP(flagSet, &conv.Config.Charset, "charset", "", conv.Config.Charset, "Character set of the native text.")
	flags.BoolVarP(flagSet, &conv.Config.ReplaceUnsupported, "replace-unsupported", "", conv.Config.ReplaceUnsupported, "Replace characters the charset can't hold instead of failing.")
}

// SetFlags converts any flags into internal configuration
func SetFlags(flagSet *pflag.FlagSet) error {
	if verbose >= 2 {
		conv.Config.LogLevel = conv.LogLevelDebug
	} else if verbose >= 1 {
		conv.Config.LogLevel = conv.LogLevelInfo
	}
	if quiet {
		if verbose > 0 {
			return errors.New("can't set -v and -q")
		}
		conv.Config.LogLevel = conv.LogLevelError
	}
	logLevelFlag := flagSet.Lookup("log-level")
	if logLevelFlag != nil && logLevelFlag.Changed {
		if verbose > 0 {
			return errors.New("can't set -v and --log-level")
		}
		if quiet {
			return errors.New("can't set -q and --log-level")
		}
	}
	if conv.Config.ChunkSize <= 0 {
		return errors.Wrapf(conv.ErrorChunkSize, "--chunk-size %v", conv.Config.ChunkSize)
	}
	return nil
}
