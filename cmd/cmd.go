// Package cmd implements the propenc command
//
// It is in a sub package so it's internals can be re-used elsewhere
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/propkit/propenc/conv"
	"github.com/propkit/propenc/conv/config/configflags"
	convlog "github.com/propkit/propenc/conv/log"
	"github.com/propkit/propenc/lib/charset"
	"github.com/propkit/propenc/lib/exitcode"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
)

// Errors
var (
	errorNotEnoughArguments = errors.New("not enough arguments")
	errorTooManyArguments   = errors.New("too many arguments")
)

// Root is the main propenc command
var Root = &cobra.Command{
	Use:   "propenc",
	Short: "Convert text to and from the properties file encoding",
	Long: `
Propenc converts text to and from the encoding used by Java style
.properties files. These are ISO-8859-1 with every other character
written as a \uXXXX escape.

Text is read and written in the character set given by --charset which
defaults to UTF-8.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	configflags.AddFlags(Root.PersistentFlags())
	cobra.OnInitialize(initConfig)
}

// initConfig is run by cobra after the command line is parsed
func initConfig() {
	// Finish parsing any command line flags
	if err := configflags.SetFlags(Root.PersistentFlags()); err != nil {
		conv.Errorf(nil, "%v", err)
		os.Exit(exitcode.UsageError)
	}

	// Start the logger
	if err := convlog.InitLogging(); err != nil {
		conv.Errorf(nil, "Failed to start logging: %v", err)
		os.Exit(exitcode.UsageError)
	}

	// Write the args for debug purposes
	conv.Debugf("propenc", "Version %q starting with parameters %q", conv.Version, os.Args)
}

// Charset returns the encoding named by --charset
func Charset() (encoding.Encoding, error) {
	enc, err := charset.Lookup(conv.Config.Charset)
	if err != nil {
		return nil, errors.Wrap(err, "bad --charset")
	}
	conv.Debugf(nil, "Using charset %s", charset.Name(enc))
	return enc, nil
}

// Run the function with a context which is cancelled if propenc is
// interrupted, log any error and exit with the matching exit code.
func Run(cmd *cobra.Command, f func(ctx context.Context) error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmdErr := f(ctx)
	stop()
	if cmdErr != nil {
		conv.Errorf(nil, "Failed to %s: %v", cmd.Name(), cmdErr)
	}
	resolveExitCode(cmdErr)
}

// checkArgs returns an error if the number of args is out of range
func checkArgs(MinArgs, MaxArgs int, cmd *cobra.Command, args []string) error {
	if len(args) < MinArgs {
		return errors.Wrapf(errorNotEnoughArguments, "command %s needs %d arguments minimum: you provided %d non flag arguments: %q", cmd.Name(), MinArgs, len(args), args)
	} else if MaxArgs >= 0 && len(args) > MaxArgs {
		return errors.Wrapf(errorTooManyArguments, "command %s needs %d arguments maximum: you provided %d non flag arguments: %q", cmd.Name(), MaxArgs, len(args), args)
	}
	return nil
}

// CheckArgs checks there are enough arguments and prints a message if not
//
// A MaxArgs of -1 means no maximum.
func CheckArgs(MinArgs, MaxArgs int, cmd *cobra.Command, args []string) {
	if err := checkArgs(MinArgs, MaxArgs, cmd, args); err != nil {
		_ = cmd.Usage()
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		resolveExitCode(err)
	}
}

// ExitCode returns the exit code propenc uses for err
func ExitCode(err error) int {
	if err == nil {
		return exitcode.Success
	}
	cause := errors.Cause(err)
	if _, ok := cause.(*conv.ConversionError); ok {
		return exitcode.ConversionError
	}
	switch {
	case cause == context.Canceled:
		return exitcode.Interrupted
	case os.IsNotExist(cause):
		return exitcode.FileNotFound
	case cause == errorNotEnoughArguments,
		cause == errorTooManyArguments,
		cause == charset.ErrUnknownCharset,
		cause == conv.ErrorIsDir,
		cause == conv.ErrorSameFile,
		cause == conv.ErrorChunkSize:
		return exitcode.UsageError
	}
	return exitcode.UncategorizedError
}

func resolveExitCode(err error) {
	if closeErr := convlog.Close(); closeErr != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to close log file: %v\n", closeErr)
	}
	os.Exit(ExitCode(err))
}

// Main runs propenc
func Main() {
	if err := Root.Execute(); err != nil {
		conv.Errorf(nil, "Fatal error: %v", err)
		os.Exit(exitcode.UsageError)
	}
}
