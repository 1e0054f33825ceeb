// Package escapekey provides the escapekey command.
package escapekey

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/propkit/propenc/cmd"
	"github.com/propkit/propenc/conv"
	"github.com/propkit/propenc/conv/config/flags"
	"github.com/spf13/cobra"
)

// Globals
var (
	encode = false
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	flags.BoolVarP(cmdFlags, &encode, "encode", "e", encode, "Encode the escaped keys so they are pure ASCII")
}

var commandDefinition = &cobra.Command{
	Use:   "escapekey [key]...",
	Short: `Escape keys for use in a properties file.`,
	// Warning! "|" will be replaced by backticks below
	Long: strings.ReplaceAll(`Prints each key with the characters which would otherwise end the
key or start a comment escaped, one per line.

Spaces, |=| and |:| are escaped with a backslash as are |#| and |!| at
the start of the key. Backspace, tab, newline, form feed and carriage
return use their short escapes and other control characters become
|\uXXXX| escapes.

    $ propenc escapekey "window title" "#1"
    window\ title
    \#1

Other characters are left alone. Use |--encode| to also escape them
for the properties file encoding.

If no keys are given they are read from stdin, one per line.
`, "|", "`"),
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(0, -1, command, args)
		cmd.Run(command, func(ctx context.Context) error {
			return escapeKey(args)
		})
	},
}

// escapeKey escapes args or the lines of stdin if there are none
func escapeKey(args []string) error {
	if len(args) > 0 {
		return escapeKeys(cmd.Stdout, args, encode)
	}
	in, err := cmd.OpenInput("-")
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()
	return escapeLines(cmd.Stdout, in, encode)
}

// escapeKeys writes the escaped keys to out one per line
func escapeKeys(out io.Writer, keys []string, encode bool) error {
	for _, key := range conv.EscapeKeys(keys, encode) {
		if _, err := fmt.Fprintln(out, key); err != nil {
			return errors.Wrap(err, "failed to write key")
		}
	}
	return nil
}

// escapeLines escapes each line read from in
func escapeLines(out io.Writer, in io.Reader, encode bool) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := escapeKeys(out, []string{strings.TrimSuffix(scanner.Text(), "\r")}, encode); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "failed to read keys")
}
