// Package decode provides the decode command.
package decode

import (
	"context"
	"strings"

	"github.com/propkit/propenc/cmd"
	"github.com/propkit/propenc/conv"
	"github.com/spf13/cobra"
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
}

var commandDefinition = &cobra.Command{
	Use:   "decode [source [destination]]",
	Short: `Decode a properties file into text.`,
	// Warning! "|" will be replaced by backticks below
	Long: strings.ReplaceAll(`Reads a file in the properties file encoding, replaces each |\uXXXX|
escape with the character it stands for and writes the text in the
|--charset| character set.

Escapes for tab, form feed and space are left as they are so they
still mean the same thing when the file is parsed. So are malformed
escapes and any other backslash sequences.

If source is missing or |-| then stdin is read. If destination is
missing or |-| then the output goes to stdout.

    propenc decode messages_de.properties messages_de.txt

If the text contains characters the charset can't hold the command
fails unless |--replace-unsupported| is given.
`, "|", "`"),
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(0, 2, command, args)
		cmd.Run(command, func(ctx context.Context) error {
			return decode(ctx, args)
		})
	},
}

// decode converts the properties bytes in args[0] into text in args[1]
func decode(ctx context.Context, args []string) error {
	enc, err := cmd.Charset()
	if err != nil {
		return err
	}
	return cmd.Transcode(ctx, args, conv.FromProperties(enc, conv.Config.ReplaceUnsupported))
}
