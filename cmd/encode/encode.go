// Package encode provides the encode command.
package encode

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
	Use:   "encode [source [destination]]",
	Short: `Encode text into the properties file encoding.`,
	// Warning! "|" will be replaced by backticks below
	Long: strings.ReplaceAll(`Reads text in the |--charset| character set and writes it in the
properties file encoding. Printable ASCII, tab, newline, form feed and
carriage return are copied. Everything else is written as a |\uXXXX|
escape, characters outside the basic multilingual plane as two.

If source is missing or |-| then stdin is read. If destination is
missing or |-| then the output goes to stdout.

    propenc encode messages_de.txt messages_de.properties
    propenc --charset iso-8859-15 encode < legacy.txt > legacy.properties

Backslashes are not escaped. Use |propenc escapekey| to make keys safe.
`, "|", "`"),
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(0, 2, command, args)
		cmd.Run(command, func(ctx context.Context) error {
			return encode(ctx, args)
		})
	},
}

// encode converts args[0] into properties bytes in args[1]
func encode(ctx context.Context, args []string) error {
	enc, err := cmd.Charset()
	if err != nil {
		return err
	}
	return cmd.Transcode(ctx, args, conv.ToProperties(enc))
}
