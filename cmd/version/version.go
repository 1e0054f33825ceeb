// Package version provides the version command.
package version

import (
	"context"
	"fmt"
	"io"

	"github.com/coreos/go-semver/semver"
	"github.com/pkg/errors"
	"github.com/propkit/propenc/cmd"
	"github.com/propkit/propenc/conv"
	"github.com/propkit/propenc/conv/config/flags"
	"github.com/propkit/propenc/lib/buildinfo"
	"github.com/spf13/cobra"
)

var (
	requireVersion = ""
)

// errorTooOld is returned when the running version is older than --require
var errorTooOld = errors.New("propenc is too old")

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	flags.StringVarP(cmdFlags, &requireVersion, "require", "", requireVersion, "Fail unless the version is at least this")
}

var commandDefinition = &cobra.Command{
	Use:   "version",
	Short: `Show the version number.`,
	Long: `Show the propenc version number, the go version, the build target
OS and architecture and the runtime OS and kernel version and bitness.

For example:

    $ propenc version
    propenc v1.0.0
    - os/version: ubuntu 22.04 (64 bit)
    - os/kernel: 5.15.0-48-generic (x86_64)
    - os/type: linux
    - os/arch: amd64
    - go/version: go1.17

If you supply the --require flag then the command fails if propenc is
older than the version given, which is useful in scripts.

    $ propenc version --require v1.1
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(0, 0, command, args)
		if requireVersion != "" {
			cmd.Run(command, func(ctx context.Context) error {
				return checkVersion(conv.Version, requireVersion)
			})
			return
		}
		showVersion(cmd.Stdout, buildinfo.Get())
	},
}

// showVersion prints the version to out
func showVersion(out io.Writer, info buildinfo.Info) {
	_, _ = fmt.Fprintf(out, "propenc %s\n", conv.Version)
	for _, line := range info.Lines() {
		_, _ = fmt.Fprintln(out, line)
	}
}

// strip a leading v off the string
func stripV(s string) string {
	if len(s) > 0 && s[0] == 'v' {
		return s[1:]
	}
	return s
}

// parseVersion parses a version allowing a leading v and missing
// minor or patch numbers
func parseVersion(s string) (*semver.Version, error) {
	s = stripV(s)
	v, err := semver.NewVersion(s)
	if err == nil {
		return v, nil
	}
	for _, suffix := range []string{".0", ".0.0"} {
		if v, tryErr := semver.NewVersion(s + suffix); tryErr == nil {
			return v, nil
		}
	}
	return nil, errors.Wrapf(err, "failed to parse version %q", s)
}

// checkVersion returns an error if current is older than want
func checkVersion(current, want string) error {
	vCurrent, err := parseVersion(current)
	if err != nil {
		return err
	}
	vWant, err := parseVersion(want)
	if err != nil {
		return err
	}
	if vCurrent.LessThan(*vWant) {
		return errors.Wrapf(errorTooOld, "version %v is older than %v", vCurrent, vWant)
	}
	conv.Debugf(nil, "Version %v is at least %v", vCurrent, vWant)
	return nil
}
