// Package env contains functions for dealing with environment variables
// and paths given on the command line
package env

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// ShellExpandHelp describes what ShellExpand does for inclusion into help
const ShellExpandHelp = "\n\nLeading `~` will be expanded in file names as will environment variables such as `${PROPENC_LOG_DIR}`.\n"

// ShellExpand replaces a leading "~" with the home directory and
// expands all environment variables afterwards.
//
// If the home directory can't be found the "~" is left alone.
func ShellExpand(s string) string {
	out, err := Expand(s)
	if err != nil {
		return os.ExpandEnv(s)
	}
	return out
}

// Expand is ShellExpand which returns an error if a leading "~"
// couldn't be expanded
func Expand(s string) (string, error) {
	if s == "" {
		return s, nil
	}
	if s[0] == '~' {
		expanded, err := homedir.Expand(s)
		if err != nil {
			return "", errors.Wrapf(err, "can't expand %q", s)
		}
		s = expanded
	}
	return os.ExpandEnv(s), nil
}
