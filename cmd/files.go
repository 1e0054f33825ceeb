package cmd

import (
	"context"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/propkit/propenc/conv"
	"golang.org/x/term"
	"golang.org/x/text/transform"
)

// Standard streams used by the commands, replaced in tests
var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
)

// isStdio returns true if name means stdin or stdout
func isStdio(name string) bool {
	return name == "" || name == "-"
}

// OpenInput opens name for reading, "" or "-" is Stdin
func OpenInput(name string) (io.ReadCloser, error) {
	if isStdio(name) {
		if f, ok := Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			conv.Logf(nil, "Reading from the terminal, end the input with an EOF (Ctrl-D)")
		}
		return ioutil.NopCloser(Stdin), nil
	}
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, errors.Wrap(conv.ErrorIsDir, name)
	}
	return os.Open(name)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// OpenOutput creates name for writing, "" or "-" is Stdout which
// isn't closed by Close
func OpenOutput(name string) (io.WriteCloser, error) {
	if isStdio(name) {
		return nopWriteCloser{Stdout}, nil
	}
	fi, err := os.Stat(name)
	if err == nil && fi.IsDir() {
		return nil, errors.Wrap(conv.ErrorIsDir, name)
	}
	return os.Create(name)
}

// checkSameFile returns an error if in and out are the same file as
// writing out would truncate in before it is read
func checkSameFile(in, out string) error {
	if isStdio(in) || isStdio(out) {
		return nil
	}
	inInfo, err := os.Stat(in)
	if err != nil {
		return nil
	}
	outInfo, err := os.Stat(out)
	if err != nil {
		return nil
	}
	if os.SameFile(inInfo, outInfo) {
		return errors.Wrapf(conv.ErrorSameFile, "%q and %q", in, out)
	}
	return nil
}

// Transcode reads the file named by args[0] and writes it through t
// to the file named by args[1]. Missing args mean Stdin and Stdout.
//
// If the conversion fails a partially written output file is removed.
func Transcode(ctx context.Context, args []string, t transform.Transformer) (err error) {
	var inName, outName string
	if len(args) > 0 {
		inName = args[0]
	}
	if len(args) > 1 {
		outName = args[1]
	}
	if err = checkSameFile(inName, outName); err != nil {
		return err
	}
	in, err := OpenInput(inName)
	if err != nil {
		return errors.Wrap(err, "failed to open input")
	}
	defer func() {
		_ = in.Close()
	}()
	out, err := OpenOutput(outName)
	if err != nil {
		return errors.Wrap(err, "failed to open output")
	}
	stats, err := conv.Convert(ctx, out, in, t)
	closeErr := out.Close()
	if err == nil && closeErr != nil {
		err = errors.Wrap(closeErr, "failed to close output")
	}
	if err != nil {
		if !isStdio(outName) {
			if removeErr := os.Remove(outName); removeErr != nil {
				conv.Errorf(outName, "Failed to remove partial output: %v", removeErr)
			} else {
				conv.Debugf(outName, "Removed partial output")
			}
		}
		return err
	}
	conv.Infof(displayName(inName), "Converted: %v", stats)
	return nil
}

// displayName returns the name to log for a file
func displayName(name string) string {
	if isStdio(name) {
		return "<stdin>"
	}
	return name
}
