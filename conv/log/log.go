// Package log provides logging setup for propenc
package log

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/propkit/propenc/conv"
	"github.com/propkit/propenc/lib/env"
	"github.com/sirupsen/logrus"
)

// Options contains options for controlling the logging
type Options struct {
	File   string // Log everything to this file
	Format string // Comma separated list of log format options
}

// Opt is the options for the logger
var Opt = Options{
	Format: "date,time",
}

// logFile is the currently open log file if any
var logFile *os.File

// flags converts Opt.Format into flags for the standard logger
func flags(format string) (int, error) {
	var out int
	for _, item := range splitFormat(format) {
		switch item {
		case "date":
			out |= log.Ldate
		case "time":
			out |= log.Ltime
		case "microseconds":
			out |= log.Lmicroseconds
		case "UTC":
			out |= log.LUTC
		case "longfile":
			out |= log.Llongfile
		case "shortfile":
			out |= log.Lshortfile
		case "":
		default:
			return 0, errors.Errorf("unknown --log-format %q", item)
		}
	}
	return out, nil
}

func splitFormat(format string) (items []string) {
	start := 0
	for i := 0; i <= len(format); i++ {
		if i == len(format) || format[i] == ',' {
			items = append(items, format[start:i])
			start = i + 1
		}
	}
	return items
}

// InitLogging starts the logging as per the command line flags
func InitLogging() error {
	logFlags, err := flags(Opt.Format)
	if err != nil {
		return err
	}
	log.SetFlags(logFlags)

	// Log file output
	if Opt.File != "" {
		path := env.ShellExpand(Opt.File)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0640)
		if err != nil {
			return errors.Wrap(err, "failed to open log file")
		}
		setOutput(f)
		logFile = f
	}

	if conv.Config.UseJSONLog {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		logrus.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// setOutput points both the standard logger and logrus at w
func setOutput(w io.Writer) {
	log.SetOutput(w)
	logrus.SetOutput(w)
}

// Close closes the log file if one was opened and restores logging to
// stderr
func Close() error {
	if logFile == nil {
		return nil
	}
	setOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// Redirected returns true if the log has been redirected from stderr
func Redirected() bool {
	return Opt.File != ""
}
