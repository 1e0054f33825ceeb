package conv

import (
	"fmt"
	"log"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LogLevel is how much propenc says. The levels keep their syslog
// names so log lines read the same in a file, on a terminal or as JSON.
type LogLevel byte

// The levels in order of increasing verbosity
const (
	LogLevelError  LogLevel = iota // always shown
	LogLevelNotice                 // the default, -q hides it
	LogLevelInfo                   // -v
	LogLevelDebug                  // -vv
)

// levelInfo is the name and logrus level of each LogLevel
var levelInfo = [...]struct {
	name   string
	logrus logrus.Level
}{
	LogLevelError:  {"ERROR", logrus.ErrorLevel},
	LogLevelNotice: {"NOTICE", logrus.WarnLevel},
	LogLevelInfo:   {"INFO", logrus.InfoLevel},
	LogLevelDebug:  {"DEBUG", logrus.DebugLevel},
}

// String returns the syslog name of the level
func (l LogLevel) String() string {
	if int(l) >= len(levelInfo) {
		return fmt.Sprintf("LogLevel(%d)", l)
	}
	return levelInfo[l].name
}

// Set the level from its upper case name
func (l *LogLevel) Set(s string) error {
	for i := range levelInfo {
		if s != "" && levelInfo[i].name == s {
			*l = LogLevel(i)
			return nil
		}
	}
	return errors.Errorf("Unknown log level %q", s)
}

// Type of the value
func (l *LogLevel) Type() string {
	return "string"
}

// LogPrint writes a plain text line at level, replaced in tests
var LogPrint = func(level LogLevel, text string) {
	_ = log.Output(4, fmt.Sprintf("%-6s: %s", level, text))
}

// LogValueItem is a keyed value added to JSON log entries
type LogValueItem struct {
	key   string
	value interface{}
}

// LogValue wraps value so that JSON logs carry it under key as well as
// in the message.
func LogValue(key string, value interface{}) LogValueItem {
	return LogValueItem{key: key, value: value}
}

// String formats the value for the message text
func (j LogValueItem) String() string {
	if s, ok := j.value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(j.value)
}

// LogPrintf logs text about o at level without checking Config.LogLevel
func LogPrintf(level LogLevel, o interface{}, text string, args ...interface{}) {
	out := fmt.Sprintf(text, args...)
	if !Config.UseJSONLog {
		if o != nil {
			out = fmt.Sprintf("%v: %s", o, out)
		}
		LogPrint(level, out)
		return
	}
	fields := logrus.Fields{}
	if o != nil {
		fields["object"] = fmt.Sprintf("%+v", o)
		fields["objectType"] = fmt.Sprintf("%T", o)
	}
	for _, arg := range args {
		if item, ok := arg.(LogValueItem); ok {
			fields[item.key] = item.value
		}
	}
	lvl := logrus.ErrorLevel
	if int(level) < len(levelInfo) {
		lvl = levelInfo[level].logrus
	}
	logrus.WithFields(fields).Log(lvl, out)
}

// LogLevelPrintf logs if Config.LogLevel lets level through
func LogLevelPrintf(level LogLevel, o interface{}, text string, args ...interface{}) {
	if Config.LogLevel >= level {
		LogPrintf(level, o, text, args...)
	}
}

// Errorf logs an error about o. Nothing hides these.
func Errorf(o interface{}, text string, args ...interface{}) {
	LogLevelPrintf(LogLevelError, o, text, args...)
}

// Logf logs at NOTICE, for the few things worth telling a user who
// didn't ask for -v.
func Logf(o interface{}, text string, args ...interface{}) {
	LogLevelPrintf(LogLevelNotice, o, text, args...)
}

// Infof logs what was converted, shown with -v
func Infof(o interface{}, text string, args ...interface{}) {
	LogLevelPrintf(LogLevelInfo, o, text, args...)
}

// Debugf logs detail only wanted with -vv
func Debugf(o interface{}, text string, args ...interface{}) {
	LogLevelPrintf(LogLevelDebug, o, text, args...)
}
