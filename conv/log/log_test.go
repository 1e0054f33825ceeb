package log

import (
	"encoding/json"
	"io/ioutil"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/propkit/propenc/conv"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restore puts the global logging state back after a test
func restore(t *testing.T) {
	oldOpt := Opt
	oldConfig := *conv.Config
	oldFlags := stdlog.Flags()
	t.Cleanup(func() {
		require.NoError(t, Close())
		Opt = oldOpt
		*conv.Config = oldConfig
		stdlog.SetFlags(oldFlags)
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
	})
}

func TestFlags(t *testing.T) {
	for _, test := range []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"date,time", stdlog.Ldate | stdlog.Ltime, false},
		{"time,microseconds,UTC", stdlog.Ltime | stdlog.Lmicroseconds | stdlog.LUTC, false},
		{"shortfile", stdlog.Lshortfile, false},
		{"date,potato", 0, true},
	} {
		got, err := flags(test.in)
		if test.wantErr {
			assert.Error(t, err, test.in)
			continue
		}
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}
}

func TestInitLoggingFile(t *testing.T) {
	restore(t)
	dir := t.TempDir()
	Opt.File = filepath.Join(dir, "propenc.log")
	Opt.Format = ""
	require.NoError(t, InitLogging())
	assert.True(t, Redirected())

	conv.Logf(nil, "hello %s", "file")
	require.NoError(t, Close())

	data, err := ioutil.ReadFile(Opt.File)
	require.NoError(t, err)
	assert.Equal(t, "NOTICE: hello file\n", string(data))
}

func TestInitLoggingFileExpandsEnv(t *testing.T) {
	restore(t)
	dir := t.TempDir()
	require.NoError(t, os.Setenv("PROPENC_TEST_LOG_DIR", dir))
	defer func() { _ = os.Unsetenv("PROPENC_TEST_LOG_DIR") }()
	Opt.File = "${PROPENC_TEST_LOG_DIR}/expanded.log"
	require.NoError(t, InitLogging())
	_, err := os.Stat(filepath.Join(dir, "expanded.log"))
	assert.NoError(t, err)
}

func TestInitLoggingJSON(t *testing.T) {
	restore(t)
	dir := t.TempDir()
	Opt.File = filepath.Join(dir, "propenc.json")
	conv.Config.UseJSONLog = true
	require.NoError(t, InitLogging())

	conv.Logf("input.properties", "converted")
	require.NoError(t, Close())

	data, err := ioutil.ReadFile(Opt.File)
	require.NoError(t, err)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "converted", entry["msg"])
	assert.Equal(t, "input.properties", entry["object"])
}

func TestInitLoggingBadFile(t *testing.T) {
	restore(t)
	Opt.File = filepath.Join(t.TempDir(), "missing", "dir", "propenc.log")
	err := InitLogging()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

func TestInitLoggingBadFormat(t *testing.T) {
	restore(t)
	Opt.Format = "sideways"
	assert.Error(t, InitLogging())
}
