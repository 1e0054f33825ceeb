package version

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/propkit/propenc/conv"
	"github.com/propkit/propenc/lib/buildinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	for _, test := range []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"v1.2.3", "1.2.3", false},
		{"1.2.3", "1.2.3", false},
		{"v1.2", "1.2.0", false},
		{"v2", "2.0.0", false},
		{"v1.0.0-DEV", "1.0.0-DEV", false},
		{"potato", "", true},
		{"", "", true},
	} {
		got, err := parseVersion(test.in)
		if test.wantErr {
			assert.Error(t, err, test.in)
			continue
		}
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got.String(), test.in)
	}
}

func TestCheckVersion(t *testing.T) {
	assert.NoError(t, checkVersion("v1.2.3", "v1.2"))
	assert.NoError(t, checkVersion("v1.2.3", "v1.2.3"))
	assert.NoError(t, checkVersion("v1.0.0-DEV", "v0.9"))

	err := checkVersion("v1.2.3", "v1.3")
	assert.Equal(t, errorTooOld, errors.Cause(err))

	// a pre-release is older than its release
	err = checkVersion("v1.0.0-DEV", "v1.0.0")
	assert.Equal(t, errorTooOld, errors.Cause(err))

	assert.Error(t, checkVersion("v1.0.0", "potato"))
	assert.Error(t, checkVersion("potato", "v1.0.0"))
}

func TestShowVersion(t *testing.T) {
	var out bytes.Buffer
	showVersion(&out, buildinfo.Info{
		OSVersion: "debian 11 (64 bit)",
		OSKernel:  "5.10.0 (x86_64)",
		OSType:    "linux",
		OSArch:    "amd64",
		GoVersion: "go1.17.13",
	})
	assert.Equal(t, "propenc "+conv.Version+`
- os/version: debian 11 (64 bit)
- os/kernel: 5.10.0 (x86_64)
- os/type: linux
- os/arch: amd64
- go/version: go1.17.13
`, out.String())
}
