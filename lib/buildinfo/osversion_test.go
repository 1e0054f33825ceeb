package buildinfo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.OSVersion)
	assert.NotEmpty(t, info.OSKernel)
	assert.Equal(t, runtime.GOOS, info.OSType)
	assert.Equal(t, runtime.GOARCH, info.OSArch)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestLines(t *testing.T) {
	info := Info{
		OSVersion: "ubuntu 22.04 (64 bit)",
		OSKernel:  "5.15.0 (x86_64)",
		OSType:    "linux",
		OSArch:    "amd64",
		GoVersion: "go1.17",
	}
	assert.Equal(t, []string{
		"- os/version: ubuntu 22.04 (64 bit)",
		"- os/kernel: 5.15.0 (x86_64)",
		"- os/type: linux",
		"- os/arch: amd64",
		"- go/version: go1.17",
	}, info.Lines())
}
