// Package buildinfo reports on the build and the system propenc runs on
package buildinfo

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// Info describes the running binary
type Info struct {
	OSVersion string // eg "ubuntu 22.04 (64 bit)"
	OSKernel  string // eg "5.15.0-48-generic (x86_64)"
	OSType    string
	OSArch    string
	GoVersion string
}

// GetOSVersion returns OS version and kernel with the bitness
// appended, or "unknown" for any which can't be found
func GetOSVersion() (osVersion, osKernel string) {
	if platform, _, version, err := host.PlatformInformation(); err == nil && platform != "" {
		osVersion = strings.TrimSpace(platform + " " + version)
	}
	if version, err := host.KernelVersion(); err == nil && version != "" {
		osKernel = version
	}
	if arch, err := host.KernelArch(); err == nil && arch != "" {
		if strings.HasSuffix(arch, "64") && osVersion != "" {
			osVersion += " (64 bit)"
		}
		if osKernel != "" {
			osKernel += " (" + arch + ")"
		}
	}
	if osVersion == "" {
		osVersion = "unknown"
	}
	if osKernel == "" {
		osKernel = "unknown"
	}
	return osVersion, osKernel
}

// Get returns the Info for this process
func Get() Info {
	osVersion, osKernel := GetOSVersion()
	return Info{
		OSVersion: osVersion,
		OSKernel:  osKernel,
		OSType:    runtime.GOOS,
		OSArch:    runtime.GOARCH,
		GoVersion: runtime.Version(),
	}
}

// Lines returns the info as "- key: value" lines for printing
func (i Info) Lines() []string {
	return []string{
		"- os/version: " + i.OSVersion,
		"- os/kernel: " + i.OSKernel,
		"- os/type: " + i.OSType,
		"- os/arch: " + i.OSArch,
		"- go/version: " + i.GoVersion,
	}
}
