//go:build linux || darwin

package sysinfo

import (
	"context"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/bnema/hdmiprobe/internal/application/port"
	"github.com/bnema/hdmiprobe/internal/logging"
)

// doSurvey reads the platform identity from uname.
func doSurvey(ctx context.Context) port.SystemInfo {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("uname failed, falling back to GOOS")
		return port.SystemInfo{Platform: fallbackPlatform()}
	}

	info := port.SystemInfo{
		Platform:  unix.ByteSliceToString(uts.Sysname[:]),
		OSVersion: unix.ByteSliceToString(uts.Release[:]),
	}
	info.WSL = isWSL(info.OSVersion)
	return info
}

// isWSL reports whether the kernel identifies itself as Windows Subsystem
// for Linux. WSL2 kernels carry "microsoft" in the release string; older
// setups only expose it through /proc/version.
func isWSL(release string) bool {
	if containsMicrosoft(release) {
		return true
	}
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	return containsMicrosoft(string(data))
}

func containsMicrosoft(s string) bool {
	return strings.Contains(strings.ToLower(s), "microsoft")
}
