//go:build windows

package sysinfo

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/bnema/hdmiprobe/internal/application/port"
	"github.com/bnema/hdmiprobe/internal/logging"
)

// doSurvey reads the Windows product name and build from the registry.
func doSurvey(ctx context.Context) port.SystemInfo {
	info := port.SystemInfo{Platform: "Windows"}

	key, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("cannot open version registry key")
		return info
	}
	defer func() { _ = key.Close() }()

	product, _, _ := key.GetStringValue("ProductName")
	build, _, _ := key.GetStringValue("CurrentBuildNumber")
	switch {
	case product != "" && build != "":
		info.OSVersion = fmt.Sprintf("%s (build %s)", product, build)
	case product != "":
		info.OSVersion = product
	case build != "":
		info.OSVersion = "build " + build
	}
	return info
}
