//go:build !linux && !darwin && !windows

package sysinfo

import (
	"context"

	"github.com/bnema/hdmiprobe/internal/application/port"
)

func doSurvey(_ context.Context) port.SystemInfo {
	return port.SystemInfo{Platform: fallbackPlatform()}
}
