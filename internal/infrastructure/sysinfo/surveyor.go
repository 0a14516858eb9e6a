// Package sysinfo surveys the host platform for the report header.
package sysinfo

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"github.com/bnema/hdmiprobe/internal/application/port"
	"github.com/bnema/hdmiprobe/internal/logging"
)

// Surveyor implements port.SystemSurveyor.
// It is safe for concurrent use after creation.
type Surveyor struct {
	once   sync.Once
	cached port.SystemInfo
}

// NewSurveyor creates a new system surveyor.
func NewSurveyor() *Surveyor {
	return &Surveyor{}
}

// Survey detects and returns platform information.
// Results are cached after the first call. Safe for concurrent use.
func (s *Surveyor) Survey(ctx context.Context) port.SystemInfo {
	s.once.Do(func() {
		s.cached = doSurvey(ctx)
		logging.FromContext(ctx).Debug().
			Str("platform", s.cached.Platform).
			Str("os_version", s.cached.OSVersion).
			Bool("wsl", s.cached.WSL).
			Msg("system survey completed")
	})
	return s.cached
}

// fallbackPlatform capitalizes runtime.GOOS for the report header when the
// OS-specific probe fails.
func fallbackPlatform() string {
	if runtime.GOOS == "" {
		return "Unknown"
	}
	return strings.ToUpper(runtime.GOOS[:1]) + runtime.GOOS[1:]
}

var _ port.SystemSurveyor = (*Surveyor)(nil)
