// Package port defines interfaces for external dependencies.
package port

import (
	"context"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

//go:generate mockgen -source=display.go -destination=mocks/display_mock.go -package=mocks

// DisplayEnumerator queries the OS for connected displays and the modes they
// advertise. Implementations may return empty slices but must not silently
// truncate; every call is isolated so one failure never halts a test run.
type DisplayEnumerator interface {
	// ListConnectedDisplays returns an identity snapshot per connected
	// display.
	ListConnectedDisplays(ctx context.Context) ([]entity.DisplayIdentity, error)

	// ListAvailableModes returns every mode line the OS reports, duplicates
	// included.
	ListAvailableModes(ctx context.Context) ([]entity.DisplayMode, error)

	// CountConnected returns the number of currently connected displays.
	// Used by the stability sampler's per-second poll.
	CountConnected(ctx context.Context) (int, error)
}
