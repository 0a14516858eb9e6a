// Package display detects connected displays and their mode catalogs
// through platform-specific backends.
package display

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/hdmiprobe/internal/application/port"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
	"github.com/bnema/hdmiprobe/internal/logging"
)

// ErrNoBackend is returned when no detection backend is usable on this host.
var ErrNoBackend = errors.New("no display detection backend available")

// errModesUnsupported marks backends that cannot produce a usable mode
// catalog at all, as opposed to finding an empty one.
var errModesUnsupported = errors.New("mode listing not supported")

const defaultCommandTimeout = 5 * time.Second

// Options configures the detector.
type Options struct {
	// CommandTimeout bounds each external detection command.
	// Zero uses a 5 second default.
	CommandTimeout time.Duration
}

// backend is one source of display facts. Implementations report
// availability cheaply; the expensive calls only run on available backends.
type backend interface {
	name() string
	available() bool
	listDisplays(ctx context.Context) ([]entity.DisplayIdentity, error)
	listModes(ctx context.Context) ([]entity.DisplayMode, error)
	countConnected(ctx context.Context) (int, error)
}

// Detector implements port.DisplayEnumerator over the platform backends,
// ordered by preference.
type Detector struct {
	backends []backend
}

// NewDetector creates a detector with the platform's default backends.
func NewDetector(opts Options) *Detector {
	if opts.CommandTimeout <= 0 {
		opts.CommandTimeout = defaultCommandTimeout
	}
	return &Detector{backends: platformBackends(opts)}
}

func (d *Detector) availableBackends() []backend {
	var out []backend
	for _, b := range d.backends {
		if b.available() {
			out = append(out, b)
		}
	}
	return out
}

// ListConnectedDisplays queries every available backend concurrently and
// keeps the richest answer. Backends see the same hardware through
// different layers, and a display server can hide heads the kernel still
// reports; the backend listing the most displays wins, with earlier
// backends breaking ties.
func (d *Detector) ListConnectedDisplays(ctx context.Context) ([]entity.DisplayIdentity, error) {
	backends := d.availableBackends()
	if len(backends) == 0 {
		return nil, ErrNoBackend
	}

	log := logging.FromContext(ctx)
	results := make([][]entity.DisplayIdentity, len(backends))
	failures := make([]error, len(backends))

	g, gctx := errgroup.WithContext(ctx)
	for i, b := range backends {
		g.Go(func() error {
			ids, err := b.listDisplays(gctx)
			if err != nil {
				log.Debug().Err(err).Str("backend", b.name()).Msg("display listing failed")
				failures[i] = fmt.Errorf("%s: %w", b.name(), err)
				return nil
			}
			results[i] = ids
			return nil
		})
	}
	_ = g.Wait()

	best := -1
	for i := range results {
		if failures[i] != nil {
			continue
		}
		if best == -1 || len(results[i]) > len(results[best]) {
			best = i
		}
	}
	if best == -1 {
		return nil, errors.Join(failures...)
	}

	log.Debug().
		Str("backend", backends[best].name()).
		Int("displays", len(results[best])).
		Msg("display listing selected")
	return results[best], nil
}

// ListAvailableModes returns the mode catalog from the first backend that
// can produce one. An empty catalog from a working backend is a valid
// answer; an error only surfaces when no backend could look at all.
func (d *Detector) ListAvailableModes(ctx context.Context) ([]entity.DisplayMode, error) {
	backends := d.availableBackends()
	if len(backends) == 0 {
		return nil, ErrNoBackend
	}

	var failures []error
	sawEmpty := false
	for _, b := range backends {
		modes, err := b.listModes(ctx)
		if err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", b.name(), err))
			continue
		}
		if len(modes) > 0 {
			return modes, nil
		}
		sawEmpty = true
	}
	if sawEmpty {
		return nil, nil
	}
	return nil, errors.Join(failures...)
}

// CountConnected returns the connected display count from the first backend
// that answers. It runs once per second during stability sampling.
func (d *Detector) CountConnected(ctx context.Context) (int, error) {
	backends := d.availableBackends()
	if len(backends) == 0 {
		return 0, ErrNoBackend
	}

	var failures []error
	for _, b := range backends {
		count, err := b.countConnected(ctx)
		if err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", b.name(), err))
			continue
		}
		return count, nil
	}
	return 0, errors.Join(failures...)
}

var _ port.DisplayEnumerator = (*Detector)(nil)
