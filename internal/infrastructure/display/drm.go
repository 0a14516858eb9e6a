package display

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

const drmSysfsRoot = "/sys/class/drm"

// DRMBackend reads connector state straight from the kernel's DRM sysfs
// tree. It works without a display server, which makes it the fallback for
// headless sessions and TTYs, but sysfs does not expose refresh rates so
// it cannot enumerate modes.
type DRMBackend struct {
	root string
}

// NewDRMBackend creates the sysfs-based backend.
func NewDRMBackend() *DRMBackend {
	return &DRMBackend{root: drmSysfsRoot}
}

func (b *DRMBackend) name() string { return "drm" }

func (b *DRMBackend) available() bool {
	_, err := os.Stat(b.root)
	return err == nil
}

func (b *DRMBackend) listDisplays(_ context.Context) ([]entity.DisplayIdentity, error) {
	connectors, err := b.connectors()
	if err != nil {
		return nil, err
	}

	var ids []entity.DisplayIdentity
	for _, name := range connectors {
		if !b.isConnected(name) {
			continue
		}
		blob, _ := os.ReadFile(filepath.Join(b.root, name, "edid"))
		ids = append(ids, identityFromEDID(blob, connectorLabel(name)))
	}
	return ids, nil
}

// listModes always fails: the sysfs modes file lists resolutions without
// refresh rates, which is not enough to build a usable mode.
func (b *DRMBackend) listModes(_ context.Context) ([]entity.DisplayMode, error) {
	return nil, errModesUnsupported
}

func (b *DRMBackend) countConnected(_ context.Context) (int, error) {
	connectors, err := b.connectors()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, name := range connectors {
		if b.isConnected(name) {
			count++
		}
	}
	return count, nil
}

// connectors lists sysfs entries like card0-HDMI-A-1, skipping the bare
// cardN device nodes and unrelated entries such as renderD128 or version.
func (b *DRMBackend) connectors() ([]string, error) {
	entries, err := os.ReadDir(b.root)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "card") || !strings.Contains(name, "-") {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func (b *DRMBackend) isConnected(name string) bool {
	data, err := os.ReadFile(filepath.Join(b.root, name, "status"))
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == "connected"
}

// connectorLabel strips the card prefix: "card0-HDMI-A-1" becomes
// "HDMI-A-1", matching how xrandr names the same connector.
func connectorLabel(name string) string {
	if idx := strings.Index(name, "-"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
