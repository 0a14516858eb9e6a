package display

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drmFixture(t *testing.T) *DRMBackend {
	t.Helper()
	root := t.TempDir()

	writeConnector := func(name, status string, edid []byte) {
		dir := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "status"), []byte(status+"\n"), 0o644))
		if edid != nil {
			require.NoError(t, os.WriteFile(filepath.Join(dir, "edid"), edid, 0o644))
		}
	}

	writeConnector("card0-HDMI-A-1", "connected", buildTestEDID(t))
	writeConnector("card0-DP-1", "disconnected", nil)
	writeConnector("card1-eDP-1", "connected", nil)

	// Non-connector entries that live in the same sysfs directory.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "card0"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "renderD128"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "version"), []byte("drm 1.1.0\n"), 0o644))

	return &DRMBackend{root: root}
}

func TestDRMBackend_ListDisplays(t *testing.T) {
	b := drmFixture(t)

	displays, err := b.listDisplays(context.Background())
	require.NoError(t, err)
	require.Len(t, displays, 2)

	assert.Equal(t, "DELL U2720Q", displays[0].FriendlyName)
	assert.Equal(t, "DEL", displays[0].Manufacturer)
	assert.Equal(t, "A0F5", displays[0].ProductCode)

	// Missing EDID file: the connector label stands in.
	assert.Equal(t, "eDP-1", displays[1].FriendlyName)
	assert.Empty(t, displays[1].Manufacturer)
}

func TestDRMBackend_CountConnected(t *testing.T) {
	b := drmFixture(t)

	count, err := b.countConnected(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestDRMBackend_ListModesUnsupported(t *testing.T) {
	b := drmFixture(t)

	_, err := b.listModes(context.Background())
	assert.ErrorIs(t, err, errModesUnsupported)
}

func TestDRMBackend_Available(t *testing.T) {
	assert.True(t, drmFixture(t).available())

	missing := &DRMBackend{root: filepath.Join(t.TempDir(), "absent")}
	assert.False(t, missing.available())
}

func TestConnectorLabel(t *testing.T) {
	assert.Equal(t, "HDMI-A-1", connectorLabel("card0-HDMI-A-1"))
	assert.Equal(t, "eDP-1", connectorLabel("card1-eDP-1"))
	assert.Equal(t, "card0", connectorLabel("card0"))
}
