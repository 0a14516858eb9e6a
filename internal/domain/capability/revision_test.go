package capability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hdmiprobe/internal/domain/capability"
)

func TestCompatibleRevisions(t *testing.T) {
	tests := []struct {
		name          string
		bandwidthGbps float64
		want          []string
	}{
		{"well under 1.4 ceiling", 3.73, []string{"HDMI 1.4", "HDMI 2.0", "HDMI 2.1"}},
		{"exactly 1.4 ceiling", 10.2, []string{"HDMI 1.4", "HDMI 2.0", "HDMI 2.1"}},
		{"just over 1.4 ceiling", 10.21, []string{"HDMI 2.0", "HDMI 2.1"}},
		{"exactly 2.0 ceiling", 18.0, []string{"HDMI 2.0", "HDMI 2.1"}},
		{"just over 2.0 ceiling", 18.01, []string{"HDMI 2.1"}},
		{"exactly 2.1 ceiling", 48.0, []string{"HDMI 2.1"}},
		{"just over 2.1 ceiling", 48.01, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, capability.CompatibleRevisions(tt.bandwidthGbps))
		})
	}
}

func TestRevisionVerdict(t *testing.T) {
	verdict := capability.RevisionVerdict(15.93)
	require.Len(t, verdict, 3)
	assert.False(t, verdict[0], "HDMI 1.4 cannot carry 15.93 Gbps")
	assert.True(t, verdict[1])
	assert.True(t, verdict[2])
}

func TestRevisions_CatalogOrder(t *testing.T) {
	revs := capability.Revisions()
	require.Len(t, revs, 3)
	assert.Equal(t, "HDMI 1.4", revs[0].Label)
	assert.Equal(t, "HDMI 2.0", revs[1].Label)
	assert.Equal(t, "HDMI 2.1", revs[2].Label)
	assert.Equal(t, 10.2, revs[0].CeilingGbps)
	assert.Equal(t, 18.0, revs[1].CeilingGbps)
	assert.Equal(t, 48.0, revs[2].CeilingGbps)
}
