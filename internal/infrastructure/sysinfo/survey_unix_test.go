//go:build linux || darwin

package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsMicrosoft(t *testing.T) {
	tests := []struct {
		name    string
		release string
		want    bool
	}{
		{"wsl2 kernel", "5.15.167.4-microsoft-standard-WSL2", true},
		{"wsl1 style", "4.4.0-19041-Microsoft", true},
		{"stock arch", "6.8.9-arch1-1", false},
		{"stock ubuntu", "6.8.0-45-generic", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsMicrosoft(tt.release))
		})
	}
}

func TestIsWSL_DetectsMicrosoftRelease(t *testing.T) {
	// The release string alone is decisive; /proc/version is only a
	// fallback for kernels that do not carry the marker.
	assert.True(t, isWSL("5.15.167.4-microsoft-standard-WSL2"))
}
