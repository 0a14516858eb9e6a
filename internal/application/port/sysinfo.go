package port

import "context"

//go:generate mockgen -source=sysinfo.go -destination=mocks/sysinfo_mock.go -package=mocks

// SystemInfo identifies the host a test run executed on.
type SystemInfo struct {
	// Platform is the OS family name, e.g. "Linux" or "Windows".
	Platform string
	// OSVersion is the kernel or OS build string.
	OSVersion string
	// WSL is set when running inside Windows Subsystem for Linux, where
	// display detection is limited.
	WSL bool
}

// SystemSurveyor reports host platform information for the report header.
type SystemSurveyor interface {
	Survey(ctx context.Context) SystemInfo
}
