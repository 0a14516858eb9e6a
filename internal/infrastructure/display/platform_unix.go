//go:build !windows

package display

// platformBackends returns detection backends in priority order. xrandr
// sees the session's view of connected heads and carries mode data, so it
// outranks the bare sysfs reader.
func platformBackends(opts Options) []backend {
	return []backend{
		NewXRandrBackend(opts.CommandTimeout),
		NewDRMBackend(),
	}
}
