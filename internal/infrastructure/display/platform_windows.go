//go:build windows

package display

func platformBackends(opts Options) []backend {
	return []backend{
		NewWMIBackend(opts.CommandTimeout),
	}
}
