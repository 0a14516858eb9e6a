// Package capability holds the bandwidth-feasibility and capability-assessment
// engine: pure computations over display modes, fixed probe catalogs, and the
// quality verdict. Nothing in this package touches the OS.
package capability

// ResolutionProbe is one standard resolution the evaluator checks against the
// available mode catalog.
type ResolutionProbe struct {
	Name     string
	WidthPx  int
	HeightPx int
}

// BandwidthScenario is one fixed resolution/rate combination analyzed by the
// bandwidth test.
type BandwidthScenario struct {
	Name      string
	WidthPx   int
	HeightPx  int
	RefreshHz int
}

// HDMIRevision pairs a revision label with the maximum bandwidth it can carry.
type HDMIRevision struct {
	Label       string
	CeilingGbps float64
}

// StandardResolutions returns the fixed resolution probe catalog.
func StandardResolutions() []ResolutionProbe {
	return []ResolutionProbe{
		{Name: "720p", WidthPx: 1280, HeightPx: 720},
		{Name: "1080p", WidthPx: 1920, HeightPx: 1080},
		{Name: "1440p", WidthPx: 2560, HeightPx: 1440},
		{Name: "4K UHD", WidthPx: 3840, HeightPx: 2160},
		{Name: "UltraWide", WidthPx: 3440, HeightPx: 1440},
	}
}

// StandardRefreshRates returns the fixed refresh rate probe catalog in Hz.
func StandardRefreshRates() []int {
	return []int{60, 75, 120, 144, 165, 240}
}

// StandardScenarios returns the fixed bandwidth scenario catalog.
func StandardScenarios() []BandwidthScenario {
	return []BandwidthScenario{
		{Name: "1080p@60Hz", WidthPx: 1920, HeightPx: 1080, RefreshHz: 60},
		{Name: "1080p@144Hz", WidthPx: 1920, HeightPx: 1080, RefreshHz: 144},
		{Name: "1440p@60Hz", WidthPx: 2560, HeightPx: 1440, RefreshHz: 60},
		{Name: "1440p@144Hz", WidthPx: 2560, HeightPx: 1440, RefreshHz: 144},
		{Name: "4K@60Hz", WidthPx: 3840, HeightPx: 2160, RefreshHz: 60},
		{Name: "4K@120Hz", WidthPx: 3840, HeightPx: 2160, RefreshHz: 120},
	}
}

// Revisions returns the HDMI revision catalog in the fixed rendering order
// 1.4, 2.0, 2.1.
func Revisions() []HDMIRevision {
	return []HDMIRevision{
		{Label: "HDMI 1.4", CeilingGbps: 10.2},
		{Label: "HDMI 2.0", CeilingGbps: 18.0},
		{Label: "HDMI 2.1", CeilingGbps: 48.0},
	}
}
