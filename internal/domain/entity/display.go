package entity

import "fmt"

// DisplayMode is one OS-reported mode line: a resolution plus a refresh rate.
// The enumeration source does not guarantee uniqueness; duplicate
// (width,height,refresh) tuples are tolerated and deduplicated by consumers.
type DisplayMode struct {
	WidthPx      int `json:"widthPx"`
	HeightPx     int `json:"heightPx"`
	RefreshHz    int `json:"refreshHz"`
	BitsPerPixel int `json:"bitsPerPixel,omitempty"`
}

// Resolution returns the "WxH" form used for labels and matching messages.
func (m DisplayMode) Resolution() string {
	return fmt.Sprintf("%dx%d", m.WidthPx, m.HeightPx)
}

func (m DisplayMode) String() string {
	return fmt.Sprintf("%dx%d@%dHz", m.WidthPx, m.HeightPx, m.RefreshHz)
}

// DisplayIdentity is an immutable snapshot of one connected display, taken at
// detection time. Optional fields stay zero when the source (EDID, WMI) does
// not report them.
type DisplayIdentity struct {
	Manufacturer      string `json:"manufacturer"`
	ProductCode       string `json:"productCode"`
	SerialNumber      string `json:"serialNumber"`
	FriendlyName      string `json:"friendlyName"`
	YearOfManufacture int    `json:"yearOfManufacture,omitempty"`
	WeekOfManufacture int    `json:"weekOfManufacture,omitempty"`
	CurrentResolution string `json:"currentResolution,omitempty"`
	BitsPerPixel      int    `json:"bitsPerPixel,omitempty"`
	IsPrimary         bool   `json:"isPrimary,omitempty"`
}

// Label returns the best human-readable name for the display.
func (d DisplayIdentity) Label() string {
	if d.FriendlyName != "" {
		return d.FriendlyName
	}
	if d.Manufacturer != "" && d.ProductCode != "" {
		return d.Manufacturer + " " + d.ProductCode
	}
	if d.Manufacturer != "" {
		return d.Manufacturer
	}
	return "Unknown Display"
}
