package display

import (
	"fmt"
	"strconv"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
	"github.com/bnema/hdmiprobe/pkg/edid"
)

// identityFromEDID builds a display identity from a raw EDID blob, falling
// back to the connector name when the blob is absent or unparseable.
func identityFromEDID(blob []byte, connector string) entity.DisplayIdentity {
	id := entity.DisplayIdentity{FriendlyName: connector}

	parsed, err := edid.Parse(blob)
	if err != nil {
		return id
	}

	id.Manufacturer = parsed.Manufacturer
	id.ProductCode = fmt.Sprintf("%04X", parsed.ProductCode)
	if parsed.SerialNumber != 0 {
		id.SerialNumber = strconv.FormatUint(uint64(parsed.SerialNumber), 10)
	}
	if parsed.MonitorName != "" {
		id.FriendlyName = parsed.MonitorName
	}
	id.WeekOfManufacture = parsed.Week
	id.YearOfManufacture = parsed.Year
	return id
}
