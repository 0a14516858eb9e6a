// Package edid decodes the 128-byte EDID base block that displays expose
// over DDC and the kernel republishes under /sys/class/drm.
package edid

import (
	"encoding/binary"
	"errors"
	"strings"
)

// BlockSize is the length of the EDID base block.
const BlockSize = 128

var (
	ErrTooShort    = errors.New("edid: block shorter than 128 bytes")
	ErrBadHeader   = errors.New("edid: missing fixed header pattern")
	ErrBadChecksum = errors.New("edid: checksum mismatch")
)

// edidHeader is the fixed 8-byte pattern every base block starts with.
var edidHeader = [8]byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

// Identity holds the identification fields of one base block.
type Identity struct {
	// Manufacturer is the three-letter PNP ID, e.g. "DEL" or "GSM".
	// Empty when the encoded letters fall outside A-Z.
	Manufacturer string

	ProductCode  uint16
	SerialNumber uint32

	// Week is the week of manufacture, 0 when unspecified or when the
	// block carries a model year instead.
	Week int

	// Year is the year of manufacture, offset-decoded from 1990.
	Year int

	// MonitorName comes from the 0xFC display product name descriptor.
	// Empty when the block has none.
	MonitorName string
}

// Parse decodes an EDID base block. Extension blocks past the first 128
// bytes are ignored.
func Parse(block []byte) (Identity, error) {
	if len(block) < BlockSize {
		return Identity{}, ErrTooShort
	}
	block = block[:BlockSize]

	if [8]byte(block[:8]) != edidHeader {
		return Identity{}, ErrBadHeader
	}

	var sum byte
	for _, b := range block {
		sum += b
	}
	if sum != 0 {
		return Identity{}, ErrBadChecksum
	}

	id := Identity{
		Manufacturer: decodeManufacturer(binary.BigEndian.Uint16(block[8:10])),
		ProductCode:  binary.LittleEndian.Uint16(block[10:12]),
		SerialNumber: binary.LittleEndian.Uint32(block[12:16]),
		MonitorName:  findMonitorName(block),
	}

	if week := int(block[16]); week >= 1 && week <= 54 {
		id.Week = week
	}
	if block[17] != 0 {
		id.Year = 1990 + int(block[17])
	}

	return id, nil
}

// decodeManufacturer unpacks three 5-bit letters (1=A .. 26=Z) from the
// big-endian manufacturer word.
func decodeManufacturer(raw uint16) string {
	letters := [3]byte{
		byte(raw >> 10 & 0x1F),
		byte(raw >> 5 & 0x1F),
		byte(raw & 0x1F),
	}
	out := make([]byte, 3)
	for i, l := range letters {
		if l < 1 || l > 26 {
			return ""
		}
		out[i] = 'A' + l - 1
	}
	return string(out)
}

// findMonitorName scans the four 18-byte descriptor slots for a display
// product name descriptor (tag 0xFC).
func findMonitorName(block []byte) string {
	for offset := 54; offset <= 108; offset += 18 {
		d := block[offset : offset+18]
		// Display descriptors start with a zero pixel clock; detailed
		// timing descriptors do not.
		if d[0] != 0 || d[1] != 0 || d[2] != 0 {
			continue
		}
		if d[3] != 0xFC {
			continue
		}
		text := string(d[5:18])
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = text[:i]
		}
		return strings.TrimSpace(text)
	}
	return ""
}
