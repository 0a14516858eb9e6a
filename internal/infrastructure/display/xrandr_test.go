package display

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

// buildTestEDID returns a valid 128-byte base block for a Dell U2720Q.
func buildTestEDID(t *testing.T) []byte {
	t.Helper()

	b := make([]byte, 128)
	copy(b, []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00})
	binary.BigEndian.PutUint16(b[8:10], 0x10AC)
	binary.LittleEndian.PutUint16(b[10:12], 0xA0F5)
	binary.LittleEndian.PutUint32(b[12:16], 0x374C)
	b[16] = 12
	b[17] = 30

	desc := b[72:90]
	desc[3] = 0xFC
	copy(desc[5:], "DELL U2720Q\n")

	var sum byte
	for _, v := range b[:127] {
		sum += v
	}
	b[127] = -sum
	return b
}

func xrandrFixture(t *testing.T) string {
	t.Helper()

	encoded := hex.EncodeToString(buildTestEDID(t))
	var edidLines strings.Builder
	for i := 0; i < len(encoded); i += 32 {
		edidLines.WriteString("\t\t" + encoded[i:i+32] + "\n")
	}

	return "Screen 0: minimum 320 x 200, current 5760 x 2160, maximum 16384 x 16384\n" +
		"HDMI-1 connected primary 3840x2160+0+0 (normal left inverted right x axis y axis) 600mm x 340mm\n" +
		"\tEDID: \n" +
		edidLines.String() +
		"\tnon-desktop: 0 \n" +
		"   3840x2160     60.00*+  30.00  \n" +
		"   1920x1080     60.00    59.94  \n" +
		"DP-1 disconnected (normal left inverted right x axis y axis)\n" +
		"DP-2 connected 1920x1080+3840+0 (normal left inverted right x axis y axis) 530mm x 300mm\n" +
		"   1920x1080    144.00*+ 120.00   60.00  \n"
}

func TestParseXRandr_Outputs(t *testing.T) {
	outputs := parseXRandr(xrandrFixture(t))
	require.Len(t, outputs, 3)

	hdmi := outputs[0]
	assert.Equal(t, "HDMI-1", hdmi.connector)
	assert.True(t, hdmi.connected)
	assert.True(t, hdmi.primary)
	assert.Equal(t, "3840x2160", hdmi.geometry)
	assert.Len(t, hdmi.edid, 128)
	assert.Equal(t, []entity.DisplayMode{
		{WidthPx: 3840, HeightPx: 2160, RefreshHz: 60},
		{WidthPx: 3840, HeightPx: 2160, RefreshHz: 30},
		{WidthPx: 1920, HeightPx: 1080, RefreshHz: 60},
		{WidthPx: 1920, HeightPx: 1080, RefreshHz: 60},
	}, hdmi.modes)

	dp1 := outputs[1]
	assert.Equal(t, "DP-1", dp1.connector)
	assert.False(t, dp1.connected)
	assert.Empty(t, dp1.modes)

	dp2 := outputs[2]
	assert.True(t, dp2.connected)
	assert.False(t, dp2.primary)
	assert.Nil(t, dp2.edid)
	assert.Equal(t, []entity.DisplayMode{
		{WidthPx: 1920, HeightPx: 1080, RefreshHz: 144},
		{WidthPx: 1920, HeightPx: 1080, RefreshHz: 120},
		{WidthPx: 1920, HeightPx: 1080, RefreshHz: 60},
	}, dp2.modes)
}

func TestXRandrOutput_Identity(t *testing.T) {
	outputs := parseXRandr(xrandrFixture(t))
	require.Len(t, outputs, 3)

	id := outputs[0].identity()
	assert.Equal(t, "DEL", id.Manufacturer)
	assert.Equal(t, "A0F5", id.ProductCode)
	assert.Equal(t, "14156", id.SerialNumber)
	assert.Equal(t, "DELL U2720Q", id.FriendlyName)
	assert.Equal(t, 12, id.WeekOfManufacture)
	assert.Equal(t, 2020, id.YearOfManufacture)
	assert.Equal(t, "3840x2160", id.CurrentResolution)
	assert.True(t, id.IsPrimary)

	// No EDID property on DP-2: the connector name stands in.
	fallback := outputs[2].identity()
	assert.Equal(t, "DP-2", fallback.FriendlyName)
	assert.Empty(t, fallback.Manufacturer)
}

func TestParseRates(t *testing.T) {
	assert.Equal(t, []int{60, 60}, parseRates("59.94   60.00*+"))
	assert.Equal(t, []int{144}, parseRates("144.00* "))
	assert.Empty(t, parseRates("(0x1ca) -HSync"))
}
