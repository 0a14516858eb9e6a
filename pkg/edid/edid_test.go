package edid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildBlock assembles a minimal valid base block for a Dell panel.
func buildBlock() []byte {
	b := make([]byte, BlockSize)
	copy(b, []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00})

	// "DEL" packs to 0x10AC, Dell's registered PNP ID.
	b[8], b[9] = 0x10, 0xAC
	b[10], b[11] = 0xF5, 0xA0       // product code 0xA0F5, little-endian
	b[12], b[13] = 0x4C, 0x37       // serial 0x0000374C
	b[16] = 12                      // week 12
	b[17] = 30                      // 1990 + 30 = 2020
	b[18], b[19] = 1, 4             // EDID 1.4

	writeNameDescriptor(b[72:90], "DELL U2720Q")
	return fixChecksum(b)
}

func writeNameDescriptor(d []byte, name string) {
	d[3] = 0xFC
	copy(d[5:], name)
	d[5+len(name)] = '\n'
	for i := 5 + len(name) + 1; i < 18; i++ {
		d[i] = ' '
	}
}

func fixChecksum(b []byte) []byte {
	var sum byte
	for _, v := range b[:BlockSize-1] {
		sum += v
	}
	b[BlockSize-1] = -sum
	return b
}

func TestParse_ValidBlock(t *testing.T) {
	id, err := Parse(buildBlock())
	require.NoError(t, err)

	assert.Equal(t, "DEL", id.Manufacturer)
	assert.Equal(t, uint16(0xA0F5), id.ProductCode)
	assert.Equal(t, uint32(0x374C), id.SerialNumber)
	assert.Equal(t, 12, id.Week)
	assert.Equal(t, 2020, id.Year)
	assert.Equal(t, "DELL U2720Q", id.MonitorName)
}

func TestParse_IgnoresExtensionBytes(t *testing.T) {
	block := append(buildBlock(), make([]byte, BlockSize)...)

	id, err := Parse(block)
	require.NoError(t, err)
	assert.Equal(t, "DEL", id.Manufacturer)
}

func TestParse_TooShort(t *testing.T) {
	_, err := Parse(buildBlock()[:100])
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestParse_BadHeader(t *testing.T) {
	block := buildBlock()
	block[1] = 0x00

	_, err := Parse(fixChecksum(block))
	assert.ErrorIs(t, err, ErrBadHeader)
}

func TestParse_BadChecksum(t *testing.T) {
	block := buildBlock()
	block[BlockSize-1]++

	_, err := Parse(block)
	assert.ErrorIs(t, err, ErrBadChecksum)
}

func TestParse_MissingNameDescriptor(t *testing.T) {
	block := buildBlock()
	// Blank out the descriptor slot that carries the name.
	for i := 72; i < 90; i++ {
		block[i] = 0
	}

	id, err := Parse(fixChecksum(block))
	require.NoError(t, err)
	assert.Empty(t, id.MonitorName)
}

func TestParse_InvalidManufacturerLetters(t *testing.T) {
	block := buildBlock()
	block[8], block[9] = 0x00, 0x00

	id, err := Parse(fixChecksum(block))
	require.NoError(t, err)
	assert.Empty(t, id.Manufacturer)
}

func TestParse_UnspecifiedWeekAndYear(t *testing.T) {
	block := buildBlock()
	block[16] = 0xFF // model year flag, not a calendar week
	block[17] = 0

	id, err := Parse(fixChecksum(block))
	require.NoError(t, err)
	assert.Zero(t, id.Week)
	assert.Zero(t, id.Year)
}
