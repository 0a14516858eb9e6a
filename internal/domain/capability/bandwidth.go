package capability

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument marks malformed calculator inputs. It is surfaced
// immediately to the caller, never silently defaulted.
var ErrInvalidArgument = errors.New("invalid argument")

// Chroma subsampling schemes accepted by the calculator.
const (
	Chroma444 = "4:4:4"
	Chroma422 = "4:2:2"
	Chroma420 = "4:2:0"
)

// Calculator defaults used by callers that do not override color parameters.
const (
	DefaultBitDepth = 8
	DefaultChroma   = Chroma444
)

// overheadFactor is the fixed 25% allowance for blanking intervals and
// encoding. Not configurable.
const overheadFactor = 1.25

// ComputeBandwidthGbps returns the bandwidth a signal with the given geometry,
// refresh rate, bit depth and chroma subsampling requires, in Gbps rounded to
// two decimals (half away from zero). Pure and deterministic.
func ComputeBandwidthGbps(width, height, refreshHz, bitDepth int, chroma string) (float64, error) {
	if width <= 0 {
		return 0, fmt.Errorf("%w: width %d must be positive", ErrInvalidArgument, width)
	}
	if height <= 0 {
		return 0, fmt.Errorf("%w: height %d must be positive", ErrInvalidArgument, height)
	}
	if refreshHz <= 0 {
		return 0, fmt.Errorf("%w: refresh rate %d must be positive", ErrInvalidArgument, refreshHz)
	}
	if bitDepth <= 0 {
		return 0, fmt.Errorf("%w: bit depth %d must be positive", ErrInvalidArgument, bitDepth)
	}

	var bitsPerPixel float64
	switch chroma {
	case Chroma444:
		bitsPerPixel = float64(bitDepth) * 3
	case Chroma422:
		bitsPerPixel = float64(bitDepth) * 2
	case Chroma420:
		bitsPerPixel = float64(bitDepth) * 1.5
	default:
		return 0, fmt.Errorf("%w: unrecognized chroma subsampling %q", ErrInvalidArgument, chroma)
	}

	pixelsPerSecond := float64(width) * float64(height) * float64(refreshHz)
	bandwidthBps := pixelsPerSecond * bitsPerPixel * overheadFactor

	return roundGbps(bandwidthBps / 1e9), nil
}

// roundGbps rounds to two decimals, half away from zero.
func roundGbps(v float64) float64 {
	return math.Round(v*100) / 100
}
