package display

import (
	"context"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

// XRandrBackend reads display state from the xrandr utility. It covers X11
// sessions and XWayland, where the RandR protocol exposes per-output EDID
// blobs and the full mode list.
type XRandrBackend struct {
	timeout time.Duration
}

// NewXRandrBackend creates the xrandr-based backend.
func NewXRandrBackend(timeout time.Duration) *XRandrBackend {
	return &XRandrBackend{timeout: timeout}
}

func (b *XRandrBackend) name() string { return "xrandr" }

// available reports whether a display server is reachable and the binary
// exists. Under pure Wayland xrandr still works when XWayland is running.
func (b *XRandrBackend) available() bool {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return false
	}
	_, err := exec.LookPath("xrandr")
	return err == nil
}

func (b *XRandrBackend) listDisplays(ctx context.Context) ([]entity.DisplayIdentity, error) {
	outputs, err := b.query(ctx)
	if err != nil {
		return nil, err
	}

	var ids []entity.DisplayIdentity
	for _, out := range outputs {
		if !out.connected {
			continue
		}
		ids = append(ids, out.identity())
	}
	return ids, nil
}

func (b *XRandrBackend) listModes(ctx context.Context) ([]entity.DisplayMode, error) {
	outputs, err := b.query(ctx)
	if err != nil {
		return nil, err
	}

	var modes []entity.DisplayMode
	for _, out := range outputs {
		if !out.connected {
			continue
		}
		modes = append(modes, out.modes...)
	}
	return modes, nil
}

func (b *XRandrBackend) countConnected(ctx context.Context) (int, error) {
	outputs, err := b.query(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, out := range outputs {
		if out.connected {
			count++
		}
	}
	return count, nil
}

func (b *XRandrBackend) query(ctx context.Context) ([]xrandrOutput, error) {
	path, err := exec.LookPath("xrandr")
	if err != nil {
		return nil, fmt.Errorf("xrandr not found: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, path, "--props").Output()
	if err != nil {
		return nil, fmt.Errorf("xrandr --props: %w", err)
	}
	return parseXRandr(string(out)), nil
}

var (
	outputLineRe = regexp.MustCompile(`^(\S+) (connected|disconnected)(.*)$`)
	geometryRe   = regexp.MustCompile(`(\d+x\d+)\+\d+\+\d+`)
	modeLineRe   = regexp.MustCompile(`^\s+(\d+)x(\d+)i?\s+(\d.*)$`)
	hexLineRe    = regexp.MustCompile(`^[0-9a-fA-F]+$`)
)

// xrandrOutput is one output section of `xrandr --props`.
type xrandrOutput struct {
	connector string
	connected bool
	primary   bool
	geometry  string
	edid      []byte
	modes     []entity.DisplayMode
}

// identity converts a parsed output to the entity form, preferring EDID
// fields over connector-level data.
func (o xrandrOutput) identity() entity.DisplayIdentity {
	id := identityFromEDID(o.edid, o.connector)
	id.CurrentResolution = o.geometry
	id.IsPrimary = o.primary
	return id
}

// parseXRandr walks `xrandr --props` output line by line. Output headers
// start at column zero; property lines and mode lines are indented.
func parseXRandr(raw string) []xrandrOutput {
	lines := strings.Split(raw, "\n")

	var outputs []xrandrOutput
	var current *xrandrOutput

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if m := outputLineRe.FindStringSubmatch(line); m != nil {
			outputs = append(outputs, xrandrOutput{
				connector: m[1],
				connected: m[2] == "connected",
				primary:   strings.Contains(m[3], " primary"),
			})
			current = &outputs[len(outputs)-1]
			if g := geometryRe.FindStringSubmatch(m[3]); g != nil {
				current.geometry = g[1]
			}
			continue
		}
		if current == nil {
			continue
		}

		if strings.TrimSpace(line) == "EDID:" {
			var blob []byte
			for i+1 < len(lines) {
				chunk := strings.TrimSpace(lines[i+1])
				if chunk == "" || len(chunk)%2 != 0 || !hexLineRe.MatchString(chunk) {
					break
				}
				decoded, err := hex.DecodeString(chunk)
				if err != nil {
					break
				}
				blob = append(blob, decoded...)
				i++
			}
			current.edid = blob
			continue
		}

		if m := modeLineRe.FindStringSubmatch(line); m != nil {
			width, _ := strconv.Atoi(m[1])
			height, _ := strconv.Atoi(m[2])
			for _, rate := range parseRates(m[3]) {
				current.modes = append(current.modes, entity.DisplayMode{
					WidthPx:   width,
					HeightPx:  height,
					RefreshHz: rate,
				})
			}
		}
	}
	return outputs
}

// parseRates extracts refresh rates from a mode line's rate columns.
// Entries look like "60.00*+", "59.94" or "144.00*". Rates round to the
// nearest whole hertz so 59.94 matches a 60 Hz probe.
func parseRates(raw string) []int {
	var rates []int
	for _, token := range strings.Fields(raw) {
		token = strings.TrimRight(token, "*+")
		value, err := strconv.ParseFloat(token, 64)
		if err != nil || value <= 0 {
			continue
		}
		rates = append(rates, int(math.Round(value)))
	}
	return rates
}
