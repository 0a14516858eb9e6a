//go:build windows

package display

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

// WMIBackend queries monitor facts through PowerShell CIM cmdlets. WMI's
// WmiMonitorID class carries the same identity fields EDID does, already
// decoded by the driver stack.
type WMIBackend struct {
	timeout time.Duration
}

// NewWMIBackend creates the PowerShell-based backend.
func NewWMIBackend(timeout time.Duration) *WMIBackend {
	return &WMIBackend{timeout: timeout}
}

func (b *WMIBackend) name() string { return "wmi" }

func (b *WMIBackend) available() bool {
	_, err := exec.LookPath("powershell")
	return err == nil
}

// wmiMonitorID mirrors the root\wmi WmiMonitorID class. String fields
// arrive as UTF-16 code point arrays padded with zeros.
type wmiMonitorID struct {
	ManufacturerName  []int `json:"ManufacturerName"`
	ProductCodeID     []int `json:"ProductCodeID"`
	SerialNumberID    []int `json:"SerialNumberID"`
	UserFriendlyName  []int `json:"UserFriendlyName"`
	WeekOfManufacture int   `json:"WeekOfManufacture"`
	YearOfManufacture int   `json:"YearOfManufacture"`
}

type win32VideoController struct {
	CurrentHorizontalResolution int `json:"CurrentHorizontalResolution"`
	CurrentVerticalResolution   int `json:"CurrentVerticalResolution"`
	CurrentRefreshRate          int `json:"CurrentRefreshRate"`
	CurrentBitsPerPixel         int `json:"CurrentBitsPerPixel"`
}

func (b *WMIBackend) listDisplays(ctx context.Context) ([]entity.DisplayIdentity, error) {
	out, err := b.run(ctx, `Get-CimInstance -Namespace root\wmi -ClassName WmiMonitorID |`+
		` Select-Object ManufacturerName,ProductCodeID,SerialNumberID,UserFriendlyName,WeekOfManufacture,YearOfManufacture |`+
		` ConvertTo-Json -Compress`)
	if err != nil {
		return nil, err
	}

	monitors, err := decodeCimList[wmiMonitorID](out)
	if err != nil {
		return nil, fmt.Errorf("decode WmiMonitorID: %w", err)
	}

	var ids []entity.DisplayIdentity
	for _, m := range monitors {
		ids = append(ids, entity.DisplayIdentity{
			Manufacturer:      decodeWmiChars(m.ManufacturerName),
			ProductCode:       decodeWmiChars(m.ProductCodeID),
			SerialNumber:      decodeWmiChars(m.SerialNumberID),
			FriendlyName:      decodeWmiChars(m.UserFriendlyName),
			WeekOfManufacture: m.WeekOfManufacture,
			YearOfManufacture: m.YearOfManufacture,
		})
	}
	return ids, nil
}

// listModes reports the active mode per video controller. WMI has no cheap
// equivalent of the full mode catalog, so the current mode is the answer.
func (b *WMIBackend) listModes(ctx context.Context) ([]entity.DisplayMode, error) {
	out, err := b.run(ctx, `Get-CimInstance -ClassName Win32_VideoController |`+
		` Select-Object CurrentHorizontalResolution,CurrentVerticalResolution,CurrentRefreshRate,CurrentBitsPerPixel |`+
		` ConvertTo-Json -Compress`)
	if err != nil {
		return nil, err
	}

	controllers, err := decodeCimList[win32VideoController](out)
	if err != nil {
		return nil, fmt.Errorf("decode Win32_VideoController: %w", err)
	}

	var modes []entity.DisplayMode
	for _, c := range controllers {
		if c.CurrentHorizontalResolution <= 0 || c.CurrentVerticalResolution <= 0 {
			continue
		}
		modes = append(modes, entity.DisplayMode{
			WidthPx:      c.CurrentHorizontalResolution,
			HeightPx:     c.CurrentVerticalResolution,
			RefreshHz:    c.CurrentRefreshRate,
			BitsPerPixel: c.CurrentBitsPerPixel,
		})
	}
	return modes, nil
}

func (b *WMIBackend) countConnected(ctx context.Context) (int, error) {
	out, err := b.run(ctx, `(Get-CimInstance -Namespace root\wmi -ClassName WmiMonitorID | Measure-Object).Count`)
	if err != nil {
		return 0, err
	}

	count, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0, fmt.Errorf("parse monitor count: %w", err)
	}
	return count, nil
}

func (b *WMIBackend) run(ctx context.Context, script string) ([]byte, error) {
	path, err := exec.LookPath("powershell")
	if err != nil {
		return nil, fmt.Errorf("powershell not found: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, path, "-NoProfile", "-NonInteractive", "-Command", script).Output()
	if err != nil {
		return nil, fmt.Errorf("powershell query: %w", err)
	}
	return out, nil
}

// decodeCimList unmarshals ConvertTo-Json output, which collapses a
// single-element collection to a bare object instead of an array.
func decodeCimList[T any](data []byte) ([]T, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var list []T
		if err := json.Unmarshal([]byte(trimmed), &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var single T
	if err := json.Unmarshal([]byte(trimmed), &single); err != nil {
		return nil, err
	}
	return []T{single}, nil
}

// decodeWmiChars converts a zero-padded code point array to a string.
func decodeWmiChars(codes []int) string {
	var sb strings.Builder
	for _, c := range codes {
		if c == 0 {
			break
		}
		sb.WriteRune(rune(c))
	}
	return strings.TrimSpace(sb.String())
}
