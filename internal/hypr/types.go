package hypr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type MonitorSpec struct {
	Name           string   `json:"name"`
	ID             *int     `json:"id"`
	Description    string   `json:"description"`
	Disabled       bool     `json:"disabled"`
	Focused        bool     `json:"focused"`
	Width          int      `json:"width"`
	Height         int      `json:"height"`
	RefreshRate    float64  `json:"refreshRate"`
	Transform      int      `json:"transform"`
	Vrr            bool     `json:"vrr"`
	Scale          float64  `json:"scale"`
	X              int      `json:"x"`
	Y              int      `json:"y"`
	AvailableModes []string `json:"availableModes"`
	Mirror         string   `json:"mirrorOf"`
	CurrentFormat  string   `json:"currentFormat"`
}

func (m *MonitorSpec) IsTenBitdepth() bool {
	switch m.CurrentFormat {
	case "XRGB2101010":
		return true
	case "XBGR2101010":
		return true
	}
	return false
}

func (m *MonitorSpec) HasMirror() bool {
	return m.Mirror != "none" && m.Mirror != ""
}

// BitsPerPixel maps the framebuffer format to a color depth. Hyprland does not
// report a depth per available mode, so every mode is assumed to share it.
func (m *MonitorSpec) BitsPerPixel() int {
	if m.IsTenBitdepth() {
		return 30
	}
	return 32
}

func (m *MonitorSpec) Validate() error {
	if m.ID == nil {
		return errors.New("id cant be nil")
	}
	if *m.ID < 0 {
		return errors.New("id cant < 0")
	}
	if m.Name == "" {
		return errors.New("name cant be empty")
	}
	if m.Scale == 0.0 {
		m.Scale = 1.0
	}

	return nil
}

type MonitorSpecs []*MonitorSpec

func (m MonitorSpecs) Validate() error {
	if len(m) == 0 {
		return errors.New("no monitors detected")
	}

	for _, monitor := range m {
		if err := monitor.Validate(); err != nil {
			return fmt.Errorf("invalid monitor: %w", err)
		}
	}

	return nil
}

// Primary returns the focused enabled monitor, or the first enabled one.
func (m MonitorSpecs) Primary() *MonitorSpec {
	var first *MonitorSpec
	for _, monitor := range m {
		if monitor.Disabled {
			continue
		}
		if monitor.Focused {
			return monitor
		}
		if first == nil {
			first = monitor
		}
	}
	return first
}

// ParsedMode is one entry of availableModes, e.g. `1920x1080@59.95Hz`.
type ParsedMode struct {
	Width   int
	Height  int
	Refresh string
	Hz      int
}

func ParseMode(mode string) (*ParsedMode, error) {
	resolution, refresh, ok := strings.Cut(strings.TrimSpace(mode), "@")
	if !ok {
		return nil, fmt.Errorf("mode %q has no refresh rate", mode)
	}

	w, h, ok := strings.Cut(resolution, "x")
	if !ok {
		return nil, fmt.Errorf("mode %q has no resolution", mode)
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return nil, fmt.Errorf("cant parse width %s as int: %w", w, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return nil, fmt.Errorf("cant parse height %s as int: %w", h, err)
	}

	refresh = strings.TrimSuffix(refresh, "Hz")
	hz, err := strconv.ParseFloat(refresh, 64)
	if err != nil {
		return nil, fmt.Errorf("cant parse refresh rate %s as float: %w", refresh, err)
	}

	return &ParsedMode{
		Width:   width,
		Height:  height,
		Refresh: refresh,
		Hz:      RoundRefreshRate(hz),
	}, nil
}

func RoundRefreshRate(hz float64) int {
	return int(math.Round(hz))
}

func FormatRefreshRate(hz float64) string {
	return strconv.FormatFloat(hz, 'f', 2, 64)
}
