package graphyn

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Mode selects the light or dark half of the Graphyn palette.
// The zero value is Dark, the canonical default.
type Mode int

const (
	Dark Mode = iota
	Light

	modeCount
)

// DefaultMode is the mode used when a caller expresses no preference.
const DefaultMode = Dark

// Modes lists every mode.
func Modes() []Mode {
	out := make([]Mode, 0, modeCount)
	for m := Mode(0); m < modeCount; m++ {
		out = append(out, m)
	}
	return out
}

// Resolve maps a mode to Fyne's native theme variant.
// It panics for values outside Modes, which can only come from a conversion bug.
func Resolve(m Mode) fyne.ThemeVariant {
	switch m {
	case Light:
		return theme.VariantLight
	case Dark:
		return theme.VariantDark
	}
	panic(fmt.Sprintf("graphyn: unmapped mode %d", int(m)))
}

func (m Mode) String() string {
	switch m {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts "light" or "dark" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return DefaultMode, fmt.Errorf("unknown mode %q (want light or dark)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m < 0 || m >= modeCount {
		return nil, fmt.Errorf("invalid mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
