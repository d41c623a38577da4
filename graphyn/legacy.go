package graphyn

import (
	"fyne.io/fyne/v2"

	"github.com/piwi3910/graphyn-fyne/internal/assets"
	"github.com/piwi3910/graphyn-fyne/toolkit"
)

// ZincMode is the former name of Mode.
//
// Deprecated: Use Mode.
type ZincMode = Mode

const (
	// Deprecated: Use Light.
	ZincLight = Light
	// Deprecated: Use Dark.
	ZincDark = Dark
)

// InitZinc initializes the theme under its former name.
//
// Deprecated: Use Init.
func InitZinc(host *toolkit.Host, w fyne.Window, mode ZincMode) error {
	return Init(host, w, mode)
}

// ZincThemeJSON returns the single-mode Zinc token-set document verbatim.
//
// Deprecated: Use ThemeJSON.
func ZincThemeJSON() string {
	return assets.ZincJSON
}
