// Package graphyn applies the Graphyn Mono design system to a Fyne application:
// a lavender palette for light and dark modes, Host Grotesk and Geist Mono type,
// sharp corners and no shadows.
//
//	a := app.New()
//	w := a.NewWindow("demo")
//	host := toolkit.NewHost(a)
//	if err := graphyn.Init(host, w, graphyn.Dark); err != nil {
//		log.Fatal(err)
//	}
//
// All functions mutate the host's global theme and must run on the Fyne UI goroutine.
package graphyn

import (
	"fyne.io/fyne/v2"

	"github.com/piwi3910/graphyn-fyne/internal/assets"
	"github.com/piwi3910/graphyn-fyne/toolkit"
)

// ThemeJSON returns the Graphyn token-set document, covering both modes, verbatim.
func ThemeJSON() string {
	return assets.GraphynJSON
}

// Init applies the default configuration in the given mode.
func Init(host *toolkit.Host, w fyne.Window, mode Mode) error {
	return InitWithConfig(host, w, mode, DefaultConfig())
}

// InitWithConfig initializes the host's theme subsystem, commits mode and then writes the
// five mode-invariant tokens of cfg over the global theme. The mode must be committed first:
// it is what creates the global theme, and a later commit would not restore these fields.
// Host errors are returned as is.
func InitWithConfig(host *toolkit.Host, w fyne.Window, mode Mode, cfg Config) error {
	if err := host.EnsureInitialized(); err != nil {
		return err
	}
	if err := host.ChangeMode(Resolve(mode), w); err != nil {
		return err
	}
	return host.UpdateGlobal(w, func(t *toolkit.Theme) {
		t.FontFamily = cfg.FontSans
		t.MonoFontFamily = cfg.FontMono
		t.FontSize = px(cfg.FontSize)
		t.Radius = px(cfg.Radius)
		t.RadiusLarge = px(cfg.Radius)
		t.Shadow = cfg.Shadow
	})
}

// SetLight switches the global theme to light mode. Fonts, radius and shadow are untouched.
func SetLight(host *toolkit.Host, w fyne.Window) error {
	return host.ChangeMode(Resolve(Light), w)
}

// SetDark switches the global theme to dark mode. Fonts, radius and shadow are untouched.
func SetDark(host *toolkit.Host, w fyne.Window) error {
	return host.ChangeMode(Resolve(Dark), w)
}

// px converts a logical size to Fyne's float32 unit.
func px(v float64) float32 {
	return float32(v)
}
