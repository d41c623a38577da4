// Package toolkit is the Fyne side of Graphyn. A Host owns the single mutable Theme of a
// fyne.App and exposes the three mutation points the theme layer relies on:
// EnsureInitialized, ChangeMode and UpdateGlobal, to be called in that order.
//
// Host does no locking. Like every other Fyne call it must be used from the UI goroutine.
package toolkit

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"

	"github.com/piwi3910/graphyn-fyne/internal/assets"
	"github.com/piwi3910/graphyn-fyne/tokens"
)

var (
	// ErrNotInitialized is returned when a mode is committed before EnsureInitialized.
	ErrNotInitialized = errors.New("theme subsystem not initialized")
	// ErrNoGlobalTheme is returned when the global theme is mutated before any mode was committed.
	ErrNoGlobalTheme = errors.New("global theme does not exist yet")
	// ErrNoPalette is returned when the token set has no palette for the requested variant.
	ErrNoPalette = errors.New("no palette for theme variant")
)

// Host is the theme subsystem of one Fyne application.
type Host struct {
	app      fyne.App
	document string
	fonts    *FontRegistry
	logger   zerolog.Logger

	tokens *tokens.Set
	global *Theme
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger used for theme events.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *Host) {
		h.logger = logger
	}
}

// WithTokenDocument replaces the built-in token-set document.
func WithTokenDocument(doc string) Option {
	return func(h *Host) {
		h.document = doc
	}
}

// WithFontRegistry shares an existing font registry with the host.
// A nil registry keeps the host's own.
func WithFontRegistry(fonts *FontRegistry) Option {
	return func(h *Host) {
		if fonts != nil {
			h.fonts = fonts
		}
	}
}

// NewHost creates the theme subsystem for app. A nil app is allowed for headless use;
// the theme is then kept but never installed.
func NewHost(app fyne.App, opts ...Option) *Host {
	h := &Host{
		app:      app,
		document: assets.GraphynJSON,
		fonts:    NewFontRegistry(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// EnsureInitialized decodes the built-in token set. Calls after the first
// successful one do nothing.
func (h *Host) EnsureInitialized() error {
	if h.tokens != nil {
		return nil
	}
	set, err := tokens.Parse(h.document)
	if err != nil {
		return err
	}
	h.tokens = set
	h.logger.Debug().
		Str("token_set", set.Name).
		Int("themes", len(set.Themes)).
		Msg("theme subsystem initialized")
	return nil
}

// Initialized reports whether EnsureInitialized has succeeded.
func (h *Host) Initialized() bool {
	return h.tokens != nil
}

// TokenSet returns the decoded built-in token set, or nil before initialization.
func (h *Host) TokenSet() *tokens.Set {
	return h.tokens
}

// ChangeMode commits variant to the global theme, creating the theme on first use.
// Colors are reloaded from the built-in palette of variant; every other field is kept.
// When w is non-nil its content is refreshed.
func (h *Host) ChangeMode(variant fyne.ThemeVariant, w fyne.Window) error {
	if h.tokens == nil {
		return ErrNotInitialized
	}
	src, ok := h.tokens.Theme(appearanceOf(variant))
	if !ok {
		return fmt.Errorf("%w %d", ErrNoPalette, variant)
	}

	if h.global == nil {
		h.global = newTheme(h.fonts)
	}
	h.global.Name = src.Name
	h.global.Variant = variant
	h.global.Colors = src.Colors.Clone()
	h.install(w)

	h.logger.Debug().Str("theme", src.Name).Msg("theme mode changed")
	return nil
}

// Global returns the global theme, or nil if no mode has been committed yet.
func (h *Host) Global() *Theme {
	return h.global
}

// UpdateGlobal hands the mutable global theme to fn and reinstalls it afterwards.
func (h *Host) UpdateGlobal(w fyne.Window, fn func(t *Theme)) error {
	if h.global == nil {
		return ErrNoGlobalTheme
	}
	fn(h.global)
	h.install(w)

	h.logger.Debug().
		Str("font", h.global.FontFamily).
		Str("mono_font", h.global.MonoFontFamily).
		Float32("font_size", h.global.FontSize).
		Float32("radius", h.global.Radius).
		Bool("shadow", h.global.Shadow).
		Msg("global theme updated")
	return nil
}

// RegisterFont makes a bundled font file available under family.
func (h *Host) RegisterFont(family string, style fyne.TextStyle, res fyne.Resource) {
	h.fonts.Register(family, style, res)
}

// Fonts returns the host's font registry.
func (h *Host) Fonts() *FontRegistry {
	return h.fonts
}

func (h *Host) install(w fyne.Window) {
	if h.app != nil {
		h.app.Settings().SetTheme(h.global)
	}
	if w != nil {
		if c := w.Content(); c != nil {
			c.Refresh()
		}
	}
}

func appearanceOf(variant fyne.ThemeVariant) tokens.Appearance {
	switch variant {
	case theme.VariantLight:
		return tokens.Light
	case theme.VariantDark:
		return tokens.Dark
	}
	return ""
}
