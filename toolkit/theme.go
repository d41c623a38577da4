// This file defines Theme, the mutable global theme. Its exported fields are the design
// tokens; everything they do not cover is delegated to the Fyne default theme.

package toolkit

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/piwi3910/graphyn-fyne/tokens"
)

// Families of the fonts bundled with Fyne, used until a caller overrides them.
const (
	DefaultFontFamily     = "Noto Sans"
	DefaultMonoFontFamily = "DejaVu Sans Mono"
)

// Theme is the single shared theme object of a Host. The stored Variant wins over the
// variant Fyne asks for, so a window always renders the mode last committed.
type Theme struct {
	base  fyne.Theme
	fonts *FontRegistry

	Name    string
	Variant fyne.ThemeVariant
	Colors  tokens.Palette

	FontFamily     string
	MonoFontFamily string
	FontSize       float32
	Radius         float32
	RadiusLarge    float32
	Shadow         bool
}

var _ fyne.Theme = (*Theme)(nil)

// newTheme creates a theme carrying the toolkit's own defaults.
func newTheme(fonts *FontRegistry) *Theme {
	base := theme.DefaultTheme()
	return &Theme{
		base:           base,
		fonts:          fonts,
		Variant:        theme.VariantDark,
		FontFamily:     DefaultFontFamily,
		MonoFontFamily: DefaultMonoFontFamily,
		FontSize:       base.Size(theme.SizeNameText),
		Radius:         base.Size(theme.SizeNameInputRadius),
		RadiusLarge:    base.Size(theme.SizeNameWindowButtonRadius),
		Shadow:         true,
	}
}

// colorRoles binds Fyne color names to token roles. Names not listed here come
// from the default theme.
var colorRoles = map[fyne.ThemeColorName]tokens.Role{
	theme.ColorNameBackground:          tokens.Background,
	theme.ColorNameForeground:          tokens.Foreground,
	theme.ColorNamePrimary:             tokens.Primary,
	theme.ColorNameForegroundOnPrimary: tokens.PrimaryForeground,
	theme.ColorNameButton:              tokens.Secondary,
	theme.ColorNameDisabledButton:      tokens.Muted,
	theme.ColorNameDisabled:            tokens.MutedForeground,
	theme.ColorNamePlaceHolder:         tokens.MutedForeground,
	theme.ColorNameSelection:           tokens.Accent,
	theme.ColorNameFocus:               tokens.Ring,
	theme.ColorNameInputBackground:     tokens.Card,
	theme.ColorNameInputBorder:         tokens.Input,
	theme.ColorNameSeparator:           tokens.Border,
	theme.ColorNameHeaderBackground:    tokens.Card,
	theme.ColorNameMenuBackground:      tokens.Popover,
	theme.ColorNameOverlayBackground:   tokens.Popover,
	theme.ColorNameError:               tokens.Destructive,
	theme.ColorNameForegroundOnError:   tokens.DestructiveForeground,
}

// Color resolves name against the active palette.
func (t *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameShadow && !t.Shadow {
		return color.Transparent
	}
	if role, ok := colorRoles[name]; ok {
		if c, ok := t.Colors[role]; ok {
			return c
		}
	}
	return t.base.Color(name, t.Variant)
}

// Font looks up the sans or mono family in the font registry.
func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	if style.Symbol {
		return t.base.Font(style)
	}
	family := t.FontFamily
	if style.Monospace {
		family = t.MonoFontFamily
	}
	if res := t.fonts.Lookup(family, style); res != nil {
		return res
	}
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns the typography and radius tokens.
func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return t.FontSize
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius, theme.SizeNameScrollBarRadius:
		return t.Radius
	case theme.SizeNameWindowButtonRadius:
		return t.RadiusLarge
	default:
		return t.base.Size(name)
	}
}

// State is a copy of the token fields of a Theme.
type State struct {
	Name           string
	Variant        fyne.ThemeVariant
	Colors         tokens.Palette
	FontFamily     string
	MonoFontFamily string
	FontSize       float32
	Radius         float32
	RadiusLarge    float32
	Shadow         bool
}

// Snapshot copies the current token values out of the theme.
func (t *Theme) Snapshot() State {
	return State{
		Name:           t.Name,
		Variant:        t.Variant,
		Colors:         t.Colors.Clone(),
		FontFamily:     t.FontFamily,
		MonoFontFamily: t.MonoFontFamily,
		FontSize:       t.FontSize,
		Radius:         t.Radius,
		RadiusLarge:    t.RadiusLarge,
		Shadow:         t.Shadow,
	}
}
