package toolkit

import (
	"sort"

	"fyne.io/fyne/v2"
)

type fontKey struct {
	family string
	bold   bool
	italic bool
}

// FontRegistry maps font family names to bundled font resources.
type FontRegistry struct {
	fonts map[fontKey]fyne.Resource
}

// NewFontRegistry creates an empty registry.
func NewFontRegistry() *FontRegistry {
	return &FontRegistry{fonts: make(map[fontKey]fyne.Resource)}
}

// Register stores the resource for one weight/slant of a family.
// Only the Bold and Italic flags of style are significant.
func (r *FontRegistry) Register(family string, style fyne.TextStyle, res fyne.Resource) {
	r.fonts[fontKey{family: family, bold: style.Bold, italic: style.Italic}] = res
}

// Lookup returns the closest registered face of family, falling back from the
// requested weight/slant to the regular face. It returns nil when the family is unknown.
func (r *FontRegistry) Lookup(family string, style fyne.TextStyle) fyne.Resource {
	if r == nil {
		return nil
	}
	if res, ok := r.fonts[fontKey{family: family, bold: style.Bold, italic: style.Italic}]; ok {
		return res
	}
	if res, ok := r.fonts[fontKey{family: family, bold: style.Bold}]; ok {
		return res
	}
	return r.fonts[fontKey{family: family}]
}

// Families lists the registered family names in sorted order.
func (r *FontRegistry) Families() []string {
	seen := make(map[string]bool)
	var out []string
	for k := range r.fonts {
		if !seen[k.family] {
			seen[k.family] = true
			out = append(out, k.family)
		}
	}
	sort.Strings(out)
	return out
}
