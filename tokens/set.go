package tokens

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Appearance selects the light or dark half of a token set.
type Appearance string

const (
	Light Appearance = "light"
	Dark  Appearance = "dark"
)

var (
	// ErrEmpty is returned for a document that defines no palette at all.
	ErrEmpty = errors.New("token set defines no themes")
	// ErrUnknownAppearance is returned for an appearance other than light or dark.
	ErrUnknownAppearance = errors.New("unknown appearance")
	// ErrDuplicateAppearance is returned when two themes claim the same appearance.
	ErrDuplicateAppearance = errors.New("duplicate appearance")
	// ErrMissingRole is returned when a palette leaves a role of the vocabulary undefined.
	ErrMissingRole = errors.New("missing color role")
)

// Theme is one appearance of a token set.
type Theme struct {
	Name       string
	Appearance Appearance
	Colors     Palette
	// Radius is the base corner radius declared by the document, zero when absent.
	Radius float64
}

// RadiusScale derives the full radius ramp from the declared base radius.
func (t Theme) RadiusScale() RadiusScale {
	return ScaleFromBase(t.Radius)
}

// Set is a decoded, read-only token-set document.
type Set struct {
	Name   string
	Themes []Theme
}

// Theme returns the theme for the given appearance.
func (s *Set) Theme(a Appearance) (Theme, bool) {
	for _, t := range s.Themes {
		if t.Appearance == a {
			return t, true
		}
	}
	return Theme{}, false
}

// Palette returns a copy of the palette for the given appearance.
func (s *Set) Palette(a Appearance) (Palette, bool) {
	t, ok := s.Theme(a)
	if !ok {
		return nil, false
	}
	return t.Colors.Clone(), true
}

type rawTheme struct {
	Name       string            `json:"name"`
	Appearance string            `json:"appearance"`
	Colors     map[string]string `json:"colors"`
	Radius     float64           `json:"radius,omitempty"`
}

// rawDocument accepts both the multi-mode shape ({"themes": [...]}) and the
// legacy single-mode shape where one theme sits at the top level.
type rawDocument struct {
	rawTheme
	Themes []rawTheme `json:"themes"`
}

// Encode renders s as a compact multi-mode document that Parse accepts.
func Encode(s *Set) ([]byte, error) {
	doc := struct {
		Name   string     `json:"name"`
		Themes []rawTheme `json:"themes"`
	}{Name: s.Name}
	for _, t := range s.Themes {
		colors := make(map[string]string, len(t.Colors))
		for role, c := range t.Colors {
			colors[string(role)] = Hex(c)
		}
		doc.Themes = append(doc.Themes, rawTheme{
			Name:       t.Name,
			Appearance: string(t.Appearance),
			Colors:     colors,
			Radius:     t.Radius,
		})
	}
	return json.Marshal(doc)
}

// Parse decodes a token-set document.
func Parse(doc string) (*Set, error) {
	var raw rawDocument
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("decode token set: %w", err)
	}

	themes := raw.Themes
	if len(themes) == 0 && len(raw.Colors) > 0 {
		themes = []rawTheme{raw.rawTheme}
	}
	if len(themes) == 0 {
		return nil, ErrEmpty
	}

	set := &Set{Name: raw.Name, Themes: make([]Theme, 0, len(themes))}
	seen := make(map[Appearance]bool, len(themes))
	for _, rt := range themes {
		t, err := parseTheme(rt)
		if err != nil {
			return nil, err
		}
		if seen[t.Appearance] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAppearance, t.Appearance)
		}
		seen[t.Appearance] = true
		set.Themes = append(set.Themes, t)
	}
	return set, nil
}

func parseTheme(rt rawTheme) (Theme, error) {
	a := Appearance(rt.Appearance)
	if a != Light && a != Dark {
		return Theme{}, fmt.Errorf("%w %q in theme %q", ErrUnknownAppearance, rt.Appearance, rt.Name)
	}

	colors := make(Palette, len(roles))
	for _, role := range roles {
		value, ok := rt.Colors[string(role)]
		if !ok {
			return Theme{}, fmt.Errorf("%w %q in theme %q", ErrMissingRole, role, rt.Name)
		}
		c, err := ParseHex(value)
		if err != nil {
			return Theme{}, fmt.Errorf("role %q in theme %q: %w", role, rt.Name, err)
		}
		colors[role] = c
	}

	return Theme{
		Name:       rt.Name,
		Appearance: a,
		Colors:     colors,
		Radius:     rt.Radius,
	}, nil
}
