// Package tokens decodes Graphyn token-set documents into per-appearance color palettes.
//
// A token set names a fixed vocabulary of color roles. Each appearance (light or dark) must
// define every role; roles outside the vocabulary are ignored.
package tokens

import "image/color"

// Role is the name of a semantic color token.
type Role string

const (
	Background            Role = "background"
	Foreground            Role = "foreground"
	Card                  Role = "card"
	CardForeground        Role = "card_foreground"
	Popover               Role = "popover"
	PopoverForeground     Role = "popover_foreground"
	Primary               Role = "primary"
	PrimaryForeground     Role = "primary_foreground"
	Secondary             Role = "secondary"
	SecondaryForeground   Role = "secondary_foreground"
	Muted                 Role = "muted"
	MutedForeground       Role = "muted_foreground"
	Accent                Role = "accent"
	AccentForeground      Role = "accent_foreground"
	Destructive           Role = "destructive"
	DestructiveForeground Role = "destructive_foreground"
	Border                Role = "border"
	Input                 Role = "input"
	Ring                  Role = "ring"
)

var roles = []Role{
	Background, Foreground,
	Card, CardForeground,
	Popover, PopoverForeground,
	Primary, PrimaryForeground,
	Secondary, SecondaryForeground,
	Muted, MutedForeground,
	Accent, AccentForeground,
	Destructive, DestructiveForeground,
	Border, Input, Ring,
}

// Roles returns the fixed role vocabulary in display order.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// Palette maps each role to its resolved color for one appearance.
type Palette map[Role]color.NRGBA

// Clone returns an independent copy of the palette.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	cp := make(Palette, len(p))
	for role, c := range p {
		cp[role] = c
	}
	return cp
}
