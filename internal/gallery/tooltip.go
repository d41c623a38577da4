// Package gallery provides the Graphyn showcase window.
//
// This file provides the tooltip-enabled mode toggle using the fyne-tooltip library.

package gallery

import (
	"fyne.io/fyne/v2/theme"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/graphyn-fyne/graphyn"
)

// modeToggle is the toolbar button flipping between light and dark mode.
// Its icon and tooltip describe the mode a tap switches to.
type modeToggle struct {
	*ttwidget.Button
	hint string
}

func newModeToggle(tapped func()) *modeToggle {
	return &modeToggle{Button: ttwidget.NewButtonWithIcon("", theme.ColorPaletteIcon(), tapped)}
}

// update points the toggle at the opposite of current.
func (t *modeToggle) update(current graphyn.Mode) {
	if current == graphyn.Light {
		t.SetIcon(theme.VisibilityOffIcon())
		t.hint = "Switch to dark mode"
	} else {
		t.SetIcon(theme.VisibilityIcon())
		t.hint = "Switch to light mode"
	}
	t.SetToolTip(t.hint)
}
