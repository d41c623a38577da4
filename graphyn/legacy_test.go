package graphyn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/graphyn-fyne/tokens"
	"github.com/piwi3910/graphyn-fyne/toolkit"
)

func TestInitZincMatchesInit(t *testing.T) {
	for _, m := range Modes() {
		t.Run(m.String(), func(t *testing.T) {
			a, w := newTestWindow(t)

			current := toolkit.NewHost(a)
			require.NoError(t, Init(current, w, m))

			legacy := toolkit.NewHost(a)
			require.NoError(t, InitZinc(legacy, w, m))

			assert.Equal(t, current.Global().Snapshot(), legacy.Global().Snapshot())
		})
	}
}

func TestZincModeAliases(t *testing.T) {
	var m ZincMode = ZincLight
	assert.Equal(t, Light, m)
	assert.Equal(t, Dark, ZincDark)
	assert.Equal(t, Resolve(Light), Resolve(ZincLight))
}

func TestZincThemeJSON(t *testing.T) {
	doc := ZincThemeJSON()
	require.NotEmpty(t, doc)
	assert.NotEqual(t, ThemeJSON(), doc)

	set, err := tokens.Parse(doc)
	require.NoError(t, err)
	assert.Len(t, set.Themes, 1)
}
