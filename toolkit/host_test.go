package toolkit

import (
	"bytes"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/graphyn-fyne/internal/assets"
	"github.com/piwi3910/graphyn-fyne/tokens"
)

func newTestHost(t *testing.T, opts ...Option) (*Host, fyne.App, fyne.Window) {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow("graphyn")
	w.SetContent(widget.NewLabel("content"))
	t.Cleanup(w.Close)
	return NewHost(a, opts...), a, w
}

func TestChangeModeRequiresInitialization(t *testing.T) {
	h, _, w := newTestHost(t)

	err := h.ChangeMode(theme.VariantDark, w)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Nil(t, h.Global())
}

func TestUpdateGlobalRequiresMode(t *testing.T) {
	h, _, w := newTestHost(t)
	require.NoError(t, h.EnsureInitialized())

	called := false
	err := h.UpdateGlobal(w, func(*Theme) { called = true })
	assert.ErrorIs(t, err, ErrNoGlobalTheme)
	assert.False(t, called)
}

func TestEnsureInitializedIsIdempotent(t *testing.T) {
	h, _, _ := newTestHost(t)

	require.NoError(t, h.EnsureInitialized())
	first := h.TokenSet()
	require.NoError(t, h.EnsureInitialized())

	assert.True(t, h.Initialized())
	assert.Same(t, first, h.TokenSet())
}

func TestEnsureInitializedReportsBadDocument(t *testing.T) {
	h, _, _ := newTestHost(t, WithTokenDocument(`{"name":"broken"}`))

	err := h.EnsureInitialized()
	assert.ErrorIs(t, err, tokens.ErrEmpty)
	assert.False(t, h.Initialized())
}

func TestChangeModeInstallsGlobalTheme(t *testing.T) {
	h, a, w := newTestHost(t)
	require.NoError(t, h.EnsureInitialized())
	require.NoError(t, h.ChangeMode(theme.VariantLight, w))

	g := h.Global()
	require.NotNil(t, g)
	assert.Same(t, g, a.Settings().Theme())
	assert.Equal(t, theme.VariantLight, g.Variant)
	assert.Equal(t, "Graphyn Light", g.Name)

	light, _ := h.TokenSet().Palette(tokens.Light)
	assert.Equal(t, light, g.Colors)
}

func TestChangeModeKeepsNonColorFields(t *testing.T) {
	h, _, w := newTestHost(t)
	require.NoError(t, h.EnsureInitialized())
	require.NoError(t, h.ChangeMode(theme.VariantDark, w))
	require.NoError(t, h.UpdateGlobal(w, func(th *Theme) {
		th.FontFamily = "Inter"
		th.FontSize = 18
		th.Radius = 3
		th.RadiusLarge = 3
		th.Shadow = false
	}))
	dark := h.Global().Snapshot()

	require.NoError(t, h.ChangeMode(theme.VariantLight, w))
	light := h.Global().Snapshot()

	assert.Equal(t, "Inter", light.FontFamily)
	assert.Equal(t, float32(18), light.FontSize)
	assert.Equal(t, float32(3), light.Radius)
	assert.False(t, light.Shadow)
	assert.NotEqual(t, dark.Colors, light.Colors)
}

func TestChangeModeUnknownVariant(t *testing.T) {
	h, _, w := newTestHost(t)
	require.NoError(t, h.EnsureInitialized())

	err := h.ChangeMode(fyne.ThemeVariant(7), w)
	assert.ErrorIs(t, err, ErrNoPalette)
}

func TestChangeModeMissingAppearance(t *testing.T) {
	h, _, w := newTestHost(t, WithTokenDocument(assets.ZincJSON))
	require.NoError(t, h.EnsureInitialized())

	require.NoError(t, h.ChangeMode(theme.VariantDark, w))
	assert.ErrorIs(t, h.ChangeMode(theme.VariantLight, w), ErrNoPalette)
	assert.Equal(t, theme.VariantDark, h.Global().Variant)
}

func TestHeadlessHost(t *testing.T) {
	h := NewHost(nil)
	require.NoError(t, h.EnsureInitialized())
	require.NoError(t, h.ChangeMode(theme.VariantDark, nil))
	require.NoError(t, h.UpdateGlobal(nil, func(th *Theme) { th.Shadow = false }))
	assert.False(t, h.Global().Shadow)
}

func TestHostLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	h, _, w := newTestHost(t, WithLogger(logger))

	require.NoError(t, h.EnsureInitialized())
	require.NoError(t, h.ChangeMode(theme.VariantDark, w))
	require.NoError(t, h.UpdateGlobal(w, func(*Theme) {}))

	out := buf.String()
	assert.Contains(t, out, "theme subsystem initialized")
	assert.Contains(t, out, "theme mode changed")
	assert.Contains(t, out, "global theme updated")
}

func TestRegisterFontIsSharedWithTheme(t *testing.T) {
	h, a, w := newTestHost(t)
	// Must be a real face: installing the theme relays out the window with it.
	res := theme.DefaultTextBoldFont()
	h.RegisterFont("Host Grotesk", fyne.TextStyle{}, res)

	require.NoError(t, h.EnsureInitialized())
	require.NoError(t, h.ChangeMode(theme.VariantDark, w))
	require.NoError(t, h.UpdateGlobal(w, func(th *Theme) { th.FontFamily = "Host Grotesk" }))

	assert.Equal(t, res, h.Global().Font(fyne.TextStyle{}))
	assert.Equal(t, res, h.Global().Font(fyne.TextStyle{Italic: true}))
	assert.Equal(t, []string{"Host Grotesk"}, h.Fonts().Families())
	assert.Same(t, h.Global(), a.Settings().Theme())
}

func TestWithNilFontRegistryKeepsDefault(t *testing.T) {
	h := NewHost(nil, WithFontRegistry(nil))
	require.NotNil(t, h.Fonts())

	h.RegisterFont("Geist Mono", fyne.TextStyle{}, theme.DefaultTextMonospaceFont())
	assert.Equal(t, []string{"Geist Mono"}, h.Fonts().Families())
}

func TestWithFontRegistryIsShared(t *testing.T) {
	fonts := NewFontRegistry()
	h := NewHost(nil, WithFontRegistry(fonts))

	h.RegisterFont("Geist Mono", fyne.TextStyle{}, theme.DefaultTextMonospaceFont())
	assert.Same(t, fonts, h.Fonts())
	assert.Equal(t, []string{"Geist Mono"}, fonts.Families())
}

func TestGlobalColorsAreIndependentOfTokenSet(t *testing.T) {
	h, _, w := newTestHost(t)
	require.NoError(t, h.EnsureInitialized())
	require.NoError(t, h.ChangeMode(theme.VariantDark, w))

	h.Global().Colors[tokens.Primary] = color.NRGBA{R: 1, A: 255}

	dark, _ := h.TokenSet().Palette(tokens.Dark)
	assert.NotEqual(t, color.NRGBA{R: 1, A: 255}, dark[tokens.Primary])
}
