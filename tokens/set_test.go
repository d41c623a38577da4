package tokens

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/graphyn-fyne/internal/assets"
)

func TestParseGraphynDocument(t *testing.T) {
	set, err := Parse(assets.GraphynJSON)
	require.NoError(t, err)

	assert.Equal(t, "Graphyn", set.Name)
	require.Len(t, set.Themes, 2)

	for _, a := range []Appearance{Light, Dark} {
		p, ok := set.Palette(a)
		require.True(t, ok, "missing %s palette", a)
		assert.Len(t, p, len(Roles()))
	}

	dark, _ := set.Palette(Dark)
	assert.Equal(t, color.NRGBA{R: 0xdd, G: 0xda, B: 0xfb, A: 0xff}, dark[Primary])
	assert.Equal(t, color.NRGBA{R: 0xc4, G: 0xbf, B: 0xf1, A: 0xff}, dark[Accent])
}

func TestParseLegacySingleModeDocument(t *testing.T) {
	set, err := Parse(assets.ZincJSON)
	require.NoError(t, err)

	require.Len(t, set.Themes, 1)
	th, ok := set.Theme(Dark)
	require.True(t, ok)
	assert.Equal(t, "Zinc Dark", th.Name)
	assert.Equal(t, 6.0, th.Radius)

	_, ok = set.Theme(Light)
	assert.False(t, ok)
}

func TestPaletteIsACopy(t *testing.T) {
	set, err := Parse(assets.GraphynJSON)
	require.NoError(t, err)

	p, _ := set.Palette(Light)
	p[Background] = color.NRGBA{R: 1, G: 2, B: 3, A: 4}

	again, _ := set.Palette(Light)
	assert.NotEqual(t, p[Background], again[Background])
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no themes", `{"name":"x"}`, ErrEmpty},
		{"bad appearance", `{"name":"x","appearance":"sepia","colors":{"background":"#fff"}}`, ErrUnknownAppearance},
		{"missing role", `{"name":"x","appearance":"dark","colors":{"background":"#000000"}}`, ErrMissingRole},
		{
			"duplicate appearance",
			`{"themes":[` + fullTheme("a", "dark") + `,` + fullTheme("b", "dark") + `]}`,
			ErrDuplicateAppearance,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	_, err := Parse("not valid json{{{")
	require.Error(t, err)
}

func TestParseRejectsBadHex(t *testing.T) {
	doc := strings.Replace(fullTheme("x", "light"), `"ring":"#123456"`, `"ring":"purple"`, 1)
	_, err := Parse(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `role "ring"`)
}

func TestParseIgnoresExtraRoles(t *testing.T) {
	doc := strings.Replace(fullTheme("x", "light"), `"colors":{`, `"colors":{"chart_1":"#ff0000",`, 1)
	set, err := Parse(doc)
	require.NoError(t, err)

	p, _ := set.Palette(Light)
	assert.Len(t, p, len(Roles()))
}

func TestEncodeIsAcceptedByParse(t *testing.T) {
	for _, doc := range []string{assets.GraphynJSON, assets.ZincJSON} {
		set, err := Parse(doc)
		require.NoError(t, err)

		data, err := Encode(set)
		require.NoError(t, err)
		assert.Less(t, len(data), len(doc))

		again, err := Parse(string(data))
		require.NoError(t, err)
		assert.Equal(t, set, again)
	}
}

// fullTheme renders a single-mode document defining every role.
func fullTheme(name, appearance string) string {
	var b strings.Builder
	b.WriteString(`{"name":"` + name + `","appearance":"` + appearance + `","colors":{`)
	for i, r := range Roles() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`"` + string(r) + `":"#123456"`)
	}
	b.WriteString(`}}`)
	return b.String()
}
