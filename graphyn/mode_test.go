package graphyn

import (
	"encoding/json"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, theme.VariantLight, Resolve(Light))
	assert.Equal(t, theme.VariantDark, Resolve(Dark))
}

// Every mode must have its own variant; a new Mode constant without a Resolve
// case panics here.
func TestResolveCoversEveryMode(t *testing.T) {
	seen := make(map[fyne.ThemeVariant]Mode)
	for _, m := range Modes() {
		var v fyne.ThemeVariant
		require.NotPanics(t, func() { v = Resolve(m) }, "mode %v has no mapping", m)
		prev, dup := seen[v]
		require.False(t, dup, "modes %v and %v resolve to the same variant", prev, m)
		seen[v] = m
		assert.Equal(t, v, Resolve(m), "resolution must be deterministic")
	}
	assert.Len(t, seen, int(modeCount))
}

func TestResolvePanicsOutsideModes(t *testing.T) {
	assert.Panics(t, func() { Resolve(modeCount) })
}

func TestDefaultModeIsDark(t *testing.T) {
	var m Mode
	assert.Equal(t, Dark, m)
	assert.Equal(t, Dark, DefaultMode)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"light", Light, false},
		{"DARK", Dark, false},
		{" Light ", Light, false},
		{"system", DefaultMode, true},
		{"", DefaultMode, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
		} else {
			assert.NoError(t, err, tt.in)
		}
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestModeText(t *testing.T) {
	type doc struct {
		Mode Mode `json:"mode"`
	}

	data, err := json.Marshal(doc{Mode: Light})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"light"}`, string(data))

	var d doc
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"dark"}`), &d))
	assert.Equal(t, Dark, d.Mode)

	assert.Error(t, json.Unmarshal([]byte(`{"mode":"sepia"}`), &d))

	_, err = modeCount.MarshalText()
	assert.Error(t, err)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "light", Light.String())
	assert.Equal(t, "dark", Dark.String())
	assert.Equal(t, "Mode(9)", Mode(9).String())
}
