package systems

import (
	"image/color"
	"testing"

	cfg "github.com/automoto/glassdialog/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySavedTheme(t *testing.T) {
	theme := cfg.Dialog
	saved := ThemeFromConfig(theme)
	assert.Equal(t, [4]uint8{51, 77, 102, 204}, saved.ShadowColor)
	assert.Equal(t, 16.0, saved.PanelRadius)

	saved.GlassColor = [4]uint8{10, 20, 30, 40}
	saved.PanelRadius = 4
	saved.OverlayRadius = -1

	ApplySavedTheme(&theme, saved)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 40}, theme.GlassColor)
	assert.Equal(t, 4.0, theme.PanelRadius)
	assert.Equal(t, cfg.Dialog.OverlayRadius, theme.OverlayRadius, "negative radius is ignored")
	assert.Equal(t, cfg.Dialog.ShadowColor, theme.ShadowColor)
	assert.Equal(t, cfg.Dialog.ButtonHeight, theme.ButtonHeight, "layout metrics are not themed")
}

func TestApplySavedThemeNil(t *testing.T) {
	theme := cfg.Dialog
	ApplySavedTheme(&theme, nil)
	assert.Equal(t, cfg.Dialog.GlassColor, theme.GlassColor)
}

func TestThemeWithoutPersistence(t *testing.T) {
	gdataManager = nil
	saved, err := LoadTheme()
	require.NoError(t, err)
	assert.Nil(t, saved)
	assert.NoError(t, SaveTheme(ThemeFromConfig(cfg.Dialog)))
}

func TestPartialThemeKeepsDefaults(t *testing.T) {
	saved, err := parseTheme([]byte(`{"panelRadius":8,"glassColor":[1,2,3,4]}`), ThemeFromConfig(cfg.Dialog))
	require.NoError(t, err)

	theme := cfg.Dialog
	ApplySavedTheme(&theme, saved)

	assert.Equal(t, 8.0, theme.PanelRadius)
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 4}, theme.GlassColor)

	assert.Equal(t, cfg.Dialog.ShadowColor, theme.ShadowColor)
	assert.Equal(t, cfg.Dialog.SeparatorThickColor, theme.SeparatorThickColor)
	assert.Equal(t, cfg.Dialog.SeparatorThinColor, theme.SeparatorThinColor)
	assert.Equal(t, cfg.Dialog.HighlightColor, theme.HighlightColor)
	assert.Equal(t, cfg.Dialog.TextColor, theme.TextColor)
	assert.Equal(t, cfg.Dialog.HighlightRadius, theme.HighlightRadius)
	assert.Equal(t, cfg.Dialog.OverlayRadius, theme.OverlayRadius)
}

func TestParseThemeRejectsInvalidJSON(t *testing.T) {
	_, err := parseTheme([]byte(`{"panelRadius":`), ThemeFromConfig(cfg.Dialog))
	assert.Error(t, err)
}
