package systems

import (
	"encoding/json"
	"fmt"
	"image/color"

	cfg "github.com/automoto/glassdialog/config"
	"github.com/quasilyte/gdata"
)

const themeItem = "dialog-theme"

// SavedTheme represents the dialog colors and radii stored on disk
type SavedTheme struct {
	ShadowColor         [4]uint8 `json:"shadowColor"`
	GlassColor          [4]uint8 `json:"glassColor"`
	SeparatorThickColor [4]uint8 `json:"separatorThickColor"`
	SeparatorThinColor  [4]uint8 `json:"separatorThinColor"`
	HighlightColor      [4]uint8 `json:"highlightColor"`
	TextColor           [4]uint8 `json:"textColor"`
	PanelRadius         float64  `json:"panelRadius"`
	HighlightRadius     float64  `json:"highlightRadius"`
	OverlayRadius       float64  `json:"overlayRadius"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for theme storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open game data: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadTheme loads the saved theme. It returns nil without an error when
// persistence is unavailable or nothing was saved yet.
func LoadTheme() (*SavedTheme, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(themeItem)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	return parseTheme(data, ThemeFromConfig(cfg.Dialog))
}

// parseTheme decodes data on top of base, so keys missing from a hand-edited
// file keep their base values.
func parseTheme(data []byte, base *SavedTheme) (*SavedTheme, error) {
	theme := *base
	if err := json.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	return &theme, nil
}

// SaveTheme writes the theme to disk
func SaveTheme(t *SavedTheme) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize theme: %w", err)
	}
	if err := gdataManager.SaveItem(themeItem, data); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	logger.Infow("dialog theme saved", "item", themeItem)
	return nil
}

// ThemeFromConfig captures the themeable parts of a dialog config
func ThemeFromConfig(d cfg.DialogConfig) *SavedTheme {
	return &SavedTheme{
		ShadowColor:         nrgbaToArray(d.ShadowColor),
		GlassColor:          nrgbaToArray(d.GlassColor),
		SeparatorThickColor: nrgbaToArray(d.SeparatorThickColor),
		SeparatorThinColor:  nrgbaToArray(d.SeparatorThinColor),
		HighlightColor:      nrgbaToArray(d.HighlightColor),
		TextColor:           nrgbaToArray(d.TextColor),
		PanelRadius:         d.PanelRadius,
		HighlightRadius:     d.HighlightRadius,
		OverlayRadius:       d.OverlayRadius,
	}
}

// ApplySavedTheme copies a saved theme into d. Negative radii are ignored.
func ApplySavedTheme(d *cfg.DialogConfig, t *SavedTheme) {
	if t == nil {
		return
	}

	d.ShadowColor = arrayToNRGBA(t.ShadowColor)
	d.GlassColor = arrayToNRGBA(t.GlassColor)
	d.SeparatorThickColor = arrayToNRGBA(t.SeparatorThickColor)
	d.SeparatorThinColor = arrayToNRGBA(t.SeparatorThinColor)
	d.HighlightColor = arrayToNRGBA(t.HighlightColor)
	d.TextColor = arrayToNRGBA(t.TextColor)

	if t.PanelRadius >= 0 {
		d.PanelRadius = t.PanelRadius
	}
	if t.HighlightRadius >= 0 {
		d.HighlightRadius = t.HighlightRadius
	}
	if t.OverlayRadius >= 0 {
		d.OverlayRadius = t.OverlayRadius
	}
}

func nrgbaToArray(c color.NRGBA) [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

func arrayToNRGBA(a [4]uint8) color.NRGBA {
	return color.NRGBA{R: a[0], G: a[1], B: a[2], A: a[3]}
}
