package dialog

import (
	"image/color"
	"math"

	cfg "github.com/automoto/glassdialog/config"
	"github.com/automoto/glassdialog/fonts"
)

// Target accepts layered draw commands. Commands on lower layers must end up
// behind commands on higher layers.
type Target interface {
	FillRect(r Rect, clr color.Color, radius float64, layer int)
	DrawText(face fonts.FontName, s string, x, y float64, align Align, layer int)
}

// Draw renders the dialog with the global theme.
func (d *Dialog) Draw(t Target, m Metrics, screenW, screenH, elapsed float64) {
	d.DrawWithTheme(cfg.Dialog, t, m, screenW, screenH, elapsed)
}

// DrawWithTheme renders the dialog. It keeps no state between calls.
func (d *Dialog) DrawWithTheme(theme cfg.DialogConfig, t Target, m Metrics, screenW, screenH, elapsed float64) {
	l := ComputeLayout(theme, d.text, d.buttons, m, screenW, screenH)
	back := theme.BackLayer()

	// Panel background
	t.FillRect(l.Shadow, theme.ShadowColor, theme.PanelRadius, back)
	t.FillRect(l.Glass, theme.GlassColor, theme.PanelRadius, back)

	// Prompt
	t.DrawText(theme.Font, d.text, l.PromptX, l.PromptY, AlignCenter, theme.Layer)

	// Separator
	t.FillRect(l.SeparatorThick, theme.SeparatorThickColor, 0, theme.Layer)
	t.FillRect(l.SeparatorThin, theme.SeparatorThinColor, 0, theme.Layer)

	for i, b := range l.Buttons {
		if i == d.selected {
			glow := withAlpha(theme.HighlightColor, PulseAlpha(theme, elapsed))
			t.FillRect(b.Box.Grow(theme.HighlightGrow), glow, theme.HighlightRadius, back)
			t.FillRect(b.Box, withAlpha(theme.HighlightColor, theme.OverlayAlpha), theme.OverlayRadius, back)
		}
		t.DrawText(theme.Font, b.Label, b.LabelX, b.LabelY, AlignCenter, theme.Layer)
	}
}

// withAlpha replaces the alpha of c. NaN counts as fully transparent.
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	if math.IsNaN(a) {
		a = 0
	}
	a = math.Max(0, math.Min(1, a))
	c.A = uint8(math.Round(a * 255))
	return c
}
