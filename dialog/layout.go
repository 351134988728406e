package dialog

import (
	"math"

	cfg "github.com/automoto/glassdialog/config"
)

// Metrics measures text in the dialog font.
type Metrics interface {
	Measure(s string) (w, h float64)
	LineHeight() float64
}

// ButtonLayout is the geometry of a single button.
type ButtonLayout struct {
	Label   string
	Segment Rect // Slice of the panel width allotted to this button
	Box     Rect // Visible button, centered in its segment
	// Top-center anchor of the label
	LabelX, LabelY float64
}

// Layout is the complete geometry of one frame of the dialog.
type Layout struct {
	TextBox Rect
	Panel   Rect
	Shadow  Rect
	Glass   Rect

	// Top-center anchor of the prompt
	PromptX, PromptY float64

	SeparatorThick Rect
	SeparatorThin  Rect

	SegmentWidth float64
	Buttons      []ButtonLayout
}

// ComputeLayout places the dialog centered on a screen of the given size.
// With no buttons the button row is left empty.
func ComputeLayout(theme cfg.DialogConfig, text string, buttons []string, m Metrics, screenW, screenH float64) Layout {
	var l Layout

	tw, th := m.Measure(text)
	l.TextBox = RectAround(screenW/2, screenH/2, tw, th)

	l.Panel = l.TextBox
	l.Panel.Y1 += theme.ButtonRowHeight
	l.Shadow = l.Panel.Grow(theme.ShadowMargin)
	l.Glass = l.Panel.Grow(theme.GlassMargin)

	l.PromptX = l.Panel.X0 + l.Panel.Width()/2
	l.PromptY = l.Panel.Y0

	sepY := l.Panel.Y1 - theme.SeparatorOffset
	l.SeparatorThick = RectFromSize(l.Panel.X0, sepY, l.Panel.Width(), theme.SeparatorThick)
	l.SeparatorThin = RectFromSize(l.Panel.X0, sepY, l.Panel.Width(), theme.SeparatorThin)

	if len(buttons) == 0 {
		return l
	}

	l.SegmentWidth = l.Panel.Width() / float64(len(buttons))
	buttonWidth := l.SegmentWidth * theme.ButtonWidthRatio
	centerY := l.Panel.Y1 - theme.ButtonCenterOffset
	labelY := centerY - math.Trunc(m.LineHeight()/2)

	l.Buttons = make([]ButtonLayout, len(buttons))
	for i, label := range buttons {
		segX := l.Panel.X0 + float64(i)*l.SegmentWidth
		centerX := segX + l.SegmentWidth/2
		l.Buttons[i] = ButtonLayout{
			Label:   label,
			Segment: Rect{X0: segX, Y0: l.Panel.Y0, X1: segX + l.SegmentWidth, Y1: l.Panel.Y1},
			Box:     RectAround(centerX, centerY, buttonWidth, theme.ButtonHeight),
			LabelX:  centerX,
			LabelY:  labelY,
		}
	}

	return l
}

// PulseAlpha oscillates between theme.PulseMin and theme.PulseMax with a
// period of theme.PulsePeriod seconds, starting at the midpoint. A period
// that is not positive holds the midpoint.
func PulseAlpha(theme cfg.DialogConfig, elapsed float64) float64 {
	mid := (theme.PulseMin + theme.PulseMax) / 2
	if !(theme.PulsePeriod > 0) {
		return mid
	}
	amp := (theme.PulseMax - theme.PulseMin) / 2
	return mid + amp*math.Sin(2*math.Pi*elapsed/theme.PulsePeriod)
}

// HighlightAlpha is the opacity of the selected button's glow at the given
// time: (sin(t*pi)/2 + 0.5)*0.5 + 0.25 with the default theme.
func HighlightAlpha(elapsed float64) float64 {
	return PulseAlpha(cfg.Dialog, elapsed)
}
