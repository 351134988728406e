package config

import (
	"image/color"

	"github.com/automoto/glassdialog/fonts"
)

// LayerGUI is the draw queue layer for overlays. Lower layers are drawn first.
const LayerGUI = 500

// DialogConfig contains the layout and theme of the confirmation dialog.
// All distances are in screen pixels at the logical resolution.
type DialogConfig struct {
	Font fonts.FontName

	// Panel
	ButtonRowHeight float64 // Added below the prompt to make room for the button row
	ShadowMargin    float64 // Outer (dark) background growth
	GlassMargin     float64 // Inner (light) background growth
	PanelRadius     float64

	// Separator between prompt and buttons
	SeparatorOffset float64 // Distance above the panel bottom
	SeparatorThick  float64
	SeparatorThin   float64

	// Buttons
	ButtonWidthRatio   float64 // Fraction of the segment width
	ButtonHeight       float64
	ButtonCenterOffset float64 // Distance of the button center above the panel bottom
	HighlightGrow      float64
	HighlightRadius    float64
	OverlayRadius      float64
	OverlayAlpha       float64

	// Pulse of the selected button's highlight (seconds)
	PulseMin    float64
	PulseMax    float64
	PulsePeriod float64

	// Colors
	ShadowColor         color.NRGBA
	GlassColor          color.NRGBA
	SeparatorThickColor color.NRGBA
	SeparatorThinColor  color.NRGBA
	HighlightColor      color.NRGBA
	TextColor           color.NRGBA

	// Layers
	Layer           int
	LayerBackOffset int

	// Actions that commit the current selection
	ConfirmActions []ActionID
}

// BackLayer is the layer for the panel background and button highlights.
func (d DialogConfig) BackLayer() int {
	return d.Layer - d.LayerBackOffset
}

// TitleConfig contains the title screen hosting the dialogs
type TitleConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	HintColor       color.RGBA
	Title           string

	Prompt        string
	PromptButtons []string

	QuitPrompt   string
	QuitButtons  []string
	QuitYesIndex int
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogLevel   string
	WriteTheme bool // Persist the active dialog theme and continue
}

// Global configuration instances
var C *Config
var Dialog DialogConfig
var Title TitleConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Gray      = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	Night     = color.RGBA{R: 20, G: 20, B: 30, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Dialog = DialogConfig{
		Font: fonts.Normal,

		ButtonRowHeight: 44,
		ShadowMargin:    12,
		GlassMargin:     8,
		PanelRadius:     16,

		SeparatorOffset: 35,
		SeparatorThick:  4,
		SeparatorThin:   2,

		ButtonWidthRatio:   0.95,
		ButtonHeight:       24,
		ButtonCenterOffset: 12,
		HighlightGrow:      2,
		HighlightRadius:    14,
		OverlayRadius:      12,
		OverlayAlpha:       0.5,

		PulseMin:    0.25,
		PulseMax:    0.75,
		PulsePeriod: 2,

		ShadowColor:         color.NRGBA{R: 51, G: 77, B: 102, A: 204},
		GlassColor:          color.NRGBA{R: 153, G: 179, B: 204, A: 128},
		SeparatorThickColor: color.NRGBA{R: 153, G: 179, B: 255, A: 255},
		SeparatorThinColor:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		HighlightColor:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		TextColor:           color.NRGBA{R: 255, G: 255, B: 255, A: 255},

		Layer:           LayerGUI,
		LayerBackOffset: 10,

		ConfirmActions: []ActionID{ActionMenuSelect, ActionAttack},
	}

	Title = TitleConfig{
		BackgroundColor: Night,
		TitleColor:      White,
		TextColor:       LightBlue,
		HintColor:       Gray,
		Title:           "GLASS DIALOG",

		Prompt:        "Do you want to continue?",
		PromptButtons: []string{"Yes", "No"},

		QuitPrompt:   "Quit game?",
		QuitButtons:  []string{"No", "Yes"},
		QuitYesIndex: 1,
	}

	Debug = DebugConfig{
		LogLevel: "info",
	}
}
