package ui

import (
	"fmt"

	"github.com/automoto/glassdialog/components"
	cfg "github.com/automoto/glassdialog/config"
	"github.com/automoto/glassdialog/fonts"
	"github.com/automoto/glassdialog/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TitleUI holds the ebitenui interface drawn behind the dialogs
type TitleUI struct {
	UI    *ebitenui.UI
	Title *components.TitleData

	promptLabel *widget.Label
	statusLabel *widget.Label
	hintLabel   *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewTitleUI creates the title screen UI
func NewTitleUI(title *components.TitleData) *TitleUI {
	tui := &TitleUI{Title: title}

	tui.loadFonts()
	tui.buildUI()

	return tui
}

// loadFonts wraps the faces registered in the fonts package for ebitenui.
// The fonts must be loaded before the UI is built.
func (tui *TitleUI) loadFonts() {
	tui.titleFace = text.NewGoXFace(fonts.Title.Get())
	tui.normalFace = text.NewGoXFace(fonts.Normal.Get())
	tui.smallFace = text.NewGoXFace(fonts.Small.Get())
}

func (tui *TitleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Title.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Title.Title, &tui.titleFace, &widget.LabelColor{
			Idle: cfg.Title.TitleColor,
		}),
	))

	tui.promptLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &tui.normalFace, &widget.LabelColor{
			Idle: cfg.Title.TextColor,
		}),
	)
	contentContainer.AddChild(tui.promptLabel)

	tui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &tui.normalFace, &widget.LabelColor{
			Idle: cfg.Title.TextColor,
		}),
	)
	contentContainer.AddChild(tui.statusLabel)

	rootContainer.AddChild(contentContainer)

	// Hint pinned to the bottom of the screen
	hintContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	tui.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &tui.smallFace, &widget.LabelColor{
			Idle: cfg.Title.HintColor,
		}),
	)
	hintContainer.AddChild(tui.hintLabel)
	rootContainer.AddChild(hintContainer)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update refreshes the labels from the title state and the current input method
func (tui *TitleUI) Update(method components.InputMethod, dialogOpen bool) {
	tui.promptLabel.Label = fmt.Sprintf("Question: %s", tui.Title.Prompt)
	tui.statusLabel.Label = StatusText(tui.Title)
	tui.hintLabel.Label = systems.GetTitleHint(method, dialogOpen)
	tui.UI.Update()
}

// StatusText summarizes the answers given so far
func StatusText(title *components.TitleData) string {
	if title.Answers == 0 {
		return "No answer yet"
	}
	return fmt.Sprintf("Last answer: %s (%d so far)", title.LastAnswer, title.Answers)
}
