package systems

import (
	"github.com/automoto/glassdialog/components"
	cfg "github.com/automoto/glassdialog/config"
	"github.com/automoto/glassdialog/dialog"
	"github.com/yohamta/donburi/ecs"
)

// Quitter ends the game
type Quitter interface {
	RequestQuit()
}

// NewUpdateTitle creates the title screen system. Select asks the configured
// prompt; back or pause asks whether to quit.
func NewUpdateTitle(quitter Quitter) ecs.System {
	return func(e *ecs.ECS) {
		// Dialog owns input while open and on the frame it closes
		if DialogBlocksInput(e) {
			return
		}

		title := GetOrCreateTitle(e)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuBack).JustPressed || GetAction(input, cfg.ActionPause).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			openQuitDialog(e, quitter)
			return
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			openPromptDialog(e, title)
		}
	}
}

func openQuitDialog(e *ecs.ECS, quitter Quitter) {
	d := dialog.New(cfg.Title.QuitPrompt, cfg.Title.QuitButtons...)
	err := OpenDialog(e, d, func(index int) {
		if index == cfg.Title.QuitYesIndex {
			logger.Infow("quit confirmed")
			quitter.RequestQuit()
		}
	})
	if err != nil {
		logger.Warnw("could not open quit dialog", "error", err)
	}
}

func openPromptDialog(e *ecs.ECS, title *components.TitleData) {
	buttons := cfg.Title.PromptButtons
	d := dialog.New(title.Prompt, buttons...)
	err := OpenDialog(e, d, func(index int) {
		title.LastAnswer = buttons[index]
		title.Answers++
	})
	if err != nil {
		logger.Warnw("could not open prompt dialog", "error", err)
	}
}

// GetOrCreateTitle returns the singleton Title component, creating if needed
func GetOrCreateTitle(e *ecs.ECS) *components.TitleData {
	if _, ok := components.Title.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Title))
		components.Title.SetValue(ent, components.TitleData{
			Prompt: cfg.Title.Prompt,
		})
	}

	ent, _ := components.Title.First(e.World)
	return components.Title.Get(ent)
}

// GetTitleHint returns the navigation hint for the current input method
func GetTitleHint(method components.InputMethod, dialogOpen bool) string {
	if dialogOpen {
		switch method {
		case components.InputPlayStation:
			return "Left Stick/D-Pad: Choose   Cross: Confirm"
		case components.InputXbox:
			return "Left Stick/D-Pad: Choose   A: Confirm"
		}
		return "Left/Right: Choose   Enter: Confirm"
	}

	switch method {
	case components.InputPlayStation:
		return "Cross: Ask   Circle: Quit"
	case components.InputXbox:
		return "A: Ask   B: Quit"
	}
	return "Enter: Ask   Esc: Quit"
}
