package systems

import (
	"errors"

	"github.com/automoto/glassdialog/components"
	cfg "github.com/automoto/glassdialog/config"
	"github.com/automoto/glassdialog/dialog"
	"github.com/automoto/glassdialog/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	// ErrNilDialog is returned when OpenDialog is given no dialog.
	ErrNilDialog = errors.New("dialog is nil")
	// ErrNoButtons is returned when opening a dialog that has nothing to select.
	ErrNoButtons = errors.New("dialog has no buttons")
	// ErrDialogActive is returned when a dialog is already shown.
	ErrDialogActive = errors.New("a dialog is already active")
)

var (
	dialogQueue   *DrawQueue
	dialogMetrics *fonts.Metrics
)

// OpenDialog puts d into the host slot. onClose, if set, is called with the
// confirmed index once the slot has been cleared.
func OpenDialog(e *ecs.ECS, d *dialog.Dialog, onClose func(index int)) error {
	if d == nil {
		return ErrNilDialog
	}
	if len(d.Buttons()) == 0 {
		return ErrNoButtons
	}

	host := GetOrCreateDialogHost(e)
	if host.Active != nil {
		return ErrDialogActive
	}

	host.Active = d
	host.OnClose = onClose
	logger.Debugw("dialog opened", "text", d.Text(), "buttons", d.Buttons())
	return nil
}

// IsDialogOpen reports whether a dialog occupies the host slot.
func IsDialogOpen(e *ecs.ECS) bool {
	return GetOrCreateDialogHost(e).Active != nil
}

// DialogBlocksInput reports whether scene input should be skipped this frame.
// This stays true on the frame a dialog closes.
func DialogBlocksInput(e *ecs.ECS) bool {
	host := GetOrCreateDialogHost(e)
	return host.Active != nil || host.ClosedThisFrame
}

// UpdateDialog feeds this frame's input to the active dialog.
// Must run AFTER UpdateInput and BEFORE scene systems that check DialogBlocksInput.
func UpdateDialog(e *ecs.ECS) {
	host := GetOrCreateDialogHost(e)
	host.ClosedThisFrame = false

	d := host.Active
	if d == nil {
		return
	}

	before := d.Selected()
	outcome := d.ProcessInput(InputSource{Data: getOrCreateInput(e)})
	if !outcome.IsConfirmed() {
		if d.Selected() != before {
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		return
	}

	PlaySFX(e, cfg.SoundMenuSelect)

	// Release the dialog before anything reacts to the choice.
	onClose := host.OnClose
	host.Active = nil
	host.OnClose = nil
	host.ClosedThisFrame = true

	logger.Debugw("dialog confirmed", "text", d.Text(), "index", outcome.Index)
	if onClose != nil {
		onClose(outcome.Index)
	}
}

// DrawDialog renders the active dialog on top of the scene.
func DrawDialog(e *ecs.ECS, screen *ebiten.Image) {
	host := GetOrCreateDialogHost(e)
	if host.Active == nil {
		return
	}

	// Lazy initialize cached queue and metrics
	if dialogQueue == nil {
		dialogQueue = NewDrawQueue(cfg.Dialog.TextColor)
	}
	if dialogMetrics == nil {
		dialogMetrics = fonts.NewMetrics(cfg.Dialog.Font)
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	host.Active.Draw(dialogQueue, dialogMetrics, width, height, Elapsed(e))
	dialogQueue.Flush(screen)
}

// GetOrCreateDialogHost returns the singleton DialogHost component, creating if needed
func GetOrCreateDialogHost(e *ecs.ECS) *components.DialogHostData {
	entry, ok := components.DialogHost.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.DialogHost))
	}
	return components.DialogHost.Get(entry)
}
