package components

import (
	"github.com/automoto/glassdialog/dialog"
	"github.com/yohamta/donburi"
)

// DialogHostData holds the single active dialog slot (singleton component).
type DialogHostData struct {
	Active *dialog.Dialog
	// OnClose runs after the slot has been cleared.
	OnClose func(index int)
	// ClosedThisFrame is set on the frame a dialog is confirmed so the
	// confirm press does not leak into the scene below.
	ClosedThisFrame bool
}

var DialogHost = donburi.NewComponentType[DialogHostData]()
