// Package dialog implements a modal confirmation dialog: a prompt above a
// horizontal row of text buttons. The player moves the selection with the
// menu left/right actions and commits it with a confirm action.
//
// A Dialog never releases itself. ProcessInput reports the outcome of the
// frame and the owner drops the dialog after a Confirmed outcome.
package dialog

import (
	cfg "github.com/automoto/glassdialog/config"
)

// Input reports whether an action was freshly pressed this frame.
type Input interface {
	JustPressed(id cfg.ActionID) bool
}

// OutcomeKind tags the result of a ProcessInput call.
type OutcomeKind int

const (
	Continue OutcomeKind = iota
	Confirmed
)

func (k OutcomeKind) String() string {
	switch k {
	case Continue:
		return "continue"
	case Confirmed:
		return "confirmed"
	}
	return "unknown"
}

// Outcome is returned by ProcessInput. Index is only meaningful when Kind is
// Confirmed.
type Outcome struct {
	Kind  OutcomeKind
	Index int
}

// IsConfirmed reports whether the selection was committed.
func (o Outcome) IsConfirmed() bool {
	return o.Kind == Confirmed
}

// Dialog is a prompt with selectable buttons.
type Dialog struct {
	text     string
	buttons  []string
	selected int
	closed   bool

	// OnSelect, if set, is called once with the committed index.
	OnSelect func(index int)
}

// New returns a dialog with the given prompt and buttons.
func New(text string, buttons ...string) *Dialog {
	d := &Dialog{}
	d.SetText(text)
	for _, b := range buttons {
		d.AddButton(b)
	}
	return d
}

func (d *Dialog) SetText(text string) {
	d.text = text
}

// AddButton appends a button to the right end of the row.
func (d *Dialog) AddButton(label string) {
	d.buttons = append(d.buttons, label)
}

func (d *Dialog) Text() string {
	return d.text
}

// Buttons returns a copy of the button labels in display order.
func (d *Dialog) Buttons() []string {
	return append([]string(nil), d.buttons...)
}

// Selected returns the index of the highlighted button.
func (d *Dialog) Selected() int {
	return d.selected
}

// Closed reports whether the dialog has been confirmed.
func (d *Dialog) Closed() bool {
	return d.closed
}

// ProcessInput applies one frame of input. Movement is applied before
// confirmation, so a confirm in the same frame commits the moved selection.
// A dialog without buttons, or one already closed, ignores all input.
func (d *Dialog) ProcessInput(in Input) Outcome {
	n := len(d.buttons)
	if n == 0 || d.closed {
		return Outcome{Kind: Continue}
	}

	if in.JustPressed(cfg.ActionMenuLeft) {
		d.selected = max(d.selected-1, 0)
	}
	if in.JustPressed(cfg.ActionMenuRight) {
		d.selected = min(d.selected+1, n-1)
	}

	if d.confirmPressed(in) {
		d.closed = true
		if d.OnSelect != nil {
			d.OnSelect(d.selected)
		}
		return Outcome{Kind: Confirmed, Index: d.selected}
	}

	return Outcome{Kind: Continue}
}

func (d *Dialog) confirmPressed(in Input) bool {
	for _, id := range cfg.Dialog.ConfirmActions {
		if in.JustPressed(id) {
			return true
		}
	}
	return false
}
