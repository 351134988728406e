package config

// ActionID represents a logical input action. Keys and gamepad buttons are
// bound in package bindings.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionAttack
	ActionPause
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)
