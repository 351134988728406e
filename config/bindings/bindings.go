// Package bindings maps keyboard keys and gamepad buttons to config actions.
package bindings

import (
	cfg "github.com/automoto/glassdialog/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding lists the keys and standard gamepad buttons that trigger an action
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// Config holds the device bindings and the analog stick threshold
type Config struct {
	Actions map[cfg.ActionID]Binding
	// Horizontal stick deflection (0.0 to 1.0) that counts as a left/right press
	StickThreshold float64
}

// Input is the global binding table
var Input Config

func init() {
	Input = Config{
		StickThreshold: 0.25,
		Actions: map[cfg.ActionID]Binding{
			cfg.ActionAttack: {
				Keys:    []ebiten.Key{ebiten.KeyZ, ebiten.KeySpace},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft}, // X / Square
			},
			cfg.ActionPause: {
				Keys:    []ebiten.Key{ebiten.KeyP},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight}, // Start / Options
			},
			cfg.ActionMenuLeft: {
				Keys:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			cfg.ActionMenuRight: {
				Keys:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			cfg.ActionMenuSelect: {
				Keys:    []ebiten.Key{ebiten.KeyEnter},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}, // A / Cross
			},
			cfg.ActionMenuBack: {
				Keys:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight}, // B / Circle
			},
		},
	}
}
