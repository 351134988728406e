package systems

import (
	"strings"

	"github.com/automoto/glassdialog/components"
	cfg "github.com/automoto/glassdialog/config"
	"github.com/automoto/glassdialog/config/bindings"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls keyboard and gamepads into the Input component.
// Must run BEFORE any system reading actions.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	keyboardUsed := pollKeyboard(&input.Current)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	padID, padUsed := pollGamepads(&input.Current, gamepadIDs)

	// Gamepad takes priority if both were used this frame
	if padUsed {
		input.LastInputMethod = getControllerType(padID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

func pollKeyboard(current *[cfg.ActionCount]bool) bool {
	used := false
	for id, b := range bindings.Input.Actions {
		for _, key := range b.Keys {
			if ebiten.IsKeyPressed(key) {
				current[id] = true
				used = true
			}
		}
	}
	return used
}

// pollGamepads merges buttons and the left stick of every standard-layout
// pad. It returns the last pad that contributed.
func pollGamepads(current *[cfg.ActionCount]bool, pads []ebiten.GamepadID) (ebiten.GamepadID, bool) {
	var active ebiten.GamepadID
	used := false

	for _, pad := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(pad) {
			continue
		}

		for id, b := range bindings.Input.Actions {
			for _, btn := range b.Buttons {
				if ebiten.IsStandardGamepadButtonPressed(pad, btn) {
					current[id] = true
					active, used = pad, true
				}
			}
		}

		h := ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if id, ok := stickAction(h, bindings.Input.StickThreshold); ok {
			current[id] = true
			active, used = pad, true
		}
	}

	return active, used
}

// stickAction maps a horizontal stick deflection to a menu direction.
func stickAction(horizontal, threshold float64) (cfg.ActionID, bool) {
	switch {
	case horizontal < -threshold:
		return cfg.ActionMenuLeft, true
	case horizontal > threshold:
		return cfg.ActionMenuRight, true
	}
	return cfg.ActionNone, false
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	method := controllerTypeFromName(ebiten.GamepadName(gpID))
	controllerTypeCache[gpID] = method
	return method
}

func controllerTypeFromName(name string) components.InputMethod {
	name = strings.ToLower(name)
	for _, tag := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, tag) {
			return components.InputPlayStation
		}
	}
	// Default gamepad to Xbox-style
	return components.InputXbox
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// InputSource exposes edge-triggered actions to widgets such as dialogs.
type InputSource struct {
	Data *components.InputData
}

func (s InputSource) JustPressed(id cfg.ActionID) bool {
	return GetAction(s.Data, id).JustPressed
}
