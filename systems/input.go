package systems

import (
	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// InputBinding represents the keys and buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps stage actions to physical inputs
var Bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeyP, ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionToggleHUD: {
		Keys:                   []ebiten.Key{ebiten.KeyH},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	cfg.ActionToggleDebug: {
		Keys: []ebiten.Key{ebiten.KeyF3},
	},
	cfg.ActionFeatureNow: {
		Keys:                   []ebiten.Key{ebiten.KeyF},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	cfg.ActionLaunch: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionQuit: {
		Keys: []ebiten.Key{ebiten.KeyEscape},
	},
}

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// Raw cursor from the previous frame; the pointer only follows the mouse
// when it actually moves so the gamepad stick can steer it too
var lastCursor [2]int

// UpdateInput polls raw input into the Input component and records the
// pointer. Must run BEFORE any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Launches = input.Launches[:0]

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	updatePointer(ecs, input)
}

// updatePointer tracks the cursor and queues click and touch launches
func updatePointer(ecs *ecs.ECS, input *components.InputData) {
	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		return
	}
	pointer := components.Pointer.Get(entry)

	mx, my := ebiten.CursorPosition()
	if mx != lastCursor[0] || my != lastCursor[1] {
		lastCursor = [2]int{mx, my}
		pointer.X, pointer.Y = float64(mx), float64(my)
		pointer.Seen = true
	}

	moveWithStick(ecs, pointer)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		input.Launches = append(input.Launches, float64(mx))
	}

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		pointer.X, pointer.Y = float64(tx), float64(ty)
		pointer.Seen = true
		input.Launches = append(input.Launches, float64(tx))
	}

	if GetAction(input, cfg.ActionLaunch).JustPressed {
		input.Launches = append(input.Launches, pointer.X)
	}
}

// moveWithStick steers the pointer from the left stick of any gamepad
func moveWithStick(ecs *ecs.ECS, pointer *components.PointerData) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h > -deadzone && h < deadzone {
			h = 0
		}
		if v > -deadzone && v < deadzone {
			v = 0
		}
		if h == 0 && v == 0 {
			continue
		}
		w, hgt := viewportSize(ecs)
		pointer.X = clamp(pointer.X+h*cfg.Input.StickSpeed, 0, w)
		pointer.Y = clamp(pointer.Y+v*cfg.Input.StickSpeed, 0, hgt)
		pointer.Seen = true
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
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

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
