package config

// ActionID represents a logical stage action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPause
	ActionToggleHUD
	ActionToggleDebug
	ActionFeatureNow
	ActionLaunch
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds analog tuning; key bindings live with the input system
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Pointer pixels per frame at full stick deflection
	StickSpeed float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		StickSpeed:     12,
	}
}
