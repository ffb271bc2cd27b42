package systems

import (
	"math"

	"github.com/automoto/fireworks/components"
	"github.com/automoto/fireworks/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera derives the view rotation from the pointer and drift, then
// advances any active screen shake. Must run AFTER UpdateStage.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(stageEntry).Stage

	// Until the pointer moves the camera looks straight down the center
	px, py := stage.State.Width/2, stage.State.Height/2
	if pointerEntry, ok := components.Pointer.First(e.World); ok {
		if p := components.Pointer.Get(pointerEntry); p.Seen {
			px, py = p.X, p.Y
		}
	}
	camera.View = stage.Camera(config.Camera, px, py)

	camera.Offset.X, camera.Offset.Y = 0, 0
	if !stage.Paused {
		updateScreenShake(cameraEntry, camera)
	}
}

// updateScreenShake sets the shake offset on the camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Offset.X = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Offset.Y = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	if intensity <= 0 || duration <= 0 {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is at least as strong
		if intensity >= shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}
