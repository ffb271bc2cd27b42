package sim

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Drift is the camera's autonomous yaw sway. One period runs
// 0 -> +A -> -A -> 0 on sine easing curves and loops forever; time past
// the end of one period carries into the next.
type Drift struct {
	seq     *gween.Sequence
	current float64
}

func NewDrift(amplitude float64, period time.Duration) *Drift {
	a := float32(amplitude)
	quarter := float32(period.Seconds() / 4)
	if quarter <= 0 {
		quarter = 1
	}

	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, a, quarter, ease.OutSine),
		gween.New(a, -a, 2*quarter, ease.InOutSine),
		gween.New(-a, 0, quarter, ease.InSine),
	)
	tw.SetLoop(-1)
	return &Drift{seq: tw}
}

// Update advances the drift by dt and returns the new yaw offset
func (d *Drift) Update(dt time.Duration) float64 {
	v, _, _ := d.seq.Update(float32(dt.Seconds()))
	d.current = float64(v)
	return d.current
}

// Value returns the yaw offset from the last Update
func (d *Drift) Value() float64 {
	return d.current
}
