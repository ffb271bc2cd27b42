package sim

import (
	"math"
	"testing"
	"time"
)

func TestDriftStaysWithinAmplitude(t *testing.T) {
	const amp = 0.1
	d := NewDrift(amp, 4*time.Second)

	var lo, hi, last float64
	frame := time.Second / 60
	for i := 0; i < 60*10; i++ {
		v := d.Update(frame)
		last = v
		if math.Abs(v) > amp+1e-6 {
			t.Fatalf("frame %d: drift %v exceeds amplitude", i, v)
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi < amp*0.9 || lo > -amp*0.9 {
		t.Errorf("drift only covered [%v, %v]", lo, hi)
	}
	if d.Value() != last {
		t.Errorf("Value() = %v, want last update %v", d.Value(), last)
	}
}

func TestDriftStartsRising(t *testing.T) {
	d := NewDrift(0.1, 4*time.Second)
	first := d.Update(100 * time.Millisecond)
	second := d.Update(100 * time.Millisecond)
	if !(first > 0 && second > first) {
		t.Errorf("expected drift to rise from zero, got %v then %v", first, second)
	}
}

// TestDriftCarriesOverflowAcrossPeriods checks a frame that crosses the end
// of one period lands where the next period would be after the leftover time.
func TestDriftCarriesOverflowAcrossPeriods(t *testing.T) {
	period := 4 * time.Second
	d := NewDrift(0.1, period)
	d.Update(period - 100*time.Millisecond)
	got := d.Update(200 * time.Millisecond)

	want := NewDrift(0.1, period).Update(100 * time.Millisecond)
	if want <= 0 {
		t.Fatalf("reference drift %v should have started rising", want)
	}
	if math.Abs(got-want) > 1e-4 {
		t.Errorf("drift after wrap = %v, want %v", got, want)
	}

	// Several more periods keep sweeping rather than sticking at zero
	var hi float64
	for i := 0; i < 60*9; i++ {
		hi = math.Max(hi, d.Update(time.Second/60))
	}
	if hi < 0.09 {
		t.Errorf("drift stalled after looping, peak %v", hi)
	}
}
