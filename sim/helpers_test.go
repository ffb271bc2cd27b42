package sim

import (
	"time"

	"github.com/automoto/fireworks/config"
)

// fakeClock is advanced by hand
type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now += d }

// scriptedRand replays vals in order, wrapping around
type scriptedRand struct {
	vals []float64
	i    int
}

func (r *scriptedRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// fixedGlyphs returns the same points for every text
type fixedGlyphs struct {
	points []Vec3
	calls  []string
}

func (g *fixedGlyphs) Rasterize(text string) []Vec3 {
	g.calls = append(g.calls, text)
	return g.points
}

func newTestState(seed uint64, glyphs GlyphSource) *State {
	st := NewState(config.Fireworks, NewRand(seed), glyphs)
	st.Resize(1280, 720)
	return st
}
