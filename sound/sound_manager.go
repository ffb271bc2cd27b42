// Package sound plays synthesized burst effects through beep. Every call is
// safe before Initialize and after Cleanup; the show runs silent then.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// Voices beyond this are dropped rather than stacked
	maxVoices = 8
)

// SoundManager mixes burst sounds onto the speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	seed        int64
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		seed:  time.Now().UnixNano(),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	if sm == nil {
		return nil
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayBurst plays a crackling pop. Phrase bursts get a longer, deeper boom.
func (sm *SoundManager) PlayBurst(phrase bool) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	d, thump := 250*time.Millisecond, 90.0
	if phrase {
		d, thump = 600*time.Millisecond, 55.0
	}
	sm.seed++

	speaker.Lock()
	defer speaker.Unlock()
	if sm.mixer.Len() >= maxVoices {
		return
	}
	sm.mixer.Add(beep.Take(sampleRate.N(d), NewBurstGenerator(sampleRate, thump, sm.seed)))
}

// BurstGenerator is a decaying mix of noise crackle and a low thump
type BurstGenerator struct {
	sr    beep.SampleRate
	thump float64
	pos   int
	seed  int64
}

// NewBurstGenerator creates a burst sound generator
func NewBurstGenerator(sr beep.SampleRate, thump float64, seed int64) *BurstGenerator {
	return &BurstGenerator{
		sr:    sr,
		thump: thump,
		seed:  seed & 0x7fffffff,
	}
}

func (g *BurstGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, exponential decay
		envelope := math.Min(t/0.004, 1) * math.Exp(-t*9)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// Thump pitch falls as it decays
		boom := math.Sin(2 * math.Pi * g.thump * (1 + math.Exp(-t*20)) * t)

		sample := 0.2 * envelope * (0.6*noise + 0.4*boom)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BurstGenerator) Err() error {
	return nil
}
