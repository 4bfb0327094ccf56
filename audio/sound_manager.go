// Package audio plays footstep sounds while the character walks.
package audio

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const stepLength = 60 * time.Millisecond

// SoundManager owns the speaker and a mixer that footsteps are added to.
// Every Play method is a no-op until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	steps       int
	initialized bool
}

func NewSoundManager(sampleRate int, volume float64) *SoundManager {
	return &SoundManager{
		sampleRate: beep.SampleRate(sampleRate),
		volume:     volume,
		mixer:      &beep.Mixer{},
	}
}

// Initialize opens the speaker. It fails on machines without an audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.sampleRate, sm.sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything that is still playing.
func (sm *SoundManager) Cleanup() {
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

// PlayStep plays one footstep. Consecutive steps alternate pitch slightly.
func (sm *SoundManager) PlayStep() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	pitch := 90.0
	if sm.steps%2 == 1 {
		pitch = 75
	}
	sm.steps++

	streamer := beep.Take(sm.sampleRate.N(stepLength), NewStepGenerator(sm.sampleRate, pitch, sm.volume, uint64(sm.steps)))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// StepGenerator produces a short thud: a low sine with a burst of noise on top,
// both decaying exponentially.
type StepGenerator struct {
	sr     beep.SampleRate
	pitch  float64
	volume float64
	noise  *rand.Rand
	pos    int
}

func NewStepGenerator(sr beep.SampleRate, pitch, volume float64, seed uint64) *StepGenerator {
	return &StepGenerator{
		sr:     sr,
		pitch:  pitch,
		volume: volume,
		noise:  rand.New(rand.NewPCG(seed, 0x5eed)),
	}
}

func (g *StepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 60)

		sample := 0.7*math.Sin(2*math.Pi*g.pitch*t) + 0.3*(g.noise.Float64()*2-1)
		sample *= envelope * g.volume

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *StepGenerator) Err() error {
	return nil
}
