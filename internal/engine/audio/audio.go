// Package audio plays the click heard when a turned layer snaps into place.
package audio

import (
	"fmt"
	"io"
	gomath "math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Click shape.
const (
	clickDuration = 60 * time.Millisecond
	clickBaseHz   = 520.0
	clickDecay    = 55.0 // envelope decay per second
)

// Manager plays synthesized sound effects through the speaker.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	volume float64 // 0.0 to 1.0
	muted  bool

	mixer *beep.Mixer
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		sampleRate: DefaultSampleRate,
		volume:     1.0,
		mixer:      &beep.Mixer{},
	}
}

// Init initializes the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close shuts down playback.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the speaker is running.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetVolume sets the volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// Volume returns the volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// SetMuted mutes or unmutes all sounds.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Muted reports whether sounds are muted.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// PlayClick plays the snap click for a settled turn. The pitch rises with
// the number of quarter turns. It does nothing while muted or before Init.
func (m *Manager) PlayClick(turns int) {
	m.mu.RLock()
	ok := m.initialized && !m.muted && m.volume > 0
	vol := m.volume
	rate := m.sampleRate
	m.mu.RUnlock()

	if !ok {
		return
	}

	s := &effects.Volume{
		Streamer: Click(rate, turns),
		Base:     2,
		Volume:   volumeToDb(vol) / 6.0206, // dB to base-2 exponent
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Click returns a short decaying tone for a turn of the given number of
// quarter turns.
func Click(rate beep.SampleRate, turns int) beep.Streamer {
	freq := clickFrequency(turns)
	total := rate.N(clickDuration)
	pos := 0

	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(rate)
			v := gomath.Sin(2*gomath.Pi*freq*t) * gomath.Exp(-clickDecay*t)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	}))
}

// WriteClickWAV encodes the click for a turn as 16-bit stereo WAV.
func WriteClickWAV(w io.WriteSeeker, rate beep.SampleRate, turns int) error {
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(w, Click(rate, turns), format); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	return nil
}

func clickFrequency(turns int) float64 {
	t := turns % 4
	if t < 0 {
		t += 4
	}
	return clickBaseHz * gomath.Pow(2, float64(t)/12*4)
}

// volumeToDb converts a 0-1 volume to decibel scale.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * gomath.Log10(vol)
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
