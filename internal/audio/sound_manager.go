package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skyburst/internal/games/shmup"
)

// SoundManager owns the speaker and mixes cues triggered by step events.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	cache       [cueCount]floatBuffer
	initialized bool
	lastShot    time.Time
}

// NewSoundManager creates a manager. Cues are rendered up front.
func NewSoundManager() *SoundManager {
	sm := &SoundManager{mixer: &beep.Mixer{}}
	sm.volume = &effects.Volume{Streamer: sm.mixer, Base: 2}
	for c := range cueCount {
		sm.cache[c] = synthesize(c)
	}
	return sm
}

// Initialize opens the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// SetVolume sets the master gain in halvings; 0 is unity, -1 is half.
// Values at or below -10 mute.
func (sm *SoundManager) SetVolume(v float64) {
	speaker.Lock()
	sm.volume.Volume = v
	sm.volume.Silent = v <= -10
	speaker.Unlock()
}

// Play mixes one cue in. Player shots are throttled so a held fire key
// does not saturate the mixer.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || c < 0 || c >= cueCount {
		return
	}
	if c == CueShot {
		now := time.Now()
		if now.Sub(sm.lastShot) < 90*time.Millisecond {
			return
		}
		sm.lastShot = now
	}

	speaker.Lock()
	sm.mixer.Add(&bufferStreamer{buf: sm.cache[c]})
	speaker.Unlock()
}

// OnEvents plays the distinct cues of one step.
func (sm *SoundManager) OnEvents(events []shmup.Event) {
	for _, c := range cuesFor(events) {
		sm.Play(c)
	}
}

// Cleanup silences everything and detaches from the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
