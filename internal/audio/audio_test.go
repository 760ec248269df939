package audio

import (
	"math"
	"testing"

	"github.com/vovakirdan/skyburst/internal/games/shmup"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		event shmup.Event
		cue   Cue
		ok    bool
	}{
		{shmup.Event{Type: shmup.EventShot, Kind: shmup.KindPlayerBullet}, CueShot, true},
		{shmup.Event{Type: shmup.EventShot, Kind: shmup.KindBossBullet}, 0, false},
		{shmup.Event{Type: shmup.EventSpawn, Kind: shmup.KindElite}, 0, false},
		{shmup.Event{Type: shmup.EventPlayerHit}, CueHit, true},
		{shmup.Event{Type: shmup.EventDestroyed, Kind: shmup.KindOrb}, CueExplosion, true},
		{shmup.Event{Type: shmup.EventOrbDetonated}, CueDetonation, true},
		{shmup.Event{Type: shmup.EventLevelUp}, CueLevelUp, true},
		{shmup.Event{Type: shmup.EventBossSpawned}, CueBoss, true},
		{shmup.Event{Type: shmup.EventGameOver}, CueGameOver, true},
		{shmup.Event{Type: shmup.EventVictory}, CueVictory, true},
		{shmup.Event{Type: shmup.EventPaused}, 0, false},
	}
	for _, tc := range tests {
		cue, ok := CueFor(tc.event)
		if ok != tc.ok || (ok && cue != tc.cue) {
			t.Errorf("CueFor(%s) = %s, %v; expected %s, %v", tc.event, cue, ok, tc.cue, tc.ok)
		}
	}
}

func TestCuesForDeduplicates(t *testing.T) {
	events := []shmup.Event{
		{Type: shmup.EventDestroyed, Kind: shmup.KindFormation},
		{Type: shmup.EventShot, Kind: shmup.KindPlayerBullet},
		{Type: shmup.EventDestroyed, Kind: shmup.KindFormation},
		{Type: shmup.EventOrbDetonated},
	}
	got := cuesFor(events)
	want := []Cue{CueExplosion, CueShot, CueDetonation}
	if len(got) != len(want) {
		t.Fatalf("cuesFor = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cue %d = %s, expected %s", i, got[i], want[i])
		}
	}
}

func TestSynthesizedCuesAreBounded(t *testing.T) {
	for c := range cueCount {
		buf := synthesize(c)
		if len(buf) == 0 {
			t.Errorf("%s: empty buffer", c)
			continue
		}
		for i, v := range buf {
			if math.IsNaN(v) || math.Abs(v) > 1 {
				t.Fatalf("%s: sample %d = %v out of range", c, i, v)
			}
		}
	}
}

func TestSynthesisIsStable(t *testing.T) {
	a, b := synthesize(CueExplosion), synthesize(CueExplosion)
	if len(a) != len(b) {
		t.Fatal("lengths differ")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs", i)
		}
	}
}

func TestBufferStreamer(t *testing.T) {
	s := &bufferStreamer{buf: floatBuffer{0.1, 0.2, 0.3}}
	samples := make([][2]float64, 2)

	n, ok := s.Stream(samples)
	if n != 2 || !ok || samples[1][0] != 0.2 || samples[1][1] != 0.2 {
		t.Errorf("first read n=%d ok=%v samples=%v", n, ok, samples)
	}
	n, ok = s.Stream(samples)
	if n != 1 || !ok || samples[0][0] != 0.3 {
		t.Errorf("second read n=%d ok=%v", n, ok)
	}
	n, ok = s.Stream(samples)
	if n != 0 || ok {
		t.Errorf("drained read n=%d ok=%v, expected 0 false", n, ok)
	}
}

func TestEnvelopeShape(t *testing.T) {
	buf := make(floatBuffer, sampleRate.N(100_000_000))
	for i := range buf {
		buf[i] = 1
	}
	envelope(buf, 10_000_000, 10_000_000)
	if buf[0] != 0 {
		t.Errorf("attack should start silent, got %v", buf[0])
	}
	if buf[len(buf)/2] != 1 {
		t.Errorf("sustain should be unity, got %v", buf[len(buf)/2])
	}
	if buf[len(buf)-1] >= 0.01 {
		t.Errorf("release should end near silence, got %v", buf[len(buf)-1])
	}
}

// Every operation must be safe without an audio device.
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	sm.SetVolume(-10)
	if !sm.volume.Silent {
		t.Error("volume -10 should mute")
	}
	sm.SetVolume(-1)
	if sm.volume.Silent || sm.volume.Volume != -1 {
		t.Errorf("volume = %v silent=%v, want -1 audible", sm.volume.Volume, sm.volume.Silent)
	}
	sm.Play(CueShot)
	sm.Play(Cue(99))
	sm.OnEvents([]shmup.Event{{Type: shmup.EventVictory}})
	sm.Cleanup()
}

func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()
	if err := sm.Initialize(); err != nil {
		t.Logf("sound initialization failed (expected without an audio device): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("second Initialize should be a no-op, got %v", err)
	}
	sm.OnEvents([]shmup.Event{{Type: shmup.EventLevelUp}})
	sm.Cleanup()
}
