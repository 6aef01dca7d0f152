package audio

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/run-for-love/internal/runner"
)

// Player turns simulation cues into sound. Until Start succeeds every cue
// is dropped, so a host without an audio device keeps running silently.
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	mixer   *beep.Mixer
	music   *beep.Ctrl
	musicOn bool
	live    bool
	rng     *rand.Rand
	logger  *log.Logger
}

// New creates a player at the given master volume (0 mutes, 1 is unity).
// logger may be nil.
func New(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		rate:    SampleRate,
		volume:  volume,
		mixer:   &beep.Mixer{},
		musicOn: true,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:  logger,
	}
}

// Start opens the speaker. On error the player stays silent.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.live {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.live = true
	return nil
}

// Close stops every sound and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.live {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.music = nil
	p.live = false
}

// MusicOn reports whether background music is enabled.
func (p *Player) MusicOn() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.musicOn
}

// ToggleMusic flips background music and returns the new setting. A
// running melody is paused or resumed in place.
func (p *Player) ToggleMusic() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.musicOn = !p.musicOn
	if p.music != nil {
		speaker.Lock()
		p.music.Paused = !p.musicOn
		speaker.Unlock()
	}
	p.logger.Debug("music toggled", "on", p.musicOn)
	return p.musicOn
}

func (p *Player) OnRunStart() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.live {
		return
	}
	p.stopMusicLocked()
	ctrl := &beep.Ctrl{Streamer: newMelody(p.rate).Streamer(), Paused: !p.musicOn}
	p.music = ctrl
	p.addLocked(ctrl)
}

func (p *Player) OnJump() {
	p.play(func() beep.Streamer { return newTone(p.rate, 440, 0.15, 120*time.Millisecond) })
}

func (p *Player) OnCollect() {
	p.play(func() beep.Streamer { return newTone(p.rate, 523, 0.12, 100*time.Millisecond) })
}

func (p *Player) OnGameOver() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopMusicLocked()
}

// OnWinStage ends the music once the run is won and applauds the sign.
func (p *Player) OnWinStage(stage runner.WinStage) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopMusicLocked()
	if stage == runner.WinStageSign && p.live {
		p.addLocked(newApplause(p.rate, p.rng))
	}
}

func (p *Player) OnEnvelopeOpen() {
	p.play(func() beep.Streamer { return newRustle(p.rate, p.rng) })
}

func (p *Player) play(build func() beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.live {
		return
	}
	p.addLocked(build())
}

// addLocked mixes s in at the master volume. p.mu must be held.
func (p *Player) addLocked(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
}

// stopMusicLocked drops the melody from the mixer. p.mu must be held.
func (p *Player) stopMusicLocked() {
	if p.music == nil {
		return
	}
	speaker.Lock()
	// A Ctrl without a streamer reports drained and the mixer removes it.
	p.music.Streamer = nil
	speaker.Unlock()
	p.music = nil
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

var _ runner.AudioNotifier = (*Player)(nil)
