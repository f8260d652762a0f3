package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/brick3d/internal/games/breakout"
)

// maxVoices caps simultaneous cues. A ball grinding along a wall can fire
// a sound every tick; extra cues are dropped.
const maxVoices = 8

// Player is a breakout.Audio sink backed by the system speaker. It is safe
// to use before Init succeeds or after Close: cues are then dropped.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	logger      *log.Logger
	played      uint64
	dropped     uint64
}

var _ breakout.Audio = (*Player)(nil)

// NewPlayer creates a player. logger may be nil.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{mixer: &beep.Mixer{}, logger: logger}
}

// Init opens the speaker. It fails on machines without an audio device;
// callers treat that as "play silently".
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("speaker ready", "rate", int(sampleRate))
	return nil
}

// Play queues the tone for s.
func (p *Player) Play(s breakout.Sound) {
	v, ok := voices[s]
	if !ok {
		return
	}

	p.mu.Lock()
	ready := p.initialized && !p.muted
	p.mu.Unlock()
	if !ready {
		p.count(false)
		return
	}

	speaker.Lock()
	busy := p.mixer.Len() >= maxVoices
	if !busy {
		p.mixer.Add(newTone(v))
	}
	speaker.Unlock()
	p.count(!busy)
}

func (p *Player) count(played bool) {
	p.mu.Lock()
	if played {
		p.played++
	} else {
		p.dropped++
	}
	p.mu.Unlock()
}

// SetMuted toggles output without closing the speaker.
func (p *Player) SetMuted(m bool) {
	p.mu.Lock()
	p.muted = m
	p.mu.Unlock()
}

// Stats returns how many cues were played and dropped.
func (p *Player) Stats() (played, dropped uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played, p.dropped
}

// Close silences everything. beep has no speaker shutdown, so the device
// stays open until the process exits.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
