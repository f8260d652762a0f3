// Package audio turns simulation sound cues into short synthesised tones
// played through the system speaker. Nothing is loaded from disk.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/brick3d/internal/games/breakout"
)

const sampleRate = beep.SampleRate(44100)

type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveSaw
	waveNoise
)

// voice describes one cue: a waveform sweeping from Freq to EndFreq over
// Duration, shaped by a linear attack and an exponential tail.
type voice struct {
	Wave     waveform
	Freq     float64
	EndFreq  float64
	Duration time.Duration
	Attack   time.Duration
	Decay    float64 // Exponential decay rate per second
	Volume   float64
}

var voices = map[breakout.Sound]voice{
	breakout.SoundLaunch:     {Wave: waveSquare, Freq: 440, EndFreq: 880, Duration: 90 * time.Millisecond, Attack: 5 * time.Millisecond, Decay: 10, Volume: 0.25},
	breakout.SoundPaddle:     {Wave: waveSquare, Freq: 330, EndFreq: 330, Duration: 50 * time.Millisecond, Attack: 2 * time.Millisecond, Decay: 30, Volume: 0.3},
	breakout.SoundWall:       {Wave: waveSine, Freq: 220, EndFreq: 220, Duration: 40 * time.Millisecond, Attack: 2 * time.Millisecond, Decay: 40, Volume: 0.2},
	breakout.SoundBrickHit:   {Wave: waveSquare, Freq: 660, EndFreq: 620, Duration: 45 * time.Millisecond, Attack: 2 * time.Millisecond, Decay: 35, Volume: 0.25},
	breakout.SoundBrickBreak: {Wave: waveSquare, Freq: 880, EndFreq: 1320, Duration: 80 * time.Millisecond, Attack: 2 * time.Millisecond, Decay: 20, Volume: 0.25},
	breakout.SoundExplosion:  {Wave: waveNoise, Freq: 0, EndFreq: 0, Duration: 350 * time.Millisecond, Attack: 3 * time.Millisecond, Decay: 8, Volume: 0.4},
	breakout.SoundWarp:       {Wave: waveSine, Freq: 200, EndFreq: 1200, Duration: 250 * time.Millisecond, Attack: 10 * time.Millisecond, Decay: 4, Volume: 0.25},
	breakout.SoundPowerUp:    {Wave: waveSine, Freq: 523.25, EndFreq: 1046.5, Duration: 180 * time.Millisecond, Attack: 5 * time.Millisecond, Decay: 6, Volume: 0.3},
	breakout.SoundLaser:      {Wave: waveSaw, Freq: 1800, EndFreq: 600, Duration: 70 * time.Millisecond, Attack: 1 * time.Millisecond, Decay: 25, Volume: 0.15},
	breakout.SoundLifeLost:   {Wave: waveSaw, Freq: 300, EndFreq: 80, Duration: 500 * time.Millisecond, Attack: 5 * time.Millisecond, Decay: 3, Volume: 0.3},
	breakout.SoundLevelUp:    {Wave: waveSquare, Freq: 523.25, EndFreq: 1567.98, Duration: 400 * time.Millisecond, Attack: 5 * time.Millisecond, Decay: 2, Volume: 0.25},
	breakout.SoundGameOver:   {Wave: waveSine, Freq: 392, EndFreq: 98, Duration: 900 * time.Millisecond, Attack: 10 * time.Millisecond, Decay: 1.5, Volume: 0.35},
}

// toneStreamer renders a voice sample by sample. It is finite: Stream
// reports !ok once Duration has been produced.
type toneStreamer struct {
	v     voice
	total int
	pos   int
	phase float64
	noise uint32
}

func newTone(v voice) *toneStreamer {
	return &toneStreamer{v: v, total: sampleRate.N(v.Duration), noise: 0x9e3779b9}
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	sr := float64(sampleRate)
	attack := sampleRate.N(t.v.Attack)

	for i := range samples {
		if t.pos >= t.total {
			break
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.v.Freq + (t.v.EndFreq-t.v.Freq)*progress

		s := t.sample()
		t.phase += freq / sr
		if t.phase >= 1 {
			t.phase -= math.Floor(t.phase)
		}

		env := math.Exp(-t.v.Decay * float64(t.pos) / sr)
		if attack > 0 && t.pos < attack {
			env *= float64(t.pos) / float64(attack)
		}
		out := s * env * t.v.Volume

		samples[i][0] = out
		samples[i][1] = out
		t.pos++
		n++
	}
	return n, true
}

func (t *toneStreamer) Err() error {
	return nil
}

func (t *toneStreamer) sample() float64 {
	switch t.v.Wave {
	case waveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case waveSaw:
		return 2 * (t.phase - 0.5)
	case waveNoise:
		// xorshift keeps the noise reproducible without math/rand.
		t.noise ^= t.noise << 13
		t.noise ^= t.noise >> 17
		t.noise ^= t.noise << 5
		return float64(t.noise)/float64(math.MaxUint32)*2 - 1
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}
