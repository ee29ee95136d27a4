// Package sfx synthesizes the game's chiptune audio: short square-wave
// effects pre-rendered to PCM buffers and an endless background stream.
// Everything plays through a single Ebitengine audio context.
package sfx

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

// Tone renders one square-wave note as 16-bit little-endian stereo PCM.
// vol is the peak amplitude in [0, 1].
func Tone(freq float64, d time.Duration, vol float64) []byte {
	samples := int(float64(SampleRate) * d.Seconds())
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		val := -vol
		phase := int(float64(i) * freq * 2 * math.Pi / SampleRate)
		if phase%2 == 0 {
			val = vol
		}
		// Linear fade-out keeps the note from clicking at the cut.
		val *= 1 - float64(i)/float64(samples)

		v := int16(val * 32767)
		buf[i*4] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}
	return buf
}

// Jingle concatenates one Tone per note, each lasting per.
func Jingle(notes []float64, per time.Duration, vol float64) []byte {
	var buf []byte
	for _, n := range notes {
		buf = append(buf, Tone(n, per, vol)...)
	}
	return buf
}

// musicStream is an endless square-wave melody: every half second it jumps
// to a random note from a fixed table.
type musicStream struct {
	tick float64
	freq float64
	vol  float64
}

var musicNotes = []float64{220, 261, 329, 392, 440, 523}

func (s *musicStream) Read(buf []byte) (int, error) {
	for i := 0; i+3 < len(buf); i += 4 {
		s.tick++
		if int(s.tick)%(SampleRate/2) == 0 {
			s.freq = musicNotes[rand.Intn(len(musicNotes))]
		}

		val := -s.vol
		phase := int(s.tick * s.freq * 2 * math.Pi / SampleRate)
		if phase%2 == 0 {
			val = s.vol
		}

		v := int16(val * 32767)
		buf[i] = byte(v)
		buf[i+1] = byte(v >> 8)
		buf[i+2] = byte(v)
		buf[i+3] = byte(v >> 8)
	}
	return len(buf) / 4 * 4, nil
}

// Mixer owns the audio context and all players.
type Mixer struct {
	ctx      *audio.Context
	click    *audio.Player
	splat    *audio.Player
	gameOver *audio.Player
	music    *audio.Player
}

// NewMixer creates the process-wide audio context and pre-renders the
// effect buffers. volume is the master volume from the config.
func NewMixer(volume float64) *Mixer {
	ctx := audio.NewContext(SampleRate)

	m := &Mixer{
		ctx:      ctx,
		click:    ctx.NewPlayerFromBytes(Tone(880, 60*time.Millisecond, 0.25)),
		splat:    ctx.NewPlayerFromBytes(Jingle([]float64{523, 659}, 50*time.Millisecond, 0.3)),
		gameOver: ctx.NewPlayerFromBytes(Jingle([]float64{392, 329, 261, 196}, 180*time.Millisecond, 0.3)),
	}

	music, err := ctx.NewPlayer(&musicStream{freq: 440, vol: 0.08})
	if err != nil {
		// No music is not fatal; the effects still work.
		log.Printf("sfx: music player: %v", err)
	}
	m.music = music

	m.SetVolume(volume)
	return m
}

// SetVolume applies the master volume to every player.
func (m *Mixer) SetVolume(volume float64) {
	for _, p := range []*audio.Player{m.click, m.splat, m.gameOver, m.music} {
		if p != nil {
			p.SetVolume(volume)
		}
	}
}

func (m *Mixer) Click()    { m.replay(m.click) }
func (m *Mixer) Splat()    { m.replay(m.splat) }
func (m *Mixer) GameOver() { m.replay(m.gameOver) }

func (m *Mixer) replay(p *audio.Player) {
	if p == nil {
		return
	}
	p.Rewind()
	p.Play()
}

// PlayMusic starts (or resumes) the background stream.
func (m *Mixer) PlayMusic() {
	if m.music != nil && !m.music.IsPlaying() {
		m.music.Play()
	}
}

// PauseMusic stops the background stream without rewinding it.
func (m *Mixer) PauseMusic() {
	if m.music != nil {
		m.music.Pause()
	}
}
