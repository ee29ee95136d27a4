package sfx

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestToneBufferShape(t *testing.T) {
	tests := []struct {
		name     string
		freq     float64
		duration time.Duration
		samples  int
	}{
		{"Short click", 880, 60 * time.Millisecond, 2646},
		{"One second", 440, time.Second, SampleRate},
		{"Low note", 196, 180 * time.Millisecond, 7938},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Tone(tt.freq, tt.duration, 0.3)
			if len(buf) != tt.samples*4 {
				t.Errorf("len = %d, want %d (16-bit stereo)", len(buf), tt.samples*4)
			}
		})
	}
}

func TestToneIsBoundedAndAudible(t *testing.T) {
	const vol = 0.3
	buf := Tone(440, 100*time.Millisecond, vol)

	scale := float64(vol)
	limit := int16(scale*32767) + 1
	maxAmp := int16(0)
	for i := 0; i+3 < len(buf); i += 4 {
		left := int16(binary.LittleEndian.Uint16(buf[i:]))
		right := int16(binary.LittleEndian.Uint16(buf[i+2:]))
		if left != right {
			t.Fatalf("sample %d: channels differ (%d vs %d)", i/4, left, right)
		}
		amp := left
		if amp < 0 {
			amp = -amp
		}
		if amp > limit {
			t.Fatalf("sample %d: amplitude %d exceeds %d", i/4, amp, limit)
		}
		if amp > maxAmp {
			maxAmp = amp
		}
	}
	if maxAmp == 0 {
		t.Fatal("tone is silent")
	}
}

func TestToneFadesOut(t *testing.T) {
	buf := Tone(440, 100*time.Millisecond, 0.3)

	// The last 10% of the buffer must be quieter than the first sample.
	first := int16(binary.LittleEndian.Uint16(buf))
	if first < 0 {
		first = -first
	}
	tail := buf[len(buf)/10*9:]
	for i := 0; i+3 < len(tail); i += 4 {
		v := int16(binary.LittleEndian.Uint16(tail[i:]))
		if v < 0 {
			v = -v
		}
		if v >= first {
			t.Fatalf("tail sample %d (amp %d) not quieter than attack (%d)", i/4, v, first)
		}
	}
}

func TestJingleConcatenates(t *testing.T) {
	notes := []float64{523, 659, 784}
	per := 50 * time.Millisecond

	got := len(Jingle(notes, per, 0.3))
	want := len(notes) * len(Tone(523, per, 0.3))
	if got != want {
		t.Errorf("len = %d, want %d", got, want)
	}
}

func TestMusicStreamFillsWholeFrames(t *testing.T) {
	s := &musicStream{freq: 440, vol: 0.1}

	buf := make([]byte, 4096)
	n, err := s.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != 4096 {
		t.Errorf("Read = %d, want 4096", n)
	}
	if n%4 != 0 {
		t.Errorf("Read returned a partial frame: %d bytes", n)
	}
}
