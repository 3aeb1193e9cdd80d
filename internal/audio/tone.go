package audio

import (
	"fmt"
	"io"
	"math"
	"math/rand"
)

// Tone describes a short synthesized cue: a frequency sweep with optional
// noise, shaped by a linear attack and an exponential release.
type Tone struct {
	Frequency    float64 // Start frequency in Hz
	EndFrequency float64 // End frequency in Hz (0 = same as start)
	Duration     float64 // Length in seconds
	Volume       float64 // Peak amplitude (0.0 ~ 1.0)
	Noise        float64 // Noise mix (0.0 = pure tone, 1.0 = pure noise)
	Attack       float64 // Attack time in seconds
}

// Validate checks that the tone can be rendered.
func (t Tone) Validate() error {
	if t.Duration <= 0 {
		return fmt.Errorf("tone duration must be positive, got %v", t.Duration)
	}
	if t.Frequency <= 0 && t.Noise < 1 {
		return fmt.Errorf("tone frequency must be positive, got %v", t.Frequency)
	}
	if t.Volume < 0 || t.Volume > 1 {
		return fmt.Errorf("tone volume must be in [0, 1], got %v", t.Volume)
	}
	if t.Noise < 0 || t.Noise > 1 {
		return fmt.Errorf("tone noise must be in [0, 1], got %v", t.Noise)
	}
	return nil
}

// ToneStream holds rendered PCM data for a tone.
// The data is 16-bit signed little-endian stereo, the format expected by
// Ebitengine's audio.Context.
type ToneStream struct {
	data       []byte
	sampleRate int64
	offset     int64
}

// Synthesize renders the tone at the given sample rate.
//
// Parameters:
//   - t: Tone description
//   - sampleRate: Output sample rate in Hz
//
// Returns:
//   - *ToneStream: Rendered stream
//   - error: Error if the tone is invalid
func Synthesize(t Tone, sampleRate int) (*ToneStream, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}

	endFreq := t.EndFrequency
	if endFreq <= 0 {
		endFreq = t.Frequency
	}

	samples := int(t.Duration * float64(sampleRate))
	data := make([]byte, samples*4) // 2 channels * 2 bytes

	// Fixed seed so the same tone always renders the same bytes
	rng := rand.New(rand.NewSource(int64(t.Frequency*1000) + int64(samples)))

	phase := 0.0
	for i := 0; i < samples; i++ {
		progress := float64(i) / float64(samples)
		freq := t.Frequency + (endFreq-t.Frequency)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		sample := math.Sin(phase)*(1-t.Noise) + (rng.Float64()*2-1)*t.Noise
		sample *= t.Volume * envelope(float64(i)/float64(sampleRate), t.Attack, t.Duration)

		v := int16(clampSample(sample) * math.MaxInt16)
		// Same sample on both channels
		data[i*4] = byte(v)
		data[i*4+1] = byte(v >> 8)
		data[i*4+2] = byte(v)
		data[i*4+3] = byte(v >> 8)
	}

	return &ToneStream{
		data:       data,
		sampleRate: int64(sampleRate),
	}, nil
}

// envelope returns the amplitude multiplier at time sec.
func envelope(sec, attack, duration float64) float64 {
	if attack > 0 && sec < attack {
		return sec / attack
	}
	release := (sec - attack) / math.Max(duration-attack, 1e-6)
	return math.Exp(-4 * release)
}

func clampSample(s float64) float64 {
	if s > 1 {
		return 1
	}
	if s < -1 {
		return -1
	}
	return s
}

// Bytes returns the rendered PCM data.
func (s *ToneStream) Bytes() []byte {
	return s.data
}

// Read reads PCM data into p.
// Implements io.Reader interface.
func (s *ToneStream) Read(p []byte) (n int, err error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}

	n = copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek sets the offset for the next Read.
// Implements io.Seeker interface.
func (s *ToneStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	s.offset = newOffset
	return newOffset, nil
}

// Length returns the total length of the PCM data in bytes.
func (s *ToneStream) Length() int64 {
	return int64(len(s.data))
}

// SampleRate returns the sample rate in Hz.
func (s *ToneStream) SampleRate() int64 {
	return s.sampleRate
}
