package assets

import (
	"encoding/binary"
	"math"
	"time"

	cfg "github.com/automoto/mini-magnets/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// sineGenerator streams an endless sine wave; bound it with beep.Take
type sineGenerator struct {
	sr    beep.SampleRate
	freq  float64
	phase float64
}

func newSineGenerator(sr beep.SampleRate, freq float64) *sineGenerator {
	return &sineGenerator{sr: sr, freq: freq}
}

func (g *sineGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := math.Sin(2 * math.Pi * g.phase)
		samples[i][0] = val
		samples[i][1] = val

		g.phase += g.freq / float64(g.sr)
		g.phase -= math.Floor(g.phase) // Keep in [0, 1)
	}
	return len(samples), true
}

func (g *sineGenerator) Err() error { return nil }

// envelope fades a stream in over attack and out over release
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; gain 0 is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// RenderTone synthesises a tone as 16-bit little-endian stereo PCM, the
// format ebiten audio players read.
func RenderTone(tone cfg.ToneConfig, sampleRate int) []byte {
	rate := beep.SampleRate(sampleRate)
	wave := beep.Take(rate.N(tone.Duration), newSineGenerator(rate, tone.Frequency))
	s := newVolume(newEnvelope(wave, tone.Duration, tone.Attack, tone.Release, rate), tone.Gain)

	out := make([]byte, 0, rate.N(tone.Duration)*4)
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok || n < len(buf) {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
