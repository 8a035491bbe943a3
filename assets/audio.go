package assets

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	cfg "github.com/automoto/mini-magnets/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Rendered PCM per sound
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders every configured menu tone so the first play has no lag.
func (l *AudioLoader) PreloadSFX() {
	for id, tone := range cfg.Sound.Tones {
		if _, ok := l.sfxCache[id]; !ok {
			l.sfxCache[id] = RenderTone(tone, l.context.SampleRate())
		}
	}
}

// LoadSFX returns a new player for a sound each call.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	pcm, ok := l.sfxCache[id]
	if !ok {
		tone, ok := cfg.Sound.Tones[id]
		if !ok {
			return nil, fmt.Errorf("no tone configured for sound %d", id)
		}
		pcm = RenderTone(tone, l.context.SampleRate())
		l.sfxCache[id] = pcm
	}
	return l.context.NewPlayer(bytes.NewReader(pcm))
}

// LoadMusic returns a looping player for an ogg or wav file on disk.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", path, err)
	}

	var stream interface {
		io.ReadSeeker
		Length() int64
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode music %s: %w", path, err)
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}
