package audio

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Player plays a single sound file to completion.
type Player struct {
	logger *slog.Logger

	// Volume control (0.0 to 1.0)
	volume float64
}

// NewPlayer creates a player at the given volume (0-100).
func NewPlayer(volume int, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{
		logger: logger,
		volume: clampVolume(float64(volume) / 100.0),
	}
}

// Play decodes path and plays it, returning when playback ends or ctx is done.
// Supports WAV, OGG (including .oga) and MP3 formats.
func (p *Player) Play(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	path = expandHome(path)

	decode, err := decoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open sound file: %w", err)
	}

	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to decode sound: %w", err)
	}
	defer func() { _ = streamer.Close() }()

	// Use a reasonable buffer size for low latency
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	defer speaker.Close()

	done := make(chan struct{})
	speaker.Play(beep.Seq(p.withVolume(streamer), beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		p.logger.Debug("feedback sound played", "path", path)
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

func (p *Player) withVolume(streamer beep.Streamer) beep.Streamer {
	if p.volume >= 1.0 {
		return streamer
	}
	return &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   volumeToExponent(p.volume),
		Silent:   p.volume == 0,
	}
}

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

// decoderFor picks a decoder from the file extension.
func decoderFor(path string) (decodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }, nil
	case ".ogg", ".oga":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return vorbis.Decode(f) }, nil
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func clampVolume(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// volumeToExponent maps a linear volume to a base-2 exponent for
// effects.Volume: 0.5 is -1, 0.25 is -2.
func volumeToExponent(volume float64) float64 {
	if volume <= 0 {
		return -10
	}
	return math.Log2(volume)
}
