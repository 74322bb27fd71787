//go:build !ci

// Package sound plays short effects for game events.
package sound

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const sampleRate = beep.SampleRate(44100)

type decoder func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

// decoders in lookup order: <effect>.wav wins over <effect>.mp3.
var decoders = []struct {
	ext    string
	decode decoder
}{
	{".wav", func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }},
	{".mp3", func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }},
}

// SoundManager buffers one clip per effect and plays them on the speaker.
type SoundManager struct {
	mu      sync.Mutex
	dir     string
	buffers map[string]*beep.Buffer
	enabled bool
}

// NewSoundManager returns a silent manager that loads effects from dir on Init.
func NewSoundManager(dir string) *SoundManager {
	return &SoundManager{
		dir:     dir,
		buffers: make(map[string]*beep.Buffer),
	}
}

// Init opens the speaker and loads every known effect found in the sound
// directory. Effects without a file stay silent.
func (sm *SoundManager) Init() error {
	if err := sm.load(); err != nil {
		return err
	}
	// a tenth of a second keeps the bust effect in step with the screen
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	sm.mu.Lock()
	sm.enabled = true
	sm.mu.Unlock()
	return nil
}

func (sm *SoundManager) load() error {
	info, err := os.Stat(sm.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read sound directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("sound path %s is not a directory", sm.dir)
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	for _, effect := range Effects {
		for _, d := range decoders {
			buf, err := loadClip(filepath.Join(sm.dir, effect+d.ext), d.decode)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return fmt.Errorf("loading %s effect: %w", effect, err)
			}
			sm.buffers[effect] = buf
			break
		}
	}
	return nil
}

// loadClip decodes path and resamples it into a stereo buffer at sampleRate.
func loadClip(path string, decode decoder) (*beep.Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	streamer, format, err := decode(f)
	if err != nil {
		return nil, err
	}
	defer func() { _ = streamer.Close() }()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 4})
	buf.Append(s)
	return buf, nil
}

// loaded reports whether a clip was found for effect.
func (sm *SoundManager) loaded(effect string) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	_, ok := sm.buffers[effect]
	return ok
}

// Play starts the named effect without waiting for it to finish.
func (sm *SoundManager) Play(effect string) {
	sm.mu.Lock()
	buf, ok := sm.buffers[effect]
	enabled := sm.enabled
	sm.mu.Unlock()

	if !enabled || !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

func (sm *SoundManager) Close() {
	sm.mu.Lock()
	wasEnabled := sm.enabled
	sm.enabled = false
	sm.mu.Unlock()

	if wasEnabled {
		speaker.Clear()
	}
}
