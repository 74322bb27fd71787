//go:build ci

package sound

// SoundManager is silent in CI builds, where there is no audio device.
type SoundManager struct{}

func NewSoundManager(string) *SoundManager { return &SoundManager{} }

func (*SoundManager) Init() error { return nil }
func (*SoundManager) Play(string) {}
func (*SoundManager) Close()      {}
