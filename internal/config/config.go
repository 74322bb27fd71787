package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// UI modes.
const (
	UIModeAuto    = "auto"
	UIModeConsole = "console"
	UIModeTUI     = "tui"
)

const (
	defaultBotThreshold = 8.5
	defaultUIMode       = UIModeAuto
	defaultLogLevel     = "info"
	defaultSoundDir     = "assets/sounds"
)

var defaultPlayers = []string{"Alex", "Bob", "Charlie"}

// Config 客户端配置
type Config struct {
	Game  GameConfig  `yaml:"game"`
	UI    UIConfig    `yaml:"ui"`
	Log   LogConfig   `yaml:"log"`
	Sound SoundConfig `yaml:"sound"`
}

// GameConfig 游戏配置
type GameConfig struct {
	Players      []string `yaml:"players"`       // seat order
	Bots         []string `yaml:"bots"`          // seats played by the threshold bot
	BotThreshold float64  `yaml:"bot_threshold"` // bots draw while below this score
	Seed         uint64   `yaml:"seed"`          // 0 means a random shuffle
}

// UIConfig 界面配置
type UIConfig struct {
	Mode string `yaml:"mode"` // auto | console | tui
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"` // empty means ~/.eleven
}

// SoundConfig 音效配置
type SoundConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// IsBot reports whether the named seat is played by the bot.
func (c *GameConfig) IsBot(name string) bool {
	for _, b := range c.Bots {
		if b == name {
			return true
		}
	}
	return false
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment. Missing files are skipped; variables already set win.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg from ELEVEN_* environment variables.
func (c *Config) ApplyEnv() error {
	return c.applyEnv()
}

func (c *Config) applyDefaults() {
	if len(c.Game.Players) == 0 {
		c.Game.Players = append([]string(nil), defaultPlayers...)
	}
	if c.Game.BotThreshold == 0 {
		c.Game.BotThreshold = defaultBotThreshold
	}
	if c.UI.Mode == "" {
		c.UI.Mode = defaultUIMode
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Sound.Dir == "" {
		c.Sound.Dir = defaultSoundDir
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("ELEVEN_PLAYERS"); v != "" {
		c.Game.Players = SplitNames(v)
	}
	if v := os.Getenv("ELEVEN_BOTS"); v != "" {
		c.Game.Bots = SplitNames(v)
	}
	if v := os.Getenv("ELEVEN_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ELEVEN_SEED: %w", err)
		}
		c.Game.Seed = seed
	}
	if v := os.Getenv("ELEVEN_BOT_THRESHOLD"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("ELEVEN_BOT_THRESHOLD: %w", err)
		}
		c.Game.BotThreshold = limit
	}
	if v := os.Getenv("ELEVEN_UI_MODE"); v != "" {
		c.UI.Mode = v
	}
	if v := os.Getenv("ELEVEN_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate rejects settings no game could run with. Player counts are left
// to the engine.
func (c *Config) Validate() error {
	switch c.UI.Mode {
	case UIModeAuto, UIModeConsole, UIModeTUI:
	default:
		return fmt.Errorf("unknown ui mode %q", c.UI.Mode)
	}
	if c.Game.BotThreshold <= 0 || c.Game.BotThreshold > 12 {
		return fmt.Errorf("bot_threshold must be in (0, 12], got %v", c.Game.BotThreshold)
	}
	for _, b := range c.Game.Bots {
		found := false
		for _, p := range c.Game.Players {
			if p == b {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("bot %q is not seated", b)
		}
	}
	return nil
}

// SplitNames parses a comma separated name list, dropping blanks.
func SplitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
