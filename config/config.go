// Package config resolves runtime settings from defaults, a TOML file, environment and flags
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/term-snake/constants"
)

// Duration decodes TOML strings like "100ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// SpectatorConfig enables the WebSocket frame feed when Addr is set
type SpectatorConfig struct {
	Addr string `toml:"addr"`
}

// MQTTConfig enables round event publishing when Broker is set
type MQTTConfig struct {
	Broker   string `toml:"broker"`
	ClientID string `toml:"client_id"`
	Topic    string `toml:"topic"`
}

// Config is the full runtime configuration
type Config struct {
	Tick       Duration `toml:"tick"`
	Width      int      `toml:"width"`  // 0 = terminal width
	Height     int      `toml:"height"` // 0 = terminal height
	Seed       uint64   `toml:"seed"`   // 0 = time based
	StatusLine bool     `toml:"status_line"`
	Autopilot  bool     `toml:"autopilot"`
	Keymap     string   `toml:"keymap"`

	Audio     AudioConfig     `toml:"audio"`
	Log       LogConfig       `toml:"log"`
	Spectator SpectatorConfig `toml:"spectator"`
	MQTT      MQTTConfig      `toml:"mqtt"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Tick:       Duration{constants.TickInterval},
		StatusLine: true,
		Audio: AudioConfig{
			Enabled: true,
			Volume:  constants.DefaultMasterVolume,
		},
		Log: LogConfig{
			Dir: constants.LogDir,
		},
		MQTT: MQTTConfig{
			Topic: constants.DefaultMQTTTopic,
		},
	}
}

// Load reads defaults, then the TOML file at path if non-empty, then environment overrides
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		meta, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Environment variable names
const (
	EnvTick      = "TERM_SNAKE_TICK"
	EnvWidth     = "TERM_SNAKE_WIDTH"
	EnvHeight    = "TERM_SNAKE_HEIGHT"
	EnvSeed      = "TERM_SNAKE_SEED"
	EnvAutopilot = "TERM_SNAKE_AUTOPILOT"
	EnvAudio     = "TERM_SNAKE_AUDIO_ENABLED"
	EnvVolume    = "TERM_SNAKE_MASTER_VOLUME"
	EnvDebug     = "TERM_SNAKE_DEBUG"
	EnvSpectator = "TERM_SNAKE_SPECTATOR_ADDR"
	EnvBroker    = "TERM_SNAKE_MQTT_BROKER"
)

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvTick); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTick, err)
		}
		c.Tick.Duration = d
	}
	if err := envInt(EnvWidth, &c.Width); err != nil {
		return err
	}
	if err := envInt(EnvHeight, &c.Height); err != nil {
		return err
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if err := envBool(EnvAutopilot, &c.Autopilot); err != nil {
		return err
	}
	if err := envBool(EnvAudio, &c.Audio.Enabled); err != nil {
		return err
	}
	// Master volume 0-100 converted to 0.0-1.0
	if v := os.Getenv(EnvVolume); v != "" {
		vol, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVolume, err)
		}
		c.Audio.Volume = float64(vol) / 100.0
	}
	if err := envBool(EnvDebug, &c.Log.Debug); err != nil {
		return err
	}
	if v := os.Getenv(EnvSpectator); v != "" {
		c.Spectator.Addr = v
	}
	if v := os.Getenv(EnvBroker); v != "" {
		c.MQTT.Broker = v
	}
	return nil
}

func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = n
	return nil
}

func envBool(name string, dst *bool) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = b
	return nil
}

// Validation errors
var (
	ErrTickTooShort = errors.New("tick interval too short")
	ErrGridTooSmall = errors.New("grid too small for the initial snake")
	ErrVolumeRange  = errors.New("volume must be within [0, 1]")
)

// Validate checks ranges; zero width/height mean "use the terminal size"
func (c *Config) Validate() error {
	if c.Tick.Duration < constants.MinTickInterval {
		return fmt.Errorf("%w: %s < %s", ErrTickTooShort, c.Tick.Duration, constants.MinTickInterval)
	}
	if c.Width != 0 && c.Width < constants.MinGridWidth {
		return fmt.Errorf("%w: width %d < %d", ErrGridTooSmall, c.Width, constants.MinGridWidth)
	}
	if c.Height != 0 && c.Height < constants.MinGridHeight {
		return fmt.Errorf("%w: height %d < %d", ErrGridTooSmall, c.Height, constants.MinGridHeight)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: %v", ErrVolumeRange, c.Audio.Volume)
	}
	return nil
}

// GridSize picks the configured size or derives it from the terminal, leaving room for the status line
func (c *Config) GridSize(termWidth, termHeight int) (int, int) {
	width, height := c.Width, c.Height
	if width == 0 {
		width = termWidth
	}
	if height == 0 {
		height = termHeight
		if c.StatusLine {
			height -= constants.StatusLineHeight
		}
	}
	return width, height
}
