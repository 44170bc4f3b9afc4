// SPDX-License-Identifier: EPL-2.0

package audswitch

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ik5/audswitch/engine"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned for configurations the engine cannot run.
var ErrInvalidConfig = engine.ErrInvalidConfig

// Config selects the output format the engine starts with.
type Config struct {
	SampleRate int `mapstructure:"sample_rate"`
	Channels   int `mapstructure:"channels"`
	// AudioEnabled false runs the engine headless: every operation works
	// but nothing reaches an output device.
	AudioEnabled bool `mapstructure:"audio_enabled"`
	// UpmixMono duplicates mono uploads into every output channel when
	// the engine runs with more than one.
	UpmixMono bool `mapstructure:"upmix_mono"`
}

func DefaultConfig() Config {
	return Config{
		SampleRate:   48000,
		Channels:     2,
		AudioEnabled: true,
		UpmixMono:    true,
	}
}

func (c Config) engineConfig() engine.Config {
	return engine.Config{
		SampleRate:   c.SampleRate,
		Channels:     c.Channels,
		AudioEnabled: c.AudioEnabled,
	}
}

func (c Config) Validate() error {
	return c.engineConfig().Validate()
}

// LoadConfig builds a Config from DefaultConfig, an optional config file
// at path (any format viper reads, chosen by extension) and AUDSWITCH_*
// environment variables, in increasing priority. A .env file in the
// working directory is loaded into the environment first when present.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("sample_rate", def.SampleRate)
	v.SetDefault("channels", def.Channels)
	v.SetDefault("audio_enabled", def.AudioEnabled)
	v.SetDefault("upmix_mono", def.UpmixMono)

	v.SetEnvPrefix("AUDSWITCH")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
