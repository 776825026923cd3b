package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment overrides for the audio settings.
const (
	EnvVolume = "PARTICLEFIELD_VOLUME" // 0-100
	EnvMuted  = "PARTICLEFIELD_MUTED"
)

// Load reads a YAML file over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides audio settings from the environment. Malformed values
// are ignored.
func applyEnv(cfg *Config) {
	if volume := os.Getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			v := float64(val) / 100.0
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			cfg.Audio.Volume = v
		}
	}

	if muted := os.Getenv(EnvMuted); muted != "" {
		if val, err := strconv.ParseBool(muted); err == nil {
			cfg.Audio.Muted = val
		}
	}
}
