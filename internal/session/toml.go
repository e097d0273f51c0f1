package session

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the [session] table of a TOML config file. All
// fields are optional and overlay DefaultConfig.
type fileConfig struct {
	Session struct {
		Mode          *string  `toml:"mode"`
		TimePerMove   *int     `toml:"time-per-move"`
		Questions     *int     `toml:"questions"`
		DifficultyMin *int     `toml:"difficulty-min"`
		DifficultyMax *int     `toml:"difficulty-max"`
		Openings      []string `toml:"openings"`
		MinPopularity *int     `toml:"min-popularity"`
	} `toml:"session"`
}

// LoadConfig reads a TOML session config, overlaying it on the
// defaults. A missing file is not an error; it yields the defaults.
// The result is validated before being returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat config: %w", err)
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	s := fc.Session
	if s.Mode != nil {
		cfg.Mode = Mode(*s.Mode)
	}
	if s.TimePerMove != nil {
		cfg.TimePerMoveSeconds = *s.TimePerMove
	}
	if s.Questions != nil {
		cfg.QuestionsPerSession = *s.Questions
	}
	if s.DifficultyMin != nil {
		cfg.DifficultyMin = *s.DifficultyMin
	}
	if s.DifficultyMax != nil {
		cfg.DifficultyMax = *s.DifficultyMax
	}
	if len(s.Openings) > 0 {
		cfg.OpeningFilter = s.Openings
	}
	if s.MinPopularity != nil {
		cfg.MinPopularity = *s.MinPopularity
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
