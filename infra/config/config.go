package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Load loads the yaml config file at the given path into v.
// Fields missing from the file keep the values already present in v.
func Load(path string, v interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not load config from %s: %w", path, err)
	}

	err = yaml.Unmarshal(b, v)
	if err != nil {
		return fmt.Errorf("could not unmarshal the config from %s: %w", path, err)
	}

	log.Info().Str("path", path).Msg("loaded config")

	return nil
}
