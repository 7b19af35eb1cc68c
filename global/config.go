package global

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type GlobalConfig struct {
	// Directory holding the sprite generations, e.g. <SpriteDir>/pokemon-gen8/regular/abra.png
	SpriteDir string
	// Generation directories tried in order when looking up a sprite
	Generations []string
	Lang        string
	Debug       bool
}

var DefaultGenerations = []string{"pokemon-gen8", "pokemon-gen7x"}

func DefaultConfigDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "pokeget")
}

func DefaultConfigLocation() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// LoadConfig reads the config file at path, falling back to defaults for
// anything left empty. A missing or empty file is written out with defaults.
func LoadConfig(path string) (GlobalConfig, error) {
	configContents, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return populateConfig(GlobalConfig{}), err
	}

	if len(configContents) > 0 {
		newOpts := GlobalConfig{}
		if err := json.Unmarshal(configContents, &newOpts); err != nil {
			return populateConfig(GlobalConfig{}), err
		}

		return populateConfig(newOpts), nil
	}

	config := populateConfig(GlobalConfig{})
	configBytes, err := json.Marshal(config)
	if err != nil {
		return config, err
	}

	if err := os.WriteFile(path, configBytes, 0666); err != nil {
		return config, err
	}

	return config, nil
}

func populateConfig(config GlobalConfig) GlobalConfig {
	if config.SpriteDir == "" {
		config.SpriteDir = filepath.Join(DefaultConfigDir(), "sprites")
	}
	if len(config.Generations) == 0 {
		config.Generations = append([]string(nil), DefaultGenerations...)
	}
	if config.Lang == "" {
		config.Lang = "en"
	}

	return config
}
