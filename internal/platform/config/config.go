package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// file is the on-disk shape of the optional config file in the data dir.
type file struct {
	Timezone string `yaml:"timezone"`
	DB       string `yaml:"db"`
}

type Config struct {
	DataPath string
	DBPath   string
	Location *time.Location
}

// Load resolves the data dir, reading config.yaml from it when present.
// Missing file means defaults: tally.db inside the data dir, UTC display.
func Load(dataPath string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}

	cfg := Config{
		DataPath: dataPath,
		DBPath:   filepath.Join(dataPath, "tally.db"),
		Location: time.UTC,
	}

	raw, err := os.ReadFile(filepath.Join(dataPath, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if f.DB != "" {
		if filepath.IsAbs(f.DB) {
			cfg.DBPath = f.DB
		} else {
			cfg.DBPath = filepath.Join(dataPath, f.DB)
		}
	}
	if f.Timezone != "" {
		loc, err := time.LoadLocation(f.Timezone)
		if err != nil {
			return Config{}, fmt.Errorf("load timezone %q: %w", f.Timezone, err)
		}
		cfg.Location = loc
	}
	return cfg, nil
}
