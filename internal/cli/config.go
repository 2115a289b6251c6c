package cli

import (
	"fmt"
	"os"

	"github.com/on-the-ground/recipes_go/encode"
)

// Config selects which chapters the all command runs and where the
// fixture files live. The zero value means "everything, default data".
type Config struct {
	DataDir  string   `yaml:"data_dir"`
	Chapters []string `yaml:"chapters"`
}

// loadConfig reads a YAML config file; an empty path is the zero config.
func loadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := encode.FromYAML[Config](data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
