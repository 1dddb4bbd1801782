package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Project struct {
		Root string `yaml:"root"`
	} `yaml:"project"`
	Log struct {
		Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	} `yaml:"log"`
	Maven struct {
		CompileTimeoutSeconds int `yaml:"compile_timeout_seconds" validate:"gte=0"`
		TestTimeoutSeconds    int `yaml:"test_timeout_seconds" validate:"gte=0"`
	} `yaml:"maven"`
}

// LoadConfig reads the optional YAML config file and applies environment
// overrides. A missing file is fine; every setting has a default and the
// tools take the project root per call anyway.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	var cfg Config

	// 2. Load YAML config when present
	if file, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, err
		}
	}

	// 3. Override with Environment Variables if present
	if root := os.Getenv("SPRINGLENS_PROJECT_ROOT"); root != "" {
		cfg.Project.Root = root
	}
	if level := os.Getenv("SPRINGLENS_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
