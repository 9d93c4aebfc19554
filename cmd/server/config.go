package main

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// config holds the server configuration.
// Priority: ENV > YAML > defaults (via env-default tags). The YAML file
// path comes from CONFIG_PATH (fallback "./config.yaml"); when the file
// does not exist and CONFIG_PATH was not set explicitly, configuration
// is loaded from ENV + defaults only.
type config struct {
	Addr        string   `yaml:"addr" env:"REALISER_ADDR" env-default:":8080"`
	LexiconPath string   `yaml:"lexicon" env:"REALISER_LEXICON" env-default:"data/lexicon.xml"`
	CORSOrigins []string `yaml:"cors_origins" env:"REALISER_CORS_ORIGINS" env-default:"*"`
	LogPretty   bool     `yaml:"log_pretty" env:"REALISER_LOG_PRETTY" env-default:"false"`
}

// loadConfig reads configuration from a YAML file and environment.
func loadConfig() (*config, error) {
	var cfg config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if cfg.Addr == "" {
		return nil, fmt.Errorf("config: empty listen address")
	}
	return &cfg, nil
}
