package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ETL struct {
		Sport     string `yaml:"sport"`
		Season    string `yaml:"season"`
		LeagueKey string `yaml:"league_key"`
		OutputDir string `yaml:"output_dir"`
	} `yaml:"etl"`
	OAuth struct {
		CredentialsFile string `yaml:"credentials_file"`
	} `yaml:"oauth"`
	Export struct {
		Formats []string `yaml:"formats"`
	} `yaml:"export"`
	Database struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"database"`
	NATS struct {
		Enabled bool   `yaml:"enabled"`
		URL     string `yaml:"url"`
		Subject string `yaml:"subject"`
	} `yaml:"nats"`
}

// loadConfig parses the YAML config file. A missing file is fine (defaults
// apply); a malformed one is a configuration error.
func loadConfig(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.ETL.Sport == "" {
		c.ETL.Sport = "nfl"
	}
	if c.ETL.OutputDir == "" {
		c.ETL.OutputDir = "data"
	}
	if c.OAuth.CredentialsFile == "" {
		c.OAuth.CredentialsFile = "oauth2.json"
	}
	if len(c.Export.Formats) == 0 {
		c.Export.Formats = []string{"json", "csv"}
	}
	if c.NATS.URL == "" {
		c.NATS.URL = "nats://127.0.0.1:4222"
	}
	if c.NATS.Subject == "" {
		c.NATS.Subject = "fantasy.etl.standings"
	}
}
