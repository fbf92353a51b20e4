package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// SentimentLexicon holds custom keyword sets for the sentiment unit.
type SentimentLexicon struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// LoadSentimentLexicon loads keyword sets from a YAML file.
func LoadSentimentLexicon(path string) (*SentimentLexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lex SentimentLexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, err
	}

	return &lex, nil
}

// HostConfig holds the free-form key/value configuration a host seeds
// into a hub before dispatching.
type HostConfig struct {
	Values map[string]any `yaml:"values"`
}

// LoadHostConfig loads host configuration from a YAML file.
func LoadHostConfig(path string) (*HostConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg HostConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
