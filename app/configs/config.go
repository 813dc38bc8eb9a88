package configs

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Model    ModelConfig    `yaml:"model" validate:"required"`
	Research ResearchConfig `yaml:"research"`
	Archive  ArchiveConfig  `yaml:"archive,omitempty"`
}

type ModelConfig struct {
	Name            string `yaml:"name" validate:"required"`
	EmbeddingsModel string `yaml:"embeddings_model,omitempty"`
	// APIKey is normally left empty and read from OPENAI_API_KEY; a value
	// here (after env expansion) wins.
	APIKey string `yaml:"api_key,omitempty"`
}

type ResearchConfig struct {
	DeepDivePauseMS int             `yaml:"deep_dive_pause_ms,omitempty" validate:"gte=0"`
	Retrieval       RetrievalConfig `yaml:"retrieval"`
}

// DeepDivePause is the configured inter-call pause for deep-dive research.
func (rc ResearchConfig) DeepDivePause() time.Duration {
	return time.Duration(rc.DeepDivePauseMS) * time.Millisecond
}

type RetrievalConfig struct {
	Source     string   `yaml:"source,omitempty" validate:"oneof=static web vector"`
	URLs       []string `yaml:"urls,omitempty" validate:"dive,url"`
	Collection string   `yaml:"collection,omitempty"`
	TopK       int      `yaml:"top_k,omitempty" validate:"gte=0"`
}

type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Path    string `yaml:"path,omitempty"`
}

// LoadConfig reads a YAML config file, expanding ${ENV} references before
// parsing, and applies defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read configs file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.Model.Name == "" {
		c.Model.Name = "gpt-4o-mini"
	}
	if c.Research.DeepDivePauseMS == 0 {
		c.Research.DeepDivePauseMS = 500
	}
	if c.Research.Retrieval.Source == "" {
		c.Research.Retrieval.Source = "static"
	}
	if c.Research.Retrieval.TopK == 0 {
		c.Research.Retrieval.TopK = 4
	}
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configs: %w", err)
	}
	if c.Research.Retrieval.Source == "web" && len(c.Research.Retrieval.URLs) == 0 {
		return fmt.Errorf("retrieval source 'web' requires at least one url")
	}
	if c.Research.Retrieval.Source == "vector" && c.Model.EmbeddingsModel == "" {
		return fmt.Errorf("retrieval source 'vector' requires an embeddings model")
	}
	return nil
}
