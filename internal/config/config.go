package config

import (
	_ "embed"
	"fmt"

	"wuerfel/internal/errors"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// DieSpec describes one die of the catalog by the range of faces it carries.
type DieSpec struct {
	Name  string `yaml:"name"`  // Display and lookup name
	First int    `yaml:"first"` // Lowest face number
	Last  int    `yaml:"last"`  // Highest face number, inclusive
}

// Theme holds the colors used by the terminal UI.
type Theme struct {
	Name    string `yaml:"name"`    // Theme name
	Title   string `yaml:"title"`   // Panel title color
	Summary string `yaml:"summary"` // Color of the dice summary
	Key     string `yaml:"key"`     // Key hint color in the footer
	Border  string `yaml:"border"`  // Border color for the panel
}

// Config represents the application configuration structure.
// It is compiled into the binary; the program reads no config file.
type Config struct {
	Dice  []DieSpec `yaml:"dice"`
	Theme Theme     `yaml:"theme"`
}

// Load returns the configuration shipped with the binary.
func Load() (*Config, error) {
	return Parse(defaultsYAML)
}

// Parse decodes a YAML document on top of the default configuration.
func Parse(data []byte) (*Config, error) {
	cfg := defaultConfig()

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.NewConfigurationError("error parsing dice catalog", "", errors.InvalidCatalog, err)
	}

	if tempCfg.Dice != nil {
		cfg.Dice = tempCfg.Dice
	}
	if tempCfg.Theme.Name != "" {
		cfg.Theme.Name = tempCfg.Theme.Name
	}
	if tempCfg.Theme.Title != "" {
		cfg.Theme.Title = tempCfg.Theme.Title
	}
	if tempCfg.Theme.Summary != "" {
		cfg.Theme.Summary = tempCfg.Theme.Summary
	}
	if tempCfg.Theme.Key != "" {
		cfg.Theme.Key = tempCfg.Theme.Key
	}
	if tempCfg.Theme.Border != "" {
		cfg.Theme.Border = tempCfg.Theme.Border
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultConfig returns an empty catalog with the fallback theme.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Dice = []DieSpec{}
	cfg.Theme = Theme{
		Name:    "default",
		Title:   "#FFFFFF",
		Summary: "#FFD75F",
		Key:     "#5F87FF",
		Border:  "#626262",
	}
	return cfg
}

// Validate checks the structure of the catalog. Face numbers are checked
// against the face catalog when the dice are built.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigurationError("nil config", "", errors.InvalidCatalog, nil)
	}

	for i, d := range c.Dice {
		if d.Name == "" {
			return errors.NewConfigurationError("die name is required", fmt.Sprintf("dice[%d]", i), errors.InvalidCatalog, nil)
		}
		if d.First < 0 || d.Last < 0 {
			return errors.NewConfigurationError("face numbers must not be negative", d.Name, errors.InvalidFace, nil)
		}
		if d.First > d.Last {
			return errors.NewConfigurationError("first face is above last face", d.Name, errors.InvalidCatalog, nil)
		}
	}

	return nil
}

// Names returns the die names in catalog order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Dice))
	for _, d := range c.Dice {
		names = append(names, d.Name)
	}
	return names
}
