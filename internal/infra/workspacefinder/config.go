package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/kata/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the workspace marker and configuration file.
const ConfigFile = "kata.yaml"

// LoadConfig loads kata.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Kata.Random.Seed != nil {
		seed := *y.Kata.Random.Seed
		cfg.Random.Seed = &seed
	}
	if y.Kata.Reports.Dir != "" {
		cfg.Reports.Dir = y.Kata.Reports.Dir
	}
	if y.Kata.Reports.Index != nil {
		cfg.Reports.Index = *y.Kata.Reports.Index
	}
	if y.Kata.Output.Format != "" {
		switch y.Kata.Output.Format {
		case "pretty", "json":
			cfg.Output.Format = y.Kata.Output.Format
		default:
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("%w: output.format %q (expected pretty|json)", domain.ErrInvalidConfig, y.Kata.Output.Format),
			}
		}
	}

	return cfg, nil
}

type yamlConfig struct {
	Kata struct {
		Random struct {
			Seed *uint64 `yaml:"seed"`
		} `yaml:"random"`

		Reports struct {
			Dir   string `yaml:"dir"`
			Index *bool  `yaml:"index"`
		} `yaml:"reports"`

		Output struct {
			Format string `yaml:"format"`
		} `yaml:"output"`
	} `yaml:"kata"`
}
