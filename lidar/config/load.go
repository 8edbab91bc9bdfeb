package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadOptions configures the behavior of config loading
type LoadOptions struct {
	ValidateImmediately bool
	ResolvePaths        bool
	MergeFiles          bool
}

// LoadFromFile loads a ScanConfig from a YAML file
func LoadFromFile(path string, opts LoadOptions) (*ScanConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := &ScanConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if opts.ResolvePaths {
		config.ResolvePaths(NewPathResolver(filepath.Dir(path)))
	}

	if opts.MergeFiles {
		if err := config.LoadAndMerge(); err != nil {
			return nil, fmt.Errorf("merging external files: %w", err)
		}
	}

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("validation errors:\n%s", FormatValidationErrors(errs))
		}
	}

	return config, nil
}

// SaveToFile stamps the config with run metadata and writes it as YAML
func SaveToFile(config *ScanConfig, path string) error {
	config.Metadata = CollectMetadata(time.Now())

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolvePaths resolves all relative paths in the config against the resolver's base directory
func (c *ScanConfig) ResolvePaths(resolver *PathResolver) {
	c.Scene.Planes.FromFile = resolver.ResolvePath(c.Scene.Planes.FromFile)
	c.Output.Dir = resolver.ResolvePath(c.Output.Dir)
}
