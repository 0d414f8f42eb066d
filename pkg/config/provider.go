package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SourceType identifies where a configuration value came from.
type SourceType string

const (
	SourceDefault SourceType = "default"
	SourceYAML    SourceType = "yaml"
	SourceFlag    SourceType = "flag"
	SourceEnv     SourceType = "env"
)

// Source provides configuration values to the loader.
type Source interface {
	Load() (map[string]any, error)
	Type() SourceType
}

// yamlProvider implements Source for YAML files. A missing file is not an
// error so the CLI works without a config file present.
type yamlProvider struct {
	path string
}

// NewYAMLProvider creates a YAML file source.
func NewYAMLProvider(path string) Source {
	return &yamlProvider{path: path}
}

func (y *yamlProvider) Load() (map[string]any, error) {
	if y.path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(y.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", y.path, err)
	}
	var config map[string]any
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", y.path, err)
	}
	return config, nil
}

func (y *yamlProvider) Type() SourceType {
	return SourceYAML
}

// flagProvider implements Source for CLI flag overrides. Keys use koanf
// dotted paths, e.g. "client.base_url".
type flagProvider struct {
	values map[string]any
}

// NewFlagProvider creates a source from explicitly changed CLI flags.
func NewFlagProvider(values map[string]any) Source {
	return &flagProvider{values: values}
}

func (f *flagProvider) Load() (map[string]any, error) {
	return f.values, nil
}

func (f *flagProvider) Type() SourceType {
	return SourceFlag
}
