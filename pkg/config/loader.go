package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces every environment override, e.g.
// TASKDECK_CLIENT_BASE_URL -> client.base_url.
const envPrefix = "TASKDECK_"

// Service loads and validates configuration from defaults, then the given
// sources (YAML file, CLI flags), then environment variables, each layer
// overriding the one before it.
type Service struct {
	koanf     *koanf.Koanf
	validator *validator.Validate
}

// NewService creates a configuration service with validation support.
func NewService() *Service {
	return &Service{
		koanf:     koanf.New("."),
		validator: validator.New(),
	}
}

// Load merges all sources and returns a validated configuration.
func (s *Service) Load(_ context.Context, sources ...Source) (*Config, error) {
	s.koanf = koanf.New(".")
	if err := s.loadDefaults(); err != nil {
		return nil, err
	}
	for _, source := range sources {
		if source == nil {
			continue
		}
		if err := s.loadSource(source); err != nil {
			return nil, err
		}
	}
	if err := s.loadEnvironment(); err != nil {
		return nil, err
	}
	return s.unmarshalAndValidate()
}

func (s *Service) loadDefaults() error {
	if err := s.koanf.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return fmt.Errorf("failed to load defaults: %w", err)
	}
	return nil
}

// transformEnvKey converts environment variable names to koanf paths.
// For example: CLIENT_BASE_URL -> client.base_url. The CORS block is the
// one doubly-nested section: SERVER_CORS_* addresses server.cors.*,
// except SERVER_CORS_ENABLED which stays the flat server.cors_enabled.
func transformEnvKey(s string) string {
	s = strings.ToLower(s)
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_'
	})
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0]
	}
	if len(parts) >= 3 && parts[0] == "server" && parts[1] == "cors" && parts[2] != "enabled" {
		return "server.cors." + strings.Join(parts[2:], "_")
	}
	return parts[0] + "." + strings.Join(parts[1:], "_")
}

func (s *Service) loadEnvironment() error {
	if err := s.koanf.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, envPrefix)
			return transformEnvKey(key), value
		},
	}), nil); err != nil {
		return fmt.Errorf("failed to load environment variables: %w", err)
	}
	return nil
}

func (s *Service) loadSource(source Source) error {
	data, err := source.Load()
	if err != nil {
		return fmt.Errorf("failed to load from source %s: %w", source.Type(), err)
	}
	if len(data) == 0 {
		return nil
	}
	flattened := flattenMap("", data)
	for key, value := range flattened {
		if err := s.koanf.Set(key, value); err != nil {
			return fmt.Errorf("failed to set key %s from source %s: %w", key, source.Type(), err)
		}
	}
	return nil
}

// flattenMap converts a nested map into dotted koanf keys, preserving leaf
// values so partial YAML files only override the keys they contain.
func flattenMap(prefix string, data map[string]any) map[string]any {
	out := make(map[string]any)
	for key, value := range data {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenMap(path, nested) {
				out[k] = v
			}
			continue
		}
		out[path] = value
	}
	return out
}

func (s *Service) unmarshalAndValidate() (*Config, error) {
	config := &Config{}
	err := s.koanf.UnmarshalWithConf("", config, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           config,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := s.validator.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}
