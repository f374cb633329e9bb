package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// textloomYAMLConfig represents the complete textloom.yaml file structure.
// Every section is optional; unset sections fall back to built-in defaults.
type textloomYAMLConfig struct {
	Queue         *QueueConfig         `yaml:"queue"`
	Pipeline      *PipelineConfig      `yaml:"pipeline"`
	Poller        *PollerConfig        `yaml:"poller"`
	Retention     *RetentionConfig     `yaml:"retention"`
	Workspace     *WorkspaceConfig     `yaml:"workspace"`
	Collaborators *CollaboratorsConfig `yaml:"collaborators"`
	Storage       *StorageConfig       `yaml:"storage"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load textloom.yaml from configPath (a missing file means all defaults)
//  2. Expand environment variables
//  3. Merge user-defined values over built-in defaults
//  4. Validate all configuration
//  5. Return Config ready for use
func Initialize(ctx context.Context, configPath string) (*Config, error) {
	log := slog.With("config_path", configPath)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized successfully",
		"workers", cfg.Queue.WorkerCount,
		"max_concurrent_tasks", cfg.Queue.MaxConcurrentTasks,
		"variant_count_max", cfg.Pipeline.VariantCountMax,
		"subtitle_failure_mode", cfg.Poller.SubtitleFailureMode)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configPath string) (*Config, error) {
	cfg := Default()
	cfg.configPath = configPath

	yamlCfg, err := loadTextloomYAML(configPath)
	if err != nil {
		return nil, NewLoadError(configPath, err)
	}
	if yamlCfg == nil {
		// No config file: run on defaults.
		return cfg, nil
	}

	// Merge user-provided sections into defaults (non-zero values override).
	sections := []struct {
		name string
		dst  any
		src  any
	}{
		{"queue", cfg.Queue, yamlCfg.Queue},
		{"pipeline", cfg.Pipeline, yamlCfg.Pipeline},
		{"poller", cfg.Poller, yamlCfg.Poller},
		{"retention", cfg.Retention, yamlCfg.Retention},
		{"workspace", cfg.Workspace, yamlCfg.Workspace},
		{"collaborators", cfg.Collaborators, yamlCfg.Collaborators},
		{"storage", cfg.Storage, yamlCfg.Storage},
	}
	for _, s := range sections {
		if isNil(s.src) {
			continue
		}
		if err := mergo.Merge(s.dst, s.src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge %s config: %w", s.name, err)
		}
	}

	return cfg, nil
}

func isNil(v any) bool {
	switch t := v.(type) {
	case *QueueConfig:
		return t == nil
	case *PipelineConfig:
		return t == nil
	case *PollerConfig:
		return t == nil
	case *RetentionConfig:
		return t == nil
	case *WorkspaceConfig:
		return t == nil
	case *CollaboratorsConfig:
		return t == nil
	case *StorageConfig:
		return t == nil
	}
	return v == nil
}

// loadTextloomYAML reads and parses the config file. A missing file is not
// an error: (nil, nil) is returned and defaults apply.
func loadTextloomYAML(path string) (*textloomYAMLConfig, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("Config file not found, using built-in defaults", "path", path)
			return nil, nil
		}
		return nil, err
	}

	// Expand environment variables using {{.VAR}} template syntax
	data = ExpandEnv(data)

	var config textloomYAMLConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return &config, nil
}
