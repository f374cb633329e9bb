// Package config provides configuration loading and defaults for the
// TextLoom orchestrator.
package config

// Config is the umbrella configuration object returned by Initialize()
// and passed, frozen, to every component at startup.
type Config struct {
	configPath string // resolved config file path (for reference)

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Pipeline stage configuration
	Pipeline *PipelineConfig

	// Video-merge poller configuration
	Poller *PollerConfig

	// Data retention and cleanup configuration
	Retention *RetentionConfig

	// Workspace layout configuration
	Workspace *WorkspaceConfig

	// External collaborator endpoints
	Collaborators *CollaboratorsConfig

	// Artifact storage configuration
	Storage *StorageConfig
}

// ConfigPath returns the configuration file path, or "" when running on
// built-in defaults.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Default returns a Config populated with built-in defaults for every section.
func Default() *Config {
	return &Config{
		Queue:         DefaultQueueConfig(),
		Pipeline:      DefaultPipelineConfig(),
		Poller:        DefaultPollerConfig(),
		Retention:     DefaultRetentionConfig(),
		Workspace:     DefaultWorkspaceConfig(),
		Collaborators: DefaultCollaboratorsConfig(),
		Storage:       DefaultStorageConfig(),
	}
}
