package config

// WorkspaceConfig controls the per-task scratch directory layout.
type WorkspaceConfig struct {
	// Root is the directory under which each task gets <root>/<task_id>/
	// for raw downloads and intermediate artifacts.
	Root string `yaml:"root"`
}

// DefaultWorkspaceConfig returns the built-in workspace defaults.
func DefaultWorkspaceConfig() *WorkspaceConfig {
	return &WorkspaceConfig{
		Root: "./workspace",
	}
}
