package config

import "time"

// PipelineConfig controls the per-task stage runners.
type PipelineConfig struct {
	// VariantCountMax caps the number of sub-task variants per task.
	VariantCountMax int `yaml:"variant_count_max"`

	// AnalysisParallelism bounds concurrent media analyses within one task.
	AnalysisParallelism int `yaml:"analysis_parallelism"`

	// ScriptParallelism bounds concurrent script generations within one task.
	ScriptParallelism int `yaml:"script_parallelism"`

	// SubmitParallelism bounds concurrent merge submissions within one task.
	SubmitParallelism int `yaml:"submit_parallelism"`

	// CollaboratorTimeout is the per-call timeout for every collaborator
	// port invocation (fetch, analyze, generate, submit).
	CollaboratorTimeout time.Duration `yaml:"collaborator_timeout"`

	// ScriptStyles is the rotation list for variants beyond the first.
	// Variant 1 always uses the task's default style.
	ScriptStyles []string `yaml:"script_styles"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		VariantCountMax:     5,
		AnalysisParallelism: 4,
		ScriptParallelism:   3,
		SubmitParallelism:   3,
		CollaboratorTimeout: 2 * time.Minute,
		ScriptStyles:        []string{"energetic", "narrative", "informative", "humorous"},
	}
}
