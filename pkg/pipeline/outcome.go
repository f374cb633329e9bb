// Package pipeline drives a claimed task through the five processing
// stages: media fetch, analysis, variant fan-out, script generation, and
// merge submission. Merge completion is asynchronous and belongs to the
// poller package.
package pipeline

// StageOutcome is what a stage runner reports back to the executor.
type StageOutcome string

const (
	// StageAdvanced means the stage finished its work; move on.
	StageAdvanced StageOutcome = "advanced"

	// StageStalled means the stage could not make progress but the task is
	// not at fault (terminal race, lost lease). The executor abandons the
	// task without failing it.
	StageStalled StageOutcome = "stalled"

	// StageFailed means the stage cannot succeed even with retries.
	StageFailed StageOutcome = "failed"
)

// Parent progress milestones. Each stage boundary pins the task's progress
// to a fixed value; intra-stage updates interpolate between them.
const (
	progressFetched   = 25
	progressAnalyzed  = 50
	progressFannedOut = 55
	progressScripted  = 75
	progressDone      = 100
)

// Child progress milestones.
const (
	childProgressScripting  = 5
	childProgressScriptDone = 50
	childProgressSubmitted  = 60
	childProgressMerged     = 85
	childProgressDone       = 100
)
