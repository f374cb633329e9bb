// Package ports declares the collaborator interfaces the pipeline depends
// on. Implementations live at the edges (HTTP clients, local adapters);
// the orchestrator only sees these contracts.
package ports

import (
	"context"

	"github.com/textloom/textloom/pkg/models"
)

// MediaFetcher downloads one source URL into the task workspace and
// reports what it got. Fetching the same URL twice must be safe.
type MediaFetcher interface {
	Fetch(ctx context.Context, url string, workspaceDir string, meta map[string]any) (*models.FetchedMedia, error)
}

// MediaAnalyzer produces a content analysis for one fetched media item.
type MediaAnalyzer interface {
	Analyze(ctx context.Context, item *models.FetchedMedia, meta map[string]any) (*models.AnalysisResult, error)
}

// ScriptGenerator produces a script for one sub-task variant from the
// task's analyses.
type ScriptGenerator interface {
	GenerateScript(ctx context.Context, req *ScriptRequest) (*models.GeneratedScript, error)
}

// ScriptRequest carries everything the generator needs for one variant.
type ScriptRequest struct {
	TaskID       string
	Title        string
	Description  string
	Mode         string
	Style        string
	VariantIndex int
	Analyses     []*models.AnalysisResult
}

// VideoMerger is the client for the external merge service: fire-and-poll.
// Submit returns the external job id and must be idempotent on
// idempotencyKey, so a retried submission never creates a second job.
// Poll reports the job's current state.
type VideoMerger interface {
	Submit(ctx context.Context, payload map[string]any, idempotencyKey string) (externalID string, err error)
	Poll(ctx context.Context, externalID string) (*models.MergePollResult, error)
}

// SubtitleRenderer burns subtitles into a finished video and returns the
// URL of the subtitled rendition.
type SubtitleRenderer interface {
	Render(ctx context.Context, videoURL string, script *models.GeneratedScript) (subtitledURL string, err error)
}

// Uploader moves a local artifact to durable storage and returns its
// public URL.
type Uploader interface {
	Upload(ctx context.Context, localPath string, key string) (url string, err error)
}
