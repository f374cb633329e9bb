package clients

import (
	"context"
	"fmt"
	"net/url"

	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/ports"
)

// MergeClient implements ports.VideoMerger against the external video
// merge service. Submissions carry an Idempotency-Key header so a retried
// submit lands on the same external job.
type MergeClient struct {
	http *httpClient
}

// NewMergeClient creates a video merge client.
func NewMergeClient(cfg *config.CollaboratorsConfig) *MergeClient {
	return &MergeClient{http: newHTTPClient(cfg.VideoMergeURL, cfg)}
}

type mergeSubmitResponse struct {
	JobID string `json:"job_id"`
}

type mergePollResponse struct {
	Status       string `json:"status"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	DurationMS   int    `json:"duration_ms"`
	Error        string `json:"error"`
}

// Submit enqueues a merge job and returns the external job id.
func (c *MergeClient) Submit(ctx context.Context, payload map[string]any, idempotencyKey string) (string, error) {
	const op = "submit_merge"

	headers := map[string]string{"Idempotency-Key": idempotencyKey}
	var resp mergeSubmitResponse
	if err := c.http.doJSON(ctx, op, "POST", "/v1/merge", payload, headers, &resp); err != nil {
		return "", err
	}
	if resp.JobID == "" {
		return "", ports.NewError(ports.Permanent, op, fmt.Errorf("merge service returned empty job id"))
	}
	return resp.JobID, nil
}

// Poll reports the current state of an external merge job.
func (c *MergeClient) Poll(ctx context.Context, externalID string) (*models.MergePollResult, error) {
	const op = "poll_merge"

	var resp mergePollResponse
	path := "/v1/merge/" + url.PathEscape(externalID)
	if err := c.http.doJSON(ctx, op, "GET", path, nil, nil, &resp); err != nil {
		return nil, err
	}

	state := models.MergeJobState(resp.Status)
	switch state {
	case models.MergeQueued, models.MergeProcessing, models.MergeCompleted, models.MergeFailed:
	default:
		return nil, ports.NewError(ports.Permanent, op, fmt.Errorf("unknown merge job status %q", resp.Status))
	}

	return &models.MergePollResult{
		State:        state,
		VideoURL:     resp.VideoURL,
		ThumbnailURL: resp.ThumbnailURL,
		DurationMS:   resp.DurationMS,
		ErrorMessage: resp.Error,
	}, nil
}
