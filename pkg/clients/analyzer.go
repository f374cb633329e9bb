package clients

import (
	"context"
	"fmt"

	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/ports"
)

// AnalyzerClient implements ports.MediaAnalyzer against the media analysis
// service.
type AnalyzerClient struct {
	http *httpClient
}

// NewAnalyzerClient creates a media analyzer client.
func NewAnalyzerClient(cfg *config.CollaboratorsConfig) *AnalyzerClient {
	return &AnalyzerClient{http: newHTTPClient(cfg.MediaAnalyzerURL, cfg)}
}

type analyzeRequest struct {
	URL       string         `json:"url"`
	MediaType string         `json:"media_type"`
	MimeType  string         `json:"mime_type"`
	Meta      map[string]any `json:"meta,omitempty"`
}

type analyzeResponse struct {
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	Theme        string   `json:"theme"`
	QualityScore float64  `json:"quality_score"`
}

// Analyze sends one fetched media item for content analysis.
func (c *AnalyzerClient) Analyze(ctx context.Context, item *models.FetchedMedia, meta map[string]any) (*models.AnalysisResult, error) {
	const op = "analyze"

	url := item.RemoteURL
	if url == "" {
		url = item.OriginalURL
	}

	req := analyzeRequest{
		URL:       url,
		MediaType: string(item.MediaType),
		MimeType:  item.MimeType,
		Meta:      meta,
	}
	var resp analyzeResponse
	if err := c.http.doJSON(ctx, op, "POST", "/v1/analyze", req, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Description == "" {
		return nil, ports.NewError(ports.Permanent, op, fmt.Errorf("analyzer returned empty description for %s", item.OriginalURL))
	}

	return &models.AnalysisResult{
		Description:  resp.Description,
		Tags:         resp.Tags,
		Theme:        resp.Theme,
		QualityScore: resp.QualityScore,
	}, nil
}
