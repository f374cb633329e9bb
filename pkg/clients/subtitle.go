package clients

import (
	"context"
	"fmt"

	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/ports"
)

// SubtitleClient implements ports.SubtitleRenderer against the subtitle
// rendering service.
type SubtitleClient struct {
	http *httpClient
}

// NewSubtitleClient creates a subtitle renderer client.
func NewSubtitleClient(cfg *config.CollaboratorsConfig) *SubtitleClient {
	return &SubtitleClient{http: newHTTPClient(cfg.SubtitleRendererURL, cfg)}
}

type subtitleRequest struct {
	VideoURL string         `json:"video_url"`
	Scenes   []models.Scene `json:"scenes"`
}

type subtitleResponse struct {
	VideoURL string `json:"video_url"`
}

// Render burns the script's scene text into the video and returns the URL
// of the subtitled rendition.
func (c *SubtitleClient) Render(ctx context.Context, videoURL string, script *models.GeneratedScript) (string, error) {
	const op = "render_subtitles"

	req := subtitleRequest{VideoURL: videoURL, Scenes: script.Scenes}
	var resp subtitleResponse
	if err := c.http.doJSON(ctx, op, "POST", "/v1/subtitles", req, nil, &resp); err != nil {
		return "", err
	}
	if resp.VideoURL == "" {
		return "", ports.NewError(ports.Permanent, op, fmt.Errorf("subtitle service returned empty video url"))
	}
	return resp.VideoURL, nil
}
