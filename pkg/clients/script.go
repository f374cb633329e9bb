package clients

import (
	"context"
	"fmt"

	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/ports"
)

// ScriptClient implements ports.ScriptGenerator against the script
// generation service.
type ScriptClient struct {
	http *httpClient
}

// NewScriptClient creates a script generator client.
func NewScriptClient(cfg *config.CollaboratorsConfig) *ScriptClient {
	return &ScriptClient{http: newHTTPClient(cfg.ScriptGeneratorURL, cfg)}
}

type scriptRequestBody struct {
	TaskID       string           `json:"task_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description,omitempty"`
	Mode         string           `json:"mode"`
	Style        string           `json:"style"`
	VariantIndex int              `json:"variant_index"`
	Analyses     []scriptAnalysis `json:"analyses"`
}

type scriptAnalysis struct {
	MediaItemID  string   `json:"media_item_id"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags,omitempty"`
	Theme        string   `json:"theme,omitempty"`
	QualityScore float64  `json:"quality_score"`
}

// GenerateScript requests one script variant from the generator.
func (c *ScriptClient) GenerateScript(ctx context.Context, req *ports.ScriptRequest) (*models.GeneratedScript, error) {
	const op = "generate_script"

	body := scriptRequestBody{
		TaskID:       req.TaskID,
		Title:        req.Title,
		Description:  req.Description,
		Mode:         req.Mode,
		Style:        req.Style,
		VariantIndex: req.VariantIndex,
		Analyses:     make([]scriptAnalysis, 0, len(req.Analyses)),
	}
	for _, a := range req.Analyses {
		body.Analyses = append(body.Analyses, scriptAnalysis{
			MediaItemID:  a.MediaItemID,
			Description:  a.Description,
			Tags:         a.Tags,
			Theme:        a.Theme,
			QualityScore: a.QualityScore,
		})
	}

	var script models.GeneratedScript
	if err := c.http.doJSON(ctx, op, "POST", "/v1/scripts", body, nil, &script); err != nil {
		return nil, err
	}
	if len(script.Scenes) == 0 {
		return nil, ports.NewError(ports.Permanent, op, fmt.Errorf("generator returned a script with no scenes"))
	}
	if script.Style == "" {
		script.Style = req.Style
	}
	return &script, nil
}
