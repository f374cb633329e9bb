package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/ports"
)

func collaboratorConfig(serverURL string) *config.CollaboratorsConfig {
	return &config.CollaboratorsConfig{
		MediaAnalyzerURL:    serverURL,
		ScriptGeneratorURL:  serverURL,
		VideoMergeURL:       serverURL,
		SubtitleRendererURL: serverURL,
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		code int
		kind ports.FailureKind
	}{
		{http.StatusTooManyRequests, ports.Quota},
		{http.StatusUnprocessableEntity, ports.Unsupported},
		{http.StatusBadRequest, ports.Permanent},
		{http.StatusNotFound, ports.Permanent},
		{http.StatusInternalServerError, ports.Transient},
		{http.StatusServiceUnavailable, ports.Transient},
	}

	for _, tt := range tests {
		resp := &http.Response{
			StatusCode: tt.code,
			Body:       io.NopCloser(strings.NewReader("boom")),
		}
		err := classifyStatus("test_op", resp)
		require.Error(t, err)
		assert.Equal(t, tt.kind, ports.KindOf(err), "status %d", tt.code)
		assert.Contains(t, err.Error(), "boom")
	}
}

func TestAnalyzerClient(t *testing.T) {
	t.Setenv("TEST_COLLABORATOR_KEY", "secret-key")

	var gotAuth string
	var gotBody analyzeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/analyze", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(analyzeResponse{
			Description:  "A product hero shot",
			Tags:         []string{"product"},
			Theme:        "launch",
			QualityScore: 0.9,
		})
	}))
	defer server.Close()

	cfg := collaboratorConfig(server.URL)
	cfg.APIKeyEnv = "TEST_COLLABORATOR_KEY"
	client := NewAnalyzerClient(cfg)

	result, err := client.Analyze(context.Background(), &models.FetchedMedia{
		OriginalURL: "https://cdn.example.com/hero.png",
		RemoteURL:   "http://storage.local/t1/hero.png",
		MediaType:   models.MediaImage,
		MimeType:    "image/png",
	}, map[string]any{"campaign": "launch"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-key", gotAuth)
	// The durable remote URL is preferred over the origin URL.
	assert.Equal(t, "http://storage.local/t1/hero.png", gotBody.URL)
	assert.Equal(t, "image", gotBody.MediaType)
	assert.Equal(t, "A product hero shot", result.Description)
	assert.Equal(t, "launch", result.Theme)
	assert.Equal(t, 0.9, result.QualityScore)
}

func TestAnalyzerClient_EmptyDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(analyzeResponse{})
	}))
	defer server.Close()

	client := NewAnalyzerClient(collaboratorConfig(server.URL))
	_, err := client.Analyze(context.Background(), &models.FetchedMedia{OriginalURL: "https://x/y.png"}, nil)
	require.Error(t, err)
	assert.Equal(t, ports.Permanent, ports.KindOf(err))
}

func TestScriptClient(t *testing.T) {
	var gotBody scriptRequestBody
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/scripts", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		// Style deliberately omitted: the client backfills it.
		json.NewEncoder(w).Encode(models.GeneratedScript{
			Titles:             []string{"Take one"},
			WordCount:          80,
			EstimatedDurationS: 30,
			Scenes:             []models.Scene{{Text: "Hook", DurationS: 10}},
		})
	}))
	defer server.Close()

	client := NewScriptClient(collaboratorConfig(server.URL))
	script, err := client.GenerateScript(context.Background(), &ports.ScriptRequest{
		TaskID:       "task-1",
		Title:        "Launch video",
		Mode:         "video_generation",
		Style:        "energetic",
		VariantIndex: 2,
		Analyses: []*models.AnalysisResult{
			{MediaItemID: "m1", Description: "hero shot", QualityScore: 0.9},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "task-1", gotBody.TaskID)
	assert.Equal(t, 2, gotBody.VariantIndex)
	require.Len(t, gotBody.Analyses, 1)
	assert.Equal(t, "m1", gotBody.Analyses[0].MediaItemID)

	assert.Equal(t, "energetic", script.Style)
	require.Len(t, script.Scenes, 1)
}

func TestScriptClient_NoScenes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(models.GeneratedScript{Style: "energetic"})
	}))
	defer server.Close()

	client := NewScriptClient(collaboratorConfig(server.URL))
	_, err := client.GenerateScript(context.Background(), &ports.ScriptRequest{Style: "energetic"})
	require.Error(t, err)
	assert.Equal(t, ports.Permanent, ports.KindOf(err))
}

func TestMergeClient_Submit(t *testing.T) {
	var gotKey string
	var gotPayload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/merge", r.URL.Path)
		gotKey = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		json.NewEncoder(w).Encode(mergeSubmitResponse{JobID: "job-42"})
	}))
	defer server.Close()

	client := NewMergeClient(collaboratorConfig(server.URL))
	id, err := client.Submit(context.Background(), map[string]any{"sub_task_id": "st-1"}, "st-1")
	require.NoError(t, err)
	assert.Equal(t, "job-42", id)
	assert.Equal(t, "st-1", gotKey)
	assert.Equal(t, "st-1", gotPayload["sub_task_id"])

	t.Run("empty job id is permanent", func(t *testing.T) {
		empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(mergeSubmitResponse{})
		}))
		defer empty.Close()

		client := NewMergeClient(collaboratorConfig(empty.URL))
		_, err := client.Submit(context.Background(), nil, "st-1")
		require.Error(t, err)
		assert.Equal(t, ports.Permanent, ports.KindOf(err))
	})
}

func TestMergeClient_Poll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/merge/job-42":
			json.NewEncoder(w).Encode(mergePollResponse{
				Status:       "completed",
				VideoURL:     "https://videos.local/v1.mp4",
				ThumbnailURL: "https://videos.local/v1.jpg",
				DurationMS:   30000,
			})
		case "/v1/merge/job-odd":
			json.NewEncoder(w).Encode(mergePollResponse{Status: "exploded"})
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer server.Close()

	client := NewMergeClient(collaboratorConfig(server.URL))

	t.Run("completed job", func(t *testing.T) {
		result, err := client.Poll(context.Background(), "job-42")
		require.NoError(t, err)
		assert.Equal(t, models.MergeCompleted, result.State)
		assert.Equal(t, "https://videos.local/v1.mp4", result.VideoURL)
		assert.Equal(t, 30000, result.DurationMS)
	})

	t.Run("unknown state is permanent", func(t *testing.T) {
		_, err := client.Poll(context.Background(), "job-odd")
		require.Error(t, err)
		assert.Equal(t, ports.Permanent, ports.KindOf(err))
	})

	t.Run("service outage is transient", func(t *testing.T) {
		_, err := client.Poll(context.Background(), "job-down")
		require.Error(t, err)
		assert.Equal(t, ports.Transient, ports.KindOf(err))
	})
}

func TestSubtitleClient(t *testing.T) {
	var gotBody subtitleRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/subtitles", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(subtitleResponse{VideoURL: "https://videos.local/v1-subs.mp4"})
	}))
	defer server.Close()

	client := NewSubtitleClient(collaboratorConfig(server.URL))
	url, err := client.Render(context.Background(), "https://videos.local/v1.mp4", &models.GeneratedScript{
		Scenes: []models.Scene{{Text: "Hook", DurationS: 10}},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://videos.local/v1-subs.mp4", url)
	assert.Equal(t, "https://videos.local/v1.mp4", gotBody.VideoURL)
	require.Len(t, gotBody.Scenes, 1)
}
