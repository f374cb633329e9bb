package models

// Scene is one segment of a generated script.
type Scene struct {
	Text         string   `json:"text"`
	DurationS    int      `json:"duration_s"`
	MediaItemIDs []string `json:"media_item_ids"`
}

// GeneratedScript is the script generator's output for one sub-task variant.
type GeneratedScript struct {
	Style              string   `json:"style"`
	Titles             []string `json:"titles"`
	WordCount          int      `json:"word_count"`
	EstimatedDurationS int      `json:"estimated_duration_s"`
	Scenes             []Scene  `json:"scenes"`
}

// SceneMaps converts scenes to the JSON column shape persisted on
// ScriptContent rows.
func (s *GeneratedScript) SceneMaps() []map[string]any {
	out := make([]map[string]any, 0, len(s.Scenes))
	for _, sc := range s.Scenes {
		out = append(out, map[string]any{
			"text":           sc.Text,
			"duration_s":     sc.DurationS,
			"media_item_ids": sc.MediaItemIDs,
		})
	}
	return out
}

// MergeJobState is the lifecycle state reported by the external video
// merge service.
type MergeJobState string

// Merge job states.
const (
	MergeQueued     MergeJobState = "queued"
	MergeProcessing MergeJobState = "processing"
	MergeCompleted  MergeJobState = "completed"
	MergeFailed     MergeJobState = "failed"
)

// MergePollResult is one observation of an external merge job.
type MergePollResult struct {
	State        MergeJobState
	VideoURL     string
	ThumbnailURL string
	DurationMS   int
	ErrorMessage string
}
