package config

// CollaboratorsConfig holds the endpoints of the external services the
// pipeline drives. Each is reached through its port interface; only the
// HTTP adapters read these values.
type CollaboratorsConfig struct {
	// MediaAnalyzerURL is the base URL of the media analysis service.
	MediaAnalyzerURL string `yaml:"media_analyzer_url"`

	// ScriptGeneratorURL is the base URL of the script generation service.
	ScriptGeneratorURL string `yaml:"script_generator_url"`

	// VideoMergeURL is the base URL of the external video-merge service.
	VideoMergeURL string `yaml:"video_merge_url"`

	// SubtitleRendererURL is the base URL of the subtitle rendering service.
	SubtitleRendererURL string `yaml:"subtitle_renderer_url"`

	// APIKeyEnv names the environment variable holding the shared API key
	// sent to the collaborator services. Empty means unauthenticated.
	APIKeyEnv string `yaml:"api_key_env"`
}

// DefaultCollaboratorsConfig returns the built-in collaborator defaults.
func DefaultCollaboratorsConfig() *CollaboratorsConfig {
	return &CollaboratorsConfig{
		MediaAnalyzerURL:    "http://localhost:8091",
		ScriptGeneratorURL:  "http://localhost:8092",
		VideoMergeURL:       "http://localhost:8093",
		SubtitleRendererURL: "http://localhost:8094",
		APIKeyEnv:           "TEXTLOOM_COLLABORATOR_API_KEY",
	}
}

// StorageConfig controls where finished artifacts are uploaded.
type StorageConfig struct {
	// Backend selects the uploader implementation. Only "local" ships with
	// the core; object-store backends plug in behind the same port.
	Backend string `yaml:"backend"`

	// LocalRoot is the directory the local backend copies artifacts into.
	LocalRoot string `yaml:"local_root"`

	// PublicBaseURL is the URL prefix under which uploaded artifacts are
	// served.
	PublicBaseURL string `yaml:"public_base_url"`
}

// DefaultStorageConfig returns the built-in storage defaults.
func DefaultStorageConfig() *StorageConfig {
	return &StorageConfig{
		Backend:       "local",
		LocalRoot:     "./public",
		PublicBaseURL: "http://localhost:8080/static",
	}
}
