package models

// MediaType classifies a fetched input asset.
type MediaType string

// Supported media types.
const (
	MediaMarkdown MediaType = "markdown"
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
)

// FetchedMedia describes one successfully downloaded input asset, as
// reported by the media fetcher.
type FetchedMedia struct {
	OriginalURL string
	LocalPath   string
	RemoteURL   string
	MediaType   MediaType
	FileSize    int64
	MimeType    string
	Resolution  string // WxH, empty for markdown
	DurationMS  int    // 0 for non-video
}

// AnalysisResult describes the outcome of analyzing one media item.
type AnalysisResult struct {
	MediaItemID  string
	Description  string
	Tags         []string
	Theme        string
	QualityScore float64
}
