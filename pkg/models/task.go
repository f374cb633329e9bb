package models

import (
	"time"

	"github.com/textloom/textloom/ent"
)

// CreateTaskRequest contains fields for creating a new video generation task
type CreateTaskRequest struct {
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Mode         string         `json:"mode,omitempty"`
	ScriptStyle  string         `json:"script_style,omitempty"`
	VariantCount int            `json:"variant_count"`
	MediaURLs    []string       `json:"media_urls"`
	MediaMeta    map[string]any `json:"media_meta,omitempty"`
}

// TaskFilters contains filtering options for listing tasks
type TaskFilters struct {
	Status         string     `json:"status,omitempty"`
	Mode           string     `json:"mode,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}

// TaskListResponse contains a paginated task list
type TaskListResponse struct {
	Tasks      []*ent.Task `json:"tasks"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

// TaskDetailResponse combines a task with its sub-task rows for the
// status endpoint.
type TaskDetailResponse struct {
	Task     *ent.Task           `json:"task"`
	SubTasks []*ent.SubVideoTask `json:"sub_tasks"`
}
