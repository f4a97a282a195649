package models

import (
	"time"

	"github.com/google/uuid"

	"clipforge/editor-api/timeline"
)

// Project statuses stored in the editor_projects table.
const (
	ProjectStatusDraft    = "draft"
	ProjectStatusExported = "exported"
	ProjectStatusArchived = "archived"
)

// EditorProject represents a row of the editor_projects table. The
// whole timeline document lives in the project_data JSONB column;
// total_duration and clip_count are denormalized for library listings.
type EditorProject struct {
	ID              uuid.UUID          `json:"id,omitempty"`
	UserID          uuid.UUID          `json:"user_id"`
	CompanyID       *uuid.UUID         `json:"company_id,omitempty"` // Nullable foreign key
	Name            string             `json:"name"`
	Description     *string            `json:"description,omitempty"`
	ThumbnailURL    *string            `json:"thumbnail_url,omitempty"`
	ProjectData     *timeline.Document `json:"project_data"`
	Status          string             `json:"status"`
	TotalDuration   float64            `json:"total_duration"`
	ClipCount       int                `json:"clip_count"`
	ExportedMediaID *uuid.UUID         `json:"exported_media_id,omitempty"`
	CreatedAt       time.Time          `json:"created_at,omitempty"`
	UpdatedAt       time.Time          `json:"updated_at,omitempty"`
	LastOpenedAt    *time.Time         `json:"last_opened_at,omitempty"`
}
