package models

import (
	"time"

	"github.com/google/uuid"
)

// MediaFile represents a row of the media_files library table. Clips
// reference media files; the editor never stores the blob itself.
type MediaFile struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	FileName     string    `json:"file_name"`
	SourceURL    string    `json:"source_url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	Duration     *float64  `json:"duration,omitempty"` // Nullable FLOAT
	MimeType     *string   `json:"mime_type,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
