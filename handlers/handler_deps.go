package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"clipforge/editor-api/config"
	"clipforge/editor-api/models"
	"clipforge/editor-api/timeline"
)

const projectsTable = "editor_projects"

// Transcriber is the operation handlers expect from the caption
// generation boundary. The concrete client lives in
// internal/transcriber; tests substitute their own.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaURL string) (*models.TranscriptionData, error)
}

var transcriberClient Transcriber

// SetTranscriber wires the caption-generation client at startup.
func SetTranscriber(t Transcriber) {
	transcriberClient = t
}

var validate = validator.New()

// Sentinel errors shared by the project fetch helper.
var (
	ErrInvalidProjectID = errors.New("invalid project ID format")
	ErrProjectNotFound  = errors.New("project not found")
)

// fetchProject loads one editor project, including its timeline
// document, by id.
func fetchProject(projectIDStr string) (*models.EditorProject, error) {
	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		return nil, ErrInvalidProjectID
	}

	var projects []models.EditorProject
	body, _, err := config.SupabaseClient.From(projectsTable).
		Select("*", "", false).
		Eq("id", projectID.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching project %s: %w", projectID, err)
	}
	if err := json.Unmarshal(body, &projects); err != nil {
		return nil, fmt.Errorf("decoding project %s: %w", projectID, err)
	}
	if len(projects) == 0 {
		return nil, ErrProjectNotFound
	}

	project := projects[0]
	if project.ProjectData == nil {
		project.ProjectData = timeline.NewDocument()
	}
	return &project, nil
}

// saveDocument writes the project's timeline document back, refreshing
// the denormalized columns alongside it.
func saveDocument(project *models.EditorProject) error {
	doc := project.ProjectData
	updateData := map[string]interface{}{
		"project_data":   doc,
		"total_duration": doc.TotalDuration(),
		"clip_count":     len(doc.Clips),
		"updated_at":     time.Now(),
	}

	_, _, err := config.SupabaseClient.From(projectsTable).
		Update(updateData, "", "").
		Eq("id", project.ID.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("saving project %s: %w", project.ID, err)
	}
	return nil
}
