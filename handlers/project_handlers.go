package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/supabase-community/postgrest-go"

	"clipforge/editor-api/config"
	"clipforge/editor-api/models"
	"clipforge/editor-api/timeline"
	"clipforge/editor-api/utils"
)

// CreateProjectRequest defines the expected request body for creating a project.
// Name is required. Description and ThumbnailURL are optional.
type CreateProjectRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	UserID       string  `json:"user_id" validate:"required,uuid4"`
	Description  *string `json:"description,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
}

// UpdateProjectRequest carries the mutable project metadata. Nil fields
// are left untouched.
type UpdateProjectRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Description  *string `json:"description,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=draft exported archived"`
}

// CreateProject handles POST /api/v1/projects. A new project starts
// with an empty timeline document in draft status.
func CreateProject(c *fiber.Ctx) error {
	req := new(CreateProjectRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse project JSON: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	doc := timeline.NewDocument()
	insertData := map[string]interface{}{
		"user_id":        req.UserID,
		"name":           req.Name,
		"status":         models.ProjectStatusDraft,
		"project_data":   doc,
		"total_duration": 0,
		"clip_count":     0,
		"created_at":     time.Now(),
		"updated_at":     time.Now(),
	}
	if req.Description != nil {
		insertData["description"] = *req.Description
	}
	if req.ThumbnailURL != nil {
		insertData["thumbnail_url"] = *req.ThumbnailURL
	}

	var results []models.EditorProject
	body, _, err := config.SupabaseClient.From(projectsTable).
		Insert(insertData, false, "", "representation", "").
		Execute()
	if err != nil {
		config.Log.WithError(err).Error("Failed to insert project")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not create project: %v", err))
	}
	if err := json.Unmarshal(body, &results); err != nil || len(results) == 0 {
		config.Log.WithError(err).Error("Failed to decode created project")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not process project creation response")
	}

	config.Log.WithFields(logrus.Fields{
		"project_id": results[0].ID,
		"name":       results[0].Name,
	}).Info("Project created")

	return utils.RespondWithJSON(c, fiber.StatusCreated, results[0])
}

// ListProjects handles GET /api/v1/projects, most recently updated first.
func ListProjects(c *fiber.Ctx) error {
	query := config.SupabaseClient.From(projectsTable).
		Select("id, user_id, name, description, thumbnail_url, status, total_duration, clip_count, created_at, updated_at, last_opened_at", "", false).
		Order("updated_at", &postgrest.OrderOpts{Ascending: false})

	if userID := c.Query("user_id"); userID != "" {
		if _, err := uuid.Parse(userID); err != nil {
			return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid user_id format")
		}
		query = query.Eq("user_id", userID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Eq("status", status)
	}

	body, _, err := query.Execute()
	if err != nil {
		config.Log.WithError(err).Error("Failed to list projects")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not fetch projects: %v", err))
	}

	var projects []models.EditorProject
	if err := json.Unmarshal(body, &projects); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not process project list response")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, projects)
}

// GetProject handles GET /api/v1/projects/:projectId. Opening a project
// stamps last_opened_at so the library can sort by recency.
func GetProject(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	now := time.Now()
	_, _, err = config.SupabaseClient.From(projectsTable).
		Update(map[string]interface{}{"last_opened_at": now}, "", "").
		Eq("id", project.ID.String()).
		Execute()
	if err != nil {
		config.Log.WithError(err).WithField("project_id", project.ID).Warn("Failed to stamp last_opened_at")
	} else {
		project.LastOpenedAt = &now
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, project)
}

// UpdateProject handles PATCH /api/v1/projects/:projectId for metadata
// fields. Timeline edits go through the dedicated routes.
func UpdateProject(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	req := new(UpdateProjectRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse update JSON: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	updateData := map[string]interface{}{"updated_at": time.Now()}
	if req.Name != nil {
		updateData["name"] = *req.Name
	}
	if req.Description != nil {
		updateData["description"] = *req.Description
	}
	if req.ThumbnailURL != nil {
		updateData["thumbnail_url"] = *req.ThumbnailURL
	}
	if req.Status != nil {
		updateData["status"] = *req.Status
	}

	var results []models.EditorProject
	body, _, err := config.SupabaseClient.From(projectsTable).
		Update(updateData, "representation", "").
		Eq("id", project.ID.String()).
		Execute()
	if err != nil {
		config.Log.WithError(err).WithField("project_id", project.ID).Error("Failed to update project")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not update project: %v", err))
	}
	if err := json.Unmarshal(body, &results); err != nil || len(results) == 0 {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not process project update response")
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, results[0])
}

// DeleteProject handles DELETE /api/v1/projects/:projectId.
func DeleteProject(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	_, _, err = config.SupabaseClient.From(projectsTable).
		Delete("", "").
		Eq("id", project.ID.String()).
		Execute()
	if err != nil {
		config.Log.WithError(err).WithField("project_id", project.ID).Error("Failed to delete project")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not delete project: %v", err))
	}

	config.Log.WithField("project_id", project.ID).Info("Project deleted")
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"id": project.ID})
}

// respondProjectError maps the fetch helper's sentinel errors to HTTP
// statuses.
func respondProjectError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrInvalidProjectID):
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrProjectNotFound):
		return utils.RespondWithError(c, fiber.StatusNotFound, err.Error())
	default:
		config.Log.WithError(err).Error("Project lookup failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}
}
