package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"clipforge/editor-api/config"
	"clipforge/editor-api/models"
	"clipforge/editor-api/timeline"
	"clipforge/editor-api/utils"
)

// AddClipRequest appends a clip sourced from the media library to the
// end of the timeline.
type AddClipRequest struct {
	MediaFileID string `json:"media_file_id" validate:"required,uuid4"`
}

// UpdateClipTrimsRequest adjusts how much of the source plays.
type UpdateClipTrimsRequest struct {
	TrimStart float64 `json:"trim_start" validate:"gte=0"`
	TrimEnd   float64 `json:"trim_end" validate:"gte=0"`
}

// ListClips handles GET /api/v1/projects/:projectId/clips.
func ListClips(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, project.ProjectData.Clips)
}

// AddClip handles POST /api/v1/projects/:projectId/clips.
func AddClip(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	req := new(AddClipRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse clip JSON: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	media, err := fetchMediaFile(req.MediaFileID)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusNotFound, err.Error())
	}

	clip := timeline.EditorClip{
		ID:          uuid.NewString(),
		MediaFileID: media.ID.String(),
		SourceURL:   media.SourceURL,
		FileName:    media.FileName,
	}
	if media.ThumbnailURL != nil {
		clip.ThumbnailURL = *media.ThumbnailURL
	}
	if media.Duration != nil {
		clip.SourceDuration = *media.Duration
	}

	clip = project.ProjectData.AppendClip(clip)
	if err := saveDocument(project); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	config.Log.WithFields(logrus.Fields{
		"project_id":    project.ID,
		"media_file_id": media.ID,
		"clip_id":       clip.ID,
	}).Info("Clip added")

	return utils.RespondWithJSON(c, fiber.StatusCreated, clip)
}

// UpdateClipTrims handles PATCH /api/v1/projects/:projectId/clips/:clipIndex/trims.
// Later clips shift, and neighbouring transitions re-clamp to the new
// effective durations.
func UpdateClipTrims(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	index, err := strconv.Atoi(c.Params("clipIndex"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "invalid clip index")
	}

	req := new(UpdateClipTrimsRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse trim JSON: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	doc := project.ProjectData
	if index < 0 || index >= len(doc.Clips) {
		return utils.RespondWithError(c, fiber.StatusNotFound, "clip not found")
	}
	if !doc.SetClipTrims(index, req.TrimStart, req.TrimEnd) {
		return utils.RespondWithError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("trims leave less than %.1fs of playable clip", timeline.MinClipDuration))
	}
	if err := saveDocument(project); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, doc.Clips[index])
}

// DeleteClip handles DELETE /api/v1/projects/:projectId/clips/:clipIndex.
// The preceding clip's transition is destroyed with its neighbour.
func DeleteClip(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	index, err := strconv.Atoi(c.Params("clipIndex"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "invalid clip index")
	}

	if !project.ProjectData.RemoveClip(index) {
		return utils.RespondWithError(c, fiber.StatusNotFound, "clip not found")
	}
	if err := saveDocument(project); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	config.Log.WithFields(logrus.Fields{
		"project_id": project.ID,
		"clip_index": index,
	}).Info("Clip removed")

	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"clip_index": index})
}

// fetchMediaFile loads one media library row by id.
func fetchMediaFile(idStr string) (*models.MediaFile, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid media file ID format")
	}

	var files []models.MediaFile
	body, _, err := config.SupabaseClient.From("media_files").
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching media file %s: %w", id, err)
	}
	if err := json.Unmarshal(body, &files); err != nil {
		return nil, fmt.Errorf("decoding media file %s: %w", id, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("media file not found")
	}
	return &files[0], nil
}
