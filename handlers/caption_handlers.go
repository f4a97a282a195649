package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"clipforge/editor-api/config"
	"clipforge/editor-api/timeline"
	"clipforge/editor-api/utils"
)

// AddCaptionRequest creates a caption segment. When StartTime and
// EndTime are both given they are used as-is (clamped); otherwise the
// segment is placed at CurrentTime with the default span.
type AddCaptionRequest struct {
	Text        string   `json:"text"`
	StartTime   *float64 `json:"start_time,omitempty" validate:"omitempty,gte=0"`
	EndTime     *float64 `json:"end_time,omitempty" validate:"omitempty,gte=0"`
	CurrentTime float64  `json:"current_time" validate:"gte=0"`
}

// GenerateCaptionsRequest asks the transcription service for captions.
// MediaURL defaults to the first clip's source when omitted.
type GenerateCaptionsRequest struct {
	MediaURL string `json:"media_url,omitempty" validate:"omitempty,url"`
}

// ListCaptions handles GET /api/v1/projects/:projectId/captions,
// sorted by start time.
func ListCaptions(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, project.ProjectData.SortedCaptions())
}

// AddCaption handles POST /api/v1/projects/:projectId/captions.
func AddCaption(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	req := new(AddCaptionRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse caption JSON: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	text := req.Text
	if text == "" {
		text = "New caption"
	}

	doc := project.ProjectData
	var start, end float64
	if req.StartTime != nil && req.EndTime != nil {
		start, end = *req.StartTime, *req.EndTime
	} else {
		start = req.CurrentTime
		end = start + timeline.DefaultSpan(req.CurrentTime, doc.TotalDuration())
	}

	segment := doc.AddCaption(timeline.NewCaptionSegment(start, end, text))
	if err := saveDocument(project); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	config.Log.WithFields(logrus.Fields{
		"project_id": project.ID,
		"caption_id": segment.ID,
	}).Info("Caption added")

	return utils.RespondWithJSON(c, fiber.StatusCreated, segment)
}

// UpdateCaption handles PATCH /api/v1/projects/:projectId/captions/:captionId.
// Times are clamped, never rejected.
func UpdateCaption(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	patch := new(timeline.CaptionPatch)
	if err := c.BodyParser(patch); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse caption JSON: %v", err))
	}

	captionID := c.Params("captionId")
	if !project.ProjectData.UpdateCaption(captionID, *patch) {
		return utils.RespondWithError(c, fiber.StatusNotFound, "caption not found")
	}
	if err := saveDocument(project); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	segment, _ := project.ProjectData.CaptionByID(captionID)
	return utils.RespondWithJSON(c, fiber.StatusOK, segment)
}

// DeleteCaption handles DELETE /api/v1/projects/:projectId/captions/:captionId.
func DeleteCaption(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	captionID := c.Params("captionId")
	if !project.ProjectData.DeleteCaption(captionID) {
		return utils.RespondWithError(c, fiber.StatusNotFound, "caption not found")
	}
	if err := saveDocument(project); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"id": captionID})
}

// DuplicateCaption handles POST /api/v1/projects/:projectId/captions/:captionId/duplicate.
// The copy lands immediately after the original.
func DuplicateCaption(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	copySegment, ok := project.ProjectData.DuplicateCaption(c.Params("captionId"))
	if !ok {
		return utils.RespondWithError(c, fiber.StatusNotFound, "caption not found")
	}
	if err := saveDocument(project); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}
	return utils.RespondWithJSON(c, fiber.StatusCreated, copySegment)
}

// GenerateCaptions handles POST /api/v1/projects/:projectId/captions/generate.
// The transcript segments replace the current caption track.
func GenerateCaptions(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}
	if transcriberClient == nil {
		return utils.RespondWithError(c, fiber.StatusServiceUnavailable, "transcription service is not configured")
	}

	req := new(GenerateCaptionsRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request JSON: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	doc := project.ProjectData
	mediaURL := req.MediaURL
	if mediaURL == "" {
		if len(doc.Clips) == 0 {
			return utils.RespondWithError(c, fiber.StatusBadRequest, "project has no clips to transcribe")
		}
		mediaURL = doc.Clips[0].SourceURL
	}

	transcription, err := transcriberClient.Transcribe(c.Context(), mediaURL)
	if err != nil {
		config.Log.WithError(err).WithField("project_id", project.ID).Error("Transcription failed")
		return utils.RespondWithError(c, fiber.StatusBadGateway, fmt.Sprintf("Transcription failed: %v", err))
	}

	doc.Captions = doc.Captions[:0]
	for _, seg := range transcription.Segments {
		doc.AddCaption(timeline.NewCaptionSegment(seg.StartTime, seg.EndTime, seg.Text))
	}
	if err := saveDocument(project); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	config.Log.WithFields(logrus.Fields{
		"project_id": project.ID,
		"segments":   len(doc.Captions),
	}).Info("Captions generated")

	return utils.RespondWithJSON(c, fiber.StatusOK, doc.SortedCaptions())
}
