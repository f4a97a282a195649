package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"clipforge/editor-api/config"
	"clipforge/editor-api/timeline"
	"clipforge/editor-api/utils"
)

// AddOverlayRequest creates a text overlay. With no explicit times the
// overlay is placed at CurrentTime with the default span, snapped to
// the overlay grid.
type AddOverlayRequest struct {
	Text        string   `json:"text"`
	StartTime   *float64 `json:"start_time,omitempty" validate:"omitempty,gte=0"`
	Duration    *float64 `json:"duration,omitempty" validate:"omitempty,gt=0"`
	CurrentTime float64  `json:"current_time" validate:"gte=0"`
}

// ListOverlays handles GET /api/v1/projects/:projectId/overlays.
func ListOverlays(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, project.ProjectData.Overlays)
}

// AddOverlay handles POST /api/v1/projects/:projectId/overlays.
func AddOverlay(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	req := new(AddOverlayRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse overlay JSON: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	doc := project.ProjectData
	var start, duration float64
	if req.StartTime != nil && req.Duration != nil {
		start, duration = *req.StartTime, *req.Duration
	} else {
		start = req.CurrentTime
		duration = timeline.DefaultSpan(req.CurrentTime, doc.TotalDuration())
	}

	overlay := timeline.NewTextOverlay(start, duration)
	if req.Text != "" {
		overlay.Text = req.Text
	}
	overlay = doc.AddOverlay(overlay)
	if err := saveDocument(project); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	config.Log.WithFields(logrus.Fields{
		"project_id": project.ID,
		"overlay_id": overlay.ID,
	}).Info("Overlay added")

	return utils.RespondWithJSON(c, fiber.StatusCreated, overlay)
}

// UpdateOverlay handles PATCH /api/v1/projects/:projectId/overlays/:overlayId.
// Times are snapped to the overlay grid and clamped, never rejected.
func UpdateOverlay(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	patch := new(timeline.OverlayPatch)
	if err := c.BodyParser(patch); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse overlay JSON: %v", err))
	}

	overlayID := c.Params("overlayId")
	if !project.ProjectData.UpdateOverlay(overlayID, *patch) {
		return utils.RespondWithError(c, fiber.StatusNotFound, "overlay not found")
	}
	if err := saveDocument(project); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	overlay, _ := project.ProjectData.OverlayByID(overlayID)
	return utils.RespondWithJSON(c, fiber.StatusOK, overlay)
}

// DeleteOverlay handles DELETE /api/v1/projects/:projectId/overlays/:overlayId.
func DeleteOverlay(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	overlayID := c.Params("overlayId")
	if !project.ProjectData.DeleteOverlay(overlayID) {
		return utils.RespondWithError(c, fiber.StatusNotFound, "overlay not found")
	}
	if err := saveDocument(project); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"id": overlayID})
}

// DuplicateOverlay handles POST /api/v1/projects/:projectId/overlays/:overlayId/duplicate.
func DuplicateOverlay(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	copyOverlay, ok := project.ProjectData.DuplicateOverlay(c.Params("overlayId"))
	if !ok {
		return utils.RespondWithError(c, fiber.StatusNotFound, "overlay not found")
	}
	if err := saveDocument(project); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}
	return utils.RespondWithJSON(c, fiber.StatusCreated, copyOverlay)
}
