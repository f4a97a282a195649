package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"clipforge/editor-api/config"
	"clipforge/editor-api/timeline"
	"clipforge/editor-api/utils"
)

// SetTransitionRequest sets or clears the transition following a clip.
// Type "none" removes it. Duration, when given, is clamped against the
// adjacent clips.
type SetTransitionRequest struct {
	Type     string   `json:"type" validate:"required"`
	Duration *float64 `json:"duration,omitempty" validate:"omitempty,gt=0"`
}

// ListTransitionTypes handles GET /api/v1/transitions. The catalog is
// grouped by category for pickers.
func ListTransitionTypes(c *fiber.Ctx) error {
	grouped := make(map[timeline.TransitionCategory][]timeline.TransitionInfo)
	for _, info := range timeline.TransitionTypes() {
		grouped[info.Category] = append(grouped[info.Category], info)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, grouped)
}

// SetClipTransition handles PUT /api/v1/projects/:projectId/clips/:clipIndex/transition.
func SetClipTransition(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	index, err := strconv.Atoi(c.Params("clipIndex"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "invalid clip index")
	}

	req := new(SetTransitionRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse transition JSON: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	doc := project.ProjectData
	if !timeline.CanHaveTransition(index, len(doc.Clips)) {
		return utils.RespondWithError(c, fiber.StatusUnprocessableEntity, "the last clip cannot carry a transition")
	}

	typ := timeline.TransitionType(req.Type)
	if typ != timeline.TransitionNone {
		if _, ok := timeline.TransitionInfoFor(typ); !ok {
			return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("unknown transition type %q", req.Type))
		}
	}

	doc.SetTransition(index, typ)
	if req.Duration != nil && typ != timeline.TransitionNone {
		doc.SetTransitionDuration(index, *req.Duration)
	}
	if err := saveDocument(project); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	config.Log.WithFields(logrus.Fields{
		"project_id": project.ID,
		"clip_index": index,
		"type":       typ,
	}).Info("Transition updated")

	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
		"clip_index":   index,
		"transition":   doc.Clips[index].TransitionOut,
		"max_duration": timeline.MaxTransitionDuration(doc.Clips[index], doc.Clips[index+1]),
	})
}

// DeleteClipTransition handles DELETE /api/v1/projects/:projectId/clips/:clipIndex/transition.
func DeleteClipTransition(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	index, err := strconv.Atoi(c.Params("clipIndex"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "invalid clip index")
	}

	doc := project.ProjectData
	if index < 0 || index >= len(doc.Clips) {
		return utils.RespondWithError(c, fiber.StatusNotFound, "clip not found")
	}

	doc.SetTransition(index, timeline.TransitionNone)
	if err := saveDocument(project); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"clip_index": index})
}
