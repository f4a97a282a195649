package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"clipforge/editor-api/timeline"
	"clipforge/editor-api/utils"
)

const defaultScale = 50.0 // pixels per second

// TimelineLayoutResponse is everything a client needs to paint the
// timeline at one zoom level.
type TimelineLayoutResponse struct {
	Scale         float64                     `json:"scale"`
	TotalDuration float64                     `json:"total_duration"`
	TrackWidth    float64                     `json:"track_width"`
	Captions      []timeline.Block            `json:"captions"`
	Overlays      []timeline.Block            `json:"overlays"`
	Transitions   []timeline.TransitionMarker `json:"transitions"`
}

// GetTimelineLayout handles GET /api/v1/projects/:projectId/layout.
// Query params: scale (px/s), selected_caption, selected_overlay.
func GetTimelineLayout(c *fiber.Ctx) error {
	project, err := fetchProject(c.Params("projectId"))
	if err != nil {
		return respondProjectError(c, err)
	}

	scale := defaultScale
	if raw := c.Query("scale"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return utils.RespondWithError(c, fiber.StatusBadRequest, "scale must be a positive number")
		}
		scale = parsed
	}

	doc := project.ProjectData
	total := doc.TotalDuration()
	resp := TimelineLayoutResponse{
		Scale:         scale,
		TotalDuration: total,
		TrackWidth:    timeline.TimeToPixel(total, scale),
		Captions:      timeline.CaptionBlocks(doc.Captions, scale, c.Query("selected_caption")),
		Overlays:      timeline.OverlayBlocks(doc.Overlays, scale, c.Query("selected_overlay")),
		Transitions:   timeline.TransitionMarkers(doc.Clips, scale),
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, resp)
}
