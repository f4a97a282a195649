package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"clipforge/editor-api/config"
	"clipforge/editor-api/handlers"
	"clipforge/editor-api/internal/transcriber"
	"clipforge/editor-api/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.InitLogger(cfg.LogLevel)

	if err := config.InitSupabase(cfg); err != nil {
		config.Log.Fatalf("Failed to initialize Supabase: %v", err)
	}

	if cfg.TranscriberURL != "" {
		handlers.SetTranscriber(transcriber.New(cfg.TranscriberURL, cfg.TranscriberAPIKey, cfg.TranscriberTimeout))
	} else {
		config.Log.Warn("TRANSCRIBER_URL not set; caption generation is disabled")
	}

	app := fiber.New(fiber.Config{
		AppName: "clipforge-editor-api",
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Editor API is healthy",
		})
	})

	apiV1 := app.Group("/api/v1")

	// Transition catalog (not project scoped)
	apiV1.Get("/transitions", handlers.ListTransitionTypes)

	// Project routes
	apiV1.Post("/projects", handlers.CreateProject)
	apiV1.Get("/projects", handlers.ListProjects)
	apiV1.Get("/projects/:projectId", handlers.GetProject)
	apiV1.Patch("/projects/:projectId", handlers.UpdateProject)
	apiV1.Delete("/projects/:projectId", handlers.DeleteProject)

	// Timeline layout for rendering
	apiV1.Get("/projects/:projectId/layout", handlers.GetTimelineLayout)

	// Clip routes within a project
	projectClips := apiV1.Group("/projects/:projectId/clips")
	projectClips.Get("", handlers.ListClips)
	projectClips.Post("", handlers.AddClip)
	projectClips.Patch("/:clipIndex/trims", handlers.UpdateClipTrims)
	projectClips.Put("/:clipIndex/transition", handlers.SetClipTransition)
	projectClips.Delete("/:clipIndex/transition", handlers.DeleteClipTransition)
	projectClips.Delete("/:clipIndex", handlers.DeleteClip)

	// Caption routes within a project
	projectCaptions := apiV1.Group("/projects/:projectId/captions")
	projectCaptions.Get("", handlers.ListCaptions)
	projectCaptions.Post("", handlers.AddCaption)
	projectCaptions.Post("/generate", handlers.GenerateCaptions)
	projectCaptions.Patch("/:captionId", handlers.UpdateCaption)
	projectCaptions.Delete("/:captionId", handlers.DeleteCaption)
	projectCaptions.Post("/:captionId/duplicate", handlers.DuplicateCaption)

	// Overlay routes within a project
	projectOverlays := apiV1.Group("/projects/:projectId/overlays")
	projectOverlays.Get("", handlers.ListOverlays)
	projectOverlays.Post("", handlers.AddOverlay)
	projectOverlays.Patch("/:overlayId", handlers.UpdateOverlay)
	projectOverlays.Delete("/:overlayId", handlers.DeleteOverlay)
	projectOverlays.Post("/:overlayId/duplicate", handlers.DuplicateOverlay)

	config.Log.Infof("Starting editor API on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		config.Log.Fatalf("Server stopped: %v", err)
	}
}
