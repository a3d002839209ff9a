package handler

import (
	"medread/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything mounted under the API prefix.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Images   *ImageHandler
	Drive    *DriveHandler
	Sessions *SessionHandler
}

// RegisterRoutes mounts the API on router. Health, readiness, login and logout skip protected.
func RegisterRoutes(router fiber.Router, h Handlers, protected fiber.Handler, vm *middleware.ValidationMiddleware) {
	router.Get("/", h.Health.Health)
	router.Get("/ready", h.Health.Ready)

	auth := router.Group("/auth")
	auth.Post("/session", h.Auth.Login)
	auth.Post("/logout", h.Auth.Logout)
	auth.Get("/me", protected, h.Auth.Me)

	images := router.Group("/images", protected)
	images.Get("/", vm.ValidateCategoryQuery(), h.Images.ListImages)
	images.Post("/upload", h.Images.UploadImage)
	images.Get("/random", vm.ValidateCountQuery(), h.Images.RandomImages)
	images.Get("/stats", h.Images.Stats)
	images.Delete("/:id", h.Images.DeleteImage)

	router.Get("/categories", protected, h.Images.Categories)

	drive := router.Group("/drive", protected)
	drive.Post("/folders", h.Drive.CreateFolder)
	drive.Get("/folders", h.Drive.ListFolders)
	drive.Delete("/folders/:id", h.Drive.DeleteFolder)
	drive.Post("/sync/:id", h.Drive.SyncFolder)

	sessions := router.Group("/sessions", protected)
	sessions.Post("/start", h.Sessions.StartSession)
	sessions.Get("/", h.Sessions.ListSessions)
	sessions.Get("/:id", h.Sessions.GetSession)
	sessions.Get("/:id/csv", h.Sessions.ExportCSV)
	sessions.Post("/:id/response", h.Sessions.SubmitResponse)
	sessions.Post("/:id/pause", h.Sessions.PauseSession)
	sessions.Post("/:id/resume", h.Sessions.ResumeSession)
	sessions.Post("/:id/complete", h.Sessions.CompleteSession)
	sessions.Post("/:id/quit", h.Sessions.QuitSession)
}
