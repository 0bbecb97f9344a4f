package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Turnos-api/internal/application/auth"
	"github.com/jhoicas/Turnos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC    *usecase.CompanyUseCase
	QueueUC      *usecase.QueueUseCase
	QueueEntryUC *usecase.QueueEntryUseCase
	StatsUC      *usecase.StatsUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Patch("/:id", companyHandler.Patch)
	companies.Delete("/:id", companyHandler.Delete)

	// Queues (protegido)
	queues := protected.Group("/queues")
	queueHandler := NewQueueHandler(deps.QueueUC)
	queues.Get("/", queueHandler.List)
	queues.Post("/", queueHandler.Create)
	queues.Get("/:id", queueHandler.GetByID)
	queues.Put("/:id", queueHandler.Update)
	queues.Patch("/:id", queueHandler.Patch)
	queues.Delete("/:id", queueHandler.Delete)

	// Queue entries (protegido)
	entries := protected.Group("/queue-entries")
	entryHandler := NewQueueEntryHandler(deps.QueueEntryUC)
	entries.Get("/", entryHandler.List)
	entries.Post("/", entryHandler.Create)
	entries.Get("/:id", entryHandler.GetByID)
	entries.Put("/:id", entryHandler.Update)
	entries.Patch("/:id", entryHandler.Patch)
	entries.Delete("/:id", entryHandler.Delete)

	// Stats (protegido)
	stats := protected.Group("/stats")
	statsHandler := NewStatsHandler(deps.StatsUC)
	stats.Get("/queues", statsHandler.QueueStats)
}
