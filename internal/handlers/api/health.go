package api

import (
	"github.com/gofiber/fiber/v3"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/db"
)

// HealthHandler reports service health and the dashboard overview.
type HealthHandler struct {
	db *db.DB
}

// NewHealthHandler creates a new API health handler.
func NewHealthHandler(database *db.DB) *HealthHandler {
	return &HealthHandler{db: database}
}

// Health checks that the storage backend answers.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	if err := h.db.Ping(c.Context()); err != nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "storage unavailable")
	}

	return jsonSuccess(c, fiber.Map{"healthy": true})
}

// Overview returns the admin dashboard counters.
func (h *HealthHandler) Overview(c fiber.Ctx) error {
	overview, err := h.db.Overview(c.Context())
	if err != nil {
		return jsonRepoError(c, err, "compute overview")
	}

	return jsonSuccess(c, overview)
}
