package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/db"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/models"
)

// InterviewRequestHandler serves the client interview request form and its follow-up list.
type InterviewRequestHandler struct {
	db *db.DB
}

// NewInterviewRequestHandler creates a new API interview request handler.
func NewInterviewRequestHandler(database *db.DB) *InterviewRequestHandler {
	return &InterviewRequestHandler{db: database}
}

// List returns every request, newest first.
func (h *InterviewRequestHandler) List(c fiber.Ctx) error {
	requests, err := h.db.Interviews.List(c.Context())
	if err != nil {
		return jsonRepoError(c, err, "fetch interview requests")
	}

	return jsonSuccess(c, requests)
}

// Create records a new interview request.
func (h *InterviewRequestHandler) Create(c fiber.Ctx) error {
	var body models.InterviewRequestFields
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	req, err := h.db.Interviews.Create(c.Context(), body)
	if err != nil {
		return jsonRepoError(c, err, "create interview request")
	}

	return jsonCreated(c, req)
}

// UpdateStatus moves a request to the status in the body.
func (h *InterviewRequestHandler) UpdateStatus(c fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	id := c.Params("id")
	if err := h.db.Interviews.UpdateStatus(c.Context(), id, body.Status); err != nil {
		return jsonRepoError(c, err, "update interview request")
	}

	return jsonSuccess(c, fiber.Map{
		"message": "status updated",
		"id":      id,
		"status":  body.Status,
	})
}
