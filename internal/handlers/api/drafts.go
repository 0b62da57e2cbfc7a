package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/db"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/models"
)

// DraftHandler serves saved project drafts.
type DraftHandler struct {
	db *db.DB
}

// NewDraftHandler creates a new API draft handler.
func NewDraftHandler(database *db.DB) *DraftHandler {
	return &DraftHandler{db: database}
}

// List returns all drafts.
func (h *DraftHandler) List(c fiber.Ctx) error {
	drafts, err := h.db.Drafts.List(c.Context())
	if err != nil {
		return jsonRepoError(c, err, "fetch drafts")
	}

	return jsonSuccess(c, drafts)
}

// Get returns a single draft by ID.
func (h *DraftHandler) Get(c fiber.Ctx) error {
	draft, err := h.db.Drafts.Get(c.Context(), c.Params("id"))
	if err != nil {
		return jsonRepoError(c, err, "fetch draft")
	}

	return jsonSuccess(c, draft)
}

// Create saves the form as a new draft.
func (h *DraftHandler) Create(c fiber.Ctx) error {
	var body models.ProjectFields
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	draft, err := h.db.Drafts.Save(c.Context(), body)
	if err != nil {
		return jsonRepoError(c, err, "save draft")
	}

	return jsonCreated(c, draft)
}

// Update replaces a draft's fields.
func (h *DraftHandler) Update(c fiber.Ctx) error {
	var body models.ProjectFields
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	draft, err := h.db.Drafts.Update(c.Context(), c.Params("id"), body)
	if err != nil {
		return jsonRepoError(c, err, "update draft")
	}

	return jsonSuccess(c, draft)
}

// Delete removes a draft. Unknown ids succeed.
func (h *DraftHandler) Delete(c fiber.Ctx) error {
	id := c.Params("id")
	if err := h.db.Drafts.Delete(c.Context(), id); err != nil {
		return jsonRepoError(c, err, "delete draft")
	}

	return jsonSuccess(c, fiber.Map{
		"message": "draft deleted",
		"id":      id,
	})
}
