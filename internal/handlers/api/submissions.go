package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/db"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/models"
)

// SubmissionHandler serves the candidate dashboard and the admin review queue.
type SubmissionHandler struct {
	db *db.DB
}

// NewSubmissionHandler creates a new API submission handler.
func NewSubmissionHandler(database *db.DB) *SubmissionHandler {
	return &SubmissionHandler{db: database}
}

// List returns every submission, or only pending ones with ?status=pending.
func (h *SubmissionHandler) List(c fiber.Ctx) error {
	var (
		subs []models.CandidateSubmission
		err  error
	)
	if c.Query("status") == models.StatusPending {
		subs, err = h.db.Submissions.Pending(c.Context())
	} else {
		subs, err = h.db.Submissions.List(c.Context())
	}
	if err != nil {
		return jsonRepoError(c, err, "fetch submissions")
	}

	return jsonSuccess(c, subs)
}

// GetForCandidate returns the submission stored for a candidate key.
func (h *SubmissionHandler) GetForCandidate(c fiber.Ctx) error {
	sub, err := h.db.Submissions.GetForCandidate(c.Context(), c.Params("key"))
	if err != nil {
		return jsonRepoError(c, err, "fetch submission")
	}

	return jsonSuccess(c, sub)
}

// Upsert creates or replaces the submission for a candidate key.
func (h *SubmissionHandler) Upsert(c fiber.Ctx) error {
	var body models.SubmissionFields
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	sub, err := h.db.Submissions.UpsertForCandidate(c.Context(), c.Params("key"), body)
	if err != nil {
		return jsonRepoError(c, err, "save submission")
	}

	return jsonSuccess(c, sub)
}

// Approve approves a pending submission and publishes its project.
func (h *SubmissionHandler) Approve(c fiber.Ctx) error {
	sub, err := h.db.Submissions.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return jsonRepoError(c, err, "approve submission")
	}

	// The published project may since have been deleted by an admin.
	project, err := h.db.Projects.FindBySourceSubmission(c.Context(), sub.ID)
	if err != nil && !errors.Is(err, db.ErrProjectNotFound) {
		return jsonRepoError(c, err, "fetch published project")
	}

	return jsonSuccess(c, fiber.Map{
		"message":    "submission approved",
		"submission": sub,
		"project":    project,
	})
}

// Reject rejects a pending submission.
func (h *SubmissionHandler) Reject(c fiber.Ctx) error {
	sub, err := h.db.Submissions.Reject(c.Context(), c.Params("id"))
	if err != nil {
		return jsonRepoError(c, err, "reject submission")
	}

	return jsonSuccess(c, fiber.Map{
		"message":    "submission rejected",
		"submission": sub,
	})
}
