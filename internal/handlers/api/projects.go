package api

import (
	"encoding/json"
	"slices"

	"github.com/gofiber/fiber/v3"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/db"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/models"
)

// ProjectHandler serves the project gallery and the admin project forms.
type ProjectHandler struct {
	db            *db.DB
	activeCohorts []string
}

// NewProjectHandler creates a new API project handler. activeCohorts are
// offered as filter options even before they have projects.
func NewProjectHandler(database *db.DB, activeCohorts []string) *ProjectHandler {
	return &ProjectHandler{db: database, activeCohorts: activeCohorts}
}

// List returns projects, optionally filtered by search text, cohort and technology.
func (h *ProjectHandler) List(c fiber.Ctx) error {
	filter := models.ProjectFilter{
		Search:     c.Query("q"),
		Cohort:     c.Query("cohort"),
		Technology: c.Query("technology"),
	}

	projects, err := h.db.Projects.Search(c.Context(), filter)
	if err != nil {
		return jsonRepoError(c, err, "fetch projects")
	}

	return jsonSuccess(c, projects)
}

// Facets returns the gallery totals and the cohort and technology filter options.
func (h *ProjectHandler) Facets(c fiber.Ctx) error {
	stats, err := h.db.Projects.Stats(c.Context())
	if err != nil {
		return jsonRepoError(c, err, "compute project stats")
	}

	for _, cohort := range h.activeCohorts {
		if !slices.Contains(stats.Cohorts, cohort) {
			stats.Cohorts = append(stats.Cohorts, cohort)
		}
	}

	return jsonSuccess(c, stats)
}

// Get returns a single project by ID.
func (h *ProjectHandler) Get(c fiber.Ctx) error {
	project, err := h.db.Projects.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return jsonRepoError(c, err, "fetch project")
	}

	return jsonSuccess(c, fiber.Map{
		"project":  project,
		"teamSize": project.TeamSize(),
	})
}

// Create publishes a new project.
func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var body models.ProjectFields
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	project, err := h.db.Projects.Create(c.Context(), body)
	if err != nil {
		return jsonRepoError(c, err, "create project")
	}

	return jsonCreated(c, project)
}

// Update applies the supplied fields to a project.
func (h *ProjectHandler) Update(c fiber.Ctx) error {
	var body models.ProjectPatch
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	project, err := h.db.Projects.Update(c.Context(), c.Params("id"), body)
	if err != nil {
		return jsonRepoError(c, err, "update project")
	}

	return jsonSuccess(c, project)
}

// Delete removes a project. Unknown ids succeed.
func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	id := c.Params("id")
	if err := h.db.Projects.Delete(c.Context(), id); err != nil {
		return jsonRepoError(c, err, "delete project")
	}

	return jsonSuccess(c, fiber.Map{
		"message": "project deleted",
		"id":      id,
	})
}
