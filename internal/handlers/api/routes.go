package api

import (
	"github.com/gofiber/fiber/v3"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/db"
)

// Mount registers the JSON API routes on r.
func Mount(r fiber.Router, database *db.DB, activeCohorts []string) {
	projectHandler := NewProjectHandler(database, activeCohorts)
	draftHandler := NewDraftHandler(database)
	submissionHandler := NewSubmissionHandler(database)
	interviewHandler := NewInterviewRequestHandler(database)
	healthHandler := NewHealthHandler(database)

	// Gallery and admin project management
	r.Get("/projects", projectHandler.List)
	r.Post("/projects", projectHandler.Create)
	r.Get("/projects/facets", projectHandler.Facets)
	r.Get("/projects/:id", projectHandler.Get)
	r.Patch("/projects/:id", projectHandler.Update)
	r.Delete("/projects/:id", projectHandler.Delete)

	// Upload form drafts
	r.Get("/drafts", draftHandler.List)
	r.Post("/drafts", draftHandler.Create)
	r.Get("/drafts/:id", draftHandler.Get)
	r.Put("/drafts/:id", draftHandler.Update)
	r.Delete("/drafts/:id", draftHandler.Delete)

	// Candidate dashboard and review queue
	r.Get("/submissions", submissionHandler.List)
	r.Get("/submissions/candidate/:key", submissionHandler.GetForCandidate)
	r.Put("/submissions/candidate/:key", submissionHandler.Upsert)
	r.Post("/submissions/:id/approve", submissionHandler.Approve)
	r.Post("/submissions/:id/reject", submissionHandler.Reject)

	// Client interview requests
	r.Get("/interview-requests", interviewHandler.List)
	r.Post("/interview-requests", interviewHandler.Create)
	r.Put("/interview-requests/:id/status", interviewHandler.UpdateStatus)

	r.Get("/overview", healthHandler.Overview)
}
