// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/db"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/models"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/storage"
)

// Now is the fixed time returned by the test clock.
var Now = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestDB creates a database over in-memory storage and returns a cleanup function.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	database := db.New(storage.NewMemory(), db.Options{
		Logger: Logger(),
		Clock:  func() time.Time { return Now },
	})

	cleanup := func() {
		database.Close()
	}

	return database, cleanup
}

// CreateTestProject creates a project and returns it.
func CreateTestProject(t *testing.T, database *db.DB, name, cohort string, technologies ...string) *models.Project {
	t.Helper()

	project, err := database.Projects.Create(context.Background(), models.ProjectFields{
		ProjectName:  name,
		GroupName:    name + " Team",
		Cohort:       cohort,
		Technologies: technologies,
		Candidates:   models.Members{"Alice", "Bob"},
	})
	if err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}

	return project
}

// CreateTestSubmission stores a pending submission for candidateKey and returns it.
func CreateTestSubmission(t *testing.T, database *db.DB, candidateKey, name string) *models.CandidateSubmission {
	t.Helper()

	sub, err := database.Submissions.UpsertForCandidate(context.Background(), candidateKey, models.SubmissionFields{
		Name:         name,
		Role:         "Frontend Developer",
		ProjectTitle: name + "'s Portfolio",
		Technologies: models.List{"React", "TypeScript"},
		LiveDemoLink: "https://example.com/demo",
	})
	if err != nil {
		t.Fatalf("failed to create test submission: %v", err)
	}

	return sub
}

// CreateTestInterviewRequest stores a pending interview request and returns it.
func CreateTestInterviewRequest(t *testing.T, database *db.DB, candidateName string) *models.InterviewRequest {
	t.Helper()

	req, err := database.Interviews.Create(context.Background(), models.InterviewRequestFields{
		CandidateName: candidateName,
		ClientName:    "Jane Client",
		ClientEmail:   "jane@acme.example",
		CompanyName:   "Acme",
		PhoneNumber:   "0123456789",
		Message:       "We would like to talk about a role.",
	})
	if err != nil {
		t.Fatalf("failed to create test interview request: %v", err)
	}

	return req
}
