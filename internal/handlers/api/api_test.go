package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/db"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/models"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/testutil"
)

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
	Fields []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}

func setupTestApp(t *testing.T) (*fiber.App, *db.DB) {
	t.Helper()

	database, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	app := fiber.New()
	Mount(app.Group("/api"), database, []string{"Cohort 9"})
	return app, database
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("%s %s: invalid JSON response %q: %v", method, path, raw, err)
	}
	return resp.StatusCode, env
}

func TestCreateProjectAPI(t *testing.T) {
	app, _ := setupTestApp(t)

	body := `{"projectName":"EcoTracker","groupName":"Green Team","cohort":"Cohort 1",
		"technologies":"React, Node.js","candidates":"Alice\nBob","projectUrl":"https://eco.example.com"}`
	status, env := doJSON(t, app, http.MethodPost, "/api/projects", body)
	if status != fiber.StatusCreated {
		t.Fatalf("POST /api/projects status = %d, want %d (%s)", status, fiber.StatusCreated, env.Error)
	}

	var project models.Project
	if err := json.Unmarshal(env.Data, &project); err != nil {
		t.Fatalf("decode project: %v", err)
	}
	if len(project.Technologies) != 2 || project.TeamSize() != 2 {
		t.Errorf("project = %+v, want 2 technologies and 2 members", project)
	}

	status, env = doJSON(t, app, http.MethodGet, "/api/projects/"+project.ID, "")
	if status != fiber.StatusOK {
		t.Errorf("GET project status = %d, want %d", status, fiber.StatusOK)
	}
}

func TestCreateProjectAPI_Validation(t *testing.T) {
	app, _ := setupTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/projects", `{"projectName":"","groupName":"G","cohort":"C","githubLink":"nope"}`)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", status, fiber.StatusUnprocessableEntity)
	}
	got := map[string]bool{}
	for _, f := range env.Fields {
		got[f.Field] = true
	}
	if !got["projectName"] || !got["githubLink"] {
		t.Errorf("fields = %+v, want projectName and githubLink", env.Fields)
	}
}

func TestProjectAPI_StatusCodes(t *testing.T) {
	app, _ := setupTestApp(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"get missing", http.MethodGet, "/api/projects/proj-missing", "", fiber.StatusNotFound},
		{"patch missing", http.MethodPatch, "/api/projects/proj-missing", `{"projectName":"x"}`, fiber.StatusNotFound},
		{"delete missing", http.MethodDelete, "/api/projects/proj-missing", "", fiber.StatusOK},
		{"bad body", http.MethodPost, "/api/projects", `{not json`, fiber.StatusBadRequest},
		{"missing draft", http.MethodGet, "/api/drafts/draft-missing", "", fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := doJSON(t, app, tt.method, tt.path, tt.body)
			if status != tt.want {
				t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, status, tt.want)
			}
		})
	}
}

func TestFacetsAPI(t *testing.T) {
	app, database := setupTestApp(t)
	testutil.CreateTestProject(t, database, "EcoTracker", "Cohort 1", "React", "Node")

	status, env := doJSON(t, app, http.MethodGet, "/api/projects/facets", "")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", status, fiber.StatusOK)
	}

	var stats models.ProjectStats
	json.Unmarshal(env.Data, &stats)
	if stats.Total != 1 {
		t.Errorf("Total = %d, want 1", stats.Total)
	}
	if len(stats.Cohorts) != 2 || stats.Cohorts[0] != "Cohort 1" || stats.Cohorts[1] != "Cohort 9" {
		t.Errorf("Cohorts = %v, want [Cohort 1 Cohort 9]", stats.Cohorts)
	}
}

func TestSubmissionWorkflowAPI(t *testing.T) {
	app, database := setupTestApp(t)

	body := `{"name":"Sarah","role":"Designer","projectTitle":"Portfolio","technologies":["Figma"]}`
	status, env := doJSON(t, app, http.MethodPut, "/api/submissions/candidate/cand-1", body)
	if status != fiber.StatusOK {
		t.Fatalf("PUT submission status = %d, want %d (%s)", status, fiber.StatusOK, env.Error)
	}
	var sub models.CandidateSubmission
	json.Unmarshal(env.Data, &sub)

	status, env = doJSON(t, app, http.MethodGet, "/api/submissions?status=pending", "")
	var pending []models.CandidateSubmission
	json.Unmarshal(env.Data, &pending)
	if status != fiber.StatusOK || len(pending) != 1 {
		t.Fatalf("pending = %d submissions (status %d), want 1", len(pending), status)
	}

	status, _ = doJSON(t, app, http.MethodPost, "/api/submissions/"+sub.ID+"/approve", "")
	if status != fiber.StatusOK {
		t.Fatalf("approve status = %d, want %d", status, fiber.StatusOK)
	}
	status, _ = doJSON(t, app, http.MethodPost, "/api/submissions/"+sub.ID+"/approve", "")
	if status != fiber.StatusOK {
		t.Errorf("second approve status = %d, want %d", status, fiber.StatusOK)
	}
	status, _ = doJSON(t, app, http.MethodPost, "/api/submissions/"+sub.ID+"/reject", "")
	if status != fiber.StatusConflict {
		t.Errorf("reject after approve status = %d, want %d", status, fiber.StatusConflict)
	}
	status, _ = doJSON(t, app, http.MethodPost, "/api/submissions/sub-missing/approve", "")
	if status != fiber.StatusNotFound {
		t.Errorf("approve missing status = %d, want %d", status, fiber.StatusNotFound)
	}

	projects, _ := database.Projects.List(t.Context())
	if len(projects) != 1 || projects[0].GroupName != "Sarah" {
		t.Errorf("projects = %+v, want one project by Sarah", projects)
	}
}

func TestApproveAPI_ProjectDeletedSinceApproval(t *testing.T) {
	app, database := setupTestApp(t)
	sub := testutil.CreateTestSubmission(t, database, "cand-1", "Sarah")

	status, _ := doJSON(t, app, http.MethodPost, "/api/submissions/"+sub.ID+"/approve", "")
	if status != fiber.StatusOK {
		t.Fatalf("approve status = %d, want %d", status, fiber.StatusOK)
	}

	project, err := database.Projects.FindBySourceSubmission(t.Context(), sub.ID)
	if err != nil {
		t.Fatalf("FindBySourceSubmission() error = %v", err)
	}
	if err := database.Projects.Delete(t.Context(), project.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	status, env := doJSON(t, app, http.MethodPost, "/api/submissions/"+sub.ID+"/approve", "")
	if status != fiber.StatusOK {
		t.Fatalf("second approve status = %d, want %d (%s)", status, fiber.StatusOK, env.Error)
	}
	var data struct {
		Submission models.CandidateSubmission `json:"submission"`
		Project    *models.Project            `json:"project"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if data.Submission.Status != models.StatusApproved {
		t.Errorf("submission status = %q, want %q", data.Submission.Status, models.StatusApproved)
	}
	if data.Project != nil {
		t.Errorf("project = %+v, want null", data.Project)
	}
}

func TestInterviewRequestAPI(t *testing.T) {
	app, _ := setupTestApp(t)

	body := `{"candidateName":"Sarah","candidateId":7,"clientName":"Jane","clientEmail":"jane@acme.example",
		"companyName":"Acme","phoneNumber":"012345678","message":"Let us talk about a role."}`
	status, env := doJSON(t, app, http.MethodPost, "/api/interview-requests", body)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("short phone status = %d, want %d", status, fiber.StatusUnprocessableEntity)
	}
	if len(env.Fields) != 1 || env.Fields[0].Field != "phoneNumber" {
		t.Errorf("fields = %+v, want phoneNumber only", env.Fields)
	}

	body = strings.Replace(body, "012345678", "0123456789", 1)
	status, env = doJSON(t, app, http.MethodPost, "/api/interview-requests", body)
	if status != fiber.StatusCreated {
		t.Fatalf("create status = %d, want %d (%s)", status, fiber.StatusCreated, env.Error)
	}
	var req models.InterviewRequest
	json.Unmarshal(env.Data, &req)
	if req.CandidateID != "7" {
		t.Errorf("CandidateID = %q, want %q", req.CandidateID, "7")
	}

	status, _ = doJSON(t, app, http.MethodPut, "/api/interview-requests/"+req.ID+"/status", `{"status":"closed"}`)
	if status != fiber.StatusOK {
		t.Errorf("close status = %d, want %d", status, fiber.StatusOK)
	}
	status, _ = doJSON(t, app, http.MethodPut, "/api/interview-requests/"+req.ID+"/status", `{"status":"contacted"}`)
	if status != fiber.StatusConflict {
		t.Errorf("reopen status = %d, want %d", status, fiber.StatusConflict)
	}
	status, _ = doJSON(t, app, http.MethodPut, "/api/interview-requests/"+req.ID+"/status", `{"status":"archived"}`)
	if status != fiber.StatusUnprocessableEntity {
		t.Errorf("unknown status = %d, want %d", status, fiber.StatusUnprocessableEntity)
	}
}

func TestOverviewAPI(t *testing.T) {
	app, database := setupTestApp(t)
	testutil.CreateTestProject(t, database, "EcoTracker", "Cohort 1")
	testutil.CreateTestInterviewRequest(t, database, "Sarah")

	status, env := doJSON(t, app, http.MethodGet, "/api/overview", "")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", status, fiber.StatusOK)
	}
	var o models.Overview
	json.Unmarshal(env.Data, &o)
	if o.Projects != 1 || o.InterviewRequests[models.StatusPending] != 1 {
		t.Errorf("Overview = %+v, want 1 project and 1 pending request", o)
	}
}
