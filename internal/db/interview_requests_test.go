package db

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/models"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/validation"
)

var requestIDPattern = regexp.MustCompile(`^req-\d+-[0-9a-z]{9}$`)

func interviewFields() models.InterviewRequestFields {
	return models.InterviewRequestFields{
		CandidateName: "Sarah",
		CandidateID:   "42",
		ClientName:    "Jane Client",
		ClientEmail:   "jane@acme.example",
		CompanyName:   "Acme",
		PhoneNumber:   "0123456789",
		Message:       "We would like to talk about a role.",
		ProjectName:   "Portfolio Site",
	}
}

func TestCreateInterviewRequest(t *testing.T) {
	db, _, _ := setupTestDB(t)
	ctx := context.Background()

	req, err := db.Interviews.Create(ctx, interviewFields())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if !requestIDPattern.MatchString(req.ID) {
		t.Errorf("ID = %q, want match for %s", req.ID, requestIDPattern)
	}
	if req.Status != models.StatusPending {
		t.Errorf("Status = %q, want %q", req.Status, models.StatusPending)
	}
	if req.RequestDate != "2024-03-15" {
		t.Errorf("RequestDate = %q, want %q", req.RequestDate, "2024-03-15")
	}
	if req.CandidateID != "42" {
		t.Errorf("CandidateID = %q, want %q", req.CandidateID, "42")
	}
}

func TestCreateInterviewRequest_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.InterviewRequestFields)
		field  string
	}{
		{"short phone number", func(f *models.InterviewRequestFields) { f.PhoneNumber = "012345678" }, "phoneNumber"},
		{"invalid email", func(f *models.InterviewRequestFields) { f.ClientEmail = "not-an-email" }, "clientEmail"},
		{"missing email", func(f *models.InterviewRequestFields) { f.ClientEmail = "" }, "clientEmail"},
		{"short client name", func(f *models.InterviewRequestFields) { f.ClientName = "J" }, "clientName"},
		{"short company name", func(f *models.InterviewRequestFields) { f.CompanyName = " A " }, "companyName"},
		{"short message", func(f *models.InterviewRequestFields) { f.Message = "Hi there" }, "message"},
		{"missing candidate", func(f *models.InterviewRequestFields) { f.CandidateName = "" }, "candidateName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, backend, _ := setupTestDB(t)
			ctx := context.Background()

			f := interviewFields()
			tt.mutate(&f)

			_, err := db.Interviews.Create(ctx, f)
			var verr *validation.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Create() error = %v, want ValidationError", err)
			}
			if verr.Field(tt.field) == "" {
				t.Errorf("ValidationError fields = %+v, want entry for %s", verr.Fields, tt.field)
			}

			raw, _ := backend.Get(ctx, KeyInterviewRequests)
			if raw != nil {
				t.Errorf("stored %s after failed Create(), want nothing written", raw)
			}
		})
	}
}

func TestListInterviewRequests_NewestFirst(t *testing.T) {
	db, _, clock := setupTestDB(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		req, err := db.Interviews.Create(ctx, interviewFields())
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		ids = append(ids, req.ID)
		clock.Advance(24 * time.Hour)
	}

	requests, err := db.Interviews.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	var got []string
	for _, r := range requests {
		got = append(got, r.ID)
	}
	want := []string{ids[2], ids[1], ids[0]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestListInterviewRequests_SameDayHeadInsert(t *testing.T) {
	db, _, _ := setupTestDB(t)
	ctx := context.Background()

	first, _ := db.Interviews.Create(ctx, interviewFields())
	second, _ := db.Interviews.Create(ctx, interviewFields())

	requests, _ := db.Interviews.List(ctx)
	if len(requests) != 2 || requests[0].ID != second.ID || requests[1].ID != first.ID {
		t.Errorf("List() = %+v, want [%s %s]", requests, second.ID, first.ID)
	}
}

func TestListInterviewRequests_SortsStoredOrder(t *testing.T) {
	db, _, _ := setupTestDB(t)
	ctx := context.Background()

	stored := []models.InterviewRequest{
		{ID: "req-a", RequestDate: "2024-01-14", Status: models.StatusPending},
		{ID: "req-b", RequestDate: "2024-01-15", Status: models.StatusPending},
		{ID: "req-c", RequestDate: "2024-01-13", Status: models.StatusClosed},
		{ID: "req-d", RequestDate: "2024-01-15", Status: models.StatusPending},
	}
	if err := Save(ctx, db.Records, KeyInterviewRequests, stored); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	requests, err := db.Interviews.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	var got []string
	for _, r := range requests {
		got = append(got, r.ID)
	}
	want := []string{"req-b", "req-d", "req-a", "req-c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestInterviewTransitionHook(t *testing.T) {
	db, _, _ := setupTestDB(t)
	ctx := context.Background()

	var got []string
	db.base.onTransition = func(entity, status string) {
		got = append(got, entity+":"+status)
	}

	req, _ := db.Interviews.Create(ctx, interviewFields())
	db.Interviews.UpdateStatus(ctx, req.ID, models.StatusPending)
	db.Interviews.UpdateStatus(ctx, "req-missing", models.StatusClosed)
	db.Interviews.UpdateStatus(ctx, req.ID, models.StatusContacted)
	db.Interviews.UpdateStatus(ctx, req.ID, models.StatusContacted)
	db.Interviews.UpdateStatus(ctx, req.ID, models.StatusPending)

	want := []string{"interview_request:contacted"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("transitions = %v, want %v", got, want)
	}
}

func TestUpdateInterviewStatus(t *testing.T) {
	tests := []struct {
		name    string
		steps   []string
		wantErr error
		want    string
	}{
		{"pending to contacted", []string{models.StatusContacted}, nil, models.StatusContacted},
		{"contacted to closed", []string{models.StatusContacted, models.StatusClosed}, nil, models.StatusClosed},
		{"pending to closed", []string{models.StatusClosed}, nil, models.StatusClosed},
		{"same status", []string{models.StatusPending}, nil, models.StatusPending},
		{"closed back to pending", []string{models.StatusClosed, models.StatusPending}, ErrInvalidTransition, models.StatusClosed},
		{"contacted back to pending", []string{models.StatusContacted, models.StatusPending}, ErrInvalidTransition, models.StatusContacted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _, _ := setupTestDB(t)
			ctx := context.Background()

			req, _ := db.Interviews.Create(ctx, interviewFields())

			var err error
			for _, status := range tt.steps {
				err = db.Interviews.UpdateStatus(ctx, req.ID, status)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("UpdateStatus() error = %v, want %v", err, tt.wantErr)
			}

			requests, _ := db.Interviews.List(ctx)
			if requests[0].Status != tt.want {
				t.Errorf("Status = %q, want %q", requests[0].Status, tt.want)
			}
		})
	}
}

func TestUpdateInterviewStatus_UnknownStatus(t *testing.T) {
	db, _, _ := setupTestDB(t)
	ctx := context.Background()

	req, _ := db.Interviews.Create(ctx, interviewFields())

	err := db.Interviews.UpdateStatus(ctx, req.ID, "archived")
	if !validation.IsValidationError(err) {
		t.Errorf("UpdateStatus() error = %v, want ValidationError", err)
	}
}

func TestUpdateInterviewStatus_MissingID(t *testing.T) {
	db, backend, _ := setupTestDB(t)
	ctx := context.Background()

	db.Interviews.Create(ctx, interviewFields())
	before, _ := backend.Get(ctx, KeyInterviewRequests)

	if err := db.Interviews.UpdateStatus(ctx, "req-missing", models.StatusContacted); err != nil {
		t.Errorf("UpdateStatus() error = %v, want nil", err)
	}

	after, _ := backend.Get(ctx, KeyInterviewRequests)
	if string(before) != string(after) {
		t.Errorf("stored requests changed:\nbefore %s\nafter  %s", before, after)
	}
}

func TestCountInterviewRequestsByStatus(t *testing.T) {
	db, _, _ := setupTestDB(t)
	ctx := context.Background()

	a, _ := db.Interviews.Create(ctx, interviewFields())
	db.Interviews.Create(ctx, interviewFields())
	db.Interviews.UpdateStatus(ctx, a.ID, models.StatusContacted)

	counts, err := db.Interviews.CountByStatus(ctx)
	if err != nil {
		t.Fatalf("CountByStatus() error = %v", err)
	}
	want := map[string]int{models.StatusPending: 1, models.StatusContacted: 1, models.StatusClosed: 0}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("CountByStatus() = %v, want %v", counts, want)
	}
}
