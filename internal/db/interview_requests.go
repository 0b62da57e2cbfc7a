package db

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/models"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/validation"
)

// InterviewRequestRepository owns the interview request collection.
// Requests are never deleted.
type InterviewRequestRepository struct {
	*baseRepository
}

// List returns all requests, newest request date first, whatever order they
// were stored in.
func (r *InterviewRequestRepository) List(ctx context.Context) ([]models.InterviewRequest, error) {
	requests, err := Load[models.InterviewRequest](ctx, r.records, KeyInterviewRequests)
	if err != nil {
		return nil, err
	}
	sortByRequestDate(requests)
	return requests, nil
}

// Create validates fields and stores a new pending request at the head of the list.
func (r *InterviewRequestRepository) Create(ctx context.Context, fields models.InterviewRequestFields) (*models.InterviewRequest, error) {
	fields = normalizeInterviewFields(fields)
	if err := validation.Struct(fields); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	requests, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	id, err := r.uniqueID("req", func(id string) bool { return indexRequest(requests, id) >= 0 })
	if err != nil {
		return nil, err
	}

	req := models.InterviewRequest{
		ID:            id,
		CandidateName: fields.CandidateName,
		CandidateID:   fields.CandidateID,
		ClientName:    fields.ClientName,
		ClientEmail:   fields.ClientEmail,
		CompanyName:   fields.CompanyName,
		PhoneNumber:   fields.PhoneNumber,
		Message:       fields.Message,
		ProjectName:   fields.ProjectName,
		RequestDate:   r.clock().UTC().Format(models.DateLayout),
		Status:        models.StatusPending,
	}

	requests = append([]models.InterviewRequest{req}, requests...)
	sortByRequestDate(requests)

	if err := Save(ctx, r.records, KeyInterviewRequests, requests); err != nil {
		return nil, err
	}

	r.logger.Info("interview request created", "id", req.ID, "candidate", req.CandidateName, "company", req.CompanyName)
	return &req, nil
}

// UpdateStatus moves a request forward to status. An unknown id is ignored.
func (r *InterviewRequestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if !models.IsInterviewStatus(status) {
		return validation.NewError("status", fmt.Sprintf("status must be one of: %s, %s, %s",
			models.StatusPending, models.StatusContacted, models.StatusClosed))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	requests, err := r.List(ctx)
	if err != nil {
		return err
	}
	i := indexRequest(requests, id)
	if i < 0 {
		r.logger.Debug("interview request not found, status unchanged", "id", id, "status", status)
		return nil
	}

	current := requests[i].Status
	if current == status {
		return nil
	}
	if !models.CanAdvanceInterview(current, status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, status)
	}

	requests[i].Status = status
	if err := Save(ctx, r.records, KeyInterviewRequests, requests); err != nil {
		return err
	}
	r.transitioned(entityInterviewRequest, status)

	r.logger.Info("interview request status changed", "id", id, "from", current, "to", status)
	return nil
}

// CountByStatus tallies requests per status. Known statuses are always present.
func (r *InterviewRequestRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	requests, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{
		models.StatusPending:   0,
		models.StatusContacted: 0,
		models.StatusClosed:    0,
	}
	for _, req := range requests {
		counts[req.Status]++
	}
	return counts, nil
}

// sortByRequestDate orders newest first. Dates are YYYY-MM-DD so they compare
// as strings; same-day requests keep their order.
func sortByRequestDate(requests []models.InterviewRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].RequestDate > requests[j].RequestDate
	})
}

func indexRequest(requests []models.InterviewRequest, id string) int {
	for i := range requests {
		if requests[i].ID == id {
			return i
		}
	}
	return -1
}

func normalizeInterviewFields(f models.InterviewRequestFields) models.InterviewRequestFields {
	f.CandidateName = strings.TrimSpace(f.CandidateName)
	f.CandidateID = models.FlexString(strings.TrimSpace(string(f.CandidateID)))
	f.ClientName = strings.TrimSpace(f.ClientName)
	f.ClientEmail = strings.TrimSpace(f.ClientEmail)
	f.CompanyName = strings.TrimSpace(f.CompanyName)
	f.PhoneNumber = strings.TrimSpace(f.PhoneNumber)
	f.Message = strings.TrimSpace(f.Message)
	f.ProjectName = strings.TrimSpace(f.ProjectName)
	return f
}
