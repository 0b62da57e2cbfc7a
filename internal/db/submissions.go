package db

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/models"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/validation"
)

// SubmissionRepository owns the per-candidate submission records.
type SubmissionRepository struct {
	*baseRepository
	projects *ProjectRepository
	cohort   string
}

func submissionKey(candidateKey string) string {
	return SubmissionKeyPrefix + candidateKey
}

// List returns every submission ordered by submission time.
func (r *SubmissionRepository) List(ctx context.Context) ([]models.CandidateSubmission, error) {
	keys, err := r.records.Keys(ctx, SubmissionKeyPrefix)
	if err != nil {
		return nil, err
	}

	subs := make([]models.CandidateSubmission, 0, len(keys))
	for _, key := range keys {
		sub, err := LoadRecord[models.CandidateSubmission](ctx, r.records, key)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			continue
		}
		if sub.CandidateKey == "" {
			sub.CandidateKey = strings.TrimPrefix(key, SubmissionKeyPrefix)
		}
		subs = append(subs, *sub)
	}

	sort.SliceStable(subs, func(i, j int) bool {
		if !subs[i].SubmittedAt.Equal(subs[j].SubmittedAt) {
			return subs[i].SubmittedAt.Before(subs[j].SubmittedAt)
		}
		return subs[i].ID < subs[j].ID
	})
	return subs, nil
}

// Pending returns the submissions still awaiting review.
func (r *SubmissionRepository) Pending(ctx context.Context) ([]models.CandidateSubmission, error) {
	subs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	pending := []models.CandidateSubmission{}
	for _, s := range subs {
		if s.Status == models.StatusPending {
			pending = append(pending, s)
		}
	}
	return pending, nil
}

// GetForCandidate returns the submission stored for a candidate.
func (r *SubmissionRepository) GetForCandidate(ctx context.Context, candidateKey string) (*models.CandidateSubmission, error) {
	sub, err := LoadRecord[models.CandidateSubmission](ctx, r.records, submissionKey(candidateKey))
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}
	if sub.CandidateKey == "" {
		sub.CandidateKey = candidateKey
	}
	return sub, nil
}

// GetByID finds a submission by its id.
func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*models.CandidateSubmission, error) {
	subs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexSubmission(subs, id); i >= 0 {
		return &subs[i], nil
	}
	return nil, ErrSubmissionNotFound
}

func indexSubmission(subs []models.CandidateSubmission, id string) int {
	for i := range subs {
		if subs[i].ID == id {
			return i
		}
	}
	return -1
}

// UpsertForCandidate creates the candidate's submission, or overwrites the
// existing one in place. Resubmitting keeps the current status unless fields
// asks for pending explicitly, which sends the submission back to review.
func (r *SubmissionRepository) UpsertForCandidate(ctx context.Context, candidateKey string, fields models.SubmissionFields) (*models.CandidateSubmission, error) {
	candidateKey = strings.TrimSpace(candidateKey)
	if candidateKey == "" {
		return nil, validation.NewError("candidateKey", "candidateKey is required")
	}
	fields = normalizeSubmissionFields(fields)
	if err := validation.Struct(fields); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := submissionKey(candidateKey)
	sub, err := LoadRecord[models.CandidateSubmission](ctx, r.records, key)
	if err != nil {
		return nil, err
	}

	now := r.clock().UTC()
	reopened := false
	if sub == nil {
		existing, err := r.List(ctx)
		if err != nil {
			return nil, err
		}
		id, err := r.uniqueID("sub", func(id string) bool { return indexSubmission(existing, id) >= 0 })
		if err != nil {
			return nil, err
		}
		sub = &models.CandidateSubmission{
			ID:     id,
			Status: models.StatusPending,
		}
	} else if fields.Status == models.StatusPending && sub.Status != models.StatusPending {
		r.logger.Info("submission reopened for review", "id", sub.ID, "from", sub.Status)
		sub.Status = models.StatusPending
		sub.ReviewedAt = nil
		reopened = true
	}

	sub.CandidateKey = candidateKey
	sub.SetFields(fields)
	sub.SubmittedAt = now

	if err := SaveRecord(ctx, r.records, key, sub); err != nil {
		return nil, err
	}
	if reopened {
		r.transitioned(entitySubmission, models.StatusPending)
	}

	r.logger.Info("submission saved", "id", sub.ID, "candidate", candidateKey, "status", sub.Status)
	return sub, nil
}

// Approve marks a pending submission approved and publishes it as a project.
// Approving an approved submission does nothing.
func (r *SubmissionRepository) Approve(ctx context.Context, id string) (*models.CandidateSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch sub.Status {
	case models.StatusApproved:
		return sub, nil
	case models.StatusRejected:
		return nil, ErrInvalidTransition
	}

	// The project is written first; a retry after a failed status write finds
	// it by source id instead of publishing twice.
	if _, err := r.projects.FindBySourceSubmission(ctx, sub.ID); errors.Is(err, ErrProjectNotFound) {
		if _, err := r.projects.create(ctx, r.projectFields(sub), sub.ID); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	now := r.clock().UTC()
	sub.Status = models.StatusApproved
	sub.ReviewedAt = &now
	if err := SaveRecord(ctx, r.records, submissionKey(sub.CandidateKey), sub); err != nil {
		return nil, err
	}

	r.transitioned(entitySubmission, models.StatusApproved)
	r.logger.Info("submission approved", "id", sub.ID, "candidate", sub.CandidateKey)
	return sub, nil
}

// Reject marks a pending submission rejected. Rejecting a rejected submission does nothing.
func (r *SubmissionRepository) Reject(ctx context.Context, id string) (*models.CandidateSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch sub.Status {
	case models.StatusRejected:
		return sub, nil
	case models.StatusApproved:
		return nil, ErrInvalidTransition
	}

	now := r.clock().UTC()
	sub.Status = models.StatusRejected
	sub.ReviewedAt = &now
	if err := SaveRecord(ctx, r.records, submissionKey(sub.CandidateKey), sub); err != nil {
		return nil, err
	}

	r.transitioned(entitySubmission, models.StatusRejected)
	r.logger.Info("submission rejected", "id", sub.ID, "candidate", sub.CandidateKey)
	return sub, nil
}

// projectFields maps an approved submission onto the gallery project form.
func (r *SubmissionRepository) projectFields(sub *models.CandidateSubmission) models.ProjectFields {
	return models.ProjectFields{
		ProjectName:  sub.ProjectTitle,
		GroupName:    sub.Name,
		Cohort:       r.cohort,
		Category:     sub.Role,
		Technologies: sub.Technologies,
		Candidates:   models.Members{sub.Name},
		Description:  sub.ProjectDescription,
		ProjectURL:   sub.LiveDemoLink,
		GithubLink:   sub.GithubLink,
	}
}

func normalizeSubmissionFields(f models.SubmissionFields) models.SubmissionFields {
	f.Name = strings.TrimSpace(f.Name)
	f.Role = strings.TrimSpace(f.Role)
	f.Skills = f.Skills.Normalize()
	f.Bio = strings.TrimSpace(f.Bio)
	f.ProjectTitle = strings.TrimSpace(f.ProjectTitle)
	f.ProjectDescription = strings.TrimSpace(f.ProjectDescription)
	f.Technologies = f.Technologies.Normalize()
	f.PhotoURL = strings.TrimSpace(f.PhotoURL)
	f.GithubLink = strings.TrimSpace(f.GithubLink)
	f.LiveDemoLink = strings.TrimSpace(f.LiveDemoLink)
	f.Status = strings.TrimSpace(f.Status)
	return f
}

// CountByStatus tallies submissions per review status. Known statuses are always present.
func (r *SubmissionRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	subs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{
		models.StatusPending:  0,
		models.StatusApproved: 0,
		models.StatusRejected: 0,
	}
	for _, s := range subs {
		counts[s.Status]++
	}
	return counts, nil
}
