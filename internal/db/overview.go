package db

import (
	"context"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/models"
)

// Overview gathers the dashboard counters from every repository.
func (d *DB) Overview(ctx context.Context) (*models.Overview, error) {
	stats, err := d.Projects.Stats(ctx)
	if err != nil {
		return nil, err
	}
	drafts, err := d.Drafts.List(ctx)
	if err != nil {
		return nil, err
	}
	submissions, err := d.Submissions.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := d.Interviews.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Overview{
		Projects:          stats.Total,
		Drafts:            len(drafts),
		Submissions:       submissions,
		InterviewRequests: requests,
		Cohorts:           stats.Cohorts,
		Technologies:      stats.Technologies,
	}, nil
}
