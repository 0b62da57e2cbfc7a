package db

import (
	"context"
	"strings"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/models"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/validation"
)

// ProjectRepository owns the projects collection.
type ProjectRepository struct {
	*baseRepository
}

// List returns all projects in insertion order.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	return Load[models.Project](ctx, r.records, KeyProjects)
}

// GetByID retrieves a project by id.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexProject(projects, id); i >= 0 {
		return &projects[i], nil
	}
	return nil, ErrProjectNotFound
}

// Create validates fields and appends a new project.
func (r *ProjectRepository) Create(ctx context.Context, fields models.ProjectFields) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.create(ctx, fields, "")
}

// create appends a project. Caller holds r.mu.
func (r *ProjectRepository) create(ctx context.Context, fields models.ProjectFields, sourceSubmissionID string) (*models.Project, error) {
	fields = normalizeProjectFields(fields)
	if err := validation.Struct(fields); err != nil {
		return nil, err
	}

	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	id, err := r.uniqueID("proj", func(id string) bool { return indexProject(projects, id) >= 0 })
	if err != nil {
		return nil, err
	}

	project := models.Project{
		ID:                 id,
		SourceSubmissionID: sourceSubmissionID,
		CreatedAt:          r.clock().UTC(),
	}
	project.SetFields(fields)

	projects = append(projects, project)
	if err := Save(ctx, r.records, KeyProjects, projects); err != nil {
		return nil, err
	}

	r.logger.Info("project created", "id", project.ID, "project", project.ProjectName, "cohort", project.Cohort)
	return &project, nil
}

// Update merges patch into the project and re-validates the result.
func (r *ProjectRepository) Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	i := indexProject(projects, id)
	if i < 0 {
		return nil, ErrProjectNotFound
	}

	fields := normalizeProjectFields(patch.Apply(projects[i].Fields()))
	if err := validation.Struct(fields); err != nil {
		return nil, err
	}

	now := r.clock().UTC()
	projects[i].SetFields(fields)
	projects[i].UpdatedAt = &now

	if err := Save(ctx, r.records, KeyProjects, projects); err != nil {
		return nil, err
	}
	updated := projects[i]
	return &updated, nil
}

// Delete removes a project. Deleting an unknown id is not an error.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.List(ctx)
	if err != nil {
		return err
	}
	i := indexProject(projects, id)
	if i < 0 {
		return nil
	}

	projects = append(projects[:i], projects[i+1:]...)
	if err := Save(ctx, r.records, KeyProjects, projects); err != nil {
		return err
	}

	r.logger.Info("project deleted", "id", id)
	return nil
}

// FindBySourceSubmission returns the project created from a submission, or
// ErrProjectNotFound.
func (r *ProjectRepository) FindBySourceSubmission(ctx context.Context, submissionID string) (*models.Project, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].SourceSubmissionID == submissionID {
			return &projects[i], nil
		}
	}
	return nil, ErrProjectNotFound
}

// Search returns the projects matching filter, in insertion order. The search
// text matches project name, group name and member names, ignoring case.
func (r *ProjectRepository) Search(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := []models.Project{}
	for _, p := range projects {
		if filter.Cohort != "" && p.Cohort != filter.Cohort {
			continue
		}
		if filter.Technology != "" && !p.Technologies.Normalize().Contains(filter.Technology) {
			continue
		}
		if query != "" && !matchesSearch(&p, query) {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

func matchesSearch(p *models.Project, query string) bool {
	if strings.Contains(strings.ToLower(p.ProjectName), query) ||
		strings.Contains(strings.ToLower(p.GroupName), query) {
		return true
	}
	for _, name := range p.Candidates {
		if strings.Contains(strings.ToLower(name), query) {
			return true
		}
	}
	return false
}

// Stats computes the gallery facets. Cohorts and technologies keep the order
// they are first seen in.
func (r *ProjectRepository) Stats(ctx context.Context) (*models.ProjectStats, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return computeStats(projects), nil
}

func computeStats(projects []models.Project) *models.ProjectStats {
	stats := &models.ProjectStats{
		Total:        len(projects),
		Cohorts:      []string{},
		Technologies: []string{},
	}

	seenCohort := make(map[string]bool)
	seenTech := make(map[string]bool)
	for _, p := range projects {
		if c := strings.TrimSpace(p.Cohort); c != "" && !seenCohort[c] {
			seenCohort[c] = true
			stats.Cohorts = append(stats.Cohorts, c)
		}
		for _, tech := range p.Technologies.Normalize() {
			if !seenTech[tech] {
				seenTech[tech] = true
				stats.Technologies = append(stats.Technologies, tech)
			}
		}
	}
	return stats
}

func indexProject(projects []models.Project, id string) int {
	for i := range projects {
		if projects[i].ID == id {
			return i
		}
	}
	return -1
}

func normalizeProjectFields(f models.ProjectFields) models.ProjectFields {
	f.ProjectName = strings.TrimSpace(f.ProjectName)
	f.GroupName = strings.TrimSpace(f.GroupName)
	f.Cohort = strings.TrimSpace(f.Cohort)
	f.Category = strings.TrimSpace(f.Category)
	f.Technologies = f.Technologies.Normalize()
	f.Candidates = models.ParseMembers(strings.Join(f.Candidates, "\n"))
	f.Description = strings.TrimSpace(f.Description)
	f.ProjectURL = strings.TrimSpace(f.ProjectURL)
	f.GithubLink = strings.TrimSpace(f.GithubLink)
	return f
}
