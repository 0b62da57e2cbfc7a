package db

import (
	"context"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/models"
)

// DraftRepository owns saved project drafts. Drafts are not validated.
type DraftRepository struct {
	*baseRepository
}

// List returns all drafts in the order they were saved.
func (r *DraftRepository) List(ctx context.Context) ([]models.ProjectDraft, error) {
	return Load[models.ProjectDraft](ctx, r.records, KeyDrafts)
}

// Get retrieves a draft by id.
func (r *DraftRepository) Get(ctx context.Context, id string) (*models.ProjectDraft, error) {
	drafts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexDraft(drafts, id); i >= 0 {
		return &drafts[i], nil
	}
	return nil, ErrDraftNotFound
}

// Save stores fields as a new draft.
func (r *DraftRepository) Save(ctx context.Context, fields models.ProjectFields) (*models.ProjectDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	drafts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	id, err := r.uniqueID("draft", func(id string) bool { return indexDraft(drafts, id) >= 0 })
	if err != nil {
		return nil, err
	}

	draft := models.ProjectDraft{ID: id, CreatedAt: r.clock().UTC()}
	draft.SetFields(fields)

	drafts = append(drafts, draft)
	if err := Save(ctx, r.records, KeyDrafts, drafts); err != nil {
		return nil, err
	}

	r.logger.Debug("draft saved", "id", draft.ID)
	return &draft, nil
}

// Update replaces the fields of an existing draft.
func (r *DraftRepository) Update(ctx context.Context, id string, fields models.ProjectFields) (*models.ProjectDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	drafts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	i := indexDraft(drafts, id)
	if i < 0 {
		return nil, ErrDraftNotFound
	}

	now := r.clock().UTC()
	drafts[i].SetFields(fields)
	drafts[i].UpdatedAt = &now

	if err := Save(ctx, r.records, KeyDrafts, drafts); err != nil {
		return nil, err
	}
	updated := drafts[i]
	return &updated, nil
}

// Delete removes a draft. Deleting an unknown id is not an error.
func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	drafts, err := r.List(ctx)
	if err != nil {
		return err
	}
	i := indexDraft(drafts, id)
	if i < 0 {
		return nil
	}

	drafts = append(drafts[:i], drafts[i+1:]...)
	return Save(ctx, r.records, KeyDrafts, drafts)
}

func indexDraft(drafts []models.ProjectDraft, id string) int {
	for i := range drafts {
		if drafts[i].ID == id {
			return i
		}
	}
	return -1
}
