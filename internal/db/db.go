package db

import (
	"context"
	"log/slog"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/models"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/storage"
)

// Storage keys. Each holds one JSON value.
const (
	KeyProjects          = "projects"
	KeyDrafts            = "project-drafts"
	KeyInterviewRequests = "interview_requests"

	// SubmissionKeyPrefix is followed by the candidate key; each key holds one object.
	SubmissionKeyPrefix = "candidate-submission:"
)

// Options configures a DB. Zero values select defaults.
type Options struct {
	Logger *slog.Logger

	// SubmissionCohort labels projects created by approving a submission.
	SubmissionCohort string

	// Clock stamps ids and dates. Defaults to time.Now.
	Clock func() time.Time

	// OnTransition is called after a status change has been saved. Calls
	// that leave a status unchanged do not trigger it.
	OnTransition func(entity, status string)
}

// Entity names passed to Options.OnTransition.
const (
	entitySubmission       = "submission"
	entityInterviewRequest = "interview_request"
)

// DB groups the repositories that share one record store.
type DB struct {
	Records     *RecordStore
	Projects    *ProjectRepository
	Submissions *SubmissionRepository
	Interviews  *InterviewRequestRepository
	Drafts      *DraftRepository

	base    *baseRepository
	backend storage.Storage
}

// New wires every repository over backend.
func New(backend storage.Storage, opts Options) *DB {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cohort := opts.SubmissionCohort
	if cohort == "" {
		cohort = models.SubmissionCohort
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	records := NewRecordStore(backend, logger)
	base := &baseRepository{records: records, logger: logger, clock: clock, onTransition: opts.OnTransition}
	projects := &ProjectRepository{baseRepository: base}

	return &DB{
		Records:     records,
		Projects:    projects,
		Submissions: &SubmissionRepository{baseRepository: base, projects: projects, cohort: cohort},
		Interviews:  &InterviewRequestRepository{baseRepository: base},
		Drafts:      &DraftRepository{baseRepository: base},
		base:        base,
		backend:     backend,
	}
}

// Close closes the storage backend.
func (d *DB) Close() error {
	return d.backend.Close()
}

// Ping checks that the backend answers a read.
func (d *DB) Ping(ctx context.Context) error {
	_, err := d.backend.Get(ctx, KeyProjects)
	return err
}

type baseRepository struct {
	records *RecordStore
	logger  *slog.Logger
	clock   func() time.Time
	mu      sync.Mutex // serializes read-modify-write cycles within this process

	onTransition func(entity, status string)
}

func (b *baseRepository) transitioned(entity, status string) {
	if b.onTransition != nil {
		b.onTransition(entity, status)
	}
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newID returns "<prefix>-<unix ms>-<9 random chars>".
func (b *baseRepository) newID(prefix string) (string, error) {
	suffix, err := gonanoid.Generate(idAlphabet, 9)
	if err != nil {
		return "", err
	}
	return prefix + "-" + formatMillis(b.clock()) + "-" + suffix, nil
}

// uniqueID draws ids until one is not taken.
func (b *baseRepository) uniqueID(prefix string, taken func(string) bool) (string, error) {
	for {
		id, err := b.newID(prefix)
		if err != nil {
			return "", err
		}
		if !taken(id) {
			return id, nil
		}
	}
}
