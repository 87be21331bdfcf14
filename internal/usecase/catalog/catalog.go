package usecase_catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/meulencv/wenomadus/internal/model"
)

var (
	ErrFailedToStoreMeta = errors.New("failed to store catalog entry")
	ErrFailedToLoadMeta  = errors.New("failed to load catalog")
	ErrInvalidInput      = errors.New("invalid input")
	ErrResourceNotFound  = errors.New("no such catalog entry")
)

//go:generate mockery --name=Repository --output=./mocks/catalog/repository --filename=repository.go
type Repository interface {
	Questions(ctx context.Context) ([]model.Question, error)
	Destinations(ctx context.Context) ([]model.Destination, error)
	DestinationByIATA(ctx context.Context, code string) (model.Destination, error)

	// StoreQuestion and StoreDestination are idempotent by question text and
	// destination name. created is false when the entry already existed.
	StoreQuestion(ctx context.Context, q model.Question) (id model.QuestionID, created bool, err error)
	StoreDestination(ctx context.Context, d model.Destination) (id model.DestinationID, created bool, err error)
}

type SeedReport struct {
	Questions    int `json:"questions"`
	Destinations int `json:"destinations"`
}

type Usecase struct {
	repository Repository
	logger     *slog.Logger
}

func New(repository Repository) *Usecase {
	return &Usecase{
		repository: repository,
		logger:     slog.Default(),
	}
}

func (u *Usecase) Questions(ctx context.Context) ([]model.Question, error) {
	qs, err := u.repository.Questions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadMeta, err)
	}
	return qs, nil
}

func (u *Usecase) Destinations(ctx context.Context) ([]model.Destination, error) {
	ds, err := u.repository.Destinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadMeta, err)
	}
	return ds, nil
}

func (u *Usecase) DestinationByIATA(ctx context.Context, code string) (model.Destination, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return model.Destination{}, fmt.Errorf("%w: empty code", ErrInvalidInput)
	}

	d, err := u.repository.DestinationByIATA(ctx, code)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Destination{}, ErrResourceNotFound
		}
		return model.Destination{}, fmt.Errorf("%w: %w", ErrFailedToLoadMeta, err)
	}
	return d, nil
}

func (u *Usecase) AddQuestion(ctx context.Context, q model.Question) (model.Question, error) {
	q.Text = strings.TrimSpace(q.Text)
	if q.Text == "" {
		return model.Question{}, fmt.Errorf("%w: question text cannot be empty", ErrInvalidInput)
	}
	if !q.Category.Known() {
		return model.Question{}, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, q.Category)
	}

	id, _, err := u.repository.StoreQuestion(ctx, q)
	if err != nil {
		return model.Question{}, fmt.Errorf("%w: %w", ErrFailedToStoreMeta, err)
	}
	q.ID = id
	return q, nil
}

func (u *Usecase) AddDestination(ctx context.Context, d model.Destination) (model.Destination, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.IATACode = strings.ToUpper(strings.TrimSpace(d.IATACode))
	if d.Name == "" {
		return model.Destination{}, fmt.Errorf("%w: destination name cannot be empty", ErrInvalidInput)
	}
	if unknown := d.Attributes.Unknown(); len(unknown) > 0 {
		return model.Destination{}, fmt.Errorf("%w: unknown categories %v", ErrInvalidInput, unknown)
	}

	id, _, err := u.repository.StoreDestination(ctx, d)
	if err != nil {
		return model.Destination{}, fmt.Errorf("%w: %w", ErrFailedToStoreMeta, err)
	}
	d.ID = id
	return d, nil
}

// Seed loads the sample catalog. Entries already present are skipped, so
// running it twice is harmless.
func (u *Usecase) Seed(ctx context.Context) (SeedReport, error) {
	var report SeedReport

	for _, q := range SampleQuestions() {
		_, created, err := u.repository.StoreQuestion(ctx, q)
		if err != nil {
			return report, fmt.Errorf("%w: %w", ErrFailedToStoreMeta, err)
		}
		if created {
			report.Questions++
		}
	}

	for _, d := range SampleDestinations() {
		_, created, err := u.repository.StoreDestination(ctx, d)
		if err != nil {
			return report, fmt.Errorf("%w: %w", ErrFailedToStoreMeta, err)
		}
		if created {
			report.Destinations++
		}
	}

	u.logger.Info("catalog seeded",
		slog.Int("questions", report.Questions),
		slog.Int("destinations", report.Destinations))
	return report, nil
}
