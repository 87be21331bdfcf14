package infra_postgres_catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/meulencv/wenomadus/internal/model"
	usecase_catalog "github.com/meulencv/wenomadus/internal/usecase/catalog"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type storedDTO struct {
	ID      int64 `db:"id"`
	Created bool  `db:"created"`
}

func (r *Repository) Questions(ctx context.Context) ([]model.Question, error) {
	query := `
		SELECT id, text, category
		FROM questions
		ORDER BY id
	`

	var questionsDB []QuestionDB
	if err := r.db.SelectContext(ctx, &questionsDB, query); err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}

	questions := make([]model.Question, len(questionsDB))
	for i, q := range questionsDB {
		questions[i] = q.ToDomain()
	}
	return questions, nil
}

func (r *Repository) Destinations(ctx context.Context) ([]model.Destination, error) {
	query := `
		SELECT id, name, iata_code, country, attributes
		FROM destinations
		ORDER BY id
	`

	var destinationsDB []DestinationDB
	if err := r.db.SelectContext(ctx, &destinationsDB, query); err != nil {
		return nil, fmt.Errorf("failed to query destinations: %w", err)
	}

	destinations := make([]model.Destination, len(destinationsDB))
	for i, d := range destinationsDB {
		destinations[i] = d.ToDomain()
	}
	return destinations, nil
}

func (r *Repository) DestinationByIATA(ctx context.Context, code string) (model.Destination, error) {
	query := `
		SELECT id, name, iata_code, country, attributes
		FROM destinations
		WHERE iata_code = $1
		ORDER BY id
		LIMIT 1
	`

	var destinationDB DestinationDB
	if err := r.db.GetContext(ctx, &destinationDB, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Destination{}, usecase_catalog.ErrResourceNotFound
		}
		return model.Destination{}, fmt.Errorf("failed to load destination by iata: %w", err)
	}
	return destinationDB.ToDomain(), nil
}

// StoreQuestion inserts q unless a question with the same text exists.
func (r *Repository) StoreQuestion(ctx context.Context, q model.Question) (model.QuestionID, bool, error) {
	query := `
		WITH ins AS (
			INSERT INTO questions (text, category)
			VALUES ($1, $2)
			ON CONFLICT (text) DO NOTHING
			RETURNING id
		)
		SELECT id, true AS created FROM ins
		UNION ALL
		SELECT id, false AS created FROM questions
		WHERE text = $1 AND NOT EXISTS (SELECT 1 FROM ins)
	`

	var stored storedDTO
	if err := r.db.GetContext(ctx, &stored, query, q.Text, string(q.Category)); err != nil {
		return 0, false, fmt.Errorf("failed to store question: %w", err)
	}
	return stored.ID, stored.Created, nil
}

// StoreDestination inserts d unless a destination with the same name exists.
func (r *Repository) StoreDestination(ctx context.Context, d model.Destination) (model.DestinationID, bool, error) {
	destinationDB := DestinationFromDomain(d)

	query := `
		WITH ins AS (
			INSERT INTO destinations (name, iata_code, country, attributes)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name) DO NOTHING
			RETURNING id
		)
		SELECT id, true AS created FROM ins
		UNION ALL
		SELECT id, false AS created FROM destinations
		WHERE name = $1 AND NOT EXISTS (SELECT 1 FROM ins)
	`

	var stored storedDTO
	err := r.db.GetContext(ctx, &stored, query,
		destinationDB.Name,
		destinationDB.IATACode,
		destinationDB.Country,
		destinationDB.Attributes,
	)
	if err != nil {
		return 0, false, fmt.Errorf("failed to store destination: %w", err)
	}
	return stored.ID, stored.Created, nil
}
