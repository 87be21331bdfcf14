package infra_postgres_vote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/meulencv/wenomadus/internal/model"
	usecase_vote "github.com/meulencv/wenomadus/internal/usecase/vote"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type progressDTO struct {
	Total     int `db:"total"`
	Completed int `db:"completed"`
}

// ReplaceResponses overwrites the participant's answers and marks it
// completed. AllCompleted is true only for the submission that completes
// the room: a resubmission after everyone finished reports false.
func (d *Driver) ReplaceResponses(ctx context.Context, roomID uuid.UUID, participantID uuid.UUID, answers map[model.QuestionID]bool) (model.SubmitResult, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.SubmitResult{}, err
	}
	defer func() { _ = tx.Rollback() }()

	// The room row lock serializes submissions of one room, so the progress
	// count below sees every earlier submission and the commit of the
	// recommendation.
	var roomCompleted bool
	lockRoomQuery := `
		SELECT is_completed
		FROM rooms
		WHERE id = $1
		FOR UPDATE
	`

	err = tx.GetContext(ctx, &roomCompleted, lockRoomQuery, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.SubmitResult{}, usecase_vote.ErrResourceNotFound
		}
		return model.SubmitResult{}, fmt.Errorf("lock room: %w", err)
	}
	if roomCompleted {
		return model.SubmitResult{}, usecase_vote.ErrRoomCompleted
	}

	var hasCompleted bool
	checkParticipantQuery := `
		SELECT has_completed
		FROM participants
		WHERE id = $1 AND room_id = $2
		FOR UPDATE
	`

	err = tx.GetContext(ctx, &hasCompleted, checkParticipantQuery, participantID, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.SubmitResult{}, usecase_vote.ErrResourceNotFound
		}
		return model.SubmitResult{}, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM responses WHERE participant_id = $1`, participantID); err != nil {
		return model.SubmitResult{}, fmt.Errorf("clear responses: %w", err)
	}

	if err := d.insertResponses(ctx, tx, participantID, answers); err != nil {
		return model.SubmitResult{}, err
	}

	updateCompletedQuery := `
		UPDATE participants
		SET has_completed = true
		WHERE id = $1
	`

	if _, err := tx.ExecContext(ctx, updateCompletedQuery, participantID); err != nil {
		return model.SubmitResult{}, err
	}

	var progress progressDTO
	progressQuery := `
		SELECT
			COUNT(id) AS total,
			COUNT(id) FILTER (WHERE has_completed) AS completed
		FROM participants
		WHERE room_id = $1
	`

	if err := tx.GetContext(ctx, &progress, progressQuery, roomID); err != nil {
		return model.SubmitResult{}, fmt.Errorf("count progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.SubmitResult{}, err
	}

	return model.SubmitResult{
		Accepted:     len(answers),
		AllCompleted: !hasCompleted && progress.Total > 0 && progress.Completed == progress.Total,
	}, nil
}

func (d *Driver) insertResponses(ctx context.Context, tx *sqlx.Tx, participantID uuid.UUID, answers map[model.QuestionID]bool) error {
	ids := make([]model.QuestionID, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	insertQuery := `
		INSERT INTO responses (id, participant_id, question_id, answer)
		VALUES ($1, $2, $3, $4)
	`

	for _, questionID := range ids {
		_, err := tx.ExecContext(ctx, insertQuery, uuid.New(), participantID, questionID, answers[questionID])
		if err != nil {
			return fmt.Errorf("insert response %d: %w", questionID, err)
		}
	}
	return nil
}
