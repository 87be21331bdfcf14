package infra_postgres_room

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/meulencv/wenomadus/internal/model"
	usecase_recommendation "github.com/meulencv/wenomadus/internal/usecase/recommendation"
	usecase_room "github.com/meulencv/wenomadus/internal/usecase/room"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

const roomColumns = `id, id_admin, code, created_at, is_completed, recommended_destination`

func (d *Driver) CreateAndBook(ctx context.Context, room model.Room) error {
	dto := roomDTO{
		ID:        room.ID,
		IDAdmin:   room.AdminID,
		Code:      room.Code,
		CreatedAt: room.CreatedAt,
	}

	query := `
		INSERT INTO rooms (id, id_admin, code, created_at)
		VALUES (:id, :id_admin, :code, :created_at)
	`

	_, err := d.db.NamedExecContext(ctx, query, dto)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return usecase_room.ErrCodeConflict
		}
		return err
	}
	return nil
}

func (d *Driver) ByCode(ctx context.Context, code string) (model.Room, error) {
	var room roomDTO

	query := `SELECT ` + roomColumns + ` FROM rooms WHERE code = $1`

	if err := d.db.GetContext(ctx, &room, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Room{}, usecase_room.ErrResourceNotFound
		}
		return model.Room{}, err
	}
	return room.toDomain(), nil
}

func (d *Driver) IsOwner(ctx context.Context, code string, ownerID uuid.UUID) (bool, error) {
	var admin uuid.UUID

	query := `
        SELECT id_admin
        FROM rooms
        WHERE code = $1
    `

	err := d.db.GetContext(ctx, &admin, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, usecase_room.ErrResourceNotFound
		}
		return false, err
	}

	return admin == ownerID, nil
}

// DeleteByCode removes the room. Participants and responses go with it.
func (d *Driver) DeleteByCode(ctx context.Context, code string) error {
	query := `
        DELETE FROM rooms
        WHERE code = $1
    `

	result, err := d.db.ExecContext(ctx, query, code)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return usecase_room.ErrResourceNotFound
	}

	return nil
}

func (d *Driver) AddParticipant(ctx context.Context, p model.Participant) error {
	query := `
		INSERT INTO participants (id, room_id, name, joined_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := d.db.ExecContext(ctx, query, p.ID, p.RoomID, p.Name, p.JoinedAt)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return usecase_room.ErrResourceNotFound
		}
		return err
	}
	return nil
}

func (d *Driver) Participants(ctx context.Context, roomID uuid.UUID) ([]model.Participant, error) {
	var dtos []participantDTO

	query := `
		SELECT id, room_id, name, has_completed, joined_at
		FROM participants
		WHERE room_id = $1
		ORDER BY joined_at, id
	`

	if err := d.db.SelectContext(ctx, &dtos, query, roomID); err != nil {
		return nil, err
	}

	participants := make([]model.Participant, 0, len(dtos))
	for _, p := range dtos {
		participants = append(participants, p.toDomain())
	}
	return participants, nil
}

func (d *Driver) Status(ctx context.Context, roomID uuid.UUID) (model.RoomStatus, error) {
	var status statusDTO

	query := `
		SELECT
			r.is_completed,
			COUNT(p.id) AS total_participants,
			COUNT(p.id) FILTER (WHERE p.has_completed) AS completed_participants
		FROM rooms r
		LEFT JOIN participants p ON p.room_id = r.id
		WHERE r.id = $1
		GROUP BY r.id, r.is_completed
	`

	if err := d.db.GetContext(ctx, &status, query, roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RoomStatus{}, usecase_room.ErrResourceNotFound
		}
		return model.RoomStatus{}, err
	}

	return model.RoomStatus{
		Completed:             status.IsCompleted,
		TotalParticipants:     status.TotalParticipants,
		CompletedParticipants: status.CompletedParticipants,
	}, nil
}

// Snapshot reads the room, its participants and their responses in one
// repeatable-read transaction.
func (d *Driver) Snapshot(ctx context.Context, roomID uuid.UUID) (model.RoomSnapshot, error) {
	tx, err := d.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return model.RoomSnapshot{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var room roomDTO
	if err := tx.GetContext(ctx, &room, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RoomSnapshot{}, usecase_room.ErrResourceNotFound
		}
		return model.RoomSnapshot{}, err
	}

	var participants []participantDTO
	participantsQuery := `
		SELECT id, room_id, name, has_completed, joined_at
		FROM participants
		WHERE room_id = $1
		ORDER BY joined_at, id
	`
	if err := tx.SelectContext(ctx, &participants, participantsQuery, roomID); err != nil {
		return model.RoomSnapshot{}, err
	}

	var responses []responseDTO
	responsesQuery := `
		SELECT r.participant_id, r.question_id, r.answer
		FROM responses r
		JOIN participants p ON p.id = r.participant_id
		WHERE p.room_id = $1
	`
	if err := tx.SelectContext(ctx, &responses, responsesQuery, roomID); err != nil {
		return model.RoomSnapshot{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.RoomSnapshot{}, err
	}

	answers := make(map[uuid.UUID]map[model.QuestionID]bool, len(participants))
	for _, r := range responses {
		if answers[r.ParticipantID] == nil {
			answers[r.ParticipantID] = make(map[model.QuestionID]bool)
		}
		answers[r.ParticipantID][r.QuestionID] = r.Answer
	}

	snapshot := model.RoomSnapshot{
		Room:         room.toDomain(),
		Participants: make([]model.ParticipantAnswers, 0, len(participants)),
	}
	for _, p := range participants {
		pa := answers[p.ID]
		if pa == nil {
			pa = map[model.QuestionID]bool{}
		}
		snapshot.Participants = append(snapshot.Participants, model.ParticipantAnswers{
			Participant: p.toDomain(),
			Answers:     pa,
		})
	}
	return snapshot, nil
}

// CommitRecommendation flips the room to completed exactly once.
func (d *Driver) CommitRecommendation(ctx context.Context, roomID uuid.UUID, destination string) error {
	query := `
		UPDATE rooms
		SET is_completed = true, recommended_destination = $2
		WHERE id = $1 AND is_completed = false
	`

	result, err := d.db.ExecContext(ctx, query, roomID, destination)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return usecase_recommendation.ErrConcurrentMutation
	}
	return nil
}

func pgCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	// sqlmock and wrapped drivers only keep the message.
	msg := err.Error()
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") {
		return pgUniqueViolation
	}
	if strings.Contains(msg, "foreign key constraint") {
		return pgForeignKeyViolation
	}
	return ""
}
