package infra_postgres_room

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/meulencv/wenomadus/internal/model"
)

type roomDTO struct {
	ID                     uuid.UUID      `db:"id"`
	IDAdmin                uuid.UUID      `db:"id_admin"`
	Code                   string         `db:"code"`
	CreatedAt              time.Time      `db:"created_at"`
	IsCompleted            bool           `db:"is_completed"`
	RecommendedDestination sql.NullString `db:"recommended_destination"`
}

func (r roomDTO) toDomain() model.Room {
	room := model.Room{
		ID:          r.ID,
		Code:        r.Code,
		CreatedAt:   r.CreatedAt,
		AdminID:     r.IDAdmin,
		IsCompleted: r.IsCompleted,
	}
	if r.RecommendedDestination.Valid {
		dest := r.RecommendedDestination.String
		room.RecommendedDestination = &dest
	}
	return room
}

type participantDTO struct {
	ID           uuid.UUID `db:"id"`
	RoomID       uuid.UUID `db:"room_id"`
	Name         string    `db:"name"`
	HasCompleted bool      `db:"has_completed"`
	JoinedAt     time.Time `db:"joined_at"`
}

func (p participantDTO) toDomain() model.Participant {
	return model.Participant{
		ID:           p.ID,
		RoomID:       p.RoomID,
		Name:         p.Name,
		HasCompleted: p.HasCompleted,
		JoinedAt:     p.JoinedAt,
	}
}

type responseDTO struct {
	ParticipantID uuid.UUID        `db:"participant_id"`
	QuestionID    model.QuestionID `db:"question_id"`
	Answer        bool             `db:"answer"`
}

type statusDTO struct {
	IsCompleted           bool `db:"is_completed"`
	TotalParticipants     int  `db:"total_participants"`
	CompletedParticipants int  `db:"completed_participants"`
}
