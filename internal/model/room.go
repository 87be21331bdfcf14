package model

import (
	"time"

	"github.com/google/uuid"
)

type RoomID = uuid.UUID

type ParticipantID = uuid.UUID

// Room is a group of participants answering the question catalog together.
// IsCompleted flips to true once, when the recommendation is committed.
type Room struct {
	ID                     RoomID
	Code                   string
	CreatedAt              time.Time
	AdminID                uuid.UUID
	IsCompleted            bool
	RecommendedDestination *string
}

type Participant struct {
	ID           ParticipantID
	RoomID       RoomID
	Name         string
	HasCompleted bool
	JoinedAt     time.Time
}

type RoomStatus struct {
	Completed             bool `json:"completed"`
	TotalParticipants     int  `json:"total_participants"`
	CompletedParticipants int  `json:"completed_participants"`
}

// ParticipantAnswers is a participant together with its live responses.
type ParticipantAnswers struct {
	Participant Participant
	Answers     map[QuestionID]bool
}

// RoomSnapshot is everything needed to aggregate a room's preferences.
type RoomSnapshot struct {
	Room         Room
	Participants []ParticipantAnswers
}
