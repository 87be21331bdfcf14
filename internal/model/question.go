package model

import "github.com/google/uuid"

type QuestionID = int64

type Question struct {
	ID       QuestionID `json:"id"`
	Text     string     `json:"text"`
	Category Category   `json:"category"`
}

type Response struct {
	ID            uuid.UUID
	ParticipantID ParticipantID
	QuestionID    QuestionID
	Answer        bool
}

type SubmitResult struct {
	AllCompleted bool `json:"all_completed"`
	Accepted     int  `json:"accepted"`
}
