package usecase_vote

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/meulencv/wenomadus/internal/model"
	usecase_room "github.com/meulencv/wenomadus/internal/usecase/room"
)

var (
	ErrUnableToSaveVotes = errors.New("unable to save responses")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnknownQuestion   = errors.New("unknown question")
	ErrResourceNotFound  = usecase_room.ErrResourceNotFound
	ErrRoomCompleted     = usecase_room.ErrRoomCompleted
)

//go:generate mockery --name=VoteRepository --output=./mocks/vote/repository --filename=repository.go
type VoteRepository interface {
	// ReplaceResponses drops every previous response of the participant and
	// stores answers in one transaction, then marks the participant completed.
	ReplaceResponses(ctx context.Context, roomID uuid.UUID, participantID uuid.UUID, answers map[model.QuestionID]bool) (model.SubmitResult, error)
}

//go:generate mockery --name=RoomReader --output=./mocks/vote/room --filename=room.go
type RoomReader interface {
	ByCode(ctx context.Context, code string) (model.Room, error)
}

//go:generate mockery --name=QuestionReader --output=./mocks/vote/question --filename=question.go
type QuestionReader interface {
	Questions(ctx context.Context) ([]model.Question, error)
}

type Usecase struct {
	voteRepository VoteRepository
	rooms          RoomReader
	questions      QuestionReader
}

func New(
	r VoteRepository,
	rooms RoomReader,
	questions QuestionReader,
) *Usecase {
	return &Usecase{
		voteRepository: r,
		rooms:          rooms,
		questions:      questions,
	}
}

// Vote replaces the participant's answers with the given set.
// AllCompleted in the result reports whether this submission was the last
// one the room was waiting for.
func (u *Usecase) Vote(ctx context.Context, code string, participantID string, answers map[model.QuestionID]bool) (model.SubmitResult, error) {
	pID, err := uuid.Parse(participantID)
	if err != nil {
		return model.SubmitResult{}, fmt.Errorf("%w: malformed participant id", ErrInvalidInput)
	}
	if len(answers) == 0 {
		return model.SubmitResult{}, fmt.Errorf("%w: no answers", ErrInvalidInput)
	}

	room, err := u.rooms.ByCode(ctx, usecase_room.NormalizeCode(code))
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.SubmitResult{}, ErrResourceNotFound
		}
		return model.SubmitResult{}, fmt.Errorf("%w: %w", ErrUnableToSaveVotes, err)
	}
	if room.IsCompleted {
		return model.SubmitResult{}, ErrRoomCompleted
	}

	if err := u.checkQuestions(ctx, answers); err != nil {
		return model.SubmitResult{}, err
	}

	res, err := u.voteRepository.ReplaceResponses(ctx, room.ID, pID, answers)
	if err != nil {
		switch {
		case errors.Is(err, ErrResourceNotFound):
			return model.SubmitResult{}, ErrResourceNotFound
		case errors.Is(err, ErrRoomCompleted):
			return model.SubmitResult{}, ErrRoomCompleted
		}
		return model.SubmitResult{}, fmt.Errorf("%w: %w", ErrUnableToSaveVotes, err)
	}

	return res, nil
}

func (u *Usecase) checkQuestions(ctx context.Context, answers map[model.QuestionID]bool) error {
	questions, err := u.questions.Questions(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnableToSaveVotes, err)
	}

	known := make(map[model.QuestionID]struct{}, len(questions))
	for _, q := range questions {
		known[q.ID] = struct{}{}
	}
	for qID := range answers {
		if _, ok := known[qID]; !ok {
			return fmt.Errorf("%w: %d", ErrUnknownQuestion, qID)
		}
	}
	return nil
}
