package usecase_room

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meulencv/wenomadus/internal/model"
)

var (
	ErrCodeConflict     = errors.New("code conflict")
	ErrRoomsUnavailable = errors.New("no available rooms")
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("no such resource")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotOwner         = errors.New("not a room owner")
	ErrRoomCompleted    = errors.New("room already completed")
)

// CodeAlphabet has no 0/O or 1/I so codes survive being read aloud.
const CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const maxNameLength = 64

//go:generate mockery --name=RoomRepository --output=./mocks/room/repository --filename=repository.go
type RoomRepository interface {
	CreateAndBook(ctx context.Context, room model.Room) error
	ByCode(ctx context.Context, code string) (model.Room, error)
	IsOwner(ctx context.Context, code string, ownerID uuid.UUID) (bool, error)
	DeleteByCode(ctx context.Context, code string) error
	AddParticipant(ctx context.Context, p model.Participant) error
	Participants(ctx context.Context, roomID uuid.UUID) ([]model.Participant, error)
	Status(ctx context.Context, roomID uuid.UUID) (model.RoomStatus, error)
}

type Metrics interface {
	RoomCreated()
}

type Usecase struct {
	RoomRepository RoomRepository

	codeLength  int
	joinBaseURL string
	metrics     Metrics
	logger      *slog.Logger
}

type Option func(*Usecase)

func WithCodeLength(n int) Option {
	return func(u *Usecase) {
		if n > 0 {
			u.codeLength = n
		}
	}
}

func WithJoinBaseURL(url string) Option {
	return func(u *Usecase) {
		u.joinBaseURL = url
	}
}

func WithMetrics(m Metrics) Option {
	return func(u *Usecase) {
		u.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(RoomRepository RoomRepository, opts ...Option) *Usecase {
	u := &Usecase{
		RoomRepository: RoomRepository,
		codeLength:     6,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Book creates a room. The returned AdminID is the owner token a client
// must present for 'owner ops'.
func (u *Usecase) Book(ctx context.Context) (model.Room, error) {
	adminID := uuid.New()

	room, err := u.createRoom(ctx, adminID)
	if err != nil {
		return model.Room{}, err
	}
	if u.metrics != nil {
		u.metrics.RoomCreated()
	}
	return room, nil
}

// Assuming that codes can conflict.
// Retrying...
func (u *Usecase) createRoom(ctx context.Context, adminID uuid.UUID) (model.Room, error) {
	var retries = 3
	for retries > 0 {
		code, err := u.buildRoomCode()
		if err != nil {
			return model.Room{}, errors.Join(ErrInternal, err)
		}
		room := model.Room{
			ID:        uuid.New(),
			Code:      code,
			AdminID:   adminID,
			CreatedAt: time.Now().UTC(),
		}
		if err := u.RoomRepository.CreateAndBook(ctx, room); err != nil {
			if errors.Is(err, ErrCodeConflict) {
				u.logger.Warn("room code conflict", slog.String("code", code))
				retries--
				continue
			}
			return model.Room{}, errors.Join(ErrInternal, err)
		}
		return room, nil
	}
	return model.Room{}, ErrRoomsUnavailable
}

func (u *Usecase) buildRoomCode() (string, error) {
	var builder strings.Builder
	builder.Grow(u.codeLength)

	alphabetLen := big.NewInt(int64(len(CodeAlphabet)))
	for range u.codeLength {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		builder.WriteByte(CodeAlphabet[n.Int64()])
	}

	return builder.String(), nil
}

func (u *Usecase) JoinURL(code string) string {
	return u.joinBaseURL + code
}

// NormalizeCode upper-cases the code so that typed-in codes match.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (u *Usecase) Room(ctx context.Context, code string) (model.Room, error) {
	room, err := u.RoomRepository.ByCode(ctx, NormalizeCode(code))
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Room{}, ErrResourceNotFound
		}
		return model.Room{}, errors.Join(ErrInternal, err)
	}
	return room, nil
}

func (u *Usecase) Join(ctx context.Context, code string, name string) (model.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return model.Participant{}, fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidInput, maxNameLength)
	}

	room, err := u.Room(ctx, code)
	if err != nil {
		return model.Participant{}, err
	}
	if room.IsCompleted {
		return model.Participant{}, ErrRoomCompleted
	}

	p := model.Participant{
		ID:       uuid.New(),
		RoomID:   room.ID,
		Name:     name,
		JoinedAt: time.Now().UTC(),
	}
	if err := u.RoomRepository.AddParticipant(ctx, p); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Participant{}, ErrResourceNotFound
		}
		return model.Participant{}, errors.Join(ErrInternal, err)
	}
	return p, nil
}

func (u *Usecase) Participants(ctx context.Context, code string) ([]model.Participant, error) {
	room, err := u.Room(ctx, code)
	if err != nil {
		return nil, err
	}

	participants, err := u.RoomRepository.Participants(ctx, room.ID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return participants, nil
}

// Status reports the room completed only once every participant has
// submitted responses.
func (u *Usecase) Status(ctx context.Context, code string) (model.RoomStatus, error) {
	room, err := u.Room(ctx, code)
	if err != nil {
		return model.RoomStatus{}, err
	}

	status, err := u.RoomRepository.Status(ctx, room.ID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.RoomStatus{}, ErrResourceNotFound
		}
		return model.RoomStatus{}, errors.Join(ErrInternal, err)
	}
	return status, nil
}

func (u *Usecase) IsOwner(ctx context.Context, code string, ownerID string) (bool, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return false, fmt.Errorf("%w: malformed owner token", ErrInvalidInput)
	}

	isOwner, err := u.RoomRepository.IsOwner(ctx, NormalizeCode(code), ownerUUID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return false, ErrResourceNotFound
		}
		return false, errors.Join(ErrInternal, err)
	}

	return isOwner, nil
}

// Free deletes the room with its participants and their responses.
func (u *Usecase) Free(ctx context.Context, code string, ownerID string) error {
	isOwner, err := u.IsOwner(ctx, code, ownerID)
	if err != nil {
		return err
	}
	if !isOwner {
		return ErrNotOwner
	}

	if err := u.RoomRepository.DeleteByCode(ctx, NormalizeCode(code)); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	return nil
}
