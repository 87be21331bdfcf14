package usecase_room

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/meulencv/wenomadus/internal/model"
	repo_mocks "github.com/meulencv/wenomadus/internal/usecase/room/mocks/room/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseRoomUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase  *Usecase
	roomRepo *repo_mocks.RoomRepository
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	roomRepo := repo_mocks.NewRoomRepository(t)
	usecase := New(roomRepo, WithJoinBaseURL("https://wenomad.us/join/"))

	return &resources{
		roomRepo: roomRepo,
		usecase:  usecase,
		ctx:      context.Background(),
	}
}

func validRoomCode() string {
	return "K7PQ2M"
}

func validRoom() model.Room {
	return model.Room{
		ID:      uuid.New(),
		Code:    validRoomCode(),
		AdminID: uuid.New(),
	}
}

func (suite *UsecaseRoomUnitSuite) TestBook(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name: "Should book room successfully",
			setupMocks: func(r *resources) {
				r.roomRepo.On("CreateAndBook", r.ctx, mock.AnythingOfType("model.Room")).
					Return(nil).Once()
			},
			expectError: false,
		},
		{
			name: "Should retry on a code conflict",
			setupMocks: func(r *resources) {
				r.roomRepo.On("CreateAndBook", r.ctx, mock.AnythingOfType("model.Room")).
					Return(ErrCodeConflict).Once()
				r.roomRepo.On("CreateAndBook", r.ctx, mock.AnythingOfType("model.Room")).
					Return(nil).Once()
			},
			expectError: false,
		},
		{
			name: "Should give up after three conflicts",
			setupMocks: func(r *resources) {
				r.roomRepo.On("CreateAndBook", r.ctx, mock.AnythingOfType("model.Room")).
					Return(ErrCodeConflict).Times(3)
			},
			expectError:   true,
			expectedError: ErrRoomsUnavailable,
		},
		{
			name: "Should not retry other repository failures",
			setupMocks: func(r *resources) {
				r.roomRepo.On("CreateAndBook", r.ctx, mock.AnythingOfType("model.Room")).
					Return(errors.New("connection reset")).Once()
			},
			expectError:   true,
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			room, err := r.usecase.Book(r.ctx)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Empty(t, room.Code)
			} else {
				assert.NoError(t, err)
				assert.Len(t, room.Code, 6)
				assert.NotEqual(t, uuid.Nil, room.AdminID)
				assert.False(t, room.IsCompleted)
			}
			r.roomRepo.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestBuildRoomCode(t provider.T) {
	t.Parallel()
	u := New(nil, WithCodeLength(8))

	for range 50 {
		code, err := u.buildRoomCode()
		assert.NoError(t, err)
		assert.Len(t, code, 8)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(CodeAlphabet, ch), "unexpected rune %q", ch)
		}
	}
}

func (suite *UsecaseRoomUnitSuite) TestJoinURL(t provider.T) {
	r := initResources(t)
	assert.Equal(t, "https://wenomad.us/join/K7PQ2M", r.usecase.JoinURL("K7PQ2M"))
}

func (suite *UsecaseRoomUnitSuite) TestJoin(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		code          string
		participant   string
		setupMocks    func(r *resources, room model.Room)
		expectedError error
	}{
		{
			name:        "Should add participant to an open room",
			code:        "k7pq2m",
			participant: "  Ana ",
			setupMocks: func(r *resources, room model.Room) {
				r.roomRepo.On("ByCode", r.ctx, validRoomCode()).Return(room, nil).Once()
				r.roomRepo.On("AddParticipant", r.ctx, mock.MatchedBy(func(p model.Participant) bool {
					return p.Name == "Ana" && p.RoomID == room.ID && !p.HasCompleted
				})).Return(nil).Once()
			},
		},
		{
			name:          "Should reject an empty name",
			code:          validRoomCode(),
			participant:   "   ",
			setupMocks:    func(r *resources, room model.Room) {},
			expectedError: ErrInvalidInput,
		},
		{
			name:        "Should report unknown room",
			code:        validRoomCode(),
			participant: "Luis",
			setupMocks: func(r *resources, room model.Room) {
				r.roomRepo.On("ByCode", r.ctx, validRoomCode()).Return(model.Room{}, ErrResourceNotFound).Once()
			},
			expectedError: ErrResourceNotFound,
		},
		{
			name:        "Should refuse to join a completed room",
			code:        validRoomCode(),
			participant: "Luis",
			setupMocks: func(r *resources, room model.Room) {
				room.IsCompleted = true
				r.roomRepo.On("ByCode", r.ctx, validRoomCode()).Return(room, nil).Once()
			},
			expectedError: ErrRoomCompleted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			room := validRoom()
			tc.setupMocks(r, room)

			p, err := r.usecase.Join(r.ctx, tc.code, tc.participant)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, room.ID, p.RoomID)
				assert.NotEqual(t, uuid.Nil, p.ID)
			}
			r.roomRepo.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestStatus(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources, room model.Room)
		expected      model.RoomStatus
		expectedError error
	}{
		{
			name: "Should return status successfully",
			setupMocks: func(r *resources, room model.Room) {
				r.roomRepo.On("ByCode", r.ctx, room.Code).Return(room, nil).Once()
				r.roomRepo.On("Status", r.ctx, room.ID).Return(model.RoomStatus{
					Completed:             false,
					TotalParticipants:     3,
					CompletedParticipants: 2,
				}, nil).Once()
			},
			expected: model.RoomStatus{TotalParticipants: 3, CompletedParticipants: 2},
		},
		{
			name: "Should return error when room is missing",
			setupMocks: func(r *resources, room model.Room) {
				r.roomRepo.On("ByCode", r.ctx, room.Code).Return(model.Room{}, ErrResourceNotFound).Once()
			},
			expectedError: ErrResourceNotFound,
		},
		{
			name: "Should wrap unexpected repository failures",
			setupMocks: func(r *resources, room model.Room) {
				r.roomRepo.On("ByCode", r.ctx, room.Code).Return(room, nil).Once()
				r.roomRepo.On("Status", r.ctx, room.ID).Return(model.RoomStatus{}, errors.New("timeout")).Once()
			},
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			room := validRoom()
			tc.setupMocks(r, room)

			result, err := r.usecase.Status(r.ctx, room.Code)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expected, result)
			r.roomRepo.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestFree(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		ownerID       string
		setupMocks    func(r *resources, code string, ownerID string)
		expectedError error
	}{
		{
			name:    "Should free room successfully",
			ownerID: uuid.New().String(),
			setupMocks: func(r *resources, code string, ownerID string) {
				r.roomRepo.On("IsOwner", r.ctx, code, uuid.MustParse(ownerID)).Return(true, nil).Once()
				r.roomRepo.On("DeleteByCode", r.ctx, code).Return(nil).Once()
			},
		},
		{
			name:    "Should refuse when caller is not the owner",
			ownerID: uuid.New().String(),
			setupMocks: func(r *resources, code string, ownerID string) {
				r.roomRepo.On("IsOwner", r.ctx, code, uuid.MustParse(ownerID)).Return(false, nil).Once()
			},
			expectedError: ErrNotOwner,
		},
		{
			name:          "Should reject a malformed owner token",
			ownerID:       "not-a-uuid",
			setupMocks:    func(r *resources, code string, ownerID string) {},
			expectedError: ErrInvalidInput,
		},
		{
			name:    "Should return error when repository fails",
			ownerID: uuid.New().String(),
			setupMocks: func(r *resources, code string, ownerID string) {
				r.roomRepo.On("IsOwner", r.ctx, code, uuid.MustParse(ownerID)).Return(true, nil).Once()
				r.roomRepo.On("DeleteByCode", r.ctx, code).Return(ErrResourceNotFound).Once()
			},
			expectedError: ErrResourceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			code := validRoomCode()
			tc.setupMocks(r, code, tc.ownerID)

			err := r.usecase.Free(r.ctx, code, tc.ownerID)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			r.roomRepo.AssertExpectations(t)
		})
	}
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRoomUnitSuite))
}
