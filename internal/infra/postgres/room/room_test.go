package infra_postgres_room

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/meulencv/wenomadus/internal/model"
	usecase_recommendation "github.com/meulencv/wenomadus/internal/usecase/recommendation"
	usecase_room "github.com/meulencv/wenomadus/internal/usecase/room"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type RoomInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	db     *sqlx.DB
	mock   sqlmock.Sqlmock
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	driver := New(sqlxDB)

	return &resources{
		db:     sqlxDB,
		mock:   mock,
		driver: driver,
		ctx:    context.Background(),
	}
}

var roomColumnNames = []string{"id", "id_admin", "code", "created_at", "is_completed", "recommended_destination"}

func validRoom() model.Room {
	return model.Room{
		ID:        uuid.New(),
		Code:      "ABC234",
		AdminID:   uuid.New(),
		CreatedAt: time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC),
	}
}

func (s *RoomInfraUnitSuite) TestCreateAndBook(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources, room model.Room)
		expectedError error
	}{
		{
			name: "Should insert a new room",
			setupMocks: func(r *resources, room model.Room) {
				r.mock.ExpectExec("INSERT INTO rooms").
					WithArgs(room.ID, room.AdminID, room.Code, room.CreatedAt).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "Should map a unique violation to a code conflict",
			setupMocks: func(r *resources, room model.Room) {
				r.mock.ExpectExec("INSERT INTO rooms").
					WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
			},
			expectedError: usecase_room.ErrCodeConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			room := validRoom()
			tc.setupMocks(r, room)

			err := r.driver.CreateAndBook(r.ctx, room)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (s *RoomInfraUnitSuite) TestByCode(t provider.T) {
	t.Run("Should map the row to a room", func(t provider.T) {
		r := initResources(t)
		room := validRoom()
		r.mock.ExpectQuery("SELECT (.+) FROM rooms WHERE code").
			WithArgs(room.Code).
			WillReturnRows(sqlmock.NewRows(roomColumnNames).
				AddRow(room.ID.String(), room.AdminID.String(), room.Code, room.CreatedAt, true, "Lisboa"))

		got, err := r.driver.ByCode(r.ctx, room.Code)

		require.NoError(t, err)
		assert.Equal(t, room.ID, got.ID)
		assert.Equal(t, room.AdminID, got.AdminID)
		assert.True(t, got.IsCompleted)
		require.NotNil(t, got.RecommendedDestination)
		assert.Equal(t, "Lisboa", *got.RecommendedDestination)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should report a missing room", func(t provider.T) {
		r := initResources(t)
		r.mock.ExpectQuery("SELECT (.+) FROM rooms WHERE code").
			WithArgs("NOPE00").
			WillReturnRows(sqlmock.NewRows(roomColumnNames))

		_, err := r.driver.ByCode(r.ctx, "NOPE00")

		assert.ErrorIs(t, err, usecase_room.ErrResourceNotFound)
	})
}

func (s *RoomInfraUnitSuite) TestIsOwner(t provider.T) {
	r := initResources(t)
	owner := uuid.New()
	r.mock.ExpectQuery("SELECT id_admin").
		WithArgs("ABC234").
		WillReturnRows(sqlmock.NewRows([]string{"id_admin"}).AddRow(owner.String()))
	r.mock.ExpectQuery("SELECT id_admin").
		WithArgs("ABC234").
		WillReturnRows(sqlmock.NewRows([]string{"id_admin"}).AddRow(owner.String()))

	ok, err := r.driver.IsOwner(r.ctx, "ABC234", owner)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.driver.IsOwner(r.ctx, "ABC234", uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func (s *RoomInfraUnitSuite) TestDeleteByCode(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name: "Should delete an existing room",
			setupMocks: func(r *resources) {
				r.mock.ExpectExec("DELETE FROM rooms").
					WithArgs("ABC234").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "Should report a missing room",
			setupMocks: func(r *resources) {
				r.mock.ExpectExec("DELETE FROM rooms").
					WithArgs("ABC234").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: usecase_room.ErrResourceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			err := r.driver.DeleteByCode(r.ctx, "ABC234")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (s *RoomInfraUnitSuite) TestAddParticipant(t provider.T) {
	p := model.Participant{
		ID:       uuid.New(),
		RoomID:   uuid.New(),
		Name:     "Ana",
		JoinedAt: time.Now().UTC(),
	}

	t.Run("Should insert the participant", func(t provider.T) {
		r := initResources(t)
		r.mock.ExpectExec("INSERT INTO participants").
			WithArgs(p.ID, p.RoomID, p.Name, p.JoinedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, r.driver.AddParticipant(r.ctx, p))
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should report a vanished room", func(t provider.T) {
		r := initResources(t)
		r.mock.ExpectExec("INSERT INTO participants").
			WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

		assert.ErrorIs(t, r.driver.AddParticipant(r.ctx, p), usecase_room.ErrResourceNotFound)
	})
}

func (s *RoomInfraUnitSuite) TestStatus(t provider.T) {
	r := initResources(t)
	roomID := uuid.New()
	r.mock.ExpectQuery("SELECT (.+) FROM rooms r").
		WithArgs(roomID).
		WillReturnRows(sqlmock.NewRows([]string{"is_completed", "total_participants", "completed_participants"}).
			AddRow(false, 3, 2))

	status, err := r.driver.Status(r.ctx, roomID)

	require.NoError(t, err)
	assert.Equal(t, model.RoomStatus{TotalParticipants: 3, CompletedParticipants: 2}, status)
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func (s *RoomInfraUnitSuite) TestSnapshot(t provider.T) {
	r := initResources(t)
	room := validRoom()
	p1, p2 := uuid.New(), uuid.New()
	joined := room.CreatedAt.Add(time.Minute)

	r.mock.ExpectBegin()
	r.mock.ExpectQuery("SELECT (.+) FROM rooms WHERE id").
		WithArgs(room.ID).
		WillReturnRows(sqlmock.NewRows(roomColumnNames).
			AddRow(room.ID.String(), room.AdminID.String(), room.Code, room.CreatedAt, false, nil))
	r.mock.ExpectQuery("FROM participants").
		WithArgs(room.ID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "name", "has_completed", "joined_at"}).
			AddRow(p1.String(), room.ID.String(), "P1", true, joined).
			AddRow(p2.String(), room.ID.String(), "P2", false, joined))
	r.mock.ExpectQuery("FROM responses r").
		WithArgs(room.ID).
		WillReturnRows(sqlmock.NewRows([]string{"participant_id", "question_id", "answer"}).
			AddRow(p1.String(), 1, true).
			AddRow(p1.String(), 3, false))
	r.mock.ExpectCommit()

	snapshot, err := r.driver.Snapshot(r.ctx, room.ID)

	require.NoError(t, err)
	assert.Equal(t, room.Code, snapshot.Room.Code)
	assert.Nil(t, snapshot.Room.RecommendedDestination)
	require.Len(t, snapshot.Participants, 2)
	assert.Equal(t, map[model.QuestionID]bool{1: true, 3: false}, snapshot.Participants[0].Answers)
	assert.Empty(t, snapshot.Participants[1].Answers)
	assert.NotNil(t, snapshot.Participants[1].Answers)
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func (s *RoomInfraUnitSuite) TestCommitRecommendation(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources, roomID uuid.UUID)
		expectedError error
	}{
		{
			name: "Should complete an open room",
			setupMocks: func(r *resources, roomID uuid.UUID) {
				r.mock.ExpectExec("UPDATE rooms").
					WithArgs(roomID, "Lisboa").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "Should refuse a second commit",
			setupMocks: func(r *resources, roomID uuid.UUID) {
				r.mock.ExpectExec("UPDATE rooms").
					WithArgs(roomID, "Lisboa").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: usecase_recommendation.ErrConcurrentMutation,
		},
		{
			name: "Should surface driver errors",
			setupMocks: func(r *resources, roomID uuid.UUID) {
				r.mock.ExpectExec("UPDATE rooms").
					WillReturnError(errors.New("connection reset"))
			},
			expectedError: errors.New("connection reset"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			roomID := uuid.New()
			tc.setupMocks(r, roomID)

			err := r.driver.CommitRecommendation(r.ctx, roomID, "Lisboa")

			switch {
			case tc.expectedError == nil:
				assert.NoError(t, err)
			case errors.Is(tc.expectedError, usecase_recommendation.ErrConcurrentMutation):
				assert.ErrorIs(t, err, tc.expectedError)
			default:
				assert.ErrorContains(t, err, tc.expectedError.Error())
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func TestRoomInfraUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(RoomInfraUnitSuite))
}
