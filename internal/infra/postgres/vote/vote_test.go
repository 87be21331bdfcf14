package infra_postgres_vote

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/meulencv/wenomadus/internal/model"
	usecase_vote "github.com/meulencv/wenomadus/internal/usecase/vote"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type VoteInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	db            *sqlx.DB
	mock          sqlmock.Sqlmock
	driver        *Driver
	ctx           context.Context
	roomID        uuid.UUID
	participantID uuid.UUID
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	driver := New(sqlxDB)

	return &resources{
		db:            sqlxDB,
		mock:          mock,
		driver:        driver,
		ctx:           context.Background(),
		roomID:        uuid.New(),
		participantID: uuid.New(),
	}
}

func (r *resources) expectRoomLock(completed bool) {
	r.mock.ExpectQuery("SELECT is_completed FROM rooms WHERE id = \\$1 FOR UPDATE").
		WithArgs(r.roomID).
		WillReturnRows(sqlmock.NewRows([]string{"is_completed"}).AddRow(completed))
}

func (r *resources) expectReplace(hasCompleted bool, total, completed int) {
	r.mock.ExpectBegin()
	r.expectRoomLock(false)
	r.mock.ExpectQuery("SELECT has_completed").
		WithArgs(r.participantID, r.roomID).
		WillReturnRows(sqlmock.NewRows([]string{"has_completed"}).AddRow(hasCompleted))
	r.mock.ExpectExec("DELETE FROM responses").
		WithArgs(r.participantID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	r.mock.ExpectExec("INSERT INTO responses").
		WithArgs(sqlmock.AnyArg(), r.participantID, int64(1), true).
		WillReturnResult(sqlmock.NewResult(1, 1))
	r.mock.ExpectExec("INSERT INTO responses").
		WithArgs(sqlmock.AnyArg(), r.participantID, int64(2), false).
		WillReturnResult(sqlmock.NewResult(1, 1))
	r.mock.ExpectExec("UPDATE participants").
		WithArgs(r.participantID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	r.mock.ExpectQuery("FROM participants").
		WithArgs(r.roomID).
		WillReturnRows(sqlmock.NewRows([]string{"total", "completed"}).AddRow(total, completed))
	r.mock.ExpectCommit()
}

func (s *VoteInfraUnitSuite) TestReplaceResponses(t provider.T) {
	t.Parallel()

	answers := map[model.QuestionID]bool{2: false, 1: true}

	testCases := []struct {
		name       string
		setupMocks func(r *resources)
		expected   model.SubmitResult
	}{
		{
			name: "Should report the last submission completing the room",
			setupMocks: func(r *resources) {
				r.expectReplace(false, 2, 2)
			},
			expected: model.SubmitResult{Accepted: 2, AllCompleted: true},
		},
		{
			name: "Should not complete while others are pending",
			setupMocks: func(r *resources) {
				r.expectReplace(false, 3, 2)
			},
			expected: model.SubmitResult{Accepted: 2},
		},
		{
			name: "Should not report completion twice on resubmission",
			setupMocks: func(r *resources) {
				r.expectReplace(true, 2, 2)
			},
			expected: model.SubmitResult{Accepted: 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			res, err := r.driver.ReplaceResponses(r.ctx, r.roomID, r.participantID, answers)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, res)
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (s *VoteInfraUnitSuite) TestReplaceResponsesUnknownParticipant(t provider.T) {
	r := initResources(t)
	r.mock.ExpectBegin()
	r.expectRoomLock(false)
	r.mock.ExpectQuery("SELECT has_completed").
		WithArgs(r.participantID, r.roomID).
		WillReturnRows(sqlmock.NewRows([]string{"has_completed"}))
	r.mock.ExpectRollback()

	_, err := r.driver.ReplaceResponses(r.ctx, r.roomID, r.participantID, map[model.QuestionID]bool{1: true})

	assert.ErrorIs(t, err, usecase_vote.ErrResourceNotFound)
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func (s *VoteInfraUnitSuite) TestReplaceResponsesRollsBack(t provider.T) {
	r := initResources(t)
	r.mock.ExpectBegin()
	r.expectRoomLock(false)
	r.mock.ExpectQuery("SELECT has_completed").
		WillReturnRows(sqlmock.NewRows([]string{"has_completed"}).AddRow(false))
	r.mock.ExpectExec("DELETE FROM responses").
		WillReturnResult(sqlmock.NewResult(0, 0))
	r.mock.ExpectExec("INSERT INTO responses").
		WillReturnError(errors.New("foreign key violation"))
	r.mock.ExpectRollback()

	_, err := r.driver.ReplaceResponses(r.ctx, r.roomID, r.participantID, map[model.QuestionID]bool{7: true})

	assert.ErrorContains(t, err, "insert response 7")
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func (s *VoteInfraUnitSuite) TestReplaceResponsesCompletedRoom(t provider.T) {
	r := initResources(t)
	r.mock.ExpectBegin()
	r.expectRoomLock(true)
	r.mock.ExpectRollback()

	_, err := r.driver.ReplaceResponses(r.ctx, r.roomID, r.participantID, map[model.QuestionID]bool{1: true})

	assert.ErrorIs(t, err, usecase_vote.ErrRoomCompleted)
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func (s *VoteInfraUnitSuite) TestReplaceResponsesUnknownRoom(t provider.T) {
	r := initResources(t)
	r.mock.ExpectBegin()
	r.mock.ExpectQuery("SELECT is_completed FROM rooms").
		WithArgs(r.roomID).
		WillReturnRows(sqlmock.NewRows([]string{"is_completed"}))
	r.mock.ExpectRollback()

	_, err := r.driver.ReplaceResponses(r.ctx, r.roomID, r.participantID, map[model.QuestionID]bool{1: true})

	assert.ErrorIs(t, err, usecase_vote.ErrResourceNotFound)
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func TestVoteInfraUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(VoteInfraUnitSuite))
}
