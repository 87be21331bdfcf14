package infra_postgres_catalog

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/meulencv/wenomadus/internal/model"
	usecase_catalog "github.com/meulencv/wenomadus/internal/usecase/catalog"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type CatalogInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	db   *sqlx.DB
	mock sqlmock.Sqlmock
	repo *Repository
	ctx  context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	return &resources{
		db:   sqlxDB,
		mock: mock,
		repo: New(sqlxDB),
		ctx:  context.Background(),
	}
}

var destinationColumns = []string{"id", "name", "iata_code", "country", "attributes"}

func (s *CatalogInfraUnitSuite) TestQuestions(t provider.T) {
	r := initResources(t)
	r.mock.ExpectQuery("SELECT id, text, category FROM questions").
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "category"}).
			AddRow(1, "¿Te gusta la playa?", "beach").
			AddRow(2, "¿Te interesa la cultura local?", "culture"))

	questions, err := r.repo.Questions(r.ctx)

	require.NoError(t, err)
	assert.Equal(t, []model.Question{
		{ID: 1, Text: "¿Te gusta la playa?", Category: model.CategoryBeach},
		{ID: 2, Text: "¿Te interesa la cultura local?", Category: model.CategoryCulture},
	}, questions)
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func (s *CatalogInfraUnitSuite) TestDestinations(t provider.T) {
	r := initResources(t)
	r.mock.ExpectQuery("SELECT id, name, iata_code, country, attributes FROM destinations").
		WillReturnRows(sqlmock.NewRows(destinationColumns).
			AddRow(1, "Lisboa", "LIS", "Portugal", "{beach,culture}").
			AddRow(2, "Andorra", nil, "Andorra", "{mountain}"))

	destinations, err := r.repo.Destinations(r.ctx)

	require.NoError(t, err)
	require.Len(t, destinations, 2)
	assert.Equal(t, "LIS", destinations[0].IATACode)
	assert.True(t, destinations[0].Attributes.Has(model.CategoryBeach))
	assert.True(t, destinations[0].Attributes.Has(model.CategoryCulture))
	assert.False(t, destinations[1].Routable())
	assert.True(t, destinations[1].Attributes.Has(model.CategoryMountain))
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func (s *CatalogInfraUnitSuite) TestDestinationByIATA(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectedName  string
		expectedError error
	}{
		{
			name: "Should load the destination",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("FROM destinations WHERE iata_code").
					WithArgs("BCN").
					WillReturnRows(sqlmock.NewRows(destinationColumns).
						AddRow(1, "Barcelona", "BCN", "España", "{beach}"))
			},
			expectedName: "Barcelona",
		},
		{
			name: "Should report a missing destination",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("FROM destinations WHERE iata_code").
					WithArgs("BCN").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: usecase_catalog.ErrResourceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			d, err := r.repo.DestinationByIATA(r.ctx, "BCN")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedName, d.Name)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (s *CatalogInfraUnitSuite) TestStoreQuestion(t provider.T) {
	t.Parallel()

	q := model.Question{Text: "¿Te gusta la playa?", Category: model.CategoryBeach}

	testCases := []struct {
		name            string
		setupMocks      func(r *resources)
		expectedID      model.QuestionID
		expectedCreated bool
		expectError     bool
	}{
		{
			name: "Should insert a new question",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("INSERT INTO questions").
					WithArgs(q.Text, "beach").
					WillReturnRows(sqlmock.NewRows([]string{"id", "created"}).AddRow(7, true))
			},
			expectedID:      7,
			expectedCreated: true,
		},
		{
			name: "Should return the existing question",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("INSERT INTO questions").
					WithArgs(q.Text, "beach").
					WillReturnRows(sqlmock.NewRows([]string{"id", "created"}).AddRow(3, false))
			},
			expectedID: 3,
		},
		{
			name: "Should surface driver errors",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("INSERT INTO questions").
					WillReturnError(errors.New("connection refused"))
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			id, created, err := r.repo.StoreQuestion(r.ctx, q)

			if tc.expectError {
				assert.ErrorContains(t, err, "failed to store question")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedID, id)
				assert.Equal(t, tc.expectedCreated, created)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (s *CatalogInfraUnitSuite) TestStoreDestination(t provider.T) {
	r := initResources(t)
	d := model.Destination{
		Name:       "Andorra",
		Country:    "Andorra",
		Attributes: model.NewCategorySet(model.CategoryMountain, model.CategoryLowTourism),
	}
	r.mock.ExpectQuery("INSERT INTO destinations").
		WithArgs("Andorra", sql.NullString{}, "Andorra", pq.StringArray(d.Attributes.Slice())).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created"}).AddRow(6, true))

	id, created, err := r.repo.StoreDestination(r.ctx, d)

	require.NoError(t, err)
	assert.Equal(t, model.DestinationID(6), id)
	assert.True(t, created)
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func TestCatalogInfraUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(CatalogInfraUnitSuite))
}
