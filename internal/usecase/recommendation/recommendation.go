package usecase_recommendation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/meulencv/wenomadus/internal/model"
	"github.com/meulencv/wenomadus/internal/service/destination_matcher"
	"github.com/meulencv/wenomadus/internal/service/preference_aggregator"
	usecase_room "github.com/meulencv/wenomadus/internal/usecase/room"
)

var (
	ErrConcurrentMutation = errors.New("room recommendation already committed or in progress")
	ErrNotComputed        = errors.New("recommendation not computed yet")
	ErrInternal           = errors.New("internal error")
	ErrRoomNotFound       = usecase_room.ErrResourceNotFound
)

const (
	OutcomeCommitted  = "committed"
	OutcomeConcurrent = "concurrent"
	OutcomeNoData     = "no_data"
	OutcomeNoMatches  = "no_matches"
	OutcomeFailed     = "failed"
)

//go:generate mockery --name=RoomRepository --output=./mocks/recommendation/room --filename=room.go
type RoomRepository interface {
	ByCode(ctx context.Context, code string) (model.Room, error)
	Snapshot(ctx context.Context, roomID uuid.UUID) (model.RoomSnapshot, error)
	// CommitRecommendation sets the destination and the completion flag.
	// It fails with ErrConcurrentMutation when the room is already completed.
	CommitRecommendation(ctx context.Context, roomID uuid.UUID, destination string) error
}

//go:generate mockery --name=Catalog --output=./mocks/recommendation/catalog --filename=catalog.go
type Catalog interface {
	Questions(ctx context.Context) ([]model.Question, error)
	Destinations(ctx context.Context) ([]model.Destination, error)
}

//go:generate mockery --name=FlightSearcher --output=./mocks/recommendation/flights --filename=flights.go
type FlightSearcher interface {
	Complete(ctx context.Context, req model.SearchRequest) (*model.FlightSearchResult, error)
}

//go:generate mockery --name=RoomLocker --output=./mocks/recommendation/locker --filename=locker.go
type RoomLocker interface {
	// Acquire returns ok=false when another holder owns the room.
	Acquire(roomID uuid.UUID) (token string, ok bool, err error)
	Release(roomID uuid.UUID, token string) error
}

//go:generate mockery --name=Cache --output=./mocks/recommendation/cache --filename=cache.go
type Cache interface {
	Store(roomID uuid.UUID, rec *model.Recommendation) error
	// Load returns nil without error on a miss.
	Load(roomID uuid.UUID) (*model.Recommendation, error)
}

type Notifier interface {
	RecommendationReady(code string, rec *model.Recommendation)
}

type Metrics interface {
	Recommendation(outcome string)
}

// Policy fixes where and when the flight search for a recommendation goes.
type Policy struct {
	HomeOrigin     string
	DateOffsetDays int
	Adults         int
}

type Usecase struct {
	rooms      RoomRepository
	catalog    Catalog
	flights    FlightSearcher
	locker     RoomLocker
	cache      Cache
	aggregator *preference_aggregator.Aggregator
	matcher    *destination_matcher.Matcher
	policy     Policy

	notifier Notifier
	metrics  Metrics
	now      func() time.Time
	logger   *slog.Logger
}

type Option func(*Usecase)

func WithNotifier(n Notifier) Option {
	return func(u *Usecase) {
		u.notifier = n
	}
}

func WithMetrics(m Metrics) Option {
	return func(u *Usecase) {
		u.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	rooms RoomRepository,
	catalog Catalog,
	flights FlightSearcher,
	locker RoomLocker,
	cache Cache,
	aggregator *preference_aggregator.Aggregator,
	matcher *destination_matcher.Matcher,
	policy Policy,
	opts ...Option,
) *Usecase {
	if policy.Adults <= 0 {
		policy.Adults = 1
	}
	u := &Usecase{
		rooms:      rooms,
		catalog:    catalog,
		flights:    flights,
		locker:     locker,
		cache:      cache,
		aggregator: aggregator,
		matcher:    matcher,
		policy:     policy,
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Recommend computes and commits the room's destination.
//
// Aggregation and matching errors are returned unchanged. A failed flight
// search only fills FlightsError. Only one call per room can hold the lock;
// the others, and any call after the commit, get ErrConcurrentMutation.
func (u *Usecase) Recommend(ctx context.Context, code string) (rec *model.Recommendation, err error) {
	defer func() { u.record(err) }()

	room, err := u.room(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.IsCompleted {
		return nil, ErrConcurrentMutation
	}

	token, ok, err := u.locker.Acquire(room.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: lock room: %w", ErrInternal, err)
	}
	if !ok {
		return nil, ErrConcurrentMutation
	}
	defer func() {
		if err := u.locker.Release(room.ID, token); err != nil {
			u.logger.Error("failed to release room lock",
				slog.String("room", room.Code),
				slog.String("error", err.Error()))
		}
	}()

	snapshot, err := u.rooms.Snapshot(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: load room: %w", ErrInternal, err)
	}
	if snapshot.Room.IsCompleted {
		return nil, ErrConcurrentMutation
	}

	questions, err := u.catalog.Questions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load questions: %w", ErrInternal, err)
	}
	agg, err := u.aggregator.Aggregate(snapshot, questions)
	if err != nil {
		return nil, err
	}

	destinations, err := u.catalog.Destinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load destinations: %w", ErrInternal, err)
	}
	matches, err := u.matcher.Match(agg.Tally, destinations)
	if err != nil {
		return nil, err
	}

	top := matches[0]
	if err := u.rooms.CommitRecommendation(ctx, room.ID, top.Destination.Name); err != nil {
		if errors.Is(err, ErrConcurrentMutation) {
			return nil, ErrConcurrentMutation
		}
		return nil, fmt.Errorf("%w: commit: %w", ErrInternal, err)
	}

	now := u.now()
	rec = &model.Recommendation{
		RoomID:          room.ID,
		Destination:     top.Destination,
		Score:           top.Score,
		CategoryMatches: agg.Tally,
		CommonQuestions: agg.CommonQuestions,
		Alternatives:    matches[1:],
		CreatedAt:       now.UTC(),
	}

	if top.Destination.Routable() {
		u.searchFlights(ctx, rec, now)
	}

	if err := u.cache.Store(room.ID, rec); err != nil {
		u.logger.Warn("failed to cache recommendation",
			slog.String("room", room.Code),
			slog.String("error", err.Error()))
	}
	if u.notifier != nil {
		u.notifier.RecommendationReady(room.Code, rec)
	}

	u.logger.Info("recommendation committed",
		slog.String("room", room.Code),
		slog.String("destination", top.Destination.Name),
		slog.Int("score", top.Score),
		slog.Bool("flights", rec.FlightsAvailable()))
	return rec, nil
}

func (u *Usecase) searchFlights(ctx context.Context, rec *model.Recommendation, now time.Time) {
	req := model.SearchRequest{
		Origin:      u.policy.HomeOrigin,
		Destination: rec.Destination.IATACode,
		Date:        now.AddDate(0, 0, u.policy.DateOffsetDays),
		Adults:      u.policy.Adults,
	}

	flights, err := u.flights.Complete(ctx, req)
	if err != nil {
		rec.FlightsError = err.Error()
		u.logger.Warn("flight search failed",
			slog.String("origin", req.Origin),
			slog.String("destination", req.Destination),
			slog.String("error", err.Error()))
		return
	}
	rec.Flights = flights
}

// Cached returns the last committed recommendation of the room.
func (u *Usecase) Cached(ctx context.Context, code string) (*model.Recommendation, error) {
	room, err := u.room(ctx, code)
	if err != nil {
		return nil, err
	}

	rec, err := u.cache.Load(room.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: load cached: %w", ErrInternal, err)
	}
	if rec == nil {
		return nil, ErrNotComputed
	}
	return rec, nil
}

func (u *Usecase) room(ctx context.Context, code string) (model.Room, error) {
	room, err := u.rooms.ByCode(ctx, usecase_room.NormalizeCode(code))
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return model.Room{}, ErrRoomNotFound
		}
		return model.Room{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return room, nil
}

func (u *Usecase) record(err error) {
	if u.metrics == nil {
		return
	}
	switch {
	case err == nil:
		u.metrics.Recommendation(OutcomeCommitted)
	case errors.Is(err, ErrConcurrentMutation):
		u.metrics.Recommendation(OutcomeConcurrent)
	case errors.Is(err, preference_aggregator.ErrNoParticipants),
		errors.Is(err, preference_aggregator.ErrNoResponses):
		u.metrics.Recommendation(OutcomeNoData)
	case errors.Is(err, destination_matcher.ErrNoMatches):
		u.metrics.Recommendation(OutcomeNoMatches)
	default:
		u.metrics.Recommendation(OutcomeFailed)
	}
}
