package app

import (
	"log/slog"

	"github.com/meulencv/wenomadus/internal/config"
	http_catalog "github.com/meulencv/wenomadus/internal/delivery/http/catalog"
	http_flights "github.com/meulencv/wenomadus/internal/delivery/http/flights"
	http_init "github.com/meulencv/wenomadus/internal/delivery/http/init"
	http_auth_middleware "github.com/meulencv/wenomadus/internal/delivery/http/middleware/auth"
	http_recommendation "github.com/meulencv/wenomadus/internal/delivery/http/recommendation"
	http_room "github.com/meulencv/wenomadus/internal/delivery/http/room"
	http_vote "github.com/meulencv/wenomadus/internal/delivery/http/voting"
	ws_room "github.com/meulencv/wenomadus/internal/delivery/ws/room"
	auth_client "github.com/meulencv/wenomadus/internal/infra/auth"
	infra_metrics "github.com/meulencv/wenomadus/internal/infra/metrics"
	infra_postgres_catalog "github.com/meulencv/wenomadus/internal/infra/postgres/catalog"
	infra_pg_init "github.com/meulencv/wenomadus/internal/infra/postgres/init"
	infra_postgres_room "github.com/meulencv/wenomadus/internal/infra/postgres/room"
	infra_postgres_vote "github.com/meulencv/wenomadus/internal/infra/postgres/vote"
	infra_redis_init "github.com/meulencv/wenomadus/internal/infra/redis/init"
	infra_redis_recommendation_cache "github.com/meulencv/wenomadus/internal/infra/redis/recommendation_cache"
	infra_redis_room_lock "github.com/meulencv/wenomadus/internal/infra/redis/room_lock"
	infra_skyscanner "github.com/meulencv/wenomadus/internal/infra/skyscanner"
	"github.com/meulencv/wenomadus/internal/service/destination_matcher"
	"github.com/meulencv/wenomadus/internal/service/preference_aggregator"
	usecase_catalog "github.com/meulencv/wenomadus/internal/usecase/catalog"
	usecase_recommendation "github.com/meulencv/wenomadus/internal/usecase/recommendation"
	usecase_room "github.com/meulencv/wenomadus/internal/usecase/room"
	usecase_vote "github.com/meulencv/wenomadus/internal/usecase/vote"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func Go(cfg *config.Config) {
	logger := slog.Default()

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := infra_metrics.New(registry)

	roomRepository := infra_postgres_room.New(pgConn)
	voteRepository := infra_postgres_vote.New(pgConn)
	catalogRepository := infra_postgres_catalog.New(pgConn)

	roomLock := infra_redis_room_lock.New(redisConn, "room_lock", cfg.Recommendation.LockTTL)
	recommendationCache := infra_redis_recommendation_cache.New(redisConn, "recommendation", 0)

	flights := infra_skyscanner.New(cfg.Flights,
		infra_skyscanner.WithMetrics(metrics),
		infra_skyscanner.WithLogger(logger.With(slog.String("component", "skyscanner"))),
	)

	hub := ws_room.New(logger.With(slog.String("component", "ws_hub")))

	roomUC := usecase_room.New(roomRepository,
		usecase_room.WithCodeLength(cfg.Rooms.CodeLength),
		usecase_room.WithJoinBaseURL(cfg.Rooms.JoinBaseURL),
		usecase_room.WithMetrics(metrics),
	)
	catalogUC := usecase_catalog.New(catalogRepository)
	voteUC := usecase_vote.New(voteRepository, roomRepository, catalogRepository)
	recommendationUC := usecase_recommendation.New(
		roomRepository,
		catalogRepository,
		flights,
		roomLock,
		recommendationCache,
		preference_aggregator.New(),
		destination_matcher.New(cfg.Recommendation.TopN),
		usecase_recommendation.Policy{
			HomeOrigin:     cfg.Recommendation.HomeOrigin,
			DateOffsetDays: cfg.Recommendation.DateOffsetDays,
			Adults:         cfg.Recommendation.Adults,
		},
		usecase_recommendation.WithNotifier(hub),
		usecase_recommendation.WithMetrics(metrics),
	)

	adminMiddleware := http_auth_middleware.New(auth_client.NewStatic(cfg.Catalog.AdminToken))

	controllerPool := http_init.NewControllerPool(cfg.HTTP.Mode)
	controllerPool.Add(http_room.New(roomUC, hub))
	controllerPool.Add(http_vote.New(voteUC, recommendationUC, hub))
	controllerPool.Add(http_recommendation.New(recommendationUC))
	controllerPool.Add(http_catalog.New(catalogUC, adminMiddleware.AuthRequired()))
	controllerPool.Add(http_flights.New(flights))
	controllerPool.Mount("/metrics", metrics.Handler())

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
