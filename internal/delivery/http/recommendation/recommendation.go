package http_recommendation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/meulencv/wenomadus/internal/delivery/http/common"
	"github.com/meulencv/wenomadus/internal/model"
	"github.com/meulencv/wenomadus/internal/service/destination_matcher"
	"github.com/meulencv/wenomadus/internal/service/preference_aggregator"
	usecase_recommendation "github.com/meulencv/wenomadus/internal/usecase/recommendation"
)

const cheapestShown = 5

type Usecase interface {
	Recommend(ctx context.Context, code string) (*model.Recommendation, error)
	Cached(ctx context.Context, code string) (*model.Recommendation, error)
}

type Controller struct {
	uc     Usecase
	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/rooms/:code/recommendation", c.recommend)
	router.GET("/rooms/:code/recommendation", c.cached)
}

type RecommendationDTO struct {
	*model.Recommendation
	CheapestItineraries []model.ItinerarySummary `json:"cheapest_itineraries,omitempty"`
}

func toDTO(rec *model.Recommendation) RecommendationDTO {
	return RecommendationDTO{
		Recommendation:      rec,
		CheapestItineraries: rec.Flights.CheapestItineraries(cheapestShown),
	}
}

// @Summary Compute and commit the room's destination
// @Description Runs once per room. Flight search failures are reported in
// @Description flights_error and do not fail the request.
// @Tags Recommendation
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} RecommendationDTO
// @Failure 404 {object} http_common.ErrorResponse
// @Failure 409 {object} http_common.ErrorResponse
// @Failure 422 {object} http_common.ErrorResponse
// @Failure 500 {object} http_common.ErrorResponse
// @Router /rooms/{code}/recommendation [post]
func (c *Controller) recommend(ctx *gin.Context) {
	rec, err := c.uc.Recommend(ctx, ctx.Param("code"))
	if err != nil {
		c.abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toDTO(rec))
}

// @Summary Last committed recommendation of the room
// @Tags Recommendation
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} RecommendationDTO
// @Failure 404 {object} http_common.ErrorResponse
// @Router /rooms/{code}/recommendation [get]
func (c *Controller) cached(ctx *gin.Context) {
	rec, err := c.uc.Cached(ctx, ctx.Param("code"))
	if err != nil {
		c.abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toDTO(rec))
}

func (c *Controller) abortWithError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase_recommendation.ErrRoomNotFound):
		http_common.Abort(ctx, c.logger, http.StatusNotFound, "not found", err)
	case errors.Is(err, usecase_recommendation.ErrNotComputed):
		http_common.Abort(ctx, c.logger, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, usecase_recommendation.ErrConcurrentMutation):
		http_common.Abort(ctx, c.logger, http.StatusConflict, err.Error(), err)
	case errors.Is(err, preference_aggregator.ErrNoParticipants),
		errors.Is(err, preference_aggregator.ErrNoResponses),
		errors.Is(err, destination_matcher.ErrNoMatches):
		http_common.Abort(ctx, c.logger, http.StatusUnprocessableEntity, err.Error(), err)
	default:
		http_common.Abort(ctx, c.logger, http.StatusInternalServerError, "internal error", err)
	}
}
