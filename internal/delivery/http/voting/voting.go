package http_voting

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/meulencv/wenomadus/internal/delivery/http/common"
	"github.com/meulencv/wenomadus/internal/model"
	usecase_recommendation "github.com/meulencv/wenomadus/internal/usecase/recommendation"
	usecase_room "github.com/meulencv/wenomadus/internal/usecase/room"
	usecase_vote "github.com/meulencv/wenomadus/internal/usecase/vote"
)

const defaultRecommendTimeout = 2 * time.Minute

type Usecase interface {
	Vote(ctx context.Context, code string, participantID string, answers map[model.QuestionID]bool) (model.SubmitResult, error)
}

type Recommender interface {
	Recommend(ctx context.Context, code string) (*model.Recommendation, error)
}

type Notifier interface {
	ResponsesSubmitted(roomCode string, res model.SubmitResult)
}

type Controller struct {
	uc          Usecase
	recommender Recommender
	hub         Notifier

	recommendTimeout time.Duration
	background       sync.WaitGroup

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithRecommendTimeout bounds the recommendation started when a room
// completes.
func WithRecommendTimeout(d time.Duration) ControllerOption {
	return func(c *Controller) {
		if d > 0 {
			c.recommendTimeout = d
		}
	}
}

func New(
	uc Usecase,
	recommender Recommender,
	hub Notifier,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		uc:               uc,
		recommender:      recommender,
		hub:              hub,
		recommendTimeout: defaultRecommendTimeout,
		logger:           slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.PUT("/rooms/:code/participants/:participant_id/responses", c.submit)
}

type SubmitRequestDTO struct {
	Answers map[model.QuestionID]bool `json:"answers" binding:"required"`
}

// @Summary Submit a participant's answers
// @Description Replaces every previous answer of the participant. When the
// @Description submission completes the room a recommendation starts in the background.
// @Tags Voting operations
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param participant_id path string true "Participant id"
// @Param request body SubmitRequestDTO true "Answers by question id"
// @Success 200 {object} model.SubmitResult
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Failure 409 {object} http_common.ErrorResponse
// @Failure 422 {object} http_common.ErrorResponse
// @Failure 500 {object} http_common.ErrorResponse
// @Router /rooms/{code}/participants/{participant_id}/responses [put]
func (c *Controller) submit(ctx *gin.Context) {
	var req SubmitRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Abort(ctx, c.logger, http.StatusBadRequest, "invalid request format", err)
		return
	}

	code := usecase_room.NormalizeCode(ctx.Param("code"))
	res, err := c.uc.Vote(ctx, code, ctx.Param("participant_id"), req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, usecase_vote.ErrInvalidInput):
			http_common.Abort(ctx, c.logger, http.StatusBadRequest, err.Error(), err)
		case errors.Is(err, usecase_vote.ErrUnknownQuestion):
			http_common.Abort(ctx, c.logger, http.StatusUnprocessableEntity, err.Error(), err)
		case errors.Is(err, usecase_vote.ErrResourceNotFound):
			http_common.Abort(ctx, c.logger, http.StatusNotFound, "not found", err)
		case errors.Is(err, usecase_vote.ErrRoomCompleted):
			http_common.Abort(ctx, c.logger, http.StatusConflict, "room already completed", err)
		default:
			http_common.Abort(ctx, c.logger, http.StatusInternalServerError, "internal error", err)
		}
		return
	}

	c.hub.ResponsesSubmitted(code, res)
	if res.AllCompleted {
		c.recommendInBackground(code)
	}

	ctx.JSON(http.StatusOK, res)
}

// recommendInBackground runs outside the request context so the client
// does not wait for the flight search.
func (c *Controller) recommendInBackground(code string) {
	c.background.Add(1)
	go func() {
		defer c.background.Done()

		ctx, cancel := context.WithTimeout(context.Background(), c.recommendTimeout)
		defer cancel()

		rec, err := c.recommender.Recommend(ctx, code)
		switch {
		case err == nil:
			c.logger.Info("room recommended",
				slog.String("room", code),
				slog.String("destination", rec.Destination.Name))
		case errors.Is(err, usecase_recommendation.ErrConcurrentMutation):
			c.logger.Info("recommendation already running or committed", slog.String("room", code))
		default:
			c.logger.Error("background recommendation failed",
				slog.String("room", code),
				slog.String("error", err.Error()))
		}
	}()
}

// Wait blocks until every background recommendation has returned.
func (c *Controller) Wait() {
	c.background.Wait()
}
