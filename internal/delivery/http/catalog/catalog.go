package http_catalog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/meulencv/wenomadus/internal/delivery/http/common"
	"github.com/meulencv/wenomadus/internal/model"
	usecase_catalog "github.com/meulencv/wenomadus/internal/usecase/catalog"
)

type Usecase interface {
	Questions(ctx context.Context) ([]model.Question, error)
	Destinations(ctx context.Context) ([]model.Destination, error)
	DestinationByIATA(ctx context.Context, code string) (model.Destination, error)
	AddQuestion(ctx context.Context, q model.Question) (model.Question, error)
	AddDestination(ctx context.Context, d model.Destination) (model.Destination, error)
}

// CreateQuestionRequestDTO is a new yes/no question.
type CreateQuestionRequestDTO struct {
	Text     string `json:"text" binding:"required" example:"¿Te gusta la playa?"`
	Category string `json:"category" binding:"required" example:"beach"`
}

// CreateDestinationRequestDTO is a new destination with its category flags.
type CreateDestinationRequestDTO struct {
	Name       string          `json:"name" binding:"required" example:"Lisboa"`
	IATACode   string          `json:"iata_code" example:"LIS"`
	Country    string          `json:"country" example:"Portugal"`
	Attributes map[string]bool `json:"attributes" binding:"required"`
}

func (r *CreateDestinationRequestDTO) ToDestination() model.Destination {
	return model.Destination{
		Name:       r.Name,
		IATACode:   r.IATACode,
		Country:    r.Country,
		Attributes: model.CategorySetFromAttributes(r.Attributes),
	}
}

type QuestionsListResponseDTO struct {
	Questions []model.Question `json:"questions"`
	Total     int              `json:"total"`
}

type DestinationsListResponseDTO struct {
	Destinations []model.Destination `json:"destinations"`
	Total        int                 `json:"total"`
}

type Controller struct {
	uc    Usecase
	admin gin.HandlerFunc

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New guards the write routes with admin.
func New(uc Usecase,
	admin gin.HandlerFunc,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		admin:  admin,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	questions := router.Group("/questions")
	questions.GET("", c.getQuestions)
	questions.POST("", c.admin, c.createQuestion)

	destinations := router.Group("/destinations")
	destinations.GET("", c.getDestinations)
	destinations.GET("/:iata", c.getDestination)
	destinations.POST("", c.admin, c.createDestination)
}

// @Summary List questions
// @Tags Catalog
// @Produce json
// @Success 200 {object} QuestionsListResponseDTO
// @Failure 500 {object} http_common.ErrorResponse
// @Router /questions [get]
func (c *Controller) getQuestions(ctx *gin.Context) {
	questions, err := c.uc.Questions(ctx.Request.Context())
	if err != nil {
		http_common.Abort(ctx, c.logger, http.StatusInternalServerError, "failed to load questions", err)
		return
	}

	ctx.JSON(http.StatusOK, QuestionsListResponseDTO{
		Questions: questions,
		Total:     len(questions),
	})
}

// @Summary Create a question
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body CreateQuestionRequestDTO true "Question"
// @Success 201 {object} model.Question
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 401 {object} http_common.ErrorResponse
// @Security AdminToken
// @Router /questions [post]
func (c *Controller) createQuestion(ctx *gin.Context) {
	var req CreateQuestionRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Abort(ctx, c.logger, http.StatusBadRequest, "invalid request body", err)
		return
	}

	q, err := c.uc.AddQuestion(ctx.Request.Context(), model.Question{
		Text:     req.Text,
		Category: model.Category(req.Category),
	})
	if err != nil {
		c.abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, q)
}

// @Summary List destinations
// @Tags Catalog
// @Produce json
// @Success 200 {object} DestinationsListResponseDTO
// @Failure 500 {object} http_common.ErrorResponse
// @Router /destinations [get]
func (c *Controller) getDestinations(ctx *gin.Context) {
	destinations, err := c.uc.Destinations(ctx.Request.Context())
	if err != nil {
		http_common.Abort(ctx, c.logger, http.StatusInternalServerError, "failed to load destinations", err)
		return
	}

	ctx.JSON(http.StatusOK, DestinationsListResponseDTO{
		Destinations: destinations,
		Total:        len(destinations),
	})
}

// @Summary Destination by airport code
// @Tags Catalog
// @Produce json
// @Param iata path string true "IATA code" example("LIS")
// @Success 200 {object} model.Destination
// @Failure 404 {object} http_common.ErrorResponse
// @Router /destinations/{iata} [get]
func (c *Controller) getDestination(ctx *gin.Context) {
	d, err := c.uc.DestinationByIATA(ctx.Request.Context(), ctx.Param("iata"))
	if err != nil {
		c.abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, d)
}

// @Summary Create a destination
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body CreateDestinationRequestDTO true "Destination"
// @Success 201 {object} model.Destination
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 401 {object} http_common.ErrorResponse
// @Security AdminToken
// @Router /destinations [post]
func (c *Controller) createDestination(ctx *gin.Context) {
	var req CreateDestinationRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Abort(ctx, c.logger, http.StatusBadRequest, "invalid request body", err)
		return
	}

	d, err := c.uc.AddDestination(ctx.Request.Context(), req.ToDestination())
	if err != nil {
		c.abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, d)
}

func (c *Controller) abortWithError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase_catalog.ErrInvalidInput):
		http_common.Abort(ctx, c.logger, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, usecase_catalog.ErrResourceNotFound):
		http_common.Abort(ctx, c.logger, http.StatusNotFound, "not found", err)
	default:
		http_common.Abort(ctx, c.logger, http.StatusInternalServerError, "internal error", err)
	}
}
