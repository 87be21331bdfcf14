package http_flights

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/meulencv/wenomadus/internal/delivery/http/common"
	infra_skyscanner "github.com/meulencv/wenomadus/internal/infra/skyscanner"
	"github.com/meulencv/wenomadus/internal/model"
)

const (
	dateLayout    = "2006-01-02"
	cheapestShown = 5
)

type Searcher interface {
	Complete(ctx context.Context, req model.SearchRequest) (*model.FlightSearchResult, error)
}

type SearchRequestDTO struct {
	Origin       string `json:"origin" binding:"required" example:"MAD"`
	Destination  string `json:"destination" binding:"required" example:"LIS"`
	Date         string `json:"date" binding:"required" example:"2026-11-16"`
	ReturnDate   string `json:"return_date,omitempty" example:"2026-11-23"`
	Adults       int    `json:"adults" example:"2"`
	ChildrenAges []int  `json:"children_ages,omitempty"`
}

func (r *SearchRequestDTO) ToSearchRequest() (model.SearchRequest, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return model.SearchRequest{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}

	req := model.SearchRequest{
		Origin:       strings.ToUpper(strings.TrimSpace(r.Origin)),
		Destination:  strings.ToUpper(strings.TrimSpace(r.Destination)),
		Date:         date,
		Adults:       r.Adults,
		ChildrenAges: r.ChildrenAges,
	}
	if req.Adults == 0 {
		req.Adults = 1
	}
	if r.ReturnDate != "" {
		ret, err := time.Parse(dateLayout, r.ReturnDate)
		if err != nil {
			return model.SearchRequest{}, fmt.Errorf("return_date must be YYYY-MM-DD: %w", err)
		}
		req.ReturnDate = &ret
	}
	return req, nil
}

type SearchResponseDTO struct {
	Complete            bool                      `json:"complete"`
	CheapestItineraries []model.ItinerarySummary  `json:"cheapest_itineraries"`
	Result              *model.FlightSearchResult `json:"result"`
}

type Controller struct {
	searcher Searcher
	logger   *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(searcher Searcher, opts ...ControllerOption) *Controller {
	c := &Controller{
		searcher: searcher,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/flights/search", c.search)
}

// @Summary Live flight search
// @Description Creates a search session and polls it until it completes or
// @Description the poll budget runs out. An incomplete result is still a 200.
// @Tags Flights
// @Accept json
// @Produce json
// @Param request body SearchRequestDTO true "Search"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 502 {object} http_common.ErrorResponse
// @Router /flights/search [post]
func (c *Controller) search(ctx *gin.Context) {
	var dto SearchRequestDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		http_common.Abort(ctx, c.logger, http.StatusBadRequest, "invalid request body", err)
		return
	}

	req, err := dto.ToSearchRequest()
	if err != nil {
		http_common.Abort(ctx, c.logger, http.StatusBadRequest, err.Error(), err)
		return
	}

	result, err := c.searcher.Complete(ctx.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, infra_skyscanner.ErrInvalidRequest):
			http_common.Abort(ctx, c.logger, http.StatusBadRequest, err.Error(), err)
		case errors.Is(err, infra_skyscanner.ErrTransport),
			errors.Is(err, infra_skyscanner.ErrSessionNotFound):
			http_common.Abort(ctx, c.logger, http.StatusBadGateway, "flight provider unavailable", err)
		default:
			http_common.Abort(ctx, c.logger, http.StatusInternalServerError, "internal error", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, SearchResponseDTO{
		Complete:            result.Complete(),
		CheapestItineraries: result.CheapestItineraries(cheapestShown),
		Result:              result,
	})
}
