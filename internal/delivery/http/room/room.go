package http_room

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	http_common "github.com/meulencv/wenomadus/internal/delivery/http/common"
	"github.com/meulencv/wenomadus/internal/model"
	usecase_room "github.com/meulencv/wenomadus/internal/usecase/room"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Usecase interface {
	Book(ctx context.Context) (model.Room, error)
	JoinURL(code string) string
	Room(ctx context.Context, code string) (model.Room, error)
	Join(ctx context.Context, code string, name string) (model.Participant, error)
	Participants(ctx context.Context, code string) ([]model.Participant, error)
	Status(ctx context.Context, code string) (model.RoomStatus, error)
	Free(ctx context.Context, code string, ownerID string) error
}

type Hub interface {
	ParticipantJoined(roomCode string, p model.Participant)
	Serve(conn *websocket.Conn, roomCode string)
}

type Controller struct {
	usecase Usecase
	hub     Hub
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase Usecase, hub Hub, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase: usecase,
		hub:     hub,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms")
	{
		rooms.POST("", c.book)
		rooms.GET("/:code", c.room)
		rooms.GET("/:code/status", c.status)
		rooms.DELETE("/:code", c.free)
		rooms.POST("/:code/participants", c.join)
		rooms.GET("/:code/participants", c.participants)
		rooms.GET("/:code/ws", c.roomWS)
	}
}

type BookResponseDTO struct {
	RoomCode string `json:"room_code" example:"K7QX2M"`
	RoomID   string `json:"room_id"`
	JoinURL  string `json:"join_url" example:"http://localhost:8080/join/K7QX2M"`
}

type RoomDTO struct {
	ID                     string    `json:"room_id"`
	Code                   string    `json:"room_code"`
	CreatedAt              time.Time `json:"created_at"`
	IsCompleted            bool      `json:"is_completed"`
	RecommendedDestination *string   `json:"recommended_destination,omitempty"`
}

type JoinRequestDTO struct {
	Name string `json:"name" binding:"required" example:"Lucía"`
}

type ParticipantDTO struct {
	ID           string    `json:"participant_id"`
	Name         string    `json:"name"`
	HasCompleted bool      `json:"has_completed"`
	JoinedAt     time.Time `json:"joined_at"`
}

func toParticipantDTO(p model.Participant) ParticipantDTO {
	return ParticipantDTO{
		ID:           p.ID.String(),
		Name:         p.Name,
		HasCompleted: p.HasCompleted,
		JoinedAt:     p.JoinedAt,
	}
}

// @Summary Create a room
// @Tags Rooms
// @Produce json
// @Success 201 {object} BookResponseDTO
// @Header 201 {string} X-user-token "Room admin token"
// @Failure 500 {object} http_common.ErrorResponse
// @Failure 503 {object} http_common.ErrorResponse
// @Router /rooms [post]
func (c *Controller) book(ctx *gin.Context) {
	room, err := c.usecase.Book(ctx)
	if err != nil {
		if errors.Is(err, usecase_room.ErrRoomsUnavailable) {
			http_common.Abort(ctx, c.logger, http.StatusServiceUnavailable, "unavailable", err)
			return
		}
		http_common.Abort(ctx, c.logger, http.StatusInternalServerError, "internal error", err)
		return
	}

	ctx.Header(http_common.UserTokenHeader, room.AdminID.String())
	ctx.JSON(http.StatusCreated, BookResponseDTO{
		RoomCode: room.Code,
		RoomID:   room.ID.String(),
		JoinURL:  c.usecase.JoinURL(room.Code),
	})
}

// @Summary Get a room
// @Tags Rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} RoomDTO
// @Failure 404 {object} http_common.ErrorResponse
// @Router /rooms/{code} [get]
func (c *Controller) room(ctx *gin.Context) {
	room, err := c.usecase.Room(ctx, ctx.Param("code"))
	if err != nil {
		c.abortWithRoomError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, RoomDTO{
		ID:                     room.ID.String(),
		Code:                   room.Code,
		CreatedAt:              room.CreatedAt,
		IsCompleted:            room.IsCompleted,
		RecommendedDestination: room.RecommendedDestination,
	})
}

// @Summary Room completion status
// @Tags Rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} model.RoomStatus
// @Failure 404 {object} http_common.ErrorResponse
// @Router /rooms/{code}/status [get]
func (c *Controller) status(ctx *gin.Context) {
	status, err := c.usecase.Status(ctx, ctx.Param("code"))
	if err != nil {
		c.abortWithRoomError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, status)
}

// @Summary Delete a room
// @Tags Rooms
// @Param code path string true "Room code"
// @Success 204
// @Failure 401 {object} http_common.ErrorResponse
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security UserToken
// @Router /rooms/{code} [delete]
func (c *Controller) free(ctx *gin.Context) {
	userToken := ctx.GetHeader(http_common.UserTokenHeader)
	if userToken == "" {
		http_common.Abort(ctx, c.logger, http.StatusUnauthorized, "X-user-token not found", nil)
		return
	}

	if err := c.usecase.Free(ctx, ctx.Param("code"), userToken); err != nil {
		c.abortWithRoomError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// @Summary Join a room
// @Tags Rooms
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body JoinRequestDTO true "Participant"
// @Success 201 {object} ParticipantDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Failure 409 {object} http_common.ErrorResponse
// @Router /rooms/{code}/participants [post]
func (c *Controller) join(ctx *gin.Context) {
	var req JoinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Abort(ctx, c.logger, http.StatusBadRequest, "invalid request format", err)
		return
	}

	p, err := c.usecase.Join(ctx, ctx.Param("code"), req.Name)
	if err != nil {
		c.abortWithRoomError(ctx, err)
		return
	}

	c.hub.ParticipantJoined(usecase_room.NormalizeCode(ctx.Param("code")), p)
	ctx.JSON(http.StatusCreated, toParticipantDTO(p))
}

// @Summary List room participants
// @Tags Rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {array} ParticipantDTO
// @Failure 404 {object} http_common.ErrorResponse
// @Router /rooms/{code}/participants [get]
func (c *Controller) participants(ctx *gin.Context) {
	participants, err := c.usecase.Participants(ctx, ctx.Param("code"))
	if err != nil {
		c.abortWithRoomError(ctx, err)
		return
	}

	out := make([]ParticipantDTO, 0, len(participants))
	for _, p := range participants {
		out = append(out, toParticipantDTO(p))
	}
	ctx.JSON(http.StatusOK, out)
}

// @Summary Follow room events
// @Tags Rooms
// @Param code path string true "Room code"
// @Success 101
// @Failure 404 {object} http_common.ErrorResponse
// @Router /rooms/{code}/ws [get]
func (c *Controller) roomWS(ctx *gin.Context) {
	room, err := c.usecase.Room(ctx, ctx.Param("code"))
	if err != nil {
		c.abortWithRoomError(ctx, err)
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	c.hub.Serve(conn, room.Code)
}

func (c *Controller) abortWithRoomError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase_room.ErrResourceNotFound):
		http_common.Abort(ctx, c.logger, http.StatusNotFound, "not found", err)
	case errors.Is(err, usecase_room.ErrInvalidInput):
		http_common.Abort(ctx, c.logger, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, usecase_room.ErrNotOwner):
		http_common.Abort(ctx, c.logger, http.StatusForbidden, "not the room owner", err)
	case errors.Is(err, usecase_room.ErrRoomCompleted):
		http_common.Abort(ctx, c.logger, http.StatusConflict, "room already completed", err)
	default:
		http_common.Abort(ctx, c.logger, http.StatusInternalServerError, "internal error", err)
	}
}
