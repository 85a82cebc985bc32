package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-network/internal/pkg/errors"
	"github.com/transit-network/internal/pkg/utils"
	"github.com/transit-network/internal/usecase"
	"github.com/transit-network/internal/usecase/dto"
)

type BusStopHandler struct {
	network *usecase.NetworkUseCase
	logger  *zap.Logger
}

func NewBusStopHandler(network *usecase.NetworkUseCase, logger *zap.Logger) *BusStopHandler {
	return &BusStopHandler{
		network: network,
		logger:  logger,
	}
}

// Create godoc
// @Summary Create bus stop
// @Tags bus-stops
// @Accept json
// @Produce json
// @Param request body dto.BusStopRequest true "Bus stop"
// @Success 201 {object} utils.SuccessResponse{data=dto.BusStopResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/bus-stops [post]
func (h *BusStopHandler) Create(c *fiber.Ctx) error {
	var req dto.BusStopRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.network.Stops.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, resp)
}

// Update godoc
// @Summary Update bus stop
// @Tags bus-stops
// @Accept json
// @Produce json
// @Param id path int true "Bus stop ID"
// @Param request body dto.BusStopRequest true "Bus stop"
// @Success 200 {object} utils.SuccessResponse{data=dto.BusStopResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bus-stops/{id} [put]
func (h *BusStopHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.BusStopRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.network.Stops.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// Delete godoc
// @Summary Delete bus stop
// @Description Fails with 409 while stop-line associations reference the stop
// @Tags bus-stops
// @Param id path int true "Bus stop ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/bus-stops/{id} [delete]
func (h *BusStopHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.network.Stops.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// GetByID godoc
// @Summary Get bus stop
// @Tags bus-stops
// @Produce json
// @Param id path int true "Bus stop ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.BusStopResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bus-stops/{id} [get]
func (h *BusStopHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.network.Stops.FindByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// List godoc
// @Summary List bus stops
// @Tags bus-stops
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.BusStopResponse}
// @Router /api/v1/bus-stops [get]
func (h *BusStopHandler) List(c *fiber.Ctx) error {
	stops, err := h.network.Stops.FindAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stops, &utils.Meta{Total: len(stops)})
}

// Nearby godoc
// @Summary Find bus stops within a radius
// @Tags bus-stops
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query number true "Radius in meters (max 50000)"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.BusStopResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/bus-stops/nearby [get]
func (h *BusStopHandler) Nearby(c *fiber.Ctx) error {
	var req dto.NearbyStopsRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid query parameters: "+err.Error()))
	}

	stops, err := h.network.Stops.FindNearby(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.logger.Debug("Nearby stops found",
		zap.Float64("lat", req.Lat),
		zap.Float64("lon", req.Lon),
		zap.Int("count", len(stops)))

	return utils.SendSuccess(c, stops, &utils.Meta{Total: len(stops)})
}

// Board godoc
// @Summary Lines serving a stop within a time window
// @Tags bus-stops
// @Produce json
// @Param id path int true "Bus stop ID"
// @Param from query string true "Window start (HH:MM[:SS])"
// @Param to query string true "Window end (HH:MM[:SS])"
// @Success 200 {object} utils.SuccessResponse{data=dto.StopBoardResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bus-stops/{id}/board [get]
func (h *BusStopHandler) Board(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	from, to, err := parseTimeWindow(c, "from", "to")
	if err != nil {
		return utils.SendError(c, err)
	}

	board, err := h.network.StopBoard(c.Context(), id, from, to)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, board, &utils.Meta{Total: len(board.Entries)})
}
