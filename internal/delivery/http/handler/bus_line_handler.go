package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-network/internal/pkg/utils"
	"github.com/transit-network/internal/usecase"
	"github.com/transit-network/internal/usecase/dto"
)

type BusLineHandler struct {
	network *usecase.NetworkUseCase
	logger  *zap.Logger
}

func NewBusLineHandler(network *usecase.NetworkUseCase, logger *zap.Logger) *BusLineHandler {
	return &BusLineHandler{
		network: network,
		logger:  logger,
	}
}

// Create godoc
// @Summary Create bus line
// @Tags bus-lines
// @Accept json
// @Produce json
// @Param request body dto.BusLineRequest true "Bus line"
// @Success 201 {object} utils.SuccessResponse{data=dto.BusLineResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse "Company not found"
// @Router /api/v1/bus-lines [post]
func (h *BusLineHandler) Create(c *fiber.Ctx) error {
	var req dto.BusLineRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.network.Lines.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, resp)
}

// Update godoc
// @Summary Update bus line
// @Tags bus-lines
// @Accept json
// @Produce json
// @Param id path int true "Bus line ID"
// @Param request body dto.BusLineRequest true "Bus line"
// @Success 200 {object} utils.SuccessResponse{data=dto.BusLineResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bus-lines/{id} [put]
func (h *BusLineHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.BusLineRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.network.Lines.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// Delete godoc
// @Summary Delete bus line
// @Tags bus-lines
// @Param id path int true "Bus line ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/bus-lines/{id} [delete]
func (h *BusLineHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.network.Lines.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// GetByID godoc
// @Summary Get bus line
// @Tags bus-lines
// @Produce json
// @Param id path int true "Bus line ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.BusLineResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bus-lines/{id} [get]
func (h *BusLineHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.network.Lines.FindByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// List godoc
// @Summary List bus lines
// @Tags bus-lines
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.BusLineResponse}
// @Router /api/v1/bus-lines [get]
func (h *BusLineHandler) List(c *fiber.Ctx) error {
	lines, err := h.network.Lines.FindAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, lines, &utils.Meta{Total: len(lines)})
}

// Intersecting godoc
// @Summary Bus lines crossing a polygon
// @Tags bus-lines
// @Accept json
// @Produce json
// @Param request body object true "GeoJSON Polygon"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.BusLineResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/bus-lines/intersecting [post]
func (h *BusLineHandler) Intersecting(c *fiber.Ctx) error {
	lines, err := h.network.Lines.FindIntersecting(c.Context(), c.Body())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, lines, &utils.Meta{Total: len(lines)})
}
