package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-network/internal/pkg/utils"
	"github.com/transit-network/internal/usecase"
	"github.com/transit-network/internal/usecase/dto"
)

type ScheduleHandler struct {
	network *usecase.NetworkUseCase
	logger  *zap.Logger
}

func NewScheduleHandler(network *usecase.NetworkUseCase, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		network: network,
		logger:  logger,
	}
}

// Create godoc
// @Summary Create schedule entry
// @Tags bus-line-schedules
// @Accept json
// @Produce json
// @Param request body dto.BusLineScheduleRequest true "Schedule"
// @Success 201 {object} utils.SuccessResponse{data=dto.BusLineScheduleResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/bus-line-schedules [post]
func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	var req dto.BusLineScheduleRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.network.Schedules.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, resp)
}

// Update godoc
// @Summary Update schedule entry
// @Tags bus-line-schedules
// @Accept json
// @Produce json
// @Param id path int true "Schedule ID"
// @Param request body dto.BusLineScheduleRequest true "Schedule"
// @Success 200 {object} utils.SuccessResponse{data=dto.BusLineScheduleResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bus-line-schedules/{id} [put]
func (h *ScheduleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.BusLineScheduleRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.network.Schedules.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// Delete godoc
// @Summary Delete schedule entry
// @Tags bus-line-schedules
// @Param id path int true "Schedule ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bus-line-schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.network.Schedules.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// GetByID godoc
// @Summary Get schedule entry
// @Tags bus-line-schedules
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.BusLineScheduleResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bus-line-schedules/{id} [get]
func (h *ScheduleHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.network.Schedules.FindByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// List godoc
// @Summary List schedule entries
// @Tags bus-line-schedules
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.BusLineScheduleResponse}
// @Router /api/v1/bus-line-schedules [get]
func (h *ScheduleHandler) List(c *fiber.Ctx) error {
	items, err := h.network.Schedules.FindAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, items, &utils.Meta{Total: len(items)})
}
