package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-network/internal/pkg/utils"
	"github.com/transit-network/internal/usecase"
	"github.com/transit-network/internal/usecase/dto"
)

// StopLineHandler - связи остановка-линия
type StopLineHandler struct {
	network *usecase.NetworkUseCase
	logger  *zap.Logger
}

func NewStopLineHandler(network *usecase.NetworkUseCase, logger *zap.Logger) *StopLineHandler {
	return &StopLineHandler{
		network: network,
		logger:  logger,
	}
}

// Create godoc
// @Summary Associate a line with a stop at a time of day
// @Description The (stopId, lineId, estimatedTime) triple must be unique
// @Tags stop-lines
// @Accept json
// @Produce json
// @Param request body dto.StopLineRequest true "Association"
// @Success 201 {object} utils.SuccessResponse{data=dto.StopLineResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse "Stop or line not found"
// @Failure 409 {object} utils.ErrorResponse "Duplicate association"
// @Router /api/v1/stop-lines [post]
func (h *StopLineHandler) Create(c *fiber.Ctx) error {
	var req dto.StopLineRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.network.StopLines.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, resp)
}

// Update godoc
// @Summary Update association time or enabled flag
// @Tags stop-lines
// @Accept json
// @Produce json
// @Param id path int true "Association ID"
// @Param request body dto.StopLineUpdateRequest true "Changes"
// @Success 200 {object} utils.SuccessResponse{data=dto.StopLineResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/stop-lines/{id} [put]
func (h *StopLineHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.StopLineUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.network.StopLines.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// Delete godoc
// @Summary Delete association
// @Tags stop-lines
// @Param id path int true "Association ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/stop-lines/{id} [delete]
func (h *StopLineHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.network.StopLines.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// GetByID godoc
// @Summary Get association
// @Tags stop-lines
// @Produce json
// @Param id path int true "Association ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.StopLineResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/stop-lines/{id} [get]
func (h *StopLineHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.network.StopLines.FindByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// List godoc
// @Summary List associations
// @Tags stop-lines
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.StopLineResponse}
// @Router /api/v1/stop-lines [get]
func (h *StopLineHandler) List(c *fiber.Ctx) error {
	items, err := h.network.StopLines.FindAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, items, &utils.Meta{Total: len(items)})
}

// ByStop godoc
// @Summary Associations of a stop
// @Tags stop-lines
// @Produce json
// @Param stopId path int true "Bus stop ID"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.StopLineResponse}
// @Router /api/v1/stop-lines/by-stop/{stopId} [get]
func (h *StopLineHandler) ByStop(c *fiber.Ctx) error {
	stopID, err := parseID(c, "stopId")
	if err != nil {
		return utils.SendError(c, err)
	}

	items, err := h.network.StopLines.FindByStop(c.Context(), stopID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, items, &utils.Meta{Total: len(items)})
}

// ByLine godoc
// @Summary Associations of a line
// @Tags stop-lines
// @Produce json
// @Param lineId path int true "Bus line ID"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.StopLineResponse}
// @Router /api/v1/stop-lines/by-line/{lineId} [get]
func (h *StopLineHandler) ByLine(c *fiber.Ctx) error {
	lineID, err := parseID(c, "lineId")
	if err != nil {
		return utils.SendError(c, err)
	}

	items, err := h.network.StopLines.FindByLine(c.Context(), lineID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, items, &utils.Meta{Total: len(items)})
}

// ByStopAndTimeRange godoc
// @Summary Associations of a stop within [startTime, endTime]
// @Description Bounds are inclusive. startTime after endTime yields an empty list.
// @Tags stop-lines
// @Produce json
// @Param stopId path int true "Bus stop ID"
// @Param startTime query string true "HH:MM[:SS]"
// @Param endTime query string true "HH:MM[:SS]"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.StopLineResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/stop-lines/by-stop/{stopId}/time-range [get]
func (h *StopLineHandler) ByStopAndTimeRange(c *fiber.Ctx) error {
	stopID, err := parseID(c, "stopId")
	if err != nil {
		return utils.SendError(c, err)
	}

	from, to, err := parseTimeWindow(c, "startTime", "endTime")
	if err != nil {
		return utils.SendError(c, err)
	}

	items, err := h.network.StopLines.FindByStopAndTimeRange(c.Context(), stopID, from, to)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, items, &utils.Meta{Total: len(items)})
}
