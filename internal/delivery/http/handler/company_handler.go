package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-network/internal/pkg/utils"
	"github.com/transit-network/internal/usecase"
	"github.com/transit-network/internal/usecase/dto"
)

type CompanyHandler struct {
	network *usecase.NetworkUseCase
	logger  *zap.Logger
}

func NewCompanyHandler(network *usecase.NetworkUseCase, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		network: network,
		logger:  logger,
	}
}

// Create godoc
// @Summary Create company
// @Tags companies
// @Accept json
// @Produce json
// @Param request body dto.CompanyRequest true "Company"
// @Success 201 {object} utils.SuccessResponse{data=dto.CompanyResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var req dto.CompanyRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.network.Companies.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, resp)
}

// Update godoc
// @Summary Update company
// @Tags companies
// @Accept json
// @Produce json
// @Param id path int true "Company ID"
// @Param request body dto.CompanyRequest true "Company"
// @Success 200 {object} utils.SuccessResponse{data=dto.CompanyResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CompanyRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.network.Companies.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// Delete godoc
// @Summary Delete company
// @Description Fails with 409 while bus lines reference the company
// @Tags companies
// @Param id path int true "Company ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.network.Companies.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// GetByID godoc
// @Summary Get company
// @Tags companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.CompanyResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.network.Companies.FindByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// List godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CompanyResponse}
// @Router /api/v1/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	items, err := h.network.Companies.FindAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, items, &utils.Meta{Total: len(items)})
}
