package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-network/internal/pkg/errors"
	"github.com/transit-network/internal/pkg/utils"
)

// HealthChecker - зависимость, которую проверяет /health (БД)
type HealthChecker interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	db     HealthChecker
	logger *zap.Logger
}

func NewHealthHandler(db HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}

// Check godoc
// @Summary Liveness and database check
// @Tags health
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=HealthResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("Health check failed", zap.Error(err))
		return utils.SendError(c, errors.ErrServiceUnavailable)
	}

	return utils.SendSuccess(c, HealthResponse{Status: "ok", Database: "ok"}, nil)
}
