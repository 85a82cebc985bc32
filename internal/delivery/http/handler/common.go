package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/pkg/errors"
)

func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidRequest.WithMessage("Path parameter '" + param + "' must be a positive integer")
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errors.ErrInvalidRequest.WithMessage("Invalid request body: " + err.Error())
	}
	return nil
}

// parseTimeWindow читает границы окна из query. Обе обязательны.
func parseTimeWindow(c *fiber.Ctx, fromKey, toKey string) (domain.TimeOfDay, domain.TimeOfDay, error) {
	fromRaw, toRaw := c.Query(fromKey), c.Query(toKey)
	if fromRaw == "" || toRaw == "" {
		return 0, 0, errors.ErrInvalidTimeRange.WithMessage("Query parameters '" + fromKey + "' and '" + toKey + "' are required")
	}

	from, err := domain.ParseTimeOfDay(fromRaw)
	if err != nil {
		return 0, 0, errors.ErrInvalidTimeRange.WithMessage(err.Error())
	}
	to, err := domain.ParseTimeOfDay(toRaw)
	if err != nil {
		return 0, 0, errors.ErrInvalidTimeRange.WithMessage(err.Error())
	}
	return from, to, nil
}
