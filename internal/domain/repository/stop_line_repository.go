package repository

import (
	"context"

	"github.com/transit-network/internal/domain"
)

// StopLineRepository определяет методы для работы со связями остановка-линия.
// Уникальность (bus_stop_id, bus_line_id, estimated_time) гарантируется самим хранилищем:
// Create и Update возвращают errors.ErrDuplicateAssociation при нарушении.
type StopLineRepository interface {
	Create(ctx context.Context, stopLine *domain.StopLine) error

	// Update меняет только estimated_time и is_enabled
	Update(ctx context.Context, stopLine *domain.StopLine) error

	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.StopLine, error)
	GetAll(ctx context.Context) ([]*domain.StopLine, error)
	GetByStop(ctx context.Context, stopID int64) ([]*domain.StopLine, error)
	GetByLine(ctx context.Context, lineID int64) ([]*domain.StopLine, error)

	// GetByStopAndTimeRange возвращает связи остановки с временем в [from, to]
	GetByStopAndTimeRange(ctx context.Context, stopID int64, from, to domain.TimeOfDay) ([]*domain.StopLine, error)

	// ExistsByTriple проверяет тройку, исключая запись excludeID (0 - не исключать)
	ExistsByTriple(ctx context.Context, stopID, lineID int64, estimatedTime domain.TimeOfDay, excludeID int64) (bool, error)

	ExistsByStop(ctx context.Context, stopID int64) (bool, error)
	ExistsByLine(ctx context.Context, lineID int64) (bool, error)
}
