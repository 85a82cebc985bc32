package repository

import (
	"context"

	"github.com/transit-network/internal/domain"
)

// ScheduleRepository определяет методы для работы с рейсами
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.BusLineSchedule) error
	Update(ctx context.Context, schedule *domain.BusLineSchedule) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.BusLineSchedule, error)
	GetAll(ctx context.Context) ([]*domain.BusLineSchedule, error)
}
