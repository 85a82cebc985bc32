package repository

import (
	"context"

	"github.com/transit-network/internal/domain"
)

// BusStopRepository определяет методы для работы с остановками
type BusStopRepository interface {
	// Create сохраняет остановку и заполняет ID и временные метки
	Create(ctx context.Context, stop *domain.BusStop) error

	// Update перезаписывает все поля остановки
	Update(ctx context.Context, stop *domain.BusStop) error

	// Delete удаляет остановку по ID
	Delete(ctx context.Context, id int64) error

	// GetByID возвращает остановку по ID
	GetByID(ctx context.Context, id int64) (*domain.BusStop, error)

	// GetAll возвращает все остановки
	GetAll(ctx context.Context) ([]*domain.BusStop, error)

	// Exists проверяет наличие остановки
	Exists(ctx context.Context, id int64) (bool, error)

	// GetNearby возвращает остановки в радиусе radiusM метров от точки
	GetNearby(ctx context.Context, lat, lon, radiusM float64) ([]*domain.BusStop, error)
}
