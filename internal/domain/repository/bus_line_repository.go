package repository

import (
	"context"

	"github.com/paulmach/orb"

	"github.com/transit-network/internal/domain"
)

// BusLineRepository определяет методы для работы с линиями
type BusLineRepository interface {
	Create(ctx context.Context, line *domain.BusLine) error
	Update(ctx context.Context, line *domain.BusLine) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.BusLine, error)
	GetAll(ctx context.Context) ([]*domain.BusLine, error)
	Exists(ctx context.Context, id int64) (bool, error)

	// GetByIDs возвращает линии по списку ID, отсутствующие ID пропускаются
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.BusLine, error)

	// GetIntersecting возвращает линии, пересекающие полигон
	GetIntersecting(ctx context.Context, area orb.Polygon) ([]*domain.BusLine, error)

	// ExistsByCompany проверяет, есть ли линии у компании
	ExistsByCompany(ctx context.Context, companyID int64) (bool, error)
}
