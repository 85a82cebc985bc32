package repository

import (
	"context"

	"github.com/transit-network/internal/domain"
)

// CompanyRepository определяет методы для работы с компаниями-перевозчиками
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id int64) error

	// GetByID возвращает errors.ErrCompanyNotFound, если компании нет
	GetByID(ctx context.Context, id int64) (*domain.Company, error)

	GetAll(ctx context.Context) ([]*domain.Company, error)
}
