package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/domain/repository"
	"github.com/transit-network/internal/pkg/errors"
)

type companyRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCompanyRepository(db *DB) repository.CompanyRepository {
	return &companyRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *companyRepository) Create(ctx context.Context, c *domain.Company) error {
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO company (name) VALUES ($1) RETURNING id, created_at, updated_at`, c.Name,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create company", zap.String("name", c.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *companyRepository) Update(ctx context.Context, c *domain.Company) error {
	err := r.db.QueryRowxContext(ctx,
		`UPDATE company SET name = $2, updated_at = NOW() WHERE id = $1 RETURNING created_at, updated_at`,
		c.ID, c.Name,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if isNoRows(err) {
		return errors.ErrCompanyNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update company", zap.Int64("id", c.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *companyRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM company WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return errors.ErrHasDependents
		}
		r.logger.Error("Failed to delete company", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrCompanyNotFound
	}
	return nil
}

func (r *companyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	var c domain.Company
	err := r.db.GetContext(ctx, &c, `SELECT id, name, created_at, updated_at FROM company WHERE id = $1`, id)
	if isNoRows(err) {
		return nil, errors.ErrCompanyNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get company by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &c, nil
}

func (r *companyRepository) GetAll(ctx context.Context) ([]*domain.Company, error) {
	companies := []*domain.Company{}
	err := r.db.SelectContext(ctx, &companies, `SELECT id, name, created_at, updated_at FROM company ORDER BY id`)
	if err != nil {
		r.logger.Error("Failed to get companies", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return companies, nil
}
