package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/domain/repository"
	"github.com/transit-network/internal/pkg/errors"
)

const scheduleColumns = `id, operating_day, departure_time, arrival_time, created_at, updated_at`

type scheduleRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewScheduleRepository(db *DB) repository.ScheduleRepository {
	return &scheduleRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *scheduleRepository) Create(ctx context.Context, s *domain.BusLineSchedule) error {
	query := `
		INSERT INTO bus_line_schedules (operating_day, departure_time, arrival_time)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query, s.OperatingDay, s.DepartureTime, s.ArrivalTime).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create schedule", zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *scheduleRepository) Update(ctx context.Context, s *domain.BusLineSchedule) error {
	query := `
		UPDATE bus_line_schedules
		SET operating_day = $2, departure_time = $3, arrival_time = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query, s.ID, s.OperatingDay, s.DepartureTime, s.ArrivalTime).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if isNoRows(err) {
		return errors.ErrScheduleNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update schedule", zap.Int64("id", s.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bus_line_schedules WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete schedule", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrScheduleNotFound
	}
	return nil
}

func (r *scheduleRepository) GetByID(ctx context.Context, id int64) (*domain.BusLineSchedule, error) {
	var s domain.BusLineSchedule
	err := r.db.GetContext(ctx, &s, `SELECT `+scheduleColumns+` FROM bus_line_schedules WHERE id = $1`, id)
	if isNoRows(err) {
		return nil, errors.ErrScheduleNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get schedule by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &s, nil
}

func (r *scheduleRepository) GetAll(ctx context.Context) ([]*domain.BusLineSchedule, error) {
	schedules := []*domain.BusLineSchedule{}
	err := r.db.SelectContext(ctx, &schedules, `SELECT `+scheduleColumns+` FROM bus_line_schedules ORDER BY id`)
	if err != nil {
		r.logger.Error("Failed to get schedules", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return schedules, nil
}
