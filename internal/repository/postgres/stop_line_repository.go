package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/domain/repository"
	"github.com/transit-network/internal/pkg/errors"
)

const stopLineColumns = `id, bus_stop_id, bus_line_id, estimated_time, is_enabled, created_at, updated_at`

type stopLineRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStopLineRepository(db *DB) repository.StopLineRepository {
	return &stopLineRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *stopLineRepository) Create(ctx context.Context, sl *domain.StopLine) error {
	query := `
		INSERT INTO stop_line (bus_stop_id, bus_line_id, estimated_time, is_enabled)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		sl.BusStopID, sl.BusLineID, sl.EstimatedTime, sl.IsEnabled,
	).Scan(&sl.ID, &sl.CreatedAt, &sl.UpdatedAt)
	if err != nil {
		if appErr := mapConstraintError(err); appErr != nil {
			return appErr
		}
		r.logger.Error("Failed to create stop line",
			zap.Int64("stop_id", sl.BusStopID),
			zap.Int64("line_id", sl.BusLineID),
			zap.Stringer("estimated_time", sl.EstimatedTime),
			zap.Error(err),
		)
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *stopLineRepository) Update(ctx context.Context, sl *domain.StopLine) error {
	query := `
		UPDATE stop_line
		SET estimated_time = $2, is_enabled = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING bus_stop_id, bus_line_id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query, sl.ID, sl.EstimatedTime, sl.IsEnabled).
		Scan(&sl.BusStopID, &sl.BusLineID, &sl.CreatedAt, &sl.UpdatedAt)
	if isNoRows(err) {
		return errors.ErrStopLineNotFound
	}
	if err != nil {
		if appErr := mapConstraintError(err); appErr != nil {
			return appErr
		}
		r.logger.Error("Failed to update stop line", zap.Int64("id", sl.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *stopLineRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stop_line WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete stop line", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrStopLineNotFound
	}

	return nil
}

func (r *stopLineRepository) GetByID(ctx context.Context, id int64) (*domain.StopLine, error) {
	var sl domain.StopLine
	err := r.db.GetContext(ctx, &sl, `SELECT `+stopLineColumns+` FROM stop_line WHERE id = $1`, id)
	if isNoRows(err) {
		return nil, errors.ErrStopLineNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get stop line by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &sl, nil
}

func (r *stopLineRepository) GetAll(ctx context.Context) ([]*domain.StopLine, error) {
	query := `SELECT ` + stopLineColumns + ` FROM stop_line ORDER BY id`
	return r.selectStopLines(ctx, "Failed to get stop lines", query)
}

func (r *stopLineRepository) GetByStop(ctx context.Context, stopID int64) ([]*domain.StopLine, error) {
	query := `SELECT ` + stopLineColumns + ` FROM stop_line WHERE bus_stop_id = $1 ORDER BY id`
	return r.selectStopLines(ctx, "Failed to get stop lines by stop", query, stopID)
}

func (r *stopLineRepository) GetByLine(ctx context.Context, lineID int64) ([]*domain.StopLine, error) {
	query := `SELECT ` + stopLineColumns + ` FROM stop_line WHERE bus_line_id = $1 ORDER BY id`
	return r.selectStopLines(ctx, "Failed to get stop lines by line", query, lineID)
}

func (r *stopLineRepository) GetByStopAndTimeRange(ctx context.Context, stopID int64, from, to domain.TimeOfDay) ([]*domain.StopLine, error) {
	// BETWEEN включает обе границы
	query := `
		SELECT ` + stopLineColumns + `
		FROM stop_line
		WHERE bus_stop_id = $1 AND estimated_time BETWEEN $2 AND $3
		ORDER BY estimated_time, id
	`
	return r.selectStopLines(ctx, "Failed to get stop lines by time range", query, stopID, from, to)
}

func (r *stopLineRepository) ExistsByTriple(ctx context.Context, stopID, lineID int64, estimatedTime domain.TimeOfDay, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM stop_line
			WHERE bus_stop_id = $1 AND bus_line_id = $2 AND estimated_time = $3 AND id <> $4
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, stopID, lineID, estimatedTime, excludeID); err != nil {
		r.logger.Error("Failed to check stop line triple", zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

func (r *stopLineRepository) ExistsByStop(ctx context.Context, stopID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM stop_line WHERE bus_stop_id = $1)`, stopID)
	if err != nil {
		r.logger.Error("Failed to check stop lines of stop", zap.Int64("stop_id", stopID), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

func (r *stopLineRepository) ExistsByLine(ctx context.Context, lineID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM stop_line WHERE bus_line_id = $1)`, lineID)
	if err != nil {
		r.logger.Error("Failed to check stop lines of line", zap.Int64("line_id", lineID), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

func (r *stopLineRepository) selectStopLines(ctx context.Context, failMsg, query string, args ...interface{}) ([]*domain.StopLine, error) {
	stopLines := []*domain.StopLine{}
	if err := r.db.SelectContext(ctx, &stopLines, query, args...); err != nil {
		r.logger.Error(failMsg, zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return stopLines, nil
}
