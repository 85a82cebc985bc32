package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/domain/repository"
	"github.com/transit-network/internal/pkg/errors"
	"github.com/transit-network/internal/pkg/geojson"
)

const busLineColumns = `
	l.id, l.number, l.description, l.status, l.origin, l.destination, l.schedule,
	ST_AsGeoJSON(l.geometry) AS geometry_json,
	l.company_id, l.created_at, l.updated_at`

type busLineRow struct {
	domain.BusLine
	GeometryJSON string `db:"geometry_json"`
}

func (r *busLineRow) toDomain() (*domain.BusLine, error) {
	ls, err := geojson.ParseLineString([]byte(r.GeometryJSON))
	if err != nil {
		return nil, err
	}
	line := r.BusLine
	line.Geometry = ls
	return &line, nil
}

type busLineRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewBusLineRepository(db *DB) repository.BusLineRepository {
	return &busLineRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *busLineRepository) Create(ctx context.Context, line *domain.BusLine) error {
	geom, err := geojson.Marshal(line.Geometry)
	if err != nil {
		return errors.ErrInvalidGeometry.WithMessage(err.Error())
	}

	query := `
		INSERT INTO ft_bus_line (number, description, status, origin, destination, schedule, geometry, company_id)
		VALUES ($1, $2, $3, $4, $5, $6, ST_SetSRID(ST_GeomFromGeoJSON($7), 4326), $8)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRowxContext(ctx, query,
		line.Number, line.Description, line.Status, line.Origin, line.Destination,
		line.Schedule, string(geom), line.CompanyID,
	).Scan(&line.ID, &line.CreatedAt, &line.UpdatedAt)
	if err != nil {
		if appErr := mapConstraintError(err); appErr != nil {
			return appErr
		}
		r.logger.Error("Failed to create bus line", zap.String("number", line.Number), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *busLineRepository) Update(ctx context.Context, line *domain.BusLine) error {
	geom, err := geojson.Marshal(line.Geometry)
	if err != nil {
		return errors.ErrInvalidGeometry.WithMessage(err.Error())
	}

	query := `
		UPDATE ft_bus_line
		SET number = $2, description = $3, status = $4, origin = $5, destination = $6,
			schedule = $7, geometry = ST_SetSRID(ST_GeomFromGeoJSON($8), 4326),
			company_id = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err = r.db.QueryRowxContext(ctx, query,
		line.ID, line.Number, line.Description, line.Status, line.Origin, line.Destination,
		line.Schedule, string(geom), line.CompanyID,
	).Scan(&line.CreatedAt, &line.UpdatedAt)
	if isNoRows(err) {
		return errors.ErrBusLineNotFound
	}
	if err != nil {
		if appErr := mapConstraintError(err); appErr != nil {
			return appErr
		}
		r.logger.Error("Failed to update bus line", zap.Int64("id", line.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *busLineRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ft_bus_line WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return errors.ErrHasDependents
		}
		r.logger.Error("Failed to delete bus line", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrBusLineNotFound
	}

	return nil
}

func (r *busLineRepository) GetByID(ctx context.Context, id int64) (*domain.BusLine, error) {
	query := `SELECT ` + busLineColumns + ` FROM ft_bus_line l WHERE l.id = $1`

	var row busLineRow
	err := r.db.GetContext(ctx, &row, query, id)
	if isNoRows(err) {
		return nil, errors.ErrBusLineNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get bus line by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	line, err := row.toDomain()
	if err != nil {
		r.logger.Error("Stored bus line geometry is invalid", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return line, nil
}

func (r *busLineRepository) GetAll(ctx context.Context) ([]*domain.BusLine, error) {
	query := `SELECT ` + busLineColumns + ` FROM ft_bus_line l ORDER BY l.id`
	return r.selectLines(ctx, "Failed to get bus lines", query)
}

func (r *busLineRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.BusLine, error) {
	if len(ids) == 0 {
		return []*domain.BusLine{}, nil
	}

	query := `SELECT ` + busLineColumns + ` FROM ft_bus_line l WHERE l.id = ANY($1) ORDER BY l.id`
	return r.selectLines(ctx, "Failed to get bus lines by IDs", query, pq.Array(ids))
}

func (r *busLineRepository) GetIntersecting(ctx context.Context, area orb.Polygon) ([]*domain.BusLine, error) {
	geom, err := geojson.Marshal(area)
	if err != nil {
		return nil, errors.ErrInvalidGeometry.WithMessage(err.Error())
	}

	query := `
		SELECT ` + busLineColumns + `
		FROM ft_bus_line l
		WHERE ST_Intersects(l.geometry, ST_SetSRID(ST_GeomFromGeoJSON($1), 4326))
		ORDER BY l.id
	`
	return r.selectLines(ctx, "Failed to get intersecting bus lines", query, string(geom))
}

func (r *busLineRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM ft_bus_line WHERE id = $1)`, id)
	if err != nil {
		r.logger.Error("Failed to check bus line", zap.Int64("id", id), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

func (r *busLineRepository) ExistsByCompany(ctx context.Context, companyID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM ft_bus_line WHERE company_id = $1)`, companyID)
	if err != nil {
		r.logger.Error("Failed to check company lines", zap.Int64("company_id", companyID), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

func (r *busLineRepository) selectLines(ctx context.Context, failMsg, query string, args ...interface{}) ([]*domain.BusLine, error) {
	var rows []busLineRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error(failMsg, zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	lines := make([]*domain.BusLine, 0, len(rows))
	for i := range rows {
		line, err := rows[i].toDomain()
		if err != nil {
			r.logger.Warn("Skipping bus line with invalid geometry", zap.Int64("id", rows[i].ID), zap.Error(err))
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
