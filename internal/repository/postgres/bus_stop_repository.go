package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/domain/repository"
	"github.com/transit-network/internal/pkg/errors"
	"github.com/transit-network/internal/pkg/geojson"
)

const busStopColumns = `
	id, name, description, status, has_shelter,
	ST_AsGeoJSON(geometry) AS geometry_json,
	created_at, updated_at`

type busStopRow struct {
	domain.BusStop
	GeometryJSON string `db:"geometry_json"`
}

func (r *busStopRow) toDomain() (*domain.BusStop, error) {
	point, err := geojson.ParsePoint([]byte(r.GeometryJSON))
	if err != nil {
		return nil, err
	}
	stop := r.BusStop
	stop.Geometry = point
	return &stop, nil
}

type busStopRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewBusStopRepository(db *DB) repository.BusStopRepository {
	return &busStopRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *busStopRepository) Create(ctx context.Context, stop *domain.BusStop) error {
	geom, err := geojson.Marshal(stop.Geometry)
	if err != nil {
		return errors.ErrInvalidGeometry.WithMessage(err.Error())
	}

	query := `
		INSERT INTO ft_bus_stop (name, description, status, has_shelter, geometry)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_GeomFromGeoJSON($5), 4326))
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRowxContext(ctx, query,
		stop.Name, stop.Description, stop.Status, stop.HasShelter, string(geom),
	).Scan(&stop.ID, &stop.CreatedAt, &stop.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create bus stop", zap.String("name", stop.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *busStopRepository) Update(ctx context.Context, stop *domain.BusStop) error {
	geom, err := geojson.Marshal(stop.Geometry)
	if err != nil {
		return errors.ErrInvalidGeometry.WithMessage(err.Error())
	}

	query := `
		UPDATE ft_bus_stop
		SET name = $2, description = $3, status = $4, has_shelter = $5,
			geometry = ST_SetSRID(ST_GeomFromGeoJSON($6), 4326),
			updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err = r.db.QueryRowxContext(ctx, query,
		stop.ID, stop.Name, stop.Description, stop.Status, stop.HasShelter, string(geom),
	).Scan(&stop.CreatedAt, &stop.UpdatedAt)
	if isNoRows(err) {
		return errors.ErrBusStopNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update bus stop", zap.Int64("id", stop.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *busStopRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ft_bus_stop WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return errors.ErrHasDependents
		}
		r.logger.Error("Failed to delete bus stop", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrBusStopNotFound
	}

	return nil
}

func (r *busStopRepository) GetByID(ctx context.Context, id int64) (*domain.BusStop, error) {
	query := `SELECT ` + busStopColumns + ` FROM ft_bus_stop WHERE id = $1`

	var row busStopRow
	err := r.db.GetContext(ctx, &row, query, id)
	if isNoRows(err) {
		return nil, errors.ErrBusStopNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get bus stop by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	stop, err := row.toDomain()
	if err != nil {
		r.logger.Error("Stored bus stop geometry is invalid", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return stop, nil
}

func (r *busStopRepository) GetAll(ctx context.Context) ([]*domain.BusStop, error) {
	query := `SELECT ` + busStopColumns + ` FROM ft_bus_stop ORDER BY id`
	return r.selectStops(ctx, "Failed to get bus stops", query)
}

func (r *busStopRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM ft_bus_stop WHERE id = $1)`, id)
	if err != nil {
		r.logger.Error("Failed to check bus stop", zap.Int64("id", id), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

func (r *busStopRepository) GetNearby(ctx context.Context, lat, lon, radiusM float64) ([]*domain.BusStop, error) {
	query := `
		WITH point AS (
			SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS geom
		)
		SELECT ` + busStopColumns + `
		FROM ft_bus_stop s, point
		WHERE ST_DWithin(s.geometry::geography, point.geom, $3)
		ORDER BY ST_Distance(s.geometry::geography, point.geom), s.id
	`
	return r.selectStops(ctx, "Failed to get nearby bus stops", query, lon, lat, radiusM)
}

func (r *busStopRepository) selectStops(ctx context.Context, failMsg, query string, args ...interface{}) ([]*domain.BusStop, error) {
	var rows []busStopRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error(failMsg, zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	stops := make([]*domain.BusStop, 0, len(rows))
	for i := range rows {
		stop, err := rows[i].toDomain()
		if err != nil {
			r.logger.Warn("Skipping bus stop with invalid geometry", zap.Int64("id", rows[i].ID), zap.Error(err))
			continue
		}
		stops = append(stops, stop)
	}
	return stops, nil
}
