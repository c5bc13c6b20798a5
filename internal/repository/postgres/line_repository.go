package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain/repository"
	apperrors "github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/pkg/errors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type lineRepository struct {
	db     *DB
	logger *zap.Logger
}

// stopRow is one row of line_stops
type stopRow struct {
	LineID   uuid.UUID `db:"line_id"`
	Seq      int       `db:"seq"`
	Name     string    `db:"name"`
	Lat      float64   `db:"lat"`
	Lng      float64   `db:"lng"`
	RealStop bool      `db:"real_stop"`
}

func (r stopRow) toStop() domain.Stop {
	return domain.Stop{Name: r.Name, Lat: r.Lat, Lng: r.Lng, RealStop: r.RealStop}
}

// NewLineRepository creates a LineRepository on db
func NewLineRepository(db *DB) repository.LineRepository {
	return &lineRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *lineRepository) Create(ctx context.Context, line *domain.Line) error {
	if line.ID == uuid.Nil {
		line.ID = uuid.New()
	}
	now := time.Now().UTC()
	line.CreatedAt, line.UpdatedAt = now, now

	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO lines (id, name, color, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
			line.ID, line.Name, line.Color, line.CreatedAt, line.UpdatedAt)
		if err != nil {
			return dbError("insert line", err)
		}
		return insertStops(ctx, tx, line.ID, line.Stops)
	})
}

func (r *lineRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Line, error) {
	var line domain.Line
	err := r.db.GetContext(ctx, &line,
		`SELECT id, name, color, created_at, updated_at FROM lines WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrLineNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get line", zap.String("line_id", id.String()), zap.Error(err))
		return nil, dbError("get line", err)
	}

	var rows []stopRow
	err = r.db.SelectContext(ctx, &rows,
		`SELECT line_id, seq, name, lat, lng, real_stop FROM line_stops WHERE line_id = $1 ORDER BY seq`, id)
	if err != nil {
		return nil, dbError("get line stops", err)
	}

	line.Stops = make([]domain.Stop, len(rows))
	for i, row := range rows {
		line.Stops[i] = row.toStop()
	}
	return &line, nil
}

func (r *lineRepository) List(ctx context.Context, limit, offset int) ([]*domain.Line, error) {
	lines := make([]*domain.Line, 0)
	err := r.db.SelectContext(ctx, &lines,
		`SELECT id, name, color, created_at, updated_at FROM lines
		 ORDER BY created_at DESC, id
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		r.logger.Error("Failed to list lines", zap.Error(err))
		return nil, dbError("list lines", err)
	}
	return lines, nil
}

func (r *lineRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Line, error) {
	lines := make([]*domain.Line, 0, len(ids))
	if len(ids) == 0 {
		return lines, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	err := r.db.SelectContext(ctx, &lines,
		`SELECT id, name, color, created_at, updated_at FROM lines
		 WHERE id = ANY($1::uuid[])
		 ORDER BY created_at DESC, id`, pq.Array(keys))
	if err != nil {
		r.logger.Error("Failed to list lines by ids", zap.Int("ids", len(ids)), zap.Error(err))
		return nil, dbError("list lines by ids", err)
	}

	var rows []stopRow
	err = r.db.SelectContext(ctx, &rows,
		`SELECT line_id, seq, name, lat, lng, real_stop FROM line_stops
		 WHERE line_id = ANY($1::uuid[])
		 ORDER BY line_id, seq`, pq.Array(keys))
	if err != nil {
		return nil, dbError("list line stops", err)
	}

	byLine := make(map[uuid.UUID][]domain.Stop, len(lines))
	for _, row := range rows {
		byLine[row.LineID] = append(byLine[row.LineID], row.toStop())
	}
	for _, line := range lines {
		line.Stops = byLine[line.ID]
		if line.Stops == nil {
			line.Stops = []domain.Stop{}
		}
	}

	return lines, nil
}

func (r *lineRepository) Update(ctx context.Context, line *domain.Line) error {
	line.UpdatedAt = time.Now().UTC()

	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE lines SET name = $2, color = $3, updated_at = $4 WHERE id = $1`,
			line.ID, line.Name, line.Color, line.UpdatedAt)
		if err != nil {
			return dbError("update line", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return apperrors.ErrLineNotFound
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM line_stops WHERE line_id = $1`, line.ID); err != nil {
			return dbError("delete line stops", err)
		}
		return insertStops(ctx, tx, line.ID, line.Stops)
	})
}

func (r *lineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lines WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete line", zap.String("line_id", id.String()), zap.Error(err))
		return dbError("delete line", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.ErrLineNotFound
	}
	return nil
}

func (r *lineRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return dbError("begin transaction", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.logger.Warn("Rollback failed", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return dbError("commit transaction", err)
	}
	return nil
}

func insertStops(ctx context.Context, tx *sqlx.Tx, lineID uuid.UUID, stops []domain.Stop) error {
	if len(stops) == 0 {
		return nil
	}

	rows := make([]stopRow, len(stops))
	for i, s := range stops {
		rows[i] = stopRow{LineID: lineID, Seq: i, Name: s.Name, Lat: s.Lat, Lng: s.Lng, RealStop: s.RealStop}
	}

	_, err := tx.NamedExecContext(ctx,
		`INSERT INTO line_stops (line_id, seq, name, lat, lng, real_stop)
		 VALUES (:line_id, :seq, :name, :lat, :lng, :real_stop)`, rows)
	if err != nil {
		return dbError("insert line stops", err)
	}
	return nil
}

// dbError tags a driver failure as ErrDatabaseError and keeps the cause
func dbError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, apperrors.ErrDatabaseError, err)
}
