package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lucasvieira94/nola-god-level/internal/models"
)

type PostgresDashboardRepository struct {
	db *sql.DB
}

func NewPostgresDashboardRepository(db *sql.DB) *PostgresDashboardRepository {
	return &PostgresDashboardRepository{db: db}
}

func (r *PostgresDashboardRepository) ForOwner(ownerID int) DashboardStore {
	return &postgresDashboardStore{db: r.db, ownerID: ownerID}
}

type postgresDashboardStore struct {
	db      *sql.DB
	ownerID int
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (s *postgresDashboardStore) Create(ctx context.Context, name string, layout json.RawMessage) (models.Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	d := models.Dashboard{OwnerID: s.ownerID, Name: name, Layout: layout}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO dashboards (owner_id, name, layout, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING id, created_at, updated_at`,
		s.ownerID, name, []byte(layout),
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if isUniqueViolation(err) {
		return models.Dashboard{}, ErrDuplicateDashboardName
	}
	if err != nil {
		return models.Dashboard{}, err
	}
	return d, nil
}

func (s *postgresDashboardStore) List(ctx context.Context) ([]models.Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, layout, created_at, updated_at
		FROM dashboards
		WHERE owner_id = $1
		ORDER BY updated_at DESC`, s.ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dashboards := []models.Dashboard{}
	for rows.Next() {
		d := models.Dashboard{OwnerID: s.ownerID}
		var layout []byte
		if err := rows.Scan(&d.ID, &d.Name, &layout, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		d.Layout = json.RawMessage(layout)
		dashboards = append(dashboards, d)
	}
	return dashboards, rows.Err()
}

func (s *postgresDashboardStore) GetByID(ctx context.Context, id int) (models.Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	d := models.Dashboard{ID: id, OwnerID: s.ownerID}
	var layout []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT name, layout, created_at, updated_at
		FROM dashboards
		WHERE id = $1 AND owner_id = $2`, id, s.ownerID,
	).Scan(&d.Name, &layout, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Dashboard{}, ErrDashboardNotFound
	}
	if err != nil {
		return models.Dashboard{}, err
	}
	d.Layout = json.RawMessage(layout)
	return d, nil
}

func (s *postgresDashboardStore) Update(ctx context.Context, id int, name string, layout json.RawMessage) (models.Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	d := models.Dashboard{ID: id, OwnerID: s.ownerID, Name: name, Layout: layout}
	err := s.db.QueryRowContext(ctx, `
		UPDATE dashboards
		SET name = $1, layout = $2, updated_at = now()
		WHERE id = $3 AND owner_id = $4
		RETURNING created_at, updated_at`,
		name, []byte(layout), id, s.ownerID,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Dashboard{}, ErrDashboardNotFound
	}
	if isUniqueViolation(err) {
		return models.Dashboard{}, ErrDuplicateDashboardName
	}
	if err != nil {
		return models.Dashboard{}, err
	}
	return d, nil
}

func (s *postgresDashboardStore) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM dashboards WHERE id = $1 AND owner_id = $2`, id, s.ownerID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrDashboardNotFound
	}
	return nil
}
