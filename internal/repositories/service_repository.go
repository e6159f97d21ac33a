package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/models"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *models.Service) error
	GetByName(ctx context.Context, name string) (*models.Service, error)
	ListActive(ctx context.Context) ([]*models.Service, error)
	CountAll(ctx context.Context) (int, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type serviceRepo struct {
	db DB
}

func NewServiceRepository(db DB) ServiceRepository {
	return &serviceRepo{db: db}
}

func baseSelectService() string {
	return `
        SELECT id, name, category, day_rules, active, created_at, updated_at
        FROM services
    `
}

func scanService(row pgx.Row) (*models.Service, error) {
	var s models.Service
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Category,
		&s.DayRules,
		&s.Active,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *serviceRepo) Create(ctx context.Context, s *models.Service) error {
	// day_rules is a jsonb column; pgx encodes the map directly.
	_, err := r.db.Exec(ctx, `
        INSERT INTO services (id, name, category, day_rules, active, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5, NOW(), NOW())
        ON CONFLICT (name) DO NOTHING
    `,
		s.ID,
		s.Name,
		s.Category,
		s.DayRules,
		s.Active,
	)
	return err
}

func (r *serviceRepo) GetByName(ctx context.Context, name string) (*models.Service, error) {
	row := r.db.QueryRow(ctx, baseSelectService()+" WHERE name=$1", name)
	return scanService(row)
}

func (r *serviceRepo) ListActive(ctx context.Context) ([]*models.Service, error) {
	rows, err := r.db.Query(ctx, baseSelectService()+" WHERE active ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *serviceRepo) CountAll(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&n)
	return n, err
}

func (r *serviceRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE services SET active=$2, updated_at=NOW() WHERE id=$1`, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
