package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/models"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/repositories"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/utils"
)

// CatalogService exposes the seeded hospital service catalog: the
// panel rosters are compiled in, but the catalog is what admin tooling
// reads and toggles.
type CatalogService struct {
	repo repositories.ServiceRepository
}

func NewCatalogService(repo repositories.ServiceRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) List(ctx context.Context) ([]*models.Service, error) {
	return s.repo.ListActive(ctx)
}

func (s *CatalogService) GetByName(ctx context.Context, name string) (*models.Service, error) {
	svc, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &utils.AppError{
				StatusCode: http.StatusNotFound,
				Code:       utils.ErrCodeNotFound,
				Message:    "No catalog entry with that name",
				Err:        utils.ErrNotFound,
			}
		}
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFoundErr(err)
		}
		return err
	}
	utils.Logger.Infof("Catalog service %s set active=%t", id, active)
	return nil
}
