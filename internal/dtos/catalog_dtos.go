package dtos

import (
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/models"
)

type ServiceResponse struct {
	Service *models.Service `json:"service"`
}

type ServiceListResponse struct {
	Services []*models.Service `json:"services"`
	Total    int               `json:"total"`
}

// UpdateServiceActiveRequest toggles a catalog entry. Pointer so an
// omitted field is rejected instead of read as false.
type UpdateServiceActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}
