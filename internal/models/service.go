package models

import (
	"time"

	"github.com/google/uuid"
)

type ServiceCategory string

const (
	ServicePrioritario ServiceCategory = "PRIORITARIO"
	ServiceDiaria      ServiceCategory = "DIARIA"
	ServiceSalas       ServiceCategory = "SALAS"
	ServiceLab         ServiceCategory = "LAB"
	ServiceSedes       ServiceCategory = "SEDES"
)

// Service is one entry of the hospital service catalog. DayRules maps
// lowercase Spanish weekday names to availability, e.g.
// {"lunes": true, "martes": false}.
type Service struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Category ServiceCategory `json:"category"`
	DayRules map[string]bool `json:"day_rules"`
	Active   bool            `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
