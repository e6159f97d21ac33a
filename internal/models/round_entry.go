package models

import (
	"time"

	"github.com/google/uuid"
)

type RoundCategory string

const (
	CategoryPrioritarios  RoundCategory = "prioritarios"
	CategoryRondaDiaria   RoundCategory = "ronda_diaria"
	CategoryServicioSalas RoundCategory = "servicio_salas"
	CategoryLaboratorio   RoundCategory = "laboratorio_clinico"
	CategorySedesExternas RoundCategory = "sedes_externas"
)

// AllRoundCategories lists the valid panel categories.
var AllRoundCategories = []RoundCategory{
	CategoryPrioritarios,
	CategoryRondaDiaria,
	CategoryServicioSalas,
	CategoryLaboratorio,
	CategorySedesExternas,
}

// RoundEntry is one biomedical round logged against a hospital
// service. Signatures are stored as opaque base64 data URLs. Oncology
// services may carry up to three service-side signer pairs; everything
// else uses the first pair only.
type RoundEntry struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	Category   RoundCategory `json:"category"`
	Subservice string        `json:"subservice"`

	Finding      string `json:"finding,omitempty"`
	EquipmentTag string `json:"equipment_tag,omitempty"`
	WorkOrder    string `json:"work_order,omitempty"`

	HasSafetyEvents bool   `json:"has_safety_events"`
	SafetyEvents    string `json:"safety_events,omitempty"`
	OutOfService    bool   `json:"out_of_service"`

	ServiceSignerName  string  `json:"service_signer_name"`
	ServiceSignature   *string `json:"service_signature,omitempty"`
	ServiceSignerName2 string  `json:"service_signer_name_2,omitempty"`
	ServiceSignature2  *string `json:"service_signature_2,omitempty"`
	ServiceSignerName3 string  `json:"service_signer_name_3,omitempty"`
	ServiceSignature3  *string `json:"service_signature_3,omitempty"`

	RoundSignerName string  `json:"round_signer_name"`
	RoundSignature  *string `json:"round_signature,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
