package models

import (
	"time"

	"github.com/google/uuid"
)

type EquipmentState string

const (
	EquipmentFullyOperative     EquipmentState = "operativo_completo"
	EquipmentPartiallyOperative EquipmentState = "operativo_parcial"
	EquipmentOutOfService       EquipmentState = "fuera_de_servicio"
)

// DailySurgeryRecord is the per-day check of one piece of equipment in
// one surgery room. (date, room, equipment) is unique per day.
type DailySurgeryRecord struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	Date        time.Time `json:"date"`
	WeekdayName string    `json:"weekday_name"`
	Room        string    `json:"room"`
	Equipment   string    `json:"equipment"`

	InUse          bool            `json:"in_use"`
	EquipmentState *EquipmentState `json:"equipment_state,omitempty"`
	Observations   string          `json:"observations,omitempty"`

	ServiceSignerName string  `json:"service_signer_name,omitempty"`
	RoundSignerName   string  `json:"round_signer_name,omitempty"`
	ServiceSignature  *string `json:"service_signature,omitempty"`
	RoundSignature    *string `json:"round_signature,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
