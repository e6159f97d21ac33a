package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/models"
)

/*
CreateRoundRequest is the body of POST /api/v1/rounds. Signatures
arrive as base64 data URLs captured on the signature pad.
*/
type CreateRoundRequest struct {
	Category   string `json:"category" validate:"required,oneof=prioritarios ronda_diaria servicio_salas laboratorio_clinico sedes_externas"`
	Subservice string `json:"subservice" validate:"required,max=100"`

	Finding      string `json:"finding" validate:"max=4000"`
	EquipmentTag string `json:"equipment_tag" validate:"max=100"`
	WorkOrder    string `json:"work_order" validate:"max=100"`

	HasSafetyEvents bool   `json:"has_safety_events"`
	SafetyEvents    string `json:"safety_events" validate:"max=4000"`
	OutOfService    bool   `json:"out_of_service"`

	ServiceSignerName  string  `json:"service_signer_name" validate:"required,max=100"`
	ServiceSignature   *string `json:"service_signature"`
	ServiceSignerName2 string  `json:"service_signer_name_2" validate:"max=100"`
	ServiceSignature2  *string `json:"service_signature_2"`
	ServiceSignerName3 string  `json:"service_signer_name_3" validate:"max=100"`
	ServiceSignature3  *string `json:"service_signature_3"`

	RoundSignerName string  `json:"round_signer_name" validate:"required,max=100"`
	RoundSignature  *string `json:"round_signature"`
}

// UpdateRoundRequest mirrors CreateRoundRequest; the whole entry is
// replaced except ID, owner and timestamps.
type UpdateRoundRequest = CreateRoundRequest

type RoundResponse struct {
	Round *models.RoundEntry `json:"round"`
}

type RoundListResponse struct {
	Rounds []*models.RoundEntry `json:"rounds"`
	Total  int                  `json:"total"`
}

type DeleteResponse struct {
	ID      uuid.UUID `json:"id"`
	Deleted bool      `json:"deleted"`
}

// AdjustDateResponse is the wire form of a round-date decision.
type AdjustDateResponse struct {
	RequestedDate string `json:"requested_date"`
	EffectiveDate string `json:"effective_date"`
	Shifted       bool   `json:"shifted"`
	Weekday       string `json:"weekday"`
}

// HolidayListResponse lists the computed holidays for a year (or one
// month of it).
type HolidayListResponse struct {
	Year  int      `json:"year"`
	Month int      `json:"month,omitempty"`
	Count int      `json:"count"`
	Dates []string `json:"dates"`
}

func FormatDate(t time.Time) string { return t.Format("2006-01-02") }
