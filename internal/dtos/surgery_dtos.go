package dtos

import (
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/models"
)

/*
CreateSurgeryRecordRequest is the body of POST /api/v1/surgery: the
daily check of one piece of equipment in one surgery room.
*/
type CreateSurgeryRecordRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Room      string `json:"room" validate:"required,max=10"`
	Equipment string `json:"equipment" validate:"required,max=100"`

	InUse          bool   `json:"in_use"`
	EquipmentState string `json:"equipment_state" validate:"omitempty,oneof=operativo_completo operativo_parcial fuera_de_servicio"`
	Observations   string `json:"observations" validate:"max=4000"`

	ServiceSignerName string  `json:"service_signer_name" validate:"max=100"`
	RoundSignerName   string  `json:"round_signer_name" validate:"max=100"`
	ServiceSignature  *string `json:"service_signature"`
	RoundSignature    *string `json:"round_signature"`
}

type UpdateSurgeryRecordRequest = CreateSurgeryRecordRequest

type SurgeryRecordResponse struct {
	Record *models.DailySurgeryRecord `json:"record"`
}

type SurgeryRecordListResponse struct {
	Records []*models.DailySurgeryRecord `json:"records"`
	Total   int                          `json:"total"`
}
