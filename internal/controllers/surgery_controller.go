package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/dtos"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/repositories"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/services"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/utils"
)

type SurgeryController struct {
	surgeryService *services.SurgeryService
}

func NewSurgeryController(ss *services.SurgeryService) *SurgeryController {
	return &SurgeryController{surgeryService: ss}
}

func decodeSurgeryRequest(w http.ResponseWriter, r *http.Request) (*dtos.CreateSurgeryRecordRequest, bool) {
	var req dtos.CreateSurgeryRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request payload", nil, err,
		)
		return nil, false
	}
	if err := validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", nil, err,
		)
		return nil, false
	}
	return &req, true
}

// CreateSurgeryRecordHandler => POST /api/v1/surgery
func (c *SurgeryController) CreateSurgeryRecordHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	req, ok := decodeSurgeryRequest(w, r)
	if !ok {
		return
	}

	rec, err := c.surgeryService.Create(r.Context(), userID, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.SurgeryRecordResponse{Record: rec})
}

// ListSurgeryRecordsHandler => GET /api/v1/surgery
//
// Optional filters: ?date=YYYY-MM-DD, ?room=.
func (c *SurgeryController) ListSurgeryRecordsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := userIDFromRequest(w, r); !ok {
		return
	}

	q := r.URL.Query()
	filter := repositories.SurgeryFilter{Room: q.Get("room")}
	if raw := q.Get("date"); raw != "" {
		date, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
				"Invalid date, expected YYYY-MM-DD", nil, err,
			)
			return
		}
		filter.Date = &date
	}

	records, err := c.surgeryService.List(r.Context(), filter)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.SurgeryRecordListResponse{Records: records, Total: len(records)})
}

// GetSurgeryRecordHandler => GET /api/v1/surgery/{id}
func (c *SurgeryController) GetSurgeryRecordHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := userIDFromRequest(w, r); !ok {
		return
	}
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	rec, err := c.surgeryService.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.SurgeryRecordResponse{Record: rec})
}

// UpdateSurgeryRecordHandler => PUT /api/v1/surgery/{id}
func (c *SurgeryController) UpdateSurgeryRecordHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}
	req, ok := decodeSurgeryRequest(w, r)
	if !ok {
		return
	}

	rec, err := c.surgeryService.Update(r.Context(), id, userID, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.SurgeryRecordResponse{Record: rec})
}

// DeleteSurgeryRecordHandler => DELETE /api/v1/surgery/{id}
func (c *SurgeryController) DeleteSurgeryRecordHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	if err := c.surgeryService.Delete(r.Context(), id, userID); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DeleteResponse{ID: id, Deleted: true})
}
