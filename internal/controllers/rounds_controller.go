package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/dtos"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/models"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/repositories"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/services"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/utils"
)

type RoundsController struct {
	roundService *services.RoundService
	loc          *time.Location
}

func NewRoundsController(rs *services.RoundService, loc *time.Location) *RoundsController {
	return &RoundsController{roundService: rs, loc: loc}
}

func decodeRoundRequest(w http.ResponseWriter, r *http.Request) (*dtos.CreateRoundRequest, bool) {
	var req dtos.CreateRoundRequest
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

// CreateRoundHandler => POST /api/v1/rounds
func (c *RoundsController) CreateRoundHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	req, ok := decodeRoundRequest(w, r)
	if !ok {
		return
	}

	entry, err := c.roundService.Create(r.Context(), userID, req, time.Now().In(c.loc))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.RoundResponse{Round: entry})
}

// ListRoundsHandler => GET /api/v1/rounds
//
// Optional filters: ?category=, ?subservice=, ?mine=true.
func (c *RoundsController) ListRoundsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	filter := repositories.RoundFilter{
		Category:   models.RoundCategory(q.Get("category")),
		Subservice: q.Get("subservice"),
	}
	if q.Get("mine") == "true" {
		filter.UserID = &userID
	}

	rounds, err := c.roundService.List(r.Context(), filter)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.RoundListResponse{Rounds: rounds, Total: len(rounds)})
}

// GetRoundHandler => GET /api/v1/rounds/{id}
func (c *RoundsController) GetRoundHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := userIDFromRequest(w, r); !ok {
		return
	}
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	entry, err := c.roundService.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.RoundResponse{Round: entry})
}

// UpdateRoundHandler => PUT /api/v1/rounds/{id}
func (c *RoundsController) UpdateRoundHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}
	req, ok := decodeRoundRequest(w, r)
	if !ok {
		return
	}

	entry, err := c.roundService.Update(r.Context(), id, userID, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.RoundResponse{Round: entry})
}

// DeleteRoundHandler => DELETE /api/v1/rounds/{id}
func (c *RoundsController) DeleteRoundHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	if err := c.roundService.Delete(r.Context(), id, userID); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DeleteResponse{ID: id, Deleted: true})
}
