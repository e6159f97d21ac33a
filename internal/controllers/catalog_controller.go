package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/dtos"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/services"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/utils"
)

type CatalogController struct {
	catalogService *services.CatalogService
}

func NewCatalogController(cs *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: cs}
}

// ListServicesHandler => GET /api/v1/services[?name=]
func (c *CatalogController) ListServicesHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := userIDFromRequest(w, r); !ok {
		return
	}

	if name := r.URL.Query().Get("name"); name != "" {
		svc, err := c.catalogService.GetByName(r.Context(), name)
		if err != nil {
			utils.HandleAppError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, dtos.ServiceResponse{Service: svc})
		return
	}

	list, err := c.catalogService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ServiceListResponse{Services: list, Total: len(list)})
}

// SetServiceActiveHandler => PUT /api/v1/services/{id}/active
func (c *CatalogController) SetServiceActiveHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := userIDFromRequest(w, r); !ok {
		return
	}
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	var req dtos.UpdateServiceActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request payload", nil, err,
		)
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", nil, err,
		)
		return
	}

	if err := c.catalogService.SetActive(r.Context(), id, *req.Active); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"id": id, "active": *req.Active})
}
