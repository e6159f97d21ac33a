package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/middleware"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/utils"
)

var validate = validator.New()

// userIDFromRequest pulls the authenticated user out of the request
// context. A missing or malformed ID means the auth middleware did not
// run; respond 401 and return false.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	ctxUserID := r.Context().Value(middleware.ContextKeyUserID)
	if ctxUserID == nil {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No userID in context", nil,
		)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(ctxUserID.(string))
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Malformed userID in token", nil, err,
		)
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses the {id} route variable.
func pathID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id", nil, err,
		)
		return uuid.Nil, false
	}
	return id, true
}
