package controllers

import (
	"net/http"
	"time"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/services"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/utils"
)

type PanelController struct {
	panelService *services.PanelService
	loc          *time.Location
}

func NewPanelController(ps *services.PanelService, loc *time.Location) *PanelController {
	return &PanelController{panelService: ps, loc: loc}
}

// ----------------------------------------------------------------
// GET /api/v1/panel[?date=YYYY-MM-DD]
// ----------------------------------------------------------------
// Without ?date the panel is built for "now" in hospital local time
// and the registration window applies. With ?date the window guard is
// skipped so past/future days can be reviewed.
func (c *PanelController) GetPanelHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := userIDFromRequest(w, r); !ok {
		return
	}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
				"Invalid date, expected YYYY-MM-DD", nil, err,
			)
			return
		}
		resp, svcErr := c.panelService.GetPanelForDate(date)
		if svcErr != nil {
			utils.HandleAppError(w, svcErr)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, resp)
		return
	}

	resp, svcErr := c.panelService.GetPanel(time.Now().In(c.loc))
	if svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
