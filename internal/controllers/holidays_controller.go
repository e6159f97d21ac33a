package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/dtos"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/holidays"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/utils"
)

type HolidaysController struct {
	cal *holidays.Calendar
}

func NewHolidaysController(cal *holidays.Calendar) *HolidaysController {
	return &HolidaysController{cal: cal}
}

func formatDates(dates []time.Time) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, dtos.FormatDate(d))
	}
	return out
}

// ----------------------------------------------------------------
// GET /api/v1/holidays/{year}
// ----------------------------------------------------------------
func (c *HolidaysController) ListYearHandler(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid year", nil, err,
		)
		return
	}

	dates, calErr := c.cal.ForYear(year)
	if calErr != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Year outside the supported calendar range", nil, calErr,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.HolidayListResponse{
		Year:  year,
		Count: len(dates),
		Dates: formatDates(dates),
	})
}

// ----------------------------------------------------------------
// GET /api/v1/holidays/{year}/{month}
// ----------------------------------------------------------------
func (c *HolidaysController) ListMonthHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, yErr := strconv.Atoi(vars["year"])
	month, mErr := strconv.Atoi(vars["month"])
	if yErr != nil || mErr != nil || month < 1 || month > 12 {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid year/month", nil,
		)
		return
	}

	dates, calErr := c.cal.ForMonth(year, time.Month(month))
	if calErr != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Year outside the supported calendar range", nil, calErr,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.HolidayListResponse{
		Year:  year,
		Month: month,
		Count: len(dates),
		Dates: formatDates(dates),
	})
}

// ----------------------------------------------------------------
// GET /api/v1/rounds/adjust?date=YYYY-MM-DD
// ----------------------------------------------------------------
// Exposes the round-date decision directly: where do rounds land if
// the given date is a holiday or weekend.
func (c *HolidaysController) AdjustDateHandler(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Missing date query parameter", nil,
		)
		return
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid date, expected YYYY-MM-DD", nil, err,
		)
		return
	}

	effective, shifted, calErr := c.cal.AdjustRoundDate(date)
	if calErr != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Date outside the supported calendar range", nil, calErr,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.AdjustDateResponse{
		RequestedDate: raw,
		EffectiveDate: dtos.FormatDate(effective),
		Shifted:       shifted,
		Weekday:       effective.Weekday().String(),
	})
}
