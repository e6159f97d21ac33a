package services

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/constants"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/dtos"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/holidays"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/utils"
)

/*
PanelService assembles the daily panel: which services must be visited
on a given date, after holiday/weekend adjustment. It is the sole
consumer of the holiday engine's AdjustRoundDate decision.
*/
type PanelService struct {
	cal *holidays.Calendar
}

func NewPanelService(cal *holidays.Calendar) *PanelService {
	return &PanelService{cal: cal}
}

// roster holds the weekday-dependent service lists.
type roster struct {
	diaria []string
	salas  []string
	lab    []string
}

func rosterForDay(day int) roster {
	return roster{
		diaria: constants.RondaDiaria[day],
		salas:  constants.ServicioSalas[day],
		lab:    constants.LaboratorioClinico[day],
	}
}

// mergeLists unions two service lists without duplicates, sorted so
// the panel is stable across requests.
func mergeLists(a, b []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// GetPanel builds the panel for `now` (already in hospital local
// time). Outside the registration window it fails with
// outside_registration_hours.
func (s *PanelService) GetPanel(now time.Time) (*dtos.PanelResponse, error) {
	if !WithinPanelHours(now) {
		return nil, &utils.AppError{
			StatusCode: http.StatusForbidden,
			Code:       utils.ErrCodeOutsideHours,
			Message: fmt.Sprintf("Rounds can only be registered between %02d:00 and %02d:00",
				constants.PanelOpenHour, constants.PanelCloseHour),
			Err: utils.ErrOutsideHours,
		}
	}
	return s.GetPanelForDate(now)
}

// GetPanelForDate is GetPanel without the hours guard, used for the
// explicit ?date= override and for reviewing past days.
func (s *PanelService) GetPanelForDate(today time.Time) (*dtos.PanelResponse, error) {
	effective, shifted, err := s.cal.AdjustRoundDate(today)
	if err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeInvalidPayload,
			Message:    "Date outside the supported calendar range",
			Err:        err,
		}
	}

	todayHoliday, err := s.cal.IsHoliday(today)
	if err != nil {
		return nil, err
	}
	yesterdayHoliday, err := s.cal.IsHoliday(today.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}

	todayDay := SchedulingWeekday(today)
	day := SchedulingWeekday(effective)

	var label string
	var r roster
	switch {
	case shifted:
		label = fmt.Sprintf("%s (trasladado por festivo a %s)",
			constants.SpanishWeekdays[todayDay], constants.SpanishWeekdays[day])
		r = rosterForDay(day)
	case yesterdayHoliday:
		// The day after a holiday also covers the skipped roster.
		yesterdayDay := SchedulingWeekday(today.AddDate(0, 0, -1))
		label = fmt.Sprintf("%s (incluye servicios del %s festivo)",
			constants.SpanishWeekdays[day], constants.SpanishWeekdays[yesterdayDay])
		cur := rosterForDay(day)
		prev := rosterForDay(yesterdayDay)
		r = roster{
			diaria: mergeLists(cur.diaria, prev.diaria),
			salas:  mergeLists(cur.salas, prev.salas),
			lab:    mergeLists(cur.lab, prev.lab),
		}
	default:
		label = constants.SpanishWeekdays[day]
		r = rosterForDay(day)
	}

	resp := &dtos.PanelResponse{
		OriginalDate:  dtos.FormatDate(today),
		EffectiveDate: dtos.FormatDate(effective),
		Shifted:       shifted,
		IsHoliday:     todayHoliday,
		DayLabel:      label,
	}

	resp.Categories = append(resp.Categories, dtos.PanelCategory{
		Key:         "prioritarios",
		Title:       "Servicios Prioritarios (Siempre disponibles)",
		Subservices: toSubservices(constants.Prioritarios),
	})
	if len(r.diaria) > 0 {
		resp.Categories = append(resp.Categories, dtos.PanelCategory{
			Key:         "ronda_diaria",
			Title:       "Ronda Diaria - " + label,
			Subservices: toSubservices(r.diaria),
		})
	}
	if len(r.salas) > 0 {
		resp.Categories = append(resp.Categories, dtos.PanelCategory{
			Key:         "servicio_salas",
			Title:       "Servicio de Salas - " + label,
			Subservices: toSubservices(r.salas),
		})
	}
	if len(r.lab) > 0 {
		resp.Categories = append(resp.Categories, dtos.PanelCategory{
			Key:         "laboratorio_clinico",
			Title:       "Laboratorio Clínico",
			Subservices: toSubservices(r.lab),
		})
	}
	resp.Categories = append(resp.Categories, dtos.PanelCategory{
		Key:         "sedes_externas",
		Title:       "Sedes Externas (Siempre disponibles)",
		Subservices: toSubservices(constants.SedesExternas),
	})

	if SurgeryAvailableOn(day) {
		resp.SurgeryAvailable = true
		resp.SurgeryDayName = constants.SpanishWeekdays[day]
		resp.SurgeryLayout = buildSurgeryLayout()
	}

	return resp, nil
}

func toSubservices(names []string) []dtos.PanelSubservice {
	out := make([]dtos.PanelSubservice, 0, len(names))
	for _, n := range names {
		out = append(out, dtos.PanelSubservice{Name: n, IsOncology: IsOncologyService(n)})
	}
	return out
}

// buildSurgeryLayout lists every room with its equipment; the
// microscope only exists in room 1.
func buildSurgeryLayout() []dtos.SurgeryRoomLayout {
	out := make([]dtos.SurgeryRoomLayout, 0, len(constants.SurgeryRooms))
	for _, room := range constants.SurgeryRooms {
		equipment := make([]string, 0, len(constants.SurgeryEquipment))
		for _, eq := range constants.SurgeryEquipment {
			if eq == "Microscopio" && room != "1" {
				continue
			}
			equipment = append(equipment, eq)
		}
		out = append(out, dtos.SurgeryRoomLayout{Room: room, Equipment: equipment})
	}
	return out
}
