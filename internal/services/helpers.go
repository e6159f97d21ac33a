package services

import (
	"strings"
	"time"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/constants"
)

// SchedulingWeekday maps time.Weekday onto the hospital scheduling
// numbering: 0 = Lunes .. 6 = Domingo.
func SchedulingWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsOncologyService reports whether a service requires the extra
// oncology signature pairs (up to three signers across the floors).
func IsOncologyService(name string) bool {
	lowered := strings.ToLower(name)
	for _, s := range constants.OncologyServices {
		if lowered == s {
			return true
		}
	}
	return false
}

// WithinPanelHours checks the registration window (05:00-17:59 local).
func WithinPanelHours(t time.Time) bool {
	return t.Hour() >= constants.PanelOpenHour && t.Hour() < constants.PanelCloseHour
}

// SurgeryAvailableOn reports whether surgery rounds run on the given
// scheduling weekday (Monday through Saturday).
func SurgeryAvailableOn(day int) bool {
	for _, d := range constants.SurgeryAvailableDays {
		if d == day {
			return true
		}
	}
	return false
}
