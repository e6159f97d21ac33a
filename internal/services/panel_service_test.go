package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/holidays"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/utils"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newPanelService() *PanelService {
	return NewPanelService(holidays.NewCalendar())
}

func TestGetPanelForDate_RegularWeekday(t *testing.T) {
	s := newPanelService()

	// Tuesday 2025-03-04, no holiday anywhere near.
	resp, err := s.GetPanelForDate(date(2025, time.March, 4))
	require.NoError(t, err)

	assert.Equal(t, "2025-03-04", resp.OriginalDate)
	assert.Equal(t, "2025-03-04", resp.EffectiveDate)
	assert.False(t, resp.Shifted)
	assert.False(t, resp.IsHoliday)
	assert.Equal(t, "Martes", resp.DayLabel)

	keys := make([]string, 0, len(resp.Categories))
	for _, c := range resp.Categories {
		keys = append(keys, c.Key)
	}
	// Tuesday has no salas roster, but the lab re-checks errores
	// innatos.
	assert.Equal(t, []string{"prioritarios", "ronda_diaria", "laboratorio_clinico", "sedes_externas"}, keys)

	for _, c := range resp.Categories {
		if c.Key == "laboratorio_clinico" {
			require.Len(t, c.Subservices, 1)
			assert.Equal(t, "LC - ERRORES INNATOS", c.Subservices[0].Name)
		}
	}
}

func TestGetPanelForDate_SundayShiftsToMonday(t *testing.T) {
	s := newPanelService()

	resp, err := s.GetPanelForDate(date(2025, time.March, 2))
	require.NoError(t, err)

	assert.Equal(t, "2025-03-03", resp.EffectiveDate)
	assert.True(t, resp.Shifted)
	assert.Equal(t, "Domingo (trasladado por festivo a Lunes)", resp.DayLabel)

	// The roster shown is Monday's.
	var diaria []string
	for _, c := range resp.Categories {
		if c.Key == "ronda_diaria" {
			for _, sub := range c.Subservices {
				diaria = append(diaria, sub.Name)
			}
		}
	}
	assert.Contains(t, diaria, "Urgencias")
	assert.Contains(t, diaria, "Salud Mental")
}

func TestGetPanelForDate_HolidayMondayShiftsToTuesday(t *testing.T) {
	s := newPanelService()

	// Monday 2025-06-30 carries two coinciding holidays.
	resp, err := s.GetPanelForDate(date(2025, time.June, 30))
	require.NoError(t, err)

	assert.True(t, resp.IsHoliday)
	assert.True(t, resp.Shifted)
	assert.Equal(t, "2025-07-01", resp.EffectiveDate)
	assert.Equal(t, "Lunes (trasladado por festivo a Martes)", resp.DayLabel)
}

func TestGetPanelForDate_DayAfterHolidayMergesRosters(t *testing.T) {
	s := newPanelService()

	// Monday 2025-06-23 is Corpus Christi; Tuesday covers both days.
	resp, err := s.GetPanelForDate(date(2025, time.June, 24))
	require.NoError(t, err)

	assert.False(t, resp.Shifted)
	assert.Equal(t, "Martes (incluye servicios del Lunes festivo)", resp.DayLabel)

	var diaria []string
	for _, c := range resp.Categories {
		if c.Key == "ronda_diaria" {
			for _, sub := range c.Subservices {
				diaria = append(diaria, sub.Name)
			}
		}
	}
	// Tuesday's own services plus Monday's skipped ones, deduped.
	assert.Contains(t, diaria, "Oftalmología")
	assert.Contains(t, diaria, "Urgencias")
	assert.Contains(t, diaria, "Trasplante de Médula")
	seen := map[string]int{}
	for _, name := range diaria {
		seen[name]++
	}
	for name, n := range seen {
		assert.Equalf(t, 1, n, "service %s duplicated after merge", name)
	}
}

func TestGetPanelForDate_SaturdayShiftsToMonday(t *testing.T) {
	s := newPanelService()

	// Weekends always shift, same as holidays.
	resp, err := s.GetPanelForDate(date(2025, time.March, 8))
	require.NoError(t, err)

	assert.True(t, resp.Shifted)
	assert.Equal(t, "2025-03-10", resp.EffectiveDate)
	assert.Equal(t, "Sábado (trasladado por festivo a Lunes)", resp.DayLabel)
	assert.True(t, resp.SurgeryAvailable)
	assert.Equal(t, "Lunes", resp.SurgeryDayName)

	keys := make([]string, 0, len(resp.Categories))
	for _, c := range resp.Categories {
		keys = append(keys, c.Key)
	}
	// Monday carries every roster.
	assert.Equal(t, []string{"prioritarios", "ronda_diaria", "servicio_salas", "laboratorio_clinico", "sedes_externas"}, keys)

	// Microscope shows only in room 1.
	require.Len(t, resp.SurgeryLayout, 14)
	for _, room := range resp.SurgeryLayout {
		if room.Room == "1" {
			assert.Contains(t, room.Equipment, "Microscopio")
		} else {
			assert.NotContains(t, room.Equipment, "Microscopio")
		}
	}
}

func TestGetPanelForDate_OncologyFlagged(t *testing.T) {
	s := newPanelService()

	// Wednesday's daily roster carries Oncología and Hemato-Oncología.
	resp, err := s.GetPanelForDate(date(2025, time.March, 5))
	require.NoError(t, err)

	found := 0
	for _, c := range resp.Categories {
		for _, sub := range c.Subservices {
			if sub.IsOncology {
				found++
			}
		}
	}
	assert.Equal(t, 2, found)
}

func TestGetPanel_OutsideRegistrationWindow(t *testing.T) {
	s := newPanelService()

	early := time.Date(2025, time.March, 4, 4, 59, 0, 0, time.UTC)
	_, err := s.GetPanel(early)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrOutsideHours))

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.StatusCode)
	assert.Equal(t, utils.ErrCodeOutsideHours, appErr.Code)

	late := time.Date(2025, time.March, 4, 18, 0, 0, 0, time.UTC)
	_, err = s.GetPanel(late)
	assert.Error(t, err)

	open := time.Date(2025, time.March, 4, 5, 0, 0, 0, time.UTC)
	_, err = s.GetPanel(open)
	assert.NoError(t, err)
}

func TestSchedulingWeekday(t *testing.T) {
	assert.Equal(t, 0, SchedulingWeekday(date(2025, time.March, 3))) // Monday
	assert.Equal(t, 5, SchedulingWeekday(date(2025, time.March, 8))) // Saturday
	assert.Equal(t, 6, SchedulingWeekday(date(2025, time.March, 9))) // Sunday
}

func TestIsOncologyService(t *testing.T) {
	assert.True(t, IsOncologyService("Oncología"))
	assert.True(t, IsOncologyService("HEMATO-ONCOLOGÍA"))
	assert.True(t, IsOncologyService("oncologia"))
	assert.False(t, IsOncologyService("Urgencias"))
}
