package app

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/constants"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/models"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/repositories"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/utils"
)

// SeedServiceCatalog loads the hospital service catalog into the DB
// from the scheduling tables. Inserts are ON CONFLICT DO NOTHING, so
// re-running against a populated catalog is a no-op.
func SeedServiceCatalog(ctx context.Context, repo repositories.ServiceRepository) error {
	before, err := repo.CountAll(ctx)
	if err != nil {
		return err
	}

	seeded := 0
	insert := func(name string, cat models.ServiceCategory, rules map[string]bool) error {
		svc := &models.Service{
			ID:       uuid.New(),
			Name:     name,
			Category: cat,
			DayRules: rules,
			Active:   true,
		}
		if err := repo.Create(ctx, svc); err != nil {
			return err
		}
		seeded++
		return nil
	}

	everyDay := map[string]bool{}
	for _, d := range constants.SpanishWeekdays {
		everyDay[spanishKey(d)] = true
	}

	for _, name := range constants.Prioritarios {
		if err := insert(name, models.ServicePrioritario, everyDay); err != nil {
			return err
		}
	}
	for _, name := range constants.SedesExternas {
		if err := insert(name, models.ServiceSedes, everyDay); err != nil {
			return err
		}
	}
	if err := seedWeekdayMap(insert, constants.RondaDiaria, models.ServiceDiaria); err != nil {
		return err
	}
	if err := seedWeekdayMap(insert, constants.ServicioSalas, models.ServiceSalas); err != nil {
		return err
	}
	if err := seedWeekdayMap(insert, constants.LaboratorioClinico, models.ServiceLab); err != nil {
		return err
	}

	after, err := repo.CountAll(ctx)
	if err != nil {
		return err
	}
	utils.Logger.Infof("Service catalog seed: %d attempted, %d rows before, %d after", seeded, before, after)
	return nil
}

// seedWeekdayMap collapses a weekday->services table into one catalog
// row per service with its day availability rules.
func seedWeekdayMap(
	insert func(string, models.ServiceCategory, map[string]bool) error,
	table map[int][]string,
	cat models.ServiceCategory,
) error {
	rulesByName := map[string]map[string]bool{}
	for day, names := range table {
		for _, name := range names {
			if rulesByName[name] == nil {
				rulesByName[name] = map[string]bool{}
			}
			rulesByName[name][spanishKey(constants.SpanishWeekdays[day])] = true
		}
	}
	for name, rules := range rulesByName {
		if err := insert(name, cat, rules); err != nil {
			return err
		}
	}
	return nil
}

// Catalog keys are lowercase weekday names with accents kept, so
// "Miércoles" becomes "miércoles".
func spanishKey(day string) string {
	return strings.ToLower(day)
}
