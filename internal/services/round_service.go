package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/constants"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/dtos"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/models"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/repositories"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/utils"
)

type RoundService struct {
	repo repositories.RoundRepository
	loc  *time.Location
}

func NewRoundService(repo repositories.RoundRepository, loc *time.Location) *RoundService {
	return &RoundService{repo: repo, loc: loc}
}

func notFoundErr(err error) error {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    "Record not found",
		Err:        err,
	}
}

func outsideHoursErr() error {
	return &utils.AppError{
		StatusCode: http.StatusForbidden,
		Code:       utils.ErrCodeOutsideHours,
		Message: fmt.Sprintf("Rounds can only be registered between %02d:00 and %02d:00",
			constants.PanelOpenHour, constants.PanelCloseHour),
		Err: utils.ErrOutsideHours,
	}
}

// validateCategory backstops the DTO tag so the service stays safe
// when called with a hand-built request.
func validateCategory(category string) error {
	for _, c := range models.AllRoundCategories {
		if models.RoundCategory(category) == c {
			return nil
		}
	}
	return &utils.AppError{
		StatusCode: http.StatusBadRequest,
		Code:       utils.ErrCodeValidation,
		Message:    fmt.Sprintf("Unknown round category %q", category),
		Err:        utils.ErrInvalidCategory,
	}
}

// validateSigners rejects the extra oncology signer pairs on services
// that only take a single service-side signature, and requires every
// captured signature to name its signer.
func validateSigners(req *dtos.CreateRoundRequest) error {
	hasExtra := req.ServiceSignerName2 != "" || req.ServiceSignature2 != nil ||
		req.ServiceSignerName3 != "" || req.ServiceSignature3 != nil
	if hasExtra && !IsOncologyService(req.Subservice) {
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "Extra signature pairs are only accepted for oncology services",
			Err:        utils.ErrExtraSignersRejected,
		}
	}
	if (req.ServiceSignature2 != nil && req.ServiceSignerName2 == "") ||
		(req.ServiceSignature3 != nil && req.ServiceSignerName3 == "") {
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "A signature must name its signer",
			Err:        utils.ErrSignatureRequired,
		}
	}
	return nil
}

func applyRoundRequest(e *models.RoundEntry, req *dtos.CreateRoundRequest) {
	e.Category = models.RoundCategory(req.Category)
	e.Subservice = req.Subservice
	e.Finding = req.Finding
	e.EquipmentTag = req.EquipmentTag
	e.WorkOrder = req.WorkOrder
	e.HasSafetyEvents = req.HasSafetyEvents
	e.SafetyEvents = req.SafetyEvents
	e.OutOfService = req.OutOfService
	e.ServiceSignerName = req.ServiceSignerName
	e.ServiceSignature = req.ServiceSignature
	e.ServiceSignerName2 = req.ServiceSignerName2
	e.ServiceSignature2 = req.ServiceSignature2
	e.ServiceSignerName3 = req.ServiceSignerName3
	e.ServiceSignature3 = req.ServiceSignature3
	e.RoundSignerName = req.RoundSignerName
	e.RoundSignature = req.RoundSignature
}

// Create registers a new round. `now` must already be in hospital
// local time; the registration window applies.
func (s *RoundService) Create(
	ctx context.Context,
	userID uuid.UUID,
	req *dtos.CreateRoundRequest,
	now time.Time,
) (*models.RoundEntry, error) {
	if !WithinPanelHours(now) {
		return nil, outsideHoursErr()
	}
	if err := validateCategory(req.Category); err != nil {
		return nil, err
	}
	if err := validateSigners(req); err != nil {
		return nil, err
	}

	entry := &models.RoundEntry{
		ID:     uuid.New(),
		UserID: userID,
	}
	applyRoundRequest(entry, req)

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	utils.Logger.Infof("Round registered: %s / %s by %s", entry.Category, entry.Subservice, userID)
	return entry, nil
}

// List returns the round history, newest first. Entries created
// outside the visible window (05:00-17:59 local) are filtered out,
// matching what the panel allows in the first place.
func (s *RoundService) List(ctx context.Context, f repositories.RoundFilter) ([]*models.RoundEntry, error) {
	all, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	visible := make([]*models.RoundEntry, 0, len(all))
	for _, e := range all {
		if WithinPanelHours(e.CreatedAt.In(s.loc)) {
			visible = append(visible, e)
		}
	}
	return visible, nil
}

func (s *RoundService) Get(ctx context.Context, id uuid.UUID) (*models.RoundEntry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFoundErr(err)
		}
		return nil, err
	}
	return e, nil
}

// Update replaces an entry. Only the user who registered the round may
// edit it.
func (s *RoundService) Update(
	ctx context.Context,
	id uuid.UUID,
	userID uuid.UUID,
	req *dtos.UpdateRoundRequest,
) (*models.RoundEntry, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, &utils.AppError{
			StatusCode: http.StatusForbidden,
			Code:       utils.ErrCodeForbidden,
			Message:    "Only the user who registered this round can modify it",
			Err:        utils.ErrNotOwner,
		}
	}
	if err := validateCategory(req.Category); err != nil {
		return nil, err
	}
	if err := validateSigners(req); err != nil {
		return nil, err
	}

	applyRoundRequest(existing, req)
	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFoundErr(err)
		}
		return nil, err
	}
	return existing, nil
}

func (s *RoundService) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return &utils.AppError{
			StatusCode: http.StatusForbidden,
			Code:       utils.ErrCodeForbidden,
			Message:    "Only the user who registered this round can delete it",
			Err:        utils.ErrNotOwner,
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFoundErr(err)
		}
		return err
	}
	utils.Logger.Infof("Round %s deleted by %s", id, userID)
	return nil
}
