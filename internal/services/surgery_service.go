package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/constants"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/dtos"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/models"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/repositories"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/utils"
)

// Postgres unique_violation
const pgUniqueViolation = "23505"

type SurgeryService struct {
	repo repositories.SurgeryRepository
}

func NewSurgeryService(repo repositories.SurgeryRepository) *SurgeryService {
	return &SurgeryService{repo: repo}
}

func validationErr(msg string, err error) error {
	return &utils.AppError{
		StatusCode: http.StatusBadRequest,
		Code:       utils.ErrCodeValidation,
		Message:    msg,
		Err:        err,
	}
}

// validateSurgeryRequest checks room/equipment membership and the
// weekday availability of surgery rounds.
func validateSurgeryRequest(req *dtos.CreateSurgeryRecordRequest) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		return time.Time{}, validationErr("Invalid date, expected YYYY-MM-DD", err)
	}

	day := SchedulingWeekday(date)
	if !SurgeryAvailableOn(day) {
		return time.Time{}, validationErr(
			"Surgery rounds only run Monday through Saturday", utils.ErrSurgeryUnavailable)
	}

	validRoom := false
	for _, r := range constants.SurgeryRooms {
		if r == req.Room {
			validRoom = true
			break
		}
	}
	if !validRoom {
		return time.Time{}, validationErr("Unknown surgery room", nil)
	}

	validEquipment := false
	for _, eq := range constants.SurgeryEquipment {
		if eq == req.Equipment {
			validEquipment = true
			break
		}
	}
	if !validEquipment {
		return time.Time{}, validationErr("Unknown surgery equipment", nil)
	}
	if req.Equipment == "Microscopio" && req.Room != "1" {
		return time.Time{}, validationErr("The microscope only exists in room 1", nil)
	}

	return date, nil
}

func applySurgeryRequest(rec *models.DailySurgeryRecord, req *dtos.CreateSurgeryRecordRequest, date time.Time) {
	rec.Date = date
	rec.WeekdayName = constants.SpanishWeekdays[SchedulingWeekday(date)]
	rec.Room = req.Room
	rec.Equipment = req.Equipment
	rec.InUse = req.InUse
	if req.EquipmentState != "" {
		rec.EquipmentState = utils.Ptr(models.EquipmentState(req.EquipmentState))
	} else {
		rec.EquipmentState = nil
	}
	rec.Observations = req.Observations
	rec.ServiceSignerName = req.ServiceSignerName
	rec.RoundSignerName = req.RoundSignerName
	rec.ServiceSignature = req.ServiceSignature
	rec.RoundSignature = req.RoundSignature
}

func (s *SurgeryService) Create(
	ctx context.Context,
	userID uuid.UUID,
	req *dtos.CreateSurgeryRecordRequest,
) (*models.DailySurgeryRecord, error) {
	date, err := validateSurgeryRequest(req)
	if err != nil {
		return nil, err
	}

	rec := &models.DailySurgeryRecord{
		ID:     uuid.New(),
		UserID: userID,
	}
	applySurgeryRequest(rec, req, date)

	if err := s.repo.Create(ctx, rec); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, &utils.AppError{
				StatusCode: http.StatusConflict,
				Code:       utils.ErrCodeConflict,
				Message:    "This equipment was already checked today for that room",
				Err:        err,
			}
		}
		return nil, err
	}
	utils.Logger.Infof("Surgery record registered: %s room %s / %s", req.Date, rec.Room, rec.Equipment)
	return rec, nil
}

func (s *SurgeryService) List(ctx context.Context, f repositories.SurgeryFilter) ([]*models.DailySurgeryRecord, error) {
	return s.repo.List(ctx, f)
}

func (s *SurgeryService) Get(ctx context.Context, id uuid.UUID) (*models.DailySurgeryRecord, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFoundErr(err)
		}
		return nil, err
	}
	return rec, nil
}

func (s *SurgeryService) Update(
	ctx context.Context,
	id uuid.UUID,
	userID uuid.UUID,
	req *dtos.UpdateSurgeryRecordRequest,
) (*models.DailySurgeryRecord, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, &utils.AppError{
			StatusCode: http.StatusForbidden,
			Code:       utils.ErrCodeForbidden,
			Message:    "Only the user who registered this record can modify it",
			Err:        utils.ErrNotOwner,
		}
	}

	date, err := validateSurgeryRequest(req)
	if err != nil {
		return nil, err
	}

	// Moving the record onto another (date, room, equipment) slot must
	// not collide with an existing check.
	keyChanged := !existing.Date.Equal(date) || existing.Room != req.Room || existing.Equipment != req.Equipment
	if keyChanged {
		other, err := s.repo.GetByDateRoomEquipment(ctx, date, req.Room, req.Equipment)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		if other != nil && other.ID != existing.ID {
			return nil, &utils.AppError{
				StatusCode: http.StatusConflict,
				Code:       utils.ErrCodeConflict,
				Message:    "This equipment was already checked today for that room",
			}
		}
	}

	applySurgeryRequest(existing, req, date)

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFoundErr(err)
		}
		return nil, err
	}
	return existing, nil
}

func (s *SurgeryService) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return &utils.AppError{
			StatusCode: http.StatusForbidden,
			Code:       utils.ErrCodeForbidden,
			Message:    "Only the user who registered this record can delete it",
			Err:        utils.ErrNotOwner,
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFoundErr(err)
		}
		return err
	}
	return nil
}
