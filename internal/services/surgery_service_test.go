package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/dtos"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/models"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/repositories"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/utils"
)

type surgeryKey struct {
	date      string
	room      string
	equipment string
}

// fakeSurgeryRepo enforces the (date, room, equipment) uniqueness the
// real table has.
type fakeSurgeryRepo struct {
	records map[uuid.UUID]*models.DailySurgeryRecord
	byKey   map[surgeryKey]uuid.UUID
}

func newFakeSurgeryRepo() *fakeSurgeryRepo {
	return &fakeSurgeryRepo{
		records: map[uuid.UUID]*models.DailySurgeryRecord{},
		byKey:   map[surgeryKey]uuid.UUID{},
	}
}

func keyOf(rec *models.DailySurgeryRecord) surgeryKey {
	return surgeryKey{date: rec.Date.Format("2006-01-02"), room: rec.Room, equipment: rec.Equipment}
}

func (f *fakeSurgeryRepo) Create(_ context.Context, rec *models.DailySurgeryRecord) error {
	if _, dup := f.byKey[keyOf(rec)]; dup {
		return &pgconn.PgError{Code: "23505", ConstraintName: "daily_surgery_records_date_room_equipment_key"}
	}
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	f.records[rec.ID] = rec
	f.byKey[keyOf(rec)] = rec.ID
	return nil
}

func (f *fakeSurgeryRepo) GetByID(_ context.Context, id uuid.UUID) (*models.DailySurgeryRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return rec, nil
}

func (f *fakeSurgeryRepo) GetByDateRoomEquipment(
	_ context.Context, date time.Time, room, equipment string,
) (*models.DailySurgeryRecord, error) {
	k := surgeryKey{date: date.Format("2006-01-02"), room: room, equipment: equipment}
	id, ok := f.byKey[k]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return f.records[id], nil
}

func (f *fakeSurgeryRepo) List(_ context.Context, filter repositories.SurgeryFilter) ([]*models.DailySurgeryRecord, error) {
	var out []*models.DailySurgeryRecord
	for _, rec := range f.records {
		if filter.Date != nil && !rec.Date.Equal(*filter.Date) {
			continue
		}
		if filter.Room != "" && rec.Room != filter.Room {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeSurgeryRepo) Update(_ context.Context, rec *models.DailySurgeryRecord) error {
	if _, ok := f.records[rec.ID]; !ok {
		return pgx.ErrNoRows
	}
	rec.UpdatedAt = time.Now()
	f.records[rec.ID] = rec
	f.byKey[keyOf(rec)] = rec.ID
	return nil
}

func (f *fakeSurgeryRepo) Delete(_ context.Context, id uuid.UUID) error {
	rec, ok := f.records[id]
	if !ok {
		return pgx.ErrNoRows
	}
	delete(f.byKey, keyOf(rec))
	delete(f.records, id)
	return nil
}

func validSurgeryRequest() *dtos.CreateSurgeryRecordRequest {
	return &dtos.CreateSurgeryRecordRequest{
		Date:           "2025-03-04", // Tuesday
		Room:           "3",
		Equipment:      "Monitor",
		InUse:          true,
		EquipmentState: "operativo_completo",
	}
}

func TestSurgeryCreate(t *testing.T) {
	repo := newFakeSurgeryRepo()
	s := NewSurgeryService(repo)
	userID := uuid.New()

	rec, err := s.Create(context.Background(), userID, validSurgeryRequest())
	require.NoError(t, err)
	assert.Equal(t, userID, rec.UserID)
	assert.Equal(t, "Martes", rec.WeekdayName)
	require.NotNil(t, rec.EquipmentState)
	assert.Equal(t, models.EquipmentFullyOperative, *rec.EquipmentState)
}

func TestSurgeryCreate_SundayRejected(t *testing.T) {
	s := NewSurgeryService(newFakeSurgeryRepo())

	req := validSurgeryRequest()
	req.Date = "2025-03-02" // Sunday
	_, err := s.Create(context.Background(), uuid.New(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrSurgeryUnavailable))
}

func TestSurgeryCreate_UnknownRoomOrEquipment(t *testing.T) {
	s := NewSurgeryService(newFakeSurgeryRepo())

	req := validSurgeryRequest()
	req.Room = "15"
	_, err := s.Create(context.Background(), uuid.New(), req)
	assert.Error(t, err)

	req = validSurgeryRequest()
	req.Equipment = "Resonador"
	_, err = s.Create(context.Background(), uuid.New(), req)
	assert.Error(t, err)
}

func TestSurgeryCreate_MicroscopeOnlyRoomOne(t *testing.T) {
	s := NewSurgeryService(newFakeSurgeryRepo())

	req := validSurgeryRequest()
	req.Equipment = "Microscopio"
	req.Room = "2"
	_, err := s.Create(context.Background(), uuid.New(), req)
	require.Error(t, err)

	req = validSurgeryRequest()
	req.Equipment = "Microscopio"
	req.Room = "1"
	_, err = s.Create(context.Background(), uuid.New(), req)
	assert.NoError(t, err)
}

func TestSurgeryCreate_DuplicateIsConflict(t *testing.T) {
	repo := newFakeSurgeryRepo()
	s := NewSurgeryService(repo)

	_, err := s.Create(context.Background(), uuid.New(), validSurgeryRequest())
	require.NoError(t, err)

	_, err = s.Create(context.Background(), uuid.New(), validSurgeryRequest())
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.StatusCode)
	assert.Equal(t, utils.ErrCodeConflict, appErr.Code)
}

func TestSurgeryUpdate_OwnerOnly(t *testing.T) {
	repo := newFakeSurgeryRepo()
	s := NewSurgeryService(repo)
	owner := uuid.New()

	rec, err := s.Create(context.Background(), owner, validSurgeryRequest())
	require.NoError(t, err)

	req := validSurgeryRequest()
	req.EquipmentState = "fuera_de_servicio"
	req.Observations = "Pantalla no enciende"

	_, err = s.Update(context.Background(), rec.ID, uuid.New(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotOwner))

	updated, err := s.Update(context.Background(), rec.ID, owner, req)
	require.NoError(t, err)
	require.NotNil(t, updated.EquipmentState)
	assert.Equal(t, models.EquipmentOutOfService, *updated.EquipmentState)
	assert.Equal(t, "Pantalla no enciende", updated.Observations)
}

func TestSurgeryUpdate_SlotCollision(t *testing.T) {
	repo := newFakeSurgeryRepo()
	s := NewSurgeryService(repo)
	owner := uuid.New()

	_, err := s.Create(context.Background(), owner, validSurgeryRequest())
	require.NoError(t, err)

	other := validSurgeryRequest()
	other.Room = "4"
	rec, err := s.Create(context.Background(), owner, other)
	require.NoError(t, err)

	// Moving the room-4 check onto room 3's slot must conflict.
	move := validSurgeryRequest()
	_, err = s.Update(context.Background(), rec.ID, owner, move)
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.StatusCode)
	assert.Equal(t, utils.ErrCodeConflict, appErr.Code)

	// Updating in place (same slot) stays allowed.
	same := validSurgeryRequest()
	same.Room = "4"
	same.Observations = "Revisión sin novedades"
	updated, err := s.Update(context.Background(), rec.ID, owner, same)
	require.NoError(t, err)
	assert.Equal(t, "Revisión sin novedades", updated.Observations)
}

func TestSurgeryDelete(t *testing.T) {
	repo := newFakeSurgeryRepo()
	s := NewSurgeryService(repo)
	owner := uuid.New()

	rec, err := s.Create(context.Background(), owner, validSurgeryRequest())
	require.NoError(t, err)

	require.Error(t, s.Delete(context.Background(), rec.ID, uuid.New()))
	require.NoError(t, s.Delete(context.Background(), rec.ID, owner))

	// The slot frees up after deletion.
	_, err = s.Create(context.Background(), owner, validSurgeryRequest())
	assert.NoError(t, err)
}
