package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/dtos"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/models"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/repositories"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/utils"
)

// fakeRoundRepo keeps entries in memory, newest first.
type fakeRoundRepo struct {
	entries map[uuid.UUID]*models.RoundEntry
}

func newFakeRoundRepo() *fakeRoundRepo {
	return &fakeRoundRepo{entries: map[uuid.UUID]*models.RoundEntry{}}
}

func (f *fakeRoundRepo) Create(_ context.Context, e *models.RoundEntry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.UpdatedAt = e.CreatedAt
	f.entries[e.ID] = e
	return nil
}

func (f *fakeRoundRepo) GetByID(_ context.Context, id uuid.UUID) (*models.RoundEntry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return e, nil
}

func (f *fakeRoundRepo) List(_ context.Context, filter repositories.RoundFilter) ([]*models.RoundEntry, error) {
	var out []*models.RoundEntry
	for _, e := range f.entries {
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.UserID != nil && e.UserID != *filter.UserID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeRoundRepo) Update(_ context.Context, e *models.RoundEntry) error {
	if _, ok := f.entries[e.ID]; !ok {
		return pgx.ErrNoRows
	}
	e.UpdatedAt = time.Now()
	f.entries[e.ID] = e
	return nil
}

func (f *fakeRoundRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.entries[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.entries, id)
	return nil
}

func validRoundRequest() *dtos.CreateRoundRequest {
	return &dtos.CreateRoundRequest{
		Category:          "ronda_diaria",
		Subservice:        "Urgencias",
		Finding:           "Equipo sin novedades",
		ServiceSignerName: "Enf. Jefe Turno",
		RoundSignerName:   "Ing. Biomédico",
	}
}

func inWindow() time.Time {
	return time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)
}

func TestRoundCreate(t *testing.T) {
	repo := newFakeRoundRepo()
	s := NewRoundService(repo, time.UTC)
	userID := uuid.New()

	entry, err := s.Create(context.Background(), userID, validRoundRequest(), inWindow())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, models.RoundCategory("ronda_diaria"), entry.Category)
	assert.Len(t, repo.entries, 1)
}

func TestRoundCreate_OutsideWindow(t *testing.T) {
	s := NewRoundService(newFakeRoundRepo(), time.UTC)

	night := time.Date(2025, time.March, 4, 22, 0, 0, 0, time.UTC)
	_, err := s.Create(context.Background(), uuid.New(), validRoundRequest(), night)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrOutsideHours))
}

func TestRoundCreate_ExtraSignersOnlyForOncology(t *testing.T) {
	s := NewRoundService(newFakeRoundRepo(), time.UTC)

	req := validRoundRequest()
	req.ServiceSignerName2 = "Segundo Piso"
	_, err := s.Create(context.Background(), uuid.New(), req, inWindow())
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrExtraSignersRejected))

	req = validRoundRequest()
	req.Subservice = "Oncología"
	req.ServiceSignerName2 = "Segundo Piso"
	req.ServiceSignerName3 = "Tercer Piso"
	_, err = s.Create(context.Background(), uuid.New(), req, inWindow())
	assert.NoError(t, err)
}

func TestRoundCreate_UnknownCategory(t *testing.T) {
	s := NewRoundService(newFakeRoundRepo(), time.UTC)

	req := validRoundRequest()
	req.Category = "mantenimiento_general"
	_, err := s.Create(context.Background(), uuid.New(), req, inWindow())
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrInvalidCategory))
}

func TestRoundCreate_SignatureMustNameSigner(t *testing.T) {
	s := NewRoundService(newFakeRoundRepo(), time.UTC)

	req := validRoundRequest()
	req.Subservice = "Oncología"
	req.ServiceSignature2 = utils.Ptr("data:image/png;base64,iVBORw0KGgo=")
	_, err := s.Create(context.Background(), uuid.New(), req, inWindow())
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrSignatureRequired))

	req.ServiceSignerName2 = "Segundo Piso"
	_, err = s.Create(context.Background(), uuid.New(), req, inWindow())
	assert.NoError(t, err)
}

func TestRoundList_FiltersOutOfWindowEntries(t *testing.T) {
	repo := newFakeRoundRepo()
	s := NewRoundService(repo, time.UTC)
	userID := uuid.New()

	visible, err := s.Create(context.Background(), userID, validRoundRequest(), inWindow())
	require.NoError(t, err)
	visible.CreatedAt = time.Date(2025, time.March, 4, 9, 30, 0, 0, time.UTC)

	hidden, err := s.Create(context.Background(), userID, validRoundRequest(), inWindow())
	require.NoError(t, err)
	hidden.CreatedAt = time.Date(2025, time.March, 4, 3, 0, 0, 0, time.UTC)

	rounds, err := s.List(context.Background(), repositories.RoundFilter{})
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, visible.ID, rounds[0].ID)
}

func TestRoundGet_NotFound(t *testing.T) {
	s := NewRoundService(newFakeRoundRepo(), time.UTC)

	_, err := s.Get(context.Background(), uuid.New())
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
	assert.Equal(t, utils.ErrCodeNotFound, appErr.Code)
}

func TestRoundUpdate_OwnerOnly(t *testing.T) {
	repo := newFakeRoundRepo()
	s := NewRoundService(repo, time.UTC)
	owner := uuid.New()

	entry, err := s.Create(context.Background(), owner, validRoundRequest(), inWindow())
	require.NoError(t, err)

	req := validRoundRequest()
	req.Finding = "Equipo con alarma intermitente"

	_, err = s.Update(context.Background(), entry.ID, uuid.New(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotOwner))

	updated, err := s.Update(context.Background(), entry.ID, owner, req)
	require.NoError(t, err)
	assert.Equal(t, "Equipo con alarma intermitente", updated.Finding)
}

func TestRoundDelete_OwnerOnly(t *testing.T) {
	repo := newFakeRoundRepo()
	s := NewRoundService(repo, time.UTC)
	owner := uuid.New()

	entry, err := s.Create(context.Background(), owner, validRoundRequest(), inWindow())
	require.NoError(t, err)

	err = s.Delete(context.Background(), entry.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotOwner))

	require.NoError(t, s.Delete(context.Background(), entry.ID, owner))
	assert.Empty(t, repo.entries)
}
