package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/models"
)

// SurgeryFilter narrows ListSurgeryRecords. Zero values mean "no filter".
type SurgeryFilter struct {
	Date *time.Time
	Room string
}

type SurgeryRepository interface {
	Create(ctx context.Context, rec *models.DailySurgeryRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.DailySurgeryRecord, error)
	GetByDateRoomEquipment(ctx context.Context, date time.Time, room, equipment string) (*models.DailySurgeryRecord, error)
	List(ctx context.Context, f SurgeryFilter) ([]*models.DailySurgeryRecord, error)
	Update(ctx context.Context, rec *models.DailySurgeryRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type surgeryRepo struct {
	db DB
}

func NewSurgeryRepository(db DB) SurgeryRepository {
	return &surgeryRepo{db: db}
}

func baseSelectSurgery() string {
	return `
        SELECT
            id, user_id, date, weekday_name, room, equipment,
            in_use, equipment_state, observations,
            service_signer_name, round_signer_name,
            service_signature, round_signature,
            created_at, updated_at
        FROM daily_surgery_records
    `
}

func scanSurgery(row pgx.Row) (*models.DailySurgeryRecord, error) {
	var rec models.DailySurgeryRecord
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Date,
		&rec.WeekdayName,
		&rec.Room,
		&rec.Equipment,
		&rec.InUse,
		&rec.EquipmentState,
		&rec.Observations,
		&rec.ServiceSignerName,
		&rec.RoundSignerName,
		&rec.ServiceSignature,
		&rec.RoundSignature,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *surgeryRepo) Create(ctx context.Context, rec *models.DailySurgeryRecord) error {
	// (date, room, equipment) carries a UNIQUE constraint: one check
	// per equipment per room per day.
	_, err := r.db.Exec(ctx, `
        INSERT INTO daily_surgery_records (
            id, user_id, date, weekday_name, room, equipment,
            in_use, equipment_state, observations,
            service_signer_name, round_signer_name,
            service_signature, round_signature,
            created_at, updated_at
        ) VALUES (
            $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13, NOW(), NOW()
        )
    `,
		rec.ID,
		rec.UserID,
		rec.Date,
		rec.WeekdayName,
		rec.Room,
		rec.Equipment,
		rec.InUse,
		rec.EquipmentState,
		rec.Observations,
		rec.ServiceSignerName,
		rec.RoundSignerName,
		rec.ServiceSignature,
		rec.RoundSignature,
	)
	return err
}

func (r *surgeryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.DailySurgeryRecord, error) {
	row := r.db.QueryRow(ctx, baseSelectSurgery()+" WHERE id=$1", id)
	return scanSurgery(row)
}

func (r *surgeryRepo) GetByDateRoomEquipment(
	ctx context.Context,
	date time.Time,
	room, equipment string,
) (*models.DailySurgeryRecord, error) {
	row := r.db.QueryRow(ctx,
		baseSelectSurgery()+" WHERE date=$1 AND room=$2 AND equipment=$3",
		date, room, equipment)
	return scanSurgery(row)
}

func (r *surgeryRepo) List(ctx context.Context, f SurgeryFilter) ([]*models.DailySurgeryRecord, error) {
	sql := baseSelectSurgery() + " WHERE 1=1"
	args := []interface{}{}
	idx := 1

	if f.Date != nil {
		sql += fmt.Sprintf(" AND date=$%d", idx)
		args = append(args, *f.Date)
		idx++
	}
	if f.Room != "" {
		sql += fmt.Sprintf(" AND room=$%d", idx)
		args = append(args, f.Room)
		idx++
	}
	sql += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.DailySurgeryRecord
	for rows.Next() {
		rec, err := scanSurgery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *surgeryRepo) Update(ctx context.Context, rec *models.DailySurgeryRecord) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE daily_surgery_records SET
            date=$2, weekday_name=$3, room=$4, equipment=$5,
            in_use=$6, equipment_state=$7, observations=$8,
            service_signer_name=$9, round_signer_name=$10,
            service_signature=$11, round_signature=$12,
            updated_at=NOW()
        WHERE id=$1
    `,
		rec.ID,
		rec.Date,
		rec.WeekdayName,
		rec.Room,
		rec.Equipment,
		rec.InUse,
		rec.EquipmentState,
		rec.Observations,
		rec.ServiceSignerName,
		rec.RoundSignerName,
		rec.ServiceSignature,
		rec.RoundSignature,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *surgeryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM daily_surgery_records WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
