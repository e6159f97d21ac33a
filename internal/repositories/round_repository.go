package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// RoundFilter narrows ListRounds. Zero values mean "no filter".
type RoundFilter struct {
	Category   models.RoundCategory
	Subservice string // matched as a case-insensitive substring
	UserID     *uuid.UUID
}

type RoundRepository interface {
	Create(ctx context.Context, e *models.RoundEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.RoundEntry, error)
	List(ctx context.Context, f RoundFilter) ([]*models.RoundEntry, error)
	Update(ctx context.Context, e *models.RoundEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type roundRepo struct {
	db DB
}

func NewRoundRepository(db DB) RoundRepository {
	return &roundRepo{db: db}
}

func baseSelectRound() string {
	return `
        SELECT
            id, user_id, category, subservice,
            finding, equipment_tag, work_order,
            has_safety_events, safety_events, out_of_service,
            service_signer_name, service_signature,
            service_signer_name_2, service_signature_2,
            service_signer_name_3, service_signature_3,
            round_signer_name, round_signature,
            created_at, updated_at
        FROM round_entries
    `
}

func scanRound(row pgx.Row) (*models.RoundEntry, error) {
	var e models.RoundEntry
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Category,
		&e.Subservice,
		&e.Finding,
		&e.EquipmentTag,
		&e.WorkOrder,
		&e.HasSafetyEvents,
		&e.SafetyEvents,
		&e.OutOfService,
		&e.ServiceSignerName,
		&e.ServiceSignature,
		&e.ServiceSignerName2,
		&e.ServiceSignature2,
		&e.ServiceSignerName3,
		&e.ServiceSignature3,
		&e.RoundSignerName,
		&e.RoundSignature,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *roundRepo) Create(ctx context.Context, e *models.RoundEntry) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO round_entries (
            id, user_id, category, subservice,
            finding, equipment_tag, work_order,
            has_safety_events, safety_events, out_of_service,
            service_signer_name, service_signature,
            service_signer_name_2, service_signature_2,
            service_signer_name_3, service_signature_3,
            round_signer_name, round_signature,
            created_at, updated_at
        ) VALUES (
            $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,
            $11,$12,$13,$14,$15,$16,$17,$18, NOW(), NOW()
        )
    `,
		e.ID,
		e.UserID,
		e.Category,
		e.Subservice,
		e.Finding,
		e.EquipmentTag,
		e.WorkOrder,
		e.HasSafetyEvents,
		e.SafetyEvents,
		e.OutOfService,
		e.ServiceSignerName,
		e.ServiceSignature,
		e.ServiceSignerName2,
		e.ServiceSignature2,
		e.ServiceSignerName3,
		e.ServiceSignature3,
		e.RoundSignerName,
		e.RoundSignature,
	)
	return err
}

func (r *roundRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.RoundEntry, error) {
	row := r.db.QueryRow(ctx, baseSelectRound()+" WHERE id=$1", id)
	return scanRound(row)
}

func (r *roundRepo) List(ctx context.Context, f RoundFilter) ([]*models.RoundEntry, error) {
	sql := baseSelectRound() + " WHERE 1=1"
	args := []interface{}{}
	idx := 1

	if f.Category != "" {
		sql += fmt.Sprintf(" AND category=$%d", idx)
		args = append(args, f.Category)
		idx++
	}
	if f.Subservice != "" {
		sql += fmt.Sprintf(" AND subservice ILIKE $%d", idx)
		args = append(args, "%"+f.Subservice+"%")
		idx++
	}
	if f.UserID != nil {
		sql += fmt.Sprintf(" AND user_id=$%d", idx)
		args = append(args, *f.UserID)
		idx++
	}
	sql += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.RoundEntry
	for rows.Next() {
		e, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *roundRepo) Update(ctx context.Context, e *models.RoundEntry) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE round_entries SET
            category=$2, subservice=$3,
            finding=$4, equipment_tag=$5, work_order=$6,
            has_safety_events=$7, safety_events=$8, out_of_service=$9,
            service_signer_name=$10, service_signature=$11,
            service_signer_name_2=$12, service_signature_2=$13,
            service_signer_name_3=$14, service_signature_3=$15,
            round_signer_name=$16, round_signature=$17,
            updated_at=NOW()
        WHERE id=$1
    `,
		e.ID,
		e.Category,
		e.Subservice,
		e.Finding,
		e.EquipmentTag,
		e.WorkOrder,
		e.HasSafetyEvents,
		e.SafetyEvents,
		e.OutOfService,
		e.ServiceSignerName,
		e.ServiceSignature,
		e.ServiceSignerName2,
		e.ServiceSignature2,
		e.ServiceSignerName3,
		e.ServiceSignature3,
		e.RoundSignerName,
		e.RoundSignature,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *roundRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM round_entries WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
