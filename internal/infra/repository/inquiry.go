package repository

import (
	"context"
	"errors"
	"time"

	"boat-quotes/internal/domain/inquiry"
	"boat-quotes/internal/domain/pricing"
	"boat-quotes/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// InquiryRepository is the write side. Inquiry documents are stored as JSONB
// columns so the stored shape stays identical to the export format.
type InquiryRepository struct {
	db *pgxpool.Pool
}

func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{db: db}
}

const insertInquiry = `
INSERT INTO inquiries (id, status, customer, trip, pricing, result, notes, tags, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

func (r *InquiryRepository) Create(ctx context.Context, inq *inquiry.Inquiry) error {
	_, err := r.db.Exec(ctx, insertInquiry,
		inq.ID(), inq.Status().String(),
		inq.Customer(), inq.Trip(), inq.Pricing(), inq.Result(),
		inq.Notes(), inq.Tags(), inq.CreatedAt(), inq.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("inquiry already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert inquiry", err)
	}
	return nil
}

const selectInquiry = `
SELECT id, status, customer, trip, pricing, result, notes, tags, created_at, updated_at
FROM inquiries
WHERE id = $1
`

func (r *InquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error) {
	var (
		rowID                uuid.UUID
		status               string
		customer             inquiry.Customer
		trip                 inquiry.TripDetails
		selection            inquiry.PricingSelection
		result               pricing.Summary
		notes                string
		tags                 []string
		createdAt, updatedAt time.Time
	)

	err := r.db.QueryRow(ctx, selectInquiry, id).Scan(
		&rowID, &status, &customer, &trip, &selection, &result,
		&notes, &tags, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("inquiry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inquiry", err)
	}

	return inquiry.Reconstruct(
		rowID, inquiry.Status(status),
		customer, trip, selection, result,
		notes, tags, createdAt, updatedAt,
	), nil
}

const updateInquiry = `
UPDATE inquiries
SET status = $2, customer = $3, trip = $4, pricing = $5, result = $6,
    notes = $7, tags = $8, updated_at = $9
WHERE id = $1
`

func (r *InquiryRepository) Update(ctx context.Context, inq *inquiry.Inquiry) error {
	tag, err := r.db.Exec(ctx, updateInquiry,
		inq.ID(), inq.Status().String(),
		inq.Customer(), inq.Trip(), inq.Pricing(), inq.Result(),
		inq.Notes(), inq.Tags(), inq.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update inquiry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("inquiry not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *InquiryRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete inquiry", err)
	}
	return tag.RowsAffected() > 0, nil
}

const upsertInquiry = `
INSERT INTO inquiries (id, status, customer, trip, pricing, result, notes, tags, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE
SET status = EXCLUDED.status, customer = EXCLUDED.customer, trip = EXCLUDED.trip,
    pricing = EXCLUDED.pricing, result = EXCLUDED.result, notes = EXCLUDED.notes,
    tags = EXCLUDED.tags, updated_at = EXCLUDED.updated_at
`

func (r *InquiryRepository) Upsert(ctx context.Context, inq *inquiry.Inquiry) error {
	_, err := r.db.Exec(ctx, upsertInquiry,
		inq.ID(), inq.Status().String(),
		inq.Customer(), inq.Trip(), inq.Pricing(), inq.Result(),
		inq.Notes(), inq.Tags(), inq.CreatedAt(), inq.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert inquiry", err)
	}
	return nil
}

// ReplaceAll swaps the whole inquiry set atomically, for replace-mode import.
func (r *InquiryRepository) ReplaceAll(ctx context.Context, inquiries []*inquiry.Inquiry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM inquiries`); err != nil {
		return infra.WrapRepoErr("failed to clear inquiries", err)
	}

	batch := &pgx.Batch{}
	for _, inq := range inquiries {
		batch.Queue(insertInquiry,
			inq.ID(), inq.Status().String(),
			inq.Customer(), inq.Trip(), inq.Pricing(), inq.Result(),
			inq.Notes(), inq.Tags(), inq.CreatedAt(), inq.UpdatedAt(),
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return infra.WrapRepoErr("failed to insert imported inquiries", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit import", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
