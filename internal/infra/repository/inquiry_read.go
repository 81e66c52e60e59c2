package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"boat-quotes/internal/domain/inquiry"
	"boat-quotes/internal/infra"
	"boat-quotes/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// orderClauses whitelists the ORDER BY for each sort key; filter input never
// reaches the SQL text directly. The date keys sort by when the inquiry was
// saved, not by the trip date.
var orderClauses = map[queries.SortKey]string{
	queries.SortUpdated:  "updated_at DESC",
	queries.SortDate:     "created_at DESC",
	queries.SortDateAsc:  "created_at ASC",
	queries.SortCustomer: "customer->>'name' ASC",
	queries.SortPrice:    "(result->>'customerPrice')::numeric DESC",
	queries.SortStatus:   "status ASC, updated_at DESC",
}

func orderClause(key queries.SortKey) string {
	if clause, ok := orderClauses[key]; ok {
		return clause
	}
	return orderClauses[queries.SortUpdated]
}

type InquiryReadStore struct {
	db *pgxpool.Pool
}

func NewInquiryReadStore(db *pgxpool.Pool) *InquiryReadStore {
	return &InquiryReadStore{db: db}
}

func (r *InquiryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InquiryView, error) {
	row := r.db.QueryRow(ctx, selectInquiry, id)

	view, err := scanInquiryView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("inquiry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inquiry", err)
	}
	return view, nil
}

func (r *InquiryReadStore) List(ctx context.Context, filter queries.ListFilter) ([]*queries.InquiryView, error) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = s.String()
		}
		conds = append(conds, fmt.Sprintf("status = ANY(%s)", arg(statuses)))
	}
	if filter.CreatedFrom != nil {
		conds = append(conds, fmt.Sprintf("created_at >= %s", arg(*filter.CreatedFrom)))
	}
	if filter.CreatedTo != nil {
		conds = append(conds, fmt.Sprintf("created_at <= %s", arg(*filter.CreatedTo)))
	}
	if filter.Search != "" {
		pattern := arg("%" + filter.Search + "%")
		conds = append(conds, fmt.Sprintf(
			"(customer->>'name' ILIKE %[1]s OR customer->>'email' ILIKE %[1]s OR trip->>'tourType' ILIKE %[1]s OR notes ILIKE %[1]s)",
			pattern,
		))
	}

	var sb strings.Builder
	sb.WriteString("SELECT id, status, customer, trip, pricing, result, notes, tags, created_at, updated_at FROM inquiries")
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	sb.WriteString(" ORDER BY ")
	sb.WriteString(orderClause(filter.SortBy))

	if filter.Limit > 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(arg(filter.Limit))
	}
	if filter.Offset > 0 {
		sb.WriteString(" OFFSET ")
		sb.WriteString(arg(filter.Offset))
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inquiries", err)
	}
	defer rows.Close()

	views := make([]*queries.InquiryView, 0)
	for rows.Next() {
		view, err := scanInquiryView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan inquiry row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read inquiry rows", err)
	}
	return views, nil
}

func (r *InquiryReadStore) CountByStatus(ctx context.Context) (queries.StatusCounts, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM inquiries GROUP BY status`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count inquiries by status", err)
	}
	defer rows.Close()

	counts := make(queries.StatusCounts, len(inquiry.AllStatuses()))
	for _, s := range inquiry.AllStatuses() {
		counts[s] = 0
	}
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan status count", err)
		}
		counts[inquiry.Status(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read status counts", err)
	}
	return counts, nil
}

func (r *InquiryReadStore) Stats(ctx context.Context) (*queries.StorageStats, error) {
	var (
		count        int
		lastModified *time.Time
	)
	err := r.db.QueryRow(ctx, `SELECT COUNT(*), MAX(updated_at) FROM inquiries`).
		Scan(&count, &lastModified)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read inquiry stats", err)
	}
	return &queries.StorageStats{Count: count, LastModified: lastModified}, nil
}

func scanInquiryView(row pgx.Row) (*queries.InquiryView, error) {
	var view queries.InquiryView
	var status string

	err := row.Scan(
		&view.ID, &status, &view.Customer, &view.Trip, &view.Pricing,
		&view.Result, &view.Notes, &view.Tags, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.Status = status
	return &view, nil
}
