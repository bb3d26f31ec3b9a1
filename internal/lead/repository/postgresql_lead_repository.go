// Package repository provides lead persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/leadlink/internal/database"
	apperrors "github.com/allisson/leadlink/internal/errors"
	leadDomain "github.com/allisson/leadlink/internal/lead/domain"
)

const leadColumns = `id, realtor_id, token, full_name, email, phone, property_address, city, property_type,
			  selling_timeline, estimated_value, notes, source, is_duplicate, submitted_at`

// PostgreSQLLeadRepository handles lead persistence for PostgreSQL.
type PostgreSQLLeadRepository struct {
	db *sql.DB
}

// NewPostgreSQLLeadRepository creates a new PostgreSQLLeadRepository.
func NewPostgreSQLLeadRepository(db *sql.DB) *PostgreSQLLeadRepository {
	return &PostgreSQLLeadRepository{db: db}
}

// Create inserts a lead.
func (r *PostgreSQLLeadRepository) Create(ctx context.Context, lead *leadDomain.Lead) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO leads (` + leadColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := querier.ExecContext(ctx, query,
		lead.ID, lead.RealtorID, lead.Token, lead.FullName, lead.Email, lead.Phone, lead.PropertyAddress,
		lead.City, lead.PropertyType, lead.SellingTimeline, lead.EstimatedValue, lead.Notes, lead.Source,
		lead.IsDuplicate, lead.SubmittedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create lead")
	}
	return nil
}

// ExistsByEmail reports whether the realtor already has a lead with email.
func (r *PostgreSQLLeadRepository) ExistsByEmail(ctx context.Context, realtorID, email string) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	var exists bool
	err := querier.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM leads WHERE realtor_id = $1 AND email = $2)`, realtorID, email,
	).Scan(&exists)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check duplicate lead")
	}
	return exists, nil
}

// ListByRealtor returns the realtor's leads, newest first.
func (r *PostgreSQLLeadRepository) ListByRealtor(
	ctx context.Context,
	realtorID string,
	offset, limit int,
) ([]*leadDomain.Lead, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + leadColumns + `
			  FROM leads WHERE realtor_id = $1
			  ORDER BY submitted_at DESC, id DESC
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, realtorID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list leads")
	}
	defer rows.Close() //nolint:errcheck

	leads := make([]*leadDomain.Lead, 0)
	for rows.Next() {
		var lead leadDomain.Lead
		if err := rows.Scan(
			&lead.ID, &lead.RealtorID, &lead.Token, &lead.FullName, &lead.Email, &lead.Phone,
			&lead.PropertyAddress, &lead.City, &lead.PropertyType, &lead.SellingTimeline,
			&lead.EstimatedValue, &lead.Notes, &lead.Source, &lead.IsDuplicate, &lead.SubmittedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan lead")
		}
		leads = append(leads, &lead)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list leads")
	}
	return leads, nil
}
