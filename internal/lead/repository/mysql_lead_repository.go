package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/leadlink/internal/database"
	apperrors "github.com/allisson/leadlink/internal/errors"
	leadDomain "github.com/allisson/leadlink/internal/lead/domain"
)

// MySQLLeadRepository handles lead persistence for MySQL. Ids are stored as BINARY(16).
type MySQLLeadRepository struct {
	db *sql.DB
}

// NewMySQLLeadRepository creates a new MySQLLeadRepository.
func NewMySQLLeadRepository(db *sql.DB) *MySQLLeadRepository {
	return &MySQLLeadRepository{db: db}
}

// Create inserts a lead.
func (r *MySQLLeadRepository) Create(ctx context.Context, lead *leadDomain.Lead) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := lead.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to encode lead id")
	}

	query := `INSERT INTO leads (` + leadColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query,
		idBytes, lead.RealtorID, lead.Token, lead.FullName, lead.Email, lead.Phone, lead.PropertyAddress,
		lead.City, lead.PropertyType, lead.SellingTimeline, lead.EstimatedValue, lead.Notes, lead.Source,
		lead.IsDuplicate, lead.SubmittedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create lead")
	}
	return nil
}

// ExistsByEmail reports whether the realtor already has a lead with email.
func (r *MySQLLeadRepository) ExistsByEmail(ctx context.Context, realtorID, email string) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	var exists bool
	err := querier.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM leads WHERE realtor_id = ? AND email = ?)`, realtorID, email,
	).Scan(&exists)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check duplicate lead")
	}
	return exists, nil
}

// ListByRealtor returns the realtor's leads, newest first.
func (r *MySQLLeadRepository) ListByRealtor(
	ctx context.Context,
	realtorID string,
	offset, limit int,
) ([]*leadDomain.Lead, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + leadColumns + `
			  FROM leads WHERE realtor_id = ?
			  ORDER BY submitted_at DESC, id DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, realtorID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list leads")
	}
	defer rows.Close() //nolint:errcheck

	leads := make([]*leadDomain.Lead, 0)
	for rows.Next() {
		var lead leadDomain.Lead
		var idBytes []byte
		if err := rows.Scan(
			&idBytes, &lead.RealtorID, &lead.Token, &lead.FullName, &lead.Email, &lead.Phone,
			&lead.PropertyAddress, &lead.City, &lead.PropertyType, &lead.SellingTimeline,
			&lead.EstimatedValue, &lead.Notes, &lead.Source, &lead.IsDuplicate, &lead.SubmittedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan lead")
		}
		if err := lead.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to decode lead id")
		}
		leads = append(leads, &lead)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list leads")
	}
	return leads, nil
}
