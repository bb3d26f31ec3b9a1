// Package repository stores share token records in the share_tokens table, one row per realtor.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/allisson/leadlink/internal/database"
	apperrors "github.com/allisson/leadlink/internal/errors"
	"github.com/allisson/leadlink/internal/sharelink/domain"
)

// PostgreSQLShareLinkRepository handles token record persistence for PostgreSQL.
type PostgreSQLShareLinkRepository struct {
	db *sql.DB
}

// NewPostgreSQLShareLinkRepository creates a new PostgreSQLShareLinkRepository.
func NewPostgreSQLShareLinkRepository(db *sql.DB) *PostgreSQLShareLinkRepository {
	return &PostgreSQLShareLinkRepository{db: db}
}

// Get returns the realtor's record or domain.ErrShareTokenNotFound.
func (r *PostgreSQLShareLinkRepository) Get(ctx context.Context, realtorID string) (*domain.TokenRecord, error) {
	querier := database.GetTx(ctx, r.db)

	row := querier.QueryRowContext(ctx, `SELECT record FROM share_tokens WHERE realtor_id = $1`, realtorID)
	return scanRecord(row)
}

// Save upserts the record. The last write for a realtor wins.
func (r *PostgreSQLShareLinkRepository) Save(ctx context.Context, record *domain.TokenRecord) error {
	querier := database.GetTx(ctx, r.db)

	data, err := json.Marshal(record)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal token record")
	}

	query := `INSERT INTO share_tokens (realtor_id, token, record, updated_at)
			  VALUES ($1, $2, $3, NOW())
			  ON CONFLICT (realtor_id) DO UPDATE
			  SET token = EXCLUDED.token, record = EXCLUDED.record, updated_at = EXCLUDED.updated_at`

	if _, err := querier.ExecContext(ctx, query, record.Metadata.RealtorID, record.Token, data); err != nil {
		return apperrors.Wrap(err, "failed to save token record")
	}
	return nil
}

func scanRecord(row *sql.Row) (*domain.TokenRecord, error) {
	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrShareTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get token record")
	}

	var record domain.TokenRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal token record")
	}
	return &record, nil
}
