package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/allisson/leadlink/internal/database"
	apperrors "github.com/allisson/leadlink/internal/errors"
	"github.com/allisson/leadlink/internal/sharelink/domain"
)

// MySQLShareLinkRepository handles token record persistence for MySQL.
type MySQLShareLinkRepository struct {
	db *sql.DB
}

// NewMySQLShareLinkRepository creates a new MySQLShareLinkRepository.
func NewMySQLShareLinkRepository(db *sql.DB) *MySQLShareLinkRepository {
	return &MySQLShareLinkRepository{db: db}
}

// Get returns the realtor's record or domain.ErrShareTokenNotFound.
func (r *MySQLShareLinkRepository) Get(ctx context.Context, realtorID string) (*domain.TokenRecord, error) {
	querier := database.GetTx(ctx, r.db)

	row := querier.QueryRowContext(ctx, `SELECT record FROM share_tokens WHERE realtor_id = ?`, realtorID)
	return scanRecord(row)
}

// Save upserts the record. The last write for a realtor wins.
func (r *MySQLShareLinkRepository) Save(ctx context.Context, record *domain.TokenRecord) error {
	querier := database.GetTx(ctx, r.db)

	data, err := json.Marshal(record)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal token record")
	}

	query := `INSERT INTO share_tokens (realtor_id, token, record, updated_at)
			  VALUES (?, ?, ?, ?)
			  ON DUPLICATE KEY UPDATE token = VALUES(token), record = VALUES(record), updated_at = VALUES(updated_at)`

	_, err = querier.ExecContext(ctx, query,
		record.Metadata.RealtorID, record.Token, data, time.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		return apperrors.Wrap(err, "failed to save token record")
	}
	return nil
}
