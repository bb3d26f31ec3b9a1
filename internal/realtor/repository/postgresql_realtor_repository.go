// Package repository provides realtor persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/allisson/leadlink/internal/database"
	apperrors "github.com/allisson/leadlink/internal/errors"
	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
)

// PostgreSQLRealtorRepository handles realtor persistence for PostgreSQL.
type PostgreSQLRealtorRepository struct {
	db *sql.DB
}

// NewPostgreSQLRealtorRepository creates a new PostgreSQLRealtorRepository.
func NewPostgreSQLRealtorRepository(db *sql.DB) *PostgreSQLRealtorRepository {
	return &PostgreSQLRealtorRepository{db: db}
}

// Create inserts a realtor. A duplicate email returns ErrRealtorAlreadyExists.
func (r *PostgreSQLRealtorRepository) Create(ctx context.Context, realtor *realtorDomain.Realtor) error {
	querier := database.GetTx(ctx, r.db)

	customization, err := json.Marshal(realtor.Customization)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal customization")
	}

	query := `INSERT INTO realtors (id, name, email, company, phone, license, photo_url, customization, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			  RETURNING created_at, updated_at`

	err = querier.QueryRowContext(ctx, query,
		realtor.ID, realtor.Name, realtor.Email, realtor.Company, realtor.Phone, realtor.License,
		realtor.PhotoURL, customization,
	).Scan(&realtor.CreatedAt, &realtor.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return realtorDomain.ErrRealtorAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create realtor")
	}
	return nil
}

// GetByID retrieves a realtor by id.
func (r *PostgreSQLRealtorRepository) GetByID(ctx context.Context, id string) (*realtorDomain.Realtor, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, company, phone, license, photo_url, customization, created_at, updated_at
			  FROM realtors WHERE id = $1`

	return scanRealtor(querier.QueryRowContext(ctx, query, id))
}

// UpdateCustomization replaces the stored form customization.
func (r *PostgreSQLRealtorRepository) UpdateCustomization(
	ctx context.Context,
	id string,
	customization realtorDomain.FormCustomization,
) error {
	querier := database.GetTx(ctx, r.db)

	data, err := json.Marshal(customization)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal customization")
	}

	result, err := querier.ExecContext(ctx,
		`UPDATE realtors SET customization = $1, updated_at = NOW() WHERE id = $2`, data, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update customization")
	}
	return requireAffected(result)
}

// scanRealtor reads one realtor row in the column order both dialects select.
func scanRealtor(row *sql.Row) (*realtorDomain.Realtor, error) {
	var realtor realtorDomain.Realtor
	var customization []byte

	err := row.Scan(
		&realtor.ID, &realtor.Name, &realtor.Email, &realtor.Company, &realtor.Phone, &realtor.License,
		&realtor.PhotoURL, &customization, &realtor.CreatedAt, &realtor.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, realtorDomain.ErrRealtorNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get realtor")
	}

	realtor.Customization = realtorDomain.DefaultFormCustomization()
	if len(customization) > 0 {
		if err := json.Unmarshal(customization, &realtor.Customization); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal customization")
		}
	}

	return &realtor, nil
}

func requireAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return realtorDomain.ErrRealtorNotFound
	}
	return nil
}
