package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/allisson/leadlink/internal/database"
	apperrors "github.com/allisson/leadlink/internal/errors"
	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
)

// MySQLRealtorRepository handles realtor persistence for MySQL.
type MySQLRealtorRepository struct {
	db *sql.DB
}

// NewMySQLRealtorRepository creates a new MySQLRealtorRepository.
func NewMySQLRealtorRepository(db *sql.DB) *MySQLRealtorRepository {
	return &MySQLRealtorRepository{db: db}
}

// Create inserts a realtor. A duplicate email returns ErrRealtorAlreadyExists.
// MySQL has no RETURNING, so timestamps are set from the application clock.
func (r *MySQLRealtorRepository) Create(ctx context.Context, realtor *realtorDomain.Realtor) error {
	querier := database.GetTx(ctx, r.db)

	customization, err := json.Marshal(realtor.Customization)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal customization")
	}

	now := nowUTC()
	query := `INSERT INTO realtors (id, name, email, company, phone, license, photo_url, customization, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query,
		realtor.ID, realtor.Name, realtor.Email, realtor.Company, realtor.Phone, realtor.License,
		realtor.PhotoURL, customization, now, now,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return realtorDomain.ErrRealtorAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create realtor")
	}

	realtor.CreatedAt = now
	realtor.UpdatedAt = now
	return nil
}

// GetByID retrieves a realtor by id.
func (r *MySQLRealtorRepository) GetByID(ctx context.Context, id string) (*realtorDomain.Realtor, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, company, phone, license, photo_url, customization, created_at, updated_at
			  FROM realtors WHERE id = ?`

	return scanRealtor(querier.QueryRowContext(ctx, query, id))
}

// UpdateCustomization replaces the stored form customization.
func (r *MySQLRealtorRepository) UpdateCustomization(
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
		`UPDATE realtors SET customization = ?, updated_at = ? WHERE id = ?`, data, nowUTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update customization")
	}
	return requireAffected(result)
}
