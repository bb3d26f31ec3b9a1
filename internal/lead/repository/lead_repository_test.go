package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	leadDomain "github.com/allisson/leadlink/internal/lead/domain"
)

var scanColumns = []string{
	"id", "realtor_id", "token", "full_name", "email", "phone", "property_address", "city", "property_type",
	"selling_timeline", "estimated_value", "notes", "source", "is_duplicate", "submitted_at",
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func testLead() *leadDomain.Lead {
	return &leadDomain.Lead{
		ID:              uuid.MustParse("0194a1b2-c3d4-7e5f-8071-8293a4b5c6d7"),
		RealtorID:       "realtor_42",
		Token:           "realtor_42-1737626400123-3f2a7c1e-8b4d-4a8e-9f1a-2b3c4d5e6f70",
		FullName:        "John Smith",
		Email:           "john@example.com",
		Phone:           "(555) 123-4567",
		PropertyAddress: "123 Main Street",
		City:            "Springfield",
		PropertyType:    leadDomain.PropertyTypeCondo,
		SellingTimeline: leadDomain.SellingTimelineImmediately,
		Source:          leadDomain.SourcePublicForm,
		SubmittedAt:     time.Date(2025, 1, 23, 11, 0, 0, 0, time.UTC),
	}
}

func TestPostgreSQLLeadRepository_Create(t *testing.T) {
	ctx := context.Background()
	lead := testLead()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO leads`)).
			WithArgs(
				lead.ID.String(), lead.RealtorID, lead.Token, lead.FullName, lead.Email, lead.Phone,
				lead.PropertyAddress, lead.City, "condo", "immediately", "", "", "public_form", false,
				lead.SubmittedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewPostgreSQLLeadRepository(db).Create(ctx, lead))
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO leads`)).WillReturnError(errors.New("fk violation"))

		err := NewPostgreSQLLeadRepository(db).Create(ctx, lead)

		assert.ErrorContains(t, err, "failed to create lead")
	})
}

func TestPostgreSQLLeadRepository_ExistsByEmail(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM leads WHERE realtor_id = $1 AND email = $2)`)

	t.Run("Success_Exists", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs("realtor_42", "john@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := NewPostgreSQLLeadRepository(db).ExistsByEmail(ctx, "realtor_42", "john@example.com")

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WillReturnError(errors.New("timeout"))

		_, err := NewPostgreSQLLeadRepository(db).ExistsByEmail(ctx, "realtor_42", "john@example.com")

		assert.ErrorContains(t, err, "failed to check duplicate lead")
	})
}

func TestPostgreSQLLeadRepository_ListByRealtor(t *testing.T) {
	ctx := context.Background()
	lead := testLead()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		rows := sqlmock.NewRows(scanColumns).AddRow(
			lead.ID.String(), lead.RealtorID, lead.Token, lead.FullName, lead.Email, lead.Phone,
			lead.PropertyAddress, lead.City, "condo", "immediately", "", "", "public_form", true, lead.SubmittedAt,
		)
		mock.ExpectQuery(regexp.QuoteMeta(`LIMIT $2 OFFSET $3`)).
			WithArgs("realtor_42", 25, 50).
			WillReturnRows(rows)

		leads, err := NewPostgreSQLLeadRepository(db).ListByRealtor(ctx, "realtor_42", 50, 25)

		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Equal(t, lead.ID, leads[0].ID)
		assert.Equal(t, leadDomain.PropertyTypeCondo, leads[0].PropertyType)
		assert.True(t, leads[0].IsDuplicate)
	})

	t.Run("Success_Empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM leads WHERE realtor_id = $1`)).
			WillReturnRows(sqlmock.NewRows(scanColumns))

		leads, err := NewPostgreSQLLeadRepository(db).ListByRealtor(ctx, "realtor_42", 0, 25)

		require.NoError(t, err)
		assert.NotNil(t, leads)
		assert.Empty(t, leads)
	})
}

func TestMySQLLeadRepository(t *testing.T) {
	ctx := context.Background()
	lead := testLead()
	idBytes, err := lead.ID.MarshalBinary()
	require.NoError(t, err)

	t.Run("Success_CreateStoresBinaryID", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO leads`)).
			WithArgs(
				idBytes, lead.RealtorID, lead.Token, lead.FullName, lead.Email, lead.Phone,
				lead.PropertyAddress, lead.City, "condo", "immediately", "", "", "public_form", false,
				lead.SubmittedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewMySQLLeadRepository(db).Create(ctx, lead))
	})

	t.Run("Success_ExistsByEmail", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE realtor_id = ? AND email = ?`)).
			WithArgs("realtor_42", "john@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := NewMySQLLeadRepository(db).ExistsByEmail(ctx, "realtor_42", "john@example.com")

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Success_ListDecodesBinaryID", func(t *testing.T) {
		db, mock := newMockDB(t)
		rows := sqlmock.NewRows(scanColumns).AddRow(
			idBytes, lead.RealtorID, lead.Token, lead.FullName, lead.Email, lead.Phone,
			lead.PropertyAddress, lead.City, "condo", "immediately", "", "", "public_form", false, lead.SubmittedAt,
		)
		mock.ExpectQuery(regexp.QuoteMeta(`LIMIT ? OFFSET ?`)).
			WithArgs("realtor_42", 10, 0).
			WillReturnRows(rows)

		leads, err := NewMySQLLeadRepository(db).ListByRealtor(ctx, "realtor_42", 0, 10)

		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Equal(t, lead.ID, leads[0].ID)
	})

	t.Run("Error_ListBadID", func(t *testing.T) {
		db, mock := newMockDB(t)
		rows := sqlmock.NewRows(scanColumns).AddRow(
			[]byte{1, 2, 3}, lead.RealtorID, lead.Token, lead.FullName, lead.Email, lead.Phone,
			lead.PropertyAddress, lead.City, "condo", "immediately", "", "", "public_form", false, lead.SubmittedAt,
		)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM leads WHERE realtor_id = ?`)).WillReturnRows(rows)

		_, err := NewMySQLLeadRepository(db).ListByRealtor(ctx, "realtor_42", 0, 10)

		assert.ErrorContains(t, err, "failed to decode lead id")
	})
}
