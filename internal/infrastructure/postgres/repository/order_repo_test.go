package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
)

func newMockOrderRepo(t *testing.T) (*DefaultOrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewDefaultOrderRepository(gdb), mock
}

func TestUpdateStatusFrom(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMockOrderRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "orders" SET`).
			WithArgs("paid", sqlmock.AnyArg(), int64(42), "pending").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.UpdateStatusFrom(ctx, 42, domain.StatusPending, domain.StatusPaid, domain.OrderStatusPatch{})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("LostRace", func(t *testing.T) {
		repo, mock := newMockOrderRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "orders" SET`).
			WithArgs("paid", sqlmock.AnyArg(), int64(42), "pending").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err := repo.UpdateStatusFrom(ctx, 42, domain.StatusPending, domain.StatusPaid, domain.OrderStatusPatch{})
		assert.ErrorIs(t, err, domain.ErrStatusConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MissingOrder", func(t *testing.T) {
		repo, mock := newMockOrderRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "orders" SET`).
			WithArgs("paid", sqlmock.AnyArg(), int64(404), "pending").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE id = \$1`).
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := repo.UpdateStatusFrom(ctx, 404, domain.StatusPending, domain.StatusPaid, domain.OrderStatusPatch{})
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReserveReceiptHash(t *testing.T) {
	ctx := context.Background()
	hash := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"

	t.Run("FirstUploadWins", func(t *testing.T) {
		repo, mock := newMockOrderRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "receipts_hash"`).
			WithArgs(hash, int64(7), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		err := repo.ReserveReceiptHash(ctx, hash, 7)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateReportsOwningOrder", func(t *testing.T) {
		repo, mock := newMockOrderRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "receipts_hash"`).
			WithArgs(hash, int64(9), sqlmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()
		mock.ExpectQuery(`SELECT \* FROM "receipts_hash" WHERE image_hash = \$1`).
			WithArgs(hash, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "image_hash", "order_id"}).AddRow(1, hash, int64(7)))

		err := repo.ReserveReceiptHash(ctx, hash, 9)

		var dup *domain.DuplicateReceiptError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, int64(7), dup.OrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAttachReceipt_ResetsVerdictSlot(t *testing.T) {
	repo, mock := newMockOrderRepo(t)
	hash := "a665a45920422f9d417e4867efdc4fb8a04a1f3fff1fa07e998e86f7f7a27ae3"

	// Columns land alphabetically; receipt_validated_at and
	// validation_verdict must be cleared so a re-uploaded receipt after a
	// rejected verdict gets validated again instead of stalling forever.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET`).
		WithArgs(250.0, hash, "/uploads/r2.jpg", nil, sqlmock.AnyArg(), nil, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AttachReceipt(context.Background(), 42, "/uploads/r2.jpg", 250, hash)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseReceiptHash(t *testing.T) {
	repo, mock := newMockOrderRepo(t)
	hash := "a665a45920422f9d417e4867efdc4fb8a04a1f3fff1fa07e998e86f7f7a27ae3"

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "receipts_hash" WHERE image_hash = \$1`).
		WithArgs(hash).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReleaseReceiptHash(context.Background(), hash)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordVerdict(t *testing.T) {
	repo, mock := newMockOrderRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET .* WHERE id = \$4 AND receipt_validated_at IS NULL`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), `{"valid":false}`, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.RecordVerdict(context.Background(), 3, time.Now(), `{"valid":false}`)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
