package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func newTestUnitOfWork(t *testing.T, isolation string) (*UnitOfWork, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewUnitOfWork(db, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider(), isolation), mock
}

func TestNormalizeIsolationLevel(t *testing.T) {
	testCases := map[string]string{
		"":                IsolationReadCommitted,
		"read committed":  IsolationReadCommitted,
		"serializable":    IsolationSerializable,
		"REPEATABLE_READ": IsolationRepeatableRead,
		"bogus":           IsolationReadCommitted,
	}
	for input, expected := range testCases {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, expected, NormalizeIsolationLevel(input))
		})
	}
}

func TestUnitOfWork_CommitPath(t *testing.T) {
	uow, mock := newTestUnitOfWork(t, "")

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE credit_accounts SET balance = balance - $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(7))
	mock.ExpectCommit()

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)

	result, err := uow.GetBalanceStore(txCtx).DebitIfSufficient(txCtx, "user-1", 3)
	require.NoError(t, err)
	assert.Equal(t, entity.Succeeded(7), result)

	require.NoError(t, uow.Commit(txCtx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_SetsStricterIsolation(t *testing.T) {
	uow, mock := newTestUnitOfWork(t, "serializable")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, uow.Rollback(txCtx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_Failures(t *testing.T) {
	t.Run("begin failure is a storage failure", func(t *testing.T) {
		uow, mock := newTestUnitOfWork(t, "")
		mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

		_, err := uow.Begin(context.Background())

		assert.ErrorIs(t, err, errs.ErrStorageFailure)
	})

	t.Run("isolation failure rolls back", func(t *testing.T) {
		uow, mock := newTestUnitOfWork(t, IsolationSerializable)
		mock.ExpectBegin()
		mock.ExpectExec("SET TRANSACTION").WillReturnError(errors.New("syntax error"))
		mock.ExpectRollback()

		_, err := uow.Begin(context.Background())

		assert.ErrorIs(t, err, errs.ErrStorageFailure)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit failure is a storage failure", func(t *testing.T) {
		uow, mock := newTestUnitOfWork(t, "")
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("connection reset by peer"))

		txCtx, err := uow.Begin(context.Background())
		require.NoError(t, err)

		err = uow.Commit(txCtx)
		assert.ErrorIs(t, err, errs.ErrStorageFailure)
	})

	t.Run("second rollback is tolerated", func(t *testing.T) {
		uow, mock := newTestUnitOfWork(t, "")
		mock.ExpectBegin()
		mock.ExpectRollback()

		txCtx, err := uow.Begin(context.Background())
		require.NoError(t, err)

		require.NoError(t, uow.Rollback(txCtx))
		assert.NoError(t, uow.Rollback(txCtx))
	})

	t.Run("commit and rollback need a unit of work", func(t *testing.T) {
		uow, _ := newTestUnitOfWork(t, "")

		assert.ErrorIs(t, uow.Commit(context.Background()), errs.ErrNoActiveUnitOfWork)
		assert.ErrorIs(t, uow.Rollback(context.Background()), errs.ErrNoActiveUnitOfWork)
	})
}

func TestUnitOfWork_OutsideTransaction(t *testing.T) {
	uow, mock := newTestUnitOfWork(t, "")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM credit_transactions WHERE account_id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"total_earned", "total_used", "net_amount", "transaction_count"}).AddRow(10, 0, 10, 1))

	agg, err := uow.GetTransactionLedger(context.Background()).Aggregate(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, int64(10), agg.NetAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
