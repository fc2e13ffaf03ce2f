package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	mcore "github.com/amirhossein-jamali/credit-ledger/mocks/port/core"
)

var fixedTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// newMockDB opens gorm's postgres dialector over a sqlmock connection
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
		NowFunc:                func() time.Time { return fixedTime },
	})
	require.NoError(t, err)
	return db, mock
}

func newTestTimeProvider(t *testing.T) *mcore.MockTimeProvider {
	timeProvider := mcore.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
	return timeProvider
}

func newTestBalanceStore(t *testing.T) (*BalanceStore, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewBalanceStore(db, newTestTimeProvider(t), logger.NewNoopLogger()), mock
}

func newTestTransactionLedger(t *testing.T) (*TransactionLedger, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewTransactionLedger(db, logger.NewNoopLogger()), mock
}
