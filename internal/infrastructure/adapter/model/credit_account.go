package model

import (
	"time"
)

// CreditAccount is the database model for an account's balance row
type CreditAccount struct {
	AccountID     string    `gorm:"primaryKey;type:varchar(255)"`
	Balance       int64     `gorm:"not null;check:chk_credit_accounts_balance_non_negative,balance >= 0"`
	TotalConsumed int64     `gorm:"not null;default:0;check:chk_credit_accounts_total_consumed_non_negative,total_consumed >= 0"`
	LastUpdated   time.Time `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for CreditAccount
func (CreditAccount) TableName() string {
	return "credit_accounts"
}
