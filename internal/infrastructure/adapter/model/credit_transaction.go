package model

import (
	"time"
)

// CreditTransaction is the database model for one append-only ledger row
type CreditTransaction struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	AccountID    string    `gorm:"type:varchar(255);not null;index"`
	Amount       int64     `gorm:"not null;check:chk_credit_transactions_amount_non_zero,amount <> 0"`
	BalanceAfter int64     `gorm:"not null;check:chk_credit_transactions_balance_after_non_negative,balance_after >= 0"`
	Kind         string    `gorm:"type:varchar(20);not null;check:chk_credit_transactions_kind,kind IN ('INITIAL','DEBIT','PURCHASE','BONUS','REFUND')"`
	Description  string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`

	Account CreditAccount `gorm:"foreignKey:AccountID;references:AccountID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName specifies the table name for CreditTransaction
func (CreditTransaction) TableName() string {
	return "credit_transactions"
}
