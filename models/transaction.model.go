package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// TransactionType labels a ledger entry.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "Credit"
	TransactionTypeDebit  TransactionType = "Debit"
)

// TransactionStatus defines the lifecycle label of a ledger entry.
// Entries are written only after the balance mutation succeeds, so
// persisted rows always carry Completed.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "Completed"
)

// Transaction is an immutable, signed ledger entry recording a single
// balance change. Amount is positive for credits and negative for debits.
// Rows are created, never updated or deleted.
type Transaction struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	WalletID uint `gorm:"not null;index" json:"walletId"`

	Type   TransactionType   `gorm:"type:varchar(50);not null" json:"type"`
	Date   time.Time         `gorm:"not null" json:"date"`
	Amount decimal.Decimal   `gorm:"type:decimal(18,2);not null" json:"amount"`
	Status TransactionStatus `gorm:"type:varchar(20);not null" json:"status"`

	// Free-form details: payment method on deposits, transfer reference on
	// debits/credits produced by send-money.
	Metadata datatypes.JSON `json:"metadata,omitempty"`

	Wallet *Wallet `gorm:"foreignKey:WalletID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}
