package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet holds a single user's balance and owns its transaction and
// payment-request history. At most one wallet exists per user.
type Wallet struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"uniqueIndex;not null" json:"userId"`
	Name   string `gorm:"type:varchar(100);default:'Unknown'" json:"name"`
	Email  string `gorm:"type:varchar(255);index;default:'unknown@example.com'" json:"email"`

	Balance decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"balance"`

	// Opening balance recorded at creation. It is not a ledger event, so the
	// sum of transaction amounts equals Balance - InitialBalance at all times.
	InitialBalance decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"initialBalance"`

	// Version guards concurrent balance updates. Every balance mutation must
	// match the current version and bump it, or be retried.
	Version uint `gorm:"not null;default:0" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Transactions    []Transaction    `gorm:"foreignKey:WalletID;constraint:OnDelete:CASCADE" json:"transactions"`
	PaymentRequests []PaymentRequest `gorm:"foreignKey:WalletID;constraint:OnDelete:CASCADE" json:"paymentRequests"`
}

func (Wallet) TableName() string {
	return "wallets"
}
