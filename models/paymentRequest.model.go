package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRequestStatus defines the settlement state of a payment request.
type PaymentRequestStatus string

const (
	PaymentRequestStatusPending   PaymentRequestStatus = "Pending"
	PaymentRequestStatusCompleted PaymentRequestStatus = "Completed"
	PaymentRequestStatusRejected  PaymentRequestStatus = "Rejected"
)

// PaymentRequest records a transfer between two wallets. Transfers settle
// immediately inside the same database transaction, so rows created by
// send-money carry Completed. Rows are created, never updated or deleted.
type PaymentRequest struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	WalletID       uint `gorm:"not null;index" json:"walletId"`
	SenderWalletID uint `gorm:"not null" json:"senderWalletId"`

	// Identifier the sender supplied to name the recipient (email or display
	// name). Kept as entered; not a foreign key.
	Recipientor string `gorm:"type:varchar(255);not null" json:"recipientor"`

	Amount      decimal.Decimal      `gorm:"type:decimal(18,2);not null" json:"amount"`
	Description string               `gorm:"type:text" json:"description"`
	Status      PaymentRequestStatus `gorm:"type:varchar(20);not null" json:"status"`

	// External correlation id handed back to callers and webhooks.
	Reference string `gorm:"type:varchar(36);index" json:"reference"`

	CreatedAt time.Time `json:"createdAt"`

	Wallet *Wallet `gorm:"foreignKey:WalletID" json:"-"`
}

func (PaymentRequest) TableName() string {
	return "payment_requests"
}
