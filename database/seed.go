package database

import (
	"time"

	"elswallet/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedWallets loads the demo dataset: two wallets with a short transaction
// history and one historic payment request. Existing rows are left alone.
func SeedWallets(db *gorm.DB) error {
	wallets := []models.Wallet{
		{
			ID:             1,
			UserID:         1,
			Name:           "Kimsreng",
			Email:          "kimsreng@example.com",
			Balance:        decimal.RequireFromString("1234.56"),
			InitialBalance: decimal.RequireFromString("1199.55"),
		},
		{
			ID:             2,
			UserID:         2,
			Name:           "User",
			Email:          "user@example.com",
			Balance:        decimal.RequireFromString("500.00"),
			InitialBalance: decimal.RequireFromString("500.00"),
		},
	}

	transactions := []models.Transaction{
		{
			ID:       1,
			WalletID: 1,
			Type:     "Payment Received",
			Date:     time.Date(2025, 6, 17, 14, 30, 0, 0, time.UTC),
			Amount:   decimal.RequireFromString("125.00"),
			Status:   models.TransactionStatusCompleted,
		},
		{
			ID:       2,
			WalletID: 1,
			Type:     "Product Purchase",
			Date:     time.Date(2025, 6, 16, 16, 15, 0, 0, time.UTC),
			Amount:   decimal.RequireFromString("-89.99"),
			Status:   models.TransactionStatusCompleted,
		},
	}

	paymentRequests := []models.PaymentRequest{
		{
			ID:             1,
			WalletID:       1,
			SenderWalletID: 1,
			Recipientor:    "user123@example.com",
			Amount:         decimal.RequireFromString("100.00"),
			Description:    "Test Payment",
			Status:         models.PaymentRequestStatusPending,
			CreatedAt:      time.Date(2025, 6, 17, 11, 0, 0, 0, time.UTC),
		},
	}

	for _, wallet := range wallets {
		result := db.Where(models.Wallet{ID: wallet.ID}).FirstOrCreate(&wallet)
		if result.Error != nil {
			return result.Error
		}
	}

	for _, transaction := range transactions {
		result := db.Where(models.Transaction{ID: transaction.ID}).FirstOrCreate(&transaction)
		if result.Error != nil {
			return result.Error
		}
	}

	for _, request := range paymentRequests {
		result := db.Where(models.PaymentRequest{ID: request.ID}).FirstOrCreate(&request)
		if result.Error != nil {
			return result.Error
		}
	}

	logrus.Info("Demo wallets seeded successfully")
	return nil
}
