package walletService

import (
	"context"

	"elswallet/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AuditResult reports a wallet whose balance does not match its ledger.
type AuditResult struct {
	WalletID uint            `json:"walletId"`
	UserID   uint            `json:"userId"`
	Balance  decimal.Decimal `json:"balance"`
	Expected decimal.Decimal `json:"expected"`
	Drift    decimal.Decimal `json:"drift"`
}

// Audit verifies the ledger invariant for every wallet: the sum of its
// transaction amounts must equal Balance - InitialBalance. It returns the
// wallets that drifted, which is empty on a healthy ledger. The whole scan
// runs in one transaction so a transfer committing mid-audit cannot show up
// as drift.
func (s *WalletService) Audit(ctx context.Context) ([]AuditResult, error) {
	drifted := []AuditResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var wallets []models.Wallet
		if err := tx.Find(&wallets).Error; err != nil {
			return err
		}

		for _, wallet := range wallets {
			var sum float64
			err := tx.Model(&models.Transaction{}).
				Where("wallet_id = ?", wallet.ID).
				Select("COALESCE(SUM(amount), 0)").
				Scan(&sum).Error
			if err != nil {
				return err
			}

			// Amounts carry two fractional digits; rounding strips the float
			// noise a SQL SUM over a REAL column may pick up.
			expected := wallet.InitialBalance.Add(decimal.NewFromFloat(sum)).Round(2)
			balance := wallet.Balance.Round(2)

			if !balance.Equal(expected) {
				drifted = append(drifted, AuditResult{
					WalletID: wallet.ID,
					UserID:   wallet.UserID,
					Balance:  balance,
					Expected: expected,
					Drift:    balance.Sub(expected),
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return drifted, nil
}
