package utils

import (
	"context"

	"elswallet/config"
	"elswallet/database"
	walletService "elswallet/services/wallet"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// InitializeAuditScheduler sets up the periodic ledger consistency audit.
// Every run re-checks that each wallet's balance equals its opening balance
// plus the sum of its ledger entries.
func InitializeAuditScheduler() {
	c := cron.New()

	_, err := c.AddFunc(config.AppConfig.AuditCronSpec, func() {
		service := walletService.NewWalletService(database.Database.Db, nil)
		drifted, err := service.Audit(context.Background())
		if err != nil {
			logrus.Errorf("[LEDGER-AUDIT] Audit run failed: %v", err)
			return
		}
		if len(drifted) == 0 {
			logrus.Info("[LEDGER-AUDIT] Ledger is consistent")
			return
		}
		for _, result := range drifted {
			logrus.Errorf("[LEDGER-AUDIT] Wallet %d (user %d) drifted: balance=%s expected=%s",
				result.WalletID, result.UserID, result.Balance.StringFixed(2), result.Expected.StringFixed(2))
		}
	})
	if err != nil {
		logrus.Errorf("[LEDGER-AUDIT] Invalid audit schedule %q: %v", config.AppConfig.AuditCronSpec, err)
		return
	}

	c.Start()
	logrus.Infof("[LEDGER-AUDIT] Ledger audit scheduler started (%s)", config.AppConfig.AuditCronSpec)
}
