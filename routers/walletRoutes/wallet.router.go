package walletRoutes

import (
	walletController "elswallet/controllers/wallet"
	walletValidator "elswallet/validators/wallet"

	"github.com/gofiber/fiber/v2"
)

func SetupWalletRoutes(app *fiber.App) {
	walletGroup := app.Group("/wallet")

	// Admin routes (registered before :userId so the literal segment wins)
	adminGroup := walletGroup.Group("/admin")
	adminGroup.Get("/stats", walletController.GetWalletStats)

	walletGroup.Post("/create/:userId", walletValidator.CreateWallet(), walletController.CreateWallet)
	walletGroup.Post("/add-money", walletValidator.AddMoney(), walletController.AddMoney)
	walletGroup.Post("/send-money", walletValidator.SendMoney(), walletController.SendMoney)
	walletGroup.Post("/audit", walletController.RunAudit)

	walletGroup.Get("/:userId", walletController.GetWallet)
	walletGroup.Get("/:userId/balance", walletController.GetWalletBalance)
	walletGroup.Get("/:userId/history", walletController.GetWalletHistory)
}
