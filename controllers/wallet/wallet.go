package walletController

import (
	"errors"

	"elswallet/database"
	"elswallet/middleware"
	"elswallet/models"
	walletService "elswallet/services/wallet"
	walletValidator "elswallet/validators/wallet"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Notifier is installed once at startup and handed to every service
// instance built for a request.
var Notifier walletService.Notifier

func service() *walletService.WalletService {
	return walletService.NewWalletService(database.Database.Db, Notifier)
}

// GetWallet returns the full wallet snapshot for a user: balance plus
// transaction and payment-request history.
func GetWallet(c *fiber.Ctx) error {
	userId, err := c.ParamsInt("userId")
	if err != nil || userId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	wallet, err := service().GetWallet(c.UserContext(), uint(userId))
	if err != nil {
		if errors.Is(err, walletService.ErrWalletNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Wallet not found!", nil)
		}
		logrus.Errorf("Failed to fetch wallet for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch wallet!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet fetched!", wallet)
}

// GetWalletBalance returns only the user's current balance.
func GetWalletBalance(c *fiber.Ctx) error {
	userId, err := c.ParamsInt("userId")
	if err != nil || userId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	var wallet models.Wallet
	if err := database.Database.Db.Where("user_id = ?", userId).First(&wallet).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Wallet not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet balance fetched!", fiber.Map{
		"walletId": wallet.ID,
		"userId":   wallet.UserID,
		"balance":  wallet.Balance,
	})
}

// CreateWallet creates the wallet for a user. The body is optional and may
// carry display attributes and an opening balance.
func CreateWallet(c *fiber.Ctx) error {
	userId, err := c.ParamsInt("userId")
	if err != nil || userId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	reqData, ok := c.Locals("validatedCreateWallet").(*walletValidator.CreateWalletRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	initialBalance := decimal.NewFromFloat(reqData.InitialBalance).Round(2)

	wallet, err := service().CreateWallet(c.UserContext(), uint(userId), reqData.Name, reqData.Email, initialBalance)
	if err != nil {
		switch {
		case errors.Is(err, walletService.ErrWalletExists):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Wallet already exists for user!", nil)
		case errors.Is(err, walletService.ErrInvalidAmount):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Initial balance must not be negative!", nil)
		default:
			logrus.Errorf("Failed to create wallet for user %d: %v", userId, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create wallet!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet created!", wallet)
}

// AddMoney deposits money into the user's wallet.
func AddMoney(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAddMoney").(*walletValidator.AddMoneyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	amount := decimal.NewFromFloat(reqData.Amount).Round(2)

	wallet, err := service().AddMoney(c.UserContext(), reqData.UserID, amount, reqData.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, walletService.ErrInvalidAmount):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Amount must be greater than 0!", nil)
		case errors.Is(err, walletService.ErrWalletNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Wallet not found!", nil)
		case errors.Is(err, walletService.ErrConcurrentUpdate):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Wallet is busy, please retry!", nil)
		default:
			logrus.Errorf("Failed to add money for user %d: %v", reqData.UserID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add money!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Money added!", fiber.Map{
		"walletId":   wallet.ID,
		"userId":     wallet.UserID,
		"newBalance": wallet.Balance,
		"amount":     amount,
	})
}

// SendMoney transfers money from a sender wallet to a recipient resolved by
// email or name. Settlement is immediate.
func SendMoney(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSendMoney").(*walletValidator.SendMoneyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	amount := decimal.NewFromFloat(reqData.Amount).Round(2)

	request, err := service().SendMoney(c.UserContext(), reqData.SenderWalletID, reqData.Recipientor, amount, reqData.Description)
	if err != nil {
		switch {
		case errors.Is(err, walletService.ErrInvalidAmount):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Amount must be greater than 0!", nil)
		case errors.Is(err, walletService.ErrWalletNotFound):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Sender wallet not found!", nil)
		case errors.Is(err, walletService.ErrInsufficientBalance):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient balance in sender's wallet!", nil)
		case errors.Is(err, walletService.ErrRecipientNotFound):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Recipient wallet not found!", nil)
		case errors.Is(err, walletService.ErrAmbiguousRecipient):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Recipient identifier matches more than one wallet!", nil)
		case errors.Is(err, walletService.ErrSelfTransfer):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot send money to the same wallet!", nil)
		case errors.Is(err, walletService.ErrConcurrentUpdate):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Wallet is busy, please retry!", nil)
		default:
			logrus.Errorf("Failed to send money from wallet %d: %v", reqData.SenderWalletID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send money!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Money sent!", request)
}

// GetWalletHistory returns the user's transaction history, newest first.
func GetWalletHistory(c *fiber.Ctx) error {
	userId, err := c.ParamsInt("userId")
	if err != nil || userId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	var wallet models.Wallet
	if err := database.Database.Db.Where("user_id = ?", userId).First(&wallet).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Wallet not found!", nil)
	}

	// Parse query params
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	txnType := c.Query("type") // Credit, Debit, ...

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit
	db := database.Database.Db

	query := db.Model(&models.Transaction{}).Where("wallet_id = ?", wallet.ID)

	if txnType != "" {
		query = query.Where("type = ?", txnType)
	}

	var total int64
	query.Count(&total)

	var transactions []models.Transaction
	if err := query.
		Order("date DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		logrus.Errorf("Failed to fetch history for wallet %d: %v", wallet.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet history fetched!", fiber.Map{
		"transactions":   transactions,
		"currentBalance": wallet.Balance,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetWalletStats returns ledger-wide totals plus today's and this month's
// transaction volumes.
func GetWalletStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var walletCount int64
	if err := db.Model(&models.Wallet{}).Count(&walletCount).Error; err != nil {
		logrus.Errorf("Failed to count wallets: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	var totalBalance float64
	db.Model(&models.Wallet{}).Select("COALESCE(SUM(balance), 0)").Scan(&totalBalance)

	var transactionCount int64
	db.Model(&models.Transaction{}).Count(&transactionCount)

	today := now.BeginningOfDay().UTC()
	monthStart := now.BeginningOfMonth().UTC()

	var todayVolume, monthVolume float64
	db.Model(&models.Transaction{}).
		Where("amount > 0 AND date >= ?", today).
		Select("COALESCE(SUM(amount), 0)").Scan(&todayVolume)
	db.Model(&models.Transaction{}).
		Where("amount > 0 AND date >= ?", monthStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthVolume)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet stats fetched!", fiber.Map{
		"wallets":      walletCount,
		"totalBalance": decimal.NewFromFloat(totalBalance).Round(2),
		"transactions": transactionCount,
		"creditVolume": fiber.Map{
			"today":     decimal.NewFromFloat(todayVolume).Round(2),
			"thisMonth": decimal.NewFromFloat(monthVolume).Round(2),
		},
	})
}

// RunAudit checks every wallet's balance against the sum of its ledger
// entries and reports any drift.
func RunAudit(c *fiber.Ctx) error {
	drifted, err := service().Audit(c.UserContext())
	if err != nil {
		logrus.Errorf("Ledger audit failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Audit failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ledger audit completed!", fiber.Map{
		"healthy": len(drifted) == 0,
		"drifted": drifted,
	})
}
