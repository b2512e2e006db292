package walletService

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"elswallet/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Balance updates are version-guarded; a conflicting writer forces a
// rollback and the whole unit of work is retried.
const maxBalanceRetries = 3

// TransferEvent describes a settled transfer, handed to the notifier after
// the database transaction commits.
type TransferEvent struct {
	Reference         string          `json:"reference"`
	SenderWalletID    uint            `json:"senderWalletId"`
	RecipientWalletID uint            `json:"recipientWalletId"`
	RecipientName     string          `json:"recipientName"`
	RecipientEmail    string          `json:"recipientEmail"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// Notifier receives transfer events after settlement. Implementations must
// not block the request path; delivery failures are theirs to handle.
type Notifier interface {
	NotifyTransfer(ctx context.Context, event TransferEvent)
}

// WalletService is the ledger core: the sole writer of wallet state. Every
// balance mutation it performs is paired with a transaction record inside a
// single database transaction.
type WalletService struct {
	db       *gorm.DB
	notifier Notifier
}

// NewWalletService creates a WalletService on top of the given database.
// The notifier may be nil.
func NewWalletService(db *gorm.DB, notifier Notifier) *WalletService {
	return &WalletService{
		db:       db,
		notifier: notifier,
	}
}

// GetWallet returns the wallet for the given user with its transactions and
// payment requests preloaded, newest first. Read-only.
func (s *WalletService) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := s.db.WithContext(ctx).
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		Preload("PaymentRequests", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("user_id = ?", userID).
		First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

// FindWalletByIdentifier resolves a wallet by email or display name. An
// exact email match wins; otherwise the identifier is matched against names.
// Neither key is unique, so an identifier shared by several wallets is an
// error rather than a guess.
func (s *WalletService) FindWalletByIdentifier(ctx context.Context, identifier string) (*models.Wallet, error) {
	return findWalletByIdentifier(s.db.WithContext(ctx), identifier)
}

func findWalletByIdentifier(tx *gorm.DB, identifier string) (*models.Wallet, error) {
	var matches []models.Wallet
	if err := tx.Where("email = ?", identifier).Limit(2).Find(&matches).Error; err != nil {
		return nil, err
	}
	if len(matches) > 1 {
		return nil, ErrAmbiguousRecipient
	}
	if len(matches) == 1 {
		return &matches[0], nil
	}

	if err := tx.Where("name = ?", identifier).Limit(2).Find(&matches).Error; err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, ErrRecipientNotFound
	case 1:
		return &matches[0], nil
	default:
		return nil, ErrAmbiguousRecipient
	}
}

// CreateWallet persists a new wallet for the user. A user can hold at most
// one wallet. The opening balance is not a ledger event, so no transaction
// is written for it.
func (s *WalletService) CreateWallet(ctx context.Context, userID uint, name, email string, initialBalance decimal.Decimal) (*models.Wallet, error) {
	if initialBalance.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if name == "" {
		name = "Unknown"
	}
	if email == "" {
		email = "unknown@example.com"
	}

	wallet := models.Wallet{
		UserID:         userID,
		Name:           name,
		Email:          email,
		Balance:        initialBalance,
		InitialBalance: initialBalance,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Wallet{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrWalletExists
		}
		return tx.Create(&wallet).Error
	})
	if err != nil {
		return nil, err
	}

	wallet.Transactions = []models.Transaction{}
	wallet.PaymentRequests = []models.PaymentRequest{}
	return &wallet, nil
}

// AddMoney credits the user's wallet and appends the matching Credit
// transaction. Both writes commit together or not at all.
func (s *WalletService) AddMoney(ctx context.Context, userID uint, amount decimal.Decimal, paymentMethod string) (*models.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var wallet models.Wallet
	for attempt := 0; attempt < maxBalanceRetries; attempt++ {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrWalletNotFound
				}
				return err
			}

			if err := applyBalance(tx, &wallet, wallet.Balance.Add(amount)); err != nil {
				return err
			}

			transaction := models.Transaction{
				WalletID: wallet.ID,
				Type:     models.TransactionTypeCredit,
				Date:     time.Now().UTC(),
				Amount:   amount,
				Status:   models.TransactionStatusCompleted,
				Metadata: transactionMetadata(map[string]string{"paymentMethod": paymentMethod}),
			}
			return tx.Create(&transaction).Error
		})
		if errors.Is(err, ErrConcurrentUpdate) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &wallet, nil
	}
	return nil, ErrConcurrentUpdate
}

// SendMoney transfers amount from the sender wallet to the wallet resolved
// from recipientIdentifier. The debit, the credit, both ledger entries and
// the payment-request record commit as one database transaction; a failure
// at any step leaves every balance untouched. Settlement is immediate, so
// the returned payment request is already Completed.
func (s *WalletService) SendMoney(ctx context.Context, senderWalletID uint, recipientIdentifier string, amount decimal.Decimal, description string) (*models.PaymentRequest, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var (
		request models.PaymentRequest
		event   TransferEvent
	)

	for attempt := 0; attempt < maxBalanceRetries; attempt++ {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var sender models.Wallet
			if err := tx.Where("id = ?", senderWalletID).First(&sender).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrWalletNotFound
				}
				return err
			}

			if sender.Balance.LessThan(amount) {
				return ErrInsufficientBalance
			}

			recipient, err := findWalletByIdentifier(tx, recipientIdentifier)
			if err != nil {
				return err
			}
			if recipient.ID == sender.ID {
				return ErrSelfTransfer
			}

			reference := uuid.NewString()
			createdAt := time.Now().UTC()
			meta := transactionMetadata(map[string]string{"reference": reference})

			if err := applyBalance(tx, &sender, sender.Balance.Sub(amount)); err != nil {
				return err
			}
			debit := models.Transaction{
				WalletID: sender.ID,
				Type:     models.TransactionTypeDebit,
				Date:     createdAt,
				Amount:   amount.Neg(),
				Status:   models.TransactionStatusCompleted,
				Metadata: meta,
			}
			if err := tx.Create(&debit).Error; err != nil {
				return err
			}

			if err := applyBalance(tx, recipient, recipient.Balance.Add(amount)); err != nil {
				return err
			}
			credit := models.Transaction{
				WalletID: recipient.ID,
				Type:     models.TransactionTypeCredit,
				Date:     createdAt,
				Amount:   amount,
				Status:   models.TransactionStatusCompleted,
				Metadata: meta,
			}
			if err := tx.Create(&credit).Error; err != nil {
				return err
			}

			request = models.PaymentRequest{
				WalletID:       sender.ID,
				SenderWalletID: sender.ID,
				Recipientor:    recipientIdentifier,
				Amount:         amount,
				Description:    description,
				Status:         models.PaymentRequestStatusCompleted,
				Reference:      reference,
				CreatedAt:      createdAt,
			}
			if err := tx.Create(&request).Error; err != nil {
				return err
			}

			event = TransferEvent{
				Reference:         reference,
				SenderWalletID:    sender.ID,
				RecipientWalletID: recipient.ID,
				RecipientName:     recipient.Name,
				RecipientEmail:    recipient.Email,
				Amount:            amount,
				Description:       description,
				CreatedAt:         createdAt,
			}
			return nil
		})
		if errors.Is(err, ErrConcurrentUpdate) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if s.notifier != nil {
			s.notifier.NotifyTransfer(ctx, event)
		}
		return &request, nil
	}
	return nil, ErrConcurrentUpdate
}

// applyBalance writes a new balance guarded by the wallet's version. A
// concurrent writer bumps the version first and the update matches no rows.
func applyBalance(tx *gorm.DB, wallet *models.Wallet, newBalance decimal.Decimal) error {
	result := tx.Model(&models.Wallet{}).
		Where("id = ? AND version = ?", wallet.ID, wallet.Version).
		Updates(map[string]interface{}{
			"balance": newBalance,
			"version": wallet.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConcurrentUpdate
	}
	wallet.Balance = newBalance
	wallet.Version++
	return nil
}

func transactionMetadata(fields map[string]string) datatypes.JSON {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
