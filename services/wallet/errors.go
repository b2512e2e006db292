package walletService

import "errors"

// Error taxonomy of the ledger core. All of these are recoverable at the
// request boundary and map to 4xx responses; anything else coming out of the
// service is a persistence failure and maps to 500.
var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrRecipientNotFound   = errors.New("recipient wallet not found")
	ErrWalletExists        = errors.New("wallet already exists for user")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance in sender's wallet")
	ErrAmbiguousRecipient  = errors.New("recipient identifier matches more than one wallet")
	ErrSelfTransfer        = errors.New("sender and recipient wallets are the same")
	ErrConcurrentUpdate    = errors.New("wallet was modified concurrently")
)
