package utils

import (
	"context"

	walletService "elswallet/services/wallet"
)

// TransferNotifier fans settled transfers out to the webhook endpoint and
// the recipient's email. Delivery happens off the request path; failures
// are logged, never surfaced to the caller.
type TransferNotifier struct{}

func NewTransferNotifier() *TransferNotifier {
	return &TransferNotifier{}
}

func (n *TransferNotifier) NotifyTransfer(_ context.Context, event walletService.TransferEvent) {
	go PostTransferWebhook(event)
	go SendTransferReceipt(event)
}
