package utils

import (
	"time"

	"elswallet/config"
	walletService "elswallet/services/wallet"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

var webhookClient = resty.New().
	SetTimeout(5 * time.Second).
	SetRetryCount(2).
	SetRetryWaitTime(500 * time.Millisecond)

// PostTransferWebhook delivers a transfer event to the configured webhook
// endpoint. No-op when WEBHOOK_URL is unset.
func PostTransferWebhook(event walletService.TransferEvent) {
	url := config.AppConfig.WebhookURL
	if url == "" {
		return
	}

	resp, err := webhookClient.R().
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post(url)
	if err != nil {
		logrus.Errorf("Webhook delivery failed for transfer %s: %v", event.Reference, err)
		return
	}
	if resp.IsError() {
		logrus.Errorf("Webhook endpoint returned %d for transfer %s", resp.StatusCode(), event.Reference)
	}
}
