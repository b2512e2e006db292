package utils

import (
	"fmt"

	"elswallet/config"
	walletService "elswallet/services/wallet"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// SendEmail sends an HTML email through SendGrid. No-op when
// SENDGRID_API_KEY is unset.
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	apiKey := config.AppConfig.SendGridAPIKey
	if apiKey == "" {
		return nil
	}

	from := mail.NewEmail("ElsSale Wallet", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		logrus.Errorf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if response.StatusCode >= 400 {
		logrus.Errorf("SendGrid returned %d for email to %s", response.StatusCode, toEmail)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}

// getEmailTemplate wraps content in the standard layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #00004D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #00004D; line-height: 1.6; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #d7b56d; margin: 20px 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>ELSSALE WALLET</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 ElsSale Wallet. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendTransferReceipt emails the recipient that money arrived in their wallet.
func SendTransferReceipt(event walletService.TransferEvent) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You just received a payment.</p>
		<div class="info-box">
			<strong>Amount:</strong> %s<br>
			<strong>Reference:</strong> %s<br>
			<strong>Description:</strong> %s
		</div>
		<p>The amount is already available in your wallet.</p>`,
		event.RecipientName,
		event.Amount.StringFixed(2),
		event.Reference,
		event.Description,
	)

	if err := SendEmail(event.RecipientName, event.RecipientEmail, "You received a payment", getEmailTemplate("Payment Received", body)); err != nil {
		logrus.Errorf("Failed to send transfer receipt for %s: %v", event.Reference, err)
	}
}
