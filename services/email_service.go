package services

import (
	"fmt"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/careerbuilder24/e-commerce-project/structs"
	"github.com/careerbuilder24/e-commerce-project/structs/tables"
	"github.com/resend/resend-go/v3"
)

var (
	emailClient *resend.Client
	clientOnce  = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ResendAPIKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		emailClient = resend.NewClient(apiKey)
	})
	return emailClient
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendVendorWelcome mails a new vendor after store registration. Failures
// are logged and swallowed, registration never depends on mail delivery.
func (es *EmailService) SendVendorWelcome(user *tables.User, vendor *tables.Vendor) {
	if !es.cfg.Email.Enabled || user == nil || vendor == nil {
		return
	}

	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
			<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
				<h1>Welcome to %s!</h1>
				<p>Hi %s,</p>
				<p>Your store <strong>%s</strong> is live. You can now add
				products from your vendor dashboard.</p>
				<p>Happy selling!</p>
			</div>
		</body>
		</html>`,
		es.cfg.Server.AppName, user.Name, vendor.StoreName)

	subject := fmt.Sprintf("Your store on %s is ready", es.cfg.Server.AppName)

	if err := es.SendEmail([]string{user.Email}, subject, body); err != nil {
		es.logger.Warn("Failed to send vendor welcome email",
			gecho.Field("error", err),
			gecho.Field("vendor_id", vendor.ID),
		)
	}
}
