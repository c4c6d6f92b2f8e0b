// Package service implements the application's business logic. Services sit
// between the HTTP handlers and the repositories and own all policy
// decisions: password hashing, token issuance, and mail delivery.
package service

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/postsblog/backend/internal/config"
	"github.com/postsblog/backend/internal/utils"
)

// Mailer sends transactional email on behalf of the application.
type Mailer interface {
	SendPasswordResetEmail(toEmail, toName, token string) error
}

// EmailService sends transactional email through SendGrid.
type EmailService struct {
	config *config.MailSettings
}

// NewEmailService creates a new EmailService from mail settings.
func NewEmailService(cfg *config.MailSettings) *EmailService {
	return &EmailService{config: cfg}
}

// SendPasswordResetEmail sends a password reset email carrying a link to
// the frontend reset page with the token as a query parameter. Delivery
// failures are reported to the caller so the reset request can fail loudly
// instead of leaving the user waiting for mail that never arrives.
func (s *EmailService) SendPasswordResetEmail(toEmail, toName, token string) error {
	from := mail.NewEmail(s.config.FromName, s.config.FromAddress)
	to := mail.NewEmail(toName, toEmail)
	subject := "Password Reset Request"

	resetLink := fmt.Sprintf("%s?token=%s", s.config.FrontendURL, token)
	plainTextContent := fmt.Sprintf("Please use the following link to reset your password: %s", resetLink)
	htmlContent := fmt.Sprintf("<strong>Please use the following link to reset your password:</strong> <a href=\"%s\">Reset Password</a>", resetLink)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	client := sendgrid.NewSendClient(s.config.SendGridAPIKey)

	response, err := client.Send(message)
	if err != nil {
		log.Error().Err(err).Str("email", utils.MaskEmail(toEmail)).Msg("Failed to send password reset email")
		return utils.NewDeliveryFailedError(err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		log.Error().
			Int("status_code", response.StatusCode).
			Str("email", utils.MaskEmail(toEmail)).
			Msg("Password reset email rejected by mail provider")
		return utils.NewDeliveryFailedError(fmt.Errorf("mail provider returned status %d", response.StatusCode))
	}

	log.Info().
		Int("status_code", response.StatusCode).
		Str("email", utils.MaskEmail(toEmail)).
		Msg("Password reset email sent")
	return nil
}
