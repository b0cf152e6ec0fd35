package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/utils"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewEmailService creates an SMTP-backed email service. With an empty host
// the service logs and drops every message, which keeps local development
// working without a mail relay.
func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, email, name, itemTitle string, durationDays int32, totalPaise int64, paymentID string) error {
	if s.host == "" {
		logger.Debug("SMTP disabled, skipping booking confirmation email", "to", email, "payment_id", paymentID)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Booking Confirmed - %s", itemTitle))

	body := fmt.Sprintf(
		"Hello %s,\n\nYour booking for %s is confirmed for %d day(s).\n\nTotal Paid: %s\nPayment ID: %s\n\nThis is a demo confirmation; no real charge was made.\n\nBest regards,\nThe EquipRent Team",
		name, itemTitle, durationDays, utils.FormatCurrency(totalPaise), paymentID,
	)
	m.SetBody("text/plain", body)

	logger.ExternalServiceCall("smtp", "SendBookingConfirmation", "to", email)
	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	err := d.DialAndSend(m)
	logger.ExternalServiceResult("smtp", "SendBookingConfirmation", err)
	if err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}

	return nil
}
