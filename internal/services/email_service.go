package services

import (
	"fmt"
	"time"

	"deepresearch-backend/internal/models"
	"deepresearch-backend/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// EmailService sends notification mail over SMTP. The transport host comes
// from the process configuration; the from-address and credentials come from
// the active EMAIL api_config row.
type EmailService struct {
	Host string
	Port int

	// Send is swappable in tests. Defaults to a gomail dial-and-send.
	Send func(host string, port int, username, password string, msg *gomail.Message) error
}

func NewEmailService(host string, port int) *EmailService {
	return &EmailService{
		Host: host,
		Port: port,
		Send: func(host string, port int, username, password string, msg *gomail.Message) error {
			return gomail.NewDialer(host, port, username, password).DialAndSend(msg)
		},
	}
}

// Available reports whether mail can be sent: an SMTP host is configured and
// an active EMAIL config row with a from-address exists.
func (s *EmailService) Available() bool {
	if s.Host == "" {
		return false
	}
	cfg, err := GetActiveConfig(models.ConfigTypeEmail)
	return err == nil && cfg.Username != ""
}

// SendSimpleEmail sends a plain-text email. Returns true on success.
func (s *EmailService) SendSimpleEmail(to, subject, body string) bool {
	cfg, err := GetActiveConfig(models.ConfigTypeEmail)
	if err != nil || s.Host == "" || cfg.Username == "" {
		logger.Log.Warn("cannot send email: email service is not configured")
		return false
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.Username)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := s.Send(s.Host, s.Port, cfg.Username, cfg.Password, msg); err != nil {
		logger.Log.Error("failed to send email", zap.String("to", to), zap.Error(err))
		return false
	}

	logger.Log.Info("email sent", zap.String("to", to))
	return true
}

// SendResearchReport sends the completed report for a prompt.
func (s *EmailService) SendResearchReport(to, subject, promptContent, result string) bool {
	body := fmt.Sprintf(
		"Your research report is ready.\n\nPrompt:\n%s\n\nResult:\n%s\n\nGenerated at %s\n",
		promptContent, result, time.Now().Format(time.RFC1123),
	)
	return s.SendSimpleEmail(to, subject, body)
}
