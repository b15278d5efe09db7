package services

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"deepresearch-backend/internal/models"
	"deepresearch-backend/internal/utils"
	"deepresearch-backend/pkg/logger"

	"go.uber.org/zap"
)

// SignalWireService sends SMS and WhatsApp messages through the SignalWire
// LaML REST API. Both channels share the one transport; WhatsApp addresses
// carry the "whatsapp:" prefix.
type SignalWireService struct {
	Client *http.Client
}

func NewSignalWireService() *SignalWireService {
	return &SignalWireService{
		Client: utils.NewHTTPClient(30 * time.Second),
	}
}

func smsConfigComplete(cfg *models.APIConfig) bool {
	return cfg != nil &&
		cfg.ProjectID != "" &&
		cfg.SpaceURL != "" &&
		cfg.APIToken != "" &&
		cfg.FromNumber != ""
}

// Available reports whether the SMS transport is fully configured. WhatsApp
// availability is the same predicate since the channels share one transport.
func (s *SignalWireService) Available() bool {
	cfg, err := GetActiveConfig(models.ConfigTypeSMS)
	return err == nil && smsConfigComplete(cfg)
}

// SendSMS sends a text message. Returns true on success.
func (s *SignalWireService) SendSMS(to, body string) bool {
	cfg, err := GetActiveConfig(models.ConfigTypeSMS)
	if err != nil || !smsConfigComplete(cfg) {
		logger.Log.Warn("sms configuration is incomplete, cannot send")
		return false
	}
	return s.sendWith(cfg, cfg.FromNumber, to, body, "sms")
}

// SendWhatsApp sends the message over the same transport with whatsapp:
// addressing on both ends.
func (s *SignalWireService) SendWhatsApp(to, body string) bool {
	cfg, err := GetActiveConfig(models.ConfigTypeSMS)
	if err != nil || !smsConfigComplete(cfg) {
		logger.Log.Warn("whatsapp configuration is incomplete, cannot send")
		return false
	}
	return s.sendWith(cfg, "whatsapp:"+cfg.FromNumber, "whatsapp:"+to, body, "whatsapp")
}

func (s *SignalWireService) sendWith(cfg *models.APIConfig, from, to, body, channel string) bool {
	endpoint := fmt.Sprintf("https://%s/api/laml/2010-04-01/Accounts/%s/Messages.json",
		cfg.SpaceURL, cfg.ProjectID)

	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		logger.Log.Error("failed to build signalwire request", zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(cfg.ProjectID, cfg.APIToken)

	resp, err := s.Client.Do(req)
	if err != nil {
		logger.Log.Error("error sending message via signalwire",
			zap.String("channel", channel), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Error("signalwire rejected message",
			zap.String("channel", channel), zap.Int("status", resp.StatusCode))
		return false
	}

	logger.Log.Info("message sent", zap.String("channel", channel), zap.String("to", to))
	return true
}
