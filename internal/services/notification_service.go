package services

import (
	"fmt"

	"deepresearch-backend/internal/database"
	"deepresearch-backend/internal/models"
	"deepresearch-backend/pkg/logger"

	"go.uber.org/zap"
)

const reportEmailSubject = "Your Research Report is Ready"

// Notifier dispatches completion notifications over email, SMS and WhatsApp.
// Each channel sends at most once per prompt: the per-channel sent flag is
// checked before sending and persisted immediately after a successful send,
// so re-dispatching a fully notified prompt is a no-op. A failed channel
// leaves its flag false for a later manual re-dispatch and never blocks the
// other channels.
type Notifier struct {
	SendEmail    func(to, subject, promptContent, result string) bool
	SendSMS      func(to, body string) bool
	SendWhatsApp func(to, body string) bool
}

func NewNotifier(email *EmailService, signalwire *SignalWireService) *Notifier {
	return &Notifier{
		SendEmail:    email.SendResearchReport,
		SendSMS:      signalwire.SendSMS,
		SendWhatsApp: signalwire.SendWhatsApp,
	}
}

// Dispatch sends the pending notifications for a completed prompt.
func (n *Notifier) Dispatch(prompt *models.Prompt) {
	if prompt.Status != models.PromptStatusCompleted {
		return
	}

	body := fmt.Sprintf(
		"Your research report for prompt '%s' is now ready. Please check your email or the web dashboard to view it.",
		truncate(prompt.Content, 50),
	)

	if prompt.NotificationEmail != "" && !prompt.EmailSent {
		if n.SendEmail(prompt.NotificationEmail, reportEmailSubject, prompt.Content, prompt.Result) {
			prompt.EmailSent = true
			n.saveFlags(prompt, "email")
		}
	}

	if prompt.NotificationPhone != "" && !prompt.SMSSent {
		if n.SendSMS(prompt.NotificationPhone, body) {
			prompt.SMSSent = true
			n.saveFlags(prompt, "sms")
		}
	}

	if prompt.NotificationPhone != "" && !prompt.WhatsAppSent {
		if n.SendWhatsApp(prompt.NotificationPhone, body) {
			prompt.WhatsAppSent = true
			n.saveFlags(prompt, "whatsapp")
		}
	}
}

func (n *Notifier) saveFlags(prompt *models.Prompt, channel string) {
	if err := database.DB.Save(prompt).Error; err != nil {
		logger.Log.Error("failed to persist notification flag",
			zap.Uint("prompt_id", prompt.ID), zap.String("channel", channel), zap.Error(err))
		return
	}
	logger.Log.Info("notification sent",
		zap.Uint("prompt_id", prompt.ID), zap.String("channel", channel))
}

// truncate shortens s to at most max characters, replacing the tail with a
// 3-character ellipsis when it does.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
