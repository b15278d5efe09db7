package services

import (
	"strings"
	"testing"

	"deepresearch-backend/internal/database"
	"deepresearch-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

type sendRecorder struct {
	emails    int
	sms       int
	whatsapps int

	emailOK    bool
	smsOK      bool
	whatsappOK bool

	lastSMSBody string
}

func (r *sendRecorder) notifier() *Notifier {
	return &Notifier{
		SendEmail: func(to, subject, promptContent, result string) bool {
			r.emails++
			return r.emailOK
		},
		SendSMS: func(to, body string) bool {
			r.sms++
			r.lastSMSBody = body
			return r.smsOK
		},
		SendWhatsApp: func(to, body string) bool {
			r.whatsapps++
			return r.whatsappOK
		},
	}
}

func completedPrompt(t *testing.T, email, phone string) *models.Prompt {
	t.Helper()
	p := models.Prompt{
		Content:           "Find the GDP of France",
		Result:            "About $3 trillion.",
		Status:            models.PromptStatusCompleted,
		Source:            models.PromptSourceWeb,
		NotificationEmail: email,
		NotificationPhone: phone,
	}
	database.DB.Create(&p)
	return &p
}

func TestDispatchSendsEveryChannelOnce(t *testing.T) {
	setupTestDB(t)
	rec := &sendRecorder{emailOK: true, smsOK: true, whatsappOK: true}
	n := rec.notifier()

	p := completedPrompt(t, "alice@example.com", "+15550001111")
	n.Dispatch(p)

	assert.Equal(t, 1, rec.emails)
	assert.Equal(t, 1, rec.sms)
	assert.Equal(t, 1, rec.whatsapps)

	var stored models.Prompt
	database.DB.First(&stored, p.ID)
	assert.True(t, stored.EmailSent)
	assert.True(t, stored.SMSSent)
	assert.True(t, stored.WhatsAppSent)

	// Re-dispatching a fully notified prompt sends nothing
	n.Dispatch(&stored)
	assert.Equal(t, 1, rec.emails)
	assert.Equal(t, 1, rec.sms)
	assert.Equal(t, 1, rec.whatsapps)
}

func TestDispatchFailedChannelStaysRetryable(t *testing.T) {
	setupTestDB(t)
	rec := &sendRecorder{emailOK: false, smsOK: true, whatsappOK: true}
	n := rec.notifier()

	p := completedPrompt(t, "alice@example.com", "+15550001111")
	n.Dispatch(p)

	var stored models.Prompt
	database.DB.First(&stored, p.ID)
	assert.False(t, stored.EmailSent)
	assert.True(t, stored.SMSSent)
	assert.True(t, stored.WhatsAppSent)

	// Second dispatch retries only the failed channel
	rec.emailOK = true
	n.Dispatch(&stored)
	assert.Equal(t, 2, rec.emails)
	assert.Equal(t, 1, rec.sms)
	assert.Equal(t, 1, rec.whatsapps)

	database.DB.First(&stored, p.ID)
	assert.True(t, stored.EmailSent)
}

func TestDispatchSkipsMissingTargets(t *testing.T) {
	setupTestDB(t)
	rec := &sendRecorder{emailOK: true, smsOK: true, whatsappOK: true}
	n := rec.notifier()

	p := completedPrompt(t, "", "+15550001111")
	n.Dispatch(p)
	assert.Equal(t, 0, rec.emails)
	assert.Equal(t, 1, rec.sms)
	assert.Equal(t, 1, rec.whatsapps)

	p = completedPrompt(t, "alice@example.com", "")
	n.Dispatch(p)
	assert.Equal(t, 1, rec.emails)
	assert.Equal(t, 1, rec.sms)
	assert.Equal(t, 1, rec.whatsapps)
}

func TestDispatchIgnoresNonCompleted(t *testing.T) {
	setupTestDB(t)
	rec := &sendRecorder{emailOK: true, smsOK: true, whatsappOK: true}
	n := rec.notifier()

	p := models.Prompt{
		Content:           "still waiting",
		Status:            models.PromptStatusPending,
		Source:            models.PromptSourceWeb,
		NotificationEmail: "alice@example.com",
		NotificationPhone: "+15550001111",
	}
	database.DB.Create(&p)

	n.Dispatch(&p)
	assert.Equal(t, 0, rec.emails)
	assert.Equal(t, 0, rec.sms)
	assert.Equal(t, 0, rec.whatsapps)
}

func TestDispatchBodyTruncatesLongPrompts(t *testing.T) {
	setupTestDB(t)
	rec := &sendRecorder{smsOK: true}
	n := rec.notifier()

	long := strings.Repeat("x", 80)
	p := completedPrompt(t, "", "+15550001111")
	p.Content = long
	database.DB.Save(p)

	n.Dispatch(p)
	assert.Contains(t, rec.lastSMSBody, strings.Repeat("x", 47)+"...")
	assert.NotContains(t, rec.lastSMSBody, strings.Repeat("x", 48))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	assert.Equal(t, strings.Repeat("a", 50), truncate(strings.Repeat("a", 50), 50))
	assert.Equal(t, strings.Repeat("a", 47)+"...", truncate(strings.Repeat("a", 51), 50))
}
