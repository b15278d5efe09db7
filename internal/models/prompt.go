package models

import "time"

type PromptStatus string

const (
	PromptStatusPending PromptStatus = "PENDING"
	// PromptStatusInProgress is transient: a prompt is in flight only for the
	// duration of the generation call and the status is never persisted.
	PromptStatusInProgress PromptStatus = "IN_PROGRESS"
	PromptStatusCompleted  PromptStatus = "COMPLETED"
	PromptStatusError      PromptStatus = "ERROR"
)

// Terminal reports whether no further status transition is allowed.
func (s PromptStatus) Terminal() bool {
	return s == PromptStatusCompleted || s == PromptStatusError
}

type PromptSource string

const (
	PromptSourceWeb      PromptSource = "WEB"
	PromptSourceFile     PromptSource = "FILE"
	PromptSourceSheets   PromptSource = "SHEETS"
	PromptSourceTemplate PromptSource = "TEMPLATE"
)

// Prompt represents a unit of user-submitted research text awaiting an
// AI-generated result.
type Prompt struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	Content   string       `gorm:"type:text;not null" json:"content"`
	Result    string       `gorm:"type:text" json:"result,omitempty"`
	Status    PromptStatus `gorm:"index;not null;default:'PENDING'" json:"status"`
	Source    PromptSource `gorm:"not null" json:"source"`
	CreatedBy string       `json:"created_by,omitempty"`

	NotificationEmail string `json:"notification_email,omitempty"`
	NotificationPhone string `json:"notification_phone,omitempty"`
	EmailSent         bool   `gorm:"not null;default:false" json:"email_sent"`
	SMSSent           bool   `gorm:"not null;default:false" json:"sms_sent"`
	WhatsAppSent      bool   `gorm:"not null;default:false" json:"whatsapp_sent"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"` // set iff Status == COMPLETED
}
