package models

import "time"

// DefaultPlaceholderFormat is assumed whenever a template does not carry its
// own delimiter format.
const DefaultPlaceholderFormat = "{{%s}}"

// PromptTemplate represents reusable parameterized prompt text with named
// placeholders, e.g. "Summarize {{topic}} in {{length}} words".
type PromptTemplate struct {
	ID              uint   `gorm:"primarykey" json:"id"`
	Name            string `gorm:"index;not null" json:"name"`
	TemplateContent string `gorm:"type:text;not null" json:"template_content"`
	Description     string `json:"description,omitempty"`

	// PlaceholderFormat is a delimiter pattern with exactly one %s marker,
	// e.g. "{{%s}}" or "<%s>". Empty means DefaultPlaceholderFormat.
	PlaceholderFormat string `json:"placeholder_format,omitempty"`

	CreatedBy  string    `json:"created_by,omitempty"`
	IsPublic   bool      `gorm:"index;not null;default:false" json:"is_public"`
	Category   string    `gorm:"index" json:"category,omitempty"`
	UsageCount int       `gorm:"not null;default:0" json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ExtractPlaceholders returns the placeholder names appearing in the template
// content, in order of appearance, duplicates preserved.
func (t *PromptTemplate) ExtractPlaceholders() []string {
	return ExtractPlaceholders(t.TemplateContent, t.PlaceholderFormat)
}

// Apply fills the template with the given variables. Placeholders without a
// matching variable are left as-is.
func (t *PromptTemplate) Apply(variables map[string]string) string {
	return ApplyTemplate(t.TemplateContent, t.PlaceholderFormat, variables)
}
