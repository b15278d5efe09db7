package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"deepresearch-backend/internal/database"
	"deepresearch-backend/internal/models"
	"deepresearch-backend/pkg/logger"

	"go.uber.org/zap"
)

const maxPromptLength = 2000

var ErrInvalidContent = errors.New("prompt content must be non-blank and at most 2000 characters")

// PromptService owns the prompt lifecycle: creation, batch ingestion,
// processing through the generator, and the handoff to the notifier.
//
// Status transitions are monotonic. A prompt is created PENDING and moved
// exactly once to COMPLETED or ERROR by processing; nothing transitions out
// of a terminal status. The processMu serializes the select-then-process
// window so two callers can never pick up the same PENDING prompt; the
// database's own locking is never held across generator or notification I/O.
type PromptService struct {
	Generate func(ctx context.Context, prompt string) (string, error)
	Notifier *Notifier

	processMu sync.Mutex
}

func NewPromptService(gemini *GeminiService, notifier *Notifier) *PromptService {
	return &PromptService{
		Generate: gemini.Generate,
		Notifier: notifier,
	}
}

// Create persists a new PENDING prompt. Pure creation: the generator is
// never invoked here.
func (s *PromptService) Create(content string, source models.PromptSource, createdBy, notificationEmail, notificationPhone string) (*models.Prompt, error) {
	content = strings.TrimSpace(content)
	// The bound is in characters, not bytes
	if content == "" || utf8.RuneCountInString(content) > maxPromptLength {
		return nil, ErrInvalidContent
	}

	prompt := &models.Prompt{
		Content:           content,
		Status:            models.PromptStatusPending,
		Source:            source,
		CreatedBy:         createdBy,
		NotificationEmail: notificationEmail,
		NotificationPhone: notificationPhone,
	}

	if err := database.DB.Create(prompt).Error; err != nil {
		return nil, err
	}

	logger.Log.Info("prompt created",
		zap.Uint("id", prompt.ID), zap.String("source", string(source)))
	return prompt, nil
}

// CreateBatch creates one PENDING prompt per non-blank line, all sharing the
// same source and notification targets, and returns the number created.
// Creations are independent: a failure mid-batch leaves the prefix created.
func (s *PromptService) CreateBatch(lines []string, source models.PromptSource, notificationEmail, notificationPhone string) int {
	count := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, err := s.Create(line, source, "", notificationEmail, notificationPhone); err != nil {
			logger.Log.Warn("skipping batch line", zap.Error(err))
			continue
		}
		count++
	}

	logger.Log.Info("batch prompts created",
		zap.Int("count", count), zap.String("source", string(source)))
	return count
}

// ProcessOne runs a single prompt through the generator. Unknown IDs surface
// gorm.ErrRecordNotFound. A prompt that is not PENDING is returned unchanged
// with no generator call; reprocessing terminal prompts is a no-op.
func (s *PromptService) ProcessOne(ctx context.Context, id uint) (*models.Prompt, error) {
	s.processMu.Lock()
	defer s.processMu.Unlock()

	var prompt models.Prompt
	if err := database.DB.First(&prompt, id).Error; err != nil {
		return nil, err
	}

	if prompt.Status != models.PromptStatusPending {
		logger.Log.Info("prompt is not pending, skipping",
			zap.Uint("id", id), zap.String("status", string(prompt.Status)))
		return &prompt, nil
	}

	s.process(ctx, &prompt)
	return &prompt, nil
}

// ProcessAllPending processes every prompt that is PENDING at call start and
// returns the number that reached COMPLETED. Prompts that error are
// persisted with ERROR but not counted; one failure never stops the rest.
func (s *PromptService) ProcessAllPending(ctx context.Context) int {
	s.processMu.Lock()
	defer s.processMu.Unlock()

	var pending []models.Prompt
	if err := database.DB.Where("status = ?", models.PromptStatusPending).
		Order("created_at").Find(&pending).Error; err != nil {
		logger.Log.Error("failed to load pending prompts", zap.Error(err))
		return 0
	}

	if len(pending) == 0 {
		return 0
	}

	logger.Log.Info("processing pending prompts", zap.Int("count", len(pending)))
	completed := 0
	for i := range pending {
		if s.process(ctx, &pending[i]) {
			completed++
		}
	}

	logger.Log.Info("finished processing pending prompts",
		zap.Int("completed", completed), zap.Int("selected", len(pending)))
	return completed
}

// process moves one PENDING prompt to its terminal status and reports
// whether the prompt reached COMPLETED and the state was persisted. The
// terminal state is committed before notification dispatch, and dispatch
// failures never revert it.
func (s *PromptService) process(ctx context.Context, prompt *models.Prompt) bool {
	result, err := s.Generate(ctx, prompt.Content)
	if err != nil {
		logger.Log.Error("error processing prompt",
			zap.Uint("id", prompt.ID), zap.Error(err))

		prompt.Status = models.PromptStatusError
		prompt.Result = "Error processing prompt: " + err.Error()
		if saveErr := database.DB.Save(prompt).Error; saveErr != nil {
			logger.Log.Error("failed to persist error status",
				zap.Uint("id", prompt.ID), zap.Error(saveErr))
		}
		return false
	}

	now := time.Now()
	prompt.Result = result
	prompt.Status = models.PromptStatusCompleted
	prompt.CompletedAt = &now
	if err := database.DB.Save(prompt).Error; err != nil {
		logger.Log.Error("failed to persist completed prompt",
			zap.Uint("id", prompt.ID), zap.Error(err))
		return false
	}

	logger.Log.Info("prompt processed", zap.Uint("id", prompt.ID))
	s.Notifier.Dispatch(prompt)
	return true
}

// ApplyTemplate fills a template with variables and creates a prompt from the
// result. The template's usage count is incremented and persisted before the
// prompt is created; neither happens without the other being attempted.
func (s *PromptService) ApplyTemplate(templateID uint, variables map[string]string, notificationEmail, notificationPhone string) (*models.Prompt, error) {
	var template models.PromptTemplate
	if err := database.DB.First(&template, templateID).Error; err != nil {
		return nil, err
	}

	content := strings.TrimSpace(template.Apply(variables))
	// Validate before touching the usage count so a rejected application
	// never counts as a use.
	if content == "" || utf8.RuneCountInString(content) > maxPromptLength {
		return nil, ErrInvalidContent
	}

	template.UsageCount++
	if err := database.DB.Save(&template).Error; err != nil {
		return nil, err
	}

	prompt, err := s.Create(content, models.PromptSourceTemplate, template.CreatedBy, notificationEmail, notificationPhone)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("template applied",
		zap.Uint("template_id", templateID), zap.Uint("prompt_id", prompt.ID))
	return prompt, nil
}
