package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"deepresearch-backend/internal/models"
	"deepresearch-backend/pkg/logger"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsService reads research prompts from a Google Sheets range. The
// base64-encoded service-account credential lives in the GOOGLE_SHEETS
// api_config row (APIKey field); the client is built per call so credential
// changes take effect immediately.
type SheetsService struct {
	// NewService is swappable in tests.
	NewService func(ctx context.Context, credentialsJSON []byte) (*sheets.Service, error)
}

func NewSheetsService() *SheetsService {
	return &SheetsService{
		NewService: func(ctx context.Context, credentialsJSON []byte) (*sheets.Service, error) {
			return sheets.NewService(ctx,
				option.WithCredentialsJSON(credentialsJSON),
				option.WithScopes(sheets.SpreadsheetsReadonlyScope),
			)
		},
	}
}

// Available reports whether Sheets access is configured: an active
// GOOGLE_SHEETS row exists and carries a refresh token or an API key.
func (s *SheetsService) Available() bool {
	cfg, err := GetActiveConfig(models.ConfigTypeGoogleSheets)
	if err != nil {
		return false
	}
	return strings.TrimSpace(cfg.RefreshToken) != "" || strings.TrimSpace(cfg.APIKey) != ""
}

// ReadPrompts fetches the given range and returns the first-column cell
// values, trimmed, blanks skipped.
func (s *SheetsService) ReadPrompts(ctx context.Context, spreadsheetID, readRange string) ([]string, error) {
	cfg, err := GetActiveConfig(models.ConfigTypeGoogleSheets)
	if err != nil {
		return nil, fmt.Errorf("google sheets is not configured: %w", err)
	}

	credentials, err := base64.StdEncoding.DecodeString(cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("invalid google credentials: %w", err)
	}

	svc, err := s.NewService(ctx, credentials)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize google sheets service: %w", err)
	}

	resp, err := svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("error reading from google sheets: %w", err)
	}

	prompts := []string{}
	for _, row := range resp.Values {
		if len(row) == 0 || row[0] == nil {
			continue
		}
		value := strings.TrimSpace(fmt.Sprint(row[0]))
		if value != "" {
			prompts = append(prompts, value)
		}
	}

	logger.Log.Info("read prompts from google sheet",
		zap.String("spreadsheet_id", spreadsheetID), zap.Int("count", len(prompts)))
	return prompts, nil
}
