package services

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"deepresearch-backend/pkg/logger"

	"go.uber.org/zap"
)

var validUploadTypes = map[string]bool{
	"text/plain":               true,
	"text/csv":                 true,
	"text/markdown":            true,
	"application/octet-stream": true,
}

// IsValidTextFile reports whether the uploaded content type is accepted for
// prompt ingestion.
func IsValidTextFile(contentType string) bool {
	// Strip any charset parameter
	if idx := strings.IndexByte(contentType, ';'); idx >= 0 {
		contentType = strings.TrimSpace(contentType[:idx])
	}
	return validUploadTypes[contentType]
}

// ExtractPromptLines reads the upload line by line; every non-blank line is
// one prompt.
func ExtractPromptLines(r io.Reader, filename string) ([]string, error) {
	lines := []string{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	logger.Log.Info("extracted prompts from file",
		zap.String("filename", filename), zap.Int("count", len(lines)))
	return lines, nil
}
