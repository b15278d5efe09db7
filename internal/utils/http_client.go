package utils

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"deepresearch-backend/pkg/logger"

	"go.uber.org/zap"
)

// LoggingTransport is an http.RoundTripper that logs outbound requests and
// their responses. Bodies are replayed after reading so the transaction is
// unaffected.
type LoggingTransport struct {
	Transport http.RoundTripper
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	start := time.Now()
	resp, err := transport.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		logger.Log.Error("outbound request failed",
			zap.String("method", req.Method),
			zap.Stringer("url", req.URL),
			zap.Duration("duration", duration),
			zap.Error(err))
		return nil, err
	}

	respBody := ""
	if resp.Body != nil {
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		if len(bodyBytes) > 2000 {
			respBody = string(bodyBytes[:2000]) + "...(truncated)"
		} else {
			respBody = string(bodyBytes)
		}
	}

	logger.Log.Debug("outbound request",
		zap.String("method", req.Method),
		zap.Stringer("url", req.URL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration),
		zap.String("response_body", respBody))

	return resp, nil
}

// NewHTTPClient returns an http.Client with request/response logging.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &LoggingTransport{
			Transport: http.DefaultTransport,
		},
	}
}
