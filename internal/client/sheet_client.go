package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var ErrUnexpectedStatus = errors.New("remote source returned a non-success status")

// SheetClient downloads the questionnaire workbook from a fixed URL.
type SheetClient struct {
	URL        string
	HTTPClient *http.Client
	logger     *zap.Logger
}

// NewSheetClient builds a client. A timeoutSec of 0 leaves the request
// bounded only by the caller's context.
func NewSheetClient(url string, timeoutSec int, logger *zap.Logger) *SheetClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SheetClient{
		URL: url,
		HTTPClient: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
		logger: logger.Named("sheet_client"),
	}
}

func (c *SheetClient) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build questionnaire request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet, */*")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			c.logger.Warn("questionnaire fetch timed out",
				zap.String("url", c.URL),
				zap.Duration("timeout", c.HTTPClient.Timeout))
		}
		return nil, fmt.Errorf("fetch questionnaire: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("questionnaire fetch returned non-200",
			zap.String("url", c.URL),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read questionnaire body: %w", err)
	}
	c.logger.Debug("questionnaire fetched", zap.Int("bytes", len(body)))
	return body, nil
}
