package httpdocs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/poimap-service/internal/config"
	"github.com/poimap-service/internal/domain/repository"
	"go.uber.org/zap"
)

// maxDocumentSize - ограничение на размер документа карты
const maxDocumentSize = 8 << 20

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewDocumentClient создает источник документов, который скачивает их по HTTP
func NewDocumentClient(cfg *config.DataConfig, logger *zap.Logger) repository.DocumentSource {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

func (c *client) Name() string {
	return "http"
}

// Fetch выполняет GET {baseURL}/{name}. Повторов нет: ошибка сразу уходит вызывающему.
func (c *client) Fetch(ctx context.Context, name string) ([]byte, error) {
	docURL := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(name))

	c.logger.Debug("Fetching map document", zap.String("url", docURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, docURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("url", docURL), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Document server returned error",
			zap.String("url", docURL),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("document %s: status %d", name, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("document %s exceeds %d bytes", name, maxDocumentSize)
	}

	c.logger.Debug("Map document fetched",
		zap.String("url", docURL),
		zap.Int("bytes", len(data)),
		zap.Duration("took", time.Since(start)))

	return data, nil
}
