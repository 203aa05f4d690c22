package webhook

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/mamadbah2/lawncare/internal/config"
	"github.com/mamadbah2/lawncare/internal/domain/models"
)

// Notifier publishes digest messages.
type Notifier interface {
	Notify(ctx context.Context, msg models.DigestMessage) error
}

// NewNotifier returns a webhook client when a URL is configured and a log-only notifier otherwise.
func NewNotifier(cfg config.DigestConfig, logger *zap.Logger) Notifier {
	if cfg.WebhookURL == "" {
		return NewLogNotifier(logger)
	}
	return NewClient(cfg)
}

// APIClient is a resty-backed Notifier posting JSON to a webhook.
type APIClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client using the digest configuration.
func NewClient(cfg config.DigestConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})
	if cfg.WebhookToken != "" {
		restyClient.SetAuthToken(cfg.WebhookToken)
	}

	return &APIClient{httpClient: restyClient, url: cfg.WebhookURL}
}

// apiError is the optional error body returned by the webhook receiver.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Notify posts the digest message to the webhook.
func (c *APIClient) Notify(ctx context.Context, msg models.DigestMessage) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(msg).
		SetError(apiErr).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("post digest webhook: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Message
		if message == "" {
			message = apiErr.Error
		}
		return fmt.Errorf("digest webhook error: status=%d, message=%s", resp.StatusCode(), message)
	}

	return nil
}

// LogNotifier writes digests to the logger instead of delivering them.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier builds a log-only notifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs the digest text.
func (n *LogNotifier) Notify(_ context.Context, msg models.DigestMessage) error {
	n.logger.Info("monthly digest",
		zap.String("region", msg.Region),
		zap.Int("month", msg.Month),
		zap.String("title", msg.Title),
		zap.String("text", msg.Text))
	return nil
}
