package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"medread/internal/domain"
	"medread/internal/logger"

	"go.uber.org/zap"
)

// SessionIDHeader carries the one-time session id to the broker.
const SessionIDHeader = "X-Session-ID"

// HTTPSessionBroker exchanges a one-time external session id for an identity payload.
// It makes a single round trip and does not retry.
type HTTPSessionBroker struct {
	url    string
	client *http.Client
}

func NewHTTPSessionBroker(url string, timeout time.Duration) domain.SessionBroker {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSessionBroker{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (b *HTTPSessionBroker) FetchSessionData(ctx context.Context, externalSessionID string) (*domain.ExternalIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url, nil)
	if err != nil {
		return nil, domain.NewInternalError("failed to build broker request", err)
	}
	req.Header.Set(SessionIDHeader, externalSessionID)
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		logger.Get().Warn("Session broker unreachable", zap.String("url", b.url), zap.Error(err))
		return nil, domain.NewInternalError("session broker unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		logger.Get().Info("Session broker rejected session id", zap.Int("status", resp.StatusCode))
		return nil, domain.NewInvalidExternalSessionError(fmt.Errorf("broker returned status %d", resp.StatusCode))
	}

	var identity domain.ExternalIdentity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, domain.NewInvalidExternalSessionError(fmt.Errorf("failed to decode broker response: %w", err))
	}
	if identity.Email == "" {
		return nil, domain.NewInvalidExternalSessionError(fmt.Errorf("broker response has no email"))
	}
	return &identity, nil
}
