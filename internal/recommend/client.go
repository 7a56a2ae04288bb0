// Package recommend calls the flight recommendation service.
package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Domenick1991/altera/config"
	"github.com/Domenick1991/altera/internal/domain"
)

type Recommender interface {
	ForUser(ctx context.Context, userID int64) (json.RawMessage, error)
}

type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

func NewClient(cfg config.RecommendationsConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout(),
		http:    &http.Client{},
	}
}

// ForUser returns the service's JSON body untouched.
func (c *Client) ForUser(ctx context.Context, userID int64) (json.RawMessage, error) {
	if userID <= 0 {
		return nil, domain.Invalid("user id must be positive")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/recommendations/%d", c.baseURL, userID), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build recommendations request: %v", domain.ErrExternalService, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: recommendations", domain.ErrExternalTimeout)
		}
		return nil, fmt.Errorf("%w: recommendations: %v", domain.ErrExternalService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read recommendations: %v", domain.ErrExternalService, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: recommendations returned %d", domain.ErrExternalService, resp.StatusCode)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: recommendations returned invalid json", domain.ErrExternalService)
	}
	return body, nil
}

var _ Recommender = (*Client)(nil)
