// Package payment talks to Stripe's hosted checkout REST API.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/altera/config"
	"github.com/Domenick1991/altera/internal/domain"
	"github.com/sirupsen/logrus"
)

type CheckoutRequest struct {
	Title            string
	AmountMinorUnits int64
	PayerEmail       string
	Metadata         map[string]string
	IdempotencyKey   string
}

type Session struct {
	ID          string `json:"id"`
	RedirectURL string `json:"url"`
}

type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*Session, error)
}

type StripeClient struct {
	baseURL    string
	secret     string
	currency   string
	successURL string
	cancelURL  string
	timeout    time.Duration
	http       *http.Client
}

func NewStripeClient(cfg config.PaymentConfig) *StripeClient {
	return &StripeClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secret:     cfg.SecretKey,
		currency:   strings.ToLower(cfg.Currency),
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		timeout:    cfg.Timeout(),
		http:       &http.Client{},
	}
}

type stripeError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// CreateCheckoutSession opens a one-line-item card checkout. It is never
// retried; callers pass an idempotency key so a client retry is safe.
func (c *StripeClient) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*Session, error) {
	if req.AmountMinorUnits <= 0 {
		return nil, domain.Invalid("amount must be positive")
	}
	if req.Title == "" {
		return nil, domain.Invalid("title is required")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkout/sessions",
		strings.NewReader(c.form(req).Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: build checkout request: %v", domain.ErrExternalService, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secret)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if req.IdempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: stripe checkout", domain.ErrExternalTimeout)
		}
		return nil, fmt.Errorf("%w: stripe checkout: %v", domain.ErrExternalService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read stripe response: %v", domain.ErrExternalService, err)
	}

	if resp.StatusCode != http.StatusOK {
		var se stripeError
		_ = json.Unmarshal(body, &se)
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"type":   se.Error.Type,
		}).Warn("stripe rejected checkout session")
		return nil, fmt.Errorf("%w: stripe returned %d: %s", domain.ErrExternalService, resp.StatusCode, se.Error.Message)
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("%w: decode stripe session: %v", domain.ErrExternalService, err)
	}
	if session.RedirectURL == "" {
		return nil, fmt.Errorf("%w: stripe session %s has no url", domain.ErrExternalService, session.ID)
	}
	return &session, nil
}

func (c *StripeClient) form(req CheckoutRequest) url.Values {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("success_url", c.successURL)
	form.Set("cancel_url", c.cancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", c.currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(req.AmountMinorUnits, 10))
	form.Set("line_items[0][price_data][product_data][name]", req.Title)
	if req.PayerEmail != "" {
		form.Set("customer_email", req.PayerEmail)
	}
	for k, v := range req.Metadata {
		form.Set("metadata["+k+"]", v)
	}
	return form
}

var _ Gateway = (*StripeClient)(nil)
