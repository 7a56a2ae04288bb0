// Package hotels is a pass-through adapter over the Amadeus hotel APIs.
package hotels

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Domenick1991/altera/config"
	"github.com/Domenick1991/altera/internal/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

type Searcher interface {
	HotelsByCity(ctx context.Context, cityCode string) (json.RawMessage, error)
	HotelOffers(ctx context.Context, hotelIDs []string) (json.RawMessage, error)
}

type AmadeusClient struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

func NewAmadeusClient(cfg config.HotelsConfig) *AmadeusClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	creds := &clientcredentials.Config{
		ClientID:     cfg.APIKey,
		ClientSecret: cfg.APISecret,
		TokenURL:     baseURL + "/v1/security/oauth2/token",
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	// Token fetches happen outside any request context, so bound them here.
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: cfg.Timeout()})
	return &AmadeusClient{
		baseURL: baseURL,
		timeout: cfg.Timeout(),
		http:    creds.Client(tokenCtx),
	}
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

func (c *AmadeusClient) HotelsByCity(ctx context.Context, cityCode string) (json.RawMessage, error) {
	cityCode = strings.ToUpper(strings.TrimSpace(cityCode))
	if len(cityCode) != 3 {
		return nil, domain.Invalid("city code must be a 3 letter IATA code")
	}
	q := url.Values{"cityCode": {cityCode}}
	return c.get(ctx, "/v1/reference-data/locations/hotels/by-city", q)
}

func (c *AmadeusClient) HotelOffers(ctx context.Context, hotelIDs []string) (json.RawMessage, error) {
	if len(hotelIDs) == 0 {
		return nil, domain.Invalid("at least one hotel id is required")
	}
	q := url.Values{"hotelIds": {strings.Join(hotelIDs, ",")}}
	return c.get(ctx, "/v3/shopping/hotel-offers", q)
}

func (c *AmadeusClient) get(ctx context.Context, path string, q url.Values) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build amadeus request: %v", domain.ErrExternalService, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: amadeus %s", domain.ErrExternalTimeout, path)
		}
		return nil, fmt.Errorf("%w: amadeus %s: %v", domain.ErrExternalService, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read amadeus response: %v", domain.ErrExternalService, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: decode amadeus response: %v", domain.ErrExternalService, err)
	}
	if resp.StatusCode != http.StatusOK {
		detail := resp.Status
		if len(env.Errors) > 0 {
			detail = env.Errors[0].Title + ": " + env.Errors[0].Detail
		}
		logrus.WithFields(logrus.Fields{"path": path, "status": resp.StatusCode}).Warn("amadeus request failed")
		return nil, fmt.Errorf("%w: amadeus %s: %s", domain.ErrExternalService, path, detail)
	}
	if env.Data == nil {
		return json.RawMessage("[]"), nil
	}
	return env.Data, nil
}

var _ Searcher = (*AmadeusClient)(nil)
