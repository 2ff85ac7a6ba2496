package navi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
)

const (
	DefaultNaviURL    = "https://navi-transit.yahooapis.jp"
	DefaultPoiURL     = "https://poi-transit.yahooapis.jp"
	DefaultDiainfoURL = "https://cache-diainfo-transit.yahooapis.jp"

	// DefaultTimetableURL serves the cached station timetables
	DefaultTimetableURL = "https://cache-navi-transit.yahooapis.jp"

	defaultUserAgent = "norikae"
)

type Config struct {
	NaviURL      string
	PoiURL       string
	DiainfoURL   string
	TimetableURL string

	AppID       string
	AccessToken string

	Timeout       time.Duration
	MaxRetries    int
	RetryInterval time.Duration

	// HTTPClient overrides the client built from Timeout
	HTTPClient *http.Client
}

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	if config.NaviURL == "" {
		config.NaviURL = DefaultNaviURL
	}
	if config.PoiURL == "" {
		config.PoiURL = DefaultPoiURL
	}
	if config.DiainfoURL == "" {
		config.DiainfoURL = DefaultDiainfoURL
	}
	if config.TimetableURL == "" {
		config.TimetableURL = DefaultTimetableURL
	}
	if config.Timeout <= 0 {
		config.Timeout = 15 * time.Second
	}
	if config.RetryInterval <= 0 {
		config.RetryInterval = 250 * time.Millisecond
	}
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

// get performs a GET against baseURL+path with the default parameters merged in and decodes the
// JSON body into target. Server errors and transport failures are retried, client errors are not.
func (c *Client) get(ctx context.Context, baseURL string, path string, params url.Values, target any) error {
	query := url.Values{}
	query.Set("output", "json")
	for key, values := range params {
		for _, value := range values {
			if value != "" {
				query.Set(key, value)
			}
		}
	}

	requestURL := strings.TrimRight(baseURL, "/") + path
	if strings.Contains(requestURL, "?") {
		requestURL += "&" + query.Encode()
	} else {
		requestURL += "?" + query.Encode()
	}

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.InitialInterval = c.config.RetryInterval
	retryBackoff.MaxElapsedTime = 0

	attempt := 0
	operation := func() error {
		attempt++

		err := c.do(ctx, requestURL, target)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Int("attempt", attempt).Msg("Upstream request failed")
		}

		return err
	}

	return backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(retryBackoff, uint64(c.config.MaxRetries)),
		ctx,
	))
}

func (c *Client) do(ctx context.Context, requestURL string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return backoff.Permanent(err)
	}

	if c.config.AppID != "" {
		req.Header.Set("User-Agent", fmt.Sprintf("Yahoo AppID:%s", c.config.AppID))
	} else {
		req.Header.Set("User-Agent", defaultUserAgent)
	}
	req.Header.Set("Accept", "application/json")
	if c.config.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return err
	}
	defer resp.Body.Close()

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		body = resp.Body
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiError := newAPIError(resp.StatusCode, body)

		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return apiError
		}
		return backoff.Permanent(apiError)
	}

	if err := json.NewDecoder(body).Decode(target); err != nil {
		return backoff.Permanent(fmt.Errorf("decoding upstream response: %w", err))
	}

	return nil
}

func readSnippet(body io.Reader) string {
	snippet, _ := io.ReadAll(io.LimitReader(body, 512))

	return strings.TrimSpace(string(snippet))
}
