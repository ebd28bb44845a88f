package oura

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://api.ouraring.com/v2"
	sandboxBaseURL = "https://api.ouraring.com/v2/sandbox"

	defaultUserAgent = "oura-go"
)

// authStrategy resolves the base endpoint and Authorization header for one
// of the three mutually exclusive credential variants. The facade shares a
// single request path across all three; only this interface varies.
type authStrategy interface {
	// baseEndpoint returns the collection endpoint this variant talks to.
	// Sandbox and production endpoints never mix on one client instance.
	baseEndpoint() string

	// authHeader resolves the Authorization header value. perCall carries
	// a token bound via WithAccessToken and is only meaningful for the
	// OAuth variant. An empty return means no header is attached.
	authHeader(perCall string) (string, error)
}

// staticTokenAuth authenticates every call with a fixed personal access
// token resolved at construction.
type staticTokenAuth struct {
	token string
}

func (a staticTokenAuth) baseEndpoint() string { return defaultBaseURL }

func (a staticTokenAuth) authHeader(string) (string, error) {
	return "Bearer " + a.token, nil
}

// sandboxAuth talks to the credential-free sandbox environment.
type sandboxAuth struct{}

func (sandboxAuth) baseEndpoint() string { return sandboxBaseURL }

func (sandboxAuth) authHeader(string) (string, error) { return "", nil }

// oauthAuth requires a short-lived access token supplied per call chain.
// The library never owns the token lifecycle.
type oauthAuth struct{}

func (oauthAuth) baseEndpoint() string { return defaultBaseURL }

func (oauthAuth) authHeader(perCall string) (string, error) {
	if perCall == "" {
		return "", ErrMissingToken
	}
	return "Bearer " + perCall, nil
}

// Client is the core Oura API client for user-data endpoints.
//
// A Client is immutable after construction: no call mutates instance state,
// so concurrent use from multiple goroutines needs no locking.
type Client struct {
	httpClient *http.Client
	baseURL    string
	auth       authStrategy
	userAgent  string

	// accessToken is the per-call token bound via WithAccessToken on
	// clients built by NewOAuthClient.
	accessToken string

	rateLimiter *rateLimiter

	// OAuth drives the authorization-code flow for clients built by
	// NewOAuthClient; nil on other variants.
	OAuth *OAuth

	// Services used for communicating with the Oura API endpoints.
	PersonalInfo      *PersonalInfoService
	DailyActivity     *DailyActivityService
	DailySleep        *DailySleepService
	DailyReadiness    *DailyReadinessService
	DailySpo2         *DailySpo2Service
	Sleep             *SleepService
	Session           *SessionService
	Workout           *WorkoutService
	Heartrate         *HeartrateService
	EnhancedTag       *EnhancedTagService
	Tag               *TagService
	RingConfiguration *RingConfigurationService
}

func newClient(auth authStrategy, opts []Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		baseURL:     auth.baseEndpoint(),
		auth:        auth,
		userAgent:   defaultUserAgent,
		rateLimiter: newRateLimiter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.initServices()
	return c
}

func (c *Client) initServices() {
	c.PersonalInfo = &PersonalInfoService{client: c}
	c.DailyActivity = &DailyActivityService{client: c}
	c.DailySleep = &DailySleepService{client: c}
	c.DailyReadiness = &DailyReadinessService{client: c}
	c.DailySpo2 = &DailySpo2Service{client: c}
	c.Sleep = &SleepService{client: c}
	c.Session = &SessionService{client: c}
	c.Workout = &WorkoutService{client: c}
	c.Heartrate = &HeartrateService{client: c}
	c.EnhancedTag = &EnhancedTagService{client: c}
	c.Tag = &TagService{client: c}
	c.RingConfiguration = &RingConfigurationService{client: c}
}

// NewClient creates a client authenticated with a fixed personal access
// token. All calls go to the production endpoint.
func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	return newClient(staticTokenAuth{token: token}, opts), nil
}

// NewSandboxClient creates a client against the Oura sandbox environment,
// which serves fixed sample data and requires no credential.
func NewSandboxClient(opts ...Option) *Client {
	return newClient(sandboxAuth{}, opts)
}

// NewOAuthClient creates a client for use with the OAuth2 authorization-code
// flow. The client holds no user token, because access tokens are short
// lived and refreshed outside the library: bind one per call chain with
// WithAccessToken, and drive the flow itself through the OAuth field.
func NewOAuthClient(clientID, clientSecret, redirectURI string, opts ...Option) (*Client, error) {
	switch {
	case clientID == "":
		return nil, ErrMissingClientID
	case clientSecret == "":
		return nil, ErrMissingClientSecret
	case redirectURI == "":
		return nil, ErrMissingRedirectURI
	}

	c := newClient(oauthAuth{}, opts)
	c.OAuth = newOAuth(clientID, clientSecret, redirectURI, c.httpClient)
	return c, nil
}

// WithAccessToken returns a copy of the client bound to the given
// short-lived access token. The receiver is not mutated; the copy shares
// the transport and OAuth helper. Only clients built by NewOAuthClient
// consult the bound token; static and sandbox clients keep the credential
// fixed at construction.
func (c *Client) WithAccessToken(token string) *Client {
	derived := *c
	derived.accessToken = token
	derived.initServices()
	return &derived
}

// String implements fmt.Stringer, redacting the credential.
func (c *Client) String() string {
	return fmt.Sprintf("oura.Client{baseURL:%s token:<REDACTED>}", c.baseURL)
}

// GoString implements fmt.GoStringer so %#v does not leak the credential.
func (c *Client) GoString() string {
	return c.String()
}

// do executes a single authenticated request and decodes the JSON response
// into out. Unsuccessful responses are mapped to typed errors.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	data, err := c.doRaw(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// doText executes a request and returns the raw response body. Some vendor
// delete endpoints answer with empty or non-JSON payloads.
func (c *Client) doText(ctx context.Context, method, path string, query url.Values, body any) (string, error) {
	data, err := c.doRaw(ctx, method, path, query, body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	header, err := c.auth.authHeader(c.accessToken)
	if err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}

	if header != "" {
		req.Header.Set("Authorization", header)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Optional local throttle; a no-op unless enabled via WithRateLimiting.
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("local rate limit wait interrupted: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request aborted by context: %w", ctx.Err())
		}
		return nil, fmt.Errorf("http execute request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, mapHTTPError(resp, data)
	}
	return data, nil
}
