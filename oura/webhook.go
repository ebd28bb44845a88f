package oura

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultWebhookBaseURL = "https://api.ouraring.com/v2/webhook"

// EventType enumerates the triggers a webhook subscription can watch.
type EventType string

const (
	EventCreate EventType = "create"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
)

// DataType enumerates the resource kinds a webhook subscription can watch.
type DataType string

const (
	DataTypeTag            DataType = "tag"
	DataTypeEnhancedTag    DataType = "enhanced_tag"
	DataTypeWorkout        DataType = "workout"
	DataTypeSession        DataType = "session"
	DataTypeSleep          DataType = "sleep"
	DataTypeDailySleep     DataType = "daily_sleep"
	DataTypeDailyReadiness DataType = "daily_readiness"
	DataTypeDailyActivity  DataType = "daily_activity"
	DataTypeDailySpo2      DataType = "daily_spo2"
)

// Subscription represents a registered webhook subscription.
type Subscription struct {
	ID             string    `json:"id"`
	CallbackURL    string    `json:"callback_url"`
	EventType      EventType `json:"event_type"`
	DataType       DataType  `json:"data_type"`
	ExpirationTime time.Time `json:"expiration_time"`
}

// CreateSubscriptionRequest carries the fields required to register a new
// subscription.
type CreateSubscriptionRequest struct {
	CallbackURL       string    `json:"callback_url"`
	VerificationToken string    `json:"verification_token"`
	EventType         EventType `json:"event_type"`
	DataType          DataType  `json:"data_type"`
}

// UpdateSubscriptionRequest carries a partial subscription update. The
// verification token is always sent; fields left zero stay out of the
// serialized body entirely, they are never sent as null.
type UpdateSubscriptionRequest struct {
	VerificationToken string    `json:"verification_token"`
	CallbackURL       string    `json:"callback_url,omitempty"`
	EventType         EventType `json:"event_type,omitempty"`
	DataType          DataType  `json:"data_type,omitempty"`
}

// WebhookClient manages webhook subscriptions. Unlike user-data calls, the
// webhook API authenticates with application credentials sent as
// x-client-id and x-client-secret headers, never a bearer token.
type WebhookClient struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
}

// WebhookOption is a functional option for configuring a WebhookClient.
type WebhookOption func(*WebhookClient)

// WithWebhookHTTPClient sets the underlying HTTP client used for requests.
func WithWebhookHTTPClient(hc *http.Client) WebhookOption {
	return func(c *WebhookClient) {
		c.httpClient = hc
	}
}

// WithWebhookBaseURL overrides the webhook API base URL. This is primarily
// useful for testing.
func WithWebhookBaseURL(u string) WebhookOption {
	return func(c *WebhookClient) {
		c.baseURL = u
	}
}

// NewWebhookClient creates a webhook subscription management client.
func NewWebhookClient(clientID, clientSecret string, opts ...WebhookOption) (*WebhookClient, error) {
	switch {
	case clientID == "":
		return nil, ErrMissingClientID
	case clientSecret == "":
		return nil, ErrMissingClientSecret
	}

	c := &WebhookClient{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		baseURL:      defaultWebhookBaseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// List fetches every registered subscription.
func (c *WebhookClient) List(ctx context.Context) ([]Subscription, error) {
	var subs []Subscription
	if err := c.do(ctx, http.MethodGet, "/subscription", nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// Get fetches a single subscription by its ID.
func (c *WebhookClient) Get(ctx context.Context, id string) (*Subscription, error) {
	var sub Subscription
	if err := c.do(ctx, http.MethodGet, "/subscription/"+url.PathEscape(id), nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Create registers a new subscription. The vendor verifies the callback URL
// with a challenge handshake before activating it; see HandleVerification.
func (c *WebhookClient) Create(ctx context.Context, req *CreateSubscriptionRequest) (*Subscription, error) {
	var sub Subscription
	if err := c.do(ctx, http.MethodPost, "/subscription", req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Update modifies an existing subscription. Optional fields left zero in
// req are excluded from the request body.
func (c *WebhookClient) Update(ctx context.Context, id string, req *UpdateSubscriptionRequest) (*Subscription, error) {
	var sub Subscription
	if err := c.do(ctx, http.MethodPut, "/subscription/"+url.PathEscape(id), req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Delete removes a subscription and returns the raw vendor payload, which
// is empty or non-JSON on some endpoints.
func (c *WebhookClient) Delete(ctx context.Context, id string) (string, error) {
	return c.doText(ctx, http.MethodDelete, "/subscription/"+url.PathEscape(id), nil)
}

// Renew extends the expiration time of a subscription.
func (c *WebhookClient) Renew(ctx context.Context, id string) (*Subscription, error) {
	var sub Subscription
	if err := c.do(ctx, http.MethodPut, "/subscription/renew/"+url.PathEscape(id), nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *WebhookClient) do(ctx context.Context, method, path string, body, out any) error {
	data, err := c.doRaw(ctx, method, path, body)
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

func (c *WebhookClient) doText(ctx context.Context, method, path string, body any) (string, error) {
	data, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *WebhookClient) doRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("x-client-id", c.clientID)
	req.Header.Set("x-client-secret", c.clientSecret)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
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

// Event represents a webhook notification delivered to a callback URL.
type Event struct {
	EventType EventType `json:"event_type"`
	DataType  DataType  `json:"data_type"`
	ObjectID  string    `json:"object_id"`
	EventTime time.Time `json:"event_time"`
	UserID    string    `json:"user_id"`
}

// ParseEvent reads a webhook notification from an incoming POST request.
// Ensure your HTTP handler does NOT consume r.Body before passing it here.
func ParseEvent(r *http.Request) (*Event, error) {
	if r.Method != http.MethodPost {
		return nil, errors.New("webhook event must be a POST request")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read webhook body: %w", err)
	}

	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("failed to parse webhook json: %w", err)
	}
	return &event, nil
}

// HandleVerification answers the subscription verification handshake. When
// the incoming request is the vendor's GET challenge it writes the expected
// {"challenge": ...} response and reports true, meaning the caller should
// stop processing the request. A verification token mismatch is an error.
func HandleVerification(w http.ResponseWriter, r *http.Request, verificationToken string) (bool, error) {
	if r.Method != http.MethodGet {
		return false, nil
	}

	q := r.URL.Query()
	challenge := q.Get("challenge")
	if challenge == "" {
		return false, nil
	}

	if q.Get("verification_token") != verificationToken {
		return false, errors.New("webhook verification token mismatch")
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"challenge": challenge}); err != nil {
		return true, fmt.Errorf("failed to write challenge response: %w", err)
	}
	return true, nil
}
