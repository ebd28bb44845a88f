package oura

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Oura OAuth2 endpoints.
const (
	defaultAuthURL   = "https://cloud.ouraring.com/oauth/authorize"
	defaultTokenURL  = "https://api.ouraring.com/oauth/token"
	defaultRevokeURL = "https://api.ouraring.com/oauth/revoke"
)

// OAuth drives the authorization-code flow against the Oura OAuth2
// endpoints. It holds no user tokens and caches nothing: exchange and
// refresh results go straight back to the caller, who owns their lifecycle.
type OAuth struct {
	config     *oauth2.Config
	revokeURL  string
	httpClient *http.Client
}

func newOAuth(clientID, clientSecret, redirectURI string, hc *http.Client) *OAuth {
	return &OAuth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:  defaultAuthURL,
				TokenURL: defaultTokenURL,
				// Oura expects client credentials in the form body.
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		revokeURL:  defaultRevokeURL,
		httpClient: hc,
	}
}

// NewOAuth creates a standalone flow helper. All three application
// credentials are mandatory; each missing one fails with its own named
// error.
func NewOAuth(clientID, clientSecret, redirectURI string, opts ...OAuthOption) (*OAuth, error) {
	switch {
	case clientID == "":
		return nil, ErrMissingClientID
	case clientSecret == "":
		return nil, ErrMissingClientSecret
	case redirectURI == "":
		return nil, ErrMissingRedirectURI
	}

	o := newOAuth(clientID, clientSecret, redirectURI, &http.Client{Timeout: 30 * time.Second})
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// OAuthOption is a functional option for configuring the OAuth helper.
type OAuthOption func(*OAuth)

// WithOAuthHTTPClient sets the underlying HTTP client used for token calls.
func WithOAuthHTTPClient(hc *http.Client) OAuthOption {
	return func(o *OAuth) {
		o.httpClient = hc
	}
}

// WithOAuthEndpoints overrides the vendor OAuth endpoints. This is
// primarily useful for testing.
func WithOAuthEndpoints(authURL, tokenURL, revokeURL string) OAuthOption {
	return func(o *OAuth) {
		o.config.Endpoint.AuthURL = authURL
		o.config.Endpoint.TokenURL = tokenURL
		o.revokeURL = revokeURL
	}
}

// AuthCodeURL builds the response_type=code authorization URL the user
// visits to grant the requested scopes. state is echoed back on the
// redirect; the helper does not generate one, so supply a CSRF-safe value
// yourself.
func (o *OAuth) AuthCodeURL(state string, scopes ...Scope) string {
	cfg := *o.config
	cfg.Scopes = make([]string, len(scopes))
	for i, s := range scopes {
		cfg.Scopes[i] = string(s)
	}
	return cfg.AuthCodeURL(state)
}

// Exchange trades an authorization code for an access/refresh token pair
// via the authorization_code grant.
func (o *OAuth) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := o.config.Exchange(o.httpContext(ctx), code)
	if err != nil {
		return nil, mapOAuthError(err)
	}
	return tok, nil
}

// Refresh obtains a fresh token pair via the refresh_token grant.
func (o *OAuth) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	if refreshToken == "" {
		return nil, ErrMissingToken
	}

	src := o.config.TokenSource(o.httpContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, mapOAuthError(err)
	}
	return tok, nil
}

// Revoke invalidates an access token. The vendor expects the token as a
// query parameter and answers 2xx with an empty body; anything else
// surfaces as a typed error.
func (o *OAuth) Revoke(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return ErrMissingToken
	}

	u := o.revokeURL + "?" + url.Values{"access_token": {accessToken}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return err
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http execute request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return mapHTTPError(resp, body)
	}
	return nil
}

// httpContext routes the oauth2 package's internal transport through the
// helper's HTTP client.
func (o *OAuth) httpContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, o.httpClient)
}

// mapOAuthError surfaces token endpoint failures as API errors carrying the
// vendor's raw response text as detail.
func mapOAuthError(err error) error {
	var re *oauth2.RetrieveError
	if !errors.As(err, &re) {
		return err
	}

	e := &Error{
		Kind:       KindAPI,
		StatusCode: re.Response.StatusCode,
		Status:     http.StatusText(re.Response.StatusCode),
		Detail:     strings.TrimSpace(string(re.Body)),
	}
	if e.Detail == "" {
		e.Detail = noDetails
	}
	if re.Response.Request != nil {
		e.URL = re.Response.Request.URL.String()
		e.Method = re.Response.Request.Method
	}
	return e
}
