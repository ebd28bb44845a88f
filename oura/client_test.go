package oura

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClient_CredentialValidation(t *testing.T) {
	tests := []struct {
		name    string
		build   func() error
		wantErr error
	}{
		{
			name: "static token present",
			build: func() error {
				_, err := NewClient("pat-token")
				return err
			},
		},
		{
			name: "static token missing",
			build: func() error {
				_, err := NewClient("")
				return err
			},
			wantErr: ErrMissingToken,
		},
		{
			name: "oauth complete",
			build: func() error {
				_, err := NewOAuthClient("id", "secret", "https://example.com/callback")
				return err
			},
		},
		{
			name: "oauth missing client id",
			build: func() error {
				_, err := NewOAuthClient("", "secret", "https://example.com/callback")
				return err
			},
			wantErr: ErrMissingClientID,
		},
		{
			name: "oauth missing client secret",
			build: func() error {
				_, err := NewOAuthClient("id", "", "https://example.com/callback")
				return err
			},
			wantErr: ErrMissingClientSecret,
		},
		{
			name: "oauth missing redirect uri",
			build: func() error {
				_, err := NewOAuthClient("id", "secret", "")
				return err
			},
			wantErr: ErrMissingRedirectURI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected construction error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewSandboxClient_NoCredentialRequired(t *testing.T) {
	client := NewSandboxClient()

	if client.baseURL != sandboxBaseURL {
		t.Errorf("expected sandbox base URL %s, got %s", sandboxBaseURL, client.baseURL)
	}
	if client.PersonalInfo == nil || client.DailyActivity == nil || client.Heartrate == nil {
		t.Error("expected services to be initialized")
	}
}

func TestClient_AuthHeaders(t *testing.T) {
	tests := []struct {
		name       string
		client     func(baseURL string) *Client
		wantHeader string
	}{
		{
			name: "static token sends fixed bearer",
			client: func(baseURL string) *Client {
				c, _ := NewClient("pat-token", WithBaseURL(baseURL))
				return c
			},
			wantHeader: "Bearer pat-token",
		},
		{
			name: "sandbox sends no authorization",
			client: func(baseURL string) *Client {
				return NewSandboxClient(WithBaseURL(baseURL))
			},
			wantHeader: "",
		},
		{
			name: "oauth sends per-call bearer",
			client: func(baseURL string) *Client {
				c, _ := NewOAuthClient("id", "secret", "https://example.com/callback", WithBaseURL(baseURL))
				return c.WithAccessToken("short-lived")
			},
			wantHeader: "Bearer short-lived",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotHeader string
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotHeader = r.Header.Get("Authorization")
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id": "u1", "email": "user@example.com"}`))
			}))
			defer ts.Close()

			client := tt.client(ts.URL)
			if _, err := client.PersonalInfo.Get(context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if gotHeader != tt.wantHeader {
				t.Errorf("expected Authorization %q, got %q", tt.wantHeader, gotHeader)
			}
		})
	}
}

func TestClient_OAuthMissingToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued without an access token")
	}))
	defer ts.Close()

	client, err := NewOAuthClient("id", "secret", "https://example.com/callback", WithBaseURL(ts.URL))
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}

	_, err = client.Sleep.List(context.Background(), nil)
	if !errors.Is(err, ErrMissingToken) {
		t.Errorf("expected ErrMissingToken, got %v", err)
	}
}

func TestClient_WithAccessToken_DoesNotMutateReceiver(t *testing.T) {
	client, err := NewOAuthClient("id", "secret", "https://example.com/callback")
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}

	derived := client.WithAccessToken("tok")

	if client.accessToken != "" {
		t.Error("expected original client to stay unbound")
	}
	if derived.accessToken != "tok" {
		t.Errorf("expected derived client to carry the token, got %q", derived.accessToken)
	}
	if derived.Sleep == client.Sleep {
		t.Error("expected derived client to own its services")
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	client := NewSandboxClient(WithBaseURL(ts.URL))

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.PersonalInfo.Get(ctx)
	duration := time.Since(start)

	if err == nil {
		t.Fatal("expected context deadline exceeded error, got nil")
	}
	if duration > 100*time.Millisecond {
		t.Errorf("request took too long to abort on cancelled context: %v", duration)
	}
}

func TestClient_DeleteReturnsRawText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		_, _ = w.Write([]byte("gone"))
	}))
	defer ts.Close()

	client := NewSandboxClient(WithBaseURL(ts.URL))

	got, err := client.doText(context.Background(), http.MethodDelete, "/anything", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "gone" {
		t.Errorf("expected raw body 'gone', got %q", got)
	}
}

func TestClientStringRedaction(t *testing.T) {
	client, err := NewClient("my-secret-token")
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}

	formats := []string{"%v", "%+v", "%s", "%#v"}

	for _, format := range formats {
		t.Run(format, func(t *testing.T) {
			output := fmt.Sprintf(format, client)

			if strings.Contains(output, "my-secret-token") {
				t.Errorf("token leaked in %s output: %s", format, output)
			}
			if !strings.Contains(output, "token:<REDACTED>") {
				t.Errorf("expected redacted token placeholder in %s output, got: %s", format, output)
			}
		})
	}
}
