// Command auth runs the OAuth2 authorization-code flow against the Oura
// API and prints the resulting tokens. It spins up a temporary local HTTP
// server to catch the redirect callback.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/oauth2"

	"github.com/oura-community/oura-go/oura"
)

func main() {
	clientID := os.Getenv("OURA_CLIENT_ID")
	clientSecret := os.Getenv("OURA_CLIENT_SECRET")
	redirectURI := os.Getenv("OURA_REDIRECT_URI")
	if redirectURI == "" {
		redirectURI = "http://localhost:8081/callback"
	}

	flow, err := oura.NewOAuth(clientID, clientSecret, redirectURI)
	if err != nil {
		log.Fatalf("Error: %v (set OURA_CLIENT_ID, OURA_CLIENT_SECRET and optionally OURA_REDIRECT_URI)", err)
	}

	// Refresh an existing session without a browser round trip if possible.
	if refresh := os.Getenv("OURA_REFRESH_TOKEN"); refresh != "" {
		fmt.Println("Found OURA_REFRESH_TOKEN. Attempting refresh...")
		tok, err := flow.Refresh(context.Background(), refresh)
		if err == nil {
			printToken(tok)
			return
		}
		fmt.Printf("Refresh failed (%v), starting new authorization flow...\n\n", err)
	}

	runAuthFlow(flow, redirectURI)
}

func runAuthFlow(flow *oura.OAuth, redirectURI string) {
	u, err := url.Parse(redirectURI)
	if err != nil {
		log.Fatalf("Error parsing OURA_REDIRECT_URI: %v", err)
	}

	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}

	authURL := flow.AuthCodeURL("oura-go-state",
		oura.ScopeEmail,
		oura.ScopePersonal,
		oura.ScopeDaily,
		oura.ScopeHeartrate,
		oura.ScopeWorkout,
		oura.ScopeTag,
		oura.ScopeSession,
		oura.ScopeSpo2,
	)

	fmt.Println("=== Oura OAuth 2.0 Token Generator ===")
	fmt.Println("\n1. IMPORTANT: Ensure you have added the following Redirect URI to your application in the Oura developer dashboard:")
	fmt.Printf("   %s\n", redirectURI)
	fmt.Println("\n2. Open this URL in your browser to authorize:")
	fmt.Printf("\n   %s\n\n", authURL)
	fmt.Printf("Waiting for authorization callback on port %s...\n", port)

	server := &http.Server{Addr: ":" + port}

	http.HandleFunc(u.Path, func(w http.ResponseWriter, r *http.Request) {
		if errParam := r.URL.Query().Get("error"); errParam != "" {
			desc := r.URL.Query().Get("error_description")
			msg := fmt.Sprintf("OAuth error: %s\nDescription: %s", errParam, desc)
			fmt.Fprintf(os.Stderr, "\n=== OAUTH ERROR ===\n%s\n", msg)
			http.Error(w, msg, http.StatusBadRequest)
			shutdownSoon(server)
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "Failed to get auth code from request", http.StatusBadRequest)
			return
		}

		fmt.Println("Received auth code! Exchanging for access token...")

		tok, err := flow.Exchange(r.Context(), code)
		if err != nil {
			http.Error(w, fmt.Sprintf("Token exchange error: %v", err), http.StatusInternalServerError)
			return
		}

		printToken(tok)
		fmt.Fprintf(w, "Success! You can close this window and check your terminal.")
		shutdownSoon(server)
	})

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

func shutdownSoon(server *http.Server) {
	go func() {
		time.Sleep(1 * time.Second)
		_ = server.Shutdown(context.Background())
	}()
}

func printToken(tok *oauth2.Token) {
	fmt.Println("\n=== SUCCESS ===")
	fmt.Println("\nExport your tokens:")
	fmt.Printf("\nexport OURA_ACCESS_TOKEN=%q\n", tok.AccessToken)
	if tok.RefreshToken != "" {
		fmt.Printf("export OURA_REFRESH_TOKEN=%q\n", tok.RefreshToken)
	}
	if !tok.Expiry.IsZero() {
		fmt.Printf("\nToken expires at %s.\n", tok.Expiry.Format(time.RFC3339))
	}
}
