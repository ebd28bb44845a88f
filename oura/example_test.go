package oura_test

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/oura-community/oura-go/oura"
)

// Create a client with a personal access token.
func ExampleNewClient() {
	client, err := oura.NewClient(os.Getenv("OURA_ACCESS_TOKEN"))
	if err != nil {
		log.Fatal(err)
	}

	info, err := client.PersonalInfo.Get(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Hello,", info.Email)
}

// The sandbox environment serves sample data and needs no credential.
func ExampleNewSandboxClient() {
	client := oura.NewSandboxClient()

	docs, err := client.DailyActivity.List(context.Background(), &oura.ListOptions{
		StartDate: "2023-01-01",
		EndDate:   "2023-01-10",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, d := range docs {
		fmt.Printf("Day %s: %d steps\n", d.Day, d.Steps)
	}
}

// OAuth clients hold no user token; bind one per call chain.
func ExampleClient_WithAccessToken() {
	client, err := oura.NewOAuthClient("client-id", "client-secret", "https://example.com/callback")
	if err != nil {
		log.Fatal(err)
	}

	authed := client.WithAccessToken("user-access-token")
	docs, err := authed.Sleep.List(context.Background(), &oura.ListOptions{
		StartDate: "2023-01-01",
		EndDate:   "2023-01-07",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("fetched %d sleep periods\n", len(docs))
}

// Build the authorization URL and exchange the returned code for tokens.
func ExampleOAuth_AuthCodeURL() {
	flow, err := oura.NewOAuth("client-id", "client-secret", "https://example.com/callback")
	if err != nil {
		log.Fatal(err)
	}

	url := flow.AuthCodeURL("csrf-state", oura.ScopeDaily, oura.ScopeHeartrate)
	fmt.Println("visit:", url)

	// After the redirect comes back with ?code=...
	tok, err := flow.Exchange(context.Background(), "auth-code-from-redirect")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("access token expires at", tok.Expiry)
}

// List datetime-ranged heart rate readings.
func ExampleHeartrateService_List() {
	client := oura.NewSandboxClient()

	readings, err := client.Heartrate.List(context.Background(), &oura.DatetimeListOptions{
		StartDatetime: "2023-01-01T00:00:00Z",
		EndDatetime:   "2023-01-02T00:00:00Z",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, r := range readings {
		fmt.Printf("%s: %d bpm (%s)\n", r.Timestamp, r.Bpm, r.Source)
	}
}

// Manage webhook subscriptions with application credentials.
func ExampleWebhookClient_Create() {
	hooks, err := oura.NewWebhookClient(os.Getenv("OURA_CLIENT_ID"), os.Getenv("OURA_CLIENT_SECRET"))
	if err != nil {
		log.Fatal(err)
	}

	sub, err := hooks.Create(context.Background(), &oura.CreateSubscriptionRequest{
		CallbackURL:       "https://example.com/oura/hook",
		VerificationToken: os.Getenv("OURA_VERIFICATION_TOKEN"),
		EventType:         oura.EventCreate,
		DataType:          oura.DataTypeDailySleep,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("subscription", sub.ID, "expires", sub.ExpirationTime)
}

// Answer the subscription verification handshake and decode deliveries.
func ExampleParseEvent() {
	verificationToken := os.Getenv("OURA_VERIFICATION_TOKEN")

	http.HandleFunc("/oura/hook", func(w http.ResponseWriter, r *http.Request) {
		handled, err := oura.HandleVerification(w, r, verificationToken)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if handled {
			return
		}

		event, err := oura.ParseEvent(r)
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		fmt.Printf("Event: %s %s for document %s\n", event.EventType, event.DataType, event.ObjectID)
		w.WriteHeader(http.StatusOK)
	})
}
