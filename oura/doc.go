// Package oura provides a typed Go client for the Oura V2 REST API,
// covering the user-data collections (activity, sleep, readiness, heart
// rate, workouts, ...), the OAuth2 authorization-code flow, and webhook
// subscription management.
//
// The client handles cursor-based pagination transparently (every List call
// walks all pages and returns the flattened collection), maps vendor error
// responses to a small typed taxonomy, and supports three mutually
// exclusive credential variants: personal access token, OAuth2, and the
// credential-free sandbox environment.
//
// # Quick Start
//
//	client, err := oura.NewClient(os.Getenv("OURA_ACCESS_TOKEN"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	info, err := client.PersonalInfo.Get(ctx)
//
// # Pagination
//
// List methods follow the server-issued next_token cursor until it is
// exhausted and return every page's items in order:
//
//	docs, err := client.DailyActivity.List(ctx, &oura.ListOptions{
//	    StartDate: "2023-01-01",
//	    EndDate:   "2023-01-10",
//	})
//
// # OAuth2
//
// Clients built with NewOAuthClient hold no user token. Bind a short-lived
// access token per call chain and drive the flow with the OAuth helper:
//
//	client, _ := oura.NewOAuthClient(id, secret, redirectURI)
//	url := client.OAuth.AuthCodeURL("state", oura.ScopeDaily)
//	tok, _ := client.OAuth.Exchange(ctx, code)
//	docs, _ := client.WithAccessToken(tok.AccessToken).Sleep.List(ctx, nil)
//
// # Webhooks
//
// Subscription management authenticates with application credentials
// instead of a bearer token and lives on its own client:
//
//	hooks, _ := oura.NewWebhookClient(id, secret)
//	subs, _ := hooks.List(ctx)
package oura
