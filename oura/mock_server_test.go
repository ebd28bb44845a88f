package oura

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// sandboxFixture mimics the Oura sandbox: fixed payloads for a handful of
// routes, with two-page pagination on the daily activity collection. It
// counts requests so tests can assert round trips.
type sandboxFixture struct {
	server   *httptest.Server
	requests atomic.Int64
}

func newSandboxFixture(t *testing.T) *sandboxFixture {
	t.Helper()

	f := &sandboxFixture{}
	mux := http.NewServeMux()

	// Daily activity, paginated: page one hands out cursor "abc", page two
	// is terminal.
	mux.HandleFunc("/usercollection/daily_activity", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")

		switch token := r.URL.Query().Get("next_token"); token {
		case "":
			_, _ = w.Write([]byte(`{
				"data": [
					{"id": "act-1", "day": "2023-01-02", "steps": 9876, "score": 85, "total_calories": 2500},
					{"id": "act-2", "day": "2023-01-03", "steps": 4321, "score": 61, "total_calories": 2100}
				],
				"next_token": "abc"
			}`))
		case "abc":
			_, _ = w.Write([]byte(`{
				"data": [
					{"id": "act-3", "day": "2023-01-04", "steps": 12000, "score": 92, "total_calories": 2900}
				],
				"next_token": null
			}`))
		default:
			t.Fatalf("unexpected cursor requested: %q", token)
		}
	})

	mux.HandleFunc("/usercollection/daily_activity/act-1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "act-1",
			"day": "2023-01-02",
			"steps": 9876,
			"score": 85,
			"total_calories": 2500,
			"contributors": {"meet_daily_targets": 70, "stay_active": 90},
			"met": {"interval": 60, "items": [1.2, null, 3.4], "timestamp": "2023-01-02T04:00:00+00:00"},
			"timestamp": "2023-01-02T04:00:00+00:00"
		}`))
	})

	// Personal info, singleton.
	mux.HandleFunc("/usercollection/personal_info", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "user-1",
			"age": 31,
			"weight": 74.8,
			"height": 1.8,
			"biological_sex": "male",
			"email": "user@example.com"
		}`))
	})

	// Heart rate, datetime-ranged, single page.
	mux.HandleFunc("/usercollection/heartrate", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"bpm": 60, "source": "sleep", "timestamp": "2023-01-01T01:00:00+00:00"},
				{"bpm": 62, "source": "sleep", "timestamp": "2023-01-01T01:05:00+00:00"}
			],
			"next_token": null
		}`))
	})

	counted := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		mux.ServeHTTP(w, r)
	})

	f.server = httptest.NewServer(counted)
	t.Cleanup(f.server.Close)
	return f
}

// client returns a sandbox client pointed at the fixture.
func (f *sandboxFixture) client(opts ...Option) *Client {
	defaultOpts := []Option{WithBaseURL(f.server.URL)}
	return NewSandboxClient(append(defaultOpts, opts...)...)
}
