package oura

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// DailySleep represents one day's sleep score summary.
type DailySleep struct {
	ID           string                  `json:"id"`
	Day          string                  `json:"day"`
	Score        *int                    `json:"score"`
	Contributors *DailySleepContributors `json:"contributors"`
	Timestamp    time.Time               `json:"timestamp"`
}

// DailySleepContributors breaks a sleep score down into its inputs.
type DailySleepContributors struct {
	DeepSleep   *int `json:"deep_sleep"`
	Efficiency  *int `json:"efficiency"`
	Latency     *int `json:"latency"`
	RemSleep    *int `json:"rem_sleep"`
	Restfulness *int `json:"restfulness"`
	Timing      *int `json:"timing"`
	TotalSleep  *int `json:"total_sleep"`
}

// DailySleepService handles communication with the daily sleep endpoints.
type DailySleepService struct {
	client *Client
}

// List fetches every daily sleep summary in the requested date range,
// walking all pages.
func (s *DailySleepService) List(ctx context.Context, opts *ListOptions) ([]DailySleep, error) {
	params, err := opts.values()
	if err != nil {
		return nil, err
	}
	return listAll[DailySleep](ctx, s.client, "/usercollection/daily_sleep", params)
}

// GetByID fetches a single daily sleep summary by its document ID.
func (s *DailySleepService) GetByID(ctx context.Context, id string) (*DailySleep, error) {
	var item DailySleep
	if err := s.client.do(ctx, http.MethodGet, "/usercollection/daily_sleep/"+url.PathEscape(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
