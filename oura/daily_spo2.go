package oura

import (
	"context"
	"net/http"
	"net/url"
)

// DailySpo2 represents one day's blood oxygen saturation average.
type DailySpo2 struct {
	ID             string          `json:"id"`
	Day            string          `json:"day"`
	Spo2Percentage *Spo2Percentage `json:"spo2_percentage"`
}

// Spo2Percentage holds the averaged SpO2 reading for a day.
type Spo2Percentage struct {
	Average float64 `json:"average"`
}

// DailySpo2Service handles communication with the daily SpO2 endpoints.
type DailySpo2Service struct {
	client *Client
}

// List fetches every daily SpO2 average in the requested date range,
// walking all pages.
func (s *DailySpo2Service) List(ctx context.Context, opts *ListOptions) ([]DailySpo2, error) {
	params, err := opts.values()
	if err != nil {
		return nil, err
	}
	return listAll[DailySpo2](ctx, s.client, "/usercollection/daily_spo2", params)
}

// GetByID fetches a single daily SpO2 average by its document ID.
func (s *DailySpo2Service) GetByID(ctx context.Context, id string) (*DailySpo2, error) {
	var item DailySpo2
	if err := s.client.do(ctx, http.MethodGet, "/usercollection/daily_spo2/"+url.PathEscape(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
