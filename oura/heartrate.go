package oura

import (
	"context"
	"time"
)

// Heartrate is a single heart rate reading.
type Heartrate struct {
	Bpm       int       `json:"bpm"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// HeartrateService handles communication with the heart rate endpoint.
// Heart rate data is list-only and ranges over datetimes rather than days;
// there is no by-id form.
type HeartrateService struct {
	client *Client
}

// List fetches every heart rate reading in the requested datetime range,
// walking all pages.
func (s *HeartrateService) List(ctx context.Context, opts *DatetimeListOptions) ([]Heartrate, error) {
	params, err := opts.values()
	if err != nil {
		return nil, err
	}
	return listAll[Heartrate](ctx, s.client, "/usercollection/heartrate", params)
}
