package oura

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Session represents a guided or unguided moment session.
type Session struct {
	ID                   string      `json:"id"`
	Day                  string      `json:"day"`
	StartDatetime        time.Time   `json:"start_datetime"`
	EndDatetime          time.Time   `json:"end_datetime"`
	Type                 string      `json:"type"`
	Mood                 string      `json:"mood"`
	HeartRate            *SampleData `json:"heart_rate"`
	HeartRateVariability *SampleData `json:"heart_rate_variability"`
	MotionCount          *SampleData `json:"motion_count"`
}

// SessionService handles communication with the session endpoints.
type SessionService struct {
	client *Client
}

// List fetches every session in the requested date range, walking all pages.
func (s *SessionService) List(ctx context.Context, opts *ListOptions) ([]Session, error) {
	params, err := opts.values()
	if err != nil {
		return nil, err
	}
	return listAll[Session](ctx, s.client, "/usercollection/session", params)
}

// GetByID fetches a single session by its document ID.
func (s *SessionService) GetByID(ctx context.Context, id string) (*Session, error) {
	var item Session
	if err := s.client.do(ctx, http.MethodGet, "/usercollection/session/"+url.PathEscape(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
