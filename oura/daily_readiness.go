package oura

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// DailyReadiness represents one day's readiness score summary.
type DailyReadiness struct {
	ID                        string                 `json:"id"`
	Day                       string                 `json:"day"`
	Score                     *int                   `json:"score"`
	Contributors              *ReadinessContributors `json:"contributors"`
	TemperatureDeviation      *float64               `json:"temperature_deviation"`
	TemperatureTrendDeviation *float64               `json:"temperature_trend_deviation"`
	Timestamp                 time.Time              `json:"timestamp"`
}

// ReadinessContributors breaks a readiness score down into its inputs.
type ReadinessContributors struct {
	ActivityBalance     *int `json:"activity_balance"`
	BodyTemperature     *int `json:"body_temperature"`
	HrvBalance          *int `json:"hrv_balance"`
	PreviousDayActivity *int `json:"previous_day_activity"`
	PreviousNight       *int `json:"previous_night"`
	RecoveryIndex       *int `json:"recovery_index"`
	RestingHeartRate    *int `json:"resting_heart_rate"`
	SleepBalance        *int `json:"sleep_balance"`
}

// DailyReadinessService handles communication with the daily readiness
// endpoints.
type DailyReadinessService struct {
	client *Client
}

// List fetches every daily readiness summary in the requested date range,
// walking all pages.
func (s *DailyReadinessService) List(ctx context.Context, opts *ListOptions) ([]DailyReadiness, error) {
	params, err := opts.values()
	if err != nil {
		return nil, err
	}
	return listAll[DailyReadiness](ctx, s.client, "/usercollection/daily_readiness", params)
}

// GetByID fetches a single daily readiness summary by its document ID.
func (s *DailyReadinessService) GetByID(ctx context.Context, id string) (*DailyReadiness, error) {
	var item DailyReadiness
	if err := s.client.do(ctx, http.MethodGet, "/usercollection/daily_readiness/"+url.PathEscape(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
