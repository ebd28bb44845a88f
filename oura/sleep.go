package oura

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Sleep represents a single sleep period with full time-series detail.
type Sleep struct {
	ID                  string      `json:"id"`
	Day                 string      `json:"day"`
	BedtimeStart        time.Time   `json:"bedtime_start"`
	BedtimeEnd          time.Time   `json:"bedtime_end"`
	Type                string      `json:"type"`
	Period              int         `json:"period"`
	AverageBreath       *float64    `json:"average_breath"`
	AverageHeartRate    *float64    `json:"average_heart_rate"`
	AverageHrv          *int        `json:"average_hrv"`
	AwakeTime           int         `json:"awake_time"`
	DeepSleepDuration   int         `json:"deep_sleep_duration"`
	Efficiency          int         `json:"efficiency"`
	HeartRate           *SampleData `json:"heart_rate"`
	Hrv                 *SampleData `json:"hrv"`
	Latency             int         `json:"latency"`
	LightSleepDuration  int         `json:"light_sleep_duration"`
	LowBatteryAlert     bool        `json:"low_battery_alert"`
	LowestHeartRate     *int        `json:"lowest_heart_rate"`
	Movement30Sec       string      `json:"movement_30_sec"`
	ReadinessScoreDelta *float64    `json:"readiness_score_delta"`
	RemSleepDuration    int         `json:"rem_sleep_duration"`
	RestlessPeriods     int         `json:"restless_periods"`
	SleepPhase5Min      string      `json:"sleep_phase_5_min"`
	SleepScoreDelta     *float64    `json:"sleep_score_delta"`
	TimeInBed           int         `json:"time_in_bed"`
	TotalSleepDuration  int         `json:"total_sleep_duration"`
}

// SleepService handles communication with the sleep period endpoints.
type SleepService struct {
	client *Client
}

// List fetches every sleep period in the requested date range, walking all
// pages.
func (s *SleepService) List(ctx context.Context, opts *ListOptions) ([]Sleep, error) {
	params, err := opts.values()
	if err != nil {
		return nil, err
	}
	return listAll[Sleep](ctx, s.client, "/usercollection/sleep", params)
}

// GetByID fetches a single sleep period by its document ID.
func (s *SleepService) GetByID(ctx context.Context, id string) (*Sleep, error) {
	var item Sleep
	if err := s.client.do(ctx, http.MethodGet, "/usercollection/sleep/"+url.PathEscape(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
