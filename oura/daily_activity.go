package oura

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// DailyActivity represents one day's activity summary.
type DailyActivity struct {
	ID                        string                `json:"id"`
	Day                       string                `json:"day"`
	Class5Min                 string                `json:"class_5_min"`
	Score                     *int                  `json:"score"`
	ActiveCalories            int                   `json:"active_calories"`
	AverageMetMinutes         float64               `json:"average_met_minutes"`
	Contributors              *ActivityContributors `json:"contributors"`
	EquivalentWalkingDistance int                   `json:"equivalent_walking_distance"`
	HighActivityMetMinutes    int                   `json:"high_activity_met_minutes"`
	HighActivityTime          int                   `json:"high_activity_time"`
	InactivityAlerts          int                   `json:"inactivity_alerts"`
	LowActivityMetMinutes     int                   `json:"low_activity_met_minutes"`
	LowActivityTime           int                   `json:"low_activity_time"`
	MediumActivityMetMinutes  int                   `json:"medium_activity_met_minutes"`
	MediumActivityTime        int                   `json:"medium_activity_time"`
	Met                       *SampleData           `json:"met"`
	MetersToTarget            int                   `json:"meters_to_target"`
	NonWearTime               int                   `json:"non_wear_time"`
	RestingTime               int                   `json:"resting_time"`
	SedentaryMetMinutes       int                   `json:"sedentary_met_minutes"`
	SedentaryTime             int                   `json:"sedentary_time"`
	Steps                     int                   `json:"steps"`
	TargetCalories            int                   `json:"target_calories"`
	TargetMeters              int                   `json:"target_meters"`
	TotalCalories             int                   `json:"total_calories"`
	Timestamp                 time.Time             `json:"timestamp"`
}

// ActivityContributors breaks an activity score down into its inputs.
type ActivityContributors struct {
	MeetDailyTargets  *int `json:"meet_daily_targets"`
	MoveEveryHour     *int `json:"move_every_hour"`
	RecoveryTime      *int `json:"recovery_time"`
	StayActive        *int `json:"stay_active"`
	TrainingFrequency *int `json:"training_frequency"`
	TrainingVolume    *int `json:"training_volume"`
}

// SampleData is a time series of measurements sampled at a fixed interval.
// Items may contain nulls where the ring recorded no data.
type SampleData struct {
	Interval  float64    `json:"interval"`
	Items     []*float64 `json:"items"`
	Timestamp time.Time  `json:"timestamp"`
}

// DailyActivityService handles communication with the daily activity
// endpoints.
type DailyActivityService struct {
	client *Client
}

// List fetches every daily activity summary in the requested date range,
// walking all pages.
func (s *DailyActivityService) List(ctx context.Context, opts *ListOptions) ([]DailyActivity, error) {
	params, err := opts.values()
	if err != nil {
		return nil, err
	}
	return listAll[DailyActivity](ctx, s.client, "/usercollection/daily_activity", params)
}

// GetByID fetches a single daily activity summary by its document ID.
func (s *DailyActivityService) GetByID(ctx context.Context, id string) (*DailyActivity, error) {
	var item DailyActivity
	if err := s.client.do(ctx, http.MethodGet, "/usercollection/daily_activity/"+url.PathEscape(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
