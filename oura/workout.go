package oura

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Workout represents a single recorded workout.
type Workout struct {
	ID            string    `json:"id"`
	Day           string    `json:"day"`
	Activity      string    `json:"activity"`
	Calories      *float64  `json:"calories"`
	Distance      *float64  `json:"distance"`
	Intensity     string    `json:"intensity"`
	Label         string    `json:"label"`
	Source        string    `json:"source"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
}

// WorkoutService handles communication with the workout endpoints.
type WorkoutService struct {
	client *Client
}

// List fetches every workout in the requested date range, walking all pages.
func (s *WorkoutService) List(ctx context.Context, opts *ListOptions) ([]Workout, error) {
	params, err := opts.values()
	if err != nil {
		return nil, err
	}
	return listAll[Workout](ctx, s.client, "/usercollection/workout", params)
}

// GetByID fetches a single workout by its document ID.
func (s *WorkoutService) GetByID(ctx context.Context, id string) (*Workout, error) {
	var item Workout
	if err := s.client.do(ctx, http.MethodGet, "/usercollection/workout/"+url.PathEscape(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
