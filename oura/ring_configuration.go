package oura

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// RingConfiguration describes a ring paired with the user's account.
type RingConfiguration struct {
	ID              string     `json:"id"`
	Color           string     `json:"color"`
	Design          string     `json:"design"`
	FirmwareVersion string     `json:"firmware_version"`
	HardwareType    string     `json:"hardware_type"`
	SetUpAt         *time.Time `json:"set_up_at"`
	Size            *int       `json:"size"`
}

// RingConfigurationService handles communication with the ring
// configuration endpoints.
type RingConfigurationService struct {
	client *Client
}

// List fetches every ring configuration on the account, walking all pages.
func (s *RingConfigurationService) List(ctx context.Context, opts *ListOptions) ([]RingConfiguration, error) {
	params, err := opts.values()
	if err != nil {
		return nil, err
	}
	return listAll[RingConfiguration](ctx, s.client, "/usercollection/ring_configuration", params)
}

// GetByID fetches a single ring configuration by its document ID.
func (s *RingConfigurationService) GetByID(ctx context.Context, id string) (*RingConfiguration, error) {
	var item RingConfiguration
	if err := s.client.do(ctx, http.MethodGet, "/usercollection/ring_configuration/"+url.PathEscape(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
