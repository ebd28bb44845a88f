package oura

import (
	"context"
	"net/http"
)

// PersonalInfo represents the user's personal profile information.
// Fields outside the granted scopes come back empty.
type PersonalInfo struct {
	ID            string   `json:"id"`
	Age           *int     `json:"age"`
	Weight        *float64 `json:"weight"`
	Height        *float64 `json:"height"`
	BiologicalSex string   `json:"biological_sex"`
	Email         string   `json:"email"`
}

// PersonalInfoService handles communication with the personal info
// endpoint. Personal info is a singleton: there is no list form and no
// parameters.
type PersonalInfoService struct {
	client *Client
}

// Get fetches the user's personal information.
func (s *PersonalInfoService) Get(ctx context.Context) (*PersonalInfo, error) {
	var info PersonalInfo
	if err := s.client.do(ctx, http.MethodGet, "/usercollection/personal_info", nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
