package oura

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
)

// ListOptions specifies the date-range filter shared by most list endpoints.
// Dates are ISO formatted, YYYY-MM-DD.
type ListOptions struct {
	// Earliest day of data to fetch (inclusive).
	StartDate string `url:"start_date,omitempty"`

	// Latest day of data to fetch (inclusive).
	EndDate string `url:"end_date,omitempty"`
}

// values validates the options and encodes them into query parameters.
func (o *ListOptions) values() (url.Values, error) {
	if o == nil {
		return nil, nil
	}
	if err := validateDate(o.StartDate); err != nil {
		return nil, err
	}
	if err := validateDate(o.EndDate); err != nil {
		return nil, err
	}
	return query.Values(o)
}

// DatetimeListOptions specifies the datetime-range filter used by the heart
// rate endpoint. Timestamps are ISO 8601 formatted.
type DatetimeListOptions struct {
	// Earliest timestamp of data to fetch (inclusive).
	StartDatetime string `url:"start_datetime,omitempty"`

	// Latest timestamp of data to fetch (inclusive).
	EndDatetime string `url:"end_datetime,omitempty"`
}

func (o *DatetimeListOptions) values() (url.Values, error) {
	if o == nil {
		return nil, nil
	}
	if err := validateDatetime(o.StartDatetime); err != nil {
		return nil, err
	}
	if err := validateDatetime(o.EndDatetime); err != nil {
		return nil, err
	}
	return query.Values(o)
}

const dateLayout = "2006-01-02"

func validateDate(d string) error {
	if d == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, d); err != nil {
		return validationError("invalid date %q, expected YYYY-MM-DD", d)
	}
	return nil
}

func validateDatetime(d string) error {
	if d == "" {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, d); err != nil {
		return validationError("invalid datetime %q, expected ISO 8601", d)
	}
	return nil
}

// envelope is the wire wrapper every Oura list endpoint returns. A null
// next_token marks the terminal page.
type envelope[T any] struct {
	Data      []T     `json:"data"`
	NextToken *string `json:"next_token"`
}

// listAll walks a cursor-paginated endpoint and flattens every page into a
// single slice, in page order. A non-null server cursor is echoed back
// verbatim as the only query parameter of the follow-up request; the vendor
// treats the cursor as self-sufficient, so the original filters are
// dropped. A failed page fetch abandons the walk and discards whatever was
// accumulated.
//
// The loop is bounded only by the server-supplied cursor. A buggy server
// returning a token forever would spin the walk; bound ctx with a deadline
// when the cursor is not trusted.
func listAll[T any](ctx context.Context, c *Client, path string, params url.Values) ([]T, error) {
	var all []T
	for {
		var page envelope[T]
		if err := c.do(ctx, http.MethodGet, path, params, nil, &page); err != nil {
			return nil, err
		}

		all = append(all, page.Data...)

		if page.NextToken == nil {
			return all, nil
		}
		params = url.Values{"next_token": {*page.NextToken}}
	}
}
