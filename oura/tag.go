package oura

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// EnhancedTag represents a tag with duration and free-text comment support.
type EnhancedTag struct {
	ID          string     `json:"id"`
	TagTypeCode string     `json:"tag_type_code"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	StartDay    string     `json:"start_day"`
	EndDay      string     `json:"end_day"`
	Comment     string     `json:"comment"`
}

// EnhancedTagService handles communication with the enhanced tag endpoints.
type EnhancedTagService struct {
	client *Client
}

// List fetches every enhanced tag in the requested date range, walking all
// pages.
func (s *EnhancedTagService) List(ctx context.Context, opts *ListOptions) ([]EnhancedTag, error) {
	params, err := opts.values()
	if err != nil {
		return nil, err
	}
	return listAll[EnhancedTag](ctx, s.client, "/usercollection/enhanced_tag", params)
}

// GetByID fetches a single enhanced tag by its document ID.
func (s *EnhancedTagService) GetByID(ctx context.Context, id string) (*EnhancedTag, error) {
	var item EnhancedTag
	if err := s.client.do(ctx, http.MethodGet, "/usercollection/enhanced_tag/"+url.PathEscape(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Tag represents a legacy tag entry.
//
// Deprecated: the vendor has deprecated the tag endpoint in favor of
// enhanced tags; see EnhancedTag.
type Tag struct {
	ID        string    `json:"id"`
	Day       string    `json:"day"`
	Text      string    `json:"text"`
	Tags      []string  `json:"tags"`
	Timestamp time.Time `json:"timestamp"`
}

// TagService handles communication with the legacy tag endpoints.
//
// Deprecated: use EnhancedTagService. The endpoint still works, but calls
// emit a one-time deprecation notice on the standard logger.
type TagService struct {
	client *Client
}

var tagDeprecationOnce sync.Once

func tagDeprecationNotice() {
	tagDeprecationOnce.Do(func() {
		log.Println("oura: the tag endpoint is deprecated, use enhanced tags instead")
	})
}

// List fetches every tag in the requested date range, walking all pages.
//
// Deprecated: use EnhancedTagService.List.
func (s *TagService) List(ctx context.Context, opts *ListOptions) ([]Tag, error) {
	tagDeprecationNotice()
	params, err := opts.values()
	if err != nil {
		return nil, err
	}
	return listAll[Tag](ctx, s.client, "/usercollection/tag", params)
}

// GetByID fetches a single tag by its document ID.
//
// Deprecated: use EnhancedTagService.GetByID.
func (s *TagService) GetByID(ctx context.Context, id string) (*Tag, error) {
	tagDeprecationNotice()
	var item Tag
	if err := s.client.do(ctx, http.MethodGet, "/usercollection/tag/"+url.PathEscape(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
