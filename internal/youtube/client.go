package youtube

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"creator-toolkit/internal/config"
)

// VideoDetail is a raw platform record with statistics and content details
// merged in, before any scoring or filtering.
type VideoDetail struct {
	ID            string
	Title         string
	ChannelID     string
	ChannelTitle  string
	Description   string
	PublishedAt   time.Time
	Views         int64
	Likes         int64
	Comments      int64
	Duration      string // ISO-8601, e.g. "PT1M30S"
	AudioLanguage string // declared default audio language, may be empty
	ThumbnailURL  string
}

// ChannelInfo is the subset of channel metadata the researcher needs.
type ChannelInfo struct {
	Subscribers int64
	Description string
	AvatarURL   string
}

type Client struct {
	service *youtube.Service
}

// NewClient builds a YouTube Data API client using API-key access.
func NewClient(ctx context.Context, cfg *config.YouTubeConfig) (*Client, error) {
	service, err := youtube.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{service: service}, nil
}

// SearchVideoIDs pages through search results for query until maxResults IDs
// are collected or the platform runs out of pages.
func (c *Client) SearchVideoIDs(ctx context.Context, query string, publishedAfter time.Time, maxResults int64) ([]string, error) {
	var ids []string
	pageToken := ""

	for int64(len(ids)) < maxResults {
		pageSize := maxResults - int64(len(ids))
		if pageSize > 50 {
			pageSize = 50
		}

		call := c.service.Search.List([]string{"id", "snippet"}).
			Q(query).
			Type("video").
			MaxResults(pageSize).
			PublishedAfter(publishedAfter.UTC().Format(time.RFC3339)).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("search failed for %q: %w", query, err)
		}

		for _, item := range resp.Items {
			if item.Id != nil && item.Id.VideoId != "" {
				ids = append(ids, item.Id.VideoId)
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return ids, nil
}

// ListVideos fetches snippet, statistics and content details for the given
// IDs in batches of 50 (the API's per-call cap).
func (c *Client) ListVideos(ctx context.Context, ids []string) ([]VideoDetail, error) {
	var details []VideoDetail

	for i := 0; i < len(ids); i += 50 {
		end := i + 50
		if end > len(ids) {
			end = len(ids)
		}

		resp, err := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
			Id(strings.Join(ids[i:end], ",")).
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("video details failed: %w", err)
		}

		for _, item := range resp.Items {
			d := VideoDetail{ID: item.Id}
			if item.Snippet != nil {
				d.Title = item.Snippet.Title
				d.ChannelID = item.Snippet.ChannelId
				d.ChannelTitle = item.Snippet.ChannelTitle
				d.Description = item.Snippet.Description
				d.AudioLanguage = item.Snippet.DefaultAudioLanguage
				if ts, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
					d.PublishedAt = ts
				}
				if item.Snippet.Thumbnails != nil {
					if item.Snippet.Thumbnails.Medium != nil {
						d.ThumbnailURL = item.Snippet.Thumbnails.Medium.Url
					} else if item.Snippet.Thumbnails.Default != nil {
						d.ThumbnailURL = item.Snippet.Thumbnails.Default.Url
					}
				}
			}
			if item.Statistics != nil {
				d.Views = int64(item.Statistics.ViewCount)
				d.Likes = int64(item.Statistics.LikeCount)
				d.Comments = int64(item.Statistics.CommentCount)
			}
			if item.ContentDetails != nil {
				d.Duration = item.ContentDetails.Duration
			}
			details = append(details, d)
		}
	}

	return details, nil
}

// GetChannelInfo returns subscriber count, description and avatar URL for one
// channel.
func (c *Client) GetChannelInfo(ctx context.Context, channelID string) (ChannelInfo, error) {
	resp, err := c.service.Channels.List([]string{"snippet", "statistics"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return ChannelInfo{}, fmt.Errorf("channel info failed for %s: %w", channelID, err)
	}
	if len(resp.Items) == 0 {
		return ChannelInfo{}, fmt.Errorf("channel %s not found", channelID)
	}

	ch := resp.Items[0]
	info := ChannelInfo{}
	if ch.Statistics != nil {
		info.Subscribers = int64(ch.Statistics.SubscriberCount)
	}
	if ch.Snippet != nil {
		info.Description = ch.Snippet.Description
		if ch.Snippet.Thumbnails != nil && ch.Snippet.Thumbnails.Default != nil {
			info.AvatarURL = ch.Snippet.Thumbnails.Default.Url
		}
	}
	return info, nil
}

var durationRe = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// ParseDurationMinutes converts an ISO-8601 duration to minutes. It returns
// nil for anything it cannot parse; callers must treat nil as "unknown", not
// zero.
func ParseDurationMinutes(iso string) *float64 {
	matches := durationRe.FindStringSubmatch(iso)
	if matches == nil {
		return nil
	}

	var seconds float64
	any := false
	for i, mult := range []float64{86400, 3600, 60, 1} {
		if matches[i+1] == "" {
			continue
		}
		v, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return nil
		}
		seconds += float64(v) * mult
		any = true
	}
	if !any {
		return nil
	}

	minutes := seconds / 60
	return &minutes
}
