// Package research implements the topic research pipeline: search the video
// platform, enrich each hit with channel data, apply the user's filter set,
// annotate with a viral score, and rank.
package research

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"creator-toolkit/internal/models"
	"creator-toolkit/internal/sentiment"
	"creator-toolkit/internal/youtube"
)

// VideoAPI is the platform surface the researcher consumes.
type VideoAPI interface {
	SearchVideoIDs(ctx context.Context, query string, publishedAfter time.Time, maxResults int64) ([]string, error)
	ListVideos(ctx context.Context, ids []string) ([]youtube.VideoDetail, error)
	GetChannelInfo(ctx context.Context, channelID string) (youtube.ChannelInfo, error)
}

type Researcher struct {
	videos VideoAPI
	log    *slog.Logger
}

func New(videos VideoAPI, log *slog.Logger) *Researcher {
	return &Researcher{videos: videos, log: log}
}

// Search runs one full research pass for the given criteria. Each surviving
// record is fully annotated; the returned set replaces any previous one.
func (r *Researcher) Search(ctx context.Context, criteria models.SearchCriteria) (*models.ResearchResult, error) {
	topic := strings.TrimSpace(criteria.Niches)
	if topic == "" {
		return nil, fmt.Errorf("niche keywords are required")
	}
	keywords := splitKeywords(topic)

	publishedAfter := time.Now().UTC().AddDate(0, 0, -30*criteria.MonthsBack)

	ids, err := r.videos.SearchVideoIDs(ctx, topic, publishedAfter, int64(criteria.MaxResults))
	if err != nil {
		return nil, fmt.Errorf("video search: %w", err)
	}
	r.log.Debug("search complete", "topic", topic, "hits", len(ids))

	details, err := r.videos.ListVideos(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("video details: %w", err)
	}

	// One channel lookup per channel, not per video.
	channels := make(map[string]youtube.ChannelInfo)

	records := make([]models.VideoRecord, 0, len(details))
	for _, d := range details {
		if !passesLanguageFilter(d.AudioLanguage, criteria.Language) {
			continue
		}

		duration := youtube.ParseDurationMinutes(d.Duration)
		if !passesShortsFilter(criteria.Shorts, duration) {
			continue
		}

		channel, ok := channels[d.ChannelID]
		if !ok {
			channel, err = r.videos.GetChannelInfo(ctx, d.ChannelID)
			if err != nil {
				return nil, fmt.Errorf("channel lookup: %w", err)
			}
			channels[d.ChannelID] = channel
		}

		combined := strings.ToLower(d.Title + " " + d.Description + " " + channel.Description)
		if !passesMatchMode(criteria.MatchMode, keywords, combined) {
			continue
		}

		if !criteria.Subscribers.Contains(channel.Subscribers) ||
			!criteria.Views.Contains(d.Views) ||
			!criteria.Likes.Contains(d.Likes) ||
			!criteria.Comments.Contains(d.Comments) {
			continue
		}
		if duration != nil && !criteria.Duration.Contains(*duration) {
			continue
		}

		polarity := sentiment.Polarity(d.Description)
		score := ViralScore(d.Views, channel.Subscribers)

		matched := matchedKeywords(keywords, combined)
		if len(matched) == 0 {
			matched = []string{topic}
		}

		records = append(records, models.VideoRecord{
			ID:              d.ID,
			Title:           d.Title,
			Channel:         d.ChannelTitle,
			ChannelID:       d.ChannelID,
			Subscribers:     channel.Subscribers,
			Views:           d.Views,
			Likes:           d.Likes,
			Comments:        d.Comments,
			DurationMinutes: duration,
			PublishedAt:     d.PublishedAt,
			URL:             fmt.Sprintf("https://www.youtube.com/watch?v=%s", d.ID),
			Summary:         Summarize(d.Description),
			Style:           ClassifyStyle(d.Description),
			SentimentScore:  polarity,
			SentimentLabel:  sentiment.Label(polarity),
			ThumbnailURL:    d.ThumbnailURL,
			AvatarURL:       channel.AvatarURL,
			MatchedKeywords: matched,
			Viral:           IsViral(d.Views, channel.Subscribers),
			ViralScore:      score,
			BadgeColor:      BadgeColor(score),
		})
	}

	sortRecords(records, criteria.SortBy, criteria.SortOrder)
	r.log.Info("research complete", "topic", topic, "fetched", len(details), "kept", len(records))

	return &models.ResearchResult{
		Criteria: criteria,
		Records:  records,
		Ran:      time.Now(),
	}, nil
}

func splitKeywords(topic string) []string {
	var keywords []string
	for _, k := range strings.Split(topic, "|") {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
