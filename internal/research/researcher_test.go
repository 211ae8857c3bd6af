package research

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"creator-toolkit/internal/logger"
	"creator-toolkit/internal/models"
	"creator-toolkit/internal/youtube"
)

type fakeVideoAPI struct {
	details        []youtube.VideoDetail
	channels       map[string]youtube.ChannelInfo
	channelLookups int
}

func (f *fakeVideoAPI) SearchVideoIDs(ctx context.Context, query string, publishedAfter time.Time, maxResults int64) ([]string, error) {
	ids := make([]string, len(f.details))
	for i, d := range f.details {
		ids[i] = d.ID
	}
	return ids, nil
}

func (f *fakeVideoAPI) ListVideos(ctx context.Context, ids []string) ([]youtube.VideoDetail, error) {
	return f.details, nil
}

func (f *fakeVideoAPI) GetChannelInfo(ctx context.Context, channelID string) (youtube.ChannelInfo, error) {
	f.channelLookups++
	return f.channels[channelID], nil
}

func baseCriteria() models.SearchCriteria {
	return models.SearchCriteria{
		Niches:      "fish tank",
		MonthsBack:  6,
		MaxResults:  50,
		Subscribers: models.IntRange{Min: 0, Max: 10000000},
		Views:       models.IntRange{Min: 0, Max: 10000000},
		Shorts:      models.ShortsAll,
		SortBy:      models.SortViralScore,
		SortOrder:   models.SortDescending,
		Language:    "en",
		MatchMode:   models.MatchAny,
	}
}

func TestSearchAnnotatesAndRanks(t *testing.T) {
	api := &fakeVideoAPI{
		details: []youtube.VideoDetail{
			{ID: "v1", Title: "Fish tank tutorial", Description: "how to set up a fish tank", ChannelID: "c1", Views: 1000, Duration: "PT10M"},
			{ID: "v2", Title: "Aquarium tour", Description: "a funny tour", ChannelID: "c1", Views: 5000, Duration: "PT3M"},
		},
		channels: map[string]youtube.ChannelInfo{
			"c1": {Subscribers: 400, Description: "aquarium channel"},
		},
	}

	r := New(api, logger.New("test"))
	result, err := r.Search(context.Background(), baseCriteria())
	require.NoError(t, err)
	require.Len(t, result.Records, 2)

	// Higher viral score first.
	require.Equal(t, "v2", result.Records[0].ID)
	require.Equal(t, "v1", result.Records[1].ID)

	first := result.Records[0]
	require.True(t, first.Viral, "5000 views on 400 subscribers is viral")
	require.Equal(t, "green", first.BadgeColor)
	require.Equal(t, "funny", first.Style)
	require.Equal(t, "https://www.youtube.com/watch?v=v2", first.URL)

	second := result.Records[1]
	require.Equal(t, "educational", second.Style)
	require.NotNil(t, second.DurationMinutes)
	require.Equal(t, 10.0, *second.DurationMinutes)

	// Both videos share a channel; one lookup serves both.
	require.Equal(t, 1, api.channelLookups)
}

func TestSearchStrictMatchMode(t *testing.T) {
	api := &fakeVideoAPI{
		details: []youtube.VideoDetail{
			{ID: "both", Title: "fish tank tour", Description: "", ChannelID: "c1", Views: 100},
			{ID: "partial", Title: "fish feeding", Description: "", ChannelID: "c1", Views: 100},
		},
		channels: map[string]youtube.ChannelInfo{"c1": {Subscribers: 50}},
	}

	criteria := baseCriteria()
	criteria.Niches = "fish|tank"
	criteria.MatchMode = models.MatchAll

	r := New(api, logger.New("test"))
	result, err := r.Search(context.Background(), criteria)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	require.Equal(t, "both", result.Records[0].ID)
	require.Equal(t, []string{"fish", "tank"}, result.Records[0].MatchedKeywords)
}

func TestSearchFallsBackToTopicWhenNothingMatched(t *testing.T) {
	api := &fakeVideoAPI{
		details: []youtube.VideoDetail{
			{ID: "v1", Title: "unrelated title", Description: "unrelated", ChannelID: "c1", Views: 100},
		},
		channels: map[string]youtube.ChannelInfo{"c1": {Subscribers: 50}},
	}

	r := New(api, logger.New("test"))
	result, err := r.Search(context.Background(), baseCriteria())
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	require.Equal(t, []string{"fish tank"}, result.Records[0].MatchedKeywords)
}

func TestSearchAppliesRangeFilters(t *testing.T) {
	api := &fakeVideoAPI{
		details: []youtube.VideoDetail{
			{ID: "keep", Title: "fish tank", ChannelID: "c1", Views: 500, Duration: "PT5M"},
			{ID: "too-popular", Title: "fish tank", ChannelID: "c2", Views: 500, Duration: "PT5M"},
			{ID: "too-long", Title: "fish tank", ChannelID: "c1", Views: 500, Duration: "PT1H"},
			{ID: "unknown-duration", Title: "fish tank", ChannelID: "c1", Views: 500},
		},
		channels: map[string]youtube.ChannelInfo{
			"c1": {Subscribers: 1000},
			"c2": {Subscribers: 2000000},
		},
	}

	criteria := baseCriteria()
	criteria.Subscribers = models.IntRange{Min: 0, Max: 10000}
	criteria.Duration = &models.FloatRange{Min: 1, Max: 30}

	r := New(api, logger.New("test"))
	result, err := r.Search(context.Background(), criteria)
	require.NoError(t, err)

	got := make([]string, len(result.Records))
	for i, rec := range result.Records {
		got[i] = rec.ID
	}
	// Unknown duration is not excluded by a duration range.
	require.ElementsMatch(t, []string{"keep", "unknown-duration"}, got)
}

func TestSearchLanguageAndShortsFilters(t *testing.T) {
	api := &fakeVideoAPI{
		details: []youtube.VideoDetail{
			{ID: "short", Title: "fish tank", ChannelID: "c1", Views: 100, Duration: "PT45S"},
			{ID: "long", Title: "fish tank", ChannelID: "c1", Views: 100, Duration: "PT10M"},
			{ID: "spanish", Title: "fish tank", ChannelID: "c1", Views: 100, Duration: "PT50S", AudioLanguage: "es-MX"},
		},
		channels: map[string]youtube.ChannelInfo{"c1": {Subscribers: 50}},
	}

	criteria := baseCriteria()
	criteria.Shorts = models.ShortsOnly

	r := New(api, logger.New("test"))
	result, err := r.Search(context.Background(), criteria)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	require.Equal(t, "short", result.Records[0].ID)
}

func TestSearchRequiresTopic(t *testing.T) {
	r := New(&fakeVideoAPI{}, logger.New("test"))
	criteria := baseCriteria()
	criteria.Niches = "   "
	_, err := r.Search(context.Background(), criteria)
	require.Error(t, err)
}

func TestSplitKeywords(t *testing.T) {
	got := splitKeywords("Fish | TANK Setup||aquarium")
	require.Equal(t, []string{"fish", "tank setup", "aquarium"}, got)
}
