package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/arim/yt-utility-go/internal/config"
	"github.com/arim/yt-utility-go/internal/constants"
	"github.com/arim/yt-utility-go/internal/domain"
	"github.com/arim/yt-utility-go/internal/service/cache"
	"github.com/arim/yt-utility-go/pkg/apperr"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Default field parts per fetch type. Callers needing more (brandingSettings,
// contentDetails) pass their own parts.
var (
	DefaultVideoParts   = []string{"snippet", "statistics", "contentDetails"}
	DefaultChannelParts = []string{"snippet", "statistics"}
	FullChannelParts    = []string{"snippet", "statistics", "brandingSettings"}
)

// Service is the typed metadata fetcher over the Data API v3. Every method
// issues at most one API call; batched variants comma-join ids the way the
// API expects.
type Service struct {
	yt      *youtube.Service
	cache   *cache.Service
	logger  *zap.Logger
	timeout time.Duration
	quota   *quotaTracker
}

func New(ctx context.Context, cfg config.YouTubeConfig, cacheSvc *cache.Service, logger *zap.Logger, opts ...option.ClientOption) (*Service, error) {
	if cfg.APIKey == "" {
		return nil, apperr.NewConfiguration("YouTube API key is not set")
	}

	clientOpts := append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	yt, err := youtube.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube client: %w", err)
	}

	return &Service{
		yt:      yt,
		cache:   cacheSvc,
		logger:  logger,
		timeout: cfg.RequestTimeout,
		quota:   newQuotaTracker(logger),
	}, nil
}

func (s *Service) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// mapCallError converts a googleapi client failure into the taxonomy the
// handlers understand: structured provider errors, transport failures and
// undecodable bodies are distinct conditions.
func mapCallError(operation string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		msg := gerr.Message
		if msg == "" {
			msg = fmt.Sprintf("provider returned status %d", gerr.Code)
		}
		return apperr.NewUpstreamAPI(msg, gerr.Code, map[string]any{"operation": operation})
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return apperr.NewUpstreamProtocol(operation, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) {
		return apperr.NewUpstreamUnavailable(operation, err)
	}

	return apperr.NewUpstreamUnavailable(operation, err)
}

// VideoByID fetches one video detail record with the given field parts.
func (s *Service) VideoByID(ctx context.Context, id string, parts ...string) (*domain.VideoRecord, error) {
	if len(parts) == 0 {
		parts = DefaultVideoParts
	}

	cacheKey := fmt.Sprintf("yt:video:%s:%s", id, strings.Join(parts, ","))
	var cached domain.VideoRecord
	if s.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	records, err := s.VideosByIDs(ctx, []string{id}, parts...)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperr.NewNotFound("video", id)
	}

	s.cache.Set(ctx, cacheKey, records[0], constants.CacheTTL.VideoDetail)
	return records[0], nil
}

// VideosByIDs fetches detail records for up to 50 ids in one call. Ids the
// provider does not return are silently absent from the result.
func (s *Service) VideosByIDs(ctx context.Context, ids []string, parts ...string) ([]*domain.VideoRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(parts) == 0 {
		parts = DefaultVideoParts
	}
	if err := s.quota.check(constants.QuotaConfig.ListCost); err != nil {
		return nil, apperr.NewUpstreamAPI(err.Error(), 429, nil)
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.yt.Videos.List(parts).Id(ids...).Context(callCtx).Do()
	if err != nil {
		return nil, mapCallError("videos.list", err)
	}
	s.quota.consume(constants.QuotaConfig.ListCost)

	records := make([]*domain.VideoRecord, 0, len(resp.Items))
	for _, item := range resp.Items {
		records = append(records, mapVideo(item))
	}
	return records, nil
}

// ChannelByID fetches one channel detail record with the given field parts.
func (s *Service) ChannelByID(ctx context.Context, id string, parts ...string) (*domain.ChannelRecord, error) {
	if len(parts) == 0 {
		parts = DefaultChannelParts
	}

	cacheKey := fmt.Sprintf("yt:channel:%s:%s", id, strings.Join(parts, ","))
	var cached domain.ChannelRecord
	if s.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	if err := s.quota.check(constants.QuotaConfig.ListCost); err != nil {
		return nil, apperr.NewUpstreamAPI(err.Error(), 429, nil)
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.yt.Channels.List(parts).Id(id).Context(callCtx).Do()
	if err != nil {
		return nil, mapCallError("channels.list", err)
	}
	s.quota.consume(constants.QuotaConfig.ListCost)

	if len(resp.Items) == 0 {
		return nil, apperr.NewNotFound("channel", id)
	}

	record := mapChannel(resp.Items[0])
	s.cache.Set(ctx, cacheKey, record, constants.CacheTTL.ChannelDetail)
	return record, nil
}

// ChannelsByIDs fetches detail records for several channels in one call.
func (s *Service) ChannelsByIDs(ctx context.Context, ids []string) ([]*domain.ChannelRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if err := s.quota.check(constants.QuotaConfig.ListCost); err != nil {
		return nil, apperr.NewUpstreamAPI(err.Error(), 429, nil)
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.yt.Channels.List(DefaultChannelParts).Id(ids...).Context(callCtx).Do()
	if err != nil {
		return nil, mapCallError("channels.list", err)
	}
	s.quota.consume(constants.QuotaConfig.ListCost)

	records := make([]*domain.ChannelRecord, 0, len(resp.Items))
	for _, item := range resp.Items {
		records = append(records, mapChannel(item))
	}
	return records, nil
}

// SearchChannels runs a type=channel search with the query text verbatim.
func (s *Service) SearchChannels(ctx context.Context, query string, maxResults int64) ([]*domain.ChannelCandidate, error) {
	cacheKey := fmt.Sprintf("yt:search:channel:%d:%s", maxResults, query)
	var cached []*domain.ChannelCandidate
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	if err := s.quota.check(constants.QuotaConfig.SearchCost); err != nil {
		return nil, apperr.NewUpstreamAPI(err.Error(), 429, nil)
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.yt.Search.List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(maxResults).
		Context(callCtx).Do()
	if err != nil {
		return nil, mapCallError("search.list", err)
	}
	s.quota.consume(constants.QuotaConfig.SearchCost)

	candidates := make([]*domain.ChannelCandidate, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil || item.Snippet.ChannelId == "" {
			continue
		}
		candidates = append(candidates, &domain.ChannelCandidate{
			ChannelID:   item.Snippet.ChannelId,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Thumbnail:   bestThumbnail(item.Snippet.Thumbnails),
			PublishedAt: parseTimestamp(item.Snippet.PublishedAt),
		})
	}

	s.cache.Set(ctx, cacheKey, candidates, constants.CacheTTL.ChannelSearch)
	return candidates, nil
}

// SearchVideos runs a type=video keyword search and returns summaries in API
// order.
func (s *Service) SearchVideos(ctx context.Context, query string, maxResults int64) ([]*domain.VideoSummary, error) {
	cacheKey := fmt.Sprintf("yt:search:video:%d:%s", maxResults, query)
	var cached []*domain.VideoSummary
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	summaries, err := s.searchVideoSummaries(ctx, func(call *youtube.SearchListCall) *youtube.SearchListCall {
		return call.Q(query).MaxResults(maxResults)
	})
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cacheKey, summaries, constants.CacheTTL.VideoSearch)
	return summaries, nil
}

// RecentVideos lists a channel's newest uploads.
func (s *Service) RecentVideos(ctx context.Context, channelID string, maxResults int64) ([]*domain.VideoSummary, error) {
	cacheKey := fmt.Sprintf("yt:recent:%d:%s", maxResults, channelID)
	var cached []*domain.VideoSummary
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	summaries, err := s.searchVideoSummaries(ctx, func(call *youtube.SearchListCall) *youtube.SearchListCall {
		return call.ChannelId(channelID).Order("date").MaxResults(maxResults)
	})
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cacheKey, summaries, constants.CacheTTL.VideoSearch)
	return summaries, nil
}

func (s *Service) searchVideoSummaries(ctx context.Context, configure func(*youtube.SearchListCall) *youtube.SearchListCall) ([]*domain.VideoSummary, error) {
	if err := s.quota.check(constants.QuotaConfig.SearchCost); err != nil {
		return nil, apperr.NewUpstreamAPI(err.Error(), 429, nil)
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	call := s.yt.Search.List([]string{"snippet"}).Type("video")
	resp, err := configure(call).Context(callCtx).Do()
	if err != nil {
		return nil, mapCallError("search.list", err)
	}
	s.quota.consume(constants.QuotaConfig.SearchCost)

	summaries := make([]*domain.VideoSummary, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		summaries = append(summaries, &domain.VideoSummary{
			VideoID:      item.Id.VideoId,
			Title:        item.Snippet.Title,
			ChannelID:    item.Snippet.ChannelId,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  parseTimestamp(item.Snippet.PublishedAt),
			Thumbnail:    mediumThumbnail(item.Snippet.Thumbnails),
		})
	}
	return summaries, nil
}

// SearchVideosWithStats joins a keyword search with one batched detail call
// so the listing can show view counts. Ids missing from the detail response
// keep a hidden count instead of dropping the row.
func (s *Service) SearchVideosWithStats(ctx context.Context, query string, maxResults int64) ([]*domain.VideoSummary, error) {
	summaries, err := s.SearchVideos(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return summaries, nil
	}

	ids := make([]string, 0, len(summaries))
	for _, v := range summaries {
		ids = append(ids, v.VideoID)
	}

	details, err := s.VideosByIDs(ctx, ids, "statistics")
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.VideoRecord, len(details))
	for _, d := range details {
		byID[d.ID] = d
	}

	for _, v := range summaries {
		if d, ok := byID[v.VideoID]; ok {
			v.ViewCount = d.ViewCount
		}
	}
	return summaries, nil
}
