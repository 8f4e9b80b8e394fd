package insight

import (
	"context"
	"time"

	"github.com/arim/yt-utility-go/internal/constants"
	"github.com/arim/yt-utility-go/internal/domain"
	"github.com/arim/yt-utility-go/internal/service/scrape"
	"github.com/arim/yt-utility-go/internal/service/youtube"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// AnalyzerProvider is the slice of the metadata fetcher the analyzer needs.
type AnalyzerProvider interface {
	ChannelByID(ctx context.Context, id string, parts ...string) (*domain.ChannelRecord, error)
	RecentVideos(ctx context.Context, channelID string, maxResults int64) ([]*domain.VideoSummary, error)
}

// SignalSource is the narrow scrape interface; probes degrade to unknown
// signals instead of failing.
type SignalSource interface {
	WatchPage(ctx context.Context, videoID string) scrape.WatchSignals
	ChannelJoin(ctx context.Context, channelID string) domain.Signal
}

// ChannelAnalysis aggregates everything the all-in-one analyzer view shows.
type ChannelAnalysis struct {
	Channel      *domain.ChannelRecord  `json:"channel"`
	RecentVideos []*domain.VideoSummary `json:"recent_videos"`
	Monetization MonetizationReport     `json:"monetization"`
	Earnings     EarningsEstimate       `json:"earnings"`
}

// ChannelAnalyzer composes detail fetch, recent uploads, scrape signals and
// the heuristic scores into one report.
type ChannelAnalyzer struct {
	provider AnalyzerProvider
	signals  SignalSource
	weights  Weights
	logger   *zap.Logger
}

func NewChannelAnalyzer(provider AnalyzerProvider, signals SignalSource, weights Weights, logger *zap.Logger) *ChannelAnalyzer {
	return &ChannelAnalyzer{
		provider: provider,
		signals:  signals,
		weights:  weights,
		logger:   logger,
	}
}

// Analyze builds the full channel report. The detail fetch and the recent
// uploads search are independent upstream calls, so they run concurrently;
// both scrape probes likewise.
func (a *ChannelAnalyzer) Analyze(ctx context.Context, channelID string) (*ChannelAnalysis, error) {
	var (
		channel    *domain.ChannelRecord
		channelErr error
		recent     []*domain.VideoSummary
		recentErr  error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		channel, channelErr = a.provider.ChannelByID(ctx, channelID, youtube.FullChannelParts...)
	})
	wg.Go(func() {
		recent, recentErr = a.provider.RecentVideos(ctx, channelID, constants.SearchConfig.RecentVideos)
	})
	wg.Wait()

	if channelErr != nil {
		return nil, channelErr
	}
	if recentErr != nil {
		// Recent uploads are supporting material; the analyzer still renders
		// without them, with the watch-page signal left unknown.
		a.logger.Warn("Recent videos fetch failed during analysis",
			zap.String("channel", channelID), zap.Error(recentErr))
		recent = nil
	}

	join := domain.SignalUnknown
	watch := scrape.WatchSignals{Monetizable: domain.SignalUnknown, AdMarker: domain.SignalUnknown}

	var probes conc.WaitGroup
	probes.Go(func() {
		join = a.signals.ChannelJoin(ctx, channelID)
	})
	if len(recent) > 0 {
		latest := recent[0].VideoID
		probes.Go(func() {
			watch = a.signals.WatchPage(ctx, latest)
		})
	}
	probes.Wait()

	report := ScoreMonetization(a.weights, join, watch.Monetizable, channel, time.Now())

	return &ChannelAnalysis{
		Channel:      channel,
		RecentVideos: recent,
		Monetization: report,
		Earnings:     EstimateEarnings(channel.ViewCount.Or(0)),
	}, nil
}
