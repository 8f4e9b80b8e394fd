// Package scrape probes public YouTube pages for markers the Data API does
// not expose. Every probe is best-effort against uncontrolled markup and
// reports a tri-state signal so callers can tell "checked, not there" from
// "could not check".
package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/arim/yt-utility-go/internal/constants"
	"github.com/arim/yt-utility-go/internal/domain"
	"github.com/arim/yt-utility-go/internal/service/cache"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://www.youtube.com"

var (
	playerResponsePattern = regexp.MustCompile(`(?s)var ytInitialPlayerResponse = (\{.*?\});`)
	adMarker              = `"yt_ad"`
	joinMarker            = `"text":"Join"`
)

// WatchSignals are the markers probed on a video watch page.
type WatchSignals struct {
	Monetizable domain.Signal `json:"monetizable"`
	AdMarker    domain.Signal `json:"ad_marker"`
}

// Scraper fetches watch and channel pages over plain HTTP. It holds no state
// beyond the client and cache; signals are cached briefly since the pages are
// heavy.
type Scraper struct {
	httpClient *http.Client
	cache      *cache.Service
	logger     *zap.Logger
	baseURL    string
}

func New(cacheSvc *cache.Service, logger *zap.Logger) *Scraper {
	return &Scraper{
		httpClient: &http.Client{Timeout: constants.ScrapeConfig.Timeout},
		cache:      cacheSvc,
		logger:     logger,
		baseURL:    defaultBaseURL,
	}
}

// WithBaseURL points the scraper at a different origin. Tests use this.
func (s *Scraper) WithBaseURL(baseURL string) *Scraper {
	s.baseURL = strings.TrimSuffix(baseURL, "/")
	return s
}

// playerResponse is the minimal slice of ytInitialPlayerResponse we read.
type playerResponse struct {
	PlayabilityStatus struct {
		IsMonetizable bool `json:"isMonetizable"`
	} `json:"playabilityStatus"`
}

// WatchPage probes a video watch page for the player-config monetizable flag
// and the ad marker string. A fetch failure yields unknown signals, never an
// error: scrape outcomes only ever weaken or strengthen a heuristic.
func (s *Scraper) WatchPage(ctx context.Context, videoID string) WatchSignals {
	cacheKey := fmt.Sprintf("scrape:watch:%s", videoID)
	var cached WatchSignals
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached
	}

	body, err := s.fetch(ctx, s.baseURL+"/watch?v="+videoID)
	if err != nil {
		s.logger.Debug("Watch page fetch failed", zap.String("video", videoID), zap.Error(err))
		return WatchSignals{Monetizable: domain.SignalUnknown, AdMarker: domain.SignalUnknown}
	}

	signals := WatchSignals{
		Monetizable: monetizableSignal(body),
		AdMarker:    markerSignal(body, adMarker),
	}

	s.cache.Set(ctx, cacheKey, signals, constants.CacheTTL.ScrapeSignal)
	return signals
}

// ChannelJoin probes a channel page for the membership "Join" affordance.
func (s *Scraper) ChannelJoin(ctx context.Context, channelID string) domain.Signal {
	cacheKey := fmt.Sprintf("scrape:join:%s", channelID)
	var cached domain.Signal
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached
	}

	body, err := s.fetch(ctx, s.baseURL+"/channel/"+channelID)
	if err != nil {
		s.logger.Debug("Channel page fetch failed", zap.String("channel", channelID), zap.Error(err))
		return domain.SignalUnknown
	}

	signal := joinSignal(body)
	s.cache.Set(ctx, cacheKey, signal, constants.CacheTTL.ScrapeSignal)
	return signal
}

func (s *Scraper) fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", constants.ScrapeConfig.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.ScrapeConfig.MaxBodySize))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// monetizableSignal extracts the embedded player-configuration blob and reads
// its monetizable flag. A page without the blob (markup change, consent wall)
// is unknown, not absent.
func monetizableSignal(body string) domain.Signal {
	m := playerResponsePattern.FindStringSubmatch(body)
	if m == nil {
		return domain.SignalUnknown
	}

	var pr playerResponse
	if err := json.Unmarshal([]byte(m[1]), &pr); err != nil {
		return domain.SignalUnknown
	}

	if pr.PlayabilityStatus.IsMonetizable {
		return domain.SignalConfirmed
	}
	return domain.SignalAbsent
}

// joinSignal scans the page's script blocks, where the serialized UI model
// lives, for the membership button text. A parse failure falls back to a raw
// substring check.
func joinSignal(body string) domain.Signal {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		if strings.Contains(body, joinMarker) {
			return domain.SignalConfirmed
		}
		return domain.SignalUnknown
	}

	found := false
	doc.Find("script").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(sel.Text(), joinMarker) {
			found = true
			return false
		}
		return true
	})

	if found {
		return domain.SignalConfirmed
	}
	return domain.SignalAbsent
}

func markerSignal(body, marker string) domain.Signal {
	if strings.Contains(body, marker) {
		return domain.SignalConfirmed
	}
	return domain.SignalAbsent
}
