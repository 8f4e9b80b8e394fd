package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/arim/yt-utility-go/internal/config"
	"github.com/arim/yt-utility-go/internal/constants"
	"github.com/arim/yt-utility-go/internal/domain"
	"github.com/arim/yt-utility-go/internal/service/insight"
	"github.com/arim/yt-utility-go/internal/service/resolver"
	"github.com/arim/yt-utility-go/internal/service/scrape"
	"github.com/arim/yt-utility-go/internal/service/youtube"
	"github.com/arim/yt-utility-go/internal/util"
	"github.com/arim/yt-utility-go/pkg/apperr"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Description lengths per view, carried over from the previous front-end.
const (
	channelDescriptionLimit = 500
	videoDescriptionLimit   = 280
)

// MetadataProvider is the slice of the metadata fetcher the handlers call.
type MetadataProvider interface {
	VideoByID(ctx context.Context, id string, parts ...string) (*domain.VideoRecord, error)
	ChannelByID(ctx context.Context, id string, parts ...string) (*domain.ChannelRecord, error)
	RecentVideos(ctx context.Context, channelID string, maxResults int64) ([]*domain.VideoSummary, error)
	SearchVideosWithStats(ctx context.Context, query string, maxResults int64) ([]*domain.VideoSummary, error)
}

// ChannelResolver turns classified channel inputs into canonical ids.
type ChannelResolver interface {
	ResolveChannel(ctx context.Context, in domain.ClassifiedInput) (string, error)
}

// Analyzer produces the all-in-one channel report.
type Analyzer interface {
	Analyze(ctx context.Context, channelID string) (*insight.ChannelAnalysis, error)
}

// ShadowbanChecker runs the search-visibility probe.
type ShadowbanChecker interface {
	Check(ctx context.Context, channelID string) (*insight.ShadowbanReport, error)
}

// SignalSource probes public pages for monetization markers.
type SignalSource interface {
	WatchPage(ctx context.Context, videoID string) scrape.WatchSignals
	ChannelJoin(ctx context.Context, channelID string) domain.Signal
}

// Handlers holds one fiber handler per tool. Every tool takes a form POST and
// answers with an HTML fragment the front-end injects as-is.
type Handlers struct {
	provider  MetadataProvider
	resolver  ChannelResolver
	analyzer  Analyzer
	prober    ShadowbanChecker
	signals   SignalSource
	templates *template.Template
	debug     bool
	logger    *zap.Logger
}

func NewHandlers(
	provider MetadataProvider,
	channelResolver ChannelResolver,
	analyzer Analyzer,
	prober ShadowbanChecker,
	signals SignalSource,
	cfg config.ServerConfig,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		provider:  provider,
		resolver:  channelResolver,
		analyzer:  analyzer,
		prober:    prober,
		signals:   signals,
		templates: parseTemplates(),
		debug:     cfg.DebugMode,
		logger:    logger,
	}
}

type errorView struct {
	Title   string
	Message string
}

func (h *Handlers) render(c *fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("Template execution failed", zap.String("template", name), zap.Error(err))
		return fiber.ErrInternalServerError
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// renderError maps an error onto the fragment vocabulary the front-end knows.
// Input problems surface their own message; upstream and internal failures
// show detail only in debug mode.
func (h *Handlers) renderError(c *fiber.Ctx, err error) error {
	view := errorView{
		Title:   "Error",
		Message: "An error occurred while processing your request.",
	}
	status := fiber.StatusInternalServerError

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		status = appErr.StatusCode
		switch appErr.Code {
		case apperr.CodeInputRequired:
			view.Title = "Input Required"
			view.Message = "Please provide the " + requiredField(appErr) + "."
		case apperr.CodeInputInvalid:
			view.Title = "Invalid Input"
			view.Message = appErr.Message
		case apperr.CodeNotFound:
			view.Title = "Not Found"
			view.Message = appErr.Message + ". Please check your input and try again."
		default:
			if h.debug {
				view.Message = appErr.Error()
			}
		}
	} else if h.debug {
		view.Message = err.Error()
	}

	if status >= fiber.StatusInternalServerError {
		h.logger.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
	} else {
		h.logger.Debug("Request rejected", zap.String("path", c.Path()), zap.Error(err))
	}

	return h.render(c, status, "error", view)
}

func requiredField(appErr *apperr.Error) string {
	if field, ok := appErr.Context["field"].(string); ok && field != "" {
		return field
	}
	return "input"
}

// resolveChannelInput accepts anything that names a channel, including a
// video URL, which resolves through the video's owning channel.
func (h *Handlers) resolveChannelInput(ctx context.Context, raw string) (string, error) {
	in, err := resolver.Classify(raw)
	if err != nil {
		return "", err
	}

	if in.Kind == domain.InputVideo {
		video, err := h.provider.VideoByID(ctx, in.ID, "snippet")
		if err != nil {
			return "", err
		}
		return video.ChannelID, nil
	}

	return h.resolver.ResolveChannel(ctx, in)
}

type channelInfoView struct {
	Channel     *domain.ChannelRecord
	URL         string
	Description string
}

// FindChannel resolves any channel reference to its canonical id and shows
// the core channel facts.
func (h *Handlers) FindChannel(c *fiber.Ctx) error {
	channelID, err := h.resolveChannelInput(c.Context(), c.FormValue("input"))
	if err != nil {
		return h.renderError(c, err)
	}

	channel, err := h.provider.ChannelByID(c.Context(), channelID)
	if err != nil {
		return h.renderError(c, err)
	}

	return h.render(c, fiber.StatusOK, "channel_info", channelInfoView{
		Channel:     channel,
		URL:         domain.ChannelURL(channel.ID),
		Description: util.TruncateString(channel.Description, channelDescriptionLimit),
	})
}

type channelStatsView struct {
	Channel *domain.ChannelRecord
}

// ChannelStats shows the three headline counters for a channel.
func (h *Handlers) ChannelStats(c *fiber.Ctx) error {
	channelID, err := h.resolveChannelInput(c.Context(), c.FormValue("channel_input"))
	if err != nil {
		return h.renderError(c, err)
	}

	channel, err := h.provider.ChannelByID(c.Context(), channelID)
	if err != nil {
		return h.renderError(c, err)
	}

	return h.render(c, fiber.StatusOK, "channel_stats", channelStatsView{Channel: channel})
}

type channelAnalysisView struct {
	Channel      *domain.ChannelRecord
	AvatarURL    string
	BannerURL    string
	RecentVideos []*domain.VideoSummary
	Monetization insight.MonetizationReport
	Earnings     insight.EarningsEstimate
	StatusLabel  string
	StatusClass  string
}

func verdictPresentation(v insight.Verdict) (label, class string) {
	switch v {
	case insight.VerdictLikely:
		return "Likely Monetized", "status-safe"
	case insight.VerdictPossible:
		return "Possibly Monetized", "status-warning"
	default:
		return "Monetization Not Detected", "status-danger"
	}
}

// AnalyzeChannel renders the all-in-one channel report.
func (h *Handlers) AnalyzeChannel(c *fiber.Ctx) error {
	channelID, err := h.resolveChannelInput(c.Context(), c.FormValue("channel_input"))
	if err != nil {
		return h.renderError(c, err)
	}

	analysis, err := h.analyzer.Analyze(c.Context(), channelID)
	if err != nil {
		return h.renderError(c, err)
	}

	label, class := verdictPresentation(analysis.Monetization.Verdict)

	view := channelAnalysisView{
		Channel:      analysis.Channel,
		AvatarURL:    domain.UpscaleAvatarURL(analysis.Channel.AvatarURL),
		RecentVideos: analysis.RecentVideos,
		Monetization: analysis.Monetization,
		Earnings:     analysis.Earnings,
		StatusLabel:  label,
		StatusClass:  class,
	}
	if analysis.Channel.BannerURL != "" {
		view.BannerURL = domain.FullBannerURL(analysis.Channel.BannerURL)
	}

	return h.render(c, fiber.StatusOK, "channel_analysis", view)
}

type channelImagesView struct {
	Channel   *domain.ChannelRecord
	AvatarURL string
	BannerURL string
}

// ChannelImages shows the profile picture and banner in download quality.
func (h *Handlers) ChannelImages(c *fiber.Ctx) error {
	channelID, err := h.resolveChannelInput(c.Context(), c.FormValue("channel_input"))
	if err != nil {
		return h.renderError(c, err)
	}

	channel, err := h.provider.ChannelByID(c.Context(), channelID, youtube.FullChannelParts...)
	if err != nil {
		return h.renderError(c, err)
	}

	view := channelImagesView{
		Channel:   channel,
		AvatarURL: domain.UpscaleAvatarURL(channel.AvatarURL),
	}
	if channel.BannerURL != "" {
		view.BannerURL = domain.FullBannerURL(channel.BannerURL)
	}

	return h.render(c, fiber.StatusOK, "channel_images", view)
}

type videoStatsView struct {
	Video       *domain.VideoRecord
	Duration    string
	Description string
}

// VideoStats shows the counters, duration and description of one video.
func (h *Handlers) VideoStats(c *fiber.Ctx) error {
	videoID, err := resolver.ClassifyVideo(c.FormValue("video_input"))
	if err != nil {
		return h.renderError(c, err)
	}

	video, err := h.provider.VideoByID(c.Context(), videoID)
	if err != nil {
		return h.renderError(c, err)
	}

	return h.render(c, fiber.StatusOK, "video_stats", videoStatsView{
		Video:       video,
		Duration:    video.Duration.Compact(),
		Description: util.TruncateString(video.Description, videoDescriptionLimit),
	})
}

type tagsView struct {
	Video *domain.VideoRecord
}

// ExtractTags lists a video's tags. This tool takes a bare id or URL only.
func (h *Handlers) ExtractTags(c *fiber.Ctx) error {
	videoID, err := resolver.ClassifyVideo(c.FormValue("video_id"))
	if err != nil {
		return h.renderError(c, err)
	}

	video, err := h.provider.VideoByID(c.Context(), videoID, "snippet")
	if err != nil {
		return h.renderError(c, err)
	}

	return h.render(c, fiber.StatusOK, "tags", tagsView{Video: video})
}

type thumbnailItemView struct {
	Name string
	Size string
	URL  string
}

type thumbnailsView struct {
	Video      *domain.VideoRecord
	Thumbnails []thumbnailItemView
}

// Thumbnails shows the static thumbnail grid for one video. The image URLs
// are deterministic, so only the title lookup touches the API.
func (h *Handlers) Thumbnails(c *fiber.Ctx) error {
	videoID, err := resolver.ClassifyVideo(c.FormValue("video_id"))
	if err != nil {
		return h.renderError(c, err)
	}

	video, err := h.provider.VideoByID(c.Context(), videoID, "snippet")
	if err != nil {
		return h.renderError(c, err)
	}

	items := make([]thumbnailItemView, 0, len(domain.ThumbnailQualities))
	for _, q := range domain.ThumbnailQualities {
		items = append(items, thumbnailItemView{
			Name: q.Name,
			Size: q.Size,
			URL:  domain.VideoThumbnailURL(videoID, q.Name),
		})
	}

	return h.render(c, fiber.StatusOK, "thumbnails", thumbnailsView{
		Video:      video,
		Thumbnails: items,
	})
}

type searchView struct {
	Keyword string
	Results []*domain.VideoSummary
}

// Search runs a keyword video search with view counts joined in.
func (h *Handlers) Search(c *fiber.Ctx) error {
	keyword := strings.TrimSpace(c.FormValue("keyword"))
	if keyword == "" {
		return h.renderError(c, apperr.NewInputRequired("search keyword"))
	}
	if utf8.RuneCountInString(keyword) < constants.SearchConfig.MinKeywordLength {
		return h.renderError(c, apperr.NewInputInvalid(
			fmt.Sprintf("search keyword must be at least %d characters", constants.SearchConfig.MinKeywordLength),
			"keyword", keyword))
	}

	results, err := h.provider.SearchVideosWithStats(c.Context(), keyword, constants.SearchConfig.KeywordMaxResults)
	if err != nil {
		return h.renderError(c, err)
	}

	if len(results) == 0 {
		return h.render(c, fiber.StatusOK, "no_results", searchView{Keyword: keyword})
	}

	return h.render(c, fiber.StatusOK, "search_results", searchView{
		Keyword: keyword,
		Results: results,
	})
}

type earningsView struct {
	Title     string
	Kind      string
	ViewCount uint64
	Earnings  insight.EarningsEstimate
}

// Earnings estimates the RPM-based ad revenue range for a video or a whole
// channel. Video references win when the input is ambiguous.
func (h *Handlers) Earnings(c *fiber.Ctx) error {
	in, err := resolver.Classify(c.FormValue("input"))
	if err != nil {
		return h.renderError(c, err)
	}

	view := earningsView{}

	if in.Kind == domain.InputVideo {
		video, err := h.provider.VideoByID(c.Context(), in.ID, "snippet", "statistics")
		if err != nil {
			return h.renderError(c, err)
		}
		view.Title = video.Title
		view.Kind = "Video"
		view.ViewCount = video.ViewCount.Or(0)
	} else {
		channelID, err := h.resolver.ResolveChannel(c.Context(), in)
		if err != nil {
			return h.renderError(c, err)
		}
		channel, err := h.provider.ChannelByID(c.Context(), channelID)
		if err != nil {
			return h.renderError(c, err)
		}
		view.Title = channel.Title
		view.Kind = "Channel"
		view.ViewCount = channel.ViewCount.Or(0)
	}

	view.Earnings = insight.EstimateEarnings(view.ViewCount)
	return h.render(c, fiber.StatusOK, "earnings", view)
}

type monetizationView struct {
	Title       string
	StatusLabel string
	StatusClass string
	Explanation string
}

// Monetization probes the watch page of a video, or of a channel's latest
// upload, for the public monetization markers.
func (h *Handlers) Monetization(c *fiber.Ctx) error {
	in, err := resolver.Classify(c.FormValue("input"))
	if err != nil {
		return h.renderError(c, err)
	}

	videoID := in.ID
	title := "Video"

	if in.Kind != domain.InputVideo {
		channelID, err := h.resolver.ResolveChannel(c.Context(), in)
		if err != nil {
			return h.renderError(c, err)
		}

		recent, err := h.provider.RecentVideos(c.Context(), channelID, 1)
		if err != nil {
			return h.renderError(c, err)
		}
		if len(recent) == 0 {
			return h.renderError(c, apperr.NewNotFound("video", channelID))
		}

		videoID = recent[0].VideoID
		title = recent[0].ChannelTitle + "'s latest video"
	}

	signals := h.signals.WatchPage(c.Context(), videoID)
	if !signals.AdMarker.Checked() && !signals.Monetizable.Checked() {
		return h.render(c, fiber.StatusBadGateway, "error", errorView{
			Title:   "Error",
			Message: "Could not fetch the video page. The video may be private or deleted.",
		})
	}

	view := monetizationView{Title: title}
	if signals.AdMarker.Found() || signals.Monetizable.Found() {
		view.StatusLabel = "Monetization Enabled"
		view.StatusClass = "status-safe"
		view.Explanation = "This video appears to be monetized. Ads are likely to be shown."
	} else {
		view.StatusLabel = "Monetization Not Detected"
		view.StatusClass = "status-danger"
		view.Explanation = "This video does not seem to be monetized. This could be because the channel " +
			"is not in the YouTube Partner Program or has disabled ads on this video."
	}

	return h.render(c, fiber.StatusOK, "monetization", view)
}

type shadowbanView struct {
	Report      *insight.ShadowbanReport
	StatusLabel string
	StatusClass string
	Explanation string
}

// Shadowban reports whether the channel surfaces in a search for its own
// exact name.
func (h *Handlers) Shadowban(c *fiber.Ctx) error {
	channelID, err := h.resolveChannelInput(c.Context(), c.FormValue("channel_input"))
	if err != nil {
		return h.renderError(c, err)
	}

	report, err := h.prober.Check(c.Context(), channelID)
	if err != nil {
		return h.renderError(c, err)
	}

	view := shadowbanView{Report: report}
	if report.FoundInSearch {
		view.StatusLabel = "No Shadowban Detected"
		view.StatusClass = "status-safe"
		view.Explanation = "This channel appears in search results for its own name. It is likely not shadowbanned."
	} else {
		view.StatusLabel = "Possible Shadowban"
		view.StatusClass = "status-danger"
		view.Explanation = fmt.Sprintf(
			"This channel did not appear in the top %d search results for its exact name. "+
				"This may indicate limited search visibility.", report.Inspected)
	}

	return h.render(c, fiber.StatusOK, "shadowban", view)
}

type engagementView struct {
	LikesPer1000Views    string
	CommentsPer1000Views string
	LikeToCommentRatio   string
}

type dataVideoView struct {
	Video            *domain.VideoRecord
	ChannelThumbnail string
	SubscriberCount  string
	ThumbnailURL     string
	Duration         string
	Earnings         insight.EarningsEstimate
	Engagement       engagementView
}

type dataChannelView struct {
	Channel     *domain.ChannelRecord
	Country     string
	Description string
	URL         string
}

// DataViewer renders the combined dashboard for a pasted URL: the full video
// panel for video URLs, the channel data panel for everything else.
func (h *Handlers) DataViewer(c *fiber.Ctx) error {
	in, err := resolver.Classify(c.FormValue("url"))
	if err != nil {
		return h.renderError(c, err)
	}

	if in.Kind == domain.InputVideo {
		return h.dataViewerVideo(c, in.ID)
	}
	return h.dataViewerChannel(c, in)
}

func (h *Handlers) dataViewerVideo(c *fiber.Ctx, videoID string) error {
	video, err := h.provider.VideoByID(c.Context(), videoID)
	if err != nil {
		return h.renderError(c, err)
	}

	channel, err := h.provider.ChannelByID(c.Context(), video.ChannelID)
	if err != nil {
		return h.renderError(c, err)
	}

	views := video.ViewCount.Or(0)
	engagement := insight.EngagementFor(views, video.LikeCount.Or(0), video.CommentCount.Or(0))

	subscribers := "N/A (Hidden)"
	if channel.SubscriberCount.Known {
		subscribers = util.FormatCount(channel.SubscriberCount.Value)
	}

	return h.render(c, fiber.StatusOK, "data_video", dataVideoView{
		Video:            video,
		ChannelThumbnail: channel.AvatarURL,
		SubscriberCount:  subscribers,
		ThumbnailURL:     bestVideoThumbnail(video),
		Duration:         video.Duration.Fixed(),
		Earnings:         insight.EstimateEarnings(views),
		Engagement: engagementView{
			LikesPer1000Views:    fmt.Sprintf("%.2f", engagement.LikesPer1000Views),
			CommentsPer1000Views: fmt.Sprintf("%.2f", engagement.CommentsPer1000Views),
			LikeToCommentRatio:   fmt.Sprintf("%.2f", engagement.LikeToCommentRatio),
		},
	})
}

func (h *Handlers) dataViewerChannel(c *fiber.Ctx, in domain.ClassifiedInput) error {
	channelID, err := h.resolver.ResolveChannel(c.Context(), in)
	if err != nil {
		return h.renderError(c, err)
	}

	channel, err := h.provider.ChannelByID(c.Context(), channelID, youtube.FullChannelParts...)
	if err != nil {
		return h.renderError(c, err)
	}

	country := channel.Country
	if country == "" {
		country = "Not specified"
	}

	return h.render(c, fiber.StatusOK, "data_channel", dataChannelView{
		Channel:     channel,
		Country:     country,
		Description: util.TruncateString(channel.Description, channelDescriptionLimit),
		URL:         domain.ChannelURL(channel.ID),
	})
}

// bestVideoThumbnail picks the largest thumbnail the snippet carried.
func bestVideoThumbnail(video *domain.VideoRecord) string {
	for _, name := range []string{"maxres", "standard", "high", "medium", "default"} {
		if url, ok := video.Thumbnails[name]; ok {
			return url
		}
	}
	return ""
}
