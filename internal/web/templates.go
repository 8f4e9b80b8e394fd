package web

import (
	"html/template"
	"strings"

	"github.com/arim/yt-utility-go/internal/domain"
	"github.com/arim/yt-utility-go/internal/util"
)

// Fragment templates. Each tool renders one result-card fragment that the
// front-end injects into its results panel verbatim.
const fragmentTemplates = `
{{define "error"}}
<div class="result-card error">
  <div class="result-header">
    <h3 class="result-title">{{.Title}}</h3>
  </div>
  <div class="result-content">
    <p>{{.Message}}</p>
  </div>
</div>
{{end}}

{{define "channel_info"}}
<div class="result-card">
  <div class="result-header">
    <h3 class="result-title">Channel Information</h3>
  </div>
  <div class="result-content">
    <div class="data-grid">
      <div class="data-item"><div class="data-label">Channel Name</div><div class="data-value">{{.Channel.Title}}</div></div>
      <div class="data-item"><div class="data-label">Channel ID</div><div class="data-value">{{.Channel.ID}}</div></div>
      <div class="data-item"><div class="data-label">Subscribers</div><div class="data-value">{{count .Channel.SubscriberCount}}</div></div>
      <div class="data-item"><div class="data-label">Total Views</div><div class="data-value">{{count .Channel.ViewCount}}</div></div>
      <div class="data-item"><div class="data-label">Videos</div><div class="data-value">{{count .Channel.VideoCount}}</div></div>
      <div class="data-item"><div class="data-label">Created</div><div class="data-value">{{date .Channel.PublishedAt}}</div></div>
    </div>
    <div class="result-item">
      <div class="result-label">Channel URL</div>
      <div class="result-value"><a href="{{.URL}}" target="_blank" rel="noopener">{{.URL}}</a></div>
    </div>
    <div class="result-item">
      <div class="result-label">Description</div>
      <div class="result-value">{{nl2br .Description}}</div>
    </div>
  </div>
</div>
{{end}}

{{define "channel_stats"}}
<div class="result-card">
  <div class="result-header">
    {{if .Channel.AvatarURL}}<img src="{{.Channel.AvatarURL}}" alt="Channel Thumbnail" class="channel-thumb">{{end}}
    <h3 class="result-title">{{.Channel.Title}}</h3>
  </div>
  <div class="result-content">
    <div class="data-grid">
      <div class="data-item"><div class="data-label">Subscribers</div><div class="data-value">{{count .Channel.SubscriberCount}}</div></div>
      <div class="data-item"><div class="data-label">Total Views</div><div class="data-value">{{count .Channel.ViewCount}}</div></div>
      <div class="data-item"><div class="data-label">Total Videos</div><div class="data-value">{{count .Channel.VideoCount}}</div></div>
    </div>
  </div>
</div>
{{end}}

{{define "channel_analysis"}}
<div class="channel-analyzer-result">
  <div class="channel-header">
    {{if .BannerURL}}<img src="{{.BannerURL}}" alt="Channel Banner" class="channel-banner">{{end}}
    <div class="channel-info">
      {{if .AvatarURL}}<img src="{{.AvatarURL}}" alt="Profile Picture" class="channel-pfp">{{end}}
      <div class="channel-title-block">
        <h1>{{.Channel.Title}}</h1>
        <p>{{count .Channel.SubscriberCount}} subscribers &bull; {{count .Channel.VideoCount}} videos &bull; {{count .Channel.ViewCount}} views</p>
      </div>
    </div>
  </div>
  <div class="data-section-grid">
    <div class="data-card">
      <h3>Monetization Status</h3>
      <p class="{{.StatusClass}}">{{.StatusLabel}}</p>
      {{if .Monetization.Reasons}}<small>Reasons: {{join .Monetization.Reasons ", "}}</small>{{end}}
      {{if .Monetization.AnySkipped}}<small>Some checks could not run; the verdict may underestimate.</small>{{end}}
    </div>
    <div class="data-card">
      <h3>Estimated Channel Earnings</h3>
      <p class="earnings-range">${{money .Earnings.Low}} - ${{money .Earnings.High}}</p>
      <small>*Based on total views and industry RPM averages.</small>
    </div>
  </div>
  {{if .RecentVideos}}
  <h3>Recent Videos</h3>
  <div class="recent-videos-grid">
    {{range .RecentVideos}}
    <div class="video-card">
      <a href="{{watchURL .VideoID}}" target="_blank" rel="noopener">
        {{if .Thumbnail}}<img src="{{.Thumbnail}}" alt="Video Thumbnail">{{end}}
        <p class="video-title">{{.Title}}</p>
      </a>
    </div>
    {{end}}
  </div>
  {{end}}
</div>
{{end}}

{{define "channel_images"}}
<div class="result-card">
  <div class="result-header">
    <h3 class="result-title">Channel Images for {{.Channel.Title}}</h3>
  </div>
  <div class="result-content image-results">
    <div class="image-container">
      <h4>Profile Picture</h4>
      <img src="{{.AvatarURL}}" alt="Profile Picture">
      <a href="{{.AvatarURL}}" download class="download-btn">Download HD</a>
    </div>
    <div class="image-container">
      <h4>Channel Banner</h4>
      {{if .BannerURL}}
      <img src="{{.BannerURL}}" alt="Channel Banner">
      <a href="{{.BannerURL}}" download class="download-btn">Download HD</a>
      {{else}}
      <p>This channel does not have a banner image.</p>
      {{end}}
    </div>
  </div>
</div>
{{end}}

{{define "video_stats"}}
<div class="result-card">
  <div class="result-header">
    <h3 class="result-title">{{.Video.Title}}</h3>
  </div>
  <div class="result-content">
    <div class="data-grid">
      <div class="data-item"><div class="data-label">Views</div><div class="data-value">{{count .Video.ViewCount}}</div></div>
      <div class="data-item"><div class="data-label">Likes</div><div class="data-value">{{count .Video.LikeCount}}</div></div>
      <div class="data-item"><div class="data-label">Comments</div><div class="data-value">{{count .Video.CommentCount}}</div></div>
      <div class="data-item"><div class="data-label">Duration</div><div class="data-value">{{.Duration}}</div></div>
      <div class="data-item"><div class="data-label">Published</div><div class="data-value">{{date .Video.PublishedAt}}</div></div>
    </div>
    <div class="video-description">
      <h4>Description</h4>
      <p>{{nl2br .Description}}</p>
    </div>
  </div>
</div>
{{end}}

{{define "tags"}}
<div class="result-card">
  <div class="result-header">
    <h3 class="result-title">Tag Extractor</h3>
  </div>
  <div class="result-content">
    <div class="result-item"><div class="result-label">Video Title</div><div class="result-value">{{.Video.Title}}</div></div>
    <div class="result-item"><div class="result-label">Channel</div><div class="result-value">{{.Video.ChannelTitle}}</div></div>
    <div class="result-item"><div class="result-label">Video ID</div><div class="result-value">{{.Video.ID}}</div></div>
    <div class="result-item"><div class="result-label">Tags Found</div><div class="result-value">{{len .Video.Tags}} tags</div></div>
    {{if .Video.Tags}}
    <div class="tag-cloud">
      {{range .Video.Tags}}<div class="tag-item">{{.}}</div>{{end}}
    </div>
    <div class="result-item">
      <div class="result-label">All Tags (Comma Separated)</div>
      <div class="result-value">{{join .Video.Tags ", "}}</div>
    </div>
    {{else}}
    <div class="result-item"><div class="result-label">Tags</div><div class="result-value">No tags found for this video.</div></div>
    {{end}}
  </div>
</div>
{{end}}

{{define "thumbnails"}}
<div class="result-card">
  <div class="result-header">
    <h3 class="result-title">Thumbnail Downloader</h3>
  </div>
  <div class="result-content">
    <div class="result-item"><div class="result-label">Video Title</div><div class="result-value">{{.Video.Title}}</div></div>
    <div class="result-item"><div class="result-label">Channel</div><div class="result-value">{{.Video.ChannelTitle}}</div></div>
    <div class="result-item"><div class="result-label">Video ID</div><div class="result-value">{{.Video.ID}}</div></div>
    <div class="thumbnail-grid">
      {{range .Thumbnails}}
      <div class="thumbnail-item">
        <img src="{{.URL}}" alt="{{.Name}} thumbnail" class="thumbnail-image" loading="lazy">
        <div class="thumbnail-info">
          <div class="thumbnail-size">{{.Name}} ({{.Size}})</div>
          <a href="{{.URL}}" target="_blank" rel="noopener" class="download-btn">Download</a>
        </div>
      </div>
      {{end}}
    </div>
  </div>
</div>
{{end}}

{{define "search_results"}}
<div class="result-card">
  <div class="result-header">
    <h3 class="result-title">Search Results for "{{.Keyword}}"</h3>
  </div>
  <div class="result-content">
    <div class="search-results-list">
      {{range .Results}}
      <div class="search-result-item">
        <a href="{{watchURL .VideoID}}" target="_blank" rel="noopener">
          {{if .Thumbnail}}<img src="{{.Thumbnail}}" alt="Video Thumbnail" class="search-thumb">{{end}}
          <div class="search-result-meta">
            <p class="video-title">{{.Title}}</p>
            <p class="video-channel">{{.ChannelTitle}}</p>
            <p class="video-stats">{{count .ViewCount}} views &bull; {{date .PublishedAt}}</p>
          </div>
        </a>
      </div>
      {{end}}
    </div>
  </div>
</div>
{{end}}

{{define "no_results"}}
<div class="result-card">
  <div class="result-header">
    <h3 class="result-title">No Results Found</h3>
  </div>
  <div class="result-content">
    <p>No videos found for: <strong>{{.Keyword}}</strong></p>
    <p>Try different keywords or check your spelling.</p>
  </div>
</div>
{{end}}

{{define "earnings"}}
<div class="result-card">
  <div class="result-header">
    <h3 class="result-title">Earnings Estimate for {{.Title}}</h3>
    <span class="result-subtitle">({{.Kind}})</span>
  </div>
  <div class="result-content">
    <div class="data-grid earnings-grid">
      <div class="data-item"><div class="data-label">Total Views</div><div class="data-value">{{comma .ViewCount}}</div></div>
      <div class="data-item"><div class="data-label">Estimated Earnings (Low)</div><div class="data-value earnings-low">${{money .Earnings.Low}}</div></div>
      <div class="data-item"><div class="data-label">Estimated Earnings (High)</div><div class="data-value earnings-high">${{money .Earnings.High}}</div></div>
    </div>
    <p class="disclaimer">*Estimates are based on a standard RPM range of $1.50 - $4.00. Actual earnings may vary.</p>
  </div>
</div>
{{end}}

{{define "monetization"}}
<div class="result-card">
  <div class="result-header">
    <h3 class="result-title">Monetization Status for {{.Title}}</h3>
  </div>
  <div class="result-content">
    <div class="monetization-status {{.StatusClass}}">
      <h4>{{.StatusLabel}}</h4>
    </div>
    <p>{{.Explanation}}</p>
    <p class="disclaimer">*This is an estimate based on public data and not a guarantee.</p>
  </div>
</div>
{{end}}

{{define "shadowban"}}
<div class="result-card">
  <div class="result-header">
    <h3 class="result-title">Shadowban Test for {{.Report.ChannelTitle}}</h3>
  </div>
  <div class="result-content">
    <div class="shadowban-status {{.StatusClass}}">
      <h4>{{.StatusLabel}}</h4>
    </div>
    <p>{{.Explanation}}</p>
    <p class="disclaimer">*Search visibility is a noisy signal with many false positives; treat this as speculative.</p>
  </div>
</div>
{{end}}

{{define "data_video"}}
<div class="video-data-container">
  <header class="video-section video-header">
    <h2 class="video-title">{{.Video.Title}}</h2>
    <div class="channel-info">
      {{if .ChannelThumbnail}}<img src="{{.ChannelThumbnail}}" alt="Channel Thumbnail" class="channel-thumbnail">{{end}}
      <div>
        <div class="channel-name">{{.Video.ChannelTitle}}</div>
        <div class="text-secondary">{{.SubscriberCount}} Subscribers</div>
      </div>
    </div>
  </header>
  <main class="video-main">
    {{if .ThumbnailURL}}<img src="{{.ThumbnailURL}}" alt="Video Thumbnail" class="video-thumbnail">{{end}}
    <div class="video-section stats-grid">
      <div class="stat-item"><div class="stat-value">{{count .Video.ViewCount}}</div><div class="stat-label">Views</div></div>
      <div class="stat-item"><div class="stat-value">{{count .Video.LikeCount}}</div><div class="stat-label">Likes</div></div>
      <div class="stat-item"><div class="stat-value">{{count .Video.CommentCount}}</div><div class="stat-label">Comments</div></div>
    </div>
  </main>
  <aside class="video-sidebar">
    <div class="video-section">
      <h3 class="section-title">Video Details</h3>
      <div class="data-item"><div class="data-label">Duration</div><div class="data-value">{{.Duration}}</div></div>
      <div class="data-item"><div class="data-label">Published</div><div class="data-value">{{date .Video.PublishedAt}}</div></div>
      <div class="data-item"><div class="data-label">Estimated Revenue</div><div class="data-value">${{money .Earnings.Low}} - ${{money .Earnings.High}}</div></div>
    </div>
    <div class="video-section">
      <h3 class="section-title">Tags</h3>
      <div class="tag-cloud">
        {{if .Video.Tags}}{{range .Video.Tags}}<span class="tag-item">{{.}}</span>{{end}}{{else}}<span>No tags available.</span>{{end}}
      </div>
    </div>
    <div class="video-section video-extra-stats">
      <h3 class="section-title">Performance Statistics</h3>
      <div class="stats-grid">
        <div class="stat-item"><div class="stat-value">{{.Engagement.LikesPer1000Views}}</div><div class="stat-label">Likes per 1,000 Views</div></div>
        <div class="stat-item"><div class="stat-value">{{.Engagement.CommentsPer1000Views}}</div><div class="stat-label">Comments per 1,000 Views</div></div>
        <div class="stat-item"><div class="stat-value">{{.Engagement.LikeToCommentRatio}}:1</div><div class="stat-label">Like-to-Comment Ratio</div></div>
      </div>
    </div>
  </aside>
</div>
{{end}}

{{define "data_channel"}}
<div class="result-card">
  <div class="result-header">
    <h3 class="result-title">Channel Data</h3>
  </div>
  <div class="result-content">
    <div class="data-grid">
      <div class="data-item"><div class="data-label">Channel Name</div><div class="data-value">{{.Channel.Title}}</div></div>
      <div class="data-item"><div class="data-label">Subscribers</div><div class="data-value">{{count .Channel.SubscriberCount}}</div></div>
      <div class="data-item"><div class="data-label">Total Views</div><div class="data-value">{{count .Channel.ViewCount}}</div></div>
      <div class="data-item"><div class="data-label">Videos</div><div class="data-value">{{count .Channel.VideoCount}}</div></div>
      <div class="data-item"><div class="data-label">Created</div><div class="data-value">{{date .Channel.PublishedAt}}</div></div>
      <div class="data-item"><div class="data-label">Country</div><div class="data-value">{{.Country}}</div></div>
      <div class="data-item"><div class="data-label">Channel ID</div><div class="data-value">{{.Channel.ID}}</div></div>
    </div>
    <div class="result-item">
      <div class="result-label">Description</div>
      <div class="result-value">{{nl2br .Description}}</div>
    </div>
    <div class="result-item">
      <div class="result-label">Channel URL</div>
      <div class="result-value"><a href="{{.URL}}" target="_blank" rel="noopener">{{.URL}}</a></div>
    </div>
  </div>
</div>
{{end}}
`

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"comma": util.FormatCount,
		"count": func(c domain.Count) string {
			if !c.Known {
				return "N/A (Hidden)"
			}
			return util.FormatCount(c.Value)
		},
		"date":  util.FormatDate,
		"money": util.FormatMoney,
		"join":  strings.Join,
		"nl2br": func(s string) template.HTML {
			escaped := escaper.Replace(s)
			return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>\n"))
		},
		"watchURL": domain.WatchURL,
	}
}

func parseTemplates() *template.Template {
	return template.Must(template.New("fragments").Funcs(templateFuncs()).Parse(fragmentTemplates))
}
