package domain

import (
	"strings"
	"time"
)

// ChannelRecord is the normalized detail view of a channel.
type ChannelRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CustomURL   string    `json:"custom_url,omitempty"`
	Country     string    `json:"country,omitempty"`
	PublishedAt time.Time `json:"published_at"`

	// SubscriberCount is hidden (not zero) when the channel owner disabled
	// the public counter.
	SubscriberCount Count `json:"subscriber_count"`
	ViewCount       Count `json:"view_count"`
	VideoCount      Count `json:"video_count"`

	AvatarURL string `json:"avatar_url,omitempty"`
	BannerURL string `json:"banner_url,omitempty"`
}

// ChannelCandidate is the lightweight shape returned by channel search,
// before any detail fetch.
type ChannelCandidate struct {
	ChannelID   string    `json:"channel_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// ChannelURL builds the canonical channel-page URL for a channel id.
func ChannelURL(channelID string) string {
	return "https://www.youtube.com/channel/" + channelID
}

// UpscaleAvatarURL rewrites the 88px avatar variant returned by the API into
// the 800px variant, matching how the thumbnail CDN encodes sizes.
func UpscaleAvatarURL(url string) string {
	return strings.Replace(url, "=s88-c-k-c0x00ffffff-no-rj", "=s800-c-k-c0x00ffffff-no-rj", 1)
}

// FullBannerURL appends the crop suffix that renders the banner at full
// desktop width. The API returns the bare asset URL without sizing.
func FullBannerURL(bannerExternalURL string) string {
	if bannerExternalURL == "" {
		return ""
	}
	return bannerExternalURL + "=w2120-fcrop64=1,00005a57ffffa5a8-k-c0xffffffff-no-nd-rj"
}
