package domain

import "time"

// VideoRecord is the normalized detail view of a single video.
type VideoRecord struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	ChannelID    string            `json:"channel_id"`
	ChannelTitle string            `json:"channel_title"`
	PublishedAt  time.Time         `json:"published_at"`
	Duration     Duration          `json:"duration"`
	ViewCount    Count             `json:"view_count"`
	LikeCount    Count             `json:"like_count"`
	CommentCount Count             `json:"comment_count"`
	Tags         []string          `json:"tags,omitempty"`
	Thumbnails   map[string]string `json:"thumbnails,omitempty"`
}

// VideoSummary is the lightweight list-item shape returned by search calls.
type VideoSummary struct {
	VideoID      string    `json:"video_id"`
	Title        string    `json:"title"`
	ChannelID    string    `json:"channel_id"`
	ChannelTitle string    `json:"channel_title"`
	PublishedAt  time.Time `json:"published_at"`
	Thumbnail    string    `json:"thumbnail,omitempty"`

	// Stats are joined from a batched detail call and stay hidden when the
	// detail response did not include this video.
	ViewCount Count `json:"view_count"`
}

// ThumbnailQualities lists the static thumbnail variants youtube hosts for
// every video, best quality last.
var ThumbnailQualities = []struct {
	Name string
	Size string
}{
	{"default", "120x90"},
	{"mqdefault", "320x180"},
	{"hqdefault", "480x360"},
	{"sddefault", "640x480"},
	{"maxresdefault", "1280x720"},
}

// VideoThumbnailURL builds the static image URL for a video id and quality.
func VideoThumbnailURL(videoID, quality string) string {
	return "https://img.youtube.com/vi/" + videoID + "/" + quality + ".jpg"
}

// WatchURL builds the canonical watch-page URL for a video id.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
