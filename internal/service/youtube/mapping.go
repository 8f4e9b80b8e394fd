package youtube

import (
	"time"

	"github.com/arim/yt-utility-go/internal/domain"
	"google.golang.org/api/youtube/v3"
)

// mapVideo normalizes one API video item. Absent parts (caller did not
// request them, or the provider withheld them) become hidden counts or zero
// values rather than errors.
func mapVideo(item *youtube.Video) *domain.VideoRecord {
	record := &domain.VideoRecord{ID: item.Id}

	if sn := item.Snippet; sn != nil {
		record.Title = sn.Title
		record.Description = sn.Description
		record.ChannelID = sn.ChannelId
		record.ChannelTitle = sn.ChannelTitle
		record.PublishedAt = parseTimestamp(sn.PublishedAt)
		record.Tags = sn.Tags
		record.Thumbnails = thumbnailMap(sn.Thumbnails)
	}

	if st := item.Statistics; st != nil {
		record.ViewCount = domain.KnownCount(st.ViewCount)
		record.LikeCount = domain.KnownCount(st.LikeCount)
		record.CommentCount = domain.KnownCount(st.CommentCount)
	}

	if cd := item.ContentDetails; cd != nil && cd.Duration != "" {
		if d, err := domain.ParseISODuration(cd.Duration); err == nil {
			record.Duration = d
		}
	}

	return record
}

// mapChannel normalizes one API channel item. A hidden subscriber counter
// maps to the explicit hidden sentinel, not zero.
func mapChannel(item *youtube.Channel) *domain.ChannelRecord {
	record := &domain.ChannelRecord{ID: item.Id}

	if sn := item.Snippet; sn != nil {
		record.Title = sn.Title
		record.Description = sn.Description
		record.CustomURL = sn.CustomUrl
		record.Country = sn.Country
		record.PublishedAt = parseTimestamp(sn.PublishedAt)
		record.AvatarURL = bestThumbnail(sn.Thumbnails)
	}

	if st := item.Statistics; st != nil {
		if !st.HiddenSubscriberCount {
			record.SubscriberCount = domain.KnownCount(st.SubscriberCount)
		}
		record.ViewCount = domain.KnownCount(st.ViewCount)
		record.VideoCount = domain.KnownCount(st.VideoCount)
	}

	if bs := item.BrandingSettings; bs != nil && bs.Image != nil {
		record.BannerURL = bs.Image.BannerExternalUrl
	}

	return record
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func thumbnailMap(details *youtube.ThumbnailDetails) map[string]string {
	if details == nil {
		return nil
	}

	m := make(map[string]string, 5)
	put := func(name string, t *youtube.Thumbnail) {
		if t != nil && t.Url != "" {
			m[name] = t.Url
		}
	}
	put("default", details.Default)
	put("medium", details.Medium)
	put("high", details.High)
	put("standard", details.Standard)
	put("maxres", details.Maxres)

	if len(m) == 0 {
		return nil
	}
	return m
}

// bestThumbnail picks the highest-resolution variant available.
func bestThumbnail(details *youtube.ThumbnailDetails) string {
	if details == nil {
		return ""
	}
	for _, t := range []*youtube.Thumbnail{details.Maxres, details.Standard, details.High, details.Medium, details.Default} {
		if t != nil && t.Url != "" {
			return t.Url
		}
	}
	return ""
}

// mediumThumbnail picks the list-item variant, falling back outward.
func mediumThumbnail(details *youtube.ThumbnailDetails) string {
	if details == nil {
		return ""
	}
	for _, t := range []*youtube.Thumbnail{details.Medium, details.High, details.Default} {
		if t != nil && t.Url != "" {
			return t.Url
		}
	}
	return ""
}
