// Package insight derives display metrics and heuristic verdicts from
// normalized records. Everything in metrics.go is pure computation.
package insight

import "math"

// Assumed ad-revenue-per-1000-views range. These are industry averages used
// for a rough estimate, not figures derived from any real revenue data.
const (
	RPMLow  = 1.5
	RPMHigh = 4.0
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// EarningsEstimate is a low/high dollar range.
type EarningsEstimate struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// EstimateEarnings computes the RPM-based range for a view count. A zero
// view count is a valid input and yields a zero estimate.
func EstimateEarnings(viewCount uint64) EarningsEstimate {
	thousands := float64(viewCount) / 1000
	return EarningsEstimate{
		Low:  round2(thousands * RPMLow),
		High: round2(thousands * RPMHigh),
	}
}

// Engagement holds the per-mille interaction ratios for a video.
type Engagement struct {
	LikesPer1000Views    float64 `json:"likes_per_1000_views"`
	CommentsPer1000Views float64 `json:"comments_per_1000_views"`
	LikeToCommentRatio   float64 `json:"like_to_comment_ratio"`
}

// EngagementFor computes interaction ratios, substituting 0 whenever a
// denominator is 0.
func EngagementFor(views, likes, comments uint64) Engagement {
	var e Engagement
	if views > 0 {
		e.LikesPer1000Views = round2(float64(likes) / float64(views) * 1000)
		e.CommentsPer1000Views = round2(float64(comments) / float64(views) * 1000)
	}
	if comments > 0 {
		e.LikeToCommentRatio = round2(float64(likes) / float64(comments))
	}
	return e
}
