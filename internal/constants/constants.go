package constants

import "time"

var CacheTTL = struct {
	VideoDetail   time.Duration
	ChannelDetail time.Duration
	ChannelSearch time.Duration
	VideoSearch   time.Duration
	ScrapeSignal  time.Duration
}{
	VideoDetail:   10 * time.Minute,
	ChannelDetail: 20 * time.Minute,
	ChannelSearch: 30 * time.Minute,
	VideoSearch:   5 * time.Minute,
	ScrapeSignal:  30 * time.Minute,
}

// Quota costs mirror the published pricing of the Data API v3 endpoints.
var QuotaConfig = struct {
	DailyLimit   int
	SafetyMargin int
	SearchCost   int
	ListCost     int
}{
	DailyLimit:   10000,
	SafetyMargin: 500,
	SearchCost:   100,
	ListCost:     1,
}

var SearchConfig = struct {
	ResolveMaxResults   int64
	ShadowbanMaxResults int64
	RecentVideos        int64
	KeywordMaxResults   int64
	MinKeywordLength    int
}{
	ResolveMaxResults:   5,
	ShadowbanMaxResults: 10,
	RecentVideos:        5,
	KeywordMaxResults:   10,
	MinKeywordLength:    2,
}

var ScrapeConfig = struct {
	Timeout     time.Duration
	MaxBodySize int64
	UserAgent   string
}{
	Timeout:     15 * time.Second,
	MaxBodySize: 5 << 20,
	UserAgent:   "Mozilla/5.0 (compatible; yt-utility/1.0)",
}

var InputLimits = struct {
	MaxInputLength int
}{
	MaxInputLength: 1000,
}
