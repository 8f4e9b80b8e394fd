package insight

import (
	"context"
	"fmt"

	"github.com/arim/yt-utility-go/internal/constants"
	"github.com/arim/yt-utility-go/internal/domain"
	"go.uber.org/zap"
)

// ShadowbanProvider is the slice of the metadata fetcher the probe needs.
type ShadowbanProvider interface {
	ChannelByID(ctx context.Context, id string, parts ...string) (*domain.ChannelRecord, error)
	SearchChannels(ctx context.Context, query string, maxResults int64) ([]*domain.ChannelCandidate, error)
}

// ShadowbanReport records whether the channel surfaced in a search for its
// own exact title. Absence is a noisy indicator (common names, regional
// ranking), so the report keeps the inspected count for context.
type ShadowbanReport struct {
	ChannelID     string `json:"channel_id"`
	ChannelTitle  string `json:"channel_title"`
	FoundInSearch bool   `json:"found_in_search"`
	Inspected     int    `json:"inspected"`
}

// ShadowbanProber runs the visibility probe.
type ShadowbanProber struct {
	provider ShadowbanProvider
	logger   *zap.Logger
}

func NewShadowbanProber(provider ShadowbanProvider, logger *zap.Logger) *ShadowbanProber {
	return &ShadowbanProber{provider: provider, logger: logger}
}

// Check fetches the channel's exact title and searches for it in quotes. The
// channel id missing from the top results flags a potential shadowban.
func (p *ShadowbanProber) Check(ctx context.Context, channelID string) (*ShadowbanReport, error) {
	channel, err := p.provider.ChannelByID(ctx, channelID, "snippet")
	if err != nil {
		return nil, err
	}

	quoted := fmt.Sprintf("%q", channel.Title)
	candidates, err := p.provider.SearchChannels(ctx, quoted, constants.SearchConfig.ShadowbanMaxResults)
	if err != nil {
		return nil, err
	}

	report := &ShadowbanReport{
		ChannelID:    channelID,
		ChannelTitle: channel.Title,
		Inspected:    len(candidates),
	}
	for _, c := range candidates {
		if c.ChannelID == channelID {
			report.FoundInSearch = true
			break
		}
	}

	if !report.FoundInSearch {
		p.logger.Info("Channel absent from own-name search results",
			zap.String("channel", channelID),
			zap.String("title", channel.Title),
			zap.Int("inspected", report.Inspected))
	}

	return report, nil
}
