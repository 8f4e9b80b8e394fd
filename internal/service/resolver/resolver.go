package resolver

import (
	"context"
	"strings"

	"github.com/arim/yt-utility-go/internal/constants"
	"github.com/arim/yt-utility-go/internal/domain"
	"github.com/arim/yt-utility-go/pkg/apperr"
	"go.uber.org/zap"
)

// Provider is the slice of the metadata fetcher the resolver needs. Channel
// search yields candidates; the detail lookup supplies custom URLs for the
// best-match policy.
type Provider interface {
	SearchChannels(ctx context.Context, query string, maxResults int64) ([]*domain.ChannelCandidate, error)
	ChannelsByIDs(ctx context.Context, ids []string) ([]*domain.ChannelRecord, error)
}

// Resolver turns handles, custom-URL segments and free-text queries into
// canonical UC… channel ids. One search call per resolution, no retries.
type Resolver struct {
	provider Provider
	logger   *zap.Logger
}

func New(provider Provider, logger *zap.Logger) *Resolver {
	return &Resolver{provider: provider, logger: logger}
}

// ResolveChannel returns the canonical channel id for a classified input of
// kind channelId, channelHandle or unresolved.
func (r *Resolver) ResolveChannel(ctx context.Context, in domain.ClassifiedInput) (string, error) {
	switch in.Kind {
	case domain.InputChannelID:
		return in.ID, nil
	case domain.InputChannelHandle:
		return r.resolveHandle(ctx, in.Handle)
	case domain.InputUnresolved:
		return r.resolveQuery(ctx, in.Query)
	default:
		return "", apperr.NewInputInvalid("input does not name a channel", "input", string(in.Kind))
	}
}

// resolveQuery takes the first search hit for a free-text query.
func (r *Resolver) resolveQuery(ctx context.Context, query string) (string, error) {
	candidates, err := r.provider.SearchChannels(ctx, query, 1)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", apperr.NewNotFound("channel", query)
	}
	return candidates[0].ChannelID, nil
}

// resolveHandle searches with the handle text verbatim and applies the
// best-match policy over a few results: an exact custom-URL or title match
// (case-insensitive) wins, otherwise the first result stands.
func (r *Resolver) resolveHandle(ctx context.Context, handle string) (string, error) {
	candidates, err := r.provider.SearchChannels(ctx, handle, constants.SearchConfig.ResolveMaxResults)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", apperr.NewNotFound("channel", "@"+handle)
	}

	if len(candidates) == 1 {
		return candidates[0].ChannelID, nil
	}

	want := strings.ToLower(handle)

	for _, c := range candidates {
		if strings.ToLower(c.Title) == want {
			return c.ChannelID, nil
		}
	}

	// Search results carry no custom URL, so check the candidates' detail
	// records for a handle match before falling back to the first hit.
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ChannelID)
	}

	records, err := r.provider.ChannelsByIDs(ctx, ids)
	if err != nil {
		r.logger.Debug("Handle best-match detail lookup failed, using first result",
			zap.String("handle", handle), zap.Error(err))
		return candidates[0].ChannelID, nil
	}

	for _, rec := range records {
		custom := strings.ToLower(strings.TrimPrefix(rec.CustomURL, "@"))
		if custom != "" && custom == want {
			return rec.ID, nil
		}
	}

	return candidates[0].ChannelID, nil
}
