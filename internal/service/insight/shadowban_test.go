package insight

import (
	"context"
	"testing"

	"github.com/arim/yt-utility-go/internal/domain"
	"github.com/arim/yt-utility-go/pkg/apperr"
	"go.uber.org/zap"
)

type fakeShadowbanProvider struct {
	channel       *domain.ChannelRecord
	channelErr    error
	searchResults []*domain.ChannelCandidate
	searchErr     error
	searchQuery   string
}

func (f *fakeShadowbanProvider) ChannelByID(_ context.Context, _ string, _ ...string) (*domain.ChannelRecord, error) {
	return f.channel, f.channelErr
}

func (f *fakeShadowbanProvider) SearchChannels(_ context.Context, query string, _ int64) ([]*domain.ChannelCandidate, error) {
	f.searchQuery = query
	return f.searchResults, f.searchErr
}

func TestShadowbanCheckFound(t *testing.T) {
	provider := &fakeShadowbanProvider{
		channel: &domain.ChannelRecord{ID: "UCtarget", Title: "My Channel"},
		searchResults: []*domain.ChannelCandidate{
			{ChannelID: "UCother", Title: "My Channel Clips"},
			{ChannelID: "UCtarget", Title: "My Channel"},
		},
	}
	prober := NewShadowbanProber(provider, zap.NewNop())

	report, err := prober.Check(context.Background(), "UCtarget")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.FoundInSearch {
		t.Error("FoundInSearch = false, channel was in results")
	}
	if report.Inspected != 2 {
		t.Errorf("Inspected = %d, want 2", report.Inspected)
	}
	if provider.searchQuery != `"My Channel"` {
		t.Errorf("search query = %q, want the quoted exact title", provider.searchQuery)
	}
}

func TestShadowbanCheckAbsent(t *testing.T) {
	provider := &fakeShadowbanProvider{
		channel: &domain.ChannelRecord{ID: "UCtarget", Title: "My Channel"},
		searchResults: []*domain.ChannelCandidate{
			{ChannelID: "UCimpostor", Title: "My Channel"},
		},
	}
	prober := NewShadowbanProber(provider, zap.NewNop())

	report, err := prober.Check(context.Background(), "UCtarget")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.FoundInSearch {
		t.Error("FoundInSearch = true, channel was not in results")
	}
}

func TestShadowbanCheckPropagatesErrors(t *testing.T) {
	provider := &fakeShadowbanProvider{channelErr: apperr.NewNotFound("channel", "UCtarget")}
	prober := NewShadowbanProber(provider, zap.NewNop())

	if _, err := prober.Check(context.Background(), "UCtarget"); !apperr.Is(err, apperr.CodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}

	provider = &fakeShadowbanProvider{
		channel:   &domain.ChannelRecord{ID: "UCtarget", Title: "My Channel"},
		searchErr: apperr.NewUpstreamAPI("quota exceeded", 429, nil),
	}
	prober = NewShadowbanProber(provider, zap.NewNop())

	if _, err := prober.Check(context.Background(), "UCtarget"); !apperr.Is(err, apperr.CodeUpstreamAPI) {
		t.Errorf("error = %v, want UPSTREAM_API_ERROR", err)
	}
}
