package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/arim/yt-utility-go/internal/domain"
	"github.com/arim/yt-utility-go/pkg/apperr"
	"go.uber.org/zap"
)

type fakeProvider struct {
	searchResults []*domain.ChannelCandidate
	searchErr     error
	searchQueries []string

	detailRecords []*domain.ChannelRecord
	detailErr     error
	detailCalls   int
}

func (f *fakeProvider) SearchChannels(_ context.Context, query string, _ int64) ([]*domain.ChannelCandidate, error) {
	f.searchQueries = append(f.searchQueries, query)
	return f.searchResults, f.searchErr
}

func (f *fakeProvider) ChannelsByIDs(_ context.Context, _ []string) ([]*domain.ChannelRecord, error) {
	f.detailCalls++
	return f.detailRecords, f.detailErr
}

func TestResolveChannelPassesThroughID(t *testing.T) {
	r := New(&fakeProvider{}, zap.NewNop())

	id, err := r.ResolveChannel(context.Background(), domain.ClassifiedInput{
		Kind: domain.InputChannelID,
		ID:   "UCabcdefghijklmnopqrstuv",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "UCabcdefghijklmnopqrstuv" {
		t.Errorf("id = %q", id)
	}
}

func TestResolveChannelRejectsVideoInput(t *testing.T) {
	r := New(&fakeProvider{}, zap.NewNop())

	_, err := r.ResolveChannel(context.Background(), domain.ClassifiedInput{
		Kind: domain.InputVideo,
		ID:   "dQw4w9WgXcQ",
	})
	if !apperr.Is(err, apperr.CodeInputInvalid) {
		t.Errorf("error = %v, want INPUT_INVALID", err)
	}
}

func TestResolveQueryTakesFirstHit(t *testing.T) {
	provider := &fakeProvider{
		searchResults: []*domain.ChannelCandidate{
			{ChannelID: "UCfirst", Title: "First"},
			{ChannelID: "UCsecond", Title: "Second"},
		},
	}
	r := New(provider, zap.NewNop())

	id, err := r.ResolveChannel(context.Background(), domain.ClassifiedInput{
		Kind:  domain.InputUnresolved,
		Query: "some channel",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "UCfirst" {
		t.Errorf("id = %q, want UCfirst", id)
	}
}

func TestResolveQueryNotFound(t *testing.T) {
	r := New(&fakeProvider{}, zap.NewNop())

	_, err := r.ResolveChannel(context.Background(), domain.ClassifiedInput{
		Kind:  domain.InputUnresolved,
		Query: "nobody here",
	})
	if !apperr.Is(err, apperr.CodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestResolveQueryPropagatesSearchError(t *testing.T) {
	provider := &fakeProvider{searchErr: apperr.NewUpstreamAPI("quota exceeded", 429, nil)}
	r := New(provider, zap.NewNop())

	_, err := r.ResolveChannel(context.Background(), domain.ClassifiedInput{
		Kind:  domain.InputUnresolved,
		Query: "anything",
	})
	if !apperr.Is(err, apperr.CodeUpstreamAPI) {
		t.Errorf("error = %v, want UPSTREAM_API_ERROR", err)
	}
}

func TestResolveHandleExactTitleMatchWins(t *testing.T) {
	provider := &fakeProvider{
		searchResults: []*domain.ChannelCandidate{
			{ChannelID: "UCother", Title: "Somecreator Fan Club"},
			{ChannelID: "UCmatch", Title: "SomeCreator"},
		},
	}
	r := New(provider, zap.NewNop())

	id, err := r.ResolveChannel(context.Background(), domain.ClassifiedInput{
		Kind:   domain.InputChannelHandle,
		Handle: "somecreator",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "UCmatch" {
		t.Errorf("id = %q, want UCmatch", id)
	}
	if provider.detailCalls != 0 {
		t.Errorf("detail lookup ran %d times despite a title match", provider.detailCalls)
	}
}

func TestResolveHandleCustomURLMatch(t *testing.T) {
	provider := &fakeProvider{
		searchResults: []*domain.ChannelCandidate{
			{ChannelID: "UCother", Title: "Fan Channel"},
			{ChannelID: "UCmatch", Title: "A Display Name"},
		},
		detailRecords: []*domain.ChannelRecord{
			{ID: "UCother", CustomURL: "@fanchannel"},
			{ID: "UCmatch", CustomURL: "@SomeCreator"},
		},
	}
	r := New(provider, zap.NewNop())

	id, err := r.ResolveChannel(context.Background(), domain.ClassifiedInput{
		Kind:   domain.InputChannelHandle,
		Handle: "somecreator",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "UCmatch" {
		t.Errorf("id = %q, want UCmatch", id)
	}
}

func TestResolveHandleFallsBackToFirstOnDetailError(t *testing.T) {
	provider := &fakeProvider{
		searchResults: []*domain.ChannelCandidate{
			{ChannelID: "UCfirst", Title: "Name One"},
			{ChannelID: "UCsecond", Title: "Name Two"},
		},
		detailErr: errors.New("boom"),
	}
	r := New(provider, zap.NewNop())

	id, err := r.ResolveChannel(context.Background(), domain.ClassifiedInput{
		Kind:   domain.InputChannelHandle,
		Handle: "somecreator",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "UCfirst" {
		t.Errorf("id = %q, want UCfirst", id)
	}
}

func TestResolveHandleSingleResultShortCircuits(t *testing.T) {
	provider := &fakeProvider{
		searchResults: []*domain.ChannelCandidate{
			{ChannelID: "UConly", Title: "Whatever"},
		},
	}
	r := New(provider, zap.NewNop())

	id, err := r.ResolveChannel(context.Background(), domain.ClassifiedInput{
		Kind:   domain.InputChannelHandle,
		Handle: "whoever",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "UConly" {
		t.Errorf("id = %q, want UConly", id)
	}
	if provider.detailCalls != 0 {
		t.Errorf("detail lookup ran for a single-candidate result")
	}
}

func TestResolveHandleNotFound(t *testing.T) {
	r := New(&fakeProvider{}, zap.NewNop())

	_, err := r.ResolveChannel(context.Background(), domain.ClassifiedInput{
		Kind:   domain.InputChannelHandle,
		Handle: "ghost",
	})
	if !apperr.Is(err, apperr.CodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}
