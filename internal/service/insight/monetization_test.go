package insight

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arim/yt-utility-go/internal/domain"
)

func establishedChannel(now time.Time) *domain.ChannelRecord {
	return &domain.ChannelRecord{
		ID:              "UCabcdefghijklmnopqrstuv",
		Title:           "Established",
		PublishedAt:     now.AddDate(-2, 0, 0),
		SubscriberCount: domain.KnownCount(50000),
		VideoCount:      domain.KnownCount(200),
	}
}

func TestScoreMonetizationAllSignals(t *testing.T) {
	now := time.Now()
	report := ScoreMonetization(DefaultWeights(),
		domain.SignalConfirmed, domain.SignalConfirmed, establishedChannel(now), now)

	if report.Score != 100 {
		t.Errorf("score = %d, want 100", report.Score)
	}
	if report.Verdict != VerdictLikely {
		t.Errorf("verdict = %q, want likely", report.Verdict)
	}
	if report.AnySkipped {
		t.Error("AnySkipped = true with both signals checked")
	}
	if len(report.Reasons) != 5 {
		t.Errorf("reasons = %v, want 5 entries", report.Reasons)
	}
}

func TestScoreMonetizationJoinOnlyIsPossible(t *testing.T) {
	now := time.Now()
	channel := &domain.ChannelRecord{
		ID:          "UCabcdefghijklmnopqrstuv",
		PublishedAt: now.AddDate(0, -1, 0),
	}

	report := ScoreMonetization(DefaultWeights(),
		domain.SignalConfirmed, domain.SignalAbsent, channel, now)

	if report.Score != 50 {
		t.Errorf("score = %d, want 50", report.Score)
	}
	if report.Verdict != VerdictPossible {
		t.Errorf("verdict = %q, want possible", report.Verdict)
	}
}

func TestScoreMonetizationNothingDetected(t *testing.T) {
	now := time.Now()
	channel := &domain.ChannelRecord{
		ID:          "UCabcdefghijklmnopqrstuv",
		PublishedAt: now.AddDate(0, -1, 0),
	}

	report := ScoreMonetization(DefaultWeights(),
		domain.SignalAbsent, domain.SignalAbsent, channel, now)

	if report.Score != 0 {
		t.Errorf("score = %d, want 0", report.Score)
	}
	if report.Verdict != VerdictNotDetected {
		t.Errorf("verdict = %q, want not_detected", report.Verdict)
	}
}

func TestScoreMonetizationUnknownSignalsFlagged(t *testing.T) {
	now := time.Now()
	report := ScoreMonetization(DefaultWeights(),
		domain.SignalUnknown, domain.SignalUnknown, establishedChannel(now), now)

	if !report.AnySkipped {
		t.Error("AnySkipped = false with both signals unknown")
	}
	// Statistics floors still count: 10 + 5 + 5.
	if report.Score != 20 {
		t.Errorf("score = %d, want 20", report.Score)
	}
}

func TestScoreMonetizationHiddenSubscribersSkipFloor(t *testing.T) {
	now := time.Now()
	channel := establishedChannel(now)
	channel.SubscriberCount = domain.HiddenCount()

	report := ScoreMonetization(DefaultWeights(),
		domain.SignalAbsent, domain.SignalAbsent, channel, now)

	if report.Score != 10 {
		t.Errorf("score = %d, want 10 (video floor + age only)", report.Score)
	}
}

func TestLoadWeightsMissingFileUsesDefaults(t *testing.T) {
	w, err := LoadWeights(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != DefaultWeights() {
		t.Errorf("weights = %+v, want defaults", w)
	}
}

func TestLoadWeightsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.yaml")
	content := "join_button: 60\nlikely_threshold: 80\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := LoadWeights(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.JoinButton != 60 {
		t.Errorf("JoinButton = %d, want 60", w.JoinButton)
	}
	if w.LikelyThreshold != 80 {
		t.Errorf("LikelyThreshold = %d, want 80", w.LikelyThreshold)
	}
	if w.MonetizablePlayer != 30 {
		t.Errorf("MonetizablePlayer = %d, want default 30", w.MonetizablePlayer)
	}
}

func TestLoadWeightsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.yaml")
	if err := os.WriteFile(path, []byte("join_button: [not an int"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadWeights(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
