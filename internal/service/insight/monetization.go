package insight

import (
	"fmt"
	"os"
	"time"

	"github.com/arim/yt-utility-go/internal/domain"
	"gopkg.in/yaml.v3"
)

// Weights configures the monetization heuristic. The default values carry
// over from earlier versions of the tool and were never calibrated against
// real partner-program data; treat the verdict as an estimate.
type Weights struct {
	JoinButton        int `yaml:"join_button"`
	MonetizablePlayer int `yaml:"monetizable_player"`
	SubscriberFloor   int `yaml:"subscriber_floor"`
	VideoFloor        int `yaml:"video_floor"`
	ChannelAge        int `yaml:"channel_age"`

	MinSubscribers uint64 `yaml:"min_subscribers"`
	MinVideos      uint64 `yaml:"min_videos"`
	MinAgeDays     int    `yaml:"min_age_days"`

	LikelyThreshold   int `yaml:"likely_threshold"`
	PossibleThreshold int `yaml:"possible_threshold"`
}

func DefaultWeights() Weights {
	return Weights{
		JoinButton:        50,
		MonetizablePlayer: 30,
		SubscriberFloor:   10,
		VideoFloor:        5,
		ChannelAge:        5,
		MinSubscribers:    1000,
		MinVideos:         10,
		MinAgeDays:        180,
		LikelyThreshold:   70,
		PossibleThreshold: 30,
	}
}

// LoadWeights reads a yaml overrides file on top of the defaults. A missing
// file is not an error; a malformed one is.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return w, nil
		}
		return w, fmt.Errorf("failed to read weights file: %w", err)
	}

	if err := yaml.Unmarshal(data, &w); err != nil {
		return DefaultWeights(), fmt.Errorf("failed to parse weights file: %w", err)
	}
	return w, nil
}

// Verdict is the three-tier monetization label.
type Verdict string

const (
	VerdictLikely      Verdict = "likely"
	VerdictPossible    Verdict = "possible"
	VerdictNotDetected Verdict = "not_detected"
)

// MonetizationReport is the scored outcome with the reasons that contributed.
type MonetizationReport struct {
	Score       int           `json:"score"`
	Verdict     Verdict       `json:"verdict"`
	Reasons     []string      `json:"reasons,omitempty"`
	JoinButton  domain.Signal `json:"join_button"`
	PlayerFlag  domain.Signal `json:"player_flag"`
	AnySkipped  bool          `json:"any_skipped"`
}

// ScoreMonetization folds the scrape signals and channel statistics into a
// weighted score and maps it onto the tier labels. Unknown signals contribute
// nothing but are flagged so the caller can soften the verdict wording.
func ScoreMonetization(w Weights, join, playerFlag domain.Signal, channel *domain.ChannelRecord, now time.Time) MonetizationReport {
	report := MonetizationReport{
		JoinButton: join,
		PlayerFlag: playerFlag,
		AnySkipped: !join.Checked() || !playerFlag.Checked(),
	}

	if join.Found() {
		report.Score += w.JoinButton
		report.Reasons = append(report.Reasons, "Channel memberships (Join button) found")
	}
	if playerFlag.Found() {
		report.Score += w.MonetizablePlayer
		report.Reasons = append(report.Reasons, "Latest video is monetizable (via page data)")
	}

	if channel != nil {
		if channel.SubscriberCount.Known && channel.SubscriberCount.Value >= w.MinSubscribers {
			report.Score += w.SubscriberFloor
			report.Reasons = append(report.Reasons,
				fmt.Sprintf("Meets subscriber requirement (>%d)", w.MinSubscribers))
		}
		if channel.VideoCount.Known && channel.VideoCount.Value >= w.MinVideos {
			report.Score += w.VideoFloor
			report.Reasons = append(report.Reasons,
				fmt.Sprintf("Has at least %d videos", w.MinVideos))
		}
		if !channel.PublishedAt.IsZero() {
			ageDays := int(now.Sub(channel.PublishedAt).Hours() / 24)
			if ageDays >= w.MinAgeDays {
				report.Score += w.ChannelAge
				report.Reasons = append(report.Reasons,
					fmt.Sprintf("Channel older than %d days", w.MinAgeDays))
			}
		}
	}

	switch {
	case report.Score >= w.LikelyThreshold:
		report.Verdict = VerdictLikely
	case report.Score >= w.PossibleThreshold:
		report.Verdict = VerdictPossible
	default:
		report.Verdict = VerdictNotDetected
	}

	return report
}
