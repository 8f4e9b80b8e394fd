package resolver

import (
	"regexp"
	"strings"

	"github.com/arim/yt-utility-go/internal/constants"
	"github.com/arim/yt-utility-go/internal/domain"
	"github.com/arim/yt-utility-go/pkg/apperr"
)

// Identifier shapes accepted from free-text input. Video and channel ids are
// case-sensitive, so none of these patterns fold case.
var (
	channelIDPattern  = regexp.MustCompile(`^UC[a-zA-Z0-9_-]{22}$`)
	videoIDPattern    = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
	videoURLPattern   = regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|embed/)|youtu\.be/)([a-zA-Z0-9_-]{11})`)
	channelURLPattern = regexp.MustCompile(`youtube\.com/(?:channel/|c/|user/|@)([^/?&#]+)`)
	handlePattern     = regexp.MustCompile(`^@([a-zA-Z0-9_.-]+)$`)
)

// IsChannelID reports whether s is a canonical UC… channel id.
func IsChannelID(s string) bool {
	return channelIDPattern.MatchString(s)
}

// IsVideoID reports whether s has the bare 11-character video id shape. There
// is no checksum for video ids, so any 11-character string over the id
// alphabet matches; callers treating arbitrary words as ids inherit that
// ambiguity from the upstream id scheme.
func IsVideoID(s string) bool {
	return videoIDPattern.MatchString(s)
}

// Classify applies the ordered first-match rules that turn free text into a
// tagged identifier. The ordering matters: URL extraction runs before the
// bare-id fallback so that a pasted URL never classifies as a search query.
func Classify(raw string) (domain.ClassifiedInput, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return domain.ClassifiedInput{}, apperr.NewInputRequired("input")
	}
	if len(input) > constants.InputLimits.MaxInputLength {
		return domain.ClassifiedInput{}, apperr.NewInputInvalid("input exceeds maximum length", "input", len(input))
	}

	if IsChannelID(input) {
		return domain.ClassifiedInput{Kind: domain.InputChannelID, ID: input}, nil
	}

	if m := videoURLPattern.FindStringSubmatch(input); m != nil {
		return domain.ClassifiedInput{Kind: domain.InputVideo, ID: m[1]}, nil
	}

	if IsVideoID(input) {
		return domain.ClassifiedInput{Kind: domain.InputVideo, ID: input}, nil
	}

	if m := channelURLPattern.FindStringSubmatch(input); m != nil {
		segment := m[1]
		if IsChannelID(segment) {
			return domain.ClassifiedInput{Kind: domain.InputChannelID, ID: segment}, nil
		}
		return domain.ClassifiedInput{Kind: domain.InputChannelHandle, Handle: strings.TrimPrefix(segment, "@")}, nil
	}

	if m := handlePattern.FindStringSubmatch(input); m != nil {
		return domain.ClassifiedInput{Kind: domain.InputChannelHandle, Handle: m[1]}, nil
	}

	return domain.ClassifiedInput{Kind: domain.InputUnresolved, Query: input}, nil
}

// ClassifyVideo accepts only inputs that name a single video (URL or bare
// id). Anything else is InputInvalid.
func ClassifyVideo(raw string) (string, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return "", apperr.NewInputRequired("video input")
	}

	if m := videoURLPattern.FindStringSubmatch(input); m != nil {
		return m[1], nil
	}
	if IsVideoID(input) {
		return input, nil
	}

	return "", apperr.NewInputInvalid(
		"video id must be exactly 11 characters of letters, numbers, hyphens and underscores",
		"video input", input)
}
