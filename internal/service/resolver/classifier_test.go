package resolver

import (
	"strings"
	"testing"

	"github.com/arim/yt-utility-go/internal/domain"
	"github.com/arim/yt-utility-go/pkg/apperr"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.ClassifiedInput
	}{
		{
			name:  "canonical channel id",
			input: "UCxxxxxxxxxxxxxxxxxxxxxx",
			want:  domain.ClassifiedInput{Kind: domain.InputChannelID, ID: "UCxxxxxxxxxxxxxxxxxxxxxx"},
		},
		{
			name:  "watch url",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want:  domain.ClassifiedInput{Kind: domain.InputVideo, ID: "dQw4w9WgXcQ"},
		},
		{
			name:  "short url",
			input: "https://youtu.be/dQw4w9WgXcQ",
			want:  domain.ClassifiedInput{Kind: domain.InputVideo, ID: "dQw4w9WgXcQ"},
		},
		{
			name:  "embed url",
			input: "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want:  domain.ClassifiedInput{Kind: domain.InputVideo, ID: "dQw4w9WgXcQ"},
		},
		{
			name:  "bare video id",
			input: "dQw4w9WgXcQ",
			want:  domain.ClassifiedInput{Kind: domain.InputVideo, ID: "dQw4w9WgXcQ"},
		},
		{
			name:  "channel url with id",
			input: "https://www.youtube.com/channel/UCxxxxxxxxxxxxxxxxxxxxxx",
			want:  domain.ClassifiedInput{Kind: domain.InputChannelID, ID: "UCxxxxxxxxxxxxxxxxxxxxxx"},
		},
		{
			name:  "handle url",
			input: "https://www.youtube.com/@SomeCreator",
			want:  domain.ClassifiedInput{Kind: domain.InputChannelHandle, Handle: "SomeCreator"},
		},
		{
			name:  "legacy custom url",
			input: "https://www.youtube.com/c/SomeCreator",
			want:  domain.ClassifiedInput{Kind: domain.InputChannelHandle, Handle: "SomeCreator"},
		},
		{
			name:  "legacy user url",
			input: "https://www.youtube.com/user/somecreator",
			want:  domain.ClassifiedInput{Kind: domain.InputChannelHandle, Handle: "somecreator"},
		},
		{
			name:  "bare handle",
			input: "@SomeCreator",
			want:  domain.ClassifiedInput{Kind: domain.InputChannelHandle, Handle: "SomeCreator"},
		},
		{
			name:  "free text query",
			input: "cooking with dog",
			want:  domain.ClassifiedInput{Kind: domain.InputUnresolved, Query: "cooking with dog"},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  dQw4w9WgXcQ  ",
			want:  domain.ClassifiedInput{Kind: domain.InputVideo, ID: "dQw4w9WgXcQ"},
		},
		{
			name:  "url with query params after handle",
			input: "https://www.youtube.com/@SomeCreator?sub_confirmation=1",
			want:  domain.ClassifiedInput{Kind: domain.InputChannelHandle, Handle: "SomeCreator"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.input)
			if err != nil {
				t.Fatalf("Classify(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassifyRejectsEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   "} {
		_, err := Classify(input)
		if !apperr.Is(err, apperr.CodeInputRequired) {
			t.Errorf("Classify(%q) error = %v, want INPUT_REQUIRED", input, err)
		}
	}
}

func TestClassifyRejectsOversizedInput(t *testing.T) {
	_, err := Classify(strings.Repeat("a", 2000))
	if !apperr.Is(err, apperr.CodeInputInvalid) {
		t.Errorf("oversized input error = %v, want INPUT_INVALID", err)
	}
}

func TestIsChannelID(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"UCxxxxxxxxxxxxxxxxxxxxxx", true},
		{"UC1234567890abcdefghij_-", true},
		{"UCtooshort", false},
		{"XXxxxxxxxxxxxxxxxxxxxxxx", false},
		{"UCxxxxxxxxxxxxxxxxxxxxxxx", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsChannelID(tt.input); got != tt.want {
			t.Errorf("IsChannelID(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestClassifyVideo(t *testing.T) {
	id, err := ClassifyVideo("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if err != nil || id != "dQw4w9WgXcQ" {
		t.Errorf("ClassifyVideo(url) = %q, %v", id, err)
	}

	id, err = ClassifyVideo("dQw4w9WgXcQ")
	if err != nil || id != "dQw4w9WgXcQ" {
		t.Errorf("ClassifyVideo(id) = %q, %v", id, err)
	}

	if _, err := ClassifyVideo("not a video"); !apperr.Is(err, apperr.CodeInputInvalid) {
		t.Errorf("ClassifyVideo(text) error = %v, want INPUT_INVALID", err)
	}

	if _, err := ClassifyVideo(""); !apperr.Is(err, apperr.CodeInputRequired) {
		t.Errorf("ClassifyVideo(\"\") error = %v, want INPUT_REQUIRED", err)
	}
}
