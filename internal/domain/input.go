package domain

// InputKind tags the result of classifying free-text user input.
type InputKind string

const (
	InputVideo         InputKind = "video"
	InputChannelID     InputKind = "channel_id"
	InputChannelHandle InputKind = "channel_handle"
	InputUnresolved    InputKind = "unresolved"
)

// ClassifiedInput is the outcome of running the ordered classification rules
// over a raw string. Exactly one of ID, Handle, Query is populated depending
// on Kind.
type ClassifiedInput struct {
	Kind   InputKind
	ID     string // video id or canonical channel id
	Handle string // handle or custom-URL segment pending resolution
	Query  string // free-text search term
}
