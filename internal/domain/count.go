package domain

// Count is a non-negative statistic that may be absent from the upstream
// payload (hidden subscriber counts, disabled like counters). A missing count
// is distinct from zero: display layers render it as hidden, while arithmetic
// callers that treat missing as zero use Or(0).
type Count struct {
	Value uint64 `json:"value"`
	Known bool   `json:"known"`
}

// KnownCount wraps a value that was present in the payload.
func KnownCount(v uint64) Count {
	return Count{Value: v, Known: true}
}

// HiddenCount is the explicit "unknown/hidden" sentinel.
func HiddenCount() Count {
	return Count{}
}

// Or returns the value, or fallback when the count is hidden.
func (c Count) Or(fallback uint64) uint64 {
	if !c.Known {
		return fallback
	}
	return c.Value
}
