package domain

// Signal is the tri-state outcome of a best-effort probe against scraped
// markup. Absent means the page was checked and the marker was not there;
// Unknown means the check itself could not run (fetch failed, markup moved).
type Signal string

const (
	SignalConfirmed Signal = "confirmed"
	SignalAbsent    Signal = "absent"
	SignalUnknown   Signal = "unknown"
)

// Found reports a confirmed signal.
func (s Signal) Found() bool {
	return s == SignalConfirmed
}

// Checked reports whether the probe actually ran.
func (s Signal) Checked() bool {
	return s != SignalUnknown
}
