package web

import "testing"

func TestRateLimiterBudgetPerIP(t *testing.T) {
	rl := newRateLimiter(2)

	if !rl.allow("10.0.0.1") || !rl.allow("10.0.0.1") {
		t.Fatal("requests within the budget were denied")
	}
	if rl.allow("10.0.0.1") {
		t.Error("request over the budget was allowed")
	}

	// Separate clients hold separate buckets.
	if !rl.allow("10.0.0.2") {
		t.Error("fresh client was denied")
	}
}
