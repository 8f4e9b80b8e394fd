package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateEarnings(t *testing.T) {
	e := EstimateEarnings(1000000)
	assert.Equal(t, 1500.0, e.Low)
	assert.Equal(t, 4000.0, e.High)

	e = EstimateEarnings(0)
	assert.Equal(t, 0.0, e.Low)
	assert.Equal(t, 0.0, e.High)

	// Sub-thousand counts still produce a fractional estimate.
	e = EstimateEarnings(500)
	assert.Equal(t, 0.75, e.Low)
	assert.Equal(t, 2.0, e.High)
}

func TestEngagementFor(t *testing.T) {
	e := EngagementFor(100000, 5000, 250)
	assert.Equal(t, 50.0, e.LikesPer1000Views)
	assert.Equal(t, 2.5, e.CommentsPer1000Views)
	assert.Equal(t, 20.0, e.LikeToCommentRatio)
}

func TestEngagementForZeroDenominators(t *testing.T) {
	e := EngagementFor(0, 5000, 250)
	assert.Equal(t, 0.0, e.LikesPer1000Views)
	assert.Equal(t, 0.0, e.CommentsPer1000Views)
	assert.Equal(t, 20.0, e.LikeToCommentRatio)

	e = EngagementFor(100000, 5000, 0)
	assert.Equal(t, 50.0, e.LikesPer1000Views)
	assert.Equal(t, 0.0, e.LikeToCommentRatio)

	e = EngagementFor(0, 0, 0)
	assert.Equal(t, Engagement{}, e)
}
