package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1,000", FormatCount(1000))
	assert.Equal(t, "12,345", FormatCount(12345))
	assert.Equal(t, "1,234,567", FormatCount(1234567))
	assert.Equal(t, "100,000,000", FormatCount(100000000))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0.00", FormatMoney(0))
	assert.Equal(t, "1,500.00", FormatMoney(1500))
	assert.Equal(t, "4,000.00", FormatMoney(4000))
	assert.Equal(t, "1,234,567.89", FormatMoney(1234567.89))
	assert.Equal(t, "0.38", FormatMoney(0.375))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2019, time.March, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "March 7, 2019", FormatDate(ts))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "exact", TruncateString("exact", 5))
	assert.Equal(t, "abc...", TruncateString("abcdef", 3))

	// Rune-based, so multi-byte text never splits mid-character.
	assert.Equal(t, "한국어...", TruncateString("한국어 텍스트", 3))
}
