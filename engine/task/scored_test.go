package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityBand(t *testing.T) {
	t.Run("Should classify boundaries correctly", func(t *testing.T) {
		assert.Equal(t, BandHigh, PriorityBand(0.7))
		assert.Equal(t, BandMedium, PriorityBand(0.6999))
		assert.Equal(t, BandMedium, PriorityBand(0.5))
		assert.Equal(t, BandLow, PriorityBand(0.4999))
	})
	t.Run("Should stay total outside the nominal range", func(t *testing.T) {
		assert.Equal(t, BandLow, PriorityBand(-0.3))
		assert.Equal(t, BandHigh, PriorityBand(1.5))
	})
}

func TestFormatters(t *testing.T) {
	t.Run("Should render scores without forced precision", func(t *testing.T) {
		assert.Equal(t, "0.82", FormatScore(0.82))
		assert.Equal(t, "0.5", FormatScore(0.5))
		assert.Equal(t, "1", FormatScore(1))
	})
	t.Run("Should render a dash for unknown hours", func(t *testing.T) {
		assert.Equal(t, "-", FormatHours(nil))
		hours := 2.5
		assert.Equal(t, "2.5", FormatHours(&hours))
	})
	t.Run("Should render a dash for omitted importance", func(t *testing.T) {
		assert.Equal(t, "-", FormatImportance(0))
		assert.Equal(t, "7", FormatImportance(7))
	})
}
