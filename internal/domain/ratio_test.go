package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalesToProductionRatio(t *testing.T) {
	tests := []struct {
		name       string
		sales      float64
		production float64
		expected   float64
	}{
		{
			name:       "zero production yields zero, not a division",
			sales:      100,
			production: 0,
			expected:   0,
		},
		{
			name:       "negative production yields zero",
			sales:      100,
			production: -5,
			expected:   0,
		},
		{
			name:       "regular ratio",
			sales:      50,
			production: 100,
			expected:   50,
		},
		{
			name:       "ratio above cap is clipped to 500",
			sales:      600,
			production: 100,
			expected:   500,
		},
		{
			name:       "ratio exactly at cap",
			sales:      500,
			production: 100,
			expected:   500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SalesToProductionRatio(tt.sales, tt.production))
		})
	}
}

func TestSalesToProductionRatio_RangeAggregate(t *testing.T) {
	// Summary scenario: ratio of totals, not clipped when under the cap.
	ratio := SalesToProductionRatio(12500.5, 13200.8)
	assert.InDelta(t, 94.7, ratio, 0.05)
}

func TestComputeRatioStats(t *testing.T) {
	points := []RatioPoint{
		{RecordDate: "2025-06-01", DailySales: 50, DailyProduction: 100, Ratio: 50},
		{RecordDate: "2025-06-02", DailySales: 600, DailyProduction: 100, Ratio: 500},
		// A day with sales but no production: contributes to nothing here.
		{RecordDate: "2025-06-03", DailySales: 30, DailyProduction: 0, Ratio: 0},
	}

	stats := ComputeRatioStats(points, 680, 200)

	// Average is the ratio of totals, clipped: 680/200*100 = 340.
	assert.Equal(t, 340.0, stats.AvgRatio)
	assert.Equal(t, 50.0, stats.MinRatio)
	assert.Equal(t, 500.0, stats.MaxRatio)
	assert.Equal(t, 2, stats.TotalDays)
	assert.Equal(t, 680.0, stats.TotalSales)
	assert.Equal(t, 200.0, stats.TotalProduction)
}

func TestComputeRatioStats_Empty(t *testing.T) {
	stats := ComputeRatioStats(nil, 0, 0)

	assert.Equal(t, 0.0, stats.AvgRatio)
	assert.Equal(t, 0.0, stats.MinRatio)
	assert.Equal(t, 0.0, stats.MaxRatio)
	assert.Equal(t, 0, stats.TotalDays)
}
