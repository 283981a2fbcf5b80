package domain

// RatioCap bounds the sales-to-production ratio. Sparse production data can
// produce absurd percentages; everything above the cap reads the same to the
// business, so it is clipped rather than dropped.
const RatioCap = 500.0

// SalesToProductionRatio returns sales/production as a percentage, clipped
// at RatioCap. Zero or negative production yields 0, never a division.
func SalesToProductionRatio(sales, production float64) float64 {
	if production <= 0 {
		return 0
	}
	ratio := sales / production * 100
	if ratio > RatioCap {
		return RatioCap
	}
	return ratio
}

// RatioPoint is one day of the ratio trend series. Dates present on either
// side (sales or production) appear; a missing side counts as 0.
type RatioPoint struct {
	RecordDate      string  `json:"record_date"`
	DailySales      float64 `json:"daily_sales"`
	DailyProduction float64 `json:"daily_production"`
	Ratio           float64 `json:"ratio"`
}

// RatioStats summarizes a per-day ratio series over a date range.
// AvgRatio is the ratio of totals, not the mean of daily ratios; MinRatio
// and MaxRatio come from the per-day series (production > 0 days only).
type RatioStats struct {
	AvgRatio        float64 `json:"avg_ratio"`
	MinRatio        float64 `json:"min_ratio"`
	MaxRatio        float64 `json:"max_ratio"`
	TotalDays       int     `json:"total_days"`
	TotalSales      float64 `json:"total_sales"`
	TotalProduction float64 `json:"total_production"`
}

// ComputeRatioStats folds a ratio series plus range totals into stats.
// Only points with production above zero contribute to min/max and the
// day count.
func ComputeRatioStats(points []RatioPoint, totalSales, totalProduction float64) RatioStats {
	stats := RatioStats{
		AvgRatio:        SalesToProductionRatio(totalSales, totalProduction),
		TotalSales:      totalSales,
		TotalProduction: totalProduction,
	}

	for _, p := range points {
		if p.DailyProduction <= 0 {
			continue
		}
		if stats.TotalDays == 0 || p.Ratio < stats.MinRatio {
			stats.MinRatio = p.Ratio
		}
		if stats.TotalDays == 0 || p.Ratio > stats.MaxRatio {
			stats.MaxRatio = p.Ratio
		}
		stats.TotalDays++
	}

	return stats
}
