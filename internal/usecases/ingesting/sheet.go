package ingesting

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/qu18354531302/product-analytics-api/internal/domain"
)

// Adjustment sheets are named "价格表<month>月<day>号", optionally followed
// by a parenthesized sequence count. Both full-width and ASCII parentheses
// appear in real files.
var sheetNameRe = regexp.MustCompile(`^价格表(\d{1,2})月(\d{1,2})号(?:[（(](\d+)[）)])?$`)

// Each sheet holds three side-by-side copies of the same 9-column layout.
var templateOffsets = [3]int{0, 9, 18}

const (
	categoryOffset      = 0
	nameOffset          = 1
	specificationOffset = 2
	previousPriceOffset = 7
	currentPriceOffset  = 8
)

type sheetMeta struct {
	AdjustmentDate  string
	AdjustmentCount int
}

// parseSheetName extracts the adjustment date and sequence count from a
// sheet name. The year never appears in the file, it comes from config.
func parseSheetName(name string, year int) (sheetMeta, error) {
	m := sheetNameRe.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return sheetMeta{}, fmt.Errorf("sheet %q does not match the price-sheet naming pattern", name)
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return sheetMeta{}, fmt.Errorf("sheet %q encodes an invalid date", name)
	}

	count := 1
	if m[3] != "" {
		count, _ = strconv.Atoi(m[3])
	}

	return sheetMeta{
		AdjustmentDate:  fmt.Sprintf("%04d-%02d-%02d", year, month, day),
		AdjustmentCount: count,
	}, nil
}

// parseSheetRows walks every template of every data row and returns the
// valid adjustments. ProductID is left unset; the caller resolves it.
// Invalid rows are skipped silently per the ingestion contract.
func parseSheetRows(rows [][]string, meta sheetMeta) []*domain.PriceAdjustment {
	adjustments := make([]*domain.PriceAdjustment, 0)

	// First row is the header.
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		for _, offset := range templateOffsets {
			if adj := parseTemplateRow(row, offset, meta); adj != nil {
				adjustments = append(adjustments, adj)
			}
		}
	}

	return adjustments
}

func parseTemplateRow(row []string, offset int, meta sheetMeta) *domain.PriceAdjustment {
	name := strings.TrimSpace(cellAt(row, offset+nameOffset))
	if name == "" || strings.Contains(name, "均价") || strings.Contains(name, "品名") {
		return nil
	}

	currentPrice, ok := parsePrice(cellAt(row, offset+currentPriceOffset))
	if !ok || currentPrice.IsZero() {
		return nil
	}

	adj := &domain.PriceAdjustment{
		AdjustmentDate:  meta.AdjustmentDate,
		ProductName:     name,
		AdjustmentCount: meta.AdjustmentCount,
		CurrentPrice:    toFloat(currentPrice),
	}

	if spec := strings.TrimSpace(cellAt(row, offset+specificationOffset)); spec != "" {
		adj.Specification = &spec
	}
	if category := strings.TrimSpace(cellAt(row, offset+categoryOffset)); category != "" {
		adj.Category = &category
	}

	if prev, ok := parsePrice(cellAt(row, offset+previousPriceOffset)); ok {
		p := toFloat(prev)
		adj.PreviousPrice = &p
		adj.PriceDifference = toFloat(currentPrice.Sub(prev))
	}

	return adj
}

// cellAt tolerates the ragged rows excelize returns: trailing empty cells
// are simply absent from the slice.
func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parsePrice(cell string) (decimal.Decimal, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
