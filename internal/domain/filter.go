package domain

import (
	"fmt"
	"strings"
)

// Business rules for which products participate in analytics aggregates.
// Fresh products (name prefix 鲜) are excluded, except anything containing
// 凤肠. Two category literals mark non-core product lines.
const (
	FreshPrefix    = "鲜"
	FreshException = "凤肠"
)

// ExcludedCategories are the by-product / other-fresh category literals.
var ExcludedCategories = []string{"副产品", "生鲜品其他"}

// FilterMode selects how null/empty categories are treated.
type FilterMode int

const (
	// FilterRelaxed includes products with a null or empty category.
	// Default for inventory and trend reports.
	FilterRelaxed FilterMode = iota
	// FilterStrict requires a non-empty category outside the excluded set.
	// Used by the price-adjustment reports.
	FilterStrict
)

func (m FilterMode) String() string {
	if m == FilterStrict {
		return "strict"
	}
	return "relaxed"
}

// MatchesNameFilter reports whether a product name passes the fresh-product
// rule. The 凤肠 exception wins over the 鲜 prefix exclusion.
func MatchesNameFilter(name string) bool {
	if strings.Contains(name, FreshException) {
		return true
	}
	return !strings.HasPrefix(name, FreshPrefix)
}

// MatchesCategoryFilter reports whether a category passes the mode's rule.
// Relaxed mode treats a missing category as safe to include; strict mode
// rejects it. The business intent for null categories is an open gap, see
// DESIGN.md.
func MatchesCategoryFilter(category *string, mode FilterMode) bool {
	if category == nil || *category == "" {
		return mode == FilterRelaxed
	}
	for _, excluded := range ExcludedCategories {
		if *category == excluded {
			return false
		}
	}
	return true
}

// MatchesFilter is the full product predicate: name rule AND category rule.
func MatchesFilter(name string, category *string, mode FilterMode) bool {
	return MatchesNameFilter(name) && MatchesCategoryFilter(category, mode)
}

// FilterColumns binds the predicate to a row shape by naming the columns
// that hold the product name and category. The same rules apply to
// product-joined metric rows (p.product_name, p.category) and to
// denormalized price-adjustment rows (pa.product_name, pa.category).
type FilterColumns struct {
	Name     string
	Category string
}

// NameClause renders the fresh-product rule as a SQL fragment. All values
// are compile-time literals, so the fragment is safe to embed both in WHERE
// conditions and inside SUM(CASE WHEN ...) column expressions.
func (c FilterColumns) NameClause() string {
	return fmt.Sprintf(
		"(%s NOT LIKE '%s%%' OR %s LIKE '%%%s%%')",
		c.Name, FreshPrefix, c.Name, FreshException,
	)
}

// CategoryClause renders the category rule for the given mode.
func (c FilterColumns) CategoryClause(mode FilterMode) string {
	quoted := make([]string, len(ExcludedCategories))
	for i, cat := range ExcludedCategories {
		quoted[i] = "'" + cat + "'"
	}
	in := strings.Join(quoted, ", ")

	if mode == FilterStrict {
		return fmt.Sprintf(
			"(%s IS NOT NULL AND %s != '' AND %s NOT IN (%s))",
			c.Category, c.Category, c.Category, in,
		)
	}
	return fmt.Sprintf(
		"(%s IS NULL OR %s = '' OR %s NOT IN (%s))",
		c.Category, c.Category, c.Category, in,
	)
}

// Clause renders the complete predicate (name AND category) for the mode.
func (c FilterColumns) Clause(mode FilterMode) string {
	return c.NameClause() + " AND " + c.CategoryClause(mode)
}
