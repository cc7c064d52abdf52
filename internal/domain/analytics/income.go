package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"ubjewellers/internal/domain/entity"
)

const (
	IncomeOrderChronological = "chronological"
	IncomeOrderLegacy        = "legacy"
)

// IncomeStat builds one month's income row. The total is rounded to two
// decimals and rendered as a string.
func IncomeStat(w Window, summary entity.SalesSummary) entity.IncomeStat {
	return entity.IncomeStat{
		MonthName:   w.MonthName(),
		Year:        w.Year(),
		TotalSales:  decimal.NewFromFloat(Finite(summary.TotalSells)).StringFixed(2),
		TotalOrders: summary.TotalOrders,
	}
}

// OrderIncomeStats arranges rows built from oldest-first windows. The legacy
// order sorts by month name and reverses the result, which is alphabetical
// rather than chronological; it exists for clients built against it.
func OrderIncomeStats(stats []entity.IncomeStat, order string) []entity.IncomeStat {
	out := make([]entity.IncomeStat, len(stats))
	copy(out, stats)

	if order != IncomeOrderLegacy {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MonthName < out[j].MonthName
	})
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
