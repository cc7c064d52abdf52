package analytics

import (
	"time"

	"ubjewellers/internal/domain/entity"
)

const (
	LegacySalesSlots  = 5
	DefaultSalesSlots = 6
)

// FormatMonthlySales lays sparse per-month totals onto a fixed calendar
// series starting at January. Records whose month falls outside the series
// are dropped.
func FormatMonthlySales(records []entity.MonthlySalesRecord, slots int) []entity.MonthlySales {
	if slots < 0 {
		slots = 0
	}
	if slots > 12 {
		slots = 12
	}

	series := make([]entity.MonthlySales, slots)
	for i := range series {
		series[i] = entity.MonthlySales{MonthName: time.Month(i + 1).String()}
	}

	for _, r := range records {
		idx := r.Month - 1
		if idx < 0 || idx >= slots {
			continue
		}
		series[idx] = entity.MonthlySales{
			MonthName:  time.Month(r.Month).String(),
			TotalSales: Finite(r.TotalSales),
		}
	}

	return series
}
