package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubjewellers/internal/domain/entity"
)

func TestFormatMonthlySalesEmpty(t *testing.T) {
	for _, slots := range []int{LegacySalesSlots, DefaultSalesSlots} {
		series := FormatMonthlySales(nil, slots)
		require.Len(t, series, slots)

		assert.Equal(t, "January", series[0].MonthName)
		assert.Equal(t, "May", series[4].MonthName)
		for _, s := range series {
			assert.Zero(t, s.TotalSales)
		}
	}
}

func TestFormatMonthlySalesPlacesRecord(t *testing.T) {
	series := FormatMonthlySales([]entity.MonthlySalesRecord{{Month: 3, TotalSales: 500}}, DefaultSalesSlots)

	require.Len(t, series, 6)
	assert.Equal(t, entity.MonthlySales{MonthName: "March", TotalSales: 500}, series[2])
	for i, s := range series {
		if i != 2 {
			assert.Zero(t, s.TotalSales, s.MonthName)
		}
	}
}

func TestFormatMonthlySalesDropsOutOfRange(t *testing.T) {
	records := []entity.MonthlySalesRecord{
		{Month: 6, TotalSales: 10},
		{Month: 11, TotalSales: 99},
		{Month: 0, TotalSales: 7},
		{Month: 1, TotalSales: 1.5},
	}

	legacy := FormatMonthlySales(records, LegacySalesSlots)
	require.Len(t, legacy, 5)
	assert.Equal(t, 1.5, legacy[0].TotalSales)
	for _, s := range legacy[1:] {
		assert.Zero(t, s.TotalSales)
	}

	current := FormatMonthlySales(records, DefaultSalesSlots)
	assert.Equal(t, 10.0, current[5].TotalSales)
	assert.Equal(t, "June", current[5].MonthName)
}
