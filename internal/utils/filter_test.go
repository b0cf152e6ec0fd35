package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"equiprent-backend/internal/domain"
)

func testCatalog() []domain.EquipmentItem {
	return []domain.EquipmentItem{
		{ID: 1, Title: "JCB 3DX Backhoe Loader", Category: domain.CategoryEarthmoving, PricePerDayPaise: 500000},
		{ID: 2, Title: "Tata Hitachi EX 200 Excavator", Category: domain.CategoryEarthmoving, PricePerDayPaise: 800000},
		{ID: 3, Title: "Escorts F15 Pick-n-Carry Crane", Category: domain.CategoryLifting, PricePerDayPaise: 650000},
		{ID: 4, Title: "Schwing Stetter CP18 Concrete Pump", Category: domain.CategoryConcrete, PricePerDayPaise: 650000},
		{ID: 5, Title: "Ajax Fiori Argo 2000 Self Loading Mixer", Category: domain.CategoryConcrete, PricePerDayPaise: 550000},
	}
}

func ids(items []domain.EquipmentItem) []int32 {
	out := make([]int32, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestFilterAndSortEquipment(t *testing.T) {
	t.Run("Empty criteria matches all in catalog order", func(t *testing.T) {
		got := FilterAndSortEquipment(testCatalog(), domain.FilterCriteria{
			Category: domain.CategoryAll,
			Sort:     domain.SortDefault,
		})
		assert.Equal(t, []int32{1, 2, 3, 4, 5}, ids(got))
	})

	t.Run("Query is case-insensitive substring on title", func(t *testing.T) {
		got := FilterAndSortEquipment(testCatalog(), domain.FilterCriteria{
			Query:    "hitachi",
			Category: domain.CategoryAll,
		})
		assert.Equal(t, []int32{2}, ids(got))
	})

	t.Run("Query with no match yields empty result", func(t *testing.T) {
		got := FilterAndSortEquipment(testCatalog(), domain.FilterCriteria{
			Query:    "bulldozer",
			Category: domain.CategoryAll,
		})
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("Category filter is exact", func(t *testing.T) {
		got := FilterAndSortEquipment(testCatalog(), domain.FilterCriteria{
			Category: string(domain.CategoryConcrete),
		})
		assert.Equal(t, []int32{4, 5}, ids(got))
	})

	t.Run("All sentinel disables category filter", func(t *testing.T) {
		got := FilterAndSortEquipment(testCatalog(), domain.FilterCriteria{
			Category: domain.CategoryAll,
		})
		assert.Len(t, got, 5)
	})

	t.Run("Price ascending is non-decreasing", func(t *testing.T) {
		got := FilterAndSortEquipment(testCatalog(), domain.FilterCriteria{
			Category: domain.CategoryAll,
			Sort:     domain.SortPriceAsc,
		})
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].PricePerDayPaise, got[i].PricePerDayPaise)
		}
	})

	t.Run("Price descending is non-increasing", func(t *testing.T) {
		got := FilterAndSortEquipment(testCatalog(), domain.FilterCriteria{
			Category: domain.CategoryAll,
			Sort:     domain.SortPriceDesc,
		})
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].PricePerDayPaise, got[i].PricePerDayPaise)
		}
	})

	t.Run("Equal prices keep catalog order on sort", func(t *testing.T) {
		// Items 3 and 4 share a price; 3 precedes 4 in the catalog.
		got := FilterAndSortEquipment(testCatalog(), domain.FilterCriteria{
			Category: domain.CategoryAll,
			Sort:     domain.SortPriceAsc,
		})
		assert.Equal(t, []int32{1, 5, 3, 4, 2}, ids(got))
	})

	t.Run("Result is a subsequence of the catalog", func(t *testing.T) {
		catalog := testCatalog()
		got := FilterAndSortEquipment(catalog, domain.FilterCriteria{
			Query:    "a",
			Category: domain.CategoryAll,
		})
		pos := 0
		for _, it := range got {
			found := false
			for ; pos < len(catalog); pos++ {
				if catalog[pos].ID == it.ID {
					found = true
					pos++
					break
				}
			}
			assert.True(t, found, "item %d not in catalog order", it.ID)
		}
	})

	t.Run("Input catalog is never mutated", func(t *testing.T) {
		catalog := testCatalog()
		FilterAndSortEquipment(catalog, domain.FilterCriteria{
			Category: domain.CategoryAll,
			Sort:     domain.SortPriceDesc,
		})
		assert.Equal(t, []int32{1, 2, 3, 4, 5}, ids(catalog))
	})

	t.Run("Query and category combine", func(t *testing.T) {
		got := FilterAndSortEquipment(testCatalog(), domain.FilterCriteria{
			Query:    "e",
			Category: string(domain.CategoryEarthmoving),
			Sort:     domain.SortPriceDesc,
		})
		assert.Equal(t, []int32{2, 1}, ids(got))
	})
}
