package utils

import (
	"sort"
	"strings"

	"equiprent-backend/internal/domain"
)

// FilterAndSortEquipment maps (catalog, criteria) to the ordered sequence of
// matching items. The result is always a fresh slice: sorting the filtered
// view must never permute the master catalog.
//
// Query matching is a case-insensitive substring test against the title only;
// an empty query matches everything. Category is an exact match unless the
// "all" sentinel is given. Price sorts are stable, so equal-price items keep
// their catalog order; the default sort preserves catalog order outright.
func FilterAndSortEquipment(catalog []domain.EquipmentItem, c domain.FilterCriteria) []domain.EquipmentItem {
	query := strings.ToLower(strings.TrimSpace(c.Query))

	filtered := make([]domain.EquipmentItem, 0, len(catalog))
	for _, item := range catalog {
		if query != "" && !strings.Contains(strings.ToLower(item.Title), query) {
			continue
		}
		if c.Category != "" && c.Category != domain.CategoryAll && string(item.Category) != c.Category {
			continue
		}
		filtered = append(filtered, item)
	}

	switch c.Sort {
	case domain.SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PricePerDayPaise < filtered[j].PricePerDayPaise
		})
	case domain.SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PricePerDayPaise > filtered[j].PricePerDayPaise
		})
	}

	return filtered
}
