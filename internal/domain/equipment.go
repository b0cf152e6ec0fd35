package domain

type Category string

const (
	CategoryEarthmoving Category = "earthmoving"
	CategoryLifting     Category = "lifting"
	CategoryConcrete    Category = "concrete"
	CategoryCompaction  Category = "compaction"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

type SortOrder string

const (
	SortDefault   SortOrder = "default"
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
)

// EquipmentItem is one rentable machine in the catalog. Items are immutable
// after the catalog is loaded; the catalog store owns them exclusively.
type EquipmentItem struct {
	ID               int32    `json:"id"`
	Title            string   `json:"title"`
	Category         Category `json:"category"`
	Specs            string   `json:"specs"`
	PricePerDayPaise int64    `json:"price_per_day_paise"`
	Description      string   `json:"description"`
	Image            string   `json:"image"`
	Available        bool     `json:"available"`
}

// FilterCriteria is the transient query/category/sort triple controlling a
// listing view. Reconstructed per request, never persisted.
type FilterCriteria struct {
	Query    string
	Category string
	Sort     SortOrder
}
