package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
	"equiprent-backend/internal/service"
	"equiprent-backend/internal/utils"
)

// EquipmentHandler serves the listings and detail views
type EquipmentHandler struct {
	catalogSvc service.CatalogService
}

func NewEquipmentHandler(catalogSvc service.CatalogService) *EquipmentHandler {
	return &EquipmentHandler{catalogSvc: catalogSvc}
}

// equipmentCard is the listing projection of a catalog item
type equipmentCard struct {
	ID          int32  `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Specs       string `json:"specs"`
	PricePerDay string `json:"price_per_day"`
	Image       string `json:"image"`
	Available   bool   `json:"available"`
}

// equipmentDetail adds the fields shown on the details page
type equipmentDetail struct {
	equipmentCard
	Description string `json:"description"`
}

func toCard(item domain.EquipmentItem) equipmentCard {
	return equipmentCard{
		ID:          item.ID,
		Title:       item.Title,
		Category:    string(item.Category),
		Specs:       item.Specs,
		PricePerDay: utils.FormatCurrency(item.PricePerDayPaise),
		Image:       item.Image,
		Available:   item.Available,
	}
}

// HandleList handles GET /api/v1/equipment?query=&category=&sort=
func (h *EquipmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := domain.FilterCriteria{
		Query:    q.Get("query"),
		Category: q.Get("category"),
		Sort:     domain.SortOrder(q.Get("sort")),
	}
	if criteria.Category == "" {
		criteria.Category = domain.CategoryAll
	}
	if criteria.Sort == "" {
		criteria.Sort = domain.SortDefault
	}

	items, err := h.catalogSvc.ListEquipment(r.Context(), criteria)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list equipment")
		return
	}

	cards := make([]equipmentCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, toCard(item))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": cards,
		"count": len(cards),
	})
}

// HandleGet handles GET /api/v1/equipment/{id}. An absent or unmatched id is
// a not-found presentation state, not a fault.
func (h *EquipmentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"status": "not_found"})
		return
	}

	item, err := h.catalogSvc.GetEquipment(r.Context(), int32(id))
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"status": "not_found"})
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load equipment")
		return
	}

	writeJSON(w, http.StatusOK, equipmentDetail{
		equipmentCard: toCard(*item),
		Description:   item.Description,
	})
}

// HandleCategories handles GET /api/v1/categories
func (h *EquipmentHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogSvc.ListCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}
