package repository

import (
	"context"
	"errors"

	"equiprent-backend/internal/domain"
)

// ErrItemNotFound is returned when an equipment id has no catalog entry.
// Callers surface it as a not-found view, not a fault.
var ErrItemNotFound = errors.New("equipment item not found")

type EquipmentRepository interface {
	All(ctx context.Context) ([]domain.EquipmentItem, error)
	GetByID(ctx context.Context, id int32) (*domain.EquipmentItem, error)
	// Loaded distinguishes "catalog loaded but empty" from "never loaded".
	Loaded() bool
	Reload(ctx context.Context) error
}

type ReviewRepository interface {
	// Prepend stores the review at the front of the persisted list.
	Prepend(ctx context.Context, review *domain.Review) error
	List(ctx context.Context) ([]domain.Review, error)
}
