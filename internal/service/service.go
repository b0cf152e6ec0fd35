package service

import (
	"context"

	"equiprent-backend/internal/domain"
)

type CatalogService interface {
	ListEquipment(ctx context.Context, criteria domain.FilterCriteria) ([]domain.EquipmentItem, error)
	GetEquipment(ctx context.Context, id int32) (*domain.EquipmentItem, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type BookingService interface {
	// QuoteTotal recomputes the live total for the given item and duration.
	QuoteTotal(ctx context.Context, itemID, durationDays int32) (int64, error)
	// CreateBooking validates the request, builds the transaction and moves
	// the payment machine to AwaitingPayment.
	CreateBooking(ctx context.Context, req *domain.BookingRequest) (*domain.Transaction, error)
	SubmitPayment(ctx context.Context) error
	CancelPayment(ctx context.Context) error
	PaymentStatus(ctx context.Context) (domain.PaymentState, *domain.BookingConfirmation)
}

type FeedbackService interface {
	SubmitReview(ctx context.Context, name string, rating int32, comment string) (*domain.Review, error)
	ListReviews(ctx context.Context) ([]domain.Review, error)
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, email, name, itemTitle string, durationDays int32, totalPaise int64, paymentID string) error
}
