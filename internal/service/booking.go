package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/payment"
	"equiprent-backend/internal/repository"
	"equiprent-backend/internal/utils"
)

var (
	// ErrInvalidEmail is returned when the contact email does not look like
	// local-part@domain.tld.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrInvalidPhone is returned when the contact phone is not a 10 digit
	// Indian mobile number starting with 6-9.
	ErrInvalidPhone = errors.New("invalid phone number: expected 10 digits starting with 6, 7, 8 or 9")
	// ErrItemUnavailable is returned when booking an item that is rented out.
	ErrItemUnavailable = errors.New("equipment is currently rented out")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

type bookingService struct {
	equipmentRepo repository.EquipmentRepository
	machine       *payment.Machine
}

func NewBookingService(equipmentRepo repository.EquipmentRepository, machine *payment.Machine) BookingService {
	return &bookingService{
		equipmentRepo: equipmentRepo,
		machine:       machine,
	}
}

func (s *bookingService) QuoteTotal(ctx context.Context, itemID, durationDays int32) (int64, error) {
	item, err := s.equipmentRepo.GetByID(ctx, itemID)
	if err != nil {
		return 0, err
	}
	return utils.ComputeRentalTotal(item.PricePerDayPaise, durationDays)
}

// CreateBooking validates the booking request and, on success, stores the
// resulting transaction as the single pending payment. Validation failures
// block progress and change no state.
func (s *bookingService) CreateBooking(ctx context.Context, req *domain.BookingRequest) (*domain.Transaction, error) {
	item, err := s.equipmentRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}

	total, err := utils.ComputeRentalTotal(item.PricePerDayPaise, req.DurationDays)
	if err != nil {
		return nil, err
	}

	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return nil, ErrInvalidEmail
	}
	if !phonePattern.MatchString(strings.TrimSpace(req.Phone)) {
		return nil, ErrInvalidPhone
	}

	tx := &domain.Transaction{
		Item:             item,
		CustomerName:     req.CustomerName,
		Email:            strings.TrimSpace(req.Email),
		DurationDays:     req.DurationDays,
		TotalAmountPaise: total,
	}

	s.machine.Begin(tx)
	return tx, nil
}

func (s *bookingService) SubmitPayment(ctx context.Context) error {
	return s.machine.Submit()
}

func (s *bookingService) CancelPayment(ctx context.Context) error {
	return s.machine.Cancel()
}

func (s *bookingService) PaymentStatus(ctx context.Context) (domain.PaymentState, *domain.BookingConfirmation) {
	return s.machine.State()
}
