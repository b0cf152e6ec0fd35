package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/payment"
	"equiprent-backend/internal/repository"
	"equiprent-backend/internal/utils"
)

func newTestMachine() *payment.Machine {
	return payment.NewMachine(0,
		payment.WithScheduler(func(d time.Duration, fn func()) { fn() }),
		payment.WithIDGenerator(func() string { return "MOCK_TEST" }),
	)
}

func availableItem() *domain.EquipmentItem {
	return &domain.EquipmentItem{
		ID:               1,
		Title:            "JCB 3DX Backhoe Loader",
		Category:         domain.CategoryEarthmoving,
		PricePerDayPaise: 500000,
		Available:        true,
	}
}

func validRequest() *domain.BookingRequest {
	return &domain.BookingRequest{
		ItemID:       1,
		CustomerName: "Asha",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		DurationDays: 3,
	}
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		machine := newTestMachine()
		svc := NewBookingService(equipmentRepo, machine)

		equipmentRepo.On("GetByID", ctx, int32(1)).Return(availableItem(), nil)

		tx, err := svc.CreateBooking(ctx, validRequest())
		require.NoError(t, err)
		require.NotNil(t, tx)
		assert.Equal(t, int64(1500000), tx.TotalAmountPaise)
		assert.Equal(t, tx.Item.PricePerDayPaise*int64(tx.DurationDays), tx.TotalAmountPaise)

		state, _ := svc.PaymentStatus(ctx)
		assert.Equal(t, domain.PaymentStateAwaiting, state)
	})

	t.Run("Unknown item", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewBookingService(equipmentRepo, newTestMachine())

		equipmentRepo.On("GetByID", ctx, int32(99)).Return(nil, repository.ErrItemNotFound)

		req := validRequest()
		req.ItemID = 99
		tx, err := svc.CreateBooking(ctx, req)
		assert.ErrorIs(t, err, repository.ErrItemNotFound)
		assert.Nil(t, tx)
	})

	t.Run("Rented out item", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewBookingService(equipmentRepo, newTestMachine())

		item := availableItem()
		item.Available = false
		equipmentRepo.On("GetByID", ctx, int32(1)).Return(item, nil)

		tx, err := svc.CreateBooking(ctx, validRequest())
		assert.ErrorIs(t, err, ErrItemUnavailable)
		assert.Nil(t, tx)
	})

	t.Run("Email without at sign", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		machine := newTestMachine()
		svc := NewBookingService(equipmentRepo, machine)
		equipmentRepo.On("GetByID", ctx, int32(1)).Return(availableItem(), nil)

		req := validRequest()
		req.Email = "a.b.com"
		_, err := svc.CreateBooking(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidEmail)

		// A failed validation changes no payment state.
		state, _ := svc.PaymentStatus(ctx)
		assert.Equal(t, domain.PaymentStateIdle, state)
	})

	t.Run("Email without dotted domain", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewBookingService(equipmentRepo, newTestMachine())
		equipmentRepo.On("GetByID", ctx, int32(1)).Return(availableItem(), nil)

		req := validRequest()
		req.Email = "a@b"
		_, err := svc.CreateBooking(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("Valid short email", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewBookingService(equipmentRepo, newTestMachine())
		equipmentRepo.On("GetByID", ctx, int32(1)).Return(availableItem(), nil)

		req := validRequest()
		req.Email = "a@b.com"
		_, err := svc.CreateBooking(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("Phone with wrong leading digit", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewBookingService(equipmentRepo, newTestMachine())
		equipmentRepo.On("GetByID", ctx, int32(1)).Return(availableItem(), nil)

		req := validRequest()
		req.Phone = "1234567890"
		_, err := svc.CreateBooking(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("Phone with nine digits", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewBookingService(equipmentRepo, newTestMachine())
		equipmentRepo.On("GetByID", ctx, int32(1)).Return(availableItem(), nil)

		req := validRequest()
		req.Phone = "987654321"
		_, err := svc.CreateBooking(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("Zero duration", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewBookingService(equipmentRepo, newTestMachine())
		equipmentRepo.On("GetByID", ctx, int32(1)).Return(availableItem(), nil)

		req := validRequest()
		req.DurationDays = 0
		_, err := svc.CreateBooking(ctx, req)
		assert.ErrorIs(t, err, utils.ErrInvalidDuration)
	})
}

func TestBookingService_QuoteTotal(t *testing.T) {
	ctx := context.Background()

	t.Run("Live total follows duration", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewBookingService(equipmentRepo, newTestMachine())
		equipmentRepo.On("GetByID", ctx, int32(1)).Return(availableItem(), nil)

		total, err := svc.QuoteTotal(ctx, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(1500000), total)

		total, err = svc.QuoteTotal(ctx, 1, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(3500000), total)
	})

	t.Run("Duration below one rejected", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewBookingService(equipmentRepo, newTestMachine())
		equipmentRepo.On("GetByID", ctx, int32(1)).Return(availableItem(), nil)

		_, err := svc.QuoteTotal(ctx, 1, 0)
		assert.ErrorIs(t, err, utils.ErrInvalidDuration)
	})
}

func TestBookingService_PaymentFlow(t *testing.T) {
	ctx := context.Background()

	equipmentRepo := new(MockEquipmentRepo)
	machine := newTestMachine()
	svc := NewBookingService(equipmentRepo, machine)
	equipmentRepo.On("GetByID", ctx, int32(1)).Return(availableItem(), nil)

	_, err := svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.SubmitPayment(ctx))

	state, conf := svc.PaymentStatus(ctx)
	assert.Equal(t, domain.PaymentStateConfirmed, state)
	require.NotNil(t, conf)
	assert.Equal(t, "MOCK_TEST", conf.PaymentID)
	assert.Equal(t, int64(1500000), conf.TotalAmountPaise)
}
