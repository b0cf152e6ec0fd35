package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/payment"
	"equiprent-backend/internal/repository"
	"equiprent-backend/internal/service"
	"equiprent-backend/internal/utils"
)

// BookingHandler drives the booking form and the mock payment flow
type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type quoteRequest struct {
	ItemID       int32 `json:"item_id"`
	DurationDays int32 `json:"duration_days"`
}

// HandleQuote handles POST /api/v1/bookings/quote. The booking form calls
// this whenever the duration changes to keep the displayed total live.
func (h *BookingHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	total, err := h.bookingSvc.QuoteTotal(r.Context(), req.ItemID, req.DurationDays)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"duration_days": req.DurationDays,
		"total":         utils.FormatCurrency(total),
	})
}

// HandleCreate handles POST /api/v1/bookings. On success the payment
// interface becomes active and the transaction awaits payment.
func (h *BookingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	tx, err := h.bookingSvc.CreateBooking(r.Context(), &req)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"state":         domain.PaymentStateAwaiting,
		"item_title":    tx.Item.Title,
		"duration_days": tx.DurationDays,
		"total":         utils.FormatCurrency(tx.TotalAmountPaise),
	})
}

// HandleSubmitPayment handles POST /api/v1/payments/submit
func (h *BookingHandler) HandleSubmitPayment(w http.ResponseWriter, r *http.Request) {
	if err := h.bookingSvc.SubmitPayment(r.Context()); err != nil {
		h.writePaymentError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{
		"state": domain.PaymentStateProcessing,
	})
}

// HandleCancelPayment handles POST /api/v1/payments/cancel
func (h *BookingHandler) HandleCancelPayment(w http.ResponseWriter, r *http.Request) {
	if err := h.bookingSvc.CancelPayment(r.Context()); err != nil {
		h.writePaymentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"state": domain.PaymentStateIdle,
	})
}

// HandlePaymentStatus handles GET /api/v1/payments/status
func (h *BookingHandler) HandlePaymentStatus(w http.ResponseWriter, r *http.Request) {
	state, conf := h.bookingSvc.PaymentStatus(r.Context())

	resp := map[string]any{"state": state}
	if conf != nil {
		resp["confirmation"] = map[string]any{
			"payment_id":    conf.PaymentID,
			"item_title":    conf.ItemTitle,
			"duration_days": conf.DurationDays,
			"total_paid":    utils.FormatCurrency(conf.TotalAmountPaise),
			"confirmed_on":  conf.ConfirmedOn,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) writeBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrItemNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"status": "not_found"})
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidPhone),
		errors.Is(err, service.ErrItemUnavailable),
		errors.Is(err, utils.ErrInvalidDuration):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "failed to process booking")
	}
}

func (h *BookingHandler) writePaymentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, payment.ErrNoPendingPayment),
		errors.Is(err, payment.ErrPaymentInProgress):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "failed to process payment")
	}
}
