package http

import (
	"github.com/gorilla/mux"

	"equiprent-backend/internal/service"
)

// RegisterRoutes wires all API endpoints onto the router
func RegisterRoutes(router *mux.Router, catalogSvc service.CatalogService, bookingSvc service.BookingService, feedbackSvc service.FeedbackService) {
	equipment := NewEquipmentHandler(catalogSvc)
	booking := NewBookingHandler(bookingSvc)
	review := NewReviewHandler(feedbackSvc)

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/equipment", equipment.HandleList).Methods("GET")
	api.HandleFunc("/equipment/{id}", equipment.HandleGet).Methods("GET")
	api.HandleFunc("/categories", equipment.HandleCategories).Methods("GET")

	api.HandleFunc("/bookings/quote", booking.HandleQuote).Methods("POST")
	api.HandleFunc("/bookings", booking.HandleCreate).Methods("POST")
	api.HandleFunc("/payments/submit", booking.HandleSubmitPayment).Methods("POST")
	api.HandleFunc("/payments/cancel", booking.HandleCancelPayment).Methods("POST")
	api.HandleFunc("/payments/status", booking.HandlePaymentStatus).Methods("GET")

	api.HandleFunc("/reviews", review.HandleList).Methods("GET")
	api.HandleFunc("/reviews", review.HandleSubmit).Methods("POST")
}
