package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"equiprent-backend/internal/service"
)

// ReviewHandler serves the feedback page
type ReviewHandler struct {
	feedbackSvc service.FeedbackService
}

func NewReviewHandler(feedbackSvc service.FeedbackService) *ReviewHandler {
	return &ReviewHandler{feedbackSvc: feedbackSvc}
}

type submitReviewRequest struct {
	Name    string `json:"name"`
	Rating  int32  `json:"rating"`
	Comment string `json:"comment"`
}

// HandleSubmit handles POST /api/v1/reviews
func (h *ReviewHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	review, err := h.feedbackSvc.SubmitReview(r.Context(), req.Name, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRating) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to store review")
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

// HandleList handles GET /api/v1/reviews, newest first
func (h *ReviewHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.feedbackSvc.ListReviews(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list reviews")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"reviews": reviews,
		"count":   len(reviews),
	})
}
