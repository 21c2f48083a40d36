package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"slotify/domain"
	"slotify/models"
	bookingSvc "slotify/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(domain.ValidationError{Msg: "bad"}))
	assert.Equal(t, http.StatusNotFound, statusFor(domain.NotFoundError{Resource: "slot"}))
	assert.Equal(t, http.StatusForbidden, statusFor(domain.ForbiddenError{Msg: "no"}))
	assert.Equal(t, http.StatusConflict, statusFor(domain.ConflictError{Resource: "slot"}))
	assert.Equal(t, http.StatusInternalServerError, statusFor(domain.InternalError{Err: errors.New("boom")}))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("untyped")))
}

type stubBookingService struct {
	err error
}

func (s *stubBookingService) CreateBooking(ctx context.Context, input bookingSvc.CreateBookingInput) (*models.BookingWithParticipants, error) {
	return nil, s.err
}

func (s *stubBookingService) CancelBooking(ctx context.Context, requesterID, bookingID string) (*models.BookingWithParticipants, error) {
	return nil, s.err
}

func (s *stubBookingService) CompleteBooking(ctx context.Context, requesterID, bookingID string) (*models.BookingWithParticipants, error) {
	return nil, s.err
}

func (s *stubBookingService) GetBookingByID(ctx context.Context, bookingID string) (*models.BookingWithParticipants, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingWithParticipants{Booking: models.Booking{ID: bookingID}}, nil
}

func (s *stubBookingService) GetMyBookings(ctx context.Context, userID, role string) ([]models.BookingWithParticipants, error) {
	return nil, s.err
}

func performGetBooking(svcErr error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewBookingHandler(&stubBookingService{err: svcErr})
	router.GET("/api/bookings/:id", h.GetBookingHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/b-1", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGetBookingHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, http.StatusOK},
		{"validation", domain.ValidationError{Msg: "bad"}, http.StatusBadRequest},
		{"not found", domain.NotFoundError{Resource: "booking"}, http.StatusNotFound},
		{"forbidden", domain.ForbiddenError{Msg: "no"}, http.StatusForbidden},
		{"conflict", domain.ConflictError{Resource: "booking"}, http.StatusConflict},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := performGetBooking(tc.err)
			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusInternalServerError {
				// Internal causes are not leaked to clients.
				assert.Contains(t, w.Body.String(), "Internal server error")
				assert.NotContains(t, w.Body.String(), "boom")
			}
		})
	}
}
