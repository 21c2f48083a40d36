package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"slotify/domain"
	"slotify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

const testSecret = "test-key-secret"

func sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

type fakePaymentRepo struct {
	byOrder map[string]*models.BookingPayment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{byOrder: make(map[string]*models.BookingPayment)}
}

func (r *fakePaymentRepo) Upsert(ctx context.Context, p *models.BookingPayment) error {
	// Keyed by booking: a re-created order replaces the previous one.
	for orderID, existing := range r.byOrder {
		if existing.BookingID == p.BookingID {
			delete(r.byOrder, orderID)
		}
	}
	cp := *p
	r.byOrder[p.OrderID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*models.BookingPayment, error) {
	p, ok := r.byOrder[orderID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) MarkCompleted(ctx context.Context, orderID, paymentID, signature string, paidAt time.Time) (*models.BookingPayment, error) {
	p, ok := r.byOrder[orderID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	p.PaymentID = paymentID
	p.Signature = signature
	p.Status = models.PaymentCompleted
	p.PaidAt = &paidAt
	cp := *p
	return &cp, nil
}

// fakeBookingStore implements just enough of the booking repository for the
// payment cascade.
type fakeBookingStore struct {
	bookings  map[string]*models.Booking
	completed map[string]int // cascade invocation counts
}

func newFakeBookingStore(bookings ...*models.Booking) *fakeBookingStore {
	s := &fakeBookingStore{bookings: make(map[string]*models.Booking), completed: make(map[string]int)}
	for _, b := range bookings {
		cp := *b
		s.bookings[b.ID] = &cp
	}
	return s
}

func (s *fakeBookingStore) Reserve(ctx context.Context, booking *models.Booking) error { return nil }
func (s *fakeBookingStore) Cancel(ctx context.Context, bookingID, slotID string) error { return nil }
func (s *fakeBookingStore) Complete(ctx context.Context, bookingID, slotID string) error {
	return nil
}

func (s *fakeBookingStore) CompleteFromPayment(ctx context.Context, bookingID string) error {
	b, ok := s.bookings[bookingID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	s.completed[bookingID]++
	if b.Status != models.BookingCompleted {
		b.Status = models.BookingCompleted
		b.PaymentStatus = models.PaymentCompleted
	}
	return nil
}

func (s *fakeBookingStore) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *b
	return &cp, nil
}

func (s *fakeBookingStore) ListByParticipant(ctx context.Context, userID, role string) ([]models.Booking, error) {
	return nil, nil
}

type fakeGateway struct {
	orders       int
	lastCurrency string
}

func (g *fakeGateway) CreateOrder(amount float64, currency, receipt string, notes map[string]interface{}) (string, error) {
	g.orders++
	g.lastCurrency = currency
	return "order_test_1", nil
}

func newTestService() (*DefaultPaymentService, *fakePaymentRepo, *fakeBookingStore, *fakeGateway) {
	repo := newFakePaymentRepo()
	bookings := newFakeBookingStore(&models.Booking{
		ID:        "booking-1",
		ClientID:  "client-1",
		Status:    models.BookingPending,
		FinalCost: 150,
	})
	gw := &fakeGateway{}
	svc := &DefaultPaymentService{Repo: repo, Bookings: bookings, Gateway: gw, Secret: testSecret}
	return svc, repo, bookings, gw
}

func TestCreateOrderHappyPath(t *testing.T) {
	svc, repo, _, gw := newTestService()

	order, err := svc.CreateOrder(context.Background(), "client-1", "booking-1", 150)
	require.NoError(t, err)
	assert.Equal(t, "order_test_1", order.OrderID)
	assert.Equal(t, DefaultCurrency, order.Currency)
	assert.Equal(t, 1, gw.orders)

	rec, err := repo.GetByOrderID(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, rec.Status)
	assert.Equal(t, "booking-1", rec.BookingID)
}

func TestCreateOrderForbiddenForForeignBooking(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateOrder(context.Background(), "client-2", "booking-1", 150)
	assert.True(t, domain.IsForbidden(err))
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateOrder(context.Background(), "client-1", "", 150)
	assert.True(t, domain.IsValidation(err))

	_, err = svc.CreateOrder(context.Background(), "client-1", "booking-1", 0)
	assert.True(t, domain.IsValidation(err))

	_, err = svc.CreateOrder(context.Background(), "client-1", "missing", 150)
	assert.True(t, domain.IsNotFound(err))
}

func TestValidatePaymentCompletesBooking(t *testing.T) {
	svc, _, bookings, _ := newTestService()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "client-1", "booking-1", 150)
	require.NoError(t, err)

	rec, err := svc.ValidatePayment(ctx, order.OrderID, "pay_123", sign(order.OrderID, "pay_123"))
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, rec.Status)
	assert.Equal(t, "pay_123", rec.PaymentID)
	require.NotNil(t, rec.PaidAt)

	assert.Equal(t, models.BookingCompleted, bookings.bookings["booking-1"].Status)
	assert.Equal(t, models.PaymentCompleted, bookings.bookings["booking-1"].PaymentStatus)
}

func TestValidatePaymentRejectsBadSignature(t *testing.T) {
	svc, _, bookings, _ := newTestService()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "client-1", "booking-1", 150)
	require.NoError(t, err)

	_, err = svc.ValidatePayment(ctx, order.OrderID, "pay_123", "deadbeef")
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, models.BookingPending, bookings.bookings["booking-1"].Status)

	// Signature over different IDs must not transfer.
	_, err = svc.ValidatePayment(ctx, order.OrderID, "pay_123", sign(order.OrderID, "pay_456"))
	assert.True(t, domain.IsValidation(err))
}

func TestValidatePaymentIdempotent(t *testing.T) {
	svc, _, bookings, _ := newTestService()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "client-1", "booking-1", 150)
	require.NoError(t, err)

	sig := sign(order.OrderID, "pay_123")
	_, err = svc.ValidatePayment(ctx, order.OrderID, "pay_123", sig)
	require.NoError(t, err)

	// A repeated callback with the same payload succeeds and leaves the
	// booking completed.
	rec, err := svc.ValidatePayment(ctx, order.OrderID, "pay_123", sig)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, rec.Status)
	assert.Equal(t, models.BookingCompleted, bookings.bookings["booking-1"].Status)
	assert.Equal(t, 2, bookings.completed["booking-1"])
}

func TestValidatePaymentUnknownOrder(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.ValidatePayment(context.Background(), "order_missing", "pay_123", sign("order_missing", "pay_123"))
	assert.True(t, domain.IsNotFound(err))
}
