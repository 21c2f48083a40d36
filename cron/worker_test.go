package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"slotify/models"
	slotSvc "slotify/services/slot"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
)

type stubSlotService struct {
	swept int
	err   error
}

func (s *stubSlotService) CreateSlot(ctx context.Context, input slotSvc.CreateSlotInput) (*models.Slot, error) {
	return nil, nil
}

func (s *stubSlotService) ListSlots(ctx context.Context, providerID, statusFilter string) ([]models.SlotWithProvider, error) {
	return nil, nil
}

func (s *stubSlotService) ListOwnSlots(ctx context.Context, providerID string) ([]models.SlotWithBookings, error) {
	return nil, nil
}

func (s *stubSlotService) DeleteSlot(ctx context.Context, requesterID, slotID string) error {
	return nil
}

func (s *stubSlotService) DeleteExpiredSlots(ctx context.Context, now time.Time) (int64, error) {
	s.swept++
	return 3, s.err
}

func TestHandleSlotCleanupSweeps(t *testing.T) {
	stub := &stubSlotService{}
	handler := HandleSlotCleanup(stub)

	err := handler(context.Background(), asynq.NewTask(TypeSlotCleanup, nil))
	assert.NoError(t, err)
	assert.Equal(t, 1, stub.swept)
}

func TestHandleSlotCleanupSwallowsErrors(t *testing.T) {
	stub := &stubSlotService{err: errors.New("store down")}
	handler := HandleSlotCleanup(stub)

	// A failed sweep must not bubble up into asynq's retry machinery.
	err := handler(context.Background(), asynq.NewTask(TypeSlotCleanup, nil))
	assert.NoError(t, err)
	assert.Equal(t, 1, stub.swept)
}
