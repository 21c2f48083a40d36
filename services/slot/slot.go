package slot

import (
	"context"
	"math"
	"time"

	"slotify/domain"
	"slotify/models"
	"slotify/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultSlotService) CreateSlot(ctx context.Context, input CreateSlotInput) (*models.Slot, error) {
	if input.ProviderID == "" {
		return nil, domain.ValidationError{Field: "providerId", Msg: "provider id is required"}
	}
	if input.StartTime.IsZero() || input.EndTime.IsZero() || input.Duration == 0 {
		return nil, domain.ValidationError{Msg: "startTime, endTime, and duration are required"}
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, domain.ValidationError{Msg: "endTime must be after startTime"}
	}

	// The declared duration must agree with the interval itself; a mismatch
	// here would otherwise leak into derived pricing.
	minutes := int(math.Round(input.EndTime.Sub(input.StartTime).Minutes()))
	if input.Duration != minutes {
		return nil, domain.ValidationError{
			Field: "duration",
			Msg:   "duration must equal the minutes between startTime and endTime",
		}
	}

	now := time.Now()
	newSlot := &models.Slot{
		ID:         uuid.New().String(),
		ProviderID: input.ProviderID,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Duration:   input.Duration,
		Status:     models.SlotAvailable,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(ctx, newSlot); err != nil {
		utils.GetLogger().Error("CreateSlot: failed to persist slot", zap.Error(err))
		return nil, domain.InternalError{Msg: "failed to create slot", Err: err}
	}

	return newSlot, nil
}

func (s *DefaultSlotService) ListSlots(ctx context.Context, providerID, statusFilter string) ([]models.SlotWithProvider, error) {
	if providerID == "" {
		return nil, domain.ValidationError{Field: "providerId", Msg: "provider id is required"}
	}
	if statusFilter == "" {
		statusFilter = models.SlotAvailable
	}
	if !models.ValidSlotStatus(statusFilter) {
		return nil, domain.ValidationError{Field: "status", Msg: "invalid status filter"}
	}

	slots, err := s.Repo.ListByProviderAndStatus(ctx, providerID, statusFilter)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list slots", Err: err}
	}

	// Every slot in the listing shares the one owning provider, so the
	// profile is fetched once and attached.
	profile, err := s.Users.GetPublicProfile(ctx, providerID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFoundError{Resource: "provider"}
		}
		return nil, domain.InternalError{Err: err}
	}

	out := make([]models.SlotWithProvider, 0, len(slots))
	for _, sl := range slots {
		out = append(out, models.SlotWithProvider{Slot: sl, Provider: *profile})
	}
	return out, nil
}

func (s *DefaultSlotService) ListOwnSlots(ctx context.Context, providerID string) ([]models.SlotWithBookings, error) {
	if providerID == "" {
		return nil, domain.ValidationError{Field: "providerId", Msg: "provider id is required"}
	}
	slots, err := s.Repo.ListByProviderWithBookings(ctx, providerID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list own slots", Err: err}
	}
	return slots, nil
}

func (s *DefaultSlotService) DeleteSlot(ctx context.Context, requesterID, slotID string) error {
	if slotID == "" {
		return domain.ValidationError{Field: "slotId", Msg: "slot id is required"}
	}

	sl, err := s.Repo.GetByID(ctx, slotID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.NotFoundError{Resource: "slot"}
		}
		return domain.InternalError{Err: err}
	}
	if sl.ProviderID != requesterID {
		return domain.ForbiddenError{Msg: "you can only delete your own slots"}
	}
	if sl.Status == models.SlotBooked {
		return domain.ConflictError{Resource: "slot", Msg: "cannot delete a booked slot"}
	}

	if err := s.Repo.Delete(ctx, slotID); err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.NotFoundError{Resource: "slot"}
		}
		return domain.InternalError{Msg: "failed to delete slot", Err: err}
	}

	utils.GetLogger().Info("Deleted slot", zap.String("slotId", slotID), zap.String("providerId", requesterID))
	return nil
}

func (s *DefaultSlotService) DeleteExpiredSlots(ctx context.Context, now time.Time) (int64, error) {
	count, err := s.Repo.DeleteExpired(ctx, now)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to delete expired slots", Err: err}
	}
	return count, nil
}
