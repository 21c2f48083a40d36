// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SlotRepository interface {
	Create(ctx context.Context, slot *models.Slot) error
	GetByID(ctx context.Context, id string) (*models.Slot, error)
	// ListByProviderAndStatus returns a provider's slots with the given
	// status, ascending by start time.
	ListByProviderAndStatus(ctx context.Context, providerID, status string) ([]models.Slot, error)
	// ListByProviderWithBookings returns all of a provider's slots joined
	// with their booking summaries, descending by start time.
	ListByProviderWithBookings(ctx context.Context, providerID string) ([]models.SlotWithBookings, error)
	Delete(ctx context.Context, id string) error
	// DeleteExpired removes slots whose end time lies strictly before now
	// and that are still AVAILABLE, returning the number of rows removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a MongoDB-backed SlotRepository.
func NewMongoSlotRepo(db *mongo.Database) SlotRepository {
	repo := &mongoSlotRepo{coll: db.Collection("slots")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
