package models

import "time"

// Slot statuses. Exactly one holds at any time; a slot carries at most one
// active booking while BOOKED.
const (
	SlotAvailable = "AVAILABLE"
	SlotBooked    = "BOOKED"
)

// Slot is a provider-published unit of bookable time.
type Slot struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"provider_id" json:"providerId"`
	StartTime  time.Time `bson:"start_time" json:"startTime"`
	EndTime    time.Time `bson:"end_time" json:"endTime"`
	Duration   int       `bson:"duration" json:"duration"` // minutes, equals EndTime - StartTime
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// ValidSlotStatus reports whether s is a recognised slot status filter.
func ValidSlotStatus(s string) bool {
	return s == SlotAvailable || s == SlotBooked
}
