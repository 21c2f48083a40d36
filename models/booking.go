package models

import "time"

// Booking statuses. PENDING may move to CANCELLED or COMPLETED; both of
// those are terminal.
const (
	BookingPending   = "PENDING"
	BookingCompleted = "COMPLETED"
	BookingCancelled = "CANCELLED"
)

// Booking is a client's reservation against a slot. Start/end/duration are
// snapshotted from the slot at creation time because the slot row may later
// be deleted (completion, cleanup sweep) while the booking lives on as
// history.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	SlotID        string    `bson:"slot_id" json:"slotId"`
	ClientID      string    `bson:"client_id" json:"clientId"`
	ProviderID    string    `bson:"provider_id" json:"providerId"`
	StartTime     time.Time `bson:"start_time" json:"startTime"`
	EndTime       time.Time `bson:"end_time" json:"endTime"`
	Duration      int       `bson:"duration" json:"duration"` // minutes
	Status        string    `bson:"status" json:"status"`
	FinalCost     float64   `bson:"final_cost" json:"finalCost"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	PaymentStatus string    `bson:"payment_status,omitempty" json:"paymentStatus,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// Terminal reports whether the booking has reached a state that no
// transition may leave.
func (b Booking) Terminal() bool {
	return b.Status == BookingCompleted || b.Status == BookingCancelled
}
