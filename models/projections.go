package models

// Typed projections returned by read operations. Each read path gets its
// own struct instead of ad hoc field selection so callers know exactly
// which participant fields travel with the result.

// ProviderPublicProfile is the slice of a provider account exposed to
// clients browsing or booking slots.
type ProviderPublicProfile struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Email       string  `bson:"email" json:"email,omitempty"`
	HourlyRate  float64 `bson:"hourly_rate" json:"hourlyRate"`
	Image       string  `bson:"image,omitempty" json:"image,omitempty"`
	Category    string  `bson:"category,omitempty" json:"category,omitempty"`
	PhoneNumber string  `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
}

// ClientSummary is the slice of a client account shown to the other
// participant of a booking.
type ClientSummary struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email,omitempty"`
	PhoneNumber string `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
}

// SlotWithProvider is the public slot listing view.
type SlotWithProvider struct {
	Slot     `bson:",inline"`
	Provider ProviderPublicProfile `bson:"provider" json:"provider"`
}

// BookingSummary is the nested view of a booking inside a provider's own
// slot listing.
type BookingSummary struct {
	ID        string        `bson:"id" json:"id"`
	Status    string        `bson:"status" json:"status"`
	FinalCost float64       `bson:"final_cost" json:"finalCost"`
	Client    ClientSummary `bson:"client" json:"client"`
}

// SlotWithBookings is the provider calendar view: a slot joined with the
// bookings that reference it.
type SlotWithBookings struct {
	Slot     `bson:",inline"`
	Bookings []BookingSummary `bson:"bookings" json:"bookings"`
}

// BookingWithParticipants is a booking joined with both participant
// projections.
type BookingWithParticipants struct {
	Booking  `bson:",inline"`
	Client   ClientSummary         `bson:"client" json:"client"`
	Provider ProviderPublicProfile `bson:"provider" json:"provider"`
}

// PaymentOrder is the handle returned to the caller after an order is
// created with the gateway; the client completes checkout against it.
type PaymentOrder struct {
	OrderID   string  `json:"orderId"`
	BookingID string  `json:"bookingId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}
