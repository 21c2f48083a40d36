// File: handlers/bundle.go
package handlers

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	Users    *UserHandler
	Slots    *SlotHandler
	Bookings *BookingHandler
	Payments *PaymentHandler
}
