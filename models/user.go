package models

import "time"

// Roles a platform account can hold.
const (
	RoleClient   = "CLIENT"
	RoleProvider = "PROVIDER"
)

// User represents a platform account. Providers additionally carry an
// hourly rate and a service category; clients leave those empty.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Name         string    `bson:"name" json:"name"`
	Role         string    `bson:"role" json:"role"`
	HourlyRate   float64   `bson:"hourly_rate,omitempty" json:"hourlyRate,omitempty"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Category     string    `bson:"category,omitempty" json:"category,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	PhoneNumber  string    `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	Image        string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// ValidRole reports whether role is one of the supported account roles.
func ValidRole(role string) bool {
	return role == RoleClient || role == RoleProvider
}
