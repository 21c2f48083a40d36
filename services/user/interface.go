package user

import (
	"context"

	userRepo "slotify/database/repository/user"
	"slotify/models"

	"github.com/go-redis/redis/v8"
)

// RegistrationInput carries everything a new account needs. Provider-only
// fields (hourly rate, category) are ignored for clients.
type RegistrationInput struct {
	Email       string
	Password    string
	Name        string
	Role        string
	HourlyRate  string // decimal string, parsed and validated for providers
	Description string
	Category    string
	Address     string
	PhoneNumber string
	Image       string // already-uploaded profile image URL, may be empty
}

// AuthResponse contains the authenticated user's ID, role and token.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

type UserService interface {
	Register(ctx context.Context, input RegistrationInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetPublicProfile(ctx context.Context, id string) (*models.ProviderPublicProfile, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}
