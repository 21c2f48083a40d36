package user

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"slotify/domain"
	"slotify/models"
	"slotify/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

func (s *DefaultUserService) Register(ctx context.Context, input RegistrationInput) (*models.User, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Email == "" || input.Password == "" || input.Name == "" || input.Address == "" || input.PhoneNumber == "" {
		return nil, domain.ValidationError{Msg: "email, password, name, address, and phone number are required"}
	}
	if input.Role == "" {
		input.Role = models.RoleClient
	}
	if !models.ValidRole(input.Role) {
		return nil, domain.ValidationError{Field: "role", Msg: fmt.Sprintf("invalid role %q", input.Role)}
	}

	var hourlyRate float64
	if input.HourlyRate != "" {
		rate, err := strconv.ParseFloat(input.HourlyRate, 64)
		if err != nil || rate < 0 {
			return nil, domain.ValidationError{Field: "hourlyRate", Msg: "invalid hourly rate specified"}
		}
		hourlyRate = rate
	}

	if existing, err := s.Repo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ConflictError{Resource: "user", Msg: "user already exists"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	now := time.Now()
	newUser := &models.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Name:         input.Name,
		Role:         input.Role,
		HourlyRate:   hourlyRate,
		Description:  input.Description,
		Category:     input.Category,
		Address:      input.Address,
		PhoneNumber:  input.PhoneNumber,
		Image:        input.Image,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, newUser); err != nil {
		utils.GetLogger().Error("Register: failed to persist user", zap.Error(err))
		return nil, domain.InternalError{Msg: "user registration failed", Err: err}
	}

	utils.GetLogger().Info("Registered new user",
		zap.String("userId", newUser.ID), zap.String("role", newUser.Role))
	return newUser, nil
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, domain.ValidationError{Msg: "email and password are required"}
	}

	userRec, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.ValidationError{Msg: "invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ValidationError{Msg: "invalid email or password"}
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Role, tokenTTL)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to issue token", Err: err}
	}

	// Cache the token hash so the auth middleware can reject revoked tokens
	// without re-reading the user record.
	if s.AuthCache != nil {
		cacheKey := utils.AuthCachePrefix + userRec.ID
		if err := s.AuthCache.Set(ctx, cacheKey, utils.HashToken(token), tokenTTL).Err(); err != nil {
			utils.GetLogger().Warn("Authenticate: failed to cache token hash", zap.Error(err))
		}
	}

	return &AuthResponse{
		ID:    userRec.ID,
		Name:  userRec.Name,
		Email: userRec.Email,
		Role:  userRec.Role,
		Token: token,
	}, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, domain.ValidationError{Field: "id", Msg: "user id is required"}
	}
	userRec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFoundError{Resource: "user"}
		}
		return nil, domain.InternalError{Err: err}
	}
	return userRec, nil
}

func (s *DefaultUserService) GetPublicProfile(ctx context.Context, id string) (*models.ProviderPublicProfile, error) {
	if id == "" {
		return nil, domain.ValidationError{Field: "id", Msg: "user id is required"}
	}
	profile, err := s.Repo.GetPublicProfile(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFoundError{Resource: "user"}
		}
		return nil, domain.InternalError{Err: err}
	}
	return profile, nil
}
