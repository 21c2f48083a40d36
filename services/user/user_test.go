package user

import (
	"context"
	"testing"

	"slotify/config"
	"slotify/domain"
	"slotify/models"
	"slotify/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) GetPublicProfile(ctx context.Context, id string) (*models.ProviderPublicProfile, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &models.ProviderPublicProfile{ID: u.ID, Name: u.Name, HourlyRate: u.HourlyRate}, nil
}

func validInput() RegistrationInput {
	return RegistrationInput{
		Email:       "Asha@Example.com",
		Password:    "secret123",
		Name:        "Asha",
		Role:        models.RoleClient,
		Address:     "12 Main St",
		PhoneNumber: "+911234567890",
	}
}

func TestRegisterNormalizesAndDefaults(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	input := validInput()
	input.Role = ""
	got, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", got.Email)
	assert.Equal(t, models.RoleClient, got.Role)
	assert.NotEmpty(t, got.ID)
	assert.NotEqual(t, "secret123", got.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("secret123")))
}

func TestRegisterValidation(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	ctx := context.Background()

	missing := validInput()
	missing.Email = ""
	_, err := svc.Register(ctx, missing)
	assert.True(t, domain.IsValidation(err))

	badRole := validInput()
	badRole.Role = "ADMIN"
	_, err = svc.Register(ctx, badRole)
	assert.True(t, domain.IsValidation(err))

	badRate := validInput()
	badRate.Role = models.RoleProvider
	badRate.HourlyRate = "-5"
	_, err = svc.Register(ctx, badRate)
	assert.True(t, domain.IsValidation(err))
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	ctx := context.Background()

	_, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.Register(ctx, validInput())
	assert.True(t, domain.IsConflict(err))
}

func TestRegisterProviderParsesHourlyRate(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	input := validInput()
	input.Role = models.RoleProvider
	input.HourlyRate = "120.50"
	input.Category = "plumbing"
	got, err := svc.Register(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 120.50, got.HourlyRate)
}

func TestAuthenticate(t *testing.T) {
	config.AppConfig.JWTSecret = "test-jwt-secret"
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	ctx := context.Background()

	created, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	resp, err := svc.Authenticate(ctx, "asha@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.NotEmpty(t, resp.Token)

	gotID, gotRole, err := utils.ExtractClaimsFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, gotID)
	assert.Equal(t, models.RoleClient, gotRole)

	// Wrong password and unknown email fail identically.
	_, err = svc.Authenticate(ctx, "asha@example.com", "wrong")
	assert.True(t, domain.IsValidation(err))
	_, err = svc.Authenticate(ctx, "nobody@example.com", "secret123")
	assert.True(t, domain.IsValidation(err))
}

func TestGetByIDNotFound(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.GetByID(context.Background(), "missing")
	assert.True(t, domain.IsNotFound(err))
}
