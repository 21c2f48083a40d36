package slot

import (
	"context"
	"sort"
	"testing"
	"time"

	"slotify/domain"
	"slotify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeSlotRepo struct {
	slots map[string]*models.Slot
}

func newFakeSlotRepo(slots ...*models.Slot) *fakeSlotRepo {
	r := &fakeSlotRepo{slots: make(map[string]*models.Slot)}
	for _, s := range slots {
		cp := *s
		r.slots[s.ID] = &cp
	}
	return r
}

func (r *fakeSlotRepo) Create(ctx context.Context, slot *models.Slot) error {
	cp := *slot
	r.slots[slot.ID] = &cp
	return nil
}

func (r *fakeSlotRepo) GetByID(ctx context.Context, id string) (*models.Slot, error) {
	s, ok := r.slots[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSlotRepo) ListByProviderAndStatus(ctx context.Context, providerID, status string) ([]models.Slot, error) {
	var out []models.Slot
	for _, s := range r.slots {
		if s.ProviderID == providerID && s.Status == status {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *fakeSlotRepo) ListByProviderWithBookings(ctx context.Context, providerID string) ([]models.SlotWithBookings, error) {
	var out []models.SlotWithBookings
	for _, s := range r.slots {
		if s.ProviderID == providerID {
			out = append(out, models.SlotWithBookings{Slot: *s})
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.slots[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.slots, id)
	return nil
}

func (r *fakeSlotRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	for id, s := range r.slots {
		if s.Status == models.SlotAvailable && s.EndTime.Before(now) {
			delete(r.slots, id)
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.users[user.ID] = user
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

func newTestService(slots ...*models.Slot) (*DefaultSlotService, *fakeSlotRepo) {
	repo := newFakeSlotRepo(slots...)
	users := &fakeUserRepo{users: map[string]*models.User{
		"provider-1": {ID: "provider-1", Name: "Ravi", Role: models.RoleProvider, HourlyRate: 100},
	}}
	return &DefaultSlotService{Repo: repo, Users: users}, repo
}

func TestCreateSlotValidatesDuration(t *testing.T) {
	svc, _ := newTestService()
	start := time.Now().Add(time.Hour)

	_, err := svc.CreateSlot(context.Background(), CreateSlotInput{
		ProviderID: "provider-1",
		StartTime:  start,
		EndTime:    start.Add(90 * time.Minute),
		Duration:   60, // disagrees with the interval
	})
	assert.True(t, domain.IsValidation(err))

	got, err := svc.CreateSlot(context.Background(), CreateSlotInput{
		ProviderID: "provider-1",
		StartTime:  start,
		EndTime:    start.Add(90 * time.Minute),
		Duration:   90,
	})
	require.NoError(t, err)
	assert.Equal(t, models.SlotAvailable, got.Status)
	assert.NotEmpty(t, got.ID)
}

func TestCreateSlotRejectsInvertedInterval(t *testing.T) {
	svc, _ := newTestService()
	start := time.Now().Add(time.Hour)

	_, err := svc.CreateSlot(context.Background(), CreateSlotInput{
		ProviderID: "provider-1",
		StartTime:  start,
		EndTime:    start.Add(-time.Hour),
		Duration:   60,
	})
	assert.True(t, domain.IsValidation(err))
}

func TestListSlotsDefaultsToAvailable(t *testing.T) {
	start := time.Now().Add(time.Hour)
	svc, _ := newTestService(
		&models.Slot{ID: "s1", ProviderID: "provider-1", StartTime: start, EndTime: start.Add(time.Hour), Duration: 60, Status: models.SlotAvailable},
		&models.Slot{ID: "s2", ProviderID: "provider-1", StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour), Duration: 60, Status: models.SlotBooked},
	)

	got, err := svc.ListSlots(context.Background(), "provider-1", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].ID)
	assert.Equal(t, "Ravi", got[0].Provider.Name)

	_, err = svc.ListSlots(context.Background(), "provider-1", "NONSENSE")
	assert.True(t, domain.IsValidation(err))
}

func TestDeleteSlotRules(t *testing.T) {
	start := time.Now().Add(time.Hour)
	svc, repo := newTestService(
		&models.Slot{ID: "open", ProviderID: "provider-1", StartTime: start, EndTime: start.Add(time.Hour), Duration: 60, Status: models.SlotAvailable},
		&models.Slot{ID: "taken", ProviderID: "provider-1", StartTime: start, EndTime: start.Add(time.Hour), Duration: 60, Status: models.SlotBooked},
	)
	ctx := context.Background()

	assert.True(t, domain.IsNotFound(svc.DeleteSlot(ctx, "provider-1", "missing")))
	assert.True(t, domain.IsForbidden(svc.DeleteSlot(ctx, "provider-2", "open")))
	assert.True(t, domain.IsConflict(svc.DeleteSlot(ctx, "provider-1", "taken")))

	require.NoError(t, svc.DeleteSlot(ctx, "provider-1", "open"))
	_, err := repo.GetByID(ctx, "open")
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}

func TestDeleteExpiredSlotsSkipsBooked(t *testing.T) {
	now := time.Now()
	svc, repo := newTestService(
		&models.Slot{ID: "stale", ProviderID: "provider-1", EndTime: now.Add(-time.Hour), Status: models.SlotAvailable},
		&models.Slot{ID: "stale-booked", ProviderID: "provider-1", EndTime: now.Add(-time.Hour), Status: models.SlotBooked},
		&models.Slot{ID: "future", ProviderID: "provider-1", EndTime: now.Add(time.Hour), Status: models.SlotAvailable},
	)

	count, err := svc.DeleteExpiredSlots(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = repo.GetByID(context.Background(), "stale")
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
	_, err = repo.GetByID(context.Background(), "stale-booked")
	assert.NoError(t, err)
}
