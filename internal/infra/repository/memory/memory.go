// Package memory holds map-backed repositories with the same contracts as
// the gorm ones, including unique email and (provider, date) constraints.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apDomain "github.com/BruksfildServices01/gobarber/internal/domain/appointment"
	userDomain "github.com/BruksfildServices01/gobarber/internal/domain/user"
	"github.com/BruksfildServices01/gobarber/internal/models"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
	now   func() time.Time
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[uuid.UUID]models.User{}, now: time.Now}
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, userDomain.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, userDomain.ErrNotFound
}

func (r *UserRepository) FindAllProviders(_ context.Context, exceptID uuid.UUID) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, 0, len(r.users))
	for id, u := range r.users {
		if id != exceptID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *UserRepository) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if r.emailTaken(u.Email, u.ID) {
		return gorm.ErrDuplicatedKey
	}
	now := r.now()
	u.CreatedAt, u.UpdatedAt = now, now
	r.users[u.ID] = *u
	return nil
}

func (r *UserRepository) Save(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(u.Email, u.ID) {
		return gorm.ErrDuplicatedKey
	}
	u.UpdatedAt = r.now()
	r.users[u.ID] = *u
	return nil
}

func (r *UserRepository) emailTaken(email string, self uuid.UUID) bool {
	for id, other := range r.users {
		if id != self && other.Email == email {
			return true
		}
	}
	return false
}

type AppointmentRepository struct {
	mu    sync.RWMutex
	items []models.Appointment
	users *UserRepository
}

// NewAppointmentRepository preloads customers from users when listing;
// users may be nil.
func NewAppointmentRepository(users *UserRepository) *AppointmentRepository {
	return &AppointmentRepository{users: users}
}

func (r *AppointmentRepository) FindByDate(_ context.Context, providerID uuid.UUID, date time.Time) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ap := range r.items {
		if ap.ProviderID == providerID && ap.Date.Equal(date) {
			return &ap, nil
		}
	}
	return nil, apDomain.ErrNotFound
}

func (r *AppointmentRepository) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.items {
		if other.ProviderID == ap.ProviderID && other.Date.Equal(ap.Date) {
			return gorm.ErrDuplicatedKey
		}
	}
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	now := time.Now()
	ap.CreatedAt, ap.UpdatedAt = now, now
	r.items = append(r.items, *ap)
	return nil
}

func (r *AppointmentRepository) ListForProviderInPeriod(ctx context.Context, providerID uuid.UUID, start, end time.Time) ([]models.Appointment, error) {
	r.mu.RLock()
	var out []models.Appointment
	for _, ap := range r.items {
		if ap.ProviderID == providerID && !ap.Date.Before(start) && ap.Date.Before(end) {
			out = append(out, ap)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	if r.users != nil {
		for i := range out {
			if u, err := r.users.FindByID(ctx, out[i].UserID); err == nil {
				out[i].User = *u
			}
		}
	}
	return out, nil
}

var (
	_ userDomain.Repository = (*UserRepository)(nil)
	_ apDomain.Repository   = (*AppointmentRepository)(nil)
)
