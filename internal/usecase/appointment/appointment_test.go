package appointment_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gobarber/internal/httperr"
	"github.com/BruksfildServices01/gobarber/internal/infra/repository/memory"
	"github.com/BruksfildServices01/gobarber/internal/models"
	"github.com/BruksfildServices01/gobarber/internal/timezone"
	"github.com/BruksfildServices01/gobarber/internal/usecase/appointment"
)

var loc = time.FixedZone("BRT", -3*60*60)

// 2030-05-20 10:30 local
var now = time.Date(2030, 5, 20, 10, 30, 0, 0, loc)

type fixture struct {
	users    *memory.UserRepository
	apps     *memory.AppointmentRepository
	clock    *timezone.Clock
	provider *models.User
	customer *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := memory.NewUserRepository()
	f := &fixture{
		users: users,
		apps:  memory.NewAppointmentRepository(users),
		clock: timezone.Fixed(now, loc),
	}

	f.provider = &models.User{Name: "Barber", Email: "barber@example.com", PasswordHash: "x"}
	f.customer = &models.User{Name: "Customer", Email: "customer@example.com", PasswordHash: "x"}
	require.NoError(t, users.Create(context.Background(), f.provider))
	require.NoError(t, users.Create(context.Background(), f.customer))
	return f
}

func (f *fixture) create() *appointment.CreateAppointment {
	return appointment.NewCreateAppointment(f.apps, f.users, f.clock, nil)
}

func at(day, hour, min int) time.Time {
	return time.Date(2030, 5, day, hour, min, 0, 0, loc)
}

func TestCreateAppointment(t *testing.T) {
	f := newFixture(t)

	ap, err := f.create().Execute(context.Background(), appointment.CreateAppointmentInput{
		ProviderID: f.provider.ID,
		UserID:     f.customer.ID,
		Date:       at(20, 13, 45),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, ap.ID)
	assert.Equal(t, f.provider.ID, ap.ProviderID)
	assert.True(t, ap.Date.Equal(at(20, 13, 0)), "truncated to the hour, got %s", ap.Date)
}

func TestCreateAppointment_DateInOtherZoneUsesShopHour(t *testing.T) {
	f := newFixture(t)

	ap, err := f.create().Execute(context.Background(), appointment.CreateAppointmentInput{
		ProviderID: f.provider.ID,
		UserID:     f.customer.ID,
		Date:       time.Date(2030, 5, 21, 12, 10, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 9, ap.Date.In(loc).Hour())
}

func TestCreateAppointment_Rules(t *testing.T) {
	tests := []struct {
		name string
		in   func(f *fixture) appointment.CreateAppointmentInput
		kind httperr.Kind
		code string
	}{
		{
			name: "past date",
			in: func(f *fixture) appointment.CreateAppointmentInput {
				return appointment.CreateAppointmentInput{ProviderID: f.provider.ID, UserID: f.customer.ID, Date: at(20, 9, 0)}
			},
			kind: httperr.KindValidation,
			code: "past_date",
		},
		{
			name: "current hour already started",
			in: func(f *fixture) appointment.CreateAppointmentInput {
				return appointment.CreateAppointmentInput{ProviderID: f.provider.ID, UserID: f.customer.ID, Date: at(20, 10, 59)}
			},
			kind: httperr.KindValidation,
			code: "past_date",
		},
		{
			name: "with yourself",
			in: func(f *fixture) appointment.CreateAppointmentInput {
				return appointment.CreateAppointmentInput{ProviderID: f.provider.ID, UserID: f.provider.ID, Date: at(21, 10, 0)}
			},
			kind: httperr.KindValidation,
			code: "self_appointment",
		},
		{
			name: "before 8am",
			in: func(f *fixture) appointment.CreateAppointmentInput {
				return appointment.CreateAppointmentInput{ProviderID: f.provider.ID, UserID: f.customer.ID, Date: at(21, 7, 0)}
			},
			kind: httperr.KindValidation,
			code: "outside_business_hours",
		},
		{
			name: "after 5pm",
			in: func(f *fixture) appointment.CreateAppointmentInput {
				return appointment.CreateAppointmentInput{ProviderID: f.provider.ID, UserID: f.customer.ID, Date: at(21, 18, 0)}
			},
			kind: httperr.KindValidation,
			code: "outside_business_hours",
		},
		{
			name: "unknown provider",
			in: func(f *fixture) appointment.CreateAppointmentInput {
				return appointment.CreateAppointmentInput{ProviderID: uuid.New(), UserID: f.customer.ID, Date: at(21, 10, 0)}
			},
			kind: httperr.KindNotFound,
			code: "provider_not_found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.create().Execute(context.Background(), tc.in(f))
			require.True(t, httperr.IsKind(err, tc.kind), "got %v", err)
			assert.True(t, httperr.IsCode(err, tc.code), "got %v", err)
		})
	}
}

func TestCreateAppointment_SameSlotTwice(t *testing.T) {
	f := newFixture(t)
	uc := f.create()
	in := appointment.CreateAppointmentInput{ProviderID: f.provider.ID, UserID: f.customer.ID, Date: at(21, 10, 0)}

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	in.Date = at(21, 10, 30)
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict), "got %v", err)

	in.Date = at(21, 11, 0)
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err, "the next hour is free")
}

func TestListProviderAppointments(t *testing.T) {
	f := newFixture(t)
	uc := f.create()
	for _, d := range []time.Time{at(21, 15, 0), at(21, 9, 0), at(22, 9, 0)} {
		_, err := uc.Execute(context.Background(), appointment.CreateAppointmentInput{
			ProviderID: f.provider.ID, UserID: f.customer.ID, Date: d,
		})
		require.NoError(t, err)
	}

	list, err := appointment.NewListProviderAppointments(f.apps, f.clock).
		Execute(context.Background(), f.provider.ID, 2030, 5, 21)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 9, list[0].Date.In(loc).Hour())
	assert.Equal(t, 15, list[1].Date.In(loc).Hour())
	assert.Equal(t, "Customer", list[0].User.Name)
}

func TestListProviderDayAvailability(t *testing.T) {
	f := newFixture(t)
	_, err := f.create().Execute(context.Background(), appointment.CreateAppointmentInput{
		ProviderID: f.provider.ID, UserID: f.customer.ID, Date: at(20, 14, 0),
	})
	require.NoError(t, err)

	slots, err := appointment.NewListProviderDayAvailability(f.apps, f.clock).
		Execute(context.Background(), f.provider.ID, 2030, 5, 20)
	require.NoError(t, err)

	got := map[int]bool{}
	for _, s := range slots {
		got[s.Hour] = s.Available
	}
	assert.False(t, got[10], "started")
	assert.True(t, got[11])
	assert.False(t, got[14], "booked")
	assert.True(t, got[17])
}

func TestListProviderMonthAvailability(t *testing.T) {
	f := newFixture(t)
	uc := f.create()
	for h := 8; h <= 17; h++ {
		_, err := uc.Execute(context.Background(), appointment.CreateAppointmentInput{
			ProviderID: f.provider.ID, UserID: f.customer.ID, Date: at(22, h, 0),
		})
		require.NoError(t, err)
	}

	days, err := appointment.NewListProviderMonthAvailability(f.apps, f.clock).
		Execute(context.Background(), f.provider.ID, 2030, 5)
	require.NoError(t, err)
	require.Len(t, days, 31)

	assert.False(t, days[18].Available, "19th is past")
	assert.True(t, days[19].Available, "today still has hours left")
	assert.True(t, days[20].Available)
	assert.False(t, days[21].Available, "22nd fully booked")
}
