package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gobarber/internal/audit"
	domain "github.com/BruksfildServices01/gobarber/internal/domain/appointment"
	userDomain "github.com/BruksfildServices01/gobarber/internal/domain/user"
	"github.com/BruksfildServices01/gobarber/internal/httperr"
	"github.com/BruksfildServices01/gobarber/internal/models"
	"github.com/BruksfildServices01/gobarber/internal/timezone"
)

type CreateAppointmentInput struct {
	ProviderID uuid.UUID
	UserID     uuid.UUID
	Date       time.Time
}

type CreateAppointment struct {
	repo  domain.Repository
	users userDomain.Repository
	clock *timezone.Clock
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	users userDomain.Repository,
	clock *timezone.Clock,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		users: users,
		clock: clock,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// slot start in the shop timezone
	date := uc.clock.StartOfHour(in.Date)

	if date.Before(uc.clock.Now()) {
		return nil, httperr.Validation("past_date", "You can't create an appointment on a past date.")
	}

	if in.ProviderID == in.UserID {
		return nil, httperr.Validation("self_appointment", "You can't create an appointment with yourself.")
	}

	if !domain.WithinBusinessHours(date) {
		return nil, httperr.Validation(
			"outside_business_hours",
			fmt.Sprintf("You can only create appointments between %d:00 and %d:00.", domain.FirstHour, domain.LastHour),
		)
	}

	// provider
	if _, err := uc.users.FindByID(ctx, in.ProviderID); err != nil {
		if errors.Is(err, userDomain.ErrNotFound) {
			return nil, httperr.NotFound("provider_not_found", "Provider not found.")
		}
		return nil, fmt.Errorf("find provider: %w", err)
	}

	// slot already taken
	_, err := uc.repo.FindByDate(ctx, in.ProviderID, date)
	switch {
	case err == nil:
		return nil, errAlreadyBooked
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find appointment by date: %w", err)
	}

	// create; the unique index settles concurrent bookings
	ap := &models.Appointment{
		ProviderID: in.ProviderID,
		UserID:     in.UserID,
		Date:       date,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, errAlreadyBooked
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"provider_id": in.ProviderID,
			"date":        date,
		},
	})

	return ap, nil
}

var errAlreadyBooked = httperr.Conflict("appointment_already_booked", "This appointment is already booked.")
