package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gobarber/internal/models"
)

var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	// FindByDate returns the provider's appointment starting exactly at
	// date, or ErrNotFound.
	FindByDate(
		ctx context.Context,
		providerID uuid.UUID,
		date time.Time,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ListForProviderInPeriod returns appointments with start <= date < end
	// ordered by date, customers preloaded.
	ListForProviderInPeriod(
		ctx context.Context,
		providerID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
