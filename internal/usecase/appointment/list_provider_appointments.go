package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gobarber/internal/domain/appointment"
	"github.com/BruksfildServices01/gobarber/internal/models"
	"github.com/BruksfildServices01/gobarber/internal/timezone"
)

type ListProviderAppointments struct {
	repo  domain.Repository
	clock *timezone.Clock
}

func NewListProviderAppointments(
	repo domain.Repository,
	clock *timezone.Clock,
) *ListProviderAppointments {
	return &ListProviderAppointments{
		repo:  repo,
		clock: clock,
	}
}

// Execute returns the provider's appointments on the given local day.
func (uc *ListProviderAppointments) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	year int,
	month int,
	day int,
) ([]models.Appointment, error) {

	start := uc.clock.Date(year, month, day)
	end := start.AddDate(0, 0, 1)

	return uc.repo.ListForProviderInPeriod(ctx, providerID, start, end)
}
