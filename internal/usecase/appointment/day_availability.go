package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gobarber/internal/domain/appointment"
	"github.com/BruksfildServices01/gobarber/internal/timezone"
)

type ListProviderDayAvailability struct {
	repo  domain.Repository
	clock *timezone.Clock
}

func NewListProviderDayAvailability(
	repo domain.Repository,
	clock *timezone.Clock,
) *ListProviderDayAvailability {
	return &ListProviderDayAvailability{repo: repo, clock: clock}
}

func (uc *ListProviderDayAvailability) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	year int,
	month int,
	day int,
) ([]domain.HourAvailability, error) {

	start := uc.clock.Date(year, month, day)
	end := start.AddDate(0, 0, 1)

	appointments, err := uc.repo.ListForProviderInPeriod(ctx, providerID, start, end)
	if err != nil {
		return nil, err
	}

	booked := make([]time.Time, 0, len(appointments))
	for _, ap := range appointments {
		booked = append(booked, ap.Date)
	}

	return domain.DaySlots(start, booked, uc.clock.Now()), nil
}
