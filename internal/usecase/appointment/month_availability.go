package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gobarber/internal/domain/appointment"
	"github.com/BruksfildServices01/gobarber/internal/timezone"
)

type ListProviderMonthAvailability struct {
	repo  domain.Repository
	clock *timezone.Clock
}

func NewListProviderMonthAvailability(
	repo domain.Repository,
	clock *timezone.Clock,
) *ListProviderMonthAvailability {
	return &ListProviderMonthAvailability{repo: repo, clock: clock}
}

func (uc *ListProviderMonthAvailability) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	year int,
	month int,
) ([]domain.DayAvailability, error) {

	start := uc.clock.Date(year, month, 1)
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListForProviderInPeriod(ctx, providerID, start, end)
	if err != nil {
		return nil, err
	}

	booked := make([]time.Time, 0, len(appointments))
	for _, ap := range appointments {
		booked = append(booked, ap.Date)
	}

	return domain.MonthSlots(start, booked, uc.clock.Now()), nil
}
