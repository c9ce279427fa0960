package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gobarber/internal/dto"
	"github.com/BruksfildServices01/gobarber/internal/httperr"
	"github.com/BruksfildServices01/gobarber/internal/httpresp"
	"github.com/BruksfildServices01/gobarber/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/gobarber/internal/usecase/appointment"
	ucUser "github.com/BruksfildServices01/gobarber/internal/usecase/user"
)

type ProviderHandler struct {
	listProviders     *ucUser.ListProviders
	monthAvailability *ucAppointment.ListProviderMonthAvailability
	dayAvailability   *ucAppointment.ListProviderDayAvailability
	urls              dto.AvatarURLer
	log               *zap.Logger
}

func NewProviderHandler(
	listProviders *ucUser.ListProviders,
	monthAvailability *ucAppointment.ListProviderMonthAvailability,
	dayAvailability *ucAppointment.ListProviderDayAvailability,
	urls dto.AvatarURLer,
	log *zap.Logger,
) *ProviderHandler {
	return &ProviderHandler{
		listProviders:     listProviders,
		monthAvailability: monthAvailability,
		dayAvailability:   dayAvailability,
		urls:              urls,
		log:               log,
	}
}

// List returns every user except the caller.
func (h *ProviderHandler) List(c *gin.Context) {
	users, err := h.listProviders.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, dto.NewUsers(users, h.urls))
}

// GET /providers/:id/month-availability?year=&month=
func (h *ProviderHandler) MonthAvailability(c *gin.Context) {
	providerID, err := paramUUID(c, "id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	q, err := queryInts(c, queryYear, queryMonth)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	days, err := h.monthAvailability.Execute(c.Request.Context(), providerID, q[0], q[1])
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, days)
}

// GET /providers/:id/day-availability?year=&month=&day=
func (h *ProviderHandler) DayAvailability(c *gin.Context) {
	providerID, err := paramUUID(c, "id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	q, err := queryInts(c, queryYear, queryMonth, queryDay)
	if err == nil {
		err = calendarDay(q[0], q[1], q[2])
	}
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	hours, err := h.dayAvailability.Execute(c.Request.Context(), providerID, q[0], q[1], q[2])
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, hours)
}
