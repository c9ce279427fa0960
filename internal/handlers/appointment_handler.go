package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gobarber/internal/dto"
	"github.com/BruksfildServices01/gobarber/internal/httperr"
	"github.com/BruksfildServices01/gobarber/internal/httpresp"
	"github.com/BruksfildServices01/gobarber/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/gobarber/internal/usecase/appointment"
	"github.com/BruksfildServices01/gobarber/internal/validators"
)

type AppointmentHandler struct {
	create    *ucAppointment.CreateAppointment
	listMine  *ucAppointment.ListProviderAppointments
	validator *validators.Validator
	urls      dto.AvatarURLer
	log       *zap.Logger
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	listMine *ucAppointment.ListProviderAppointments,
	validator *validators.Validator,
	urls dto.AvatarURLer,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:    create,
		listMine:  listMine,
		validator: validator,
		urls:      urls,
		log:       log,
	}
}

type CreateAppointmentRequest struct {
	ProviderID uuid.UUID `json:"provider_id"`
	Date       time.Time `json:"date"`
}

// Create books date with provider_id for the authenticated customer.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := bindJSON(c, h.validator, validators.CreateAppointmentSchema, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ProviderID: req.ProviderID,
		UserID:     middleware.UserID(c),
		Date:       req.Date,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Created(c, dto.NewAppointment(ap, h.urls))
}

// ListMine returns the authenticated provider's appointments on one day.
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	q, err := queryInts(c, queryYear, queryMonth, queryDay)
	if err == nil {
		err = calendarDay(q[0], q[1], q[2])
	}
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	aps, err := h.listMine.Execute(c.Request.Context(), middleware.UserID(c), q[0], q[1], q[2])
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, dto.NewAppointments(aps, h.urls))
}
