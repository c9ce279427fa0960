package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gobarber/internal/models"
)

type AppointmentDTO struct {
	ID         uuid.UUID `json:"id"`
	ProviderID uuid.UUID `json:"provider_id"`
	UserID     uuid.UUID `json:"user_id"`
	Date       time.Time `json:"date"`
	User       *UserDTO  `json:"user,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewAppointment(ap *models.Appointment, urls AvatarURLer) AppointmentDTO {
	out := AppointmentDTO{
		ID:         ap.ID,
		ProviderID: ap.ProviderID,
		UserID:     ap.UserID,
		Date:       ap.Date,
		CreatedAt:  ap.CreatedAt,
	}
	if ap.User.ID != uuid.Nil {
		u := NewUser(&ap.User, urls)
		out.User = &u
	}
	return out
}

func NewAppointments(aps []models.Appointment, urls AvatarURLer) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, NewAppointment(&aps[i], urls))
	}
	return out
}
