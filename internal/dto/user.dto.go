package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gobarber/internal/models"
)

// AvatarURLer resolves a stored avatar key to a public URL.
type AvatarURLer interface {
	URL(key string) string
}

type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUser(u *models.User, urls AvatarURLer) UserDTO {
	out := UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Avatar != nil && *u.Avatar != "" && urls != nil {
		url := urls.URL(*u.Avatar)
		out.AvatarURL = &url
	}
	return out
}

func NewUsers(users []models.User, urls AvatarURLer) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, NewUser(&users[i], urls))
	}
	return out
}

type SessionDTO struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}
