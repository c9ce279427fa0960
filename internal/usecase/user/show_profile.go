package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gobarber/internal/domain/user"
	"github.com/BruksfildServices01/gobarber/internal/models"
)

type ShowProfile struct {
	repo domain.Repository
}

func NewShowProfile(repo domain.Repository) *ShowProfile {
	return &ShowProfile{repo: repo}
}

func (uc *ShowProfile) Execute(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	u, err := uc.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}
