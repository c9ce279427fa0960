package user

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gobarber/internal/domain/user"
	"github.com/BruksfildServices01/gobarber/internal/models"
)

type ListProviders struct {
	repo domain.Repository
}

func NewListProviders(repo domain.Repository) *ListProviders {
	return &ListProviders{repo: repo}
}

// Execute lists every user but the caller.
func (uc *ListProviders) Execute(ctx context.Context, userID uuid.UUID) ([]models.User, error) {
	return uc.repo.FindAllProviders(ctx, userID)
}
