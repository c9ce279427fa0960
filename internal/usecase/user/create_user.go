package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/gobarber/internal/audit"
	domain "github.com/BruksfildServices01/gobarber/internal/domain/user"
	"github.com/BruksfildServices01/gobarber/internal/httperr"
	"github.com/BruksfildServices01/gobarber/internal/models"
	"github.com/BruksfildServices01/gobarber/internal/validators"
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

type CreateUser struct {
	repo   domain.Repository
	hasher domain.HashProvider
	audit  *audit.Dispatcher
}

func NewCreateUser(
	repo domain.Repository,
	hasher domain.HashProvider,
	audit *audit.Dispatcher,
) *CreateUser {
	return &CreateUser{
		repo:   repo,
		hasher: hasher,
		audit:  audit,
	}
}

func (uc *CreateUser) Execute(
	ctx context.Context,
	in CreateUserInput,
) (*models.User, error) {

	email := validators.NormalizeEmail(in.Email)

	_, err := uc.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, errEmailUsed
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, errEmailUsed
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_created",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
