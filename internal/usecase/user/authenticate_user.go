package user

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/gobarber/internal/domain/user"
	"github.com/BruksfildServices01/gobarber/internal/models"
	"github.com/BruksfildServices01/gobarber/internal/validators"
)

type AuthenticateUserOutput struct {
	User  *models.User
	Token string
}

type AuthenticateUser struct {
	repo   domain.Repository
	hasher domain.HashProvider
	tokens domain.TokenIssuer
}

func NewAuthenticateUser(
	repo domain.Repository,
	hasher domain.HashProvider,
	tokens domain.TokenIssuer,
) *AuthenticateUser {
	return &AuthenticateUser{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// Execute fails with the same error for an unknown email and a wrong
// password.
func (uc *AuthenticateUser) Execute(
	ctx context.Context,
	email string,
	password string,
) (*AuthenticateUserOutput, error) {

	u, err := uc.repo.FindByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if !uc.hasher.Compare(password, u.PasswordHash) {
		return nil, errInvalidCredentials
	}

	token, err := uc.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	return &AuthenticateUserOutput{User: u, Token: token}, nil
}
