package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gobarber/internal/audit"
	domain "github.com/BruksfildServices01/gobarber/internal/domain/user"
	"github.com/BruksfildServices01/gobarber/internal/httperr"
	"github.com/BruksfildServices01/gobarber/internal/models"
	"github.com/BruksfildServices01/gobarber/internal/validators"
)

// UpdateProfileInput leaves Name and Email untouched when nil. Password is
// the new password; empty means unchanged.
type UpdateProfileInput struct {
	UserID      uuid.UUID
	Name        *string
	Email       *string
	Password    string
	OldPassword string
}

type UpdateProfile struct {
	repo   domain.Repository
	hasher domain.HashProvider
	audit  *audit.Dispatcher
}

func NewUpdateProfile(
	repo domain.Repository,
	hasher domain.HashProvider,
	audit *audit.Dispatcher,
) *UpdateProfile {
	return &UpdateProfile{
		repo:   repo,
		hasher: hasher,
		audit:  audit,
	}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	in UpdateProfileInput,
) (*models.User, error) {

	u, err := uc.repo.FindByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := rejectBlank(in); err != nil {
		return nil, err
	}

	changed := []string{}

	if in.Email != nil {
		email := validators.NormalizeEmail(*in.Email)

		owner, err := uc.repo.FindByEmail(ctx, email)
		switch {
		case err == nil && owner.ID != u.ID:
			return nil, errEmailUsed
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("find user by email: %w", err)
		}

		if email != u.Email {
			changed = append(changed, "email")
		}
		u.Email = email
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name != u.Name {
			changed = append(changed, "name")
		}
		u.Name = name
	}

	if in.Password != "" {
		if in.OldPassword == "" {
			return nil, errOldPasswordMissing
		}
		if !uc.hasher.Compare(in.OldPassword, u.PasswordHash) {
			return nil, errOldPasswordWrong
		}

		hash, err := uc.hasher.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
		changed = append(changed, "password")
	}

	if err := uc.repo.Save(ctx, u); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, errEmailUsed
		}
		return nil, fmt.Errorf("save user: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "profile_updated",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"changed": changed},
	})

	return u, nil
}

// rejectBlank fails for a name or email that is present but empty. Omitted
// fields are nil and stay untouched.
func rejectBlank(in UpdateProfileInput) error {
	fields := map[string]string{}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		fields["name"] = "cannot be blank"
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) == "" {
		fields["email"] = "cannot be blank"
	}
	if len(fields) == 0 {
		return nil
	}
	return httperr.ValidationFields("blank_field", "Name and e-mail cannot be blank.", fields)
}
