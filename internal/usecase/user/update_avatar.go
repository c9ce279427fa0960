package user

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gobarber/internal/audit"
	domain "github.com/BruksfildServices01/gobarber/internal/domain/user"
	"github.com/BruksfildServices01/gobarber/internal/imaging"
	"github.com/BruksfildServices01/gobarber/internal/models"
)

type UpdateUserAvatar struct {
	repo      domain.Repository
	storage   domain.AvatarStorage
	processor domain.ImageProcessor
	audit     *audit.Dispatcher
	log       *zap.Logger
}

func NewUpdateUserAvatar(
	repo domain.Repository,
	storage domain.AvatarStorage,
	processor domain.ImageProcessor,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *UpdateUserAvatar {
	return &UpdateUserAvatar{
		repo:      repo,
		storage:   storage,
		processor: processor,
		audit:     audit,
		log:       log,
	}
}

// Execute stores the processed upload as the user's avatar and removes the
// previous file. The old file is deleted only after the user row points at
// the new one.
func (uc *UpdateUserAvatar) Execute(
	ctx context.Context,
	userID uuid.UUID,
	upload io.Reader,
) (*models.User, error) {

	u, err := uc.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errAvatarUnauthorized
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	data, contentType, ext, err := uc.processor.Process(upload)
	if err != nil {
		if errors.Is(err, imaging.ErrInvalidImage) {
			return nil, errInvalidImage
		}
		return nil, fmt.Errorf("process avatar: %w", err)
	}

	key := uuid.NewString() + ext
	if err := uc.storage.Save(ctx, key, bytes.NewReader(data), contentType); err != nil {
		return nil, fmt.Errorf("save avatar: %w", err)
	}

	previous := u.Avatar
	u.Avatar = &key

	if err := uc.repo.Save(ctx, u); err != nil {
		_ = uc.storage.Delete(ctx, key)
		return nil, fmt.Errorf("save user: %w", err)
	}

	if previous != nil && *previous != "" {
		if err := uc.storage.Delete(ctx, *previous); err != nil {
			uc.log.Warn("delete previous avatar", zap.String("key", *previous), zap.Error(err))
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "avatar_updated",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
