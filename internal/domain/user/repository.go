package user

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gobarber/internal/models"
)

// ErrNotFound is returned by Repository lookups that match no row.
var ErrNotFound = errors.New("user not found")

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindAllProviders lists every user except exceptID, ordered by name.
	FindAllProviders(ctx context.Context, exceptID uuid.UUID) ([]models.User, error)

	Create(ctx context.Context, u *models.User) error
	Save(ctx context.Context, u *models.User) error
}

type HashProvider interface {
	Hash(password string) (string, error)
	Compare(password, hash string) bool
}

type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

// AvatarStorage keeps avatar files under an opaque key.
type AvatarStorage interface {
	Save(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// ImageProcessor turns an uploaded image into the stored avatar encoding.
type ImageProcessor interface {
	Process(r io.Reader) (data []byte, contentType string, ext string, err error)
}
