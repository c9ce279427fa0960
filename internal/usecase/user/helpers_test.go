package user_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gobarber/internal/httperr"
	"github.com/BruksfildServices01/gobarber/internal/imaging"
	"github.com/BruksfildServices01/gobarber/internal/infra/repository/memory"
	"github.com/BruksfildServices01/gobarber/internal/models"
)

// fakeHasher keeps passwords readable so tests can assert on them.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(password, hash string) bool { return hash == "hashed:"+password }

type fakeTokens struct{}

func (fakeTokens) Issue(id uuid.UUID) (string, error) {
	return "token-" + id.String(), nil
}

type fakeStorage struct {
	mu      sync.Mutex
	files   map[string]string
	deleted []string
}

func newFakeStorage() *fakeStorage { return &fakeStorage{files: map[string]string{}} }

func (s *fakeStorage) Save(_ context.Context, key string, body io.Reader, _ string) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[key] = string(b)
	return nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStorage) URL(key string) string { return "http://files/" + key }

// fakeProcessor accepts payloads starting with "img:" and rejects the rest.
type fakeProcessor struct{}

func (fakeProcessor) Process(r io.Reader) ([]byte, string, string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, "", "", err
	}
	if !strings.HasPrefix(string(b), "img:") {
		return nil, "", "", imaging.ErrInvalidImage
	}
	return b, "image/webp", ".webp", nil
}

func seedUser(t *testing.T, repo *memory.UserRepository, name, email, password string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, PasswordHash: "hashed:" + password}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func requireKind(t *testing.T, err error, kind httperr.Kind) {
	t.Helper()
	require.Error(t, err)
	ae, ok := httperr.As(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, kind, ae.Kind, ae.Code)
}

var errBoom = errors.New("boom")

// brokenRepo fails every email lookup.
type brokenRepo struct {
	*memory.UserRepository
}

func (brokenRepo) FindByEmail(context.Context, string) (*models.User, error) {
	return nil, errBoom
}
