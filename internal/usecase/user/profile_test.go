package user_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gobarber/internal/httperr"
	"github.com/BruksfildServices01/gobarber/internal/infra/repository/memory"
	"github.com/BruksfildServices01/gobarber/internal/usecase/user"
)

func TestShowProfile(t *testing.T) {
	repo := memory.NewUserRepository()
	u := seedUser(t, repo, "John Doe", "john@example.com", "123456")
	uc := user.NewShowProfile(repo)

	got, err := uc.Execute(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.Name)

	_, err = uc.Execute(context.Background(), uuid.New())
	requireKind(t, err, httperr.KindNotFound)
}

func TestListProviders_ExcludesCaller(t *testing.T) {
	repo := memory.NewUserRepository()
	me := seedUser(t, repo, "Me", "me@example.com", "123456")
	seedUser(t, repo, "Bob", "bob@example.com", "123456")
	seedUser(t, repo, "Alice", "alice@example.com", "123456")

	providers, err := user.NewListProviders(repo).Execute(context.Background(), me.ID)
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "Alice", providers[0].Name)
	assert.Equal(t, "Bob", providers[1].Name)
}

func TestUpdateUserAvatar(t *testing.T) {
	repo := memory.NewUserRepository()
	store := newFakeStorage()
	u := seedUser(t, repo, "John Doe", "john@example.com", "123456")
	uc := user.NewUpdateUserAvatar(repo, store, fakeProcessor{}, nil, zap.NewNop())

	first, err := uc.Execute(context.Background(), u.ID, strings.NewReader("img:one"))
	require.NoError(t, err)
	require.NotNil(t, first.Avatar)
	firstKey := *first.Avatar
	assert.True(t, strings.HasSuffix(firstKey, ".webp"))
	assert.Equal(t, "img:one", store.files[firstKey])

	second, err := uc.Execute(context.Background(), u.ID, strings.NewReader("img:two"))
	require.NoError(t, err)
	assert.NotEqual(t, firstKey, *second.Avatar)
	assert.Equal(t, []string{firstKey}, store.deleted, "previous avatar removed")
	assert.Len(t, store.files, 1)
}

func TestUpdateUserAvatar_Failures(t *testing.T) {
	repo := memory.NewUserRepository()
	store := newFakeStorage()
	u := seedUser(t, repo, "John Doe", "john@example.com", "123456")
	uc := user.NewUpdateUserAvatar(repo, store, fakeProcessor{}, nil, zap.NewNop())

	_, err := uc.Execute(context.Background(), uuid.New(), strings.NewReader("img:x"))
	requireKind(t, err, httperr.KindUnauthorized)

	_, err = uc.Execute(context.Background(), u.ID, strings.NewReader("not an image"))
	requireKind(t, err, httperr.KindValidation)
	assert.Empty(t, store.files)
}
