package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gobarber/internal/config"
)

func TestDisk_SaveAndDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	d, err := NewDisk(dir, "http://localhost:3333/")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, d.Save(ctx, "avatar.webp", strings.NewReader("image-bytes"), "image/webp"))

	data, err := os.ReadFile(filepath.Join(dir, "avatar.webp"))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
	assert.Equal(t, "http://localhost:3333/files/avatar.webp", d.URL("avatar.webp"))

	require.NoError(t, d.Delete(ctx, "avatar.webp"))
	_, err = os.Stat(filepath.Join(dir, "avatar.webp"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, d.Delete(ctx, "avatar.webp"), "deleting a missing file is not an error")
}

func TestDisk_RejectsTraversal(t *testing.T) {
	d, err := NewDisk(t.TempDir(), "http://localhost")
	require.NoError(t, err)

	for _, key := range []string{"", "../escape.webp", "a/b.webp", ".hidden"} {
		err := d.Save(context.Background(), key, strings.NewReader("x"), "text/plain")
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestS3_URL(t *testing.T) {
	s := NewS3(config.S3Config{Bucket: "avatars", Region: "sa-east-1"})
	assert.Equal(t, "https://avatars.s3.sa-east-1.amazonaws.com/a.webp", s.URL("a.webp"))

	custom := NewS3(config.S3Config{Bucket: "avatars", Region: "us-east-1", Endpoint: "http://minio:9000", PublicURL: "http://cdn.local/avatars/"})
	assert.Equal(t, "http://cdn.local/avatars/a.webp", custom.URL("a.webp"))
}
