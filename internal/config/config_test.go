package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3333", cfg.Addr())
	assert.Equal(t, StorageDisk, cfg.StorageDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.False(t, cfg.CheckEmailDomain)
	assert.True(t, cfg.IsDevelopment())
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("S3_BUCKET", "avatars")
	t.Setenv("CHECK_EMAIL_DOMAIN", "true")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://gobarber.app,")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
	assert.Equal(t, "avatars", cfg.S3.Bucket)
	assert.True(t, cfg.CheckEmailDomain)
	assert.Equal(t, []string{"http://localhost:3000", "https://gobarber.app"}, cfg.CORSOrigins)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.TrustedProxies)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad ttl", map[string]string{"JWT_TTL": "soon"}},
		{"bad cost", map[string]string{"BCRYPT_COST": "ten"}},
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "ftp"}},
		{"s3 without bucket", map[string]string{"STORAGE_DRIVER": "s3"}},
		{"default secret in production", map[string]string{"APP_ENV": "production"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}
