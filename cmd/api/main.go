package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gobarber/internal/audit"
	"github.com/BruksfildServices01/gobarber/internal/auth"
	"github.com/BruksfildServices01/gobarber/internal/config"
	dbpkg "github.com/BruksfildServices01/gobarber/internal/db"
	userDomain "github.com/BruksfildServices01/gobarber/internal/domain/user"
	"github.com/BruksfildServices01/gobarber/internal/imaging"
	infraRepo "github.com/BruksfildServices01/gobarber/internal/infra/repository"
	"github.com/BruksfildServices01/gobarber/internal/infra/storage"
	"github.com/BruksfildServices01/gobarber/internal/ratelimit"
	"github.com/BruksfildServices01/gobarber/internal/routes"
	"github.com/BruksfildServices01/gobarber/internal/timezone"
	"github.com/BruksfildServices01/gobarber/internal/validators"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}

	avatars, filesDir, err := newStorage(cfg)
	if err != nil {
		return err
	}

	limiter, closeLimiter, err := newLimiter(cfg, log)
	if err != nil {
		return err
	}
	defer closeLimiter()

	recorder := audit.NewGormRecorder(db)
	dispatcher := audit.NewDispatcher(recorder, log.Named("audit"), 256)
	defer dispatcher.Close()

	var validatorOpts []validators.Option
	if cfg.CheckEmailDomain {
		validatorOpts = append(validatorOpts, validators.WithEmailDomainCheck(validators.IsEmailDomainValid))
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Dependencies{
		Users:        infraRepo.NewUserGormRepository(db),
		Appointments: infraRepo.NewAppointmentGormRepository(db),
		AuditLogs:    recorder,
		Audit:        dispatcher,
		Storage:      avatars,
		Images:       imaging.NewAvatarProcessor(),
		Hasher:       auth.NewBcryptHasher(cfg.BcryptCost),
		Tokens:       auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
		Clock:        timezone.NewClock(cfg.Timezone),
		Validator:    validators.New(validatorOpts...),
		Limiter:      limiter,
		Logger:       log,
		CORSOrigins:  cfg.CORSOrigins,
		FilesDir:     filesDir,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// newStorage returns the avatar store and, for the disk driver, the
// directory served under /files.
func newStorage(cfg *config.Config) (userDomain.AvatarStorage, string, error) {
	if cfg.StorageDriver == config.StorageS3 {
		return storage.NewS3(cfg.S3), "", nil
	}

	disk, err := storage.NewDisk(cfg.UploadDir, cfg.AppURL)
	if err != nil {
		return nil, "", err
	}
	return disk, disk.Dir(), nil
}

// newLimiter uses redis when REDIS_ADDR is set so every instance shares the
// same counters. The window lets RATE_LIMIT_BURST requests through every
// burst/rps seconds.
func newLimiter(cfg *config.Config, log *zap.Logger) (ratelimit.Limiter, func(), error) {
	if cfg.RedisAddr == "" {
		mem := ratelimit.NewMemory(cfg.RateLimitRPS, cfg.RateLimitBurst)
		return mem, mem.Close, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	log.Info("rate limiter using redis", zap.String("addr", cfg.RedisAddr))

	window := time.Second
	if cfg.RateLimitRPS > 0 {
		window = time.Duration(float64(cfg.RateLimitBurst) / cfg.RateLimitRPS * float64(time.Second))
	}

	return ratelimit.NewRedis(client, cfg.RateLimitBurst, window), func() { _ = client.Close() }, nil
}
