package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gobarber/internal/audit"
	"github.com/BruksfildServices01/gobarber/internal/auth"
	apDomain "github.com/BruksfildServices01/gobarber/internal/domain/appointment"
	userDomain "github.com/BruksfildServices01/gobarber/internal/domain/user"
	"github.com/BruksfildServices01/gobarber/internal/handlers"
	"github.com/BruksfildServices01/gobarber/internal/middleware"
	"github.com/BruksfildServices01/gobarber/internal/ratelimit"
	"github.com/BruksfildServices01/gobarber/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/gobarber/internal/usecase/appointment"
	ucUser "github.com/BruksfildServices01/gobarber/internal/usecase/user"
	"github.com/BruksfildServices01/gobarber/internal/validators"
)

// Dependencies are the process-lifetime singletons the routes are built
// from. Limiter and AuditLogs may be nil; FilesDir is set only for the disk
// storage driver.
type Dependencies struct {
	Users        userDomain.Repository
	Appointments apDomain.Repository
	AuditLogs    handlers.AuditLister
	Audit        *audit.Dispatcher

	Storage userDomain.AvatarStorage
	Images  userDomain.ImageProcessor
	Hasher  userDomain.HashProvider
	Tokens  *auth.TokenIssuer

	Clock     *timezone.Clock
	Validator *validators.Validator
	Limiter   ratelimit.Limiter
	Logger    *zap.Logger

	CORSOrigins []string
	FilesDir    string
}

func RegisterRoutes(r *gin.Engine, d Dependencies) {

	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(d.CORSOrigins))
	if d.Limiter != nil {
		r.Use(middleware.RateLimit(d.Limiter, log))
	}

	// ======================================================
	// USE CASES: USERS
	// ======================================================
	createUserUC := ucUser.NewCreateUser(d.Users, d.Hasher, d.Audit)
	authenticateUC := ucUser.NewAuthenticateUser(d.Users, d.Hasher, d.Tokens)
	showProfileUC := ucUser.NewShowProfile(d.Users)
	updateProfileUC := ucUser.NewUpdateProfile(d.Users, d.Hasher, d.Audit)
	updateAvatarUC := ucUser.NewUpdateUserAvatar(d.Users, d.Storage, d.Images, d.Audit, log)
	listProvidersUC := ucUser.NewListProviders(d.Users)

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(d.Appointments, d.Users, d.Clock, d.Audit)
	listProviderAppointmentsUC := ucAppointment.NewListProviderAppointments(d.Appointments, d.Clock)
	monthAvailabilityUC := ucAppointment.NewListProviderMonthAvailability(d.Appointments, d.Clock)
	dayAvailabilityUC := ucAppointment.NewListProviderDayAvailability(d.Appointments, d.Clock)

	// ======================================================
	// HANDLERS
	// ======================================================
	userHandler := handlers.NewUserHandler(createUserUC, updateAvatarUC, d.Validator, d.Storage, log)
	sessionHandler := handlers.NewSessionHandler(authenticateUC, d.Validator, d.Storage, log)
	profileHandler := handlers.NewProfileHandler(showProfileUC, updateProfileUC, d.Validator, d.Storage, log)
	providerHandler := handlers.NewProviderHandler(listProvidersUC, monthAvailabilityUC, dayAvailabilityUC, d.Storage, log)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listProviderAppointmentsUC,
		d.Validator,
		d.Storage,
		log,
	)

	// ======================================================
	// ROTAS PÚBLICAS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if d.FilesDir != "" {
		r.Static("/files", d.FilesDir)
	}

	r.POST("/users", userHandler.Create)
	r.POST("/sessions", sessionHandler.Create)

	// ======================================================
	// ROTAS PRIVADAS
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(d.Tokens, log))
	{
		secured.PATCH("/users/avatar", userHandler.UpdateAvatar)

		secured.GET("/profile", profileHandler.Show)
		secured.PUT("/profile", profileHandler.Update)

		if d.AuditLogs != nil {
			auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs, log)
			secured.GET("/profile/audit-logs", auditLogsHandler.List)
		}

		secured.GET("/providers", providerHandler.List)
		secured.GET("/providers/:id/month-availability", providerHandler.MonthAvailability)
		secured.GET("/providers/:id/day-availability", providerHandler.DayAvailability)

		secured.POST("/appointments", appointmentHandler.Create)
		secured.GET("/appointments/me", appointmentHandler.ListMine)
	}
}
