package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-hub/internal/audit"
	"github.com/BruksfildServices01/agenda-hub/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-hub/internal/db"
	"github.com/BruksfildServices01/agenda-hub/internal/handlers"
	"github.com/BruksfildServices01/agenda-hub/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/agenda-hub/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-hub/internal/infra/storage"
	"github.com/BruksfildServices01/agenda-hub/internal/metrics"
	"github.com/BruksfildServices01/agenda-hub/internal/middleware"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
	ucAuth "github.com/BruksfildServices01/agenda-hub/internal/usecase/auth"
	ucBooking "github.com/BruksfildServices01/agenda-hub/internal/usecase/booking"
	ucBusiness "github.com/BruksfildServices01/agenda-hub/internal/usecase/business"
	ucCustomer "github.com/BruksfildServices01/agenda-hub/internal/usecase/customer"
	ucDashboard "github.com/BruksfildServices01/agenda-hub/internal/usecase/dashboard"
	ucDirectory "github.com/BruksfildServices01/agenda-hub/internal/usecase/directory"
	ucSettings "github.com/BruksfildServices01/agenda-hub/internal/usecase/settings"
)

// Deps are the process singletons built in main. Store is nil when logo
// uploads are disabled.
type Deps struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Config  *config.Config
	Log     logrus.FieldLogger
	Audit   *audit.Dispatcher
	Limiter *middleware.IPRateLimiter
	Store   storage.ObjectStore
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	log := d.Log

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	profileRepo := infraRepo.NewProfileGormRepository(d.DB)
	businessRepo := infraRepo.NewBusinessGormRepository(d.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	customerRepo := infraRepo.NewCustomerGormRepository(d.DB)
	auditRepo := infraRepo.NewAuditGormRepository(d.DB)

	tokens := session.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	revoker := cache.NewRedisRevoker(d.Redis)
	directoryCache := cache.NewDirectoryCache(d.Redis, cfg.DirectoryCacheTTL)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAuth.NewRegister(profileRepo, tokens, d.Audit)
	loginUC := ucAuth.NewLogin(profileRepo, tokens)
	logoutUC := ucAuth.NewLogout(revoker)
	getMeUC := ucAuth.NewGetMe(profileRepo)
	createUserUC := ucAuth.NewCreateUser(profileRepo, d.Audit)

	dashboardUC := ucDashboard.NewGetDashboard(businessRepo, bookingRepo, customerRepo, profileRepo)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	updateStatusUC := ucBooking.NewUpdateStatus(bookingRepo, d.Audit)
	createPublicUC := ucBooking.NewCreatePublic(bookingRepo, d.Audit)

	listCustomersUC := ucCustomer.NewListCustomers(customerRepo)

	listDirectoryUC := ucDirectory.NewListDirectory(businessRepo, directoryCache, log)
	getBusinessUC := ucDirectory.NewGetBusiness(businessRepo)

	getSettingsUC := ucSettings.NewGetSettings(businessRepo)
	updateSettingsUC := ucSettings.NewUpdateSettings(businessRepo, directoryCache, d.Audit, log)

	createBusinessUC := ucBusiness.NewCreateBusiness(businessRepo, directoryCache, d.Audit, log)
	listServicesUC := ucBusiness.NewListServices(businessRepo)
	createServiceUC := ucBusiness.NewCreateService(businessRepo, directoryCache, d.Audit, log)
	updateServiceUC := ucBusiness.NewUpdateService(businessRepo, directoryCache, d.Audit, log)
	uploadLogoUC := ucBusiness.NewUploadLogo(businessRepo, d.Store, directoryCache, d.Audit, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC, getMeUC, createUserUC, log)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC, log)
	bookingHandler := handlers.NewBookingHandler(listBookingsUC, updateStatusUC, createPublicUC, log)
	customerHandler := handlers.NewCustomerHandler(listCustomersUC, log)
	directoryHandler := handlers.NewDirectoryHandler(listDirectoryUC, getBusinessUC, log)
	settingsHandler := handlers.NewSettingsHandler(getSettingsUC, updateSettingsUC, log)
	businessHandler := handlers.NewBusinessHandler(
		createBusinessUC,
		listServicesUC,
		createServiceUC,
		updateServiceUC,
		uploadLogoUC,
		log,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditRepo, log)
	healthHandler := handlers.NewHealthHandler(map[string]handlers.Check{
		"database": dbpkg.Ping(d.DB),
		"redis":    cache.Ping(d.Redis),
	}, log)
	webHandler := handlers.NewWebHandler()

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/", webHandler.Index)
	r.GET("/demo", webHandler.Demo)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.RequestTimeout(cfg.QueryTimeout))
	{
		// ------------------------------
		// PUBLIC (rate limited)
		// ------------------------------
		public := api.Group("/")
		public.Use(d.Limiter.Middleware())
		{
			public.POST("/auth/register", authHandler.Register)
			public.POST("/auth/login", authHandler.Login)

			public.GET("/public/businesses", directoryHandler.List)
			public.GET("/public/businesses/:id", directoryHandler.Get)
			public.POST("/public/businesses/:id/bookings", bookingHandler.CreatePublic)
		}

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens, revoker, log))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", authHandler.Me)

			secured.GET("/me/dashboard", dashboardHandler.Get)

			secured.GET("/me/bookings", bookingHandler.List)
			secured.PATCH("/me/bookings/:id/status", bookingHandler.UpdateStatus)

			secured.GET("/me/customers", customerHandler.List)

			secured.POST("/me/businesses", businessHandler.Create)
			secured.GET("/me/businesses/:id/settings", settingsHandler.Get)
			secured.PUT("/me/businesses/:id/settings", settingsHandler.Update)
			secured.POST("/me/businesses/:id/logo", businessHandler.UploadLogo)
			secured.GET("/me/businesses/:id/services", businessHandler.ListServices)
			secured.POST("/me/businesses/:id/services", businessHandler.CreateService)
			secured.PATCH("/me/services/:id", businessHandler.UpdateService)

			secured.GET("/me/audit-logs", auditLogsHandler.List)

			secured.POST("/admin/users", middleware.RequireAdmin(profileRepo, log), authHandler.CreateUser)
		}
	}
}
