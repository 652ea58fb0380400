package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/config"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	JWTService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	dashboardHandler DashboardHandler,
	userHandler UserHandler,
	streamHandler StreamHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	authLimiter := middleware.NewRateLimiter(cfg.RateLimit.AuthPerMinute)

	r.Route("/api/v1", func(r chi.Router) {

		authenticated := func(r chi.Router) {
			// Bearer header only. rawToken must see the same string for the revocation check.
			r.Use(jwtauth.Verify(JWTService.JWTAuth(), jwtauth.TokenFromHeader))
			r.Use(middleware.AuthRequired(JWTService))
		}

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(authLimiter.Handler)
				r.Post("/register", authHandler.Register)
				r.Post("/login", authHandler.Login)
			})
			r.Post("/refresh", authHandler.RefreshToken)

			r.Group(func(r chi.Router) {
				authenticated(r)
				r.Post("/logout", authHandler.Logout)
				r.Get("/me", authHandler.Me)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				authenticated(r)

				r.With(middleware.RequirePermission(user.PermissionAttendanceCreate)).Post("/checkin", attendanceHandler.CheckIn)
				r.With(middleware.RequirePermission(user.PermissionAttendanceCreate)).Post("/checkout", attendanceHandler.CheckOut)
				r.Get("/my-history", attendanceHandler.GetMyHistory)
				r.Get("/today", attendanceHandler.GetToday)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/reports", reportHandler.GetReport)
					r.With(middleware.RequirePermission(user.PermissionReportsExport)).Get("/export", reportHandler.ExportCSV)
					r.Get("/all", reportHandler.GetAll)
					r.Get("/today-status", reportHandler.GetTodayStatus)
				})
			})

			// Live feed, the token may come from the query string
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verify(JWTService.JWTAuth(), jwtauth.TokenFromHeader, jwtauth.TokenFromQuery))
				r.Use(middleware.AuthRequired(JWTService))
				r.Use(middleware.RequireManager)
				r.Get("/stream", streamHandler.AttendanceStream)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			authenticated(r)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/employee", dashboardHandler.GetEmployeeDashboard)

				r.Route("/manager", func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", dashboardHandler.GetManagerDashboard)
					r.Get("/monthly", dashboardHandler.GetMonthlySummary)
				})
			})

			r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).Get("/users", userHandler.ListEmployees)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}
