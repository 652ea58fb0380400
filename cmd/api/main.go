package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/config"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	appHTTP "github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/logger"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/attendance-tracker-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/dashboard"
	reportService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/report"
	userService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/user"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	log := logger.New(cfg.Log, cfg.App)
	slog.SetDefault(log)

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("error loading timezone: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("error migrating database: %w", err)
		}
	}

	jwtOpts := []jwt.Option{jwt.WithSecureCookie(cfg.App.Env == "production")}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("error connecting to redis: %w", err)
		}
		jwtOpts = append(jwtOpts, jwt.WithRevocationStore(jwt.NewRedisRevocationStore(rdb)))
		slog.Info("Using redis token revocation store", "addr", cfg.Redis.Addr)
	}

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, jwtOpts...)
	if err != nil {
		return fmt.Errorf("error creating jwt service: %w", err)
	}

	clk := clock.New(loc)
	lateHour, lateMinute := cfg.LateCutoff()
	policy := attendance.Policy{
		LateHour:               lateHour,
		LateMinute:             lateMinute,
		AllowCheckoutOverwrite: cfg.Attendance.AllowCheckoutOverwrite,
	}

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	hub := sse.NewHub()

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	userSvc := userService.NewUserService(userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, clk, policy, attendanceService.WithPublisher(hub))
	reportSvc := reportService.NewReportService(reportRepo, clk)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, userRepo, clk)

	router := appHTTP.NewRouter(
		cfg,
		log,
		JWTService,
		appHTTP.NewAuthHandler(JWTService, authSvc, userSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewReportHandler(reportSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewUserHandler(userSvc),
		appHTTP.NewStreamHandler(hub),
	)

	scheduler := cron.NewScheduler()
	cron.NewTokenJobs(JWTRepository, cfg.Maintenance.TokenPurgeRetention).RegisterJobs(scheduler, cfg.Maintenance.TokenPurgeInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// cancelled on SIGTERM so open event streams end before Shutdown waits on them
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "timezone", loc.String(), "late_cutoff", cfg.Attendance.LateCutoff)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	return nil
}
