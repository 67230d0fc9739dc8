package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/nexus-os/office-backend/internal/config"
	appHTTP "github.com/nexus-os/office-backend/internal/handler/http"
	"github.com/nexus-os/office-backend/internal/handler/http/middleware"
	"github.com/nexus-os/office-backend/internal/pkg/changefeed"
	"github.com/nexus-os/office-backend/internal/pkg/clock"
	"github.com/nexus-os/office-backend/internal/pkg/cron"
	"github.com/nexus-os/office-backend/internal/pkg/gemini"
	"github.com/nexus-os/office-backend/internal/pkg/jwt"
	"github.com/nexus-os/office-backend/internal/pkg/kv"
	"github.com/nexus-os/office-backend/internal/pkg/latency"
	"github.com/nexus-os/office-backend/internal/pkg/sse"
	"github.com/nexus-os/office-backend/internal/pkg/store"
	"github.com/nexus-os/office-backend/internal/repository/kvstore"
	announcementService "github.com/nexus-os/office-backend/internal/service/announcement"
	attendanceService "github.com/nexus-os/office-backend/internal/service/attendance"
	serviceAuth "github.com/nexus-os/office-backend/internal/service/auth"
	dashboardService "github.com/nexus-os/office-backend/internal/service/dashboard"
	documentService "github.com/nexus-os/office-backend/internal/service/document"
	leaveService "github.com/nexus-os/office-backend/internal/service/leave"
	notificationService "github.com/nexus-os/office-backend/internal/service/notification"
	payrollService "github.com/nexus-os/office-backend/internal/service/payroll"
	"github.com/nexus-os/office-backend/internal/service/seed"
	taskService "github.com/nexus-os/office-backend/internal/service/task"
	userService "github.com/nexus-os/office-backend/internal/service/user"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.App.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	origin := uuid.NewString()
	backend, feed, err := openStorage(ctx, cfg, origin)
	if err != nil {
		return err
	}

	s := store.New(backend,
		store.WithNamespace(cfg.Store.Namespace),
		store.WithOrigin(origin),
		store.WithFeed(feed),
		store.WithLogger(logger),
	)
	defer func() {
		if err := s.Close(); err != nil {
			slog.Error("close store", "error", err)
		}
	}()

	c := clock.Real{Loc: cfg.App.Location()}
	lat := latency.New(cfg.App.LatencyScale)
	hub := sse.NewHub()

	userRepo := kvstore.NewUserRepository(s)
	attendanceRepo := kvstore.NewAttendanceRepository(s)
	leaveRepo := kvstore.NewLeaveRequestRepository(s)
	announcementRepo := kvstore.NewAnnouncementRepository(s, c)
	notificationRepo := kvstore.NewNotificationRepository(s)
	taskRepo := kvstore.NewTaskRepository(s)
	documentRepo := kvstore.NewDocumentRepository(s)
	payrollRepo := kvstore.NewPayrollRepository(s)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	assistant := gemini.NewClient(gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		AccessToken: cfg.Gemini.AccessToken,
		Model:       cfg.Gemini.Model,
		Endpoint:    cfg.Gemini.Endpoint,
	})

	notificationSvc := notificationService.NewNotificationService(s, notificationRepo, userRepo, hub, c, lat)
	userSvc := userService.NewUserService(s, userRepo)
	authService := serviceAuth.NewAuthService(userRepo, JWTService, lat)
	attendanceSvc := attendanceService.NewAttendanceService(s, attendanceRepo, userRepo, c, lat)
	leaveSvc := leaveService.NewLeaveService(s, leaveRepo, notificationSvc, c, lat)
	announcementSvc := announcementService.NewAnnouncementService(s, announcementRepo, notificationSvc, assistant, c, lat)
	taskSvc := taskService.NewTaskService(s, taskRepo, lat)
	documentSvc := documentService.NewDocumentService(documentRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo)
	dashboardSvc := dashboardService.NewDashboardService(userRepo, attendanceRepo, leaveRepo, c)

	scheduler := cron.NewScheduler(logger)
	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(s, attendanceRepo, userRepo, c, rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)), cfg.Seed.ExcludeUserID)
		cron.RegisterAttendanceJobs(scheduler, seeder, cfg.Seed.Interval)
	}

	// every store change, local or from another instance, reaches open streams
	unsubscribe := s.Subscribe(func() {
		hub.Broadcast(sse.Event{Event: sse.EventChange, Data: map[string]string{"namespace": s.Namespace()}})
	})
	defer unsubscribe()

	loginLimiter := middleware.NewIPRateLimiter(rate.Limit(float64(cfg.App.LoginRateLimit)/60), cfg.App.LoginRateBurst)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AppName:        "nexus-office",
		Version:        version,
		Env:            cfg.App.Env,
		LogLevel:       cfg.App.SlogLevel(),
		AllowedOrigins: cfg.App.AllowedOrigins,
	}, JWTService, loginLimiter, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(JWTService, authService, userSvc),
		User:         appHTTP.NewUserHandler(userSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
		Document:     appHTTP.NewDocumentHandler(documentSvc),
		Task:         appHTTP.NewTaskHandler(taskSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc, JWTService, hub),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		System:       appHTTP.NewSystemHandler(s),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server running", "addr", server.Addr, "backend", cfg.Store.Backend, "feed", cfg.Feed.Kind)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return s.Listen(gCtx)
	})
	g.Go(func() error {
		return scheduler.Run(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openStorage builds the configured backend and the change feed that goes
// with it.
func openStorage(ctx context.Context, cfg *config.Config, origin string) (kv.Backend, changefeed.Feed, error) {
	var (
		backend     kv.Backend
		redisClient redis.UniversalClient
		pg          *kv.Postgres
		err         error
	)

	switch cfg.Store.Backend {
	case config.BackendMemory:
		backend = kv.NewMemory()
	case config.BackendBolt:
		backend, err = kv.OpenBolt(cfg.Store.BoltPath)
	case config.BackendSQLite:
		backend, err = kv.OpenSQLite(cfg.Store.SQLitePath)
	case config.BackendRedis:
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
		if err = redisClient.Ping(ctx).Err(); err != nil {
			err = fmt.Errorf("connect redis: %w", err)
			break
		}
		backend = kv.NewRedis(redisClient)
	case config.BackendPostgres:
		pg, err = kv.OpenPostgres(ctx, cfg.Store.Postgres.DSN())
		backend = pg
	default:
		err = fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open %s backend: %w", cfg.Store.Backend, err)
	}

	var feed changefeed.Feed
	switch cfg.Feed.Kind {
	case config.FeedNoop:
		feed = changefeed.Noop{}
	case config.FeedLocal:
		feed = changefeed.NewLocal()
	case config.FeedRedis:
		feed = changefeed.NewRedis(redisClient, cfg.Feed.Channel)
	case config.FeedPostgres:
		feed = changefeed.NewPostgres(pg.DB(), cfg.Feed.Channel)
	case config.FeedKafka:
		feed = changefeed.NewKafka(cfg.Feed.KafkaBrokers, cfg.Feed.KafkaTopic, origin)
	default:
		backend.Close()
		return nil, nil, fmt.Errorf("unknown change feed %q", cfg.Feed.Kind)
	}

	return backend, feed, nil
}
