package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/nexus-os/office-backend/internal/domain/user"
	"github.com/nexus-os/office-backend/internal/handler/http/middleware"
	"github.com/nexus-os/office-backend/internal/pkg/jwt"
)

type RouterConfig struct {
	AppName        string
	Version        string
	Env            string
	LogLevel       slog.Level
	AllowedOrigins []string
}

// Handlers groups every handler mounted under /api/v1
type Handlers struct {
	Auth         AuthHandler
	User         UserHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Announcement AnnouncementHandler
	Document     DocumentHandler
	Task         TaskHandler
	Payroll      PayrollHandler
	Notification NotificationHandler
	Dashboard    DashboardHandler
	System       SystemHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, loginLimiter *middleware.IPRateLimiter, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimiter.Handler).Post("/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService))
				r.Post("/logout", h.Auth.Logout)
				r.Get("/me", h.Auth.Me)
				r.Get("/sse-token", h.Auth.GetSSEToken)
			})
		})

		// Authenticated by the short-lived token in the query
		r.Get("/events", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/users", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionDirectoryView)).Get("/", h.User.List)
				r.With(middleware.RequirePermission(user.PermissionUserManage)).Post("/", h.User.Create)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/", h.Attendance.List)
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/today", h.Attendance.Today)
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).Get("/me", h.Attendance.GetMyAttendance)

				// Employee only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceCreate))
					r.Post("/check-in", h.Attendance.CheckIn)
					r.Post("/check-out", h.Attendance.CheckOut)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).Get("/", h.Leave.ListRequests)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewOwn)).Get("/me", h.Leave.GetMyRequests)
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).Post("/", h.Leave.CreateRequest)
				r.With(middleware.RequirePermission(user.PermissionLeaveApprove)).Put("/{id}/status", h.Leave.UpdateStatus)
			})

			r.Route("/announcements", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAnnouncementView)).Get("/", h.Announcement.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAnnouncementManage))
					r.Post("/", h.Announcement.Create)
					r.Post("/draft", h.Announcement.Draft)
				})
			})

			r.With(middleware.RequirePermission(user.PermissionDocumentView)).Get("/documents", h.Document.List)

			r.Route("/tasks", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionTaskManageOwn))
				r.Get("/", h.Task.List)
				r.Post("/", h.Task.Create)
				r.Put("/{id}/status", h.Task.UpdateStatus)
				r.Delete("/{id}", h.Task.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionPayrollViewAll)).Get("/", h.Payroll.List)
				r.With(middleware.RequirePermission(user.PermissionPayrollViewOwn)).Get("/me", h.Payroll.GetMyPayroll)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Put("/read-all", h.Notification.MarkAllRead)
				r.Put("/{id}/read", h.Notification.MarkRead)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.With(middleware.RequirePermission(user.PermissionDashboardView)).Get("/dashboard/today", h.Dashboard.GetTodayStats)
				r.With(middleware.RequirePermission(user.PermissionSystemReset)).Post("/system/reset", h.System.Reset)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})
	return r
}
