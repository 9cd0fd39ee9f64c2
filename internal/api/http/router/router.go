package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/internlink/internlink_backend/config"
	"github.com/internlink/internlink_backend/internal/api/http/handler"
	"github.com/internlink/internlink_backend/internal/api/http/middleware"
	"github.com/internlink/internlink_backend/internal/service/admin"
	"github.com/internlink/internlink_backend/internal/service/application"
	"github.com/internlink/internlink_backend/internal/service/auth"
	"github.com/internlink/internlink_backend/internal/service/college"
	"github.com/internlink/internlink_backend/internal/service/company"
	"github.com/internlink/internlink_backend/internal/service/file"
	"github.com/internlink/internlink_backend/internal/service/internship"
	"github.com/internlink/internlink_backend/internal/service/notification"
	"github.com/internlink/internlink_backend/internal/service/student"
	"github.com/internlink/internlink_backend/pkg/authorize"
	pasetotoken "github.com/internlink/internlink_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	AuthSvc         auth.Service
	StudentSvc      student.Service
	CompanySvc      company.Service
	CollegeSvc      college.Service
	InternshipSvc   internship.Service
	ApplicationSvc  application.Service
	AdminSvc        admin.Service
	NotificationSvc notification.Service
	FileSvc         file.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}
	requireSelf := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequireSelfPermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	studentH := handler.NewStudentHandler(r.p.StudentSvc)
	companyH := handler.NewCompanyHandler(r.p.CompanySvc)
	collegeH := handler.NewCollegeHandler(r.p.CollegeSvc)
	internshipH := handler.NewInternshipHandler(r.p.InternshipSvc)
	applicationH := handler.NewApplicationHandler(r.p.ApplicationSvc)
	adminH := handler.NewAdminHandler(r.p.AdminSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)
	fileH := handler.NewFileHandler(r.p.FileSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerStudentRoutes(api, studentH, applicationH, fileH, authRequired, requirePerm, requireSelf)
	r.registerCompanyRoutes(api, companyH, internshipH, applicationH, fileH, authRequired, requirePerm, requireSelf)
	r.registerCollegeRoutes(api, collegeH, studentH, authRequired, requirePerm, requireSelf)
	r.registerInternshipRoutes(api, internshipH, applicationH, authRequired, requirePerm)
	r.registerAdminRoutes(api, adminH, authRequired)
	r.registerNotificationRoutes(api, notificationH, authRequired, requireSelf)
	r.registerFileRoutes(api, fileH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
