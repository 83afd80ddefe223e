package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/tolaram/sapkb/internal/handler"
	"github.com/tolaram/sapkb/internal/middleware"
	"github.com/tolaram/sapkb/internal/model"
)

type AppContext struct {
	App          *fiber.App
	SessionStore *session.Store
}

type IRoute interface {
	SetupRoutes(ac *AppContext)
}

type route struct {
	appHandler         handler.IAppHandler
	authHandler        handler.IAuthHandler
	errorRecordHandler handler.IErrorRecordHandler
	exportHandler      handler.IExportHandler
}

func NewRoute(
	apHandler handler.IAppHandler,
	auHandler handler.IAuthHandler,
	erHandler handler.IErrorRecordHandler,
	exHandler handler.IExportHandler,
) IRoute {
	return &route{
		appHandler:         apHandler,
		authHandler:        auHandler,
		errorRecordHandler: erHandler,
		exportHandler:      exHandler,
	}
}

func (r *route) SetupRoutes(ac *AppContext) {
	api := ac.App.Group("/api")

	// v1 routes
	v1Group := api.Group("/v1")

	v1Group.Get("/", r.appHandler.App)
	v1Group.Post("/auth/login", r.authHandler.Login)

	// Everything below requires a session cookie.
	authed := v1Group.Group("/", middleware.SessionAuthMiddleware(ac.SessionStore))

	authed.Post("/auth/logout", r.authHandler.Logout)
	authed.Get("/auth/me", r.authHandler.Me)
	authed.Get("/dashboard", r.appHandler.Dashboard)

	r.errorRoutes(authed)
}

func (r *route) errorRoutes(fr fiber.Router) {
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	errGroup := fr.Group("/errors")
	errGroup.Post("/", r.errorRecordHandler.Submit)
	errGroup.Post("/bulk", r.errorRecordHandler.BulkUpload)
	errGroup.Get("/pending", r.errorRecordHandler.Pending)
	errGroup.Get("/approved", r.errorRecordHandler.Approved)
	errGroup.Get("/:id/comments", r.errorRecordHandler.Comments)
	errGroup.Post("/:id/comments", r.errorRecordHandler.AddComment)

	// Approval workflow and export are restricted to the elevated role.
	errGroup.Post("/approve-all", adminOnly, r.errorRecordHandler.ApproveAll)
	errGroup.Post("/reject-all", adminOnly, r.errorRecordHandler.RejectAll)
	errGroup.Post("/:id/approve", adminOnly, r.errorRecordHandler.Approve)
	errGroup.Post("/:id/reject", adminOnly, r.errorRecordHandler.Reject)

	fr.Get("/export", adminOnly, r.exportHandler.Export)
}
