package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"

	"github.com/tolaram/sapkb/config"
	"github.com/tolaram/sapkb/pkg/mysqldb"
	"github.com/tolaram/sapkb/pkg/response"
	"github.com/tolaram/sapkb/pkg/utils"
	"github.com/tolaram/sapkb/pkg/validation"

	di "github.com/tolaram/sapkb"
	"github.com/tolaram/sapkb/internal/middleware"
	"github.com/tolaram/sapkb/internal/route"
)

const sessionCookieName = "sapkb_session"

type application struct {
	Logger         *logrus.Logger
	LanguageBundle *i18n.Bundle
	MysqlInstance  mysqldb.IMysqlInstance
}

func initApplication(a *application) *fiber.App {
	app := fiber.New(fiber.Config{
		// Override default error handler - Internal server err
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			errBag := utils.ErrorBag{Code: utils.UnexpectedErrCode, Message: utils.UnexpectedMsg}

			return c.Status(code).JSON(response.NewErrorResponse(c.Context(), errBag))
		},
	})

	// Health check routes
	a.addHealthCheckRoutes(app)

	// Common middleware
	a.addCommonMiddleware(app)

	sessionStore := newSessionStore()

	r := di.InitRoute(a.Logger, a.MysqlInstance, sessionStore)
	r.SetupRoutes(&route.AppContext{
		App:          app,
		SessionStore: sessionStore,
	})

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		errBag := utils.ErrorBag{Code: utils.NotFoundErrCode, Message: utils.NotFoundMsg}

		return c.Status(fiber.StatusNotFound).JSON(response.NewErrorResponse(c.Context(), errBag))
	})

	return app
}

func newSessionStore() *session.Store {
	sessionConfig := config.GlobalConfig.GetSessionConfig()

	return session.New(session.Config{
		Expiration:     time.Duration(sessionConfig.TTLHours) * time.Hour,
		KeyLookup:      "cookie:" + sessionCookieName,
		CookieHTTPOnly: true,
		CookieSecure:   config.GlobalConfig.GetWebConfig().IsProductionEnv(),
		CookieSameSite: "Lax",
	})
}

func (a *application) addCommonMiddleware(app *fiber.App) {
	app.Use(middleware.RecoverMiddleware(a.Logger))
	app.Use(requestid.New())
	app.Use(middleware.LoggerMiddleware(a.Logger))
	app.Use(middleware.LocalizerMiddleware(a.LanguageBundle))
	app.Use(cors.New())

	// Validator
	validator := validation.InitValidator()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(utils.ValidatorKey, validator)

		return c.Next()
	})
}

func (a *application) addHealthCheckRoutes(app *fiber.App) {
	healthCheckHandler := di.InitHealthCheckHandler()
	app.Get("/liveness", healthCheckHandler.Liveness)
	app.Get("/readiness", healthCheckHandler.Readiness)
}
