package sapkb

import (
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"

	"github.com/tolaram/sapkb/internal/handler"
	"github.com/tolaram/sapkb/internal/repository"
	"github.com/tolaram/sapkb/internal/route"
	"github.com/tolaram/sapkb/internal/service"
	"github.com/tolaram/sapkb/pkg/mysqldb"
)

func InitHealthCheckHandler() handler.IHealthCheckHandler {
	iHealthCheckHandler := handler.NewHealthCheckHandler()
	return iHealthCheckHandler
}

func InitRoute(l *logrus.Logger, mysqlInstance mysqldb.IMysqlInstance, sessionStore *session.Store) route.IRoute {
	iErrorRecordRepository := repository.NewErrorRecordRepository(mysqlInstance)
	iUserRepository := repository.NewUserRepository(mysqlInstance)
	iCommentRepository := repository.NewCommentRepository(mysqlInstance)
	iRepository := repository.NewRepository(mysqlInstance, iErrorRecordRepository, iUserRepository, iCommentRepository)

	iAuthService := service.NewAuthService(l, iRepository)
	iErrorRecordService := service.NewErrorRecordService(l, iRepository)
	iExportService := service.NewExportService(l, iRepository)
	iAppService := service.NewAppService(l, iRepository, iAuthService, iErrorRecordService, iExportService)

	iAppHandler := handler.NewAppHandler(iAppService)
	iAuthHandler := handler.NewAuthHandler(iAppService, sessionStore)
	iErrorRecordHandler := handler.NewErrorRecordHandler(iAppService)
	iExportHandler := handler.NewExportHandler(iAppService)

	iRoute := route.NewRoute(iAppHandler, iAuthHandler, iErrorRecordHandler, iExportHandler)
	return iRoute
}
