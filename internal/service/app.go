package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/tolaram/sapkb/internal/dto/resource"
	"github.com/tolaram/sapkb/internal/repository"
)

type IAppService interface {
	Dashboard(ctx context.Context) (resource.DashboardResource, error)
	Auth() IAuthService
	ErrorRecord() IErrorRecordService
	Export() IExportService
}

type appService struct {
	logger             *logrus.Logger
	repository         repository.IRepository
	authService        IAuthService
	errorRecordService IErrorRecordService
	exportService      IExportService
}

func NewAppService(
	l *logrus.Logger,
	r repository.IRepository,
	as IAuthService,
	ers IErrorRecordService,
	es IExportService,
) IAppService {
	return &appService{
		logger:             l,
		repository:         r,
		authService:        as,
		errorRecordService: ers,
		exportService:      es,
	}
}

func (a *appService) Dashboard(ctx context.Context) (resource.DashboardResource, error) {
	count, err := a.repository.ErrorRecord().CountPending(ctx)
	if err != nil {
		a.logger.WithError(err).Error("dashboard: count pending failed")
		return resource.DashboardResource{}, err
	}

	return resource.DashboardResource{PendingCount: count}, nil
}

func (a *appService) Auth() IAuthService {
	return a.authService
}

func (a *appService) ErrorRecord() IErrorRecordService {
	return a.errorRecordService
}

func (a *appService) Export() IExportService {
	return a.exportService
}
