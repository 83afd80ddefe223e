package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tolaram/sapkb/config"
	"github.com/tolaram/sapkb/internal/dto/resource"
	"github.com/tolaram/sapkb/internal/service"
	"github.com/tolaram/sapkb/pkg/response"
)

type IAppHandler interface {
	App(c *fiber.Ctx) error
	Dashboard(c *fiber.Ctx) error
}

type appHandler struct {
	appService service.IAppService
}

func NewAppHandler(as service.IAppService) IAppHandler {
	return &appHandler{
		appService: as,
	}
}

func (a *appHandler) App(c *fiber.Ctx) error {
	return c.JSON(response.NewSuccessResponse(&resource.AppResource{
		App:     config.GlobalConfig.GetWebConfig().AppName,
		Env:     config.GlobalConfig.GetWebConfig().Env,
		Time:    time.Now(),
		Version: config.GlobalConfig.GetWebConfig().Version,
	}))
}

func (a *appHandler) Dashboard(c *fiber.Ctx) error {
	ctx := context.Background()

	resp, err := a.appService.Dashboard(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response.NewErrorResponse(c.Context(), err))
	}

	return c.JSON(response.NewSuccessResponse(resp))
}
