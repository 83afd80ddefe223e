package handler

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/tolaram/sapkb/internal/service"
	"github.com/tolaram/sapkb/pkg/response"
)

const exportFilename = "errors.json"

type IExportHandler interface {
	Export(c *fiber.Ctx) error
}

type exportHandler struct {
	appService service.IAppService
}

func NewExportHandler(as service.IAppService) IExportHandler {
	return &exportHandler{
		appService: as,
	}
}

// Export streams the approved knowledge base as a JSON file download
// for the downstream agent.
func (e *exportHandler) Export(c *fiber.Ctx) error {
	ctx := context.Background()

	records, err := e.appService.Export().ExportApproved(ctx)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(response.NewErrorResponse(c.Context(), err))
	}

	body, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response.NewErrorResponse(c.Context(), err))
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+exportFilename+`"`)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return c.Send(body)
}
