package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tolaram/sapkb/internal/dto/request"
	"github.com/tolaram/sapkb/internal/service"
	"github.com/tolaram/sapkb/pkg/response"
	"github.com/tolaram/sapkb/pkg/utils"
)

const fallbackApproverName = "Admin"

type IErrorRecordHandler interface {
	Submit(c *fiber.Ctx) error
	BulkUpload(c *fiber.Ctx) error
	Pending(c *fiber.Ctx) error
	Approved(c *fiber.Ctx) error
	Approve(c *fiber.Ctx) error
	Reject(c *fiber.Ctx) error
	ApproveAll(c *fiber.Ctx) error
	RejectAll(c *fiber.Ctx) error
	Comments(c *fiber.Ctx) error
	AddComment(c *fiber.Ctx) error
}

type errorRecordHandler struct {
	appService service.IAppService
}

func NewErrorRecordHandler(as service.IAppService) IErrorRecordHandler {
	return &errorRecordHandler{
		appService: as,
	}
}

func (e *errorRecordHandler) Submit(c *fiber.Ctx) error {
	var req request.CreateErrorRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewBodyParserErrorResponse())
	}

	if errs := utils.ValidateWithContext(c.Context(), req); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewValidationErrorResponse(errs))
	}

	ctx := context.Background()

	resp, err := e.appService.ErrorRecord().Submit(ctx, req, sessionUserName(c))
	if err != nil {
		return c.Status(errorStatus(err)).JSON(response.NewErrorResponse(c.Context(), err))
	}

	return c.Status(fiber.StatusCreated).JSON(response.NewSuccessResponse(resp))
}

func (e *errorRecordHandler) BulkUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewBodyParserErrorResponse())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewBodyParserErrorResponse())
	}
	defer file.Close()

	ctx := context.Background()

	resp, err := e.appService.ErrorRecord().BulkUpload(ctx, fileHeader.Filename, file, sessionUserName(c))
	if err != nil {
		return c.Status(errorStatus(err)).JSON(response.NewErrorResponse(c.Context(), err))
	}

	return c.JSON(response.NewSuccessResponse(resp))
}

func (e *errorRecordHandler) Pending(c *fiber.Ctx) error {
	ctx := context.Background()

	records, err := e.appService.ErrorRecord().Pending(ctx)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(response.NewErrorResponse(c.Context(), err))
	}

	return c.JSON(response.NewSuccessResponse(records))
}

func (e *errorRecordHandler) Approved(c *fiber.Ctx) error {
	ctx := context.Background()

	records, err := e.appService.ErrorRecord().Approved(ctx, c.Query("q"))
	if err != nil {
		return c.Status(errorStatus(err)).JSON(response.NewErrorResponse(c.Context(), err))
	}

	return c.JSON(response.NewSuccessResponse(records))
}

func (e *errorRecordHandler) Approve(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewBodyParserErrorResponse())
	}

	ctx := context.Background()

	resp, err := e.appService.ErrorRecord().Approve(ctx, id, sessionUserName(c))
	if err != nil {
		return c.Status(errorStatus(err)).JSON(response.NewErrorResponse(c.Context(), err))
	}

	return c.JSON(response.NewSuccessResponse(resp))
}

func (e *errorRecordHandler) Reject(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewBodyParserErrorResponse())
	}

	ctx := context.Background()

	resp, err := e.appService.ErrorRecord().Reject(ctx, id)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(response.NewErrorResponse(c.Context(), err))
	}

	return c.JSON(response.NewSuccessResponse(resp))
}

func (e *errorRecordHandler) ApproveAll(c *fiber.Ctx) error {
	ctx := context.Background()

	resp, err := e.appService.ErrorRecord().ApproveAll(ctx, sessionUserName(c))
	if err != nil {
		return c.Status(errorStatus(err)).JSON(response.NewErrorResponse(c.Context(), err))
	}

	return c.JSON(response.NewSuccessResponse(resp))
}

func (e *errorRecordHandler) RejectAll(c *fiber.Ctx) error {
	ctx := context.Background()

	resp, err := e.appService.ErrorRecord().RejectAll(ctx)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(response.NewErrorResponse(c.Context(), err))
	}

	return c.JSON(response.NewSuccessResponse(resp))
}

func (e *errorRecordHandler) Comments(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewBodyParserErrorResponse())
	}

	ctx := context.Background()

	comments, err := e.appService.ErrorRecord().Comments(ctx, id)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(response.NewErrorResponse(c.Context(), err))
	}

	return c.JSON(response.NewSuccessResponse(comments))
}

func (e *errorRecordHandler) AddComment(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewBodyParserErrorResponse())
	}

	var req request.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewBodyParserErrorResponse())
	}

	if errs := utils.ValidateWithContext(c.Context(), req); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewValidationErrorResponse(errs))
	}

	ctx := context.Background()

	resp, err := e.appService.ErrorRecord().AddComment(ctx, id, sessionUserName(c), req.Text)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(response.NewErrorResponse(c.Context(), err))
	}

	return c.Status(fiber.StatusCreated).JSON(response.NewSuccessResponse(resp))
}

func recordID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func sessionUserName(c *fiber.Ctx) string {
	if name, ok := c.Locals(utils.SessionUserNameKey).(string); ok && name != "" {
		return name
	}

	return fallbackApproverName
}

func errorStatus(err error) int {
	var bag utils.ErrorBag
	if errors.As(err, &bag) {
		switch bag.GetCode() {
		case utils.NotFoundErrCode:
			return fiber.StatusNotFound
		case utils.InvalidCredentialsErrCode:
			return fiber.StatusUnauthorized
		default:
			return fiber.StatusUnprocessableEntity
		}
	}

	return fiber.StatusInternalServerError
}
