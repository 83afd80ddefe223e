package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/tolaram/sapkb/internal/dto/request"
	"github.com/tolaram/sapkb/internal/dto/resource"
	"github.com/tolaram/sapkb/internal/service"
	"github.com/tolaram/sapkb/pkg/response"
	"github.com/tolaram/sapkb/pkg/utils"
)

const landingPath = "/api/v1/dashboard"

type IAuthHandler interface {
	Login(c *fiber.Ctx) error
	Logout(c *fiber.Ctx) error
	Me(c *fiber.Ctx) error
}

type authHandler struct {
	appService service.IAppService
	store      *session.Store
}

func NewAuthHandler(as service.IAppService, store *session.Store) IAuthHandler {
	return &authHandler{
		appService: as,
		store:      store,
	}
}

func (a *authHandler) Login(c *fiber.Ctx) error {
	sess, err := a.store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response.NewErrorResponse(c.Context(), err))
	}

	// Already signed in callers land on the dashboard instead.
	if id, ok := sess.Get(utils.SessionUserIDKey).(int64); ok && id != 0 {
		return c.Redirect(landingPath, fiber.StatusFound)
	}

	var req request.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewBodyParserErrorResponse())
	}

	if errs := utils.ValidateWithContext(c.Context(), req); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewValidationErrorResponse(errs))
	}

	ctx := context.Background()

	user, err := a.appService.Auth().Login(ctx, req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(response.NewErrorResponse(c.Context(), err))
	}

	sess.Set(utils.SessionUserIDKey, user.ID)
	sess.Set(utils.SessionUserEmailKey, user.Email)
	sess.Set(utils.SessionUserNameKey, user.Name)
	sess.Set(utils.SessionUserRoleKey, user.Role)

	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response.NewErrorResponse(c.Context(), err))
	}

	return c.JSON(response.NewSuccessResponse(&resource.SessionUserResource{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}))
}

func (a *authHandler) Logout(c *fiber.Ctx) error {
	sess, err := a.store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response.NewErrorResponse(c.Context(), err))
	}

	if err := sess.Destroy(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response.NewErrorResponse(c.Context(), err))
	}

	return c.JSON(response.NewSuccessResponse(fiber.Map{"loggedOut": true}))
}

func (a *authHandler) Me(c *fiber.Ctx) error {
	id, _ := c.Locals(utils.SessionUserIDKey).(int64)
	email, _ := c.Locals(utils.SessionUserEmailKey).(string)
	name, _ := c.Locals(utils.SessionUserNameKey).(string)
	role, _ := c.Locals(utils.SessionUserRoleKey).(string)

	return c.JSON(response.NewSuccessResponse(&resource.SessionUserResource{
		ID:    id,
		Email: email,
		Name:  name,
		Role:  role,
	}))
}
