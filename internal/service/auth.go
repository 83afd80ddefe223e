package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tolaram/sapkb/internal/model"
	"github.com/tolaram/sapkb/internal/repository"
	"github.com/tolaram/sapkb/pkg/utils"
)

type IAuthService interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	logger     *logrus.Logger
	repository repository.IRepository
}

func NewAuthService(l *logrus.Logger, r repository.IRepository) IAuthService {
	return &authService{
		logger:     l,
		repository: r,
	}
}

// Login verifies credentials against the seeded user table. Unknown
// email and wrong password produce the same error so callers cannot
// enumerate accounts.
func (a *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := a.repository.User().GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			a.logger.WithError(err).Error("login: user lookup failed")
		}
		return nil, invalidCredentials(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, invalidCredentials(err)
	}

	return user, nil
}

func invalidCredentials(cause error) error {
	return utils.ErrorBag{
		Code:    utils.InvalidCredentialsErrCode,
		Message: utils.InvalidCredentialsMsg,
		Cause:   cause,
	}
}
