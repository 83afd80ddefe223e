package repository

import (
	"context"
	"strings"

	"gorm.io/gorm/clause"

	"github.com/tolaram/sapkb/internal/model"
	"github.com/tolaram/sapkb/pkg/mysqldb"
)

type IUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Upsert(ctx context.Context, user *model.User) error
}

type UserRepository struct {
	mysqlInstance mysqldb.IMysqlInstance
}

func NewUserRepository(mysqlInstance mysqldb.IMysqlInstance) *UserRepository {
	return &UserRepository{
		mysqlInstance: mysqlInstance,
	}
}

func (u *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User

	err := u.mysqlInstance.
		Database().
		WithContext(ctx).
		Where(&model.User{Email: strings.ToLower(email)}).
		First(&user).
		Error

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert inserts a user or, on an email conflict, refreshes role and
// name. Used by the seeding tool so repeated runs keep accounts current.
func (u *UserRepository) Upsert(ctx context.Context, user *model.User) error {
	user.Email = strings.ToLower(user.Email)

	return u.mysqlInstance.
		Database().
		WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "name"}),
		}).
		Create(user).
		Error
}
