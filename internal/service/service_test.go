package service_test

import (
	"context"
	"io"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tolaram/sapkb/internal/model"
	"github.com/tolaram/sapkb/internal/repository"
)

// sqliteInstance satisfies mysqldb.IMysqlInstance with an in-memory
// database so service tests run without a MySQL server.
type sqliteInstance struct {
	db *gorm.DB
}

func (s *sqliteInstance) Database() *gorm.DB {
	return s.db
}

func (s *sqliteInstance) Close() error {
	return nil
}

func (s *sqliteInstance) Ping(_ context.Context) error {
	return nil
}

func newTestRepository(t *testing.T) repository.IRepository {
	c := qt.New(t)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	c.Assert(err, qt.IsNil)

	err = db.AutoMigrate(&model.User{}, &model.ErrorRecord{}, &model.ErrorComment{})
	c.Assert(err, qt.IsNil)

	instance := &sqliteInstance{db: db}

	return repository.NewRepository(
		instance,
		repository.NewErrorRecordRepository(instance),
		repository.NewUserRepository(instance),
		repository.NewCommentRepository(instance),
	)
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}
