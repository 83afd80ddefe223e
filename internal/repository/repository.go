package repository

import (
	"github.com/tolaram/sapkb/pkg/mysqldb"
)

type IRepository interface {
	ErrorRecord() IErrorRecordRepository
	User() IUserRepository
	Comment() ICommentRepository
}

type repository struct {
	mysqlInstance mysqldb.IMysqlInstance
	errorRecord   IErrorRecordRepository
	user          IUserRepository
	comment       ICommentRepository
}

func NewRepository(
	mi mysqldb.IMysqlInstance,
	er IErrorRecordRepository,
	ur IUserRepository,
	cr ICommentRepository,
) IRepository {
	return &repository{
		mysqlInstance: mi,
		errorRecord:   er,
		user:          ur,
		comment:       cr,
	}
}

func (r *repository) ErrorRecord() IErrorRecordRepository {
	return r.errorRecord
}

func (r *repository) User() IUserRepository {
	return r.user
}

func (r *repository) Comment() ICommentRepository {
	return r.comment
}
