package repository

import (
	"context"

	"github.com/tolaram/sapkb/internal/model"
	"github.com/tolaram/sapkb/pkg/mysqldb"
)

type ICommentRepository interface {
	Create(ctx context.Context, comment *model.ErrorComment) error
	ListByRecordID(ctx context.Context, recordID int64) ([]model.ErrorComment, error)
	ListByRecordIDs(ctx context.Context, recordIDs []int64) ([]model.ErrorComment, error)
}

type CommentRepository struct {
	mysqlInstance mysqldb.IMysqlInstance
}

func NewCommentRepository(mysqlInstance mysqldb.IMysqlInstance) *CommentRepository {
	return &CommentRepository{
		mysqlInstance: mysqlInstance,
	}
}

func (c *CommentRepository) Create(ctx context.Context, comment *model.ErrorComment) error {
	return c.mysqlInstance.
		Database().
		WithContext(ctx).
		Create(comment).
		Error
}

func (c *CommentRepository) ListByRecordID(ctx context.Context, recordID int64) ([]model.ErrorComment, error) {
	var comments []model.ErrorComment

	err := c.mysqlInstance.
		Database().
		WithContext(ctx).
		Where(&model.ErrorComment{RecordID: recordID}).
		Order("created_at asc").
		Find(&comments).
		Error

	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *CommentRepository) ListByRecordIDs(ctx context.Context, recordIDs []int64) ([]model.ErrorComment, error) {
	var comments []model.ErrorComment

	if len(recordIDs) == 0 {
		return comments, nil
	}

	err := c.mysqlInstance.
		Database().
		WithContext(ctx).
		Where("record_id IN ?", recordIDs).
		Order("created_at asc").
		Find(&comments).
		Error

	if err != nil {
		return nil, err
	}
	return comments, nil
}
