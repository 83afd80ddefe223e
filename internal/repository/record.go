package repository

import (
	"context"
	"time"

	"github.com/tolaram/sapkb/internal/model"
	"github.com/tolaram/sapkb/pkg/mysqldb"
)

type IErrorRecordRepository interface {
	Create(ctx context.Context, record *model.ErrorRecord) error
	GetByID(ctx context.Context, id int64) (*model.ErrorRecord, error)
	GetPending(ctx context.Context) ([]model.ErrorRecord, error)
	GetApproved(ctx context.Context) ([]model.ErrorRecord, error)
	CountPending(ctx context.Context) (int64, error)
	Approve(ctx context.Context, id int64, approvedBy string, approvedAt time.Time) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type ErrorRecordRepository struct {
	mysqlInstance mysqldb.IMysqlInstance
}

func NewErrorRecordRepository(mysqlInstance mysqldb.IMysqlInstance) *ErrorRecordRepository {
	return &ErrorRecordRepository{
		mysqlInstance: mysqlInstance,
	}
}

func (e *ErrorRecordRepository) Create(ctx context.Context, record *model.ErrorRecord) error {
	return e.mysqlInstance.
		Database().
		WithContext(ctx).
		Create(record).
		Error
}

func (e *ErrorRecordRepository) GetByID(ctx context.Context, id int64) (*model.ErrorRecord, error) {
	var record model.ErrorRecord

	err := e.mysqlInstance.
		Database().
		WithContext(ctx).
		Where(&model.ErrorRecord{ID: id}).
		First(&record).
		Error

	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (e *ErrorRecordRepository) GetPending(ctx context.Context) ([]model.ErrorRecord, error) {
	return e.listByStatus(ctx, model.StatusPending)
}

func (e *ErrorRecordRepository) GetApproved(ctx context.Context) ([]model.ErrorRecord, error) {
	return e.listByStatus(ctx, model.StatusApproved)
}

func (e *ErrorRecordRepository) listByStatus(ctx context.Context, status string) ([]model.ErrorRecord, error) {
	var records []model.ErrorRecord

	err := e.mysqlInstance.
		Database().
		WithContext(ctx).
		Where("status = ?", status).
		Order("id desc").
		Find(&records).
		Error

	if err != nil {
		return nil, err
	}
	return records, nil
}

func (e *ErrorRecordRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64

	err := e.mysqlInstance.
		Database().
		WithContext(ctx).
		Model(&model.ErrorRecord{}).
		Where("status = ?", model.StatusPending).
		Count(&count).
		Error

	if err != nil {
		return 0, err
	}
	return count, nil
}

// Approve stamps approval metadata on a PENDING record. The status
// guard in the WHERE clause makes the write conditional: a second
// approval of the same id, or an approval racing a rejection, matches
// zero rows and reports false without touching the row.
func (e *ErrorRecordRepository) Approve(ctx context.Context, id int64, approvedBy string, approvedAt time.Time) (bool, error) {
	result := e.mysqlInstance.
		Database().
		WithContext(ctx).
		Model(&model.ErrorRecord{}).
		Where("id = ? AND status = ?", id, model.StatusPending).
		Updates(map[string]interface{}{
			"status":      model.StatusApproved,
			"approved_by": approvedBy,
			"approved_at": approvedAt,
		})

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes a PENDING record outright. Rejection keeps no trace.
func (e *ErrorRecordRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := e.mysqlInstance.
		Database().
		WithContext(ctx).
		Where("id = ? AND status = ?", id, model.StatusPending).
		Delete(&model.ErrorRecord{})

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
