package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tolaram/sapkb/internal/dto/request"
	"github.com/tolaram/sapkb/internal/dto/resource"
	"github.com/tolaram/sapkb/internal/ingest"
	"github.com/tolaram/sapkb/internal/model"
	"github.com/tolaram/sapkb/internal/repository"
	"github.com/tolaram/sapkb/pkg/utils"
)

type IErrorRecordService interface {
	Submit(ctx context.Context, req request.CreateErrorRecordRequest, createdBy string) (resource.CreateErrorRecordResponse, error)
	BulkUpload(ctx context.Context, filename string, file io.Reader, createdBy string) (resource.BulkUploadResponse, error)
	Pending(ctx context.Context) ([]model.ErrorRecord, error)
	Approved(ctx context.Context, search string) ([]model.ErrorRecord, error)
	Approve(ctx context.Context, id int64, approvedBy string) (resource.ApprovalActionResource, error)
	Reject(ctx context.Context, id int64) (resource.ApprovalActionResource, error)
	ApproveAll(ctx context.Context, approvedBy string) (resource.BulkApprovalResource, error)
	RejectAll(ctx context.Context) (resource.BulkApprovalResource, error)
	Comments(ctx context.Context, recordID int64) ([]resource.CommentResource, error)
	AddComment(ctx context.Context, recordID int64, author, text string) (resource.CommentResource, error)
}

type errorRecordService struct {
	logger     *logrus.Logger
	repository repository.IRepository
}

func NewErrorRecordService(l *logrus.Logger, r repository.IRepository) IErrorRecordService {
	return &errorRecordService{
		logger:     l,
		repository: r,
	}
}

func (e *errorRecordService) Submit(ctx context.Context, req request.CreateErrorRecordRequest, createdBy string) (resource.CreateErrorRecordResponse, error) {
	draft := ingest.ApplyDefaults(ingest.Draft{
		Module:           req.Module,
		ErrorCode:        req.IssueName,
		ErrorDescription: req.IssueDescription,
		SolutionType:     req.SolutionType,
		StepsToResolve:   req.StepByStep,
		LogCategory:      intOrZero(req.LogCategory),
		LogSubcategory:   req.LogSubcategory,
		Notes:            req.Notes,
	})

	record, err := e.insertDraft(ctx, draft, createdBy)
	if err != nil {
		e.logger.WithError(err).Error("submit: insert failed")
		return resource.CreateErrorRecordResponse{}, err
	}

	return resource.CreateErrorRecordResponse{
		ID:     record.ID,
		Status: record.Status,
	}, nil
}

// BulkUpload parses and normalizes a tabular file, then inserts one row
// per draft. Inserts are independent; a failed insert is logged and
// counted without rolling back the rest of the batch.
func (e *errorRecordService) BulkUpload(ctx context.Context, filename string, file io.Reader, createdBy string) (resource.BulkUploadResponse, error) {
	rows, err := ingest.ReadFile(filename, file)
	if err != nil {
		if errors.Is(err, ingest.ErrUnsupportedFormat) {
			return resource.BulkUploadResponse{}, utils.ErrorBag{
				Code:    utils.UnsupportedFileErrCode,
				Message: utils.UnsupportedFileMsg,
				Cause:   err,
			}
		}
		return resource.BulkUploadResponse{}, err
	}

	drafts, err := ingest.Normalize(rows)
	if err != nil {
		return resource.BulkUploadResponse{}, utils.ErrorBag{
			Code:    utils.EmptyFileErrCode,
			Message: utils.EmptyFileMsg,
			Cause:   err,
		}
	}

	out := resource.BulkUploadResponse{Parsed: len(drafts)}
	for _, draft := range drafts {
		if _, err := e.insertDraft(ctx, draft, createdBy); err != nil {
			e.logger.WithError(err).WithField("issue", draft.ErrorCode).Error("bulk upload: insert failed")
			out.Failed++
			continue
		}
		out.Inserted++
	}

	return out, nil
}

func (e *errorRecordService) insertDraft(ctx context.Context, draft ingest.Draft, createdBy string) (*model.ErrorRecord, error) {
	category := draft.LogCategory

	record := &model.ErrorRecord{
		ErrorCode:        draft.ErrorCode,
		ErrorDescription: draft.ErrorDescription,
		Module:           draft.Module,
		SolutionType:     draft.SolutionType,
		StepsToResolve:   draft.StepsToResolve,
		ExpertComment:    draft.Notes,
		LogCategory:      &category,
		LogSubcategory:   draft.LogSubcategory,
		Status:           model.StatusPending,
		CreatedAt:        time.Now(),
		CreatedBy:        createdBy,
	}

	if err := e.repository.ErrorRecord().Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (e *errorRecordService) Pending(ctx context.Context) ([]model.ErrorRecord, error) {
	records, err := e.repository.ErrorRecord().GetPending(ctx)
	if err != nil {
		e.logger.WithError(err).Error("pending: list failed")
		return nil, err
	}

	return records, nil
}

func (e *errorRecordService) Approved(ctx context.Context, search string) ([]model.ErrorRecord, error) {
	records, err := e.repository.ErrorRecord().GetApproved(ctx)
	if err != nil {
		e.logger.WithError(err).Error("approved: list failed")
		return nil, err
	}

	if search == "" {
		return records, nil
	}

	needle := strings.ToLower(search)
	filtered := make([]model.ErrorRecord, 0, len(records))
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.ErrorCode), needle) ||
			strings.Contains(strings.ToLower(record.ErrorDescription), needle) ||
			strings.Contains(strings.ToLower(record.Module), needle) {
			filtered = append(filtered, record)
		}
	}

	return filtered, nil
}

// Approve moves a PENDING record to APPROVED, stamping the approver and
// timestamp. A record that is no longer PENDING reports Applied=false;
// that is a no-op success, not an error, so a double click or a racing
// second operator cannot corrupt approval metadata.
func (e *errorRecordService) Approve(ctx context.Context, id int64, approvedBy string) (resource.ApprovalActionResource, error) {
	applied, err := e.repository.ErrorRecord().Approve(ctx, id, approvedBy, time.Now())
	if err != nil {
		e.logger.WithError(err).WithField("id", id).Error("approve: update failed")
		return resource.ApprovalActionResource{}, err
	}

	return resource.ApprovalActionResource{ID: id, Applied: applied}, nil
}

// Reject deletes a PENDING record outright. There is no rejected state
// and no audit trail of the rejection.
func (e *errorRecordService) Reject(ctx context.Context, id int64) (resource.ApprovalActionResource, error) {
	applied, err := e.repository.ErrorRecord().Delete(ctx, id)
	if err != nil {
		e.logger.WithError(err).WithField("id", id).Error("reject: delete failed")
		return resource.ApprovalActionResource{}, err
	}

	return resource.ApprovalActionResource{ID: id, Applied: applied}, nil
}

// ApproveAll snapshots the pending queue and approves record by record,
// sequentially, with no atomicity across the batch. Records inserted
// after the snapshot are not part of this pass; records another session
// already acted on count as skipped.
func (e *errorRecordService) ApproveAll(ctx context.Context, approvedBy string) (resource.BulkApprovalResource, error) {
	records, err := e.repository.ErrorRecord().GetPending(ctx)
	if err != nil {
		return resource.BulkApprovalResource{}, err
	}

	out := resource.BulkApprovalResource{Listed: len(records)}
	for _, record := range records {
		applied, err := e.repository.ErrorRecord().Approve(ctx, record.ID, approvedBy, time.Now())
		if err != nil {
			e.logger.WithError(err).WithField("id", record.ID).Error("approve all: update failed")
			out.Skipped++
			continue
		}
		if applied {
			out.Applied++
		} else {
			out.Skipped++
		}
	}

	return out, nil
}

func (e *errorRecordService) RejectAll(ctx context.Context) (resource.BulkApprovalResource, error) {
	records, err := e.repository.ErrorRecord().GetPending(ctx)
	if err != nil {
		return resource.BulkApprovalResource{}, err
	}

	out := resource.BulkApprovalResource{Listed: len(records)}
	for _, record := range records {
		applied, err := e.repository.ErrorRecord().Delete(ctx, record.ID)
		if err != nil {
			e.logger.WithError(err).WithField("id", record.ID).Error("reject all: delete failed")
			out.Skipped++
			continue
		}
		if applied {
			out.Applied++
		} else {
			out.Skipped++
		}
	}

	return out, nil
}

func (e *errorRecordService) Comments(ctx context.Context, recordID int64) ([]resource.CommentResource, error) {
	comments, err := e.repository.Comment().ListByRecordID(ctx, recordID)
	if err != nil {
		e.logger.WithError(err).WithField("id", recordID).Error("comments: list failed")
		return nil, err
	}

	return commentResources(comments), nil
}

func (e *errorRecordService) AddComment(ctx context.Context, recordID int64, author, text string) (resource.CommentResource, error) {
	if _, err := e.repository.ErrorRecord().GetByID(ctx, recordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resource.CommentResource{}, utils.ErrorBag{
				Code:    utils.NotFoundErrCode,
				Message: utils.NotFoundMsg,
				Cause:   err,
			}
		}
		return resource.CommentResource{}, err
	}

	comment := &model.ErrorComment{
		ID:        uuid.NewString(),
		RecordID:  recordID,
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
	}

	if err := e.repository.Comment().Create(ctx, comment); err != nil {
		e.logger.WithError(err).WithField("id", recordID).Error("add comment: insert failed")
		return resource.CommentResource{}, err
	}

	return resource.CommentResource{
		ID:        comment.ID,
		Author:    comment.Author,
		Text:      comment.Text,
		Timestamp: comment.CreatedAt,
	}, nil
}

func commentResources(comments []model.ErrorComment) []resource.CommentResource {
	out := make([]resource.CommentResource, 0, len(comments))
	for _, c := range comments {
		out = append(out, resource.CommentResource{
			ID:        c.ID,
			Author:    c.Author,
			Text:      c.Text,
			Timestamp: c.CreatedAt,
		})
	}

	return out
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}

	return *v
}
