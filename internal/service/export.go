package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/tolaram/sapkb/internal/dto/resource"
	"github.com/tolaram/sapkb/internal/model"
	"github.com/tolaram/sapkb/internal/repository"
	"github.com/tolaram/sapkb/pkg/marker"
)

const exportedStatus = "approved"

type IExportService interface {
	ExportApproved(ctx context.Context) ([]resource.ExportedRecordResource, error)
}

type exportService struct {
	logger     *logrus.Logger
	repository repository.IRepository
}

func NewExportService(l *logrus.Logger, r repository.IRepository) IExportService {
	return &exportService{
		logger:     l,
		repository: r,
	}
}

// ExportApproved renders every APPROVED record in the shape the
// downstream agent consumes. Category codes come from the dedicated
// columns; rows imported before those columns existed fall back to the
// legacy marker embedded in the expert comment. The comment text itself
// passes through unmodified as notes, marker included.
func (e *exportService) ExportApproved(ctx context.Context) ([]resource.ExportedRecordResource, error) {
	records, err := e.repository.ErrorRecord().GetApproved(ctx)
	if err != nil {
		e.logger.WithError(err).Error("export: list approved failed")
		return nil, err
	}

	commentsByRecord, err := e.commentsByRecord(ctx, records)
	if err != nil {
		e.logger.WithError(err).Error("export: list comments failed")
		return nil, err
	}

	out := make([]resource.ExportedRecordResource, 0, len(records))
	for _, record := range records {
		category, subcategory := resolveCategories(record)

		comments := commentsByRecord[record.ID]
		if comments == nil {
			comments = []resource.CommentResource{}
		}

		out = append(out, resource.ExportedRecordResource{
			ID:               record.ID,
			Module:           record.Module,
			IssueName:        record.ErrorCode,
			IssueDescription: record.ErrorDescription,
			SolutionType:     record.SolutionType,
			StepByStep:       record.StepsToResolve,
			LogCategory:      category,
			LogSubcategory:   subcategory,
			Notes:            record.ExpertComment,
			Status:           exportedStatus,
			CreatedAt:        record.CreatedAt,
			Comments:         comments,
			ApprovedAt:       record.ApprovedAt,
		})
	}

	return out, nil
}

func resolveCategories(record model.ErrorRecord) (*int, *int) {
	if record.LogCategory != nil {
		return record.LogCategory, record.LogSubcategory
	}

	if category, subcategory, ok := marker.Parse(record.ExpertComment); ok {
		return &category, subcategory
	}

	return nil, nil
}

func (e *exportService) commentsByRecord(ctx context.Context, records []model.ErrorRecord) (map[int64][]resource.CommentResource, error) {
	ids := make([]int64, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}

	comments, err := e.repository.Comment().ListByRecordIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	grouped := make(map[int64][]resource.CommentResource, len(records))
	for _, c := range comments {
		grouped[c.RecordID] = append(grouped[c.RecordID], resource.CommentResource{
			ID:        c.ID,
			Author:    c.Author,
			Text:      c.Text,
			Timestamp: c.CreatedAt,
		})
	}

	return grouped, nil
}
