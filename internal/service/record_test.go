package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"gorm.io/gorm"

	"github.com/tolaram/sapkb/internal/dto/request"
	"github.com/tolaram/sapkb/internal/model"
	"github.com/tolaram/sapkb/internal/service"
	"github.com/tolaram/sapkb/pkg/utils"
)

func TestSubmitAppliesDefaults(t *testing.T) {
	c := qt.New(t)
	repo := newTestRepository(t)
	svc := service.NewErrorRecordService(newTestLogger(), repo)
	ctx := context.Background()

	resp, err := svc.Submit(ctx, request.CreateErrorRecordRequest{
		Module:    "MM",
		IssueName: "MIGO stuck",
	}, "Sadhwika Peri")

	c.Assert(err, qt.IsNil)
	c.Assert(resp.Status, qt.Equals, model.StatusPending)

	record, err := repo.ErrorRecord().GetByID(ctx, resp.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(record.Module, qt.Equals, "MM")
	c.Assert(record.ErrorCode, qt.Equals, "MIGO stuck")
	c.Assert(record.SolutionType, qt.Equals, "User Guidance")
	c.Assert(record.StepsToResolve, qt.Equals, "No steps provided")
	c.Assert(record.ErrorDescription, qt.Equals, "No description")
	c.Assert(record.CreatedBy, qt.Equals, "Sadhwika Peri")
	c.Assert(record.Status, qt.Equals, model.StatusPending)
	c.Assert(record.ApprovedAt, qt.IsNil)
	c.Assert(record.ApprovedBy, qt.Equals, "")
}

func TestSubmitThenPendingRoundTrip(t *testing.T) {
	c := qt.New(t)
	repo := newTestRepository(t)
	svc := service.NewErrorRecordService(newTestLogger(), repo)
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, name := range names {
		_, err := svc.Submit(ctx, request.CreateErrorRecordRequest{IssueName: name}, "")
		c.Assert(err, qt.IsNil)
	}

	pending, err := svc.Pending(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(pending, qt.HasLen, 3)

	// Most recent first.
	c.Assert(pending[0].ErrorCode, qt.Equals, "third")
	c.Assert(pending[2].ErrorCode, qt.Equals, "first")

	for _, record := range pending {
		c.Assert(record.Status, qt.Equals, model.StatusPending)
		c.Assert(record.ApprovedAt, qt.IsNil)
	}
}

func TestApproveIsGuardedAgainstDoubleApproval(t *testing.T) {
	c := qt.New(t)
	repo := newTestRepository(t)
	svc := service.NewErrorRecordService(newTestLogger(), repo)
	ctx := context.Background()

	resp, err := svc.Submit(ctx, request.CreateErrorRecordRequest{IssueName: "MIGO stuck"}, "")
	c.Assert(err, qt.IsNil)

	first, err := svc.Approve(ctx, resp.ID, "Airat Aroyewun")
	c.Assert(err, qt.IsNil)
	c.Assert(first.Applied, qt.IsTrue)

	record, err := repo.ErrorRecord().GetByID(ctx, resp.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(record.Status, qt.Equals, model.StatusApproved)
	c.Assert(record.ApprovedBy, qt.Equals, "Airat Aroyewun")
	c.Assert(record.ApprovedAt, qt.IsNotNil)
	firstStamp := *record.ApprovedAt

	// A second approval is a no-op success: zero rows matched, metadata
	// untouched, no error surfaced.
	second, err := svc.Approve(ctx, resp.ID, "Sreenivas")
	c.Assert(err, qt.IsNil)
	c.Assert(second.Applied, qt.IsFalse)

	record, err = repo.ErrorRecord().GetByID(ctx, resp.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(record.ApprovedBy, qt.Equals, "Airat Aroyewun")
	c.Assert(record.ApprovedAt.Equal(firstStamp), qt.IsTrue)
}

func TestRejectHardDeletes(t *testing.T) {
	c := qt.New(t)
	repo := newTestRepository(t)
	svc := service.NewErrorRecordService(newTestLogger(), repo)
	ctx := context.Background()

	resp, err := svc.Submit(ctx, request.CreateErrorRecordRequest{IssueName: "bogus entry"}, "")
	c.Assert(err, qt.IsNil)

	action, err := svc.Reject(ctx, resp.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(action.Applied, qt.IsTrue)

	pending, err := svc.Pending(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(pending, qt.HasLen, 0)

	// No row exists anywhere: rejection is a hard delete, not a status.
	_, err = repo.ErrorRecord().GetByID(ctx, resp.ID)
	c.Assert(errors.Is(err, gorm.ErrRecordNotFound), qt.IsTrue)
}

func TestRejectApprovedRecordIsNoOp(t *testing.T) {
	c := qt.New(t)
	repo := newTestRepository(t)
	svc := service.NewErrorRecordService(newTestLogger(), repo)
	ctx := context.Background()

	resp, err := svc.Submit(ctx, request.CreateErrorRecordRequest{IssueName: "keep me"}, "")
	c.Assert(err, qt.IsNil)

	_, err = svc.Approve(ctx, resp.ID, "Admin")
	c.Assert(err, qt.IsNil)

	action, err := svc.Reject(ctx, resp.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(action.Applied, qt.IsFalse)

	record, err := repo.ErrorRecord().GetByID(ctx, resp.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(record.Status, qt.Equals, model.StatusApproved)
}

func TestApproveAllAndRejectAll(t *testing.T) {
	c := qt.New(t)
	repo := newTestRepository(t)
	svc := service.NewErrorRecordService(newTestLogger(), repo)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.Submit(ctx, request.CreateErrorRecordRequest{IssueName: name}, "")
		c.Assert(err, qt.IsNil)
	}

	approved, err := svc.ApproveAll(ctx, "Admin")
	c.Assert(err, qt.IsNil)
	c.Assert(approved.Listed, qt.Equals, 3)
	c.Assert(approved.Applied, qt.Equals, 3)
	c.Assert(approved.Skipped, qt.Equals, 0)

	// Queue is drained; a second pass sees nothing.
	rejected, err := svc.RejectAll(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(rejected.Listed, qt.Equals, 0)
}

func TestBulkUploadCSV(t *testing.T) {
	c := qt.New(t)
	repo := newTestRepository(t)
	svc := service.NewErrorRecordService(newTestLogger(), repo)
	ctx := context.Background()

	input := "Issue Name,Module,Log Category,Log Subcategory\n" +
		"MIGO stuck,MM,2703,3476\n" +
		"Cost center blocked,CO,bad,\n"

	resp, err := svc.BulkUpload(ctx, "batch.csv", strings.NewReader(input), "Balaji Mohandas")

	c.Assert(err, qt.IsNil)
	c.Assert(resp.Parsed, qt.Equals, 2)
	c.Assert(resp.Inserted, qt.Equals, 2)
	c.Assert(resp.Failed, qt.Equals, 0)

	pending, err := svc.Pending(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(pending, qt.HasLen, 2)

	// Reverse id order: the second CSV row is listed first.
	c.Assert(pending[0].ErrorCode, qt.Equals, "Cost center blocked")
	c.Assert(*pending[0].LogCategory, qt.Equals, 2703)
	c.Assert(pending[0].LogSubcategory, qt.IsNil)

	c.Assert(*pending[1].LogCategory, qt.Equals, 2703)
	c.Assert(*pending[1].LogSubcategory, qt.Equals, 3476)
	c.Assert(pending[1].CreatedBy, qt.Equals, "Balaji Mohandas")
}

func TestBulkUploadEmptyFile(t *testing.T) {
	c := qt.New(t)
	repo := newTestRepository(t)
	svc := service.NewErrorRecordService(newTestLogger(), repo)
	ctx := context.Background()

	_, err := svc.BulkUpload(ctx, "batch.csv", strings.NewReader("Issue Name,Module\n"), "")

	var bag utils.ErrorBag
	c.Assert(errors.As(err, &bag), qt.IsTrue)
	c.Assert(bag.GetCode(), qt.Equals, utils.EmptyFileErrCode)
}

func TestBulkUploadUnsupportedFormat(t *testing.T) {
	c := qt.New(t)
	repo := newTestRepository(t)
	svc := service.NewErrorRecordService(newTestLogger(), repo)
	ctx := context.Background()

	_, err := svc.BulkUpload(ctx, "notes.txt", strings.NewReader("x"), "")

	var bag utils.ErrorBag
	c.Assert(errors.As(err, &bag), qt.IsTrue)
	c.Assert(bag.GetCode(), qt.Equals, utils.UnsupportedFileErrCode)
}

func TestApprovedSearchFilter(t *testing.T) {
	c := qt.New(t)
	repo := newTestRepository(t)
	svc := service.NewErrorRecordService(newTestLogger(), repo)
	ctx := context.Background()

	entries := []request.CreateErrorRecordRequest{
		{IssueName: "MIGO stuck", Module: "MM"},
		{IssueName: "Cost center MA108 blocked", Module: "CO"},
		{IssueName: "Outbound delivery missing", Module: "SD"},
	}
	for _, entry := range entries {
		resp, err := svc.Submit(ctx, entry, "")
		c.Assert(err, qt.IsNil)
		_, err = svc.Approve(ctx, resp.ID, "Admin")
		c.Assert(err, qt.IsNil)
	}

	all, err := svc.Approved(ctx, "")
	c.Assert(err, qt.IsNil)
	c.Assert(all, qt.HasLen, 3)

	// Case-insensitive over title, description and module.
	byName, err := svc.Approved(ctx, "migo")
	c.Assert(err, qt.IsNil)
	c.Assert(byName, qt.HasLen, 1)
	c.Assert(byName[0].ErrorCode, qt.Equals, "MIGO stuck")

	byModule, err := svc.Approved(ctx, "sd")
	c.Assert(err, qt.IsNil)
	c.Assert(byModule, qt.HasLen, 1)

	none, err := svc.Approved(ctx, "payroll")
	c.Assert(err, qt.IsNil)
	c.Assert(none, qt.HasLen, 0)
}

func TestCommentsLifecycle(t *testing.T) {
	c := qt.New(t)
	repo := newTestRepository(t)
	svc := service.NewErrorRecordService(newTestLogger(), repo)
	ctx := context.Background()

	resp, err := svc.Submit(ctx, request.CreateErrorRecordRequest{IssueName: "MIGO stuck"}, "")
	c.Assert(err, qt.IsNil)

	added, err := svc.AddComment(ctx, resp.ID, "Lead", "needs a clearer resolution")
	c.Assert(err, qt.IsNil)
	c.Assert(added.ID, qt.Not(qt.Equals), "")
	c.Assert(added.Author, qt.Equals, "Lead")

	comments, err := svc.Comments(ctx, resp.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(comments, qt.HasLen, 1)
	c.Assert(comments[0].Text, qt.Equals, "needs a clearer resolution")
}

func TestAddCommentMissingRecord(t *testing.T) {
	c := qt.New(t)
	repo := newTestRepository(t)
	svc := service.NewErrorRecordService(newTestLogger(), repo)
	ctx := context.Background()

	_, err := svc.AddComment(ctx, 12345, "Lead", "lost")

	var bag utils.ErrorBag
	c.Assert(errors.As(err, &bag), qt.IsTrue)
	c.Assert(bag.GetCode(), qt.Equals, utils.NotFoundErrCode)
}
