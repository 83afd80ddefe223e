package service_test

import (
	"context"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/tolaram/sapkb/internal/model"
	"github.com/tolaram/sapkb/internal/repository"
	"github.com/tolaram/sapkb/internal/service"
)

func approvedRecord(c *qt.C, repo repository.IRepository, record *model.ErrorRecord) *model.ErrorRecord {
	now := time.Now()
	record.Status = model.StatusApproved
	record.ApprovedBy = "Admin"
	record.ApprovedAt = &now
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	err := repo.ErrorRecord().Create(context.Background(), record)
	c.Assert(err, qt.IsNil)
	return record
}

func TestExportPrefersCategoryColumns(t *testing.T) {
	c := qt.New(t)
	repo := newTestRepository(t)
	svc := service.NewExportService(newTestLogger(), repo)

	category, subcategory := 2703, 3476
	approvedRecord(c, repo, &model.ErrorRecord{
		ErrorCode:      "MIGO stuck",
		Module:         "MM",
		LogCategory:    &category,
		LogSubcategory: &subcategory,
		ExpertComment:  "see OSS note [Category: 1111, Sub: 2222]",
	})

	out, err := svc.ExportApproved(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.HasLen, 1)

	// Columns win over whatever the comment text claims.
	c.Assert(*out[0].LogCategory, qt.Equals, 2703)
	c.Assert(*out[0].LogSubcategory, qt.Equals, 3476)
	c.Assert(out[0].Notes, qt.Equals, "see OSS note [Category: 1111, Sub: 2222]")
	c.Assert(out[0].Status, qt.Equals, "approved")
	c.Assert(out[0].ApprovedAt, qt.IsNotNil)
}

func TestExportLegacyMarkerFallback(t *testing.T) {
	c := qt.New(t)
	repo := newTestRepository(t)
	svc := service.NewExportService(newTestLogger(), repo)

	approvedRecord(c, repo, &model.ErrorRecord{
		ErrorCode:     "legacy row",
		ExpertComment: "foo [Category: 2703, Sub: 3476]",
	})
	approvedRecord(c, repo, &model.ErrorRecord{
		ErrorCode:     "legacy no sub",
		ExpertComment: "bar [Category: 2703, Sub: None]",
	})
	approvedRecord(c, repo, &model.ErrorRecord{
		ErrorCode:     "no marker at all",
		ExpertComment: "plain note",
	})

	out, err := svc.ExportApproved(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.HasLen, 3)

	byName := make(map[string]int)
	for i, rec := range out {
		byName[rec.IssueName] = i
	}

	legacy := out[byName["legacy row"]]
	c.Assert(*legacy.LogCategory, qt.Equals, 2703)
	c.Assert(*legacy.LogSubcategory, qt.Equals, 3476)
	// Notes carry the marker through untouched.
	c.Assert(legacy.Notes, qt.Equals, "foo [Category: 2703, Sub: 3476]")

	noSub := out[byName["legacy no sub"]]
	c.Assert(*noSub.LogCategory, qt.Equals, 2703)
	c.Assert(noSub.LogSubcategory, qt.IsNil)

	bare := out[byName["no marker at all"]]
	c.Assert(bare.LogCategory, qt.IsNil)
	c.Assert(bare.LogSubcategory, qt.IsNil)
	c.Assert(bare.Notes, qt.Equals, "plain note")
}

func TestExportSkipsPendingRecords(t *testing.T) {
	c := qt.New(t)
	repo := newTestRepository(t)
	svc := service.NewExportService(newTestLogger(), repo)
	ctx := context.Background()

	approvedRecord(c, repo, &model.ErrorRecord{ErrorCode: "approved one"})
	err := repo.ErrorRecord().Create(ctx, &model.ErrorRecord{
		ErrorCode: "still pending",
		Status:    model.StatusPending,
		CreatedAt: time.Now(),
	})
	c.Assert(err, qt.IsNil)

	out, err := svc.ExportApproved(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.HasLen, 1)
	c.Assert(out[0].IssueName, qt.Equals, "approved one")
}

func TestExportCommentsAlwaysArray(t *testing.T) {
	c := qt.New(t)
	repo := newTestRepository(t)
	svc := service.NewExportService(newTestLogger(), repo)
	ctx := context.Background()

	with := approvedRecord(c, repo, &model.ErrorRecord{ErrorCode: "with comments"})
	approvedRecord(c, repo, &model.ErrorRecord{ErrorCode: "without comments"})

	err := repo.Comment().Create(ctx, &model.ErrorComment{
		ID:        "c1",
		RecordID:  with.ID,
		Author:    "Lead",
		Text:      "verified in QAS",
		CreatedAt: time.Now(),
	})
	c.Assert(err, qt.IsNil)

	out, err := svc.ExportApproved(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.HasLen, 2)

	for _, rec := range out {
		// Never null in the JSON payload, even when empty.
		c.Assert(rec.Comments, qt.IsNotNil)
		switch rec.IssueName {
		case "with comments":
			c.Assert(rec.Comments, qt.HasLen, 1)
			c.Assert(rec.Comments[0].Author, qt.Equals, "Lead")
		case "without comments":
			c.Assert(rec.Comments, qt.HasLen, 0)
		}
	}
}
