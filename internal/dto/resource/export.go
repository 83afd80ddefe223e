package resource

import (
	"time"
)

// ExportedRecordResource is the shape the downstream AI agent consumes.
// Field names follow its expectations, not the storage columns.
type ExportedRecordResource struct {
	ID               int64             `json:"id"`
	Module           string            `json:"module"`
	IssueName        string            `json:"issuename"`
	IssueDescription string            `json:"issuedescription"`
	SolutionType     string            `json:"solutiontype"`
	StepByStep       string            `json:"stepbystep"`
	LogCategory      *int              `json:"logcategory"`
	LogSubcategory   *int              `json:"logsubcategory"`
	Notes            string            `json:"notes"`
	Status           string            `json:"status"`
	CreatedAt        time.Time         `json:"createdAt"`
	Comments         []CommentResource `json:"comments"`
	ApprovedAt       *time.Time        `json:"approvedAt"`
}
