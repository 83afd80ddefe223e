package resource

import (
	"time"
)

type CreateErrorRecordResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type BulkUploadResponse struct {
	Parsed   int `json:"parsed"`
	Inserted int `json:"inserted"`
	Failed   int `json:"failed"`
}

// ApprovalActionResource reports the outcome of an approve or reject.
// Applied is false when the status guard matched zero rows, which is a
// no-op success rather than an error.
type ApprovalActionResource struct {
	ID      int64 `json:"id"`
	Applied bool  `json:"applied"`
}

type BulkApprovalResource struct {
	Listed  int `json:"listed"`
	Applied int `json:"applied"`
	Skipped int `json:"skipped"`
}

type CommentResource struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
