package request

// CreateErrorRecordRequest carries a single submission. Only the issue
// name is required at the boundary; every other field falls back to the
// same defaults the bulk normalizer applies.
type CreateErrorRecordRequest struct {
	Module           string `json:"module"`
	IssueName        string `json:"issuename" validate:"required"`
	IssueDescription string `json:"issuedescription"`
	SolutionType     string `json:"solutiontype"`
	StepByStep       string `json:"stepbystep"`
	LogCategory      *int   `json:"logcategory"`
	LogSubcategory   *int   `json:"logsubcategory"`
	Notes            string `json:"notes"`
}

type AddCommentRequest struct {
	Text string `json:"text" validate:"required"`
}
