package model

import "time"

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
)

// ErrorRecord is a single SAP error knowledge-base entry. Records enter
// the table as PENDING and either move to APPROVED or are deleted on
// rejection; approval metadata is set only on approval.
type ErrorRecord struct {
	ID               int64      `json:"id" gorm:"column:id;primary_key;auto_increment"`
	ErrorCode        string     `json:"error_code" gorm:"column:error_code;type:varchar(50)"`
	ErrorDescription string     `json:"error_description" gorm:"column:error_description;type:text"`
	Module           string     `json:"module" gorm:"column:module;type:varchar(100)"`
	SolutionType     string     `json:"solution_type" gorm:"column:solution_type;type:varchar(100)"`
	StepsToResolve   string     `json:"steps_to_resolve" gorm:"column:steps_to_resolve;type:text"`
	ExpertComment    string     `json:"expert_comment" gorm:"column:expert_comment;type:text"`
	LogCategory      *int       `json:"log_category" gorm:"column:log_category;type:int(11);default:null"`
	LogSubcategory   *int       `json:"log_subcategory" gorm:"column:log_subcategory;type:int(11);default:null"`
	Status           string     `json:"status" gorm:"column:status;type:varchar(20);default:'PENDING'"`
	CreatedAt        time.Time  `json:"created_at" gorm:"column:created_at;type:datetime"`
	CreatedBy        string     `json:"created_by" gorm:"column:created_by;type:varchar(255)"`
	ApprovedAt       *time.Time `json:"approved_at" gorm:"column:approved_at;type:datetime;default:null"`
	ApprovedBy       string     `json:"approved_by" gorm:"column:approved_by;type:varchar(255)"`
}

func (ErrorRecord) TableName() string {
	return "kb_errors"
}
