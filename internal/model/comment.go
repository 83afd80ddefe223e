package model

import "time"

// ErrorComment is a reviewer comment left on a record while it sits in
// the approval queue. Comments stay attached after approval and are
// included in the export payload.
type ErrorComment struct {
	ID        string    `json:"id" gorm:"column:id;type:varchar(36);primary_key"`
	RecordID  int64     `json:"record_id" gorm:"column:record_id;type:bigint;index"`
	Author    string    `json:"author" gorm:"column:author;type:varchar(255)"`
	Text      string    `json:"text" gorm:"column:text;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:datetime"`
}

func (ErrorComment) TableName() string {
	return "kb_error_comments"
}
