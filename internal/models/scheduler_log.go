package models

import (
	"time"
)

// SchedulerLog represents the scheduler_logs table
type SchedulerLog struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	DocumentID  *string    `json:"document_id" gorm:"column:document_id"`
	JobCode     *string    `json:"job_code" gorm:"column:job_code"`
	Message     *string    `json:"message" gorm:"column:message"`
	JobStatus   *string    `json:"job_status" gorm:"column:job_status"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	CreatedByID *int       `json:"created_by_id"`
}

// TableName sets the insert table name for SchedulerLog
func (SchedulerLog) TableName() string {
	return "scheduler_logs"
}
