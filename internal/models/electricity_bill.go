package models

import (
	"time"

	"hostel-be-svc/internal/billing"
)

// ElectricityBill represents the electricity_bills table: one shared
// bill per floor per billing month, split per head across that floor
type ElectricityBill struct {
	ID           uint          `json:"id" gorm:"primarykey"`
	Month        string        `json:"month" gorm:"column:month;uniqueIndex:idx_month_floor"`
	Floor        billing.Floor `json:"floor" gorm:"column:floor;uniqueIndex:idx_month_floor"`
	TotalAmount  int64         `json:"total_amount" gorm:"column:total_amount"`
	MemberCount  int           `json:"member_count" gorm:"column:member_count"`
	PerHeadShare int64         `json:"per_head_share" gorm:"column:per_head_share"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	CreatedByID  *int          `json:"created_by_id"`
}

// TableName sets the insert table name for ElectricityBill
func (ElectricityBill) TableName() string {
	return "electricity_bills"
}
