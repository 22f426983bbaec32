package models

import (
	"time"

	"hostel-be-svc/internal/billing"
)

// Member represents the members table
type Member struct {
	ID                 uint            `json:"id" gorm:"primarykey"`
	DocumentID         string          `json:"document_id" gorm:"column:document_id"`
	Name               string          `json:"name" gorm:"column:name"`
	Phone              string          `json:"phone" gorm:"column:phone;uniqueIndex"`
	Floor              billing.Floor   `json:"floor" gorm:"column:floor"`
	BedType            billing.BedType `json:"bed_type" gorm:"column:bed_type"`
	MoveInDate         time.Time       `json:"move_in_date" gorm:"column:move_in_date"`
	SecurityDeposit    int64           `json:"security_deposit" gorm:"column:security_deposit"`
	AdvanceDeposit     int64           `json:"advance_deposit" gorm:"column:advance_deposit"`
	RentAtJoining      int64           `json:"rent_at_joining" gorm:"column:rent_at_joining"`
	CurrentRent        int64           `json:"current_rent" gorm:"column:current_rent"`
	TotalAgreedDeposit int64           `json:"total_agreed_deposit" gorm:"column:total_agreed_deposit"`
	CurrentOutstanding int64           `json:"current_outstanding" gorm:"column:current_outstanding"`
	IsActive           bool            `json:"is_active" gorm:"column:is_active"`
	WiFiOptIn          bool            `json:"wifi_opt_in" gorm:"column:wifi_opt_in"`
	LeaveDate          *time.Time      `json:"leave_date" gorm:"column:leave_date"`
	PurgeAfter         *time.Time      `json:"purge_after" gorm:"column:purge_after"`
	Note               *string         `json:"note" gorm:"column:note"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	CreatedByID        *int            `json:"created_by_id"`
	UpdatedByID        *int            `json:"updated_by_id"`
}

// TableName sets the insert table name for Member
func (Member) TableName() string {
	return "members"
}
