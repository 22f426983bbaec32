package models

import (
	"time"

	"hostel-be-svc/internal/billing"
)

// RentBill represents the rent_bills table: one billing period per
// member per calendar month, keyed YYYY-MM
type RentBill struct {
	ID                   uint           `json:"id" gorm:"primarykey"`
	DocumentID           *string        `json:"document_id" gorm:"column:document_id"`
	MemberID             uint           `json:"member_id" gorm:"column:member_id;uniqueIndex:idx_member_month"`
	Month                string         `json:"month" gorm:"column:month;uniqueIndex:idx_member_month"`
	Rent                 int64          `json:"rent" gorm:"column:rent"`
	Electricity          int64          `json:"electricity" gorm:"column:electricity"`
	WiFi                 int64          `json:"wifi" gorm:"column:wifi"`
	ForwardedOutstanding int64          `json:"forwarded_outstanding" gorm:"column:forwarded_outstanding"`
	TotalCharges         int64          `json:"total_charges" gorm:"column:total_charges"`
	AmountPaid           int64          `json:"amount_paid" gorm:"column:amount_paid"`
	CurrentOutstanding   int64          `json:"current_outstanding" gorm:"column:current_outstanding"`
	Status               billing.Status `json:"status" gorm:"column:status"`
	Expenses             []BillExpense  `json:"expenses" gorm:"foreignKey:BillID"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	CreatedByID          *int           `json:"created_by_id"`
	UpdatedByID          *int           `json:"updated_by_id"`
}

// TableName sets the insert table name for RentBill
func (RentBill) TableName() string {
	return "rent_bills"
}

// ChargeResult converts the stored bill into the engine's computed form
func (b *RentBill) ChargeResult() *billing.ChargeResult {
	return &billing.ChargeResult{
		TotalCharges:       b.TotalCharges,
		AmountPaid:         b.AmountPaid,
		CurrentOutstanding: b.CurrentOutstanding,
		Status:             b.Status,
	}
}

// BillExpense represents the bill_expenses table: an ad-hoc charge
// attached to one billing period
type BillExpense struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	BillID      uint      `json:"bill_id" gorm:"column:bill_id"`
	Amount      int64     `json:"amount" gorm:"column:amount"`
	Description string    `json:"description" gorm:"column:description"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedByID *int      `json:"created_by_id"`
}

// TableName sets the insert table name for BillExpense
func (BillExpense) TableName() string {
	return "bill_expenses"
}
