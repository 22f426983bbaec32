package response

import (
	"hostel-be-svc/internal/billing"
)

// BillWithMemberResponse represents one billing period joined with the
// member it belongs to, for list and search endpoints
type BillWithMemberResponse struct {
	BillID               uint            `json:"bill_id" example:"10"`
	MemberID             uint            `json:"member_id" example:"3"`
	MemberName           string          `json:"member_name" example:"Rahim Uddin"`
	Phone                string          `json:"phone" example:"+8801712345678"`
	Floor                billing.Floor   `json:"floor" example:"2nd"`
	BedType              billing.BedType `json:"bed_type" example:"Bed"`
	Month                string          `json:"month" example:"2026-08"`
	Rent                 int64           `json:"rent" example:"1600"`
	Electricity          int64           `json:"electricity" example:"150"`
	WiFi                 int64           `json:"wifi" example:"83"`
	ExpenseTotal         int64           `json:"expense_total" example:"0"`
	ForwardedOutstanding int64           `json:"forwarded_outstanding" example:"0"`
	TotalCharges         int64           `json:"total_charges" example:"1833"`
	AmountPaid           int64           `json:"amount_paid" example:"0"`
	CurrentOutstanding   int64           `json:"current_outstanding" example:"1833"`
	Status               billing.Status  `json:"status" example:"Due"`
}

// BillingStatisticsResponse aggregates billing figures for a month
type BillingStatisticsResponse struct {
	Month            string `json:"month" example:"2026-08"`
	TotalBills       int64  `json:"total_bills" example:"42"`
	TotalCharges     int64  `json:"total_charges" example:"77000"`
	TotalCollected   int64  `json:"total_collected" example:"52000"`
	TotalOutstanding int64  `json:"total_outstanding" example:"25000"`
	DueCount         int64  `json:"due_count" example:"12"`
	PartialCount     int64  `json:"partial_count" example:"6"`
	PaidCount        int64  `json:"paid_count" example:"22"`
	OverpaidCount    int64  `json:"overpaid_count" example:"2"`
}

// SettlementResponse is returned when a member is deactivated
type SettlementResponse struct {
	MemberID         uint                        `json:"member_id" example:"3"`
	MemberName       string                      `json:"member_name" example:"Rahim Uddin"`
	LeaveDate        string                      `json:"leave_date" example:"2026-08-31"`
	SettlementAmount int64                       `json:"settlement_amount" example:"3400"`
	Direction        billing.SettlementDirection `json:"direction" example:"refund"`
}
