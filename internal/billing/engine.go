package billing

import "time"

// Status is the derived payment status of one billing period
type Status string

const (
	StatusDue      Status = "Due"
	StatusPartial  Status = "Partial"
	StatusPaid     Status = "Paid"
	StatusOverpaid Status = "Overpaid"
)

// Expense is a one-off charge attached to a billing period
type Expense struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// ChargeInput holds everything needed to compute one member's charges
// for one billing period. The engine performs no I/O: rent is already
// resolved from the rate table, shares are already divided per head.
type ChargeInput struct {
	Rent                       int64
	Electricity                int64
	WiFi                       int64
	Expenses                   []Expense
	PreviousOutstanding        int64
	ForwardPreviousOutstanding bool
	AmountPaid                 int64
}

// ChargeResult is the computed state of one billing period
type ChargeResult struct {
	TotalCharges       int64  `json:"total_charges"`
	AmountPaid         int64  `json:"amount_paid"`
	CurrentOutstanding int64  `json:"current_outstanding"`
	Status             Status `json:"status"`
}

// ComputeMonthlyCharge computes a member's total charges, outstanding
// balance and payment status for one billing period.
//
//	totalCharges = rent + electricity + wifi + sum(expenses) + forwarded outstanding
//	currentOutstanding = totalCharges - amountPaid
//
// PreviousOutstanding may be negative (credit carried forward); all
// other monetary inputs must be non-negative. No result is returned on
// error.
func ComputeMonthlyCharge(in ChargeInput) (*ChargeResult, error) {
	if in.Rent < 0 {
		return nil, &ValidationError{Field: "rent", Reason: "must be non-negative"}
	}
	if in.Electricity < 0 {
		return nil, &ValidationError{Field: "electricity", Reason: "must be non-negative"}
	}
	if in.WiFi < 0 {
		return nil, &ValidationError{Field: "wifi", Reason: "must be non-negative"}
	}
	if in.AmountPaid < 0 {
		return nil, &ValidationError{Field: "amount_paid", Reason: "must be non-negative"}
	}

	total := in.Rent + in.Electricity + in.WiFi
	for _, exp := range in.Expenses {
		if exp.Amount < 0 {
			return nil, &ValidationError{Field: "expense", Reason: "must be non-negative"}
		}
		total += exp.Amount
	}
	if in.ForwardPreviousOutstanding {
		total += in.PreviousOutstanding
	}

	outstanding := total - in.AmountPaid

	return &ChargeResult{
		TotalCharges:       total,
		AmountPaid:         in.AmountPaid,
		CurrentOutstanding: outstanding,
		Status:             DeriveStatus(in.AmountPaid, total),
	}, nil
}

// DeriveStatus derives the payment status from amount paid vs total
// charges. Tie-break rules:
//
//	outstanding > 0  -> Due when nothing paid, Partial otherwise
//	outstanding == 0 -> Paid
//	outstanding < 0  -> Overpaid
func DeriveStatus(amountPaid, totalCharges int64) Status {
	outstanding := totalCharges - amountPaid
	switch {
	case outstanding > 0:
		if amountPaid == 0 {
			return StatusDue
		}
		return StatusPartial
	case outstanding < 0:
		return StatusOverpaid
	default:
		return StatusPaid
	}
}

// ApplyAdditionalCharges folds an extra amount (a forwarded outstanding
// balance or a late expense) into an already computed billing period.
//
// When the period's status is already something other than Due, the
// status is re-derived by comparing amountPaid against the new total
// and an unpaid shortfall maps to Partial, never back to Due. The
// asymmetry is intentional: once a bill has left Due it never silently
// returns to it.
func ApplyAdditionalCharges(prev *ChargeResult, amount int64) (*ChargeResult, error) {
	if prev == nil {
		return nil, &ValidationError{Field: "bill", Reason: "no billing period to update"}
	}
	if amount < 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be non-negative"}
	}

	total := prev.TotalCharges + amount
	next := &ChargeResult{
		TotalCharges:       total,
		AmountPaid:         prev.AmountPaid,
		CurrentOutstanding: total - prev.AmountPaid,
	}

	if prev.Status == StatusDue {
		next.Status = DeriveStatus(prev.AmountPaid, total)
		return next, nil
	}

	switch {
	case prev.AmountPaid < total:
		next.Status = StatusPartial
	case prev.AmountPaid > total:
		next.Status = StatusOverpaid
	default:
		next.Status = StatusPaid
	}
	return next, nil
}

// RecordPayment applies a payment on top of an existing billing period
// and re-derives the status from the cumulative amount paid.
func RecordPayment(prev *ChargeResult, amount int64) (*ChargeResult, error) {
	if prev == nil {
		return nil, &ValidationError{Field: "bill", Reason: "no billing period to update"}
	}
	if amount < 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be non-negative"}
	}

	paid := prev.AmountPaid + amount
	return &ChargeResult{
		TotalCharges:       prev.TotalCharges,
		AmountPaid:         paid,
		CurrentOutstanding: prev.TotalCharges - paid,
		Status:             DeriveStatus(paid, prev.TotalCharges),
	}, nil
}

// CalculatePerHeadBill divides a shared cost across members, rounding
// up so the shared pool never comes up short. The surplus from rounding
// is absorbed by the group, not refunded.
func CalculatePerHeadBill(totalAmount int64, memberCount int) (int64, error) {
	if totalAmount < 0 {
		return 0, &ValidationError{Field: "total_amount", Reason: "must be non-negative"}
	}
	if memberCount <= 0 {
		return 0, &ValidationError{Field: "member_count", Reason: "must be positive"}
	}
	n := int64(memberCount)
	return (totalAmount + n - 1) / n, nil
}

// SettlementDirection tells who owes whom after settlement
type SettlementDirection string

const (
	SettlementRefund  SettlementDirection = "refund"  // refund due to member
	SettlementPayment SettlementDirection = "payment" // member owes the house
	SettlementSettled SettlementDirection = "settled" // nothing to exchange
)

// SettlementInput holds the member state needed to settle a tenancy
type SettlementInput struct {
	TotalAgreedDeposit        int64
	CurrentOutstandingBalance int64
	MoveInDate                time.Time
	LeaveDate                 time.Time
}

// SettlementResult is the final amount exchanged when a tenancy ends
type SettlementResult struct {
	SettlementAmount int64               `json:"settlement_amount"`
	Direction        SettlementDirection `json:"direction"`
}

// ComputeSettlement computes the final settlement when a member leaves:
//
//	settlementAmount = totalAgreedDeposit - currentOutstandingBalance
//
// Positive means a refund is due to the member, negative means the
// member owes the house. The closed form assumes the outstanding
// balance is the maintained running total; history is never re-derived
// here. A zero outstanding yields the full deposit as a refund.
func ComputeSettlement(in SettlementInput) (*SettlementResult, error) {
	if !in.LeaveDate.IsZero() && !in.MoveInDate.IsZero() && in.LeaveDate.Before(in.MoveInDate) {
		return nil, &ValidationError{Field: "leave_date", Reason: "precedes move-in date"}
	}

	amount := in.TotalAgreedDeposit - in.CurrentOutstandingBalance

	direction := SettlementSettled
	switch {
	case amount > 0:
		direction = SettlementRefund
	case amount < 0:
		direction = SettlementPayment
	}

	return &SettlementResult{
		SettlementAmount: amount,
		Direction:        direction,
	}, nil
}
