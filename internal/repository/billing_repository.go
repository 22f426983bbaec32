package repository

import (
	"strings"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/models/response"

	"gorm.io/gorm"
)

// BillingRepository defines the interface for rent bill data operations
type BillingRepository interface {
	GetBillByID(id uint) (*models.RentBill, error)
	GetBillByMemberAndMonth(memberID uint, month string) (*models.RentBill, error)
	BillExists(memberID uint, month string) (bool, error)
	GetBillsWithFilters(search string, month string, status string, floor string, page int, limit int) ([]*response.BillWithMemberResponse, int64, error)
	GetBillingStatistics(month string) (*response.BillingStatisticsResponse, error)
	GetBillsForExport(month string, status string, floor string) ([]*response.BillWithMemberResponse, error)
}

// billingRepository implements BillingRepository
type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository creates a new instance of BillingRepository
func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &billingRepository{
		db: db,
	}
}

// GetBillByID retrieves a rent bill by ID with its expenses
func (r *billingRepository) GetBillByID(id uint) (*models.RentBill, error) {
	var bill models.RentBill

	err := r.db.Preload("Expenses").Where("id = ?", id).First(&bill).Error
	if err != nil {
		return nil, err
	}

	return &bill, nil
}

// GetBillByMemberAndMonth retrieves a member's bill for one billing month
func (r *billingRepository) GetBillByMemberAndMonth(memberID uint, month string) (*models.RentBill, error) {
	var bill models.RentBill

	err := r.db.Preload("Expenses").
		Where("member_id = ? AND month = ?", memberID, month).
		First(&bill).Error
	if err != nil {
		return nil, err
	}

	return &bill, nil
}

// BillExists reports whether a bill already exists for a member and month
func (r *billingRepository) BillExists(memberID uint, month string) (bool, error) {
	var count int64

	err := r.db.Model(&models.RentBill{}).
		Where("member_id = ? AND month = ?", memberID, month).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

const billSelect = `
	SELECT
		b.id as bill_id,
		m.id as member_id,
		m.name as member_name,
		m.phone,
		m.floor,
		m.bed_type,
		b.month,
		b.rent,
		b.electricity,
		b.wifi,
		COALESCE(SUM(e.amount), 0) as expense_total,
		b.forwarded_outstanding,
		b.total_charges,
		b.amount_paid,
		b.current_outstanding,
		b.status
	FROM rent_bills b
	INNER JOIN members m ON m.id = b.member_id
	LEFT JOIN bill_expenses e ON e.bill_id = b.id
`

// GetBillsWithFilters retrieves bills joined with member data,
// filterable by member name/phone search, month, status and floor
func (r *billingRepository) GetBillsWithFilters(search string, month string, status string, floor string, page int, limit int) ([]*response.BillWithMemberResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	offset := (page - 1) * limit

	where, args := billFilters(search, month, status, floor)

	countQuery := "SELECT COUNT(*) FROM rent_bills b INNER JOIN members m ON m.id = b.member_id" + where
	var total int64
	if err := r.db.Raw(countQuery, args...).Row().Scan(&total); err != nil {
		return nil, 0, err
	}

	dataQuery := billSelect + where + `
	GROUP BY b.id, m.id
	ORDER BY b.month DESC, m.floor, m.name
	LIMIT ? OFFSET ?`

	queryArgs := append(append([]interface{}{}, args...), limit, offset)

	results, err := r.scanBills(dataQuery, queryArgs...)
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// GetBillsForExport retrieves all matching bills without pagination
func (r *billingRepository) GetBillsForExport(month string, status string, floor string) ([]*response.BillWithMemberResponse, error) {
	where, args := billFilters("", month, status, floor)

	query := billSelect + where + `
	GROUP BY b.id, m.id
	ORDER BY b.month DESC, m.floor, m.name`

	return r.scanBills(query, args...)
}

// billFilters builds the shared WHERE clause for bill queries
func billFilters(search string, month string, status string, floor string) (string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}

	if strings.TrimSpace(search) != "" {
		clauses = append(clauses, "(m.name ILIKE ? OR m.phone LIKE ?)")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	if month != "" {
		clauses = append(clauses, "b.month = ?")
		args = append(args, month)
	}
	if status != "" {
		clauses = append(clauses, "b.status = ?")
		args = append(args, status)
	}
	if floor != "" {
		clauses = append(clauses, "m.floor = ?")
		args = append(args, floor)
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// scanBills runs a bill query and scans the joined rows
func (r *billingRepository) scanBills(query string, args ...interface{}) ([]*response.BillWithMemberResponse, error) {
	rows, err := r.db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*response.BillWithMemberResponse
	for rows.Next() {
		var result response.BillWithMemberResponse

		err := rows.Scan(
			&result.BillID,
			&result.MemberID,
			&result.MemberName,
			&result.Phone,
			&result.Floor,
			&result.BedType,
			&result.Month,
			&result.Rent,
			&result.Electricity,
			&result.WiFi,
			&result.ExpenseTotal,
			&result.ForwardedOutstanding,
			&result.TotalCharges,
			&result.AmountPaid,
			&result.CurrentOutstanding,
			&result.Status,
		)
		if err != nil {
			return nil, err
		}

		results = append(results, &result)
	}

	return results, nil
}

// GetBillingStatistics aggregates billing figures for one month
func (r *billingRepository) GetBillingStatistics(month string) (*response.BillingStatisticsResponse, error) {
	stats := &response.BillingStatisticsResponse{Month: month}

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(total_charges), 0),
			COALESCE(SUM(amount_paid), 0),
			COALESCE(SUM(current_outstanding), 0),
			COUNT(*) FILTER (WHERE status = 'Due'),
			COUNT(*) FILTER (WHERE status = 'Partial'),
			COUNT(*) FILTER (WHERE status = 'Paid'),
			COUNT(*) FILTER (WHERE status = 'Overpaid')
		FROM rent_bills
		WHERE month = ?
	`

	err := r.db.Raw(query, month).Row().Scan(
		&stats.TotalBills,
		&stats.TotalCharges,
		&stats.TotalCollected,
		&stats.TotalOutstanding,
		&stats.DueCount,
		&stats.PartialCount,
		&stats.PaidCount,
		&stats.OverpaidCount,
	)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
