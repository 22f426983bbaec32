package service

import (
	"fmt"
	"time"

	"hostel-be-svc/internal/billing"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/models/response"
	"hostel-be-svc/internal/repository"
	"hostel-be-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// BillingService defines the interface for billing business operations
type BillingService interface {
	GenerateMonthlyBills(memberIDs []uint, month string, forwardOutstanding bool, bulkExpenses []billing.Expense) (*BulkBillingResponse, error)
	GenerateMonthlyBillsForAllMembers(month string, forwardOutstanding bool, bulkExpenses []billing.Expense) (*BulkBillingResponse, error)
	RecordPayment(memberID uint, month string, amount int64) (*models.RentBill, error)
	AddExpense(memberID uint, month string, expense billing.Expense) (*models.RentBill, error)
	RecordElectricityBill(month string, floor billing.Floor, totalAmount int64) (*models.ElectricityBill, error)
	GetBills(search string, month string, status string, floor string, page int, limit int) ([]*response.BillWithMemberResponse, int64, error)
	GetBillingStatistics(month string) (*response.BillingStatisticsResponse, error)
	ExportBillingToExcel(month string, status string, floor string) ([]byte, string, error)
}

// BulkBillingResponse represents the result of a bulk bill generation
type BulkBillingResponse struct {
	TotalMembers int      `json:"total_members"`
	TotalBills   int      `json:"total_bills"`
	SuccessCount int      `json:"success_count"`
	SkippedCount int      `json:"skipped_count"`
	FailedCount  int      `json:"failed_count"`
	Errors       []string `json:"errors,omitempty"`
}

// billingService implements BillingService
type billingService struct {
	billingRepo     repository.BillingRepository
	memberRepo      repository.MemberRepository
	rateRepo        repository.RateRepository
	settingsRepo    repository.SettingsRepository
	electricityRepo repository.ElectricityRepository
	db              *gorm.DB
	logger          *logger.Logger
}

// NewBillingService creates a new instance of BillingService
func NewBillingService(
	billingRepo repository.BillingRepository,
	memberRepo repository.MemberRepository,
	rateRepo repository.RateRepository,
	settingsRepo repository.SettingsRepository,
	electricityRepo repository.ElectricityRepository,
	db *gorm.DB,
	logger *logger.Logger,
) BillingService {
	return &billingService{
		billingRepo:     billingRepo,
		memberRepo:      memberRepo,
		rateRepo:        rateRepo,
		settingsRepo:    settingsRepo,
		electricityRepo: electricityRepo,
		db:              db,
		logger:          logger,
	}
}

// GenerateMonthlyBills generates the billing period for the given
// member IDs (or all active members when empty). Each member's bill is
// committed in its own transaction: one member failing never rolls
// back the rest, failures are collected into the response.
func (s *billingService) GenerateMonthlyBills(memberIDs []uint, month string, forwardOutstanding bool, bulkExpenses []billing.Expense) (*BulkBillingResponse, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, &billing.ValidationError{Field: "month", Reason: "must be formatted YYYY-MM"}
	}

	settings, err := s.settingsRepo.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	rateTable, err := s.rateRepo.GetRateTable()
	if err != nil {
		return nil, fmt.Errorf("failed to load rate table: %w", err)
	}

	wifiCount, err := s.memberRepo.CountWiFiOptedIn()
	if err != nil {
		return nil, fmt.Errorf("failed to count wifi members: %w", err)
	}

	var wifiShare int64
	if wifiCount > 0 {
		wifiShare, err = billing.CalculatePerHeadBill(settings.WiFiMonthlyCharge, int(wifiCount))
		if err != nil {
			return nil, err
		}
	}

	// per-floor electricity shares recorded for this month; floors
	// without a recorded bill are charged 0
	electricityBills, err := s.electricityRepo.ListByMonth(month)
	if err != nil {
		return nil, fmt.Errorf("failed to load electricity bills: %w", err)
	}
	electricityShares := make(map[billing.Floor]int64, len(electricityBills))
	for _, eb := range electricityBills {
		electricityShares[eb.Floor] = eb.PerHeadShare
	}

	var members []*models.Member
	if len(memberIDs) > 0 {
		for _, id := range memberIDs {
			member, err := s.memberRepo.GetMemberByID(id)
			if err != nil {
				return nil, &billing.ValidationError{Field: "member_ids", Reason: fmt.Sprintf("member %d not found", id)}
			}
			members = append(members, member)
		}
	} else {
		members, err = s.memberRepo.GetActiveMembers()
		if err != nil {
			return nil, fmt.Errorf("failed to get active members: %w", err)
		}
	}

	result := &BulkBillingResponse{TotalMembers: len(members)}

	for _, member := range members {
		exists, err := s.billingRepo.BillExists(member.ID, month)
		if err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("member %d: %v", member.ID, err))
			continue
		}
		if exists {
			result.SkippedCount++
			continue
		}

		if err := s.generateBillForMember(member, month, rateTable, electricityShares, wifiShare, forwardOutstanding, bulkExpenses); err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("member %d: %v", member.ID, err))
			continue
		}

		result.TotalBills++
		result.SuccessCount++
	}

	s.logger.WithFields(map[string]interface{}{
		"month":         month,
		"total_members": result.TotalMembers,
		"success_count": result.SuccessCount,
		"skipped_count": result.SkippedCount,
		"failed_count":  result.FailedCount,
	}).Info("Monthly bills generated")

	return result, nil
}

// GenerateMonthlyBillsForAllMembers generates bills for every active member
func (s *billingService) GenerateMonthlyBillsForAllMembers(month string, forwardOutstanding bool, bulkExpenses []billing.Expense) (*BulkBillingResponse, error) {
	return s.GenerateMonthlyBills([]uint{}, month, forwardOutstanding, bulkExpenses)
}

// generateBillForMember computes and persists one member's bill in a
// single transaction, patching the member's running outstanding
func (s *billingService) generateBillForMember(
	member *models.Member,
	month string,
	rateTable billing.RateTable,
	electricityShares map[billing.Floor]int64,
	wifiShare int64,
	forwardOutstanding bool,
	bulkExpenses []billing.Expense,
) error {
	rent, err := rateTable.Lookup(member.Floor, member.BedType)
	if err != nil {
		return err
	}

	memberWiFi := int64(0)
	if member.WiFiOptIn {
		memberWiFi = wifiShare
	}

	charge, err := billing.ComputeMonthlyCharge(billing.ChargeInput{
		Rent:                       rent,
		Electricity:                electricityShares[member.Floor],
		WiFi:                       memberWiFi,
		Expenses:                   bulkExpenses,
		PreviousOutstanding:        member.CurrentOutstanding,
		ForwardPreviousOutstanding: forwardOutstanding,
	})
	if err != nil {
		return err
	}

	forwarded := int64(0)
	if forwardOutstanding {
		forwarded = member.CurrentOutstanding
	}

	docID := "monthly-" + uuid.New().String()
	bill := &models.RentBill{
		DocumentID:           &docID,
		MemberID:             member.ID,
		Month:                month,
		Rent:                 rent,
		Electricity:          electricityShares[member.Floor],
		WiFi:                 memberWiFi,
		ForwardedOutstanding: forwarded,
		TotalCharges:         charge.TotalCharges,
		AmountPaid:           charge.AmountPaid,
		CurrentOutstanding:   charge.CurrentOutstanding,
		Status:               charge.Status,
	}

	// forwarding folds the running balance into this bill; without
	// forwarding the new charges stack on top of it
	newOutstanding := charge.CurrentOutstanding
	if !forwardOutstanding {
		newOutstanding = member.CurrentOutstanding + charge.CurrentOutstanding
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bill).Error; err != nil {
			return fmt.Errorf("failed to create bill: %w", err)
		}

		for _, exp := range bulkExpenses {
			expense := &models.BillExpense{
				BillID:      bill.ID,
				Amount:      exp.Amount,
				Description: exp.Description,
			}
			if err := tx.Create(expense).Error; err != nil {
				return fmt.Errorf("failed to create bill expense: %w", err)
			}
		}

		if err := tx.Model(&models.Member{}).
			Where("id = ?", member.ID).
			Update("current_outstanding", newOutstanding).Error; err != nil {
			return fmt.Errorf("failed to update member outstanding: %w", err)
		}

		member.CurrentOutstanding = newOutstanding
		return nil
	})
}

// RecordPayment applies a payment to a member's bill for one month and
// patches the member's running outstanding in the same transaction
func (s *billingService) RecordPayment(memberID uint, month string, amount int64) (*models.RentBill, error) {
	bill, err := s.billingRepo.GetBillByMemberAndMonth(memberID, month)
	if err != nil {
		return nil, err
	}

	next, err := billing.RecordPayment(bill.ChargeResult(), amount)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.RentBill{}).
			Where("id = ?", bill.ID).
			Updates(map[string]interface{}{
				"amount_paid":         next.AmountPaid,
				"current_outstanding": next.CurrentOutstanding,
				"status":              next.Status,
			}).Error; err != nil {
			return fmt.Errorf("failed to update bill: %w", err)
		}

		if err := tx.Model(&models.Member{}).
			Where("id = ?", memberID).
			Update("current_outstanding", gorm.Expr("current_outstanding - ?", amount)).Error; err != nil {
			return fmt.Errorf("failed to update member outstanding: %w", err)
		}

		return nil
	})
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"member_id": memberID,
			"month":     month,
			"amount":    amount,
		}).Error("Failed to record payment")
		return nil, err
	}

	bill.AmountPaid = next.AmountPaid
	bill.CurrentOutstanding = next.CurrentOutstanding
	bill.Status = next.Status

	s.logger.WithFields(map[string]interface{}{
		"member_id": memberID,
		"month":     month,
		"amount":    amount,
		"status":    bill.Status,
	}).Info("Payment recorded")

	return bill, nil
}

// AddExpense attaches an ad-hoc expense to an existing bill. The bill's
// status follows the forwarded-charge rule: a non-Due bill is never
// silently reset to Due.
func (s *billingService) AddExpense(memberID uint, month string, expense billing.Expense) (*models.RentBill, error) {
	bill, err := s.billingRepo.GetBillByMemberAndMonth(memberID, month)
	if err != nil {
		return nil, err
	}

	next, err := billing.ApplyAdditionalCharges(bill.ChargeResult(), expense.Amount)
	if err != nil {
		return nil, err
	}

	row := &models.BillExpense{
		BillID:      bill.ID,
		Amount:      expense.Amount,
		Description: expense.Description,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return fmt.Errorf("failed to create bill expense: %w", err)
		}

		if err := tx.Model(&models.RentBill{}).
			Where("id = ?", bill.ID).
			Updates(map[string]interface{}{
				"total_charges":       next.TotalCharges,
				"current_outstanding": next.CurrentOutstanding,
				"status":              next.Status,
			}).Error; err != nil {
			return fmt.Errorf("failed to update bill: %w", err)
		}

		if err := tx.Model(&models.Member{}).
			Where("id = ?", memberID).
			Update("current_outstanding", gorm.Expr("current_outstanding + ?", expense.Amount)).Error; err != nil {
			return fmt.Errorf("failed to update member outstanding: %w", err)
		}

		return nil
	})
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"member_id": memberID,
			"month":     month,
		}).Error("Failed to add expense")
		return nil, err
	}

	bill.TotalCharges = next.TotalCharges
	bill.CurrentOutstanding = next.CurrentOutstanding
	bill.Status = next.Status
	bill.Expenses = append(bill.Expenses, *row)

	return bill, nil
}

// RecordElectricityBill records a floor's shared electricity bill for
// a month and computes the per-head share over that floor's active
// members
func (s *billingService) RecordElectricityBill(month string, floor billing.Floor, totalAmount int64) (*models.ElectricityBill, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, &billing.ValidationError{Field: "month", Reason: "must be formatted YYYY-MM"}
	}
	if !billing.ValidFloor(floor) {
		return nil, &billing.ValidationError{Field: "floor", Reason: fmt.Sprintf("unknown floor %q", floor)}
	}

	count, err := s.memberRepo.CountActiveByFloor(floor)
	if err != nil {
		return nil, fmt.Errorf("failed to count members on floor: %w", err)
	}
	if count == 0 {
		return nil, &billing.ValidationError{Field: "floor", Reason: fmt.Sprintf("no active members on floor %q", floor)}
	}

	share, err := billing.CalculatePerHeadBill(totalAmount, int(count))
	if err != nil {
		return nil, err
	}

	bill := &models.ElectricityBill{
		Month:        month,
		Floor:        floor,
		TotalAmount:  totalAmount,
		MemberCount:  int(count),
		PerHeadShare: share,
	}

	if err := s.electricityRepo.UpsertElectricityBill(bill); err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"month": month,
			"floor": floor,
		}).Error("Failed to record electricity bill")
		return nil, fmt.Errorf("failed to record electricity bill: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"month":          month,
		"floor":          floor,
		"total_amount":   totalAmount,
		"member_count":   count,
		"per_head_share": share,
	}).Info("Electricity bill recorded")

	return bill, nil
}

// GetBills retrieves bills with filters and pagination
func (s *billingService) GetBills(search string, month string, status string, floor string, page int, limit int) ([]*response.BillWithMemberResponse, int64, error) {
	return s.billingRepo.GetBillsWithFilters(search, month, status, floor, page, limit)
}

// GetBillingStatistics retrieves aggregated billing figures for a month
func (s *billingService) GetBillingStatistics(month string) (*response.BillingStatisticsResponse, error) {
	return s.billingRepo.GetBillingStatistics(month)
}

// ExportBillingToExcel exports billing data to an Excel file
func (s *billingService) ExportBillingToExcel(month string, status string, floor string) ([]byte, string, error) {
	bills, err := s.billingRepo.GetBillsForExport(month, status, floor)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get billing data: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Error("Failed to close Excel file")
		}
	}()

	sheetName := "Rent Bills"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"No", "Name", "Phone", "Floor", "Bed Type", "Month", "Rent", "Electricity", "WiFi", "Expenses", "Forwarded", "Total Charges", "Amount Paid", "Outstanding", "Status"}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "O1", headerStyle)
	}

	for i, bill := range bills {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), bill.MemberName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), bill.Phone)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), string(bill.Floor))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), string(bill.BedType))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), bill.Month)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), bill.Rent)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), bill.Electricity)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), bill.WiFi)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), bill.ExpenseTotal)
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), bill.ForwardedOutstanding)
		f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), bill.TotalCharges)
		f.SetCellValue(sheetName, fmt.Sprintf("M%d", row), bill.AmountPaid)
		f.SetCellValue(sheetName, fmt.Sprintf("N%d", row), bill.CurrentOutstanding)
		f.SetCellValue(sheetName, fmt.Sprintf("O%d", row), string(bill.Status))
	}

	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 15)
	}

	if f.GetSheetName(0) == "Sheet1" && sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("rent_bills_export_%s.xlsx", timestamp)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buffer.Bytes(), filename, nil
}
