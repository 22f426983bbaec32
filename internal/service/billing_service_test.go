package service

import (
	"testing"
	"time"

	"hostel-be-svc/internal/billing"
	"hostel-be-svc/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBillingService(memberRepo *stubMemberRepo, billingRepo *stubBillingRepo, electricityRepo *stubElectricityRepo) BillingService {
	return NewBillingService(billingRepo, memberRepo, newStubRateRepo(defaultRates()), defaultSettings(), electricityRepo, nil, testLogger())
}

func activeMember(id uint, floor billing.Floor, bedType billing.BedType) *models.Member {
	return &models.Member{
		ID:         id,
		Name:       "Member",
		Phone:      "+880171234567" + string(rune('0'+id%10)),
		Floor:      floor,
		BedType:    bedType,
		MoveInDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:   true,
	}
}

func TestGenerateMonthlyBillsRejectsBadMonth(t *testing.T) {
	svc := newTestBillingService(newStubMemberRepo(), newStubBillingRepo(), newStubElectricityRepo())

	_, err := svc.GenerateMonthlyBills(nil, "August 2026", false, nil)

	var validationErr *billing.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "month", validationErr.Field)
}

func TestGenerateMonthlyBillsSkipsExistingBills(t *testing.T) {
	memberRepo := newStubMemberRepo(
		activeMember(1, billing.FloorSecond, billing.BedTypeBed),
		activeMember(2, billing.FloorThird, billing.BedTypeRoom),
	)
	billingRepo := newStubBillingRepo(
		&models.RentBill{ID: 1, MemberID: 1, Month: "2026-08", Status: billing.StatusDue},
		&models.RentBill{ID: 2, MemberID: 2, Month: "2026-08", Status: billing.StatusPaid},
	)
	svc := newTestBillingService(memberRepo, billingRepo, newStubElectricityRepo())

	result, err := svc.GenerateMonthlyBillsForAllMembers("2026-08", true, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalMembers)
	assert.Equal(t, 2, result.SkippedCount)
	assert.Zero(t, result.TotalBills)
	assert.Zero(t, result.FailedCount)
	assert.Empty(t, result.Errors)
}

func TestGenerateMonthlyBillsCollectsFailures(t *testing.T) {
	// member 1 occupies a placement with no rate entry, member 2 is
	// already billed; one member failing must not abort the run
	memberRepo := newStubMemberRepo(
		activeMember(1, billing.FloorSecond, billing.BedTypeRoom),
		activeMember(2, billing.FloorThird, billing.BedTypeRoom),
	)
	billingRepo := newStubBillingRepo(
		&models.RentBill{ID: 1, MemberID: 2, Month: "2026-08", Status: billing.StatusDue},
	)
	svc := newTestBillingService(memberRepo, billingRepo, newStubElectricityRepo())

	result, err := svc.GenerateMonthlyBillsForAllMembers("2026-08", false, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalMembers)
	assert.Equal(t, 1, result.FailedCount)
	assert.Equal(t, 1, result.SkippedCount)
	assert.Zero(t, result.TotalBills)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "member 1:")
	assert.Contains(t, result.Errors[0], "no rate configured")
}

func TestGenerateMonthlyBillsUnknownMember(t *testing.T) {
	svc := newTestBillingService(newStubMemberRepo(), newStubBillingRepo(), newStubElectricityRepo())

	_, err := svc.GenerateMonthlyBills([]uint{42}, "2026-08", false, nil)

	var validationErr *billing.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "member_ids", validationErr.Field)
}

func TestRecordPaymentRejectsNegativeAmount(t *testing.T) {
	billingRepo := newStubBillingRepo(&models.RentBill{
		ID:           1,
		MemberID:     1,
		Month:        "2026-08",
		TotalCharges: 1833,
		Status:       billing.StatusDue,
	})
	svc := newTestBillingService(newStubMemberRepo(), billingRepo, newStubElectricityRepo())

	_, err := svc.RecordPayment(1, "2026-08", -100)

	var validationErr *billing.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "amount", validationErr.Field)
}

func TestRecordPaymentBillNotFound(t *testing.T) {
	svc := newTestBillingService(newStubMemberRepo(), newStubBillingRepo(), newStubElectricityRepo())

	_, err := svc.RecordPayment(1, "2026-08", 100)
	assert.Error(t, err)
}

func TestAddExpenseRejectsNegativeAmount(t *testing.T) {
	billingRepo := newStubBillingRepo(&models.RentBill{
		ID:           1,
		MemberID:     1,
		Month:        "2026-08",
		TotalCharges: 1833,
		Status:       billing.StatusDue,
	})
	svc := newTestBillingService(newStubMemberRepo(), billingRepo, newStubElectricityRepo())

	_, err := svc.AddExpense(1, "2026-08", billing.Expense{Amount: -50})

	var validationErr *billing.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestRecordElectricityBill(t *testing.T) {
	memberRepo := newStubMemberRepo(
		activeMember(1, billing.FloorSecond, billing.BedTypeBed),
		activeMember(2, billing.FloorSecond, billing.BedTypeBed),
		activeMember(3, billing.FloorSecond, billing.BedTypeSpecial),
	)
	electricityRepo := newStubElectricityRepo()
	svc := newTestBillingService(memberRepo, newStubBillingRepo(), electricityRepo)

	bill, err := svc.RecordElectricityBill("2026-08", billing.FloorSecond, 1000)
	require.NoError(t, err)

	assert.Equal(t, 3, bill.MemberCount)
	// 1000 / 3 rounds up to 334
	assert.Equal(t, int64(334), bill.PerHeadShare)

	stored, err := electricityRepo.GetByMonthAndFloor("2026-08", billing.FloorSecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), stored.TotalAmount)
}

func TestRecordElectricityBillValidation(t *testing.T) {
	memberRepo := newStubMemberRepo(activeMember(1, billing.FloorSecond, billing.BedTypeBed))
	svc := newTestBillingService(memberRepo, newStubBillingRepo(), newStubElectricityRepo())

	tests := []struct {
		name  string
		month string
		floor billing.Floor
		total int64
	}{
		{"bad month", "2026/08", billing.FloorSecond, 1000},
		{"unknown floor", "2026-08", "4th", 1000},
		{"no members on floor", "2026-08", billing.FloorThird, 1000},
		{"negative amount", "2026-08", billing.FloorSecond, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordElectricityBill(tt.month, tt.floor, tt.total)

			var validationErr *billing.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}
