package billing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMonthlyCharge(t *testing.T) {
	tests := []struct {
		name            string
		input           ChargeInput
		wantTotal       int64
		wantOutstanding int64
		wantStatus      Status
	}{
		{
			name: "fresh bill nothing paid",
			input: ChargeInput{
				Rent:        1600,
				Electricity: 150,
				WiFi:        83,
			},
			wantTotal:       1833,
			wantOutstanding: 1833,
			wantStatus:      StatusDue,
		},
		{
			name: "fully paid",
			input: ChargeInput{
				Rent:        1600,
				Electricity: 150,
				WiFi:        83,
				AmountPaid:  1833,
			},
			wantTotal:       1833,
			wantOutstanding: 0,
			wantStatus:      StatusPaid,
		},
		{
			name: "overpaid",
			input: ChargeInput{
				Rent:        1600,
				Electricity: 150,
				WiFi:        83,
				AmountPaid:  2000,
			},
			wantTotal:       1833,
			wantOutstanding: -167,
			wantStatus:      StatusOverpaid,
		},
		{
			name: "partial payment",
			input: ChargeInput{
				Rent:        1600,
				Electricity: 150,
				WiFi:        83,
				AmountPaid:  1000,
			},
			wantTotal:       1833,
			wantOutstanding: 833,
			wantStatus:      StatusPartial,
		},
		{
			name: "expenses included in total",
			input: ChargeInput{
				Rent:        2000,
				Electricity: 120,
				WiFi:        80,
				Expenses: []Expense{
					{Amount: 50, Description: "bulb replacement"},
					{Amount: 200, Description: "feast contribution"},
				},
			},
			wantTotal:       2450,
			wantOutstanding: 2450,
			wantStatus:      StatusDue,
		},
		{
			name: "forwarded previous outstanding",
			input: ChargeInput{
				Rent:                       1600,
				Electricity:                150,
				WiFi:                       83,
				PreviousOutstanding:        500,
				ForwardPreviousOutstanding: true,
			},
			wantTotal:       2333,
			wantOutstanding: 2333,
			wantStatus:      StatusDue,
		},
		{
			name: "previous outstanding ignored when not forwarded",
			input: ChargeInput{
				Rent:                1600,
				Electricity:         150,
				WiFi:                83,
				PreviousOutstanding: 500,
			},
			wantTotal:       1833,
			wantOutstanding: 1833,
			wantStatus:      StatusDue,
		},
		{
			name: "forwarded credit reduces total",
			input: ChargeInput{
				Rent:                       1600,
				PreviousOutstanding:        -167,
				ForwardPreviousOutstanding: true,
			},
			wantTotal:       1433,
			wantOutstanding: 1433,
			wantStatus:      StatusDue,
		},
		{
			name:            "zero charges zero paid is paid",
			input:           ChargeInput{},
			wantTotal:       0,
			wantOutstanding: 0,
			wantStatus:      StatusPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeMonthlyCharge(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.TotalCharges)
			assert.Equal(t, tt.wantOutstanding, result.CurrentOutstanding)
			assert.Equal(t, tt.input.AmountPaid, result.AmountPaid)
			assert.Equal(t, tt.wantStatus, result.Status)
		})
	}
}

func TestComputeMonthlyChargeValidation(t *testing.T) {
	tests := []struct {
		name  string
		input ChargeInput
	}{
		{"negative rent", ChargeInput{Rent: -1}},
		{"negative electricity", ChargeInput{Electricity: -10}},
		{"negative wifi", ChargeInput{WiFi: -5}},
		{"negative amount paid", ChargeInput{AmountPaid: -100}},
		{"negative expense", ChargeInput{Expenses: []Expense{{Amount: -1, Description: "bad"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeMonthlyCharge(tt.input)
			require.Error(t, err)
			assert.Nil(t, result, "no partial result on error")

			var vErr *ValidationError
			assert.True(t, errors.As(err, &vErr))
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name       string
		amountPaid int64
		total      int64
		want       Status
	}{
		{"nothing paid", 0, 1833, StatusDue},
		{"partial", 1000, 1833, StatusPartial},
		{"exact", 1833, 1833, StatusPaid},
		{"over", 2000, 1833, StatusOverpaid},
		{"zero total zero paid", 0, 0, StatusPaid},
		{"zero total overpaid", 10, 0, StatusOverpaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.amountPaid, tt.total))
		})
	}
}

func TestApplyAdditionalCharges(t *testing.T) {
	t.Run("due bill stays due", func(t *testing.T) {
		prev := &ChargeResult{TotalCharges: 1833, AmountPaid: 0, CurrentOutstanding: 1833, Status: StatusDue}
		next, err := ApplyAdditionalCharges(prev, 500)
		require.NoError(t, err)
		assert.Equal(t, int64(2333), next.TotalCharges)
		assert.Equal(t, int64(2333), next.CurrentOutstanding)
		assert.Equal(t, StatusDue, next.Status)
	})

	t.Run("paid bill reopens as partial not due", func(t *testing.T) {
		prev := &ChargeResult{TotalCharges: 1833, AmountPaid: 1833, CurrentOutstanding: 0, Status: StatusPaid}
		next, err := ApplyAdditionalCharges(prev, 500)
		require.NoError(t, err)
		assert.Equal(t, int64(2333), next.TotalCharges)
		assert.Equal(t, int64(500), next.CurrentOutstanding)
		assert.Equal(t, StatusPartial, next.Status)
	})

	t.Run("overpaid bill absorbs charge and stays overpaid", func(t *testing.T) {
		prev := &ChargeResult{TotalCharges: 1833, AmountPaid: 2500, CurrentOutstanding: -667, Status: StatusOverpaid}
		next, err := ApplyAdditionalCharges(prev, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(-567), next.CurrentOutstanding)
		assert.Equal(t, StatusOverpaid, next.Status)
	})

	t.Run("overpaid bill lands exactly on paid", func(t *testing.T) {
		prev := &ChargeResult{TotalCharges: 1833, AmountPaid: 2000, CurrentOutstanding: -167, Status: StatusOverpaid}
		next, err := ApplyAdditionalCharges(prev, 167)
		require.NoError(t, err)
		assert.Equal(t, int64(0), next.CurrentOutstanding)
		assert.Equal(t, StatusPaid, next.Status)
	})

	t.Run("partial bill with zero paid never resets to due", func(t *testing.T) {
		// a non-Due status with zero paid cannot normally occur; the rule
		// still maps it to Partial rather than resetting to Due
		prev := &ChargeResult{TotalCharges: 1833, AmountPaid: 0, CurrentOutstanding: 1833, Status: StatusPartial}
		next, err := ApplyAdditionalCharges(prev, 500)
		require.NoError(t, err)
		assert.Equal(t, StatusPartial, next.Status)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		prev := &ChargeResult{TotalCharges: 1833, Status: StatusDue}
		_, err := ApplyAdditionalCharges(prev, -1)
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
	})

	t.Run("nil bill rejected", func(t *testing.T) {
		_, err := ApplyAdditionalCharges(nil, 100)
		require.Error(t, err)
	})
}

func TestRecordPayment(t *testing.T) {
	t.Run("due to partial to paid", func(t *testing.T) {
		bill := &ChargeResult{TotalCharges: 1833, AmountPaid: 0, CurrentOutstanding: 1833, Status: StatusDue}

		bill, err := RecordPayment(bill, 1000)
		require.NoError(t, err)
		assert.Equal(t, StatusPartial, bill.Status)
		assert.Equal(t, int64(833), bill.CurrentOutstanding)

		bill, err = RecordPayment(bill, 833)
		require.NoError(t, err)
		assert.Equal(t, StatusPaid, bill.Status)
		assert.Equal(t, int64(0), bill.CurrentOutstanding)
	})

	t.Run("single overpayment", func(t *testing.T) {
		bill := &ChargeResult{TotalCharges: 1833, AmountPaid: 0, CurrentOutstanding: 1833, Status: StatusDue}
		bill, err := RecordPayment(bill, 2000)
		require.NoError(t, err)
		assert.Equal(t, StatusOverpaid, bill.Status)
		assert.Equal(t, int64(-167), bill.CurrentOutstanding)
	})

	t.Run("negative payment rejected", func(t *testing.T) {
		bill := &ChargeResult{TotalCharges: 1833, Status: StatusDue}
		_, err := RecordPayment(bill, -50)
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
	})
}

func TestCalculatePerHeadBill(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		memberCount int
		want        int64
	}{
		{"rounds up", 1000, 3, 334},
		{"exact division", 900, 3, 300},
		{"single member", 750, 1, 750},
		{"zero total", 0, 4, 0},
		{"one short of exact", 899, 3, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculatePerHeadBill(tt.total, tt.memberCount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("zero members rejected", func(t *testing.T) {
		_, err := CalculatePerHeadBill(1000, 0)
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
	})

	t.Run("negative total rejected", func(t *testing.T) {
		_, err := CalculatePerHeadBill(-1, 3)
		require.Error(t, err)
	})
}

func TestComputeSettlement(t *testing.T) {
	tests := []struct {
		name          string
		deposit       int64
		outstanding   int64
		wantAmount    int64
		wantDirection SettlementDirection
	}{
		{"deposit exceeds outstanding", 4200, 800, 3400, SettlementRefund},
		{"credit adds to refund", 4400, -300, 4700, SettlementRefund},
		{"zero outstanding refunds full deposit", 7400, 0, 7400, SettlementRefund},
		{"outstanding exceeds deposit", 3000, 4500, -1500, SettlementPayment},
		{"exactly settled", 3000, 3000, 0, SettlementSettled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeSettlement(SettlementInput{
				TotalAgreedDeposit:        tt.deposit,
				CurrentOutstandingBalance: tt.outstanding,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, result.SettlementAmount)
			assert.Equal(t, tt.wantDirection, result.Direction)
		})
	}

	t.Run("leave date before move-in rejected", func(t *testing.T) {
		result, err := ComputeSettlement(SettlementInput{
			TotalAgreedDeposit: 4200,
			MoveInDate:         time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			LeaveDate:          time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		})
		require.Error(t, err)
		assert.Nil(t, result)

		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr))
	})

	t.Run("leave date on move-in day allowed", func(t *testing.T) {
		day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		result, err := ComputeSettlement(SettlementInput{
			TotalAgreedDeposit: 4200,
			MoveInDate:         day,
			LeaveDate:          day,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(4200), result.SettlementAmount)
	})
}

func TestRateTableLookup(t *testing.T) {
	table := RateTable{
		{Floor: FloorSecond, BedType: BedTypeBed}:     1600,
		{Floor: FloorSecond, BedType: BedTypeRoom}:    2500,
		{Floor: FloorSecond, BedType: BedTypeSpecial}: 2000,
		{Floor: FloorThird, BedType: BedTypeBed}:      1500,
		{Floor: FloorThird, BedType: BedTypeRoom}:     2400,
	}

	rent, err := table.Lookup(FloorSecond, BedTypeSpecial)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), rent)

	_, err = table.Lookup(FloorThird, BedTypeSpecial)
	require.Error(t, err)

	var cErr *ConfigurationError
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, FloorThird, cErr.Floor)
	assert.Equal(t, BedTypeSpecial, cErr.BedType)
}

func TestValidBedType(t *testing.T) {
	assert.True(t, ValidBedType(FloorSecond, BedTypeSpecial))
	assert.False(t, ValidBedType(FloorThird, BedTypeSpecial))
	assert.True(t, ValidBedType(FloorThird, BedTypeBed))
	assert.True(t, ValidBedType(FloorThird, BedTypeRoom))
	assert.False(t, ValidBedType(FloorSecond, BedType("Dorm")))
	assert.True(t, ValidFloor(FloorSecond))
	assert.False(t, ValidFloor(Floor("4th")))
}
