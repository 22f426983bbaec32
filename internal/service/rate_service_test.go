package service

import (
	"testing"

	"hostel-be-svc/internal/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetRate(t *testing.T) {
	rateRepo := newStubRateRepo(nil)
	svc := NewRateService(rateRepo, newStubMemberRepo(), testLogger())

	rate, err := svc.SetRate(billing.FloorSecond, billing.BedTypeBed, 1600)
	require.NoError(t, err)
	assert.Equal(t, int64(1600), rate.MonthlyRent)

	table, err := rateRepo.GetRateTable()
	require.NoError(t, err)
	rent, err := table.Lookup(billing.FloorSecond, billing.BedTypeBed)
	require.NoError(t, err)
	assert.Equal(t, int64(1600), rent)

	// overwriting an existing pair replaces the rent
	_, err = svc.SetRate(billing.FloorSecond, billing.BedTypeBed, 1700)
	require.NoError(t, err)

	table, _ = rateRepo.GetRateTable()
	rent, _ = table.Lookup(billing.FloorSecond, billing.BedTypeBed)
	assert.Equal(t, int64(1700), rent)
}

func TestSetRateValidation(t *testing.T) {
	svc := NewRateService(newStubRateRepo(nil), newStubMemberRepo(), testLogger())

	tests := []struct {
		name    string
		floor   billing.Floor
		bedType billing.BedType
		rent    int64
	}{
		{"unknown floor", "1st", billing.BedTypeBed, 1600},
		{"special bed on third floor", billing.FloorThird, billing.BedTypeSpecial, 2200},
		{"negative rent", billing.FloorSecond, billing.BedTypeBed, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetRate(tt.floor, tt.bedType, tt.rent)

			var validationErr *billing.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestDeleteRateRefusedWhileOccupied(t *testing.T) {
	memberRepo := newStubMemberRepo(activeMember(1, billing.FloorSecond, billing.BedTypeBed))
	rateRepo := newStubRateRepo(defaultRates())
	svc := NewRateService(rateRepo, memberRepo, testLogger())

	err := svc.DeleteRate(billing.FloorSecond, billing.BedTypeBed)

	var validationErr *billing.ValidationError
	require.ErrorAs(t, err, &validationErr)

	// an unoccupied placement can be deleted
	err = svc.DeleteRate(billing.FloorSecond, billing.BedTypeSpecial)
	require.NoError(t, err)

	table, _ := rateRepo.GetRateTable()
	_, err = table.Lookup(billing.FloorSecond, billing.BedTypeSpecial)
	assert.Error(t, err)
}
