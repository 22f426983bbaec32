package service

import (
	"errors"
	"testing"
	"time"

	"hostel-be-svc/internal/billing"
	"hostel-be-svc/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRates() map[billing.RateKey]int64 {
	return map[billing.RateKey]int64{
		{Floor: billing.FloorSecond, BedType: billing.BedTypeBed}:     1600,
		{Floor: billing.FloorSecond, BedType: billing.BedTypeSpecial}: 2200,
		{Floor: billing.FloorThird, BedType: billing.BedTypeBed}:      1500,
		{Floor: billing.FloorThird, BedType: billing.BedTypeRoom}:     3500,
	}
}

func defaultSettings() *stubSettingsRepo {
	now := time.Now()
	return &stubSettingsRepo{settings: &models.Settings{
		CurrentBillingMonth:    "2026-08",
		NextBillingMonth:       "2026-09",
		WiFiMonthlyCharge:      1000,
		SecurityDepositDefault: 2000,
		PublishedAt:            &now,
	}}
}

func newTestMemberService(memberRepo *stubMemberRepo) MemberService {
	return NewMemberService(memberRepo, newStubRateRepo(defaultRates()), defaultSettings(), nil, testLogger())
}

func TestCreateMember(t *testing.T) {
	security := int64(2500)
	memberRepo := newStubMemberRepo()
	svc := newTestMemberService(memberRepo)

	member, err := svc.CreateMember(CreateMemberInput{
		Name:            "Rahim Uddin",
		Phone:           "01712-345678",
		Floor:           billing.FloorSecond,
		BedType:         billing.BedTypeBed,
		MoveInDate:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		SecurityDeposit: &security,
		AdvanceDeposit:  100,
		RentAtJoining:   1600,
		WiFiOptIn:       true,
	})
	require.NoError(t, err)

	assert.Equal(t, "+8801712345678", member.Phone)
	assert.Equal(t, int64(2500+1600+100), member.TotalAgreedDeposit)
	assert.Equal(t, int64(1600), member.CurrentRent)
	assert.True(t, member.IsActive)
	assert.Zero(t, member.CurrentOutstanding)
	assert.NotEmpty(t, member.DocumentID)
}

func TestCreateMemberDefaultSecurityDeposit(t *testing.T) {
	svc := newTestMemberService(newStubMemberRepo())

	member, err := svc.CreateMember(CreateMemberInput{
		Name:          "Karim",
		Phone:         "01812345678",
		Floor:         billing.FloorThird,
		BedType:       billing.BedTypeRoom,
		MoveInDate:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		RentAtJoining: 3500,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2000), member.SecurityDeposit)
	assert.Equal(t, int64(2000+3500), member.TotalAgreedDeposit)
}

func TestCreateMemberValidation(t *testing.T) {
	svc := newTestMemberService(newStubMemberRepo())

	base := CreateMemberInput{
		Name:          "Rahim",
		Phone:         "01712345678",
		Floor:         billing.FloorSecond,
		BedType:       billing.BedTypeBed,
		MoveInDate:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		RentAtJoining: 1600,
	}

	tests := []struct {
		name   string
		mutate func(*CreateMemberInput)
		field  string
	}{
		{"missing name", func(in *CreateMemberInput) { in.Name = "" }, "name"},
		{"bad phone", func(in *CreateMemberInput) { in.Phone = "12345" }, "phone"},
		{"unknown floor", func(in *CreateMemberInput) { in.Floor = "4th" }, "floor"},
		{"special bed on third floor", func(in *CreateMemberInput) {
			in.Floor = billing.FloorThird
			in.BedType = billing.BedTypeSpecial
		}, "bed_type"},
		{"negative rent", func(in *CreateMemberInput) { in.RentAtJoining = -1 }, "deposit"},
		{"missing move-in date", func(in *CreateMemberInput) { in.MoveInDate = time.Time{} }, "move_in_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := base
			tt.mutate(&input)

			_, err := svc.CreateMember(input)

			var validationErr *billing.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestCreateMemberMissingRateEntry(t *testing.T) {
	svc := NewMemberService(newStubMemberRepo(), newStubRateRepo(nil), defaultSettings(), nil, testLogger())

	_, err := svc.CreateMember(CreateMemberInput{
		Name:          "Rahim",
		Phone:         "01712345678",
		Floor:         billing.FloorSecond,
		BedType:       billing.BedTypeBed,
		MoveInDate:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		RentAtJoining: 1600,
	})

	var configErr *billing.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, billing.FloorSecond, configErr.Floor)
}

func TestUpdateMemberMoveInDateWindow(t *testing.T) {
	moveIn := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	member := &models.Member{
		ID:         1,
		Name:       "Rahim",
		Phone:      "+8801712345678",
		Floor:      billing.FloorSecond,
		BedType:    billing.BedTypeBed,
		MoveInDate: moveIn,
		IsActive:   true,
	}
	svc := newTestMemberService(newStubMemberRepo(member))

	// within one month is accepted
	nearby := moveIn.AddDate(0, 0, 20)
	updated, err := svc.UpdateMember(1, UpdateMemberInput{MoveInDate: &nearby})
	require.NoError(t, err)
	assert.Equal(t, nearby, updated.MoveInDate)

	// beyond one month is rejected
	farAway := moveIn.AddDate(0, 2, 0)
	_, err = svc.UpdateMember(1, UpdateMemberInput{MoveInDate: &farAway})

	var validationErr *billing.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "move_in_date", validationErr.Field)
}

func TestUpdateMemberRejectsInvalidPlacement(t *testing.T) {
	member := &models.Member{
		ID:         1,
		Name:       "Rahim",
		Phone:      "+8801712345678",
		Floor:      billing.FloorSecond,
		BedType:    billing.BedTypeSpecial,
		MoveInDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		IsActive:   true,
	}
	svc := newTestMemberService(newStubMemberRepo(member))

	// moving to the third floor while keeping a Special bed is invalid
	thirdFloor := billing.FloorThird
	_, err := svc.UpdateMember(1, UpdateMemberInput{Floor: &thirdFloor})

	var validationErr *billing.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "bed_type", validationErr.Field)
}

func TestUpdateMemberNotFound(t *testing.T) {
	svc := newTestMemberService(newStubMemberRepo())

	name := "Ghost"
	_, err := svc.UpdateMember(99, UpdateMemberInput{Name: &name})
	assert.Error(t, err)
}

func TestDeactivateMemberAlreadyInactive(t *testing.T) {
	member := &models.Member{
		ID:         1,
		Name:       "Rahim",
		MoveInDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:   false,
	}
	svc := newTestMemberService(newStubMemberRepo(member))

	_, err := svc.DeactivateMember(1, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))

	var validationErr *billing.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestDeactivateMemberLeaveBeforeMoveIn(t *testing.T) {
	member := &models.Member{
		ID:                 1,
		Name:               "Rahim",
		MoveInDate:         time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		TotalAgreedDeposit: 4200,
		IsActive:           true,
	}
	svc := newTestMemberService(newStubMemberRepo(member))

	_, err := svc.DeactivateMember(1, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}
