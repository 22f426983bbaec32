package service

import (
	"fmt"
	"time"

	"hostel-be-svc/internal/billing"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/models/response"
	"hostel-be-svc/internal/repository"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// retentionPeriod is how long a deactivated member's records are kept
// before they become eligible for purging
const retentionPeriod = 6

// CreateMemberInput holds the validated fields for creating a member
type CreateMemberInput struct {
	Name            string
	Phone           string
	Floor           billing.Floor
	BedType         billing.BedType
	MoveInDate      time.Time
	SecurityDeposit *int64 // nil means use the configured default
	AdvanceDeposit  int64
	RentAtJoining   int64
	WiFiOptIn       bool
	Note            *string
}

// UpdateMemberInput holds the updatable fields of a member. Nil fields
// are left unchanged. TotalAgreedDeposit is never recomputed after
// creation.
type UpdateMemberInput struct {
	Name        *string
	Phone       *string
	Floor       *billing.Floor
	BedType     *billing.BedType
	MoveInDate  *time.Time
	CurrentRent *int64
	WiFiOptIn   *bool
	Note        *string
}

// MemberService defines the interface for member business operations
type MemberService interface {
	CreateMember(input CreateMemberInput) (*models.Member, error)
	UpdateMember(id uint, input UpdateMemberInput) (*models.Member, error)
	DeactivateMember(id uint, leaveDate time.Time) (*response.SettlementResponse, error)
	GetMember(id uint) (*models.Member, error)
	ListMembers(includeInactive bool, page int, limit int) ([]*models.Member, int64, error)
}

// memberService implements MemberService
type memberService struct {
	memberRepo   repository.MemberRepository
	rateRepo     repository.RateRepository
	settingsRepo repository.SettingsRepository
	db           *gorm.DB
	logger       *logger.Logger
}

// NewMemberService creates a new instance of MemberService
func NewMemberService(memberRepo repository.MemberRepository, rateRepo repository.RateRepository, settingsRepo repository.SettingsRepository, db *gorm.DB, logger *logger.Logger) MemberService {
	return &memberService{
		memberRepo:   memberRepo,
		rateRepo:     rateRepo,
		settingsRepo: settingsRepo,
		db:           db,
		logger:       logger,
	}
}

// CreateMember validates and persists a new member. The total agreed
// deposit is fixed at creation time as security + rent at joining +
// advance; later rent changes never adjust it.
func (s *memberService) CreateMember(input CreateMemberInput) (*models.Member, error) {
	if input.Name == "" {
		return nil, &billing.ValidationError{Field: "name", Reason: "is required"}
	}

	phone, err := utils.NormalizePhone(input.Phone)
	if err != nil {
		return nil, &billing.ValidationError{Field: "phone", Reason: err.Error()}
	}

	if !billing.ValidFloor(input.Floor) {
		return nil, &billing.ValidationError{Field: "floor", Reason: fmt.Sprintf("unknown floor %q", input.Floor)}
	}
	if !billing.ValidBedType(input.Floor, input.BedType) {
		return nil, &billing.ValidationError{Field: "bed_type", Reason: fmt.Sprintf("%q is not offered on floor %q", input.BedType, input.Floor)}
	}
	if input.RentAtJoining < 0 || input.AdvanceDeposit < 0 {
		return nil, &billing.ValidationError{Field: "deposit", Reason: "must be non-negative"}
	}
	if input.SecurityDeposit != nil && *input.SecurityDeposit < 0 {
		return nil, &billing.ValidationError{Field: "security_deposit", Reason: "must be non-negative"}
	}
	if input.MoveInDate.IsZero() {
		return nil, &billing.ValidationError{Field: "move_in_date", Reason: "is required"}
	}

	// the rate table must cover the member's placement before they
	// can ever be billed
	table, err := s.rateRepo.GetRateTable()
	if err != nil {
		return nil, fmt.Errorf("failed to load rate table: %w", err)
	}
	if _, err := table.Lookup(input.Floor, input.BedType); err != nil {
		return nil, err
	}

	security := int64(0)
	if input.SecurityDeposit != nil {
		security = *input.SecurityDeposit
	} else {
		settings, err := s.settingsRepo.GetSettings()
		if err != nil {
			return nil, fmt.Errorf("failed to load settings for default security deposit: %w", err)
		}
		security = settings.SecurityDepositDefault
	}

	member := &models.Member{
		DocumentID:         uuid.New().String(),
		Name:               input.Name,
		Phone:              phone,
		Floor:              input.Floor,
		BedType:            input.BedType,
		MoveInDate:         input.MoveInDate,
		SecurityDeposit:    security,
		AdvanceDeposit:     input.AdvanceDeposit,
		RentAtJoining:      input.RentAtJoining,
		CurrentRent:        input.RentAtJoining,
		TotalAgreedDeposit: security + input.RentAtJoining + input.AdvanceDeposit,
		IsActive:           true,
		WiFiOptIn:          input.WiFiOptIn,
		Note:               input.Note,
	}

	if err := s.memberRepo.CreateMember(member); err != nil {
		s.logger.WithError(err).WithField("phone", phone).Error("Failed to create member")
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"member_id": member.ID,
		"floor":     member.Floor,
		"bed_type":  member.BedType,
	}).Info("Member created successfully")

	return member, nil
}

// UpdateMember applies the given changes to a member. Move-in-date
// edits are only allowed within one month of the stored date; larger
// shifts need an explicit migration.
func (s *memberService) UpdateMember(id uint, input UpdateMemberInput) (*models.Member, error) {
	member, err := s.memberRepo.GetMemberByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, &billing.ValidationError{Field: "name", Reason: "is required"}
		}
		member.Name = *input.Name
	}

	if input.Phone != nil {
		phone, err := utils.NormalizePhone(*input.Phone)
		if err != nil {
			return nil, &billing.ValidationError{Field: "phone", Reason: err.Error()}
		}
		member.Phone = phone
	}

	floor := member.Floor
	if input.Floor != nil {
		floor = *input.Floor
		if !billing.ValidFloor(floor) {
			return nil, &billing.ValidationError{Field: "floor", Reason: fmt.Sprintf("unknown floor %q", floor)}
		}
	}
	bedType := member.BedType
	if input.BedType != nil {
		bedType = *input.BedType
	}
	if !billing.ValidBedType(floor, bedType) {
		return nil, &billing.ValidationError{Field: "bed_type", Reason: fmt.Sprintf("%q is not offered on floor %q", bedType, floor)}
	}
	member.Floor = floor
	member.BedType = bedType

	if input.MoveInDate != nil {
		if !billing.IsWithinOneMonthDiff(*input.MoveInDate, member.MoveInDate) {
			return nil, &billing.ValidationError{Field: "move_in_date", Reason: "edit exceeds the one-month window"}
		}
		member.MoveInDate = *input.MoveInDate
	}

	if input.CurrentRent != nil {
		if *input.CurrentRent < 0 {
			return nil, &billing.ValidationError{Field: "current_rent", Reason: "must be non-negative"}
		}
		member.CurrentRent = *input.CurrentRent
	}

	if input.WiFiOptIn != nil {
		member.WiFiOptIn = *input.WiFiOptIn
	}
	if input.Note != nil {
		member.Note = input.Note
	}

	if err := s.memberRepo.UpdateMember(member); err != nil {
		s.logger.WithError(err).WithField("member_id", id).Error("Failed to update member")
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	s.logger.WithField("member_id", id).Info("Member updated successfully")

	return member, nil
}

// DeactivateMember settles and deactivates a member. Settlement is the
// closed form over the maintained running outstanding; the member's
// records are kept for the retention period and only then become
// eligible for purging.
func (s *memberService) DeactivateMember(id uint, leaveDate time.Time) (*response.SettlementResponse, error) {
	member, err := s.memberRepo.GetMemberByID(id)
	if err != nil {
		return nil, err
	}

	if !member.IsActive {
		return nil, &billing.ValidationError{Field: "member", Reason: "already deactivated"}
	}

	settlement, err := billing.ComputeSettlement(billing.SettlementInput{
		TotalAgreedDeposit:        member.TotalAgreedDeposit,
		CurrentOutstandingBalance: member.CurrentOutstanding,
		MoveInDate:                member.MoveInDate,
		LeaveDate:                 leaveDate,
	})
	if err != nil {
		return nil, err
	}

	purgeAfter := leaveDate.AddDate(0, retentionPeriod, 0)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Member{}).
			Where("id = ?", member.ID).
			Updates(map[string]interface{}{
				"is_active":   false,
				"leave_date":  leaveDate,
				"purge_after": purgeAfter,
			}).Error
	})
	if err != nil {
		s.logger.WithError(err).WithField("member_id", id).Error("Failed to deactivate member")
		return nil, fmt.Errorf("failed to deactivate member: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"member_id":         member.ID,
		"settlement_amount": settlement.SettlementAmount,
		"direction":         settlement.Direction,
	}).Info("Member deactivated and settled")

	return &response.SettlementResponse{
		MemberID:         member.ID,
		MemberName:       member.Name,
		LeaveDate:        leaveDate.Format("2006-01-02"),
		SettlementAmount: settlement.SettlementAmount,
		Direction:        settlement.Direction,
	}, nil
}

// GetMember retrieves a member by ID
func (s *memberService) GetMember(id uint) (*models.Member, error) {
	return s.memberRepo.GetMemberByID(id)
}

// ListMembers retrieves members with pagination
func (s *memberService) ListMembers(includeInactive bool, page int, limit int) ([]*models.Member, int64, error) {
	return s.memberRepo.ListMembers(includeInactive, page, limit)
}
