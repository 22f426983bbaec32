package repository

import (
	"hostel-be-svc/internal/billing"
	"hostel-be-svc/internal/models"

	"gorm.io/gorm"
)

// MemberRepository defines the interface for member data operations
type MemberRepository interface {
	GetMemberByID(id uint) (*models.Member, error)
	GetMemberByPhone(phone string) (*models.Member, error)
	GetActiveMembers() ([]*models.Member, error)
	GetActiveMembersByFloor(floor billing.Floor) ([]*models.Member, error)
	CountActiveByFloor(floor billing.Floor) (int64, error)
	CountWiFiOptedIn() (int64, error)
	CreateMember(member *models.Member) error
	UpdateMember(member *models.Member) error
	ListMembers(includeInactive bool, page int, limit int) ([]*models.Member, int64, error)
}

// memberRepository implements MemberRepository
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new instance of MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{
		db: db,
	}
}

// GetMemberByID retrieves a member by ID
func (r *memberRepository) GetMemberByID(id uint) (*models.Member, error) {
	var member models.Member

	err := r.db.Where("id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}

	return &member, nil
}

// GetMemberByPhone retrieves a member by normalized phone number
func (r *memberRepository) GetMemberByPhone(phone string) (*models.Member, error) {
	var member models.Member

	err := r.db.Where("phone = ?", phone).First(&member).Error
	if err != nil {
		return nil, err
	}

	return &member, nil
}

// GetActiveMembers retrieves all active members ordered by floor and name
func (r *memberRepository) GetActiveMembers() ([]*models.Member, error) {
	var members []*models.Member

	err := r.db.Where("is_active = ?", true).Order("floor, name").Find(&members).Error
	if err != nil {
		return nil, err
	}

	return members, nil
}

// GetActiveMembersByFloor retrieves all active members on a floor
func (r *memberRepository) GetActiveMembersByFloor(floor billing.Floor) ([]*models.Member, error) {
	var members []*models.Member

	err := r.db.Where("is_active = ? AND floor = ?", true, floor).Order("name").Find(&members).Error
	if err != nil {
		return nil, err
	}

	return members, nil
}

// CountActiveByFloor counts active members sharing a floor's costs
func (r *memberRepository) CountActiveByFloor(floor billing.Floor) (int64, error) {
	var count int64

	err := r.db.Model(&models.Member{}).
		Where("is_active = ? AND floor = ?", true, floor).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CountWiFiOptedIn counts active members sharing the WiFi charge
func (r *memberRepository) CountWiFiOptedIn() (int64, error) {
	var count int64

	err := r.db.Model(&models.Member{}).
		Where("is_active = ? AND wifi_opt_in = ?", true, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CreateMember creates a new member record
func (r *memberRepository) CreateMember(member *models.Member) error {
	return r.db.Create(member).Error
}

// UpdateMember saves all fields of a member record
func (r *memberRepository) UpdateMember(member *models.Member) error {
	return r.db.Save(member).Error
}

// ListMembers retrieves members with pagination, optionally including
// deactivated ones
func (r *memberRepository) ListMembers(includeInactive bool, page int, limit int) ([]*models.Member, int64, error) {
	var members []*models.Member
	var total int64

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	query := r.db.Model(&models.Member{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("floor, name").Limit(limit).Offset(offset).Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}
