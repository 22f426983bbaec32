package service

import (
	"hostel-be-svc/internal/billing"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/models/response"
	"hostel-be-svc/pkg/logger"

	"gorm.io/gorm"
)

func testLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}

// stubMemberRepo is an in-memory MemberRepository for service tests
type stubMemberRepo struct {
	members map[uint]*models.Member
	nextID  uint
}

func newStubMemberRepo(members ...*models.Member) *stubMemberRepo {
	repo := &stubMemberRepo{members: make(map[uint]*models.Member), nextID: 1}
	for _, m := range members {
		if m.ID == 0 {
			m.ID = repo.nextID
		}
		if m.ID >= repo.nextID {
			repo.nextID = m.ID + 1
		}
		repo.members[m.ID] = m
	}
	return repo
}

func (r *stubMemberRepo) GetMemberByID(id uint) (*models.Member, error) {
	member, ok := r.members[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return member, nil
}

func (r *stubMemberRepo) GetMemberByPhone(phone string) (*models.Member, error) {
	for _, m := range r.members {
		if m.Phone == phone {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMemberRepo) GetActiveMembers() ([]*models.Member, error) {
	var active []*models.Member
	for _, m := range r.members {
		if m.IsActive {
			active = append(active, m)
		}
	}
	return active, nil
}

func (r *stubMemberRepo) GetActiveMembersByFloor(floor billing.Floor) ([]*models.Member, error) {
	var active []*models.Member
	for _, m := range r.members {
		if m.IsActive && m.Floor == floor {
			active = append(active, m)
		}
	}
	return active, nil
}

func (r *stubMemberRepo) CountActiveByFloor(floor billing.Floor) (int64, error) {
	members, _ := r.GetActiveMembersByFloor(floor)
	return int64(len(members)), nil
}

func (r *stubMemberRepo) CountWiFiOptedIn() (int64, error) {
	var count int64
	for _, m := range r.members {
		if m.IsActive && m.WiFiOptIn {
			count++
		}
	}
	return count, nil
}

func (r *stubMemberRepo) CreateMember(member *models.Member) error {
	member.ID = r.nextID
	r.nextID++
	r.members[member.ID] = member
	return nil
}

func (r *stubMemberRepo) UpdateMember(member *models.Member) error {
	r.members[member.ID] = member
	return nil
}

func (r *stubMemberRepo) ListMembers(includeInactive bool, page int, limit int) ([]*models.Member, int64, error) {
	var result []*models.Member
	for _, m := range r.members {
		if includeInactive || m.IsActive {
			result = append(result, m)
		}
	}
	return result, int64(len(result)), nil
}

// stubRateRepo is an in-memory RateRepository for service tests
type stubRateRepo struct {
	rates map[billing.RateKey]int64
}

func newStubRateRepo(rates map[billing.RateKey]int64) *stubRateRepo {
	if rates == nil {
		rates = make(map[billing.RateKey]int64)
	}
	return &stubRateRepo{rates: rates}
}

func (r *stubRateRepo) GetAllRates() ([]*models.Rate, error) {
	var all []*models.Rate
	for key, rent := range r.rates {
		all = append(all, &models.Rate{Floor: key.Floor, BedType: key.BedType, MonthlyRent: rent})
	}
	return all, nil
}

func (r *stubRateRepo) GetRateTable() (billing.RateTable, error) {
	table := make(billing.RateTable, len(r.rates))
	for key, rent := range r.rates {
		table[key] = rent
	}
	return table, nil
}

func (r *stubRateRepo) UpsertRate(rate *models.Rate) error {
	r.rates[billing.RateKey{Floor: rate.Floor, BedType: rate.BedType}] = rate.MonthlyRent
	return nil
}

func (r *stubRateRepo) DeleteRate(floor billing.Floor, bedType billing.BedType) error {
	delete(r.rates, billing.RateKey{Floor: floor, BedType: bedType})
	return nil
}

// stubSettingsRepo is an in-memory SettingsRepository for service tests
type stubSettingsRepo struct {
	settings *models.Settings
}

func (r *stubSettingsRepo) GetSettings() (*models.Settings, error) {
	if r.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.settings, nil
}

func (r *stubSettingsRepo) SaveSettings(settings *models.Settings) error {
	r.settings = settings
	return nil
}

// stubBillingRepo is an in-memory BillingRepository for service tests
type stubBillingRepo struct {
	bills map[uint]map[string]*models.RentBill
}

func newStubBillingRepo(bills ...*models.RentBill) *stubBillingRepo {
	repo := &stubBillingRepo{bills: make(map[uint]map[string]*models.RentBill)}
	for _, b := range bills {
		if repo.bills[b.MemberID] == nil {
			repo.bills[b.MemberID] = make(map[string]*models.RentBill)
		}
		repo.bills[b.MemberID][b.Month] = b
	}
	return repo
}

func (r *stubBillingRepo) GetBillByID(id uint) (*models.RentBill, error) {
	for _, months := range r.bills {
		for _, b := range months {
			if b.ID == id {
				return b, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubBillingRepo) GetBillByMemberAndMonth(memberID uint, month string) (*models.RentBill, error) {
	if b, ok := r.bills[memberID][month]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubBillingRepo) BillExists(memberID uint, month string) (bool, error) {
	_, ok := r.bills[memberID][month]
	return ok, nil
}

func (r *stubBillingRepo) GetBillsWithFilters(search string, month string, status string, floor string, page int, limit int) ([]*response.BillWithMemberResponse, int64, error) {
	return nil, 0, nil
}

func (r *stubBillingRepo) GetBillingStatistics(month string) (*response.BillingStatisticsResponse, error) {
	return &response.BillingStatisticsResponse{Month: month}, nil
}

func (r *stubBillingRepo) GetBillsForExport(month string, status string, floor string) ([]*response.BillWithMemberResponse, error) {
	return nil, nil
}

// stubElectricityRepo is an in-memory ElectricityRepository for service tests
type stubElectricityRepo struct {
	bills map[string]map[billing.Floor]*models.ElectricityBill
}

func newStubElectricityRepo() *stubElectricityRepo {
	return &stubElectricityRepo{bills: make(map[string]map[billing.Floor]*models.ElectricityBill)}
}

func (r *stubElectricityRepo) GetByMonthAndFloor(month string, floor billing.Floor) (*models.ElectricityBill, error) {
	if b, ok := r.bills[month][floor]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubElectricityRepo) UpsertElectricityBill(bill *models.ElectricityBill) error {
	if r.bills[bill.Month] == nil {
		r.bills[bill.Month] = make(map[billing.Floor]*models.ElectricityBill)
	}
	r.bills[bill.Month][bill.Floor] = bill
	return nil
}

func (r *stubElectricityRepo) ListByMonth(month string) ([]*models.ElectricityBill, error) {
	var bills []*models.ElectricityBill
	for _, b := range r.bills[month] {
		bills = append(bills, b)
	}
	return bills, nil
}
