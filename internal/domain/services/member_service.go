package services

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"membership-http-service/internal/domain/models"
	"membership-http-service/internal/error/validation"
	"membership-http-service/internal/infrastructure/config"
)

// ErrMemberNotFound is returned when no member matches the requested code_id.
var ErrMemberNotFound = errors.New("member not found")

// validate performs field-level checks such as email format.
var validate = validator.New()

// InterfaceMemberService defines the member service interface
type InterfaceMemberService interface {
	GetAllMembers() ([]models.Member, error)
	GetMemberByCodeID(codeID string) (*models.Member, error)
	CreateMember(member *models.Member) error
	UpdateMember(codeID string, updates map[string]interface{}) (*models.Member, error)
	DeleteMember(codeID string) error
}

// MemberService provides member CRUD over the store
type MemberService struct {
	DB     *gorm.DB
	Config *config.Config

	// now supplies the default registration_date; injectable for tests
	now func() time.Time
}

// NewMemberService creates a new member service
func NewMemberService(db *gorm.DB, cfg *config.Config) InterfaceMemberService {
	return NewMemberServiceWithClock(db, cfg, time.Now)
}

// NewMemberServiceWithClock creates a member service with a fixed clock
func NewMemberServiceWithClock(db *gorm.DB, cfg *config.Config, now func() time.Time) InterfaceMemberService {
	return &MemberService{
		DB:     db,
		Config: cfg,
		now:    now,
	}
}

// 1 GetAllMembers returns all members, most recently registered first
func (s *MemberService) GetAllMembers() ([]models.Member, error) {
	var members []models.Member
	if err := s.DB.Order("registration_date DESC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// 2 GetMemberByCodeID returns the member with the given code_id
func (s *MemberService) GetMemberByCodeID(codeID string) (*models.Member, error) {
	var member models.Member
	if err := s.DB.Where("code_id = ?", codeID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// 3 CreateMember validates and persists a new member
func (s *MemberService) CreateMember(member *models.Member) error {
	verrs := validation.Errors{}

	// Required fields
	if member.CodeID == "" {
		verrs.Add("code_id", "this field is required")
	}
	if member.Email == "" {
		verrs.Add("email", "this field is required")
	} else if err := validate.Var(member.Email, "email"); err != nil {
		verrs.Add("email", "enter a valid email address")
	}
	if member.Phone == "" {
		verrs.Add("phone", "this field is required")
	}

	// Optional fields validated only when present
	if member.NextOfKinEmail != "" {
		if err := validate.Var(member.NextOfKinEmail, "email"); err != nil {
			verrs.Add("next_of_kin_email", "enter a valid email address")
		}
	}
	if member.Stage != "" && !models.IsValidStage(member.Stage) {
		verrs.Add("stage", "stage must be one of 1-5")
	}
	if member.BankName != "" && !models.IsValidBankName(member.BankName) {
		verrs.Add("bank_name", "unknown bank name")
	}
	if member.NoReferrals < 0 {
		verrs.Add("no_referrals", "must be zero or positive")
	}

	// code_id uniqueness
	if member.CodeID != "" {
		var count int64
		if err := s.DB.Model(&models.Member{}).Where("code_id = ?", member.CodeID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			verrs.Add("code_id", "a member with this code id already exists")
		}
	}

	if verrs.HasErrors() {
		return verrs
	}

	// Server-assigned defaults
	if member.Stage == "" {
		member.Stage = models.StageOne
	}
	if member.RegistrationDate.IsZero() {
		member.RegistrationDate = s.now()
	}

	if err := s.DB.Create(member).Error; err != nil {
		// The unique index decides a race between two creates with the same
		// code_id; the loser gets the same validation outcome as the
		// pre-check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			verrs.Add("code_id", "a member with this code id already exists")
			return verrs
		}
		return err
	}
	return nil
}

// 4 UpdateMember applies a partial or full update to the member with the
// given code_id, re-validating the touched fields
func (s *MemberService) UpdateMember(codeID string, updates map[string]interface{}) (*models.Member, error) {
	member, err := s.GetMemberByCodeID(codeID)
	if err != nil {
		return nil, err
	}

	verrs := validation.Errors{}

	if email, ok := updates["email"].(string); ok {
		if email == "" {
			verrs.Add("email", "this field is required")
		} else if err := validate.Var(email, "email"); err != nil {
			verrs.Add("email", "enter a valid email address")
		}
	}
	if kinEmail, ok := updates["next_of_kin_email"].(string); ok && kinEmail != "" {
		if err := validate.Var(kinEmail, "email"); err != nil {
			verrs.Add("next_of_kin_email", "enter a valid email address")
		}
	}
	if phone, ok := updates["phone"].(string); ok && phone == "" {
		verrs.Add("phone", "this field is required")
	}
	if stage, ok := updates["stage"].(string); ok && !models.IsValidStage(stage) {
		verrs.Add("stage", "stage must be one of 1-5")
	}
	if bankName, ok := updates["bank_name"].(string); ok && bankName != "" && !models.IsValidBankName(bankName) {
		verrs.Add("bank_name", "unknown bank name")
	}
	if noReferrals, ok := updates["no_referrals"].(int); ok && noReferrals < 0 {
		verrs.Add("no_referrals", "must be zero or positive")
	}

	// A changed code_id must stay unique
	if newCodeID, ok := updates["code_id"].(string); ok && newCodeID != member.CodeID {
		if newCodeID == "" {
			verrs.Add("code_id", "this field is required")
		} else {
			var count int64
			if err := s.DB.Model(&models.Member{}).Where("code_id = ? AND id != ?", newCodeID, member.ID).Count(&count).Error; err != nil {
				return nil, err
			}
			if count > 0 {
				verrs.Add("code_id", "a member with this code id already exists")
			}
		}
	}

	if verrs.HasErrors() {
		return nil, verrs
	}

	if len(updates) > 0 {
		if err := s.DB.Model(member).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				verrs.Add("code_id", "a member with this code id already exists")
				return nil, verrs
			}
			return nil, err
		}
	}

	// Reload by surrogate id in case code_id itself changed
	var updated models.Member
	if err := s.DB.First(&updated, member.ID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// 5 DeleteMember removes the member with the given code_id
func (s *MemberService) DeleteMember(codeID string) error {
	member, err := s.GetMemberByCodeID(codeID)
	if err != nil {
		return err
	}
	return s.DB.Delete(member).Error
}
