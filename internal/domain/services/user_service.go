package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"membership-http-service/internal/domain/models"
	"membership-http-service/internal/error/validation"
	"membership-http-service/internal/infrastructure/config"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// bcrypt only reads the first 72 bytes of a password; longer inputs are
// rejected up front instead of silently truncated.
const maxPasswordBytes = 72

// InterfaceUserService defines the user service interface
type InterfaceUserService interface {
	Register(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CheckPassword(password, hash string) bool
}

// UserService provides account registration and lookup
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1 CheckPassword verifies a password against its hash
func (s *UserService) CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// 2 Register validates and persists a new account. The password is hashed
// by the model hooks; is_staff is never settable here.
func (s *UserService) Register(user *models.User) error {
	verrs := validation.Errors{}

	if user.Username == "" {
		verrs.Add("username", "this field is required")
	}
	if user.Email == "" {
		verrs.Add("email", "this field is required")
	} else if err := validate.Var(user.Email, "email"); err != nil {
		verrs.Add("email", "enter a valid email address")
	}
	if user.Password == "" {
		verrs.Add("password", "this field is required")
	} else if len(user.Password) > maxPasswordBytes {
		verrs.Add("password", "ensure this field has no more than 72 characters")
	}

	// Uniqueness of username and email
	if user.Username != "" {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			verrs.Add("username", "a user with this username already exists")
		}
	}
	if user.Email != "" {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			verrs.Add("email", "a user with this email already exists")
		}
	}

	if verrs.HasErrors() {
		return verrs
	}

	// Registration never grants staff rights
	user.IsStaff = false
	user.IsActive = true
	if user.DateJoined.IsZero() {
		user.DateJoined = time.Now()
	}

	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			verrs.Add("username", "a user with this username already exists")
			return verrs
		}
		return err
	}
	return nil
}

// 3 GetUserByID returns the user with the given id
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// 4 GetUserByUsername returns the user with the given username
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
