package models

import (
	"time"

	"gorm.io/gorm"

	"membership-http-service/utils"
)

// User represents an authentication account. It is independent of Member;
// a person may hold both but nothing links the two records.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email      string    `gorm:"type:varchar(254);uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	IsStaff    bool      `gorm:"default:false" json:"is_staff"`
	DateJoined time.Time `json:"date_joined"`
}

// BeforeCreate is a GORM hook that runs before creating a new record
func (u *User) BeforeCreate(tx *gorm.DB) error {
	// Hash the password if one was provided and not already hashed
	if u.Password != "" && !utils.IsHashed(u.Password) {
		hashedPassword, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashedPassword
	}
	return nil
}

// BeforeSave is a GORM hook that runs before saving a record
func (u *User) BeforeSave(tx *gorm.DB) error {
	// Hash the password if it is not already a bcrypt hash
	if u.Password != "" && !utils.IsHashed(u.Password) {
		hashedPassword, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashedPassword
	}
	return nil
}
