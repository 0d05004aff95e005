package models

import (
	"time"
)

// Stage values a member can progress through.
const (
	StageOne   = "1"
	StageTwo   = "2"
	StageThree = "3"
	StageFour  = "4"
	StageFive  = "5"
)

// Stages lists the stage values in dashboard order.
var Stages = []string{StageOne, StageTwo, StageThree, StageFour, StageFive}

// BankNames lists the accepted bank_name values.
var BankNames = []string{
	"Access",
	"First",
	"GTB",
	"Zenith",
	"UBA",
	"Ecobank",
	"Fidelity",
	"Stanbic",
	"Union",
	"Other",
}

// Member represents a registered individual. Lookups use the externally
// assigned code_id rather than the surrogate id.
type Member struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Personal information
	FullName         string     `gorm:"type:varchar(255);not null" json:"full_name"`
	CodeID           string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"code_id"`
	Email            string     `gorm:"type:varchar(254);not null" json:"email"`
	Phone            string     `gorm:"type:varchar(20);not null" json:"phone"`
	Whatsapp         string     `gorm:"type:varchar(20)" json:"whatsapp"`
	Address          string     `gorm:"type:text" json:"address"`
	Occupation       string     `gorm:"type:varchar(100)" json:"occupation"`
	DateOfBirth      *time.Time `gorm:"type:date" json:"date_of_birth"`
	Stage            string     `gorm:"type:varchar(1);default:'1'" json:"stage"`
	RegistrationDate time.Time  `json:"registration_date"`

	// Banking information
	BankName      string `gorm:"type:varchar(50)" json:"bank_name"`
	BankAccountNo string `gorm:"type:varchar(20)" json:"bank_account_no"`

	// Referral information; referral_code_id is informational only, there is
	// no foreign key to another member.
	NoReferrals    int    `gorm:"default:0" json:"no_referrals"`
	ReferralPhone  string `gorm:"type:varchar(20)" json:"referral_phone"`
	ReferralCodeID string `gorm:"type:varchar(50)" json:"referral_code_id"`

	// Next of kin information
	NextOfKinName    string `gorm:"type:varchar(255)" json:"next_of_kin_name"`
	NextOfKinPhone   string `gorm:"type:varchar(20)" json:"next_of_kin_phone"`
	NextOfKinEmail   string `gorm:"type:varchar(254)" json:"next_of_kin_email"`
	NextOfKinAddress string `gorm:"type:text" json:"next_of_kin_address"`
}

// IsValidStage reports whether stage is one of the defined values.
func IsValidStage(stage string) bool {
	for _, s := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// IsValidBankName reports whether bankName is one of the accepted banks.
func IsValidBankName(bankName string) bool {
	for _, b := range BankNames {
		if b == bankName {
			return true
		}
	}
	return false
}
