package models

import "time"

// AccountType identifies the social platform an account belongs to.
type AccountType string

const (
	AccountTwitter   AccountType = "TWITTER"
	AccountLinkedIn  AccountType = "LINKEDIN"
	AccountFacebook  AccountType = "FACEBOOK"
	AccountInstagram AccountType = "INSTAGRAM"
)

// ValidAccountType reports whether t names a supported platform.
func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountTwitter, AccountLinkedIn, AccountFacebook, AccountInstagram:
		return true
	}
	return false
}

// Account is a social-media account owned by a user. List- and map-valued
// fields are stored as JSON text columns; every query against this table
// is scoped by UserID.
type Account struct {
	ID                 string      `gorm:"primaryKey;type:text"`
	UserID             string      `gorm:"index;type:text;not null"`
	Type               AccountType `gorm:"type:text;not null"`
	Name               string      `gorm:"size:120;not null"`
	Description        string      `gorm:"type:text"`
	Goals              StringList  `gorm:"type:text"`
	Interests          StringList  `gorm:"type:text"`
	Credentials        StringMap   `gorm:"type:text;not null"`
	ContentPreferences StringMap   `gorm:"type:text"`
	PostFrequency      int         `gorm:"not null;default:1"`
	BestTimeToPost     StringList  `gorm:"type:text"`
	IsActive           bool        `gorm:"not null;default:true"`
	LastSyncAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Account) TableName() string { return "accounts" }
