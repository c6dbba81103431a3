package model

import (
	"time"

	"github.com/google/uuid"
)

// IdxOtpChallengesEmailPurpose keeps one challenge per (email, purpose).
const IdxOtpChallengesEmailPurpose = "idx_otp_challenges_email_purpose"

// OtpChallengeModel mirrors the 'otp_challenges' table. The pending_* columns are only set for
// signup challenges and are either all present or all null.
type OtpChallengeModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email               string    `gorm:"type:varchar(254);not null;uniqueIndex:idx_otp_challenges_email_purpose"`
	Purpose             string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_otp_challenges_email_purpose"`
	CodeHash            string    `gorm:"type:varchar(255);not null"`
	Attempts            int       `gorm:"not null;default:0"`
	PendingUsername     *string   `gorm:"type:varchar(30)"`
	PendingFullName     *string   `gorm:"type:varchar(100)"`
	PendingPasswordHash *string   `gorm:"type:varchar(255)"`
	CreatedAt           time.Time `gorm:"not null"`
	ExpiresAt           time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (OtpChallengeModel) TableName() string {
	return "otp_challenges"
}
