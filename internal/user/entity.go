package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GoogleID                    string    `gorm:"uniqueIndex;not null" json:"-"`
	Email                       string    `gorm:"uniqueIndex;not null" json:"email"`
	Name                        string    `gorm:"not null" json:"name"`
	AvatarURL                   string    `json:"avatar_url,omitempty"`
	Persona                     string    `gorm:"type:text" json:"persona,omitempty"`
	EncryptedGoogleRefreshToken string    `gorm:"type:text" json:"-"`
	CreatedAt                   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
