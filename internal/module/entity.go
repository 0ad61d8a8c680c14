package module

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Module struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string         `gorm:"type:text;not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description,omitempty"`
	CreatorID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"creator_id"`
	IsPublic      bool           `gorm:"not null" json:"is_public"`
	Prerequisites datatypes.JSON `gorm:"type:jsonb" json:"prerequisites,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	Steps []Step `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`
}

func (m *Module) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type Step struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ModuleID  uuid.UUID `gorm:"type:uuid;not null;index" json:"module_id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	StepOrder int       `gorm:"not null" json:"step_order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (s *Step) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
