package module

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ModuleRepository interface {
	GetByID(id uuid.UUID) (*Module, error)
	ListByCreator(creatorID uuid.UUID) ([]*Module, error)
	ListPublic() ([]*Module, error)
	Update(m *Module) error
	Delete(id uuid.UUID) error
}

type moduleRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ModuleRepository {
	return &moduleRepository{db: db}
}

func (r *moduleRepository) GetByID(id uuid.UUID) (*Module, error) {
	var m Module
	err := r.db.
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order ASC")
		}).
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *moduleRepository) ListByCreator(creatorID uuid.UUID) ([]*Module, error) {
	var modules []*Module
	if err := r.db.
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *moduleRepository) ListPublic() ([]*Module, error) {
	var modules []*Module
	if err := r.db.
		Where("is_public = ?", true).
		Order("created_at DESC").
		Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *moduleRepository) Update(m *Module) error {
	return r.db.Save(m).Error
}

// Delete removes a module together with its steps and its quiz graph. The
// quiz tables belong to another package, so they are addressed by name.
func (r *moduleRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`DELETE FROM options WHERE question_id IN (
				SELECT id FROM questions WHERE quiz_id IN (SELECT id FROM quizzes WHERE module_id = ?))`,
			id,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			`DELETE FROM questions WHERE quiz_id IN (SELECT id FROM quizzes WHERE module_id = ?)`,
			id,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM quizzes WHERE module_id = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Where("module_id = ?", id).Delete(&Step{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Module{}, "id = ?", id).Error
	})
}
