package repository

import (
	"errors"

	"github.com/ngocdev/portfolio-api/internal/models"

	"gorm.io/gorm"
)

// SkillRepository is the skill data access interface.
type SkillRepository interface {
	List() ([]models.Skill, error)
	GetByID(id string) (*models.Skill, error)
	Create(skill *models.Skill) error
	Update(skill *models.Skill) error
	Delete(id string) error
}

// GormSkillRepository is the GORM implementation.
type GormSkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a skill repository.
func NewSkillRepository(db *gorm.DB) *GormSkillRepository {
	return &GormSkillRepository{db: db}
}

// List returns all skills in display order.
func (r *GormSkillRepository) List() ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.Order("display_order ASC, id ASC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// GetByID fetches a skill by id.
func (r *GormSkillRepository) GetByID(id string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.First(&skill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &skill, nil
}

// Create inserts a skill.
func (r *GormSkillRepository) Create(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// Update persists a modified skill.
func (r *GormSkillRepository) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// Delete removes a skill.
func (r *GormSkillRepository) Delete(id string) error {
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}
