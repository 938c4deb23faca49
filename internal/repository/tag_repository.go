package repository

import (
	"errors"

	"github.com/ngocdev/portfolio-api/internal/models"

	"gorm.io/gorm"
)

// TagRepository is the tag data access interface.
type TagRepository interface {
	List() ([]models.Tag, error)
	GetByID(id string) (*models.Tag, error)
	GetBySlug(slug string) (*models.Tag, error)
	ListByIDs(ids []string) ([]models.Tag, error)
	Create(tag *models.Tag) error
	Delete(id string) error
	CountByNameOrSlug(name, slug string) (int64, error)
}

// GormTagRepository is the GORM implementation.
type GormTagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a tag repository.
func NewTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

// List returns all tags, newest first.
func (r *GormTagRepository) List() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Order("created_at DESC, id ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GetByID fetches a tag by id.
func (r *GormTagRepository) GetByID(id string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

// GetBySlug fetches a tag by slug.
func (r *GormTagRepository) GetBySlug(slug string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

// ListByIDs fetches the tags matching the given ids.
func (r *GormTagRepository) ListByIDs(ids []string) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	if err := r.db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Create inserts a tag.
func (r *GormTagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// Delete removes a tag. Link rows referencing the tag are cleared
// first; posts themselves are untouched.
func (r *GormTagRepository) Delete(id string) error {
	if err := r.db.Exec("DELETE FROM blog_post_tags WHERE tag_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Tag{}, "id = ?", id).Error
}

// CountByNameOrSlug counts tags colliding on name or slug.
func (r *GormTagRepository) CountByNameOrSlug(name, slug string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Tag{}).Where("name = ? OR slug = ?", name, slug)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
