package repository

import (
	"errors"
	"strings"

	"github.com/ngocdev/portfolio-api/internal/models"

	"gorm.io/gorm"
)

// blogSearchColumns are the columns matched by free-text search. The
// filter is language-independent: both languages are always searched.
var blogSearchColumns = []string{
	"blog_posts.title_vi",
	"blog_posts.title_en",
	"blog_posts.content_vi",
	"blog_posts.content_en",
}

// BlogRepository is the blog post data access interface.
type BlogRepository interface {
	List(filter BlogListFilter) ([]models.BlogPost, int64, error)
	GetBySlug(slug string, onlyPublished bool) (*models.BlogPost, error)
	GetByID(id string) (*models.BlogPost, error)
	Create(post *models.BlogPost) error
	Update(post *models.BlogPost) error
	Delete(post *models.BlogPost) error
	CountBySlug(slug string, excludeID *string) (int64, error)
	ReplaceTags(post *models.BlogPost, tags []models.Tag) error
	ListRelated(excludeID string, tagIDs []string, limit int) ([]models.BlogPost, error)
	IncrementViewCount(id string) error
}

// GormBlogRepository is the GORM implementation.
type GormBlogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a blog post repository.
func NewBlogRepository(db *gorm.DB) *GormBlogRepository {
	return &GormBlogRepository{db: db}
}

// List returns a page of posts plus the unpaged total.
func (r *GormBlogRepository) List(filter BlogListFilter) ([]models.BlogPost, int64, error) {
	var posts []models.BlogPost
	query := r.db.Model(&models.BlogPost{})

	if filter.OnlyPublished {
		query = query.Where("blog_posts.status = ?", models.BlogStatusPublished)
	}
	if filter.TagID != "" {
		query = query.
			Joins("JOIN blog_post_tags ON blog_post_tags.blog_post_id = blog_posts.id").
			Where("blog_post_tags.tag_id = ?", filter.TagID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		condition, argCount := buildSearchCondition(r.db, blogSearchColumns)
		query = query.Where(condition, repeatLikeArgs(like, argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.Limit)

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "blog_posts.published_at DESC, blog_posts.id ASC"
	}

	if err := query.Preload("Tags").Order(orderBy).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetBySlug fetches a post by slug with tags preloaded.
func (r *GormBlogRepository) GetBySlug(slug string, onlyPublished bool) (*models.BlogPost, error) {
	query := r.db.Preload("Tags").Where("slug = ?", slug)
	if onlyPublished {
		query = query.Where("status = ?", models.BlogStatusPublished)
	}

	var post models.BlogPost
	if err := query.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetByID fetches a post by id with tags preloaded.
func (r *GormBlogRepository) GetByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.Preload("Tags").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a post.
func (r *GormBlogRepository) Create(post *models.BlogPost) error {
	return r.db.Omit("Tags").Create(post).Error
}

// Update persists a modified post. Tag links are managed separately
// through ReplaceTags.
func (r *GormBlogRepository) Update(post *models.BlogPost) error {
	return r.db.Omit("Tags").Save(post).Error
}

// Delete removes a post and its tag links.
func (r *GormBlogRepository) Delete(post *models.BlogPost) error {
	if err := r.db.Model(post).Association("Tags").Clear(); err != nil {
		return err
	}
	return r.db.Delete(&models.BlogPost{}, "id = ?", post.ID).Error
}

// CountBySlug counts posts with the given slug, any status.
func (r *GormBlogRepository) CountBySlug(slug string, excludeID *string) (int64, error) {
	var count int64
	query := r.db.Model(&models.BlogPost{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ReplaceTags swaps the post's tag set for the given tags. This is
// the single unit-of-work boundary for link maintenance, so a
// transactional implementation can be substituted without touching
// callers.
func (r *GormBlogRepository) ReplaceTags(post *models.BlogPost, tags []models.Tag) error {
	assoc := r.db.Model(post).Association("Tags")
	if len(tags) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(tags)
}

// ListRelated returns up to limit other published posts sharing at
// least one of the given tags, newest first.
func (r *GormBlogRepository) ListRelated(excludeID string, tagIDs []string, limit int) ([]models.BlogPost, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	var posts []models.BlogPost
	err := r.db.Preload("Tags").
		Joins("JOIN blog_post_tags ON blog_post_tags.blog_post_id = blog_posts.id").
		Where("blog_post_tags.tag_id IN ?", tagIDs).
		Where("blog_posts.id <> ?", excludeID).
		Where("blog_posts.status = ?", models.BlogStatusPublished).
		Group("blog_posts.id").
		Order("blog_posts.published_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// IncrementViewCount bumps the view counter by one in a single
// UPDATE so concurrent detail fetches cannot lose increments.
func (r *GormBlogRepository) IncrementViewCount(id string) error {
	return r.db.Model(&models.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}
