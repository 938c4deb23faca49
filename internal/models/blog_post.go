package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog post statuses. Only published posts are visible on the public
// read paths.
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// BlogPost is a bilingual blog article. Title and content always
// exist in both languages; excerpts are optional.
type BlogPost struct {
	ID            string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	TitleVI       string     `gorm:"not null" json:"title_vi"`
	TitleEN       string     `gorm:"not null" json:"title_en"`
	Slug          string     `gorm:"uniqueIndex;not null" json:"slug"`
	ContentVI     string     `gorm:"type:text;not null" json:"content_vi"`
	ContentEN     string     `gorm:"type:text;not null" json:"content_en"`
	ExcerptVI     *string    `gorm:"type:text" json:"excerpt_vi"`
	ExcerptEN     *string    `gorm:"type:text" json:"excerpt_en"`
	FeaturedImage *string    `json:"featured_image"`
	Author        string     `gorm:"not null" json:"author"`
	PublishedAt   *time.Time `gorm:"index" json:"published_at"`
	Status        string     `gorm:"not null;default:draft;index" json:"status"`
	ViewCount     int64      `gorm:"not null;default:0" json:"view_count"`
	Tags          []Tag      `gorm:"many2many:blog_post_tags;" json:"tags"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName sets the table name.
func (BlogPost) TableName() string {
	return "blog_posts"
}

// BeforeCreate assigns a UUID primary key.
func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
