package main

import (
	"time"

	"github.com/ngocdev/portfolio-api/internal/config"
	"github.com/ngocdev/portfolio-api/internal/logger"
	"github.com/ngocdev/portfolio-api/internal/models"
	"github.com/ngocdev/portfolio-api/internal/service"
)

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	tags := []models.Tag{
		{Name: "React", Slug: "react"},
		{Name: "Go", Slug: "go"},
		{Name: "TypeScript", Slug: "typescript"},
		{Name: "PostgreSQL", Slug: "postgresql"},
	}
	for _, tag := range tags {
		var existing models.Tag
		if err := models.DB.Where("slug = ?", tag.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&tag).Error; err != nil {
				stdLog.Printf("Failed to create tag %s: %v", tag.Slug, err)
			} else {
				stdLog.Printf("Created tag: %s", tag.Slug)
			}
		} else {
			stdLog.Printf("Tag already exists: %s", tag.Slug)
		}
	}

	tagBySlug := map[string]models.Tag{}
	var tagList []models.Tag
	if err := models.DB.Find(&tagList).Error; err != nil {
		stdLog.Printf("Failed to load tags: %v", err)
	}
	for _, tag := range tagList {
		tagBySlug[tag.Slug] = tag
	}

	posts := []struct {
		post models.BlogPost
		tags []string
	}{
		{
			post: models.BlogPost{
				TitleVI:     "Giới thiệu về React Hooks",
				TitleEN:     "Introduction to React Hooks",
				Slug:        service.Slugify("Giới thiệu về React Hooks"),
				ContentVI:   "<p>React Hooks cho phép bạn sử dụng state và các tính năng khác của React mà không cần viết class. useState và useEffect là hai hook cơ bản nhất mà mọi lập trình viên React cần nắm vững.</p>",
				ContentEN:   "<p>React Hooks let you use state and other React features without writing a class. useState and useEffect are the two fundamental hooks every React developer needs to master.</p>",
				ExcerptVI:   strPtr("Tìm hiểu cách React Hooks thay đổi cách viết component."),
				ExcerptEN:   strPtr("Learn how React Hooks change the way components are written."),
				Author:      "Ngoc Nguyen",
				PublishedAt: timePtr(time.Now().AddDate(0, 0, -14)),
				Status:      models.BlogStatusPublished,
			},
			tags: []string{"react", "typescript"},
		},
		{
			post: models.BlogPost{
				TitleVI:     "Xây dựng REST API với Go",
				TitleEN:     "Building a REST API with Go",
				Slug:        service.Slugify("Xây dựng REST API với Go"),
				ContentVI:   "<p>Go là lựa chọn tuyệt vời cho backend nhờ hiệu năng cao và công cụ chuẩn mạnh mẽ. Bài viết này hướng dẫn xây dựng một REST API hoàn chỉnh với Gin và GORM.</p>",
				ContentEN:   "<p>Go is a great backend choice thanks to its performance and strong standard tooling. This post walks through building a complete REST API with Gin and GORM.</p>",
				ExcerptVI:   strPtr("Hướng dẫn từng bước xây dựng REST API bằng Go."),
				ExcerptEN:   strPtr("A step-by-step guide to building a REST API in Go."),
				Author:      "Ngoc Nguyen",
				PublishedAt: timePtr(time.Now().AddDate(0, 0, -7)),
				Status:      models.BlogStatusPublished,
			},
			tags: []string{"go", "postgresql"},
		},
		{
			post: models.BlogPost{
				TitleVI:   "Tối ưu truy vấn PostgreSQL",
				TitleEN:   "Optimizing PostgreSQL Queries",
				Slug:      service.Slugify("Tối ưu truy vấn PostgreSQL"),
				ContentVI: "<p>Bản nháp về tối ưu chỉ mục và kế hoạch truy vấn.</p>",
				ContentEN: "<p>Draft notes on index tuning and query plans.</p>",
				Author:    "Ngoc Nguyen",
				Status:    models.BlogStatusDraft,
			},
			tags: []string{"postgresql"},
		},
	}

	for _, entry := range posts {
		var existing models.BlogPost
		if err := models.DB.Where("slug = ?", entry.post.Slug).First(&existing).Error; err == nil {
			stdLog.Printf("Post already exists: %s", entry.post.Slug)
			continue
		}
		post := entry.post
		if err := models.DB.Create(&post).Error; err != nil {
			stdLog.Printf("Failed to create post %s: %v", post.Slug, err)
			continue
		}
		var postTags []models.Tag
		for _, slug := range entry.tags {
			if tag, ok := tagBySlug[slug]; ok {
				postTags = append(postTags, tag)
			}
		}
		if len(postTags) > 0 {
			if err := models.DB.Model(&post).Association("Tags").Replace(postTags); err != nil {
				stdLog.Printf("Failed to attach tags to %s: %v", post.Slug, err)
			}
		}
		stdLog.Printf("Created post: %s", post.Slug)
	}

	skills := []models.Skill{
		{
			TitleVI:       "Phát triển Frontend",
			TitleEN:       "Frontend Development",
			DescriptionVI: "React, Next.js và TypeScript cho giao diện hiện đại.",
			DescriptionEN: "React, Next.js and TypeScript for modern interfaces.",
			Highlighted:   true,
			DisplayOrder:  1,
		},
		{
			TitleVI:       "Phát triển Backend",
			TitleEN:       "Backend Development",
			DescriptionVI: "Go và Node.js với PostgreSQL.",
			DescriptionEN: "Go and Node.js with PostgreSQL.",
			Highlighted:   true,
			DisplayOrder:  2,
		},
		{
			TitleVI:       "DevOps",
			TitleEN:       "DevOps",
			DescriptionVI: "Docker, CI/CD và vận hành hạ tầng.",
			DescriptionEN: "Docker, CI/CD and infrastructure operations.",
			DisplayOrder:  3,
		},
	}
	for _, skill := range skills {
		var existing models.Skill
		if err := models.DB.Where("title_en = ?", skill.TitleEN).First(&existing).Error; err == nil {
			stdLog.Printf("Skill already exists: %s", skill.TitleEN)
			continue
		}
		if err := models.DB.Create(&skill).Error; err != nil {
			stdLog.Printf("Failed to create skill %s: %v", skill.TitleEN, err)
			continue
		}
		stdLog.Printf("Created skill: %s", skill.TitleEN)
	}

	stdLog.Println("Seed completed")
}
