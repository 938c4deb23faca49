package repository

import (
	"testing"
	"time"

	"github.com/ngocdev/portfolio-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newBlogTestRepos(t *testing.T) (*GormBlogRepository, *GormTagRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.BlogPost{}, &models.Tag{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewBlogRepository(db), NewTagRepository(db)
}

func makePost(slug string, publishedAt time.Time) models.BlogPost {
	return models.BlogPost{
		TitleVI:     "Tiêu đề " + slug,
		TitleEN:     "Title " + slug,
		Slug:        slug,
		ContentVI:   "nội dung",
		ContentEN:   "content",
		Author:      "tester",
		PublishedAt: &publishedAt,
		Status:      models.BlogStatusPublished,
	}
}

func TestIncrementViewCountIsCumulative(t *testing.T) {
	repo, _ := newBlogTestRepos(t)

	post := makePost("dem-luot-xem", time.Now())
	if err := repo.Create(&post); err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := repo.IncrementViewCount(post.ID); err != nil {
			t.Fatalf("increment failed: %v", err)
		}
	}

	reloaded, err := repo.GetByID(post.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.ViewCount != 3 {
		t.Fatalf("expected view_count 3, got %d", reloaded.ViewCount)
	}
}

func TestCountBySlugWithExclusion(t *testing.T) {
	repo, _ := newBlogTestRepos(t)

	post := makePost("trung-slug", time.Now())
	if err := repo.Create(&post); err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	count, err := repo.CountBySlug("trung-slug", nil)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}

	count, err = repo.CountBySlug("trung-slug", &post.ID)
	if err != nil {
		t.Fatalf("count with exclusion failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected count 0 when excluding the post itself, got %d", count)
	}
}

func TestGetBySlugRespectsPublishedFilter(t *testing.T) {
	repo, _ := newBlogTestRepos(t)

	draft := makePost("ban-nhap", time.Now())
	draft.Status = models.BlogStatusDraft
	draft.PublishedAt = nil
	if err := repo.Create(&draft); err != nil {
		t.Fatalf("create draft failed: %v", err)
	}

	found, err := repo.GetBySlug("ban-nhap", true)
	if err != nil {
		t.Fatalf("published lookup failed: %v", err)
	}
	if found != nil {
		t.Fatalf("draft must be invisible on published lookup")
	}

	found, err = repo.GetBySlug("ban-nhap", false)
	if err != nil {
		t.Fatalf("unfiltered lookup failed: %v", err)
	}
	if found == nil {
		t.Fatalf("draft must be visible without the published filter")
	}
}

func TestReplaceTagsAndDeleteClearLinks(t *testing.T) {
	repo, tagRepo := newBlogTestRepos(t)

	first := models.Tag{Name: "Một", Slug: "mot"}
	second := models.Tag{Name: "Hai", Slug: "hai"}
	if err := tagRepo.Create(&first); err != nil {
		t.Fatalf("create tag failed: %v", err)
	}
	if err := tagRepo.Create(&second); err != nil {
		t.Fatalf("create tag failed: %v", err)
	}

	post := makePost("bai-gan-the", time.Now())
	if err := repo.Create(&post); err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	if err := repo.ReplaceTags(&post, []models.Tag{first}); err != nil {
		t.Fatalf("attach tag failed: %v", err)
	}
	if err := repo.ReplaceTags(&post, []models.Tag{second}); err != nil {
		t.Fatalf("replace tag failed: %v", err)
	}

	reloaded, err := repo.GetByID(post.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(reloaded.Tags) != 1 || reloaded.Tags[0].ID != second.ID {
		t.Fatalf("expected the replacement tag only, got %+v", reloaded.Tags)
	}

	if err := repo.ReplaceTags(&post, nil); err != nil {
		t.Fatalf("clear tags failed: %v", err)
	}
	reloaded, err = repo.GetByID(post.ID)
	if err != nil {
		t.Fatalf("reload after clear failed: %v", err)
	}
	if len(reloaded.Tags) != 0 {
		t.Fatalf("expected no tags, got %d", len(reloaded.Tags))
	}

	if err := repo.Delete(reloaded); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	gone, err := repo.GetByID(post.ID)
	if err != nil {
		t.Fatalf("lookup after delete failed: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected post gone after delete")
	}
}

func TestListTagFilterDoesNotDuplicateTotal(t *testing.T) {
	repo, tagRepo := newBlogTestRepos(t)

	tag := models.Tag{Name: "Chung", Slug: "chung"}
	if err := tagRepo.Create(&tag); err != nil {
		t.Fatalf("create tag failed: %v", err)
	}

	base := time.Now().Add(-time.Hour)
	for i, slug := range []string{"bai-mot", "bai-hai"} {
		post := makePost(slug, base.Add(time.Duration(i)*time.Minute))
		if err := repo.Create(&post); err != nil {
			t.Fatalf("create %s failed: %v", slug, err)
		}
		if err := repo.ReplaceTags(&post, []models.Tag{tag}); err != nil {
			t.Fatalf("tag %s failed: %v", slug, err)
		}
	}

	posts, total, err := repo.List(BlogListFilter{
		Page:          1,
		Limit:         10,
		TagID:         tag.ID,
		OnlyPublished: true,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
}
