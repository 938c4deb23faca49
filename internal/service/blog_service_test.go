package service

import (
	"testing"
	"time"

	"github.com/ngocdev/portfolio-api/internal/models"
	"github.com/ngocdev/portfolio-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newBlogTestService(t *testing.T) *BlogService {
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
	return NewBlogService(repository.NewBlogRepository(db), repository.NewTagRepository(db), BlogServiceOptions{})
}

func publishedInput(titleVI, titleEN string, publishedAt time.Time) CreateBlogInput {
	return CreateBlogInput{
		TitleVI:     titleVI,
		TitleEN:     titleEN,
		ContentVI:   "<p>Nội dung tiếng Việt.</p>",
		ContentEN:   "<p>English content.</p>",
		Author:      "tester",
		PublishedAt: &publishedAt,
		Status:      models.BlogStatusPublished,
	}
}

func TestCreateDerivesSlugAndRejectsConflict(t *testing.T) {
	svc := newBlogTestService(t)

	post, err := svc.Create(publishedInput("Hello World", "Hello World", time.Now()))
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if post.Slug != "hello-world" {
		t.Fatalf("expected slug hello-world, got %q", post.Slug)
	}
	if post.Status != models.BlogStatusPublished {
		t.Fatalf("expected published status, got %q", post.Status)
	}

	if _, err := svc.Create(publishedInput("Hello World", "Second", time.Now())); err != ErrSlugExists {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestCreateDefaultsToDraftAndValidatesStatus(t *testing.T) {
	svc := newBlogTestService(t)

	input := publishedInput("Bản nháp", "Draft post", time.Now())
	input.Status = ""
	input.PublishedAt = nil
	post, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	if post.Status != models.BlogStatusDraft {
		t.Fatalf("expected draft status, got %q", post.Status)
	}

	bad := publishedInput("Trạng thái lạ", "Weird status", time.Now())
	bad.Status = "archived"
	if _, err := svc.Create(bad); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestListHidesDraftsAndPaginates(t *testing.T) {
	svc := newBlogTestService(t)

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"Bài một", "Bài hai", "Bài ba"} {
		if _, err := svc.Create(publishedInput(title, title, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("create post %d failed: %v", i, err)
		}
	}
	draft := publishedInput("Bản nháp ẩn", "Hidden draft", time.Now())
	draft.Status = models.BlogStatusDraft
	if _, err := svc.Create(draft); err != nil {
		t.Fatalf("create draft failed: %v", err)
	}

	items, total, err := svc.List(ListBlogInput{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items on page 1, got %d", len(items))
	}
	// Newest first.
	if items[0].Title != "Bài ba" {
		t.Fatalf("expected newest post first, got %q", items[0].Title)
	}

	items, _, err = svc.List(ListBlogInput{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("list page 2 failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item on page 2, got %d", len(items))
	}
}

func TestListSortMostViewed(t *testing.T) {
	svc := newBlogTestService(t)

	counts := map[string]int{"Bài A": 5, "Bài B": 100, "Bài C": 1}
	base := time.Now().Add(-time.Hour)
	i := 0
	for title, views := range counts {
		post, err := svc.Create(publishedInput(title, title, base.Add(time.Duration(i)*time.Minute)))
		if err != nil {
			t.Fatalf("create %q failed: %v", title, err)
		}
		for v := 0; v < views; v++ {
			if err := svc.posts.IncrementViewCount(post.ID); err != nil {
				t.Fatalf("increment view count failed: %v", err)
			}
		}
		i++
	}

	items, _, err := svc.List(ListBlogInput{Page: 1, Limit: 10, Sort: SortMostViewed})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].ViewCount != 100 || items[1].ViewCount != 5 || items[2].ViewCount != 1 {
		t.Fatalf("unexpected view count order: %d, %d, %d",
			items[0].ViewCount, items[1].ViewCount, items[2].ViewCount)
	}
}

func TestListUnknownTagSlugYieldsEmptyPage(t *testing.T) {
	svc := newBlogTestService(t)

	if _, err := svc.Create(publishedInput("Có bài viết", "Has a post", time.Now())); err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	items, total, err := svc.List(ListBlogInput{Page: 1, Limit: 10, Tag: "khong-ton-tai"})
	if err != nil {
		t.Fatalf("expected no error for unknown tag, got %v", err)
	}
	if total != 0 || len(items) != 0 {
		t.Fatalf("expected empty page, got %d items, total %d", len(items), total)
	}
}

func TestListFiltersByTagSlug(t *testing.T) {
	svc := newBlogTestService(t)

	tag, err := svc.CreateTag(CreateTagInput{Name: "Go"})
	if err != nil {
		t.Fatalf("create tag failed: %v", err)
	}
	tagged := publishedInput("Bài về Go", "About Go", time.Now())
	tagged.TagIDs = []string{tag.ID}
	if _, err := svc.Create(tagged); err != nil {
		t.Fatalf("create tagged post failed: %v", err)
	}
	if _, err := svc.Create(publishedInput("Bài khác", "Other post", time.Now())); err != nil {
		t.Fatalf("create untagged post failed: %v", err)
	}

	items, total, err := svc.List(ListBlogInput{Page: 1, Limit: 10, Tag: "go"})
	if err != nil {
		t.Fatalf("list by tag failed: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected one tagged post, got %d items, total %d", len(items), total)
	}
	if items[0].Title != "Bài về Go" {
		t.Fatalf("unexpected post: %q", items[0].Title)
	}
}

func TestListSearchesBothLanguages(t *testing.T) {
	svc := newBlogTestService(t)

	input := publishedInput("Hướng dẫn triển khai", "Deployment guide", time.Now())
	if _, err := svc.Create(input); err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	for _, term := range []string{"Deployment", "English content"} {
		items, total, err := svc.List(ListBlogInput{Page: 1, Limit: 10, Search: term})
		if err != nil {
			t.Fatalf("search %q failed: %v", term, err)
		}
		if total != 1 || len(items) != 1 {
			t.Fatalf("search %q: expected one hit, got %d items, total %d", term, len(items), total)
		}
	}

	_, total, err := svc.List(ListBlogInput{Page: 1, Limit: 10, Search: "no-such-phrase"})
	if err != nil {
		t.Fatalf("search miss failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected no hits, got total %d", total)
	}
}

func TestGetBySlugIncrementsViewCountAndDerivesReadingTime(t *testing.T) {
	svc := newBlogTestService(t)

	if _, err := svc.Create(publishedInput("Bài đọc", "A read", time.Now())); err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	detail, err := svc.GetBySlug("bai-doc", "vi")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if detail.ViewCount != 1 {
		t.Fatalf("expected view count 1 after first fetch, got %d", detail.ViewCount)
	}
	if detail.ReadingTime < 1 {
		t.Fatalf("expected reading time >= 1, got %d", detail.ReadingTime)
	}
	if detail.Title != "Bài đọc" {
		t.Fatalf("expected Vietnamese title, got %q", detail.Title)
	}

	detail, err = svc.GetBySlug("bai-doc", "en")
	if err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}
	if detail.ViewCount != 2 {
		t.Fatalf("expected view count 2 after second fetch, got %d", detail.ViewCount)
	}
	if detail.Title != "A read" {
		t.Fatalf("expected English title, got %q", detail.Title)
	}
}

func TestGetBySlugHidesDraftsAndMisses(t *testing.T) {
	svc := newBlogTestService(t)

	draft := publishedInput("Bản nháp bí mật", "Secret draft", time.Now())
	draft.Status = models.BlogStatusDraft
	if _, err := svc.Create(draft); err != nil {
		t.Fatalf("create draft failed: %v", err)
	}

	if _, err := svc.GetBySlug("ban-nhap-bi-mat", "vi"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for draft, got %v", err)
	}
	if _, err := svc.GetBySlug("khong-co", "vi"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing slug, got %v", err)
	}
}

func TestRelatedPostsShareTagAndExcludeSelf(t *testing.T) {
	svc := newBlogTestService(t)

	tag, err := svc.CreateTag(CreateTagInput{Name: "Chung"})
	if err != nil {
		t.Fatalf("create tag failed: %v", err)
	}

	base := time.Now().Add(-time.Hour)
	titles := []string{"Bài một", "Bài hai", "Bài ba", "Bài bốn", "Bài năm"}
	for i, title := range titles {
		input := publishedInput(title, title, base.Add(time.Duration(i)*time.Minute))
		input.TagIDs = []string{tag.ID}
		if _, err := svc.Create(input); err != nil {
			t.Fatalf("create %q failed: %v", title, err)
		}
	}
	lonely := publishedInput("Bài lẻ", "Lonely post", time.Now())
	if _, err := svc.Create(lonely); err != nil {
		t.Fatalf("create untagged post failed: %v", err)
	}

	detail, err := svc.GetBySlug("bai-mot", "vi")
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if len(detail.RelatedPosts) != 3 {
		t.Fatalf("expected 3 related posts, got %d", len(detail.RelatedPosts))
	}
	for _, rel := range detail.RelatedPosts {
		if rel.ID == detail.ID {
			t.Fatalf("related posts must exclude the post itself")
		}
		if rel.Slug == "bai-le" {
			t.Fatalf("untagged post must not appear as related")
		}
	}
	// Newest shared-tag posts first.
	if detail.RelatedPosts[0].Title != "Bài năm" {
		t.Fatalf("expected newest related post first, got %q", detail.RelatedPosts[0].Title)
	}
}

func TestUpdateAppliesPartialFieldsAndRederivesSlug(t *testing.T) {
	svc := newBlogTestService(t)

	post, err := svc.Create(publishedInput("Tiêu đề cũ", "Old title", time.Now()))
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	newTitle := "Tiêu đề mới"
	updated, err := svc.Update(post.ID, UpdateBlogInput{TitleVI: &newTitle})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.TitleVI != newTitle {
		t.Fatalf("expected updated title, got %q", updated.TitleVI)
	}
	if updated.Slug != "tieu-de-moi" {
		t.Fatalf("expected re-derived slug tieu-de-moi, got %q", updated.Slug)
	}
	if updated.TitleEN != "Old title" {
		t.Fatalf("untouched field changed: %q", updated.TitleEN)
	}

	// Re-submitting the same title keeps the slug without a conflict.
	if _, err := svc.Update(post.ID, UpdateBlogInput{TitleVI: &newTitle}); err != nil {
		t.Fatalf("self-collision update failed: %v", err)
	}

	other, err := svc.Create(publishedInput("Bài khác", "Another", time.Now()))
	if err != nil {
		t.Fatalf("create second post failed: %v", err)
	}
	conflict := "tieu-de-moi"
	if _, err := svc.Update(other.ID, UpdateBlogInput{Slug: &conflict}); err != ErrSlugExists {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestUpdateTagSemantics(t *testing.T) {
	svc := newBlogTestService(t)

	first, err := svc.CreateTag(CreateTagInput{Name: "Một"})
	if err != nil {
		t.Fatalf("create first tag failed: %v", err)
	}
	second, err := svc.CreateTag(CreateTagInput{Name: "Hai"})
	if err != nil {
		t.Fatalf("create second tag failed: %v", err)
	}

	input := publishedInput("Bài gắn thẻ", "Tagged post", time.Now())
	input.TagIDs = []string{first.ID}
	post, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if len(post.Tags) != 1 || post.Tags[0].ID != first.ID {
		t.Fatalf("expected one tag after create, got %d", len(post.Tags))
	}

	// Omitted tag_ids leave the set untouched.
	author := "someone else"
	post, err = svc.Update(post.ID, UpdateBlogInput{Author: &author})
	if err != nil {
		t.Fatalf("update without tags failed: %v", err)
	}
	if len(post.Tags) != 1 {
		t.Fatalf("expected tags untouched, got %d", len(post.Tags))
	}

	// Non-empty set replaces.
	replace := []string{second.ID}
	post, err = svc.Update(post.ID, UpdateBlogInput{TagIDs: &replace})
	if err != nil {
		t.Fatalf("tag replace failed: %v", err)
	}
	if len(post.Tags) != 1 || post.Tags[0].ID != second.ID {
		t.Fatalf("expected tag set replaced, got %+v", post.Tags)
	}

	// Empty set clears.
	none := []string{}
	post, err = svc.Update(post.ID, UpdateBlogInput{TagIDs: &none})
	if err != nil {
		t.Fatalf("tag clear failed: %v", err)
	}
	if len(post.Tags) != 0 {
		t.Fatalf("expected tags cleared, got %d", len(post.Tags))
	}

	// Unknown tag ids are rejected.
	unknown := []string{"missing-id"}
	if _, err := svc.Update(post.ID, UpdateBlogInput{TagIDs: &unknown}); err != ErrTagNotFound {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
}

func TestDeletePostAndTagLifecycle(t *testing.T) {
	svc := newBlogTestService(t)

	tag, err := svc.CreateTag(CreateTagInput{Name: "Sắp xoá"})
	if err != nil {
		t.Fatalf("create tag failed: %v", err)
	}
	if tag.Slug != "sap-xoa" {
		t.Fatalf("expected derived tag slug sap-xoa, got %q", tag.Slug)
	}
	if _, err := svc.CreateTag(CreateTagInput{Name: "Sắp xoá"}); err != ErrTagExists {
		t.Fatalf("expected ErrTagExists, got %v", err)
	}

	input := publishedInput("Bài sẽ xoá", "Doomed post", time.Now())
	input.TagIDs = []string{tag.ID}
	post, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	if err := svc.DeleteTag(tag.ID); err != nil {
		t.Fatalf("delete tag failed: %v", err)
	}
	reloaded, err := svc.posts.GetByID(post.ID)
	if err != nil {
		t.Fatalf("reload post failed: %v", err)
	}
	if len(reloaded.Tags) != 0 {
		t.Fatalf("expected tag links removed with the tag, got %d", len(reloaded.Tags))
	}

	if err := svc.Delete(post.ID); err != nil {
		t.Fatalf("delete post failed: %v", err)
	}
	if err := svc.Delete(post.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
