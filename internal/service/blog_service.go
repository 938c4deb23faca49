package service

import (
	"time"

	"github.com/ngocdev/portfolio-api/internal/models"
	"github.com/ngocdev/portfolio-api/internal/repository"
)

// Sort orders accepted by the blog listing.
const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortMostViewed = "most_viewed"
)

const defaultRelatedPostsLimit = 3

// BlogService implements the blog content query engine: listing,
// detail assembly with derived fields, and the write operations.
type BlogService struct {
	posts        repository.BlogRepository
	tags         repository.TagRepository
	relatedLimit int
	readingWPM   int
}

// BlogServiceOptions tunes derived-field computation.
type BlogServiceOptions struct {
	RelatedPostsLimit int
	ReadingSpeedWPM   int
}

// NewBlogService creates the blog service.
func NewBlogService(posts repository.BlogRepository, tags repository.TagRepository, opts BlogServiceOptions) *BlogService {
	relatedLimit := opts.RelatedPostsLimit
	if relatedLimit <= 0 {
		relatedLimit = defaultRelatedPostsLimit
	}
	readingWPM := opts.ReadingSpeedWPM
	if readingWPM <= 0 {
		readingWPM = defaultReadingSpeedWPM
	}
	return &BlogService{
		posts:        posts,
		tags:         tags,
		relatedLimit: relatedLimit,
		readingWPM:   readingWPM,
	}
}

// TagItem is the tag projection used in read responses.
type TagItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// BlogListItem is the list projection: language-selected title and
// excerpt, no content.
type BlogListItem struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       *string    `json:"excerpt"`
	FeaturedImage *string    `json:"featured_image"`
	Tags          []TagItem  `json:"tags"`
	PublishedAt   *time.Time `json:"published_at"`
	ViewCount     int64      `json:"view_count"`
	Author        string     `json:"author"`
}

// RelatedPost is the trimmed projection of a related post.
type RelatedPost struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Slug          string  `json:"slug"`
	FeaturedImage *string `json:"featured_image"`
}

// BlogDetail is the full detail projection including derived fields.
type BlogDetail struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Content       string        `json:"content"`
	Excerpt       *string       `json:"excerpt"`
	FeaturedImage *string       `json:"featured_image"`
	Tags          []TagItem     `json:"tags"`
	PublishedAt   *time.Time    `json:"published_at"`
	ViewCount     int64         `json:"view_count"`
	Author        string        `json:"author"`
	ReadingTime   int           `json:"reading_time"`
	RelatedPosts  []RelatedPost `json:"related_posts"`
}

// ListBlogInput carries the listing parameters, already normalized
// by the handler layer.
type ListBlogInput struct {
	Page   int
	Limit  int
	Tag    string
	Lang   string
	Search string
	Sort   string
}

// List returns published posts matching the input, with the unpaged
// total for pagination. An unknown tag slug yields an empty page,
// not an error.
func (s *BlogService) List(input ListBlogInput) ([]BlogListItem, int64, error) {
	filter := repository.BlogListFilter{
		Page:          input.Page,
		Limit:         input.Limit,
		Search:        input.Search,
		OnlyPublished: true,
		OrderBy:       blogOrderBy(input.Sort),
	}

	if input.Tag != "" {
		tag, err := s.tags.GetBySlug(input.Tag)
		if err != nil {
			return nil, 0, err
		}
		if tag == nil {
			return []BlogListItem{}, 0, nil
		}
		filter.TagID = tag.ID
	}

	posts, total, err := s.posts.List(filter)
	if err != nil {
		return nil, 0, err
	}

	items := make([]BlogListItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, BlogListItem{
			ID:            post.ID,
			Title:         localized(input.Lang, post.TitleVI, post.TitleEN),
			Slug:          post.Slug,
			Excerpt:       localizedPtr(input.Lang, post.ExcerptVI, post.ExcerptEN),
			FeaturedImage: post.FeaturedImage,
			Tags:          tagItems(post.Tags),
			PublishedAt:   post.PublishedAt,
			ViewCount:     post.ViewCount,
			Author:        post.Author,
		})
	}
	return items, total, nil
}

// GetBySlug assembles the detail view for a published post. The view
// counter is incremented and persisted before the response is built,
// so the returned count reflects this fetch.
func (s *BlogService) GetBySlug(slug, lang string) (*BlogDetail, error) {
	post, err := s.posts.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	if err := s.posts.IncrementViewCount(post.ID); err != nil {
		return nil, err
	}
	post.ViewCount++

	content := localized(lang, post.ContentVI, post.ContentEN)

	tagIDs := make([]string, 0, len(post.Tags))
	for _, tag := range post.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}
	related, err := s.posts.ListRelated(post.ID, tagIDs, s.relatedLimit)
	if err != nil {
		return nil, err
	}

	relatedItems := make([]RelatedPost, 0, len(related))
	for _, rel := range related {
		relatedItems = append(relatedItems, RelatedPost{
			ID:            rel.ID,
			Title:         localized(lang, rel.TitleVI, rel.TitleEN),
			Slug:          rel.Slug,
			FeaturedImage: rel.FeaturedImage,
		})
	}

	return &BlogDetail{
		ID:            post.ID,
		Title:         localized(lang, post.TitleVI, post.TitleEN),
		Slug:          post.Slug,
		Content:       content,
		Excerpt:       localizedPtr(lang, post.ExcerptVI, post.ExcerptEN),
		FeaturedImage: post.FeaturedImage,
		Tags:          tagItems(post.Tags),
		PublishedAt:   post.PublishedAt,
		ViewCount:     post.ViewCount,
		Author:        post.Author,
		ReadingTime:   readingTime(content, s.readingWPM),
		RelatedPosts:  relatedItems,
	}, nil
}

// ListTags returns all tags.
func (s *BlogService) ListTags() ([]TagItem, error) {
	tags, err := s.tags.List()
	if err != nil {
		return nil, err
	}
	return tagItems(tags), nil
}

// CreateTagInput carries a new tag. Slug defaults to the slugified
// name.
type CreateTagInput struct {
	Name string
	Slug string
}

// CreateTag inserts a tag, rejecting name or slug collisions.
func (s *BlogService) CreateTag(input CreateTagInput) (*models.Tag, error) {
	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Name)
	}

	count, err := s.tags.CountByNameOrSlug(input.Name, slug)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrTagExists
	}

	tag := models.Tag{Name: input.Name, Slug: slug}
	if err := s.tags.Create(&tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes a tag together with its post links.
func (s *BlogService) DeleteTag(id string) error {
	tag, err := s.tags.GetByID(id)
	if err != nil {
		return err
	}
	if tag == nil {
		return ErrNotFound
	}
	return s.tags.Delete(id)
}

// CreateBlogInput carries a new post. Slug defaults to the slugified
// Vietnamese title; status defaults to draft.
type CreateBlogInput struct {
	TitleVI       string
	TitleEN       string
	Slug          string
	ContentVI     string
	ContentEN     string
	ExcerptVI     *string
	ExcerptEN     *string
	FeaturedImage *string
	Author        string
	PublishedAt   *time.Time
	Status        string
	TagIDs        []string
}

// Create inserts a post and, if tag ids were supplied, attaches the
// tags. Post insert and tag attachment are sequential calls, not one
// transaction; a failure in between leaves the post without links.
func (s *BlogService) Create(input CreateBlogInput) (*models.BlogPost, error) {
	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.TitleVI)
	}

	count, err := s.posts.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	status := input.Status
	if status == "" {
		status = models.BlogStatusDraft
	}
	if !isValidBlogStatus(status) {
		return nil, ErrInvalidStatus
	}

	post := models.BlogPost{
		TitleVI:       input.TitleVI,
		TitleEN:       input.TitleEN,
		Slug:          slug,
		ContentVI:     input.ContentVI,
		ContentEN:     input.ContentEN,
		ExcerptVI:     input.ExcerptVI,
		ExcerptEN:     input.ExcerptEN,
		FeaturedImage: input.FeaturedImage,
		Author:        input.Author,
		PublishedAt:   input.PublishedAt,
		Status:        status,
	}
	if err := s.posts.Create(&post); err != nil {
		return nil, err
	}

	if len(input.TagIDs) > 0 {
		tags, err := s.resolveTags(input.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.posts.ReplaceTags(&post, tags); err != nil {
			return nil, err
		}
	}

	return s.posts.GetByID(post.ID)
}

// UpdateBlogInput carries a partial update; nil fields stay
// untouched. TagIDs nil leaves links alone, an empty slice clears
// them, anything else replaces the set.
type UpdateBlogInput struct {
	TitleVI       *string
	TitleEN       *string
	Slug          *string
	ContentVI     *string
	ContentEN     *string
	ExcerptVI     *string
	ExcerptEN     *string
	FeaturedImage *string
	Author        *string
	PublishedAt   *time.Time
	Status        *string
	TagIDs        *[]string
}

// Update applies a partial update. Changing the Vietnamese title
// without an explicit slug regenerates the slug; colliding with a
// different post's slug is rejected, colliding with the post's own
// slug is a no-op.
func (s *BlogService) Update(id string, input UpdateBlogInput) (*models.BlogPost, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	newSlug := ""
	switch {
	case input.Slug != nil:
		newSlug = *input.Slug
	case input.TitleVI != nil && *input.TitleVI != post.TitleVI:
		newSlug = Slugify(*input.TitleVI)
	}
	if newSlug != "" && newSlug != post.Slug {
		count, err := s.posts.CountBySlug(newSlug, &post.ID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrSlugExists
		}
		post.Slug = newSlug
	}

	if input.TitleVI != nil {
		post.TitleVI = *input.TitleVI
	}
	if input.TitleEN != nil {
		post.TitleEN = *input.TitleEN
	}
	if input.ContentVI != nil {
		post.ContentVI = *input.ContentVI
	}
	if input.ContentEN != nil {
		post.ContentEN = *input.ContentEN
	}
	if input.ExcerptVI != nil {
		post.ExcerptVI = input.ExcerptVI
	}
	if input.ExcerptEN != nil {
		post.ExcerptEN = input.ExcerptEN
	}
	if input.FeaturedImage != nil {
		post.FeaturedImage = input.FeaturedImage
	}
	if input.Author != nil {
		post.Author = *input.Author
	}
	if input.PublishedAt != nil {
		post.PublishedAt = input.PublishedAt
	}
	if input.Status != nil {
		if !isValidBlogStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		post.Status = *input.Status
	}

	if err := s.posts.Update(post); err != nil {
		return nil, err
	}

	if input.TagIDs != nil {
		tags, err := s.resolveTags(*input.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.posts.ReplaceTags(post, tags); err != nil {
			return nil, err
		}
	}

	return s.posts.GetByID(post.ID)
}

// Delete hard-deletes a post.
func (s *BlogService) Delete(id string) error {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	return s.posts.Delete(post)
}

// resolveTags loads the tags for the given ids, rejecting unknown
// ids.
func (s *BlogService) resolveTags(ids []string) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	tags, err := s.tags.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(uniqueStrings(ids)) {
		return nil, ErrTagNotFound
	}
	return tags, nil
}

func tagItems(tags []models.Tag) []TagItem {
	items := make([]TagItem, 0, len(tags))
	for _, tag := range tags {
		items = append(items, TagItem{ID: tag.ID, Name: tag.Name, Slug: tag.Slug})
	}
	return items
}

func blogOrderBy(sort string) string {
	switch sort {
	case SortOldest:
		return "blog_posts.published_at ASC, blog_posts.id ASC"
	case SortMostViewed:
		return "blog_posts.view_count DESC, blog_posts.id ASC"
	default: // SortNewest
		return "blog_posts.published_at DESC, blog_posts.id ASC"
	}
}

func isValidBlogStatus(status string) bool {
	return status == models.BlogStatusDraft || status == models.BlogStatusPublished
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		unique = append(unique, value)
	}
	return unique
}
