package repository

// BlogListFilter narrows a blog post listing.
type BlogListFilter struct {
	Page          int
	Limit         int
	TagID         string
	Search        string
	OnlyPublished bool
	OrderBy       string
}
