package repository

import "gorm.io/gorm"

// applyPagination applies limit/offset, normalizing bad page numbers.
func applyPagination(query *gorm.DB, page, limit int) *gorm.DB {
	if query == nil || limit <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return query.Limit(limit).Offset(offset)
}
