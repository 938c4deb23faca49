package service

import "errors"

// Sentinel errors mapped to client-visible responses by the handler
// layer. Anything else bubbles up as an internal error.
var (
	ErrNotFound      = errors.New("record not found")
	ErrSlugExists    = errors.New("slug already exists")
	ErrInvalidStatus = errors.New("invalid post status")
	ErrTagExists     = errors.New("tag already exists")
	ErrTagNotFound   = errors.New("tag not found")
)
