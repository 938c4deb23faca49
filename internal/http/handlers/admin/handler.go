package admin

import (
	"github.com/ngocdev/portfolio-api/internal/provider"
)

// Handler bundles the content management endpoints.
type Handler struct {
	*provider.Container
}

// New creates the admin handler set.
func New(container *provider.Container) *Handler {
	return &Handler{Container: container}
}
