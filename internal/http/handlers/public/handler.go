package public

import (
	"github.com/ngocdev/portfolio-api/internal/provider"
)

// Handler bundles the public read endpoints.
type Handler struct {
	*provider.Container
}

// New creates the public handler set.
func New(container *provider.Container) *Handler {
	return &Handler{Container: container}
}
