package provider

import (
	"github.com/ngocdev/portfolio-api/internal/cache"
	"github.com/ngocdev/portfolio-api/internal/config"
	"github.com/ngocdev/portfolio-api/internal/logger"
	"github.com/ngocdev/portfolio-api/internal/models"
	"github.com/ngocdev/portfolio-api/internal/repository"
	"github.com/ngocdev/portfolio-api/internal/service"
)

// Container wires repositories and services for the handler layer.
type Container struct {
	Config *config.Config

	BlogRepo  repository.BlogRepository
	TagRepo   repository.TagRepository
	SkillRepo repository.SkillRepository

	BlogService  *service.BlogService
	SkillService *service.SkillService
}

// NewContainer builds the dependency graph on the shared DB handle.
func NewContainer(cfg *config.Config) *Container {
	container := &Container{Config: cfg}

	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("redis_init_failed", "error", err)
	}

	container.initRepositories()
	container.initServices()
	return container
}

func (c *Container) initRepositories() {
	c.BlogRepo = repository.NewBlogRepository(models.DB)
	c.TagRepo = repository.NewTagRepository(models.DB)
	c.SkillRepo = repository.NewSkillRepository(models.DB)
}

func (c *Container) initServices() {
	c.BlogService = service.NewBlogService(c.BlogRepo, c.TagRepo, service.BlogServiceOptions{
		RelatedPostsLimit: c.Config.Content.RelatedPostsLimit,
		ReadingSpeedWPM:   c.Config.Content.ReadingSpeedWPM,
	})
	c.SkillService = service.NewSkillService(c.SkillRepo)
}
