// Package container wires the application dependency graph: config, then
// infrastructure, then repositories, services and handlers. There are no
// package-level singletons; everything is constructed here once and injected.
package container

import (
	"context"
	"fmt"

	"travelblog-backend/internal/config"
	"travelblog-backend/internal/infrastructure/database"
	"travelblog-backend/internal/infrastructure/memstore"
	"travelblog-backend/internal/seed"

	"travelblog-backend/internal/domains/post"
	postHandler "travelblog-backend/internal/domains/post/handler"
	postRepo "travelblog-backend/internal/domains/post/repository"
	postService "travelblog-backend/internal/domains/post/service"
	"travelblog-backend/internal/domains/tag"
	tagHandler "travelblog-backend/internal/domains/tag/handler"
	tagRepo "travelblog-backend/internal/domains/tag/repository"
	tagService "travelblog-backend/internal/domains/tag/service"
	"travelblog-backend/internal/domains/user"
	userRepo "travelblog-backend/internal/domains/user/repository"
	userService "travelblog-backend/internal/domains/user/service"

	"github.com/rs/zerolog/log"
)

type Container struct {
	Config *config.Config

	// DB is nil when the memory backend is selected.
	DB *database.PostgresDB

	TagRepo  tag.Repository
	PostRepo post.Repository
	UserRepo user.Repository

	TagService  tag.Service
	PostService post.Service
	UserService user.Service

	TagHandler  *tagHandler.TagHandler
	PostHandler *postHandler.PostHandler
}

// NewContainer builds the whole graph. Initialization order matters:
// config, infrastructure, repositories, services, handlers, seed.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}

	if err := c.initStorage(ctx); err != nil {
		return nil, err
	}

	c.TagService = tagService.NewTagService(c.TagRepo)
	c.PostService = postService.NewPostService(c.PostRepo)
	c.UserService = userService.NewUserService(c.UserRepo)

	c.TagHandler = tagHandler.NewTagHandler(c.TagService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)

	if cfg.Seed.Enabled {
		if err := seed.Run(ctx, c.TagRepo, c.PostRepo, c.UserService,
			cfg.Seed.AdminUsername, cfg.Seed.AdminPassword); err != nil {
			c.Cleanup()
			return nil, fmt.Errorf("seeding failed: %w", err)
		}
	}

	return c, nil
}

// initStorage selects the backend. Both expose the same repository
// contracts, so everything above this point is backend-agnostic.
func (c *Container) initStorage(ctx context.Context) error {
	switch c.Config.Storage.Backend {
	case config.BackendPostgres:
		db, err := database.NewPostgresDB(ctx, c.Config.DatabaseConfigFor())
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		c.DB = db
		c.TagRepo = tagRepo.NewPostgresRepository(db.Pool)
		c.PostRepo = postRepo.NewPostgresRepository(db.Pool)
		c.UserRepo = userRepo.NewPostgresRepository(db.Pool)

	case config.BackendMemory:
		store := memstore.New()
		c.TagRepo = store.TagRepository()
		c.PostRepo = store.PostRepository()
		c.UserRepo = store.UserRepository()

	default:
		return fmt.Errorf("unknown storage backend %q", c.Config.Storage.Backend)
	}

	log.Info().Str("backend", c.Config.Storage.Backend).Msg("Storage initialized")
	return nil
}

// Cleanup releases infrastructure resources. Safe to call on a partially
// built container.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
