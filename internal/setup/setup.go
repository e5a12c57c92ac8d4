package setup

import (
	"fmt"

	"github.com/quanda-dev/quanda/internal/config"
	"github.com/quanda-dev/quanda/internal/handler"
	"github.com/quanda-dev/quanda/internal/middleware"
	"github.com/quanda-dev/quanda/internal/service"
	"github.com/quanda-dev/quanda/internal/storage/media"
	"github.com/quanda-dev/quanda/internal/storage/memory"
	"github.com/quanda-dev/quanda/internal/storage/pg"
	"github.com/quanda-dev/quanda/internal/utils"
)

// Storage is what the services need from a backing store, regardless of
// whether it is postgres or the in-memory fallback.
type Storage interface {
	service.PostStorage
	service.CommentStorage
}

// Dependencies holds all initialized application dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        Storage
	Media          *media.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Cleanup        func()
}

// SetupDependencies initializes all dependencies required for the application.
// storageKind selects the backing store: "postgres" or "memory".
func SetupDependencies(cfg *config.Config, storageKind string) (*Dependencies, error) {
	var storage Storage
	cleanup := func() {}

	switch storageKind {
	case "postgres":
		pgStorage, err := pg.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("setup postgres storage: %w", err)
		}
		storage = pgStorage
		cleanup = func() { pgStorage.Cleanup() }
	case "memory":
		storage = memory.New()
	default:
		return nil, fmt.Errorf("unknown storage kind: %q", storageKind)
	}

	mediaStorage, err := media.New(cfg.Public.MediaPath, cfg.Public.BaseUrl, cfg.Private.MediaSigningKey, cfg.UploadUrlTTL())
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("setup media storage: %w", err)
	}

	posts := service.NewPost(storage, mediaStorage, &utils.PostValidator{})
	comments := service.NewComment(storage, &utils.CommentValidator{})

	h := handler.New(posts, comments, mediaStorage, handler.UploadConfig{
		MaxAttachmentBytes:    cfg.Public.MaxAttachmentBytes,
		AllowedImageMimeTypes: cfg.Public.AllowedImageMimeTypes,
	})

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Media:          mediaStorage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(cfg.Private.JwtKey),
		Cleanup:        cleanup,
	}, nil
}
