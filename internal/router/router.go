package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quanda-dev/quanda/internal/middleware/metrics"
	"github.com/quanda-dev/quanda/internal/setup"
)

// New creates and configures the application router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		// Public reads
		r.Get("/posts", h.GetAllPosts)
		r.Get("/posts/{postId}", h.GetPost)
		r.Get("/posts/{postId}/comments", h.GetPostComments)

		// Everything that writes or is scoped to the caller needs a token
		r.Group(func(r chi.Router) {
			r.Use(authMw.NeedAuth())

			r.Get("/posts/mine", h.GetMyPosts)
			r.Post("/posts", h.CreatePost)
			r.Delete("/posts/{postId}", h.DeletePost)
			r.Post("/posts/{postId}/attachment", h.GenerateUploadUrl)

			r.Post("/comments", h.CreateComment)
			r.Post("/comments/{commentId}/accept", h.AcceptComment)
		})
	})

	// Upload auth is the URL signature, download is public
	r.Put("/media/{attachmentId}", h.UploadAttachment)
	r.Get("/media/{attachmentId}", h.GetAttachment)

	return r
}
