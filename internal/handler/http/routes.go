package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/api/login", h.login)

		r.Post("/videoUpload", h.uploadVideo)
		r.Get("/videos", h.listVideos)

		r.Get("/api/comments/{id}", h.listComments)

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/likeVideo/{videoId}", h.toggleLikedVideo)
		r.Post("/api/shareVideo/{videoId}", h.toggleSharedVideo)
		r.Get("/api/likedVideos", h.likedVideos)
		r.Get("/api/sharedVideos", h.sharedVideos)

		r.Post("/api/comments", h.createComment)
		r.Delete("/api/comments/{id}", h.deleteComment)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
