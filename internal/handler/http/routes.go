package http

import (
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Get("/api/auth/verify-reset-token/{token}", h.verifyResetToken)
		r.Post("/api/auth/reset-password", h.resetPassword)

		r.Get("/api/blog/post", h.listPosts)
		r.Get("/api/blog/post/{id}", h.getPost)
	})

	// routes requiring an authenticated caller
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/auth/profile", h.updateProfile)

		r.Post("/api/blog/post", h.createPost)
		r.Put("/api/blog/post/{id}", h.updatePost)
		r.Delete("/api/blog/post/{id}", h.deletePost)
		r.Get("/api/blog/posts/user", h.listUserPosts)
	})

	// routes requiring the admin role
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireRole(models.RoleAdmin))

		r.Get("/api/admin/all-users", h.allUsers)
		r.Delete("/api/admin/delete-user/{id}", h.deleteUser)

		r.Get("/api/blog/posts/admin/all", h.listAllPostsAdmin)
		r.Delete("/api/blog/posts/admin/{id}", h.deletePostByAdmin)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
