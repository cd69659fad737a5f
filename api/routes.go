package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public and token-protected route groups
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/user/register", handlers.userHandler.register())
		r.Post("/user/login", handlers.userHandler.login())
		r.Post("/contact/submit", handlers.contactHandler.submit())

		r.Get("/blogs", handlers.blogHandler.getAllBlogs())
		r.Get("/blogs/{blogID}", handlers.blogHandler.getBlog())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

		// Token-protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Get("/contact/all", handlers.contactHandler.getAllContacts())

			r.Post("/blogs", handlers.blogHandler.createBlog())
			r.Put("/blogs/{blogID}", handlers.blogHandler.updateBlog())
			r.Delete("/blogs/{blogID}", handlers.blogHandler.deleteBlog())

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/upload/image", handlers.uploadHandler.uploadImage())
			r.Post("/upload/video", handlers.uploadHandler.uploadVideo())
		})
	})
}
