package api

import (
	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	userHandler    userHandler
	contactHandler contactHandler
	blogHandler    blogHandler
	projectHandler projectHandler
	uploadHandler  uploadHandler
}

type registerRequest struct {
	UserName  string `json:"userName"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type loginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type contactRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

type contactListResponse struct {
	Contacts   []*models.Contact   `json:"contacts"`
	Pagination database.Pagination `json:"pagination"`
}

type blogListResponse struct {
	Blogs      []*models.Blog      `json:"blogs"`
	Pagination database.Pagination `json:"pagination"`
}

type projectListResponse struct {
	Projects   []*models.Project   `json:"projects"`
	Pagination database.Pagination `json:"pagination"`
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}
