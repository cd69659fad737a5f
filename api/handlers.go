package api

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rpupo63/portfolio-cms-backend/services"
)

// Store interfaces consumed by the handlers. The concrete database repos
// satisfy them; tests substitute fakes.

type contactStore interface {
	Add(contact *models.Contact) error
	FindPage(opts database.ListOptions) ([]*models.Contact, database.Pagination, error)
}

type blogStore interface {
	Add(blog *models.Blog) error
	FindByID(id uuid.UUID) (*models.Blog, error)
	FindPage(opts database.ListOptions) ([]*models.Blog, database.Pagination, error)
	UpdateOwned(id, authorID uuid.UUID, changes map[string]any) error
	DeleteOwned(id, authorID uuid.UUID) error
}

type projectStore interface {
	Add(project *models.Project) error
	FindByID(id uuid.UUID) (*models.Project, error)
	FindPage(opts database.ListOptions) ([]*models.Project, database.Pagination, error)
	UpdateOwned(id, authorID uuid.UUID, changes map[string]any) error
	DeleteOwned(id, authorID uuid.UUID) error
}

// uploader is the slice of the media gateway the handlers use.
type uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string, size int64, kind services.MediaKind) (*services.Upload, error)
	Delete(ctx context.Context, locator string) error
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, media uploader, auth *services.AuthService, tokens *services.TokenService) *routeHandlers {
	return &routeHandlers{
		userHandler:    newUserHandler(auth, tokens),
		contactHandler: newContactHandler(db.ContactRepo()),
		blogHandler:    newBlogHandler(db.BlogRepo(), media),
		projectHandler: newProjectHandler(db.ProjectRepo(), media),
		uploadHandler:  newUploadHandler(media),
	}
}
