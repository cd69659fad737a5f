package api

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rpupo63/portfolio-cms-backend/services"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  projectStore
	media     uploader
}

func newProjectHandler(projects projectStore, media uploader) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
		media:     media,
	}
}

type projectForm struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	ProjectLink  *string  `json:"projectLink"`
	SourceLink   *string  `json:"sourceLink"`
	Features     []string `json:"features"`
	Technologies []string `json:"technologies"`
	Status       *string  `json:"status"`
}

// parseProjectForm accepts multipart (optional projectVideo/video file part)
// or plain JSON, and validates link and status fields.
func parseProjectForm(r *http.Request) (*projectForm, multipart.File, *multipart.FileHeader, error) {
	var form *projectForm
	var file multipart.File
	var header *multipart.FileHeader

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, nil, nil, errs.NewMalformedPayloadError("multipart", err)
		}
		values := url.Values(r.MultipartForm.Value)

		form = &projectForm{
			Title:        optFormValue(values, "title"),
			Description:  optFormValue(values, "description"),
			ProjectLink:  optFormValue(values, "projectLink"),
			SourceLink:   optFormValue(values, "sourceLink"),
			Features:     formList(values, "features"),
			Technologies: formList(values, "technologies"),
			Status:       optFormValue(values, "status"),
		}

		var err error
		file, header, err = formFile(r, "projectVideo", "video")
		if err != nil {
			return nil, nil, nil, err
		}
	} else {
		form = &projectForm{}
		if err := decodeJSONBody(r, form); err != nil {
			return nil, nil, nil, err
		}
	}

	if form.ProjectLink != nil && *form.ProjectLink != "" {
		if err := validateURL(*form.ProjectLink, "projectLink"); err != nil {
			return nil, nil, nil, err
		}
	}
	if form.SourceLink != nil && *form.SourceLink != "" {
		if err := validateURL(*form.SourceLink, "sourceLink"); err != nil {
			return nil, nil, nil, err
		}
	}
	if form.Status != nil && !models.ValidProjectStatus(*form.Status) {
		return nil, nil, nil, errs.NewInvalidFieldError("status", "must be completed, in-progress or planned")
	}

	return form, file, header, nil
}

// getAllProjects retrieves one page of projects
// @Summary List projects
// @Tags Projects
// @Produce json
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size"
// @Param search query string false "Case-insensitive search over title/description/technologies"
// @Success 200 {object} projectListResponse "Projects with pagination"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, pagination, err := h.projects.FindPage(listOptionsFromQuery(r))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		if projects == nil {
			projects = []*models.Project{}
		}

		h.responder.WriteJSON(w, projectListResponse{
			Projects:   projects,
			Pagination: pagination,
		})
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Project with author"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project for the authenticated author
// @Summary Create project
// @Description Creates a project; multipart with an optional projectVideo file
// @Tags Projects
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Router /projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := userFromCtx(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		form, file, header, err := parseProjectForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if form.Title == nil || *form.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if form.Description == nil || *form.Description == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("description"))
			return
		}

		var videoURL *string
		if file != nil {
			defer file.Close()
			up, err := h.media.Upload(r.Context(), file, header.Filename, header.Size, services.KindVideo)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			videoURL = &up.URL
		}

		status := models.ProjectStatusPlanned
		if form.Status != nil {
			status = *form.Status
		}

		project := models.Project{
			Title:        *form.Title,
			Description:  *form.Description,
			VideoURL:     videoURL,
			ProjectLink:  form.ProjectLink,
			SourceLink:   form.SourceLink,
			Features:     datatypes.JSONSlice[string](form.Features),
			Technologies: datatypes.JSONSlice[string](form.Technologies),
			Status:       status,
			AuthorID:     user.ID,
		}

		if err := h.projects.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		created, err := h.projects.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateProject updates an existing project owned by the caller
// @Summary Update project
// @Description Updates a project; absent fields stay untouched. Only the author can update.
// @Tags Projects
// @Accept mpfd
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Updated project"
// @Failure 404 {object} ErrorResponse "Missing record or not the author"
// @Router /projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := userFromCtx(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		form, file, header, err := parseProjectForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		changes := map[string]any{"updated_at": time.Now()}
		if form.Title != nil {
			changes["title"] = *form.Title
		}
		if form.Description != nil {
			changes["description"] = *form.Description
		}
		if form.ProjectLink != nil {
			changes["project_link"] = *form.ProjectLink
		}
		if form.SourceLink != nil {
			changes["source_link"] = *form.SourceLink
		}
		if form.Features != nil {
			changes["features"] = datatypes.JSONSlice[string](form.Features)
		}
		if form.Technologies != nil {
			changes["technologies"] = datatypes.JSONSlice[string](form.Technologies)
		}
		if form.Status != nil {
			changes["status"] = *form.Status
		}

		if file != nil {
			defer file.Close()
			up, err := h.media.Upload(r.Context(), file, header.Filename, header.Size, services.KindVideo)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			changes["video_url"] = up.URL
		}

		if err := h.projects.UpdateOwned(projectID, user.ID, changes); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject deletes a project owned by the caller
// @Summary Delete project
// @Description Deletes a project; the remote video is removed best-effort afterward. Only the author can delete.
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Missing record or not the author"
// @Router /projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := userFromCtx(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		if err := h.projects.DeleteOwned(projectID, user.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		if existing.VideoURL != nil {
			locator := *existing.VideoURL
			go func() {
				if err := h.media.Delete(context.Background(), locator); err != nil {
					h.logger.Error().Err(err).Str("locator", locator).Msg("Failed to delete remote asset")
				}
			}()
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
