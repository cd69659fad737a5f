package api

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
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

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogs     blogStore
	media     uploader
}

func newBlogHandler(blogs blogStore, media uploader) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogs:     blogs,
		media:     media,
	}
}

// blogForm is the decoded create/update payload. Pointer fields distinguish
// "absent" from "set to zero" so updates leave untouched fields alone.
type blogForm struct {
	Title     *string  `json:"title"`
	Content   *string  `json:"content"`
	Excerpt   *string  `json:"excerpt"`
	Published *bool    `json:"published"`
	Tags      []string `json:"tags"`
}

// parseBlogForm accepts multipart (with an optional featuredImage file part)
// or plain JSON.
func parseBlogForm(r *http.Request) (*blogForm, multipart.File, *multipart.FileHeader, error) {
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, nil, nil, errs.NewMalformedPayloadError("multipart", err)
		}
		values := url.Values(r.MultipartForm.Value)

		published, err := parseOptBool(optFormValue(values, "published"), "published")
		if err != nil {
			return nil, nil, nil, err
		}

		form := &blogForm{
			Title:     optFormValue(values, "title"),
			Content:   optFormValue(values, "content"),
			Excerpt:   optFormValue(values, "excerpt"),
			Published: published,
			Tags:      formList(values, "tags"),
		}

		file, header, err := formFile(r, "featuredImage")
		if err != nil {
			return nil, nil, nil, err
		}
		return form, file, header, nil
	}

	var form blogForm
	if err := decodeJSONBody(r, &form); err != nil {
		return nil, nil, nil, err
	}
	return &form, nil, nil, nil
}

// getAllBlogs retrieves one page of blog posts
// @Summary List blog posts
// @Description Lists blog posts newest-first; published-only unless overridden
// @Tags Blogs
// @Produce json
// @Param published query bool false "Publish-flag filter (default true)"
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size"
// @Param search query string false "Case-insensitive search over title/content/tags"
// @Success 200 {object} blogListResponse "Blog posts with pagination"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /blogs [get]
func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := listOptionsFromQuery(r)

		// Listing defaults to published posts only
		published := true
		if raw := r.URL.Query().Get("published"); raw != "" {
			b, err := strconv.ParseBool(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("published", "must be a boolean"))
				return
			}
			published = b
		}
		opts.Published = &published

		blogs, pagination, err := h.blogs.FindPage(opts)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blogs", err))
			return
		}

		if blogs == nil {
			blogs = []*models.Blog{}
		}

		h.responder.WriteJSON(w, blogListResponse{
			Blogs:      blogs,
			Pagination: pagination,
		})
	}
}

// getBlog retrieves a specific blog post by ID
// @Summary Get blog post
// @Tags Blogs
// @Produce json
// @Param blogID path string true "Blog ID" format(uuid)
// @Success 200 {object} models.Blog "Blog post with author"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /blogs/{blogID} [get]
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		blog, err := h.blogs.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog", err))
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

// createBlog creates a new blog post for the authenticated author
// @Summary Create blog post
// @Description Creates a blog post; multipart with an optional featuredImage file. Excerpt and readTime are derived from content when not supplied.
// @Tags Blogs
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.Blog "Created blog post"
// @Failure 400 {object} ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Router /blogs [post]
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := userFromCtx(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		form, file, header, err := parseBlogForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if form.Title == nil || *form.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if form.Content == nil || *form.Content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}
		content := *form.Content

		// Upload the attachment first so the locator lands on the record
		var featuredImage *string
		if file != nil {
			defer file.Close()
			up, err := h.media.Upload(r.Context(), file, header.Filename, header.Size, services.KindImage)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			featuredImage = &up.URL
		}

		excerpt := deriveExcerpt(content)
		if form.Excerpt != nil && *form.Excerpt != "" {
			excerpt = *form.Excerpt
		}

		published := false
		if form.Published != nil {
			published = *form.Published
		}

		blog := models.Blog{
			Title:         *form.Title,
			Content:       content,
			Excerpt:       excerpt,
			FeaturedImage: featuredImage,
			Published:     published,
			Tags:          datatypes.JSONSlice[string](form.Tags),
			ReadTime:      deriveReadTime(content),
			AuthorID:      user.ID,
		}

		if err := h.blogs.Add(&blog); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "blog", err))
			return
		}

		// Reload so the response carries the resolved author
		created, err := h.blogs.FindByID(blog.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "blog", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateBlog updates an existing blog post owned by the caller
// @Summary Update blog post
// @Description Updates a blog post; absent fields stay untouched. A new featuredImage replaces the stored locator. Only the author can update.
// @Tags Blogs
// @Accept mpfd
// @Produce json
// @Param blogID path string true "Blog ID" format(uuid)
// @Success 200 {object} models.Blog "Updated blog post"
// @Failure 404 {object} ErrorResponse "Missing record or not the author"
// @Router /blogs/{blogID} [put]
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := userFromCtx(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		form, file, header, err := parseBlogForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		changes := map[string]any{"updated_at": time.Now()}
		if form.Title != nil {
			changes["title"] = *form.Title
		}
		if form.Content != nil {
			changes["content"] = *form.Content
			changes["read_time"] = deriveReadTime(*form.Content)
			// Excerpt follows content unless explicitly supplied
			if form.Excerpt == nil {
				changes["excerpt"] = deriveExcerpt(*form.Content)
			}
		}
		if form.Excerpt != nil {
			changes["excerpt"] = *form.Excerpt
		}
		if form.Published != nil {
			changes["published"] = *form.Published
		}
		if form.Tags != nil {
			changes["tags"] = datatypes.JSONSlice[string](form.Tags)
		}

		if file != nil {
			defer file.Close()
			up, err := h.media.Upload(r.Context(), file, header.Filename, header.Size, services.KindImage)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			changes["featured_image"] = up.URL
		}

		if err := h.blogs.UpdateOwned(blogID, user.ID, changes); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "blog", err))
			return
		}

		updated, err := h.blogs.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "blog", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteBlog deletes a blog post owned by the caller
// @Summary Delete blog post
// @Description Deletes a blog post; the remote featured image is removed best-effort afterward. Only the author can delete.
// @Tags Blogs
// @Produce json
// @Param blogID path string true "Blog ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Missing record or not the author"
// @Router /blogs/{blogID} [delete]
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := userFromCtx(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		existing, err := h.blogs.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog", err))
			return
		}

		if err := h.blogs.DeleteOwned(blogID, user.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "blog", err))
			return
		}

		// Remote cleanup is fire-and-forget: the record is already gone and
		// a failed asset delete never rolls that back.
		if existing.FeaturedImage != nil {
			locator := *existing.FeaturedImage
			go func() {
				if err := h.media.Delete(context.Background(), locator); err != nil {
					h.logger.Error().Err(err).Str("locator", locator).Msg("Failed to delete remote asset")
				}
			}()
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog deleted successfully",
		})
	}
}
