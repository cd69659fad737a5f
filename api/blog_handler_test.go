package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rpupo63/portfolio-cms-backend/services"
)

// fakeBlogStore mirrors the repo's owner-filtered mutation semantics
type fakeBlogStore struct {
	blogs map[uuid.UUID]*models.Blog
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{blogs: make(map[uuid.UUID]*models.Blog)}
}

func (s *fakeBlogStore) Add(blog *models.Blog) error {
	if blog.ID == uuid.Nil {
		blog.ID = uuid.New()
	}
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = time.Now()
	}
	s.blogs[blog.ID] = blog
	return nil
}

func (s *fakeBlogStore) FindByID(id uuid.UUID) (*models.Blog, error) {
	blog, ok := s.blogs[id]
	if !ok {
		return nil, errs.NewNotFound("blog")
	}
	return blog, nil
}

func (s *fakeBlogStore) FindPage(opts database.ListOptions) ([]*models.Blog, database.Pagination, error) {
	var matched []*models.Blog
	for _, blog := range s.blogs {
		if opts.Published != nil && blog.Published != *opts.Published {
			continue
		}
		if opts.Search != "" && !strings.Contains(strings.ToLower(blog.Title), strings.ToLower(opts.Search)) {
			continue
		}
		matched = append(matched, blog)
	}
	pagination := database.NewPagination(opts.Page, opts.Limit, int64(len(matched)))
	return matched, pagination, nil
}

func (s *fakeBlogStore) UpdateOwned(id, authorID uuid.UUID, changes map[string]any) error {
	blog, ok := s.blogs[id]
	if !ok || blog.AuthorID != authorID {
		return errs.NewNotFound("blog")
	}
	for column, value := range changes {
		switch column {
		case "title":
			blog.Title = value.(string)
		case "content":
			blog.Content = value.(string)
		case "excerpt":
			blog.Excerpt = value.(string)
		case "published":
			blog.Published = value.(bool)
		case "read_time":
			blog.ReadTime = value.(int)
		case "featured_image":
			url := value.(string)
			blog.FeaturedImage = &url
		case "updated_at":
			blog.UpdatedAt = value.(time.Time)
		}
	}
	return nil
}

func (s *fakeBlogStore) DeleteOwned(id, authorID uuid.UUID) error {
	blog, ok := s.blogs[id]
	if !ok || blog.AuthorID != authorID {
		return errs.NewNotFound("blog")
	}
	delete(s.blogs, id)
	return nil
}

type fakeUploader struct {
	uploads     []string
	deleteErr   error
	deleteCalls chan string
}

func (f *fakeUploader) Upload(_ context.Context, _ io.Reader, filename string, _ int64, kind services.MediaKind) (*services.Upload, error) {
	f.uploads = append(f.uploads, filename)
	key := "portfolio/images/" + filename
	if kind == services.KindVideo {
		key = "portfolio/videos/" + filename
	}
	return &services.Upload{
		URL: "https://cdn.example.com/test-bucket/" + key,
		Key: key,
	}, nil
}

func (f *fakeUploader) Delete(_ context.Context, locator string) error {
	if f.deleteCalls != nil {
		f.deleteCalls <- locator
	}
	return f.deleteErr
}

func newBlogFixture() (blogHandler, *fakeBlogStore, *fakeUploader, *models.User) {
	store := newFakeBlogStore()
	media := &fakeUploader{}
	user := &models.User{ID: uuid.New(), Username: "alice"}
	return newBlogHandler(store, media), store, media, user
}

// serveBlogRoute runs one request through a chi router so URL params resolve
func serveBlogRoute(h http.HandlerFunc, method, pattern string, req *http.Request) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.MethodFunc(method, pattern, h)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateBlogDerivesExcerptAndReadTime(t *testing.T) {
	h, _, _, user := newBlogFixture()

	content := strings.Repeat("a", 1000)
	body, err := json.Marshal(map[string]any{
		"title":   "Long post",
		"content": content,
		"tags":    []string{"go", "testing"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/blogs", bytes.NewReader(body))
	req = req.WithContext(ctxWithUser(req.Context(), user))
	w := httptest.NewRecorder()

	h.createBlog().ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Blog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Len(t, created.Excerpt, 300, "297 characters plus ellipsis")
	assert.Equal(t, 1, created.ReadTime, "1000 unbroken characters are one word")
	assert.Equal(t, user.ID, created.AuthorID)
	assert.False(t, created.Published, "posts start unpublished")
}

func TestCreateBlogMissingContent(t *testing.T) {
	h, store, _, user := newBlogFixture()

	body := []byte(`{"title":"No content"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/blogs", bytes.NewReader(body))
	req = req.WithContext(ctxWithUser(req.Context(), user))
	w := httptest.NewRecorder()

	h.createBlog().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.blogs)
}

func TestCreateBlogMultipartWithImage(t *testing.T) {
	h, store, media, user := newBlogFixture()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "With image"))
	require.NoError(t, mw.WriteField("content", "some words here"))
	require.NoError(t, mw.WriteField("published", "true"))
	part, err := mw.CreateFormFile("featuredImage", "cover.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/blogs", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req = req.WithContext(ctxWithUser(req.Context(), user))
	w := httptest.NewRecorder()

	h.createBlog().ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, media.uploads, 1)

	var created models.Blog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotNil(t, created.FeaturedImage)
	assert.Contains(t, *created.FeaturedImage, "portfolio/images/")
	assert.True(t, created.Published)
	require.Len(t, store.blogs, 1)
}

func TestUpdateBlogOwnershipCollapse(t *testing.T) {
	h, store, _, alice := newBlogFixture()

	bob := &models.User{ID: uuid.New(), Username: "bob"}
	bobsBlog := &models.Blog{Title: "Bob's post", Content: "hello", AuthorID: bob.ID}
	require.NoError(t, store.Add(bobsBlog))

	update := []byte(`{"title":"hijacked"}`)

	// Alice updating Bob's blog and Alice updating a nonexistent blog must be
	// indistinguishable responses.
	targets := map[string]uuid.UUID{
		"someone else's record": bobsBlog.ID,
		"missing record":        uuid.New(),
	}

	for name, id := range targets {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/blogs/"+id.String(), bytes.NewReader(update))
			req = req.WithContext(ctxWithUser(req.Context(), alice))

			w := serveBlogRoute(h.updateBlog(), http.MethodPut, "/api/blogs/{blogID}", req)
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}

	assert.Equal(t, "Bob's post", bobsBlog.Title, "record must be untouched")
}

func TestUpdateBlogRederivesExcerpt(t *testing.T) {
	h, store, _, alice := newBlogFixture()

	blog := &models.Blog{
		Title:    "Old",
		Content:  "old content",
		Excerpt:  "old content",
		ReadTime: 1,
		AuthorID: alice.ID,
	}
	require.NoError(t, store.Add(blog))

	newContent := strings.Repeat("b", 1000)
	update, err := json.Marshal(map[string]any{"content": newContent})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/blogs/"+blog.ID.String(), bytes.NewReader(update))
	req = req.WithContext(ctxWithUser(req.Context(), alice))

	w := serveBlogRoute(h.updateBlog(), http.MethodPut, "/api/blogs/{blogID}", req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Len(t, blog.Excerpt, 300)
	assert.False(t, blog.UpdatedAt.IsZero())
}

func TestDeleteBlogBestEffortAssetCleanup(t *testing.T) {
	h, store, media, alice := newBlogFixture()
	media.deleteErr = errors.New("asset host down")
	media.deleteCalls = make(chan string, 1)

	locator := "https://cdn.example.com/test-bucket/portfolio/images/cover.png"
	blog := &models.Blog{
		Title:         "Illustrated",
		Content:       "content",
		FeaturedImage: &locator,
		AuthorID:      alice.ID,
	}
	require.NoError(t, store.Add(blog))

	req := httptest.NewRequest(http.MethodDelete, "/api/blogs/"+blog.ID.String(), nil)
	req = req.WithContext(ctxWithUser(req.Context(), alice))

	w := serveBlogRoute(h.deleteBlog(), http.MethodDelete, "/api/blogs/{blogID}", req)

	assert.Equal(t, http.StatusOK, w.Code, "record deletion succeeds even when cleanup fails")
	assert.Empty(t, store.blogs)

	select {
	case got := <-media.deleteCalls:
		assert.Equal(t, locator, got)
	case <-time.After(time.Second):
		t.Fatal("remote asset delete was never attempted")
	}
}

func TestGetAllBlogsDefaultsToPublished(t *testing.T) {
	h, store, _, alice := newBlogFixture()

	require.NoError(t, store.Add(&models.Blog{Title: "Live", Content: "x", Published: true, AuthorID: alice.ID}))
	require.NoError(t, store.Add(&models.Blog{Title: "Draft", Content: "x", Published: false, AuthorID: alice.ID}))

	req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
	w := httptest.NewRecorder()
	h.getAllBlogs().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp blogListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Blogs, 1)
	assert.Equal(t, "Live", resp.Blogs[0].Title)

	// explicit override shows drafts
	req = httptest.NewRequest(http.MethodGet, "/api/blogs?published=false", nil)
	w = httptest.NewRecorder()
	h.getAllBlogs().ServeHTTP(w, req)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Blogs, 1)
	assert.Equal(t, "Draft", resp.Blogs[0].Title)
}
