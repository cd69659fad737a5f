package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

type fakeContactStore struct {
	contacts []*models.Contact
}

func (s *fakeContactStore) Add(contact *models.Contact) error {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}
	// newest-first, like the repo's created_at DESC ordering
	s.contacts = append([]*models.Contact{contact}, s.contacts...)
	return nil
}

func (s *fakeContactStore) FindPage(opts database.ListOptions) ([]*models.Contact, database.Pagination, error) {
	pagination := database.NewPagination(opts.Page, opts.Limit, int64(len(s.contacts)))
	return s.contacts, pagination, nil
}

func TestSubmitContact(t *testing.T) {
	store := &fakeContactStore{}
	h := newContactHandler(store)

	body := []byte(`{"name":"Carol","email":"carol@example.com","reason":"hiring inquiry"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/contact/submit", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.submit().ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.contacts, 1)
	assert.Equal(t, "Carol", store.contacts[0].Name)
}

func TestSubmitContactValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.com","reason":"hello"}`},
		{"missing reason", `{"name":"Carol","email":"a@b.com"}`},
		{"bad email", `{"name":"Carol","email":"not-an-email","reason":"hello"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeContactStore{}
			h := newContactHandler(store)

			req := httptest.NewRequest(http.MethodPost, "/api/contact/submit", bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()

			h.submit().ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, store.contacts)
		})
	}
}

func TestGetAllContactsNewestFirst(t *testing.T) {
	store := &fakeContactStore{}
	h := newContactHandler(store)

	require.NoError(t, store.Add(&models.Contact{Name: "first", Email: "f@x.com", Reason: "r"}))
	require.NoError(t, store.Add(&models.Contact{Name: "second", Email: "s@x.com", Reason: "r"}))

	req := httptest.NewRequest(http.MethodGet, "/api/contact/all", nil)
	w := httptest.NewRecorder()
	h.getAllContacts().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp contactListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Contacts, 2)
	assert.Equal(t, "second", resp.Contacts[0].Name)
	assert.Equal(t, int64(2), resp.Pagination.Total)
}
