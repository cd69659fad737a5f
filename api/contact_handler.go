package api

import (
	"net/http"
	"net/mail"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	contacts  contactStore
}

func newContactHandler(contacts contactStore) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		contacts:  contacts,
	}
}

// submit records a public contact-form submission
// @Summary Submit contact form
// @Description Records a contact-form submission; submissions are read-only afterward
// @Tags Contact
// @Accept json
// @Produce json
// @Success 201 {object} models.Contact "Created submission"
// @Failure 400 {object} ErrorResponse "Missing or invalid fields"
// @Router /contact/submit [post]
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := decodeJSONBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if req.Reason == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("reason"))
			return
		}
		if _, err := mail.ParseAddress(req.Email); err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "must be a valid email address"))
			return
		}

		contact := models.Contact{
			Name:   req.Name,
			Email:  req.Email,
			Reason: req.Reason,
		}
		if err := h.contacts.Add(&contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, contact)
	}
}

// getAllContacts lists submissions newest-first
// @Summary List contact submissions
// @Description Lists contact-form submissions newest-first with pagination
// @Tags Contact
// @Produce json
// @Success 200 {object} contactListResponse "Submissions with pagination"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Router /contact/all [get]
func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, pagination, err := h.contacts.FindPage(listOptionsFromQuery(r))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contacts", err))
			return
		}

		if contacts == nil {
			contacts = []*models.Contact{}
		}

		h.responder.WriteJSON(w, contactListResponse{
			Contacts:   contacts,
			Pagination: pagination,
		})
	}
}
