package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/services"
)

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	media     uploader
}

func newUploadHandler(media uploader) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		media:     media,
	}
}

// uploadImage stores a standalone image attachment
// @Summary Upload image
// @Description Uploads a single image not tied to any record and returns its locator
// @Tags Upload
// @Accept mpfd
// @Produce json
// @Success 201 {object} services.Upload "Locator and object key"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 415 {object} ErrorResponse "Unsupported format"
// @Router /upload/image [post]
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return h.upload(services.KindImage, "file", "image", "featuredImage")
}

// uploadVideo stores a standalone video attachment
// @Summary Upload video
// @Description Uploads a single video not tied to any record and returns its locator
// @Tags Upload
// @Accept mpfd
// @Produce json
// @Success 201 {object} services.Upload "Locator and object key"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 415 {object} ErrorResponse "Unsupported format"
// @Router /upload/video [post]
func (h uploadHandler) uploadVideo() http.HandlerFunc {
	return h.upload(services.KindVideo, "file", "video", "projectVideo")
}

func (h uploadHandler) upload(kind services.MediaKind, fieldNames ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}

		file, header, err := formFile(r, fieldNames...)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if file == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		up, err := h.media.Upload(r.Context(), file, header.Filename, header.Size, kind)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, up)
	}
}
