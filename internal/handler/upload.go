package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/osse101/NoriFarm_Go/internal/domain"
	"github.com/osse101/NoriFarm_Go/internal/images"
	"github.com/osse101/NoriFarm_Go/internal/logger"
	"github.com/osse101/NoriFarm_Go/internal/metrics"
)

// room for multipart boundaries and headers on top of the image itself
const multipartOverhead = 1 << 20

// UploadHandler accepts crop image uploads
type UploadHandler struct {
	store   images.Store
	maxSize int64
}

// NewUploadHandler creates a new upload handler. maxSize <= 0 uses domain.MaxImageSize.
func NewUploadHandler(store images.Store, maxSize int64) *UploadHandler {
	if maxSize <= 0 {
		maxSize = domain.MaxImageSize
	}
	return &UploadHandler{store: store, maxSize: maxSize}
}

// HandleUploadImage stores a multipart image upload
// @Summary Upload crop image
// @Description Accepts JPEG, PNG or WebP up to 5 MiB in the "image" form field
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} domain.StoredImage
// @Failure 400 {object} ErrorResponse "No file received"
// @Failure 413 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /uploads/images [post]
func (h *UploadHandler) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		h.rejectRead(w, r, err)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile(FormFieldImage)
	if err != nil {
		log.Warn("Upload without image field", "error", err)
		metrics.ImagesUploaded.WithLabelValues(metrics.UploadResultRejected).Inc()
		respondError(w, http.StatusBadRequest, ErrMsgNoFileReceived)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.rejectRead(w, r, err)
		return
	}

	img, err := h.store.Store(r.Context(), data, header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		result := metrics.UploadResultRejected
		if errors.Is(err, domain.ErrPersistence) {
			result = metrics.UploadResultFailed
		}
		metrics.ImagesUploaded.WithLabelValues(result).Inc()
		respondServiceError(w, r, "Upload image", err)
		return
	}

	metrics.ImagesUploaded.WithLabelValues(metrics.UploadResultStored).Inc()
	respondJSON(w, http.StatusCreated, img)
}

func (h *UploadHandler) rejectRead(w http.ResponseWriter, r *http.Request, err error) {
	metrics.ImagesUploaded.WithLabelValues(metrics.UploadResultRejected).Inc()

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondServiceError(w, r, "Upload image", domain.ErrPayloadTooLarge)
		return
	}
	logger.FromContext(r.Context()).Warn("Failed to read upload", "error", err)
	respondError(w, http.StatusBadRequest, ErrMsgNoFileReceived)
}
