package http

import (
	"errors"
	"net/http"

	"github.com/sravani-k-5/vidspark-backend/internal/app"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
	"github.com/sravani-k-5/vidspark-backend/internal/service"
	"github.com/sravani-k-5/vidspark-backend/internal/utils"
	"github.com/sravani-k-5/vidspark-backend/models"
)

const (
	// uploadFileField is the multipart field carrying the media file.
	uploadFileField = "source"

	// uploadMemoryLimit is how much of a multipart form is kept in memory;
	// the rest spills to temporary files.
	uploadMemoryLimit = 32 << 20
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

// uploadVideo accepts a multipart form with the file in "source" and the
// text fields "title", "description" and "category".
func (h *Handler) uploadVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if h.cfg.MaxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
	}

	if err := r.ParseMultipartForm(uploadMemoryLimit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Int64("limit", tooLarge.Limit).Msg("upload exceeds size limit")
			utils.WriteJSON(w, models.StatusResponse{Status: statusFailed, Message: app.MsgFileTooLarge}, http.StatusRequestEntityTooLarge)
			return
		}
		writeUploadError(w, r, service.ErrNoFileUploaded)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadFileField)
	if err != nil {
		log.Warn().Err(err).Msg("no file in upload form")
		writeUploadError(w, r, service.ErrNoFileUploaded)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	video, err := h.services.VideoService.Upload(ctx, models.VideoUpload{
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Title:       r.FormValue("title"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
	}, file)
	if err != nil {
		writeUploadError(w, r, err)
		return
	}

	log.Info().Str("video_id", video.VideoID).Msg("video upload finished")
	utils.WriteJSON(w, models.StatusResponse{
		Status:  statusSuccess,
		Message: app.MsgVideoUploaded,
	}, http.StatusOK)
}

// writeUploadError answers in the {"status","message"} shape used by the
// upload endpoint.
func writeUploadError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg("video upload failed")

	utils.WriteJSON(w, models.StatusResponse{
		Status:  statusFailed,
		Message: messageFromError(err, app.MsgErrorUploadingVideo),
	}, status)
}

// listVideos returns the catalog, optionally filtered by ?vidcategory=.
func (h *Handler) listVideos(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("vidcategory")

	videos, err := h.services.VideoService.List(r.Context(), category)
	if err != nil {
		writeError(w, r, err, app.MsgErrorFetchingVideos)
		return
	}

	utils.WriteJSON(w, videos, http.StatusOK)
}
