package api

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/busmanager/backend/internal/entity"
)

type UploadStore interface {
	Save(originalName string, size int64, r io.Reader) (string, error)
	Delete(name string) error
	Dir() string
}

const uploadFormField = "file"

type UploadResponse struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
}

// Upload stores a document and returns its serving URL
// @Summary Upload file
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Param file formData file true "Document"
// @Success 201 {object} UploadResponse
// @Failure 422 {object} ErrorResponse "Type not allowed or too large"
// @Router /uploads [post]
// @Security BearerAuth
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "Authentication required")
		return
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceUpload, Action: entity.ActionCreate})
	if err != nil {
		SendDomainErr(ctx, w, err, "Action forbidden")
		return
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Missing file field")
		return
	}
	defer file.Close()

	name, err := h.uploads.Save(header.Filename, header.Size, file)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to store file")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, UploadResponse{
		FileName: name,
		URL:      "/uploads/" + name,
	})
}

// DeleteUpload removes a stored file
// @Summary Delete file
// @Tags uploads
// @Param name path string true "Stored file name"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /uploads/{name} [delete]
// @Security BearerAuth
func (h *Handler) DeleteUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "Authentication required")
		return
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceUpload, Action: entity.ActionDelete})
	if err != nil {
		SendDomainErr(ctx, w, err, "Action forbidden")
		return
	}

	if err = h.uploads.Delete(chi.URLParam(r, "name")); err != nil {
		SendDomainErr(ctx, w, err, "Failed to delete file")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
