package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/busmanager/backend/internal/entity"
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	if originErr == nil {
		originErr = errors.New(msgToSend)
	}

	slog.ErrorContext(ctx, "api error", "error", originErr.Error())
	SendJSON(ctx, w, code, ErrorResponse{Message: msgToSend, Description: originErr.Error()})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		code = http.StatusInternalServerError
		http.Error(w, http.StatusText(code), code)

		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// SendDomainErr maps sentinel errors to HTTP codes. Handlers with no special
// cases route every service error through here.
func SendDomainErr(ctx context.Context, w http.ResponseWriter, err error, msgToSend string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Not found")
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Authentication required")
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Action forbidden")
	case errors.Is(err, entity.ErrDuplicate), errors.Is(err, entity.ErrEmailTaken):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Already exists")
	case errors.Is(err, entity.ErrInvalidTransition):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Invalid status change")
	case errors.Is(err, entity.ErrInsufficientStock):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Insufficient stock")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid input")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, msgToSend)
	}
}

// URLParamUUID parses a chi path parameter as a UUID.
func URLParamUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.FromString(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

// Pagination reads limit/offset query params with a capped default page size.
func Pagination(r *http.Request) (limit, offset uint64) {
	limit = 50

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			offset = n
		}
	}

	return limit, offset
}
