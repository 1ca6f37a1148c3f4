package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/busmanager/backend/internal/entity"
)

type SettingService interface {
	Setting(ctx context.Context, key string) (entity.AdminSetting, error)
	Settings(ctx context.Context) ([]entity.AdminSetting, error)
	UpsertSetting(ctx context.Context, key, value, description string) (entity.AdminSetting, error)
}

type SettingResponse struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

func settingResponse(s entity.AdminSetting) SettingResponse {
	return SettingResponse{
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
	}
}

// Settings lists admin settings
// @Summary List settings
// @Tags settings
// @Produce json
// @Success 200 {array} SettingResponse
// @Failure 403 {object} ErrorResponse
// @Router /settings [get]
// @Security BearerAuth
func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, err := h.settings.Settings(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list settings")
		return
	}

	resp := make([]SettingResponse, 0, len(settings))
	for _, s := range settings {
		resp = append(resp, settingResponse(s))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// Setting returns one setting by key
// @Summary Get setting
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} SettingResponse
// @Failure 404 {object} ErrorResponse
// @Router /settings/{key} [get]
// @Security BearerAuth
func (h *Handler) Setting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, err := h.settings.Setting(ctx, chi.URLParam(r, "key"))
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to load setting")
		return
	}

	SendJSON(ctx, w, http.StatusOK, settingResponse(s))
}

type UpsertSettingRequest struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}

// UpsertSetting creates or updates a setting, admin only
// @Summary Upsert setting
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param UpsertSettingRequest body UpsertSettingRequest true "Value"
// @Success 200 {object} SettingResponse
// @Failure 403 {object} ErrorResponse
// @Router /settings/{key} [put]
// @Security BearerAuth
func (h *Handler) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpsertSettingRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	s, err := h.settings.UpsertSetting(ctx, chi.URLParam(r, "key"), req.Value, req.Description)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to save setting")
		return
	}

	SendJSON(ctx, w, http.StatusOK, settingResponse(s))
}
