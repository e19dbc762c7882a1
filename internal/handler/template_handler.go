package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/simmaci/simmaci-backend/internal/model"
	"github.com/simmaci/simmaci-backend/internal/response"
	"github.com/simmaci/simmaci-backend/internal/service"
	"github.com/simmaci/simmaci-backend/internal/utils"
)

type TemplateHandler struct {
	svc      service.TemplateService
	settings service.SettingsService
}

func NewTemplateHandler(svc service.TemplateService, settings service.SettingsService) *TemplateHandler {
	return &TemplateHandler{svc: svc, settings: settings}
}

// List godoc
// @Summary      Daftar template SK
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /templates [get]
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.svc.List(r.Context())
	if err != nil {
		response.InternalError(w, "Gagal mengambil daftar template")
		return
	}

	response.Success(w, "Daftar template berhasil diambil", templates)
}

// Upload godoc
// @Summary      Unggah template SK
// @Description  Simpan paket DOCX untuk satu key template; key yang sama akan ditimpa
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        request  body  model.UploadTemplateRequest  true  "Template DOCX (base64)"
// @Security     BearerAuth
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /templates [post]
func (h *TemplateHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req model.UploadTemplateRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	tpl, err := h.svc.Upload(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrTemplateInvalid) {
			response.BadRequest(w, err.Error(), nil)
			return
		}
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Created(w, "Template berhasil diunggah", tpl)
}

// Delete godoc
// @Summary      Hapus template SK
// @Tags         templates
// @Produce      json
// @Param        key  path  string  true  "Template key"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /templates/{key} [delete]
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	if err := h.svc.Delete(r.Context(), key); err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Gagal menghapus template")
		return
	}

	response.Success(w, "Template berhasil dihapus", nil)
}

// GetSettings godoc
// @Summary      Pengaturan pembuatan SK
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /settings [get]
func (h *TemplateHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		response.InternalError(w, "Gagal mengambil pengaturan")
		return
	}

	response.Success(w, "Pengaturan berhasil diambil", settings)
}

// UpdateSettings godoc
// @Summary      Ubah pengaturan pembuatan SK
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request  body  model.UpdateSettingsRequest  true  "Pengaturan baru"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /settings [put]
func (h *TemplateHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateSettingsRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	settings, err := h.settings.Update(r.Context(), req)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Success(w, "Pengaturan berhasil disimpan", settings)
}
