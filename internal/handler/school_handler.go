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

type SchoolHandler struct {
	svc service.SchoolService
}

func NewSchoolHandler(svc service.SchoolService) *SchoolHandler {
	return &SchoolHandler{svc: svc}
}

// GetAll godoc
// @Summary      Daftar madrasah
// @Tags         schools
// @Produce      json
// @Param        search     query  string  false  "Cari nama atau NSM"
// @Param        kecamatan  query  string  false  "Filter kecamatan"
// @Param        page       query  int     false  "Halaman"
// @Param        per_page   query  int     false  "Jumlah per halaman"
// @Security     BearerAuth
// @Success      200  {object}  response.PaginatedResponse
// @Router       /schools [get]
func (h *SchoolHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := model.SchoolFilter{
		Search:    q.Get("search"),
		Kecamatan: q.Get("kecamatan"),
		Page:      parseIntQuery(q.Get("page"), 1),
		PerPage:   parseIntQuery(q.Get("per_page"), 10),
	}

	schools, pagination, err := h.svc.GetAll(r.Context(), filter)
	if err != nil {
		response.InternalError(w, "Gagal mengambil data madrasah")
		return
	}

	response.Paginated(w, "Data madrasah berhasil diambil", schools, pagination)
}

// GetByID godoc
// @Summary      Detail madrasah
// @Tags         schools
// @Produce      json
// @Param        id  path  string  true  "School ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /schools/{id} [get]
func (h *SchoolHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	school, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSchoolNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Success(w, "Data madrasah berhasil diambil", school)
}

// Create godoc
// @Summary      Tambah madrasah
// @Tags         schools
// @Accept       json
// @Produce      json
// @Param        request  body  model.SaveSchoolRequest  true  "Data madrasah"
// @Security     BearerAuth
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /schools [post]
func (h *SchoolHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.SaveSchoolRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	req.Name = utils.SanitizeString(req.Name)
	if req.Name == "" {
		response.BadRequest(w, "Validasi gagal", utils.ValidationErrors{"name": "Nama madrasah wajib diisi"})
		return
	}

	school, err := h.svc.Create(r.Context(), req)
	if err != nil {
		response.InternalError(w, "Gagal menyimpan data madrasah")
		return
	}

	response.Created(w, "Madrasah berhasil ditambahkan", school)
}

// Update godoc
// @Summary      Ubah madrasah
// @Tags         schools
// @Accept       json
// @Produce      json
// @Param        id       path  string                   true  "School ID"
// @Param        request  body  model.SaveSchoolRequest  true  "Data madrasah"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /schools/{id} [put]
func (h *SchoolHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req model.SaveSchoolRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	req.Name = utils.SanitizeString(req.Name)
	if req.Name == "" {
		response.BadRequest(w, "Validasi gagal", utils.ValidationErrors{"name": "Nama madrasah wajib diisi"})
		return
	}

	school, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrSchoolNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Success(w, "Data madrasah berhasil diperbarui", school)
}

// Delete godoc
// @Summary      Hapus madrasah
// @Tags         schools
// @Produce      json
// @Param        id  path  string  true  "School ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /schools/{id} [delete]
func (h *SchoolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrSchoolNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Success(w, "Madrasah berhasil dihapus", nil)
}
