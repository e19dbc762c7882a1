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

type GuruHandler struct {
	svc service.GuruService
}

func NewGuruHandler(svc service.GuruService) *GuruHandler {
	return &GuruHandler{svc: svc}
}

// GetAll godoc
// @Summary      Daftar guru
// @Tags         teachers
// @Produce      json
// @Param        search     query  string  false  "Cari nama, NIP, atau NUPTK"
// @Param        school_id  query  string  false  "Filter unit kerja"
// @Param        status     query  string  false  "Filter status kepegawaian"
// @Param        page       query  int     false  "Halaman"
// @Param        per_page   query  int     false  "Jumlah per halaman"
// @Security     BearerAuth
// @Success      200  {object}  response.PaginatedResponse
// @Router       /teachers [get]
func (h *GuruHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := model.GuruFilter{
		Search:   q.Get("search"),
		SchoolID: q.Get("school_id"),
		Status:   q.Get("status"),
		Page:     parseIntQuery(q.Get("page"), 1),
		PerPage:  parseIntQuery(q.Get("per_page"), 10),
	}

	gurus, pagination, err := h.svc.GetAll(r.Context(), filter)
	if err != nil {
		response.InternalError(w, "Gagal mengambil data guru")
		return
	}

	response.Paginated(w, "Data guru berhasil diambil", gurus, pagination)
}

// GetByID godoc
// @Summary      Detail guru
// @Tags         teachers
// @Produce      json
// @Param        id  path  string  true  "Guru ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /teachers/{id} [get]
func (h *GuruHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	guru, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGuruNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Success(w, "Data guru berhasil diambil", guru)
}

// Create godoc
// @Summary      Tambah guru
// @Tags         teachers
// @Accept       json
// @Produce      json
// @Param        request  body  model.SaveGuruRequest  true  "Data guru"
// @Security     BearerAuth
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /teachers [post]
func (h *GuruHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.SaveGuruRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	req.FullName = utils.SanitizeString(req.FullName)
	if req.FullName == "" {
		response.BadRequest(w, "Validasi gagal", utils.ValidationErrors{"full_name": "Nama lengkap wajib diisi"})
		return
	}

	guru, err := h.svc.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrSchoolNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Created(w, "Guru berhasil ditambahkan", guru)
}

// Update godoc
// @Summary      Ubah guru
// @Tags         teachers
// @Accept       json
// @Produce      json
// @Param        id       path  string                 true  "Guru ID"
// @Param        request  body  model.SaveGuruRequest  true  "Data guru"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /teachers/{id} [put]
func (h *GuruHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req model.SaveGuruRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	req.FullName = utils.SanitizeString(req.FullName)
	if req.FullName == "" {
		response.BadRequest(w, "Validasi gagal", utils.ValidationErrors{"full_name": "Nama lengkap wajib diisi"})
		return
	}

	guru, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGuruNotFound), errors.Is(err, service.ErrSchoolNotFound):
			response.NotFound(w, err.Error())
		default:
			response.BadRequest(w, err.Error(), nil)
		}
		return
	}

	response.Success(w, "Data guru berhasil diperbarui", guru)
}

// Delete godoc
// @Summary      Hapus guru
// @Tags         teachers
// @Produce      json
// @Param        id  path  string  true  "Guru ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /teachers/{id} [delete]
func (h *GuruHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrGuruNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Success(w, "Guru berhasil dihapus", nil)
}
