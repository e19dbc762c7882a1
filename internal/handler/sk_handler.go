package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/simmaci/simmaci-backend/internal/middleware"
	"github.com/simmaci/simmaci-backend/internal/model"
	"github.com/simmaci/simmaci-backend/internal/renderer"
	"github.com/simmaci/simmaci-backend/internal/response"
	"github.com/simmaci/simmaci-backend/internal/service"
	"github.com/simmaci/simmaci-backend/internal/utils"
)

type SKHandler struct {
	svc service.SKService
}

func NewSKHandler(svc service.SKService) *SKHandler {
	return &SKHandler{svc: svc}
}

// GetAll godoc
// @Summary      Daftar dokumen SK
// @Tags         sk
// @Produce      json
// @Param        jenis_sk   query  string  false  "Filter jenis SK"
// @Param        status     query  string  false  "Filter status"
// @Param        school_id  query  string  false  "Filter unit kerja"
// @Param        search     query  string  false  "Cari nomor SK atau nama guru"
// @Param        page       query  int     false  "Halaman"
// @Param        per_page   query  int     false  "Jumlah per halaman"
// @Security     BearerAuth
// @Success      200  {object}  response.PaginatedResponse
// @Router       /sk [get]
func (h *SKHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := model.SKFilter{
		JenisSK:  q.Get("jenis_sk"),
		Status:   q.Get("status"),
		SchoolID: q.Get("school_id"),
		Search:   q.Get("search"),
		Page:     parseIntQuery(q.Get("page"), 1),
		PerPage:  parseIntQuery(q.Get("per_page"), 10),
	}

	docs, pagination, err := h.svc.GetAll(r.Context(), filter)
	if err != nil {
		response.InternalError(w, "Gagal mengambil data SK")
		return
	}

	response.Paginated(w, "Data SK berhasil diambil", docs, pagination)
}

// GetByID godoc
// @Summary      Detail dokumen SK
// @Tags         sk
// @Produce      json
// @Param        id  path  string  true  "SK ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /sk/{id} [get]
func (h *SKHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSKNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Success(w, "Data SK berhasil diambil", detail)
}

// Create godoc
// @Summary      Buat dokumen SK baru
// @Tags         sk
// @Accept       json
// @Produce      json
// @Param        request  body  model.CreateSKRequest  true  "Data SK"
// @Security     BearerAuth
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /sk [post]
func (h *SKHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSKRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	if req.JenisSK == "" {
		errs["jenis_sk"] = "Jenis SK wajib diisi"
	}
	if req.GuruID == "" {
		errs["guru_id"] = "Guru wajib dipilih"
	}
	if errs.HasErrors() {
		response.BadRequest(w, "Validasi gagal", errs)
		return
	}

	createdBy := middleware.GetUserIDFromContext(r.Context())
	detail, err := h.svc.Create(r.Context(), req, createdBy)
	if err != nil {
		if errors.Is(err, service.ErrGuruNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Created(w, "Dokumen SK berhasil dibuat", detail)
}

// UpdateStatus godoc
// @Summary      Ubah status SK
// @Description  Alur status: draft -> pending -> approved -> active; pending bisa ditolak
// @Tags         sk
// @Accept       json
// @Produce      json
// @Param        id       path  string                       true  "SK ID"
// @Param        request  body  model.UpdateSKStatusRequest  true  "Status baru"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /sk/{id}/status [patch]
func (h *SKHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req model.UpdateSKStatusRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}
	if req.Status == "" {
		response.BadRequest(w, "Status wajib diisi", nil)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrSKNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, service.ErrInvalidTransition):
			response.BadRequest(w, err.Error(), nil)
		default:
			response.InternalError(w, "Gagal mengubah status SK")
		}
		return
	}

	response.Success(w, "Status SK berhasil diubah", nil)
}

// Delete godoc
// @Summary      Hapus dokumen SK
// @Tags         sk
// @Produce      json
// @Param        id  path  string  true  "SK ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /sk/{id} [delete]
func (h *SKHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrSKNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Success(w, "Dokumen SK berhasil dihapus", nil)
}

// Generate godoc
// @Summary      Generate dan unduh dokumen SK
// @Description  Render template DOCX sesuai jenis SK, sisipkan QR verifikasi, dan unduh hasilnya
// @Tags         sk
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param        id  path  string  true  "SK ID"
// @Security     BearerAuth
// @Success      200  {file}    file    "Dokumen SK"
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /sk/{id}/generate [post]
func (h *SKHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.svc.Generate(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSKNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, renderer.ErrTemplateNotConfigured):
			response.Conflict(w, "Template untuk jenis SK ini belum diunggah")
		case errors.Is(err, renderer.ErrNotDocx):
			response.Conflict(w, "Template yang tersimpan bukan paket DOCX yang valid")
		default:
			response.InternalError(w, "Gagal membuat dokumen SK")
		}
		return
	}

	if result.Warning != "" {
		w.Header().Set("X-Simmaci-Warning", result.Warning)
	}
	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, result.FileName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(result.Content)))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Content)
}

// Receipt godoc
// @Summary      Unduh tanda terima SK (PDF)
// @Tags         sk
// @Produce      application/pdf
// @Param        id  path  string  true  "SK ID"
// @Security     BearerAuth
// @Success      200  {file}    file    "Tanda terima PDF"
// @Failure      404  {object}  response.Response
// @Router       /sk/{id}/receipt [get]
func (h *SKHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pdfBytes, fileName, err := h.svc.Receipt(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSKNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Gagal membuat tanda terima")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdfBytes)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

// Verify godoc
// @Summary      Verifikasi keaslian SK
// @Description  Endpoint publik yang dituju QR code pada dokumen SK
// @Tags         public
// @Produce      json
// @Param        id  path  string  true  "SK ID"
// @Success      200  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /verify/{id} [get]
func (h *SKHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.svc.Verify(r.Context(), id)
	if err != nil {
		response.InternalError(w, "Gagal memverifikasi dokumen")
		return
	}

	if !result.IsValid {
		response.JSON(w, http.StatusUnprocessableEntity, false, result.Message, result)
		return
	}

	response.Success(w, result.Message, result)
}
