package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/simmaci/simmaci-backend/internal/model"
	"github.com/simmaci/simmaci-backend/internal/repository"
	"github.com/simmaci/simmaci-backend/internal/response"
)

var ErrGuruNotFound = errors.New("data guru tidak ditemukan")

type GuruService interface {
	GetAll(ctx context.Context, filter model.GuruFilter) ([]*model.Guru, *response.Pagination, error)
	GetByID(ctx context.Context, id string) (*model.Guru, error)
	Create(ctx context.Context, req model.SaveGuruRequest) (*model.Guru, error)
	Update(ctx context.Context, id string, req model.SaveGuruRequest) (*model.Guru, error)
	Delete(ctx context.Context, id string) error
}

type guruService struct {
	repo       repository.GuruRepository
	schoolRepo repository.SchoolRepository
}

func NewGuruService(repo repository.GuruRepository, schoolRepo repository.SchoolRepository) GuruService {
	return &guruService{repo: repo, schoolRepo: schoolRepo}
}

func (s *guruService) GetAll(ctx context.Context, filter model.GuruFilter) ([]*model.Guru, *response.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 10
	}

	gurus, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	return gurus, buildPagination(filter.Page, filter.PerPage, total), nil
}

func (s *guruService) GetByID(ctx context.Context, id string) (*model.Guru, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("ID tidak valid")
	}

	guru, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if guru == nil {
		return nil, ErrGuruNotFound
	}
	return guru, nil
}

func (s *guruService) Create(ctx context.Context, req model.SaveGuruRequest) (*model.Guru, error) {
	guru := &model.Guru{ID: uuid.New()}
	if err := s.apply(ctx, guru, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, guru); err != nil {
		return nil, err
	}
	return guru, nil
}

func (s *guruService) Update(ctx context.Context, id string, req model.SaveGuruRequest) (*model.Guru, error) {
	guru, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, guru, req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, guru); err != nil {
		return nil, err
	}
	return guru, nil
}

func (s *guruService) Delete(ctx context.Context, id string) error {
	guru, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, guru.ID)
}

// apply salin request ke model, validasi referensi madrasah bila diisi
func (s *guruService) apply(ctx context.Context, guru *model.Guru, req model.SaveGuruRequest) error {
	guru.FullName = req.FullName
	guru.NIP = req.NIP
	guru.NUPTK = req.NUPTK
	guru.NIK = req.NIK
	guru.BirthPlace = req.BirthPlace
	guru.BirthDate = req.BirthDate
	guru.LastEducation = req.LastEducation
	guru.EmployeeStatus = req.EmployeeStatus
	guru.Jabatan = req.Jabatan
	guru.TMT = req.TMT

	guru.SchoolID = nil
	if req.SchoolID != "" {
		schoolUID, err := uuid.Parse(req.SchoolID)
		if err != nil {
			return errors.New("school_id tidak valid")
		}
		school, err := s.schoolRepo.FindByID(ctx, schoolUID)
		if err != nil {
			return err
		}
		if school == nil {
			return ErrSchoolNotFound
		}
		guru.SchoolID = &schoolUID
	}
	return nil
}
