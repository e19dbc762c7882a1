package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/simmaci/simmaci-backend/internal/model"
	"github.com/simmaci/simmaci-backend/internal/repository"
	"github.com/simmaci/simmaci-backend/internal/response"
)

var ErrSchoolNotFound = errors.New("madrasah tidak ditemukan")

type SchoolService interface {
	GetAll(ctx context.Context, filter model.SchoolFilter) ([]*model.School, *response.Pagination, error)
	GetByID(ctx context.Context, id string) (*model.School, error)
	Create(ctx context.Context, req model.SaveSchoolRequest) (*model.School, error)
	Update(ctx context.Context, id string, req model.SaveSchoolRequest) (*model.School, error)
	Delete(ctx context.Context, id string) error
}

type schoolService struct {
	repo repository.SchoolRepository
}

func NewSchoolService(repo repository.SchoolRepository) SchoolService {
	return &schoolService{repo: repo}
}

func (s *schoolService) GetAll(ctx context.Context, filter model.SchoolFilter) ([]*model.School, *response.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 10
	}

	schools, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	return schools, buildPagination(filter.Page, filter.PerPage, total), nil
}

func (s *schoolService) GetByID(ctx context.Context, id string) (*model.School, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("ID tidak valid")
	}

	school, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if school == nil {
		return nil, ErrSchoolNotFound
	}
	return school, nil
}

func (s *schoolService) Create(ctx context.Context, req model.SaveSchoolRequest) (*model.School, error) {
	school := &model.School{
		ID:        uuid.New(),
		Name:      req.Name,
		NSM:       req.NSM,
		Kecamatan: req.Kecamatan,
		Address:   req.Address,
	}

	if err := s.repo.Create(ctx, school); err != nil {
		return nil, err
	}
	return school, nil
}

func (s *schoolService) Update(ctx context.Context, id string, req model.SaveSchoolRequest) (*model.School, error) {
	school, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	school.Name = req.Name
	school.NSM = req.NSM
	school.Kecamatan = req.Kecamatan
	school.Address = req.Address

	if err := s.repo.Update(ctx, school); err != nil {
		return nil, err
	}
	return school, nil
}

func (s *schoolService) Delete(ctx context.Context, id string) error {
	school, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, school.ID)
}

// buildPagination dipakai semua service list
func buildPagination(page, perPage int, total int64) *response.Pagination {
	totalPages := int(total) / perPage
	if int(total)%perPage > 0 {
		totalPages++
	}
	return &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
