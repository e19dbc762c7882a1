package service

import (
	"context"
	"errors"
	"strings"

	"github.com/simmaci/simmaci-backend/internal/config"
	"github.com/simmaci/simmaci-backend/internal/model"
	"github.com/simmaci/simmaci-backend/internal/renderer"
	"github.com/simmaci/simmaci-backend/internal/repository"
)

type SettingsService interface {
	Get(ctx context.Context) (*model.RenderSettings, error)
	Update(ctx context.Context, req model.UpdateSettingsRequest) (*model.RenderSettings, error)

	// Configuration membaca pengaturan sekali di batas pemanggilan dan
	// melengkapi field kosong dengan default dari env.
	Configuration(ctx context.Context) (renderer.Configuration, error)
}

type settingsService struct {
	repo repository.SettingsRepository
	cfg  *config.Config
}

func NewSettingsService(repo repository.SettingsRepository, cfg *config.Config) SettingsService {
	return &settingsService{repo: repo, cfg: cfg}
}

func (s *settingsService) Get(ctx context.Context) (*model.RenderSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		// Belum pernah diisi: tampilkan default dari env
		settings = &model.RenderSettings{
			ID:               1,
			NumberFormat:     s.cfg.Render.NumberFormat,
			KetuaName:        s.cfg.Render.KetuaName,
			SekretarisName:   s.cfg.Render.SekretarisName,
			AcademicYear:     s.cfg.Render.AcademicYear,
			DefaultKecamatan: s.cfg.Render.DefaultKecamatan,
		}
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, req model.UpdateSettingsRequest) (*model.RenderSettings, error) {
	if strings.TrimSpace(req.NumberFormat) == "" {
		return nil, errors.New("format nomor wajib diisi")
	}

	settings := &model.RenderSettings{
		ID:               1,
		NumberFormat:     req.NumberFormat,
		KetuaName:        req.KetuaName,
		SekretarisName:   req.SekretarisName,
		AcademicYear:     req.AcademicYear,
		DefaultKecamatan: req.DefaultKecamatan,
	}
	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx)
}

func (s *settingsService) Configuration(ctx context.Context) (renderer.Configuration, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return renderer.Configuration{}, err
	}

	cfg := renderer.Configuration{
		AppOrigin:        s.cfg.Render.AppOrigin,
		NumberFormat:     settings.NumberFormat,
		KetuaName:        settings.KetuaName,
		SekretarisName:   settings.SekretarisName,
		AcademicYear:     settings.AcademicYear,
		DefaultKecamatan: settings.DefaultKecamatan,
	}
	if cfg.NumberFormat == "" {
		cfg.NumberFormat = s.cfg.Render.NumberFormat
	}
	return cfg, nil
}
