package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/simmaci/simmaci-backend/internal/model"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*model.RenderSettings, error)
	Update(ctx context.Context, s *model.RenderSettings) error
}

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get ambil baris pengaturan tunggal; nil bila belum pernah diisi.
func (r *settingsRepository) Get(ctx context.Context) (*model.RenderSettings, error) {
	var s model.RenderSettings
	err := r.db.GetContext(ctx, &s, "SELECT * FROM render_settings WHERE id = 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Update(ctx context.Context, s *model.RenderSettings) error {
	query := `
		INSERT INTO render_settings (id, number_format, ketua_name, sekretaris_name,
		                             academic_year, default_kecamatan, updated_at)
		VALUES (1, :number_format, :ketua_name, :sekretaris_name,
		        :academic_year, :default_kecamatan, NOW())
		ON CONFLICT (id) DO UPDATE
		SET number_format = EXCLUDED.number_format,
		    ketua_name = EXCLUDED.ketua_name,
		    sekretaris_name = EXCLUDED.sekretaris_name,
		    academic_year = EXCLUDED.academic_year,
		    default_kecamatan = EXCLUDED.default_kecamatan,
		    updated_at = NOW()
	`
	_, err := r.db.NamedExecContext(ctx, query, s)
	return err
}
