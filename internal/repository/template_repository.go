package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/simmaci/simmaci-backend/internal/model"
)

type TemplateRepository interface {
	Get(ctx context.Context, key string) (*model.SKTemplate, error)
	List(ctx context.Context) ([]*model.SKTemplate, error)
	Upsert(ctx context.Context, tpl *model.SKTemplate) error
	Delete(ctx context.Context, key string) error
}

type templateRepository struct {
	db *sqlx.DB
}

func NewTemplateRepository(db *sqlx.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Get(ctx context.Context, key string) (*model.SKTemplate, error) {
	var tpl model.SKTemplate
	err := r.db.GetContext(ctx, &tpl, "SELECT * FROM sk_templates WHERE key = $1", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // belum dikonfigurasi, bukan error
		}
		return nil, err
	}
	return &tpl, nil
}

func (r *templateRepository) List(ctx context.Context) ([]*model.SKTemplate, error) {
	var tpls []*model.SKTemplate
	// Kolom content tidak ikut; daftar hanya untuk halaman pengaturan
	err := r.db.SelectContext(ctx, &tpls,
		"SELECT key, file_name, mime_type, ''::bytea as content, file_url, updated_at FROM sk_templates ORDER BY key")
	return tpls, err
}

// Upsert: satu key hanya punya satu blob aktif; upload ulang menimpa.
func (r *templateRepository) Upsert(ctx context.Context, tpl *model.SKTemplate) error {
	query := `
		INSERT INTO sk_templates (key, file_name, mime_type, content, file_url, updated_at)
		VALUES (:key, :file_name, :mime_type, :content, :file_url, NOW())
		ON CONFLICT (key) DO UPDATE
		SET file_name = EXCLUDED.file_name, mime_type = EXCLUDED.mime_type,
		    content = EXCLUDED.content, file_url = EXCLUDED.file_url, updated_at = NOW()
	`
	_, err := r.db.NamedExecContext(ctx, query, tpl)
	return err
}

func (r *templateRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM sk_templates WHERE key = $1", key)
	return err
}
