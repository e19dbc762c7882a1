package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/simmaci/simmaci-backend/internal/model"
)

type SKRepository interface {
	FindAll(ctx context.Context, filter model.SKFilter) ([]*model.SKDocument, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.SKDocument, error)
	FindByIDWithDetail(ctx context.Context, id uuid.UUID) (*model.SKDetail, error)
	Create(ctx context.Context, doc *model.SKDocument) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, approvedAt *time.Time) error
	UpdateNomor(ctx context.Context, id uuid.UUID, nomor string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type skRepository struct {
	db *sqlx.DB
}

func NewSKRepository(db *sqlx.DB) SKRepository {
	return &skRepository{db: db}
}

const skSelect = `
	SELECT d.*, g.full_name as guru_name, s.name as school_name
	FROM sk_documents d
	LEFT JOIN gurus g ON d.guru_id = g.id
	LEFT JOIN schools s ON d.school_id = s.id
`

func (r *skRepository) FindAll(ctx context.Context, filter model.SKFilter) ([]*model.SKDocument, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 10
	}

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.JenisSK != "" {
		conditions = append(conditions, fmt.Sprintf("d.jenis_sk ILIKE $%d", argIdx))
		args = append(args, "%"+filter.JenisSK+"%")
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("d.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.SchoolID != "" {
		conditions = append(conditions, fmt.Sprintf("d.school_id = $%d", argIdx))
		args = append(args, filter.SchoolID)
		argIdx++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(g.full_name ILIKE $%d OR d.nomor_sk ILIKE $%d)", argIdx, argIdx+1))
		search := "%" + filter.Search + "%"
		args = append(args, search, search)
		argIdx += 2
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*) FROM sk_documents d
		LEFT JOIN gurus g ON d.guru_id = g.id
		WHERE %s
	`, where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	query := fmt.Sprintf("%s WHERE %s ORDER BY d.created_at DESC LIMIT $%d OFFSET $%d",
		skSelect, where, argIdx, argIdx+1)
	args = append(args, filter.PerPage, offset)

	var docs []*model.SKDocument
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

func (r *skRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SKDocument, error) {
	var doc model.SKDocument
	err := r.db.GetContext(ctx, &doc, skSelect+" WHERE d.id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (r *skRepository) FindByIDWithDetail(ctx context.Context, id uuid.UUID) (*model.SKDetail, error) {
	doc, err := r.FindByID(ctx, id)
	if err != nil || doc == nil {
		return nil, err
	}

	// Subjek SK; unit kerja ikut lewat join
	var guru model.Guru
	if err := r.db.GetContext(ctx, &guru,
		"SELECT g.*, s.name as school_name, s.kecamatan as school_kecamatan FROM gurus g LEFT JOIN schools s ON g.school_id = s.id WHERE g.id = $1",
		doc.GuruID); err != nil {
		return nil, err
	}

	detail := &model.SKDetail{SKDocument: *doc, Guru: &guru}

	// Unit kerja pada dokumen menang atas unit induk guru
	schoolID := doc.SchoolID
	if schoolID == nil {
		schoolID = guru.SchoolID
	}
	if schoolID != nil {
		var school model.School
		err := r.db.GetContext(ctx, &school, "SELECT * FROM schools WHERE id = $1", *schoolID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		if err == nil {
			detail.School = &school
		}
	}

	return detail, nil
}

func (r *skRepository) Create(ctx context.Context, doc *model.SKDocument) error {
	query := `
		INSERT INTO sk_documents (id, jenis_sk, guru_id, school_id, nomor_sk, status,
		                          tmt, akhir_tugas, valid_until, notes, created_by,
		                          created_at, updated_at)
		VALUES (:id, :jenis_sk, :guru_id, :school_id, :nomor_sk, :status,
		        :tmt, :akhir_tugas, :valid_until, :notes, :created_by,
		        NOW(), NOW())
	`
	_, err := r.db.NamedExecContext(ctx, query, doc)
	return err
}

func (r *skRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, approvedAt *time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE sk_documents SET status = $1, approved_at = COALESCE($2, approved_at), updated_at = NOW() WHERE id = $3",
		status, approvedAt, id)
	return err
}

// UpdateNomor menyimpan nomor terformat hasil generate. Hanya mengisi bila
// masih kosong supaya generate ulang tidak menimpa nomor yang sudah terbit.
func (r *skRepository) UpdateNomor(ctx context.Context, id uuid.UUID, nomor string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE sk_documents SET nomor_sk = $1, updated_at = NOW() WHERE id = $2 AND (nomor_sk IS NULL OR nomor_sk = '')",
		nomor, id)
	return err
}

func (r *skRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM sk_documents WHERE id = $1", id)
	return err
}
