package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/simmaci/simmaci-backend/internal/model"
)

type GuruRepository interface {
	FindAll(ctx context.Context, filter model.GuruFilter) ([]*model.Guru, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Guru, error)
	Create(ctx context.Context, guru *model.Guru) error
	Update(ctx context.Context, guru *model.Guru) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type guruRepository struct {
	db *sqlx.DB
}

func NewGuruRepository(db *sqlx.DB) GuruRepository {
	return &guruRepository{db: db}
}

const guruSelect = `
	SELECT g.*, s.name as school_name, s.kecamatan as school_kecamatan
	FROM gurus g
	LEFT JOIN schools s ON g.school_id = s.id
`

func (r *guruRepository) FindAll(ctx context.Context, filter model.GuruFilter) ([]*model.Guru, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 10
	}

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(g.full_name ILIKE $%d OR g.nip ILIKE $%d OR g.nuptk ILIKE $%d)", argIdx, argIdx+1, argIdx+2))
		search := "%" + filter.Search + "%"
		args = append(args, search, search, search)
		argIdx += 3
	}
	if filter.SchoolID != "" {
		conditions = append(conditions, fmt.Sprintf("g.school_id = $%d", argIdx))
		args = append(args, filter.SchoolID)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("g.employee_status ILIKE $%d", argIdx))
		args = append(args, "%"+filter.Status+"%")
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM gurus g WHERE %s", where), args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	query := fmt.Sprintf(`%s WHERE %s ORDER BY g.full_name ASC LIMIT $%d OFFSET $%d`,
		guruSelect, where, argIdx, argIdx+1)
	args = append(args, filter.PerPage, offset)

	var gurus []*model.Guru
	if err := r.db.SelectContext(ctx, &gurus, query, args...); err != nil {
		return nil, 0, err
	}

	return gurus, total, nil
}

func (r *guruRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Guru, error) {
	var guru model.Guru
	err := r.db.GetContext(ctx, &guru, guruSelect+" WHERE g.id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &guru, nil
}

func (r *guruRepository) Create(ctx context.Context, guru *model.Guru) error {
	query := `
		INSERT INTO gurus (id, full_name, nip, nuptk, nik, birth_place, birth_date,
		                   last_education, employee_status, jabatan, school_id, tmt,
		                   created_at, updated_at)
		VALUES (:id, :full_name, :nip, :nuptk, :nik, :birth_place, :birth_date,
		        :last_education, :employee_status, :jabatan, :school_id, :tmt,
		        NOW(), NOW())
	`
	_, err := r.db.NamedExecContext(ctx, query, guru)
	return err
}

func (r *guruRepository) Update(ctx context.Context, guru *model.Guru) error {
	query := `
		UPDATE gurus
		SET full_name = :full_name, nip = :nip, nuptk = :nuptk, nik = :nik,
		    birth_place = :birth_place, birth_date = :birth_date,
		    last_education = :last_education, employee_status = :employee_status,
		    jabatan = :jabatan, school_id = :school_id, tmt = :tmt, updated_at = NOW()
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, guru)
	return err
}

func (r *guruRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM gurus WHERE id = $1", id)
	return err
}
