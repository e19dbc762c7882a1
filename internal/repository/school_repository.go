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

type SchoolRepository interface {
	FindAll(ctx context.Context, filter model.SchoolFilter) ([]*model.School, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.School, error)
	Create(ctx context.Context, school *model.School) error
	Update(ctx context.Context, school *model.School) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type schoolRepository struct {
	db *sqlx.DB
}

func NewSchoolRepository(db *sqlx.DB) SchoolRepository {
	return &schoolRepository{db: db}
}

func (r *schoolRepository) FindAll(ctx context.Context, filter model.SchoolFilter) ([]*model.School, int64, error) {
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
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR nsm ILIKE $%d)", argIdx, argIdx+1))
		search := "%" + filter.Search + "%"
		args = append(args, search, search)
		argIdx += 2
	}
	if filter.Kecamatan != "" {
		conditions = append(conditions, fmt.Sprintf("kecamatan = $%d", argIdx))
		args = append(args, filter.Kecamatan)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM schools WHERE %s", where), args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	query := fmt.Sprintf(`
		SELECT * FROM schools
		WHERE %s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.PerPage, offset)

	var schools []*model.School
	if err := r.db.SelectContext(ctx, &schools, query, args...); err != nil {
		return nil, 0, err
	}

	return schools, total, nil
}

func (r *schoolRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.School, error) {
	var school model.School
	err := r.db.GetContext(ctx, &school, "SELECT * FROM schools WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &school, nil
}

func (r *schoolRepository) Create(ctx context.Context, school *model.School) error {
	query := `
		INSERT INTO schools (id, name, nsm, kecamatan, address, created_at, updated_at)
		VALUES (:id, :name, :nsm, :kecamatan, :address, NOW(), NOW())
	`
	_, err := r.db.NamedExecContext(ctx, query, school)
	return err
}

func (r *schoolRepository) Update(ctx context.Context, school *model.School) error {
	query := `
		UPDATE schools
		SET name = :name, nsm = :nsm, kecamatan = :kecamatan, address = :address, updated_at = NOW()
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, school)
	return err
}

func (r *schoolRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM schools WHERE id = $1", id)
	return err
}
