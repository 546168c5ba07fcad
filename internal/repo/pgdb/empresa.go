package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo/repo_errors"
	"reciclame-api/pkg/postgres"
)

type EmpresaRepo struct {
	*postgres.Postgres
}

func NewEmpresaRepo(pgdb *postgres.Postgres) *EmpresaRepo {
	return &EmpresaRepo{pgdb}
}

func (r *EmpresaRepo) GetEmpresas(ctx context.Context) ([]entity.Empresa, error) {
	getEmpresasSql, args, _ := r.SqlBuilder.
		Select("cnpj", "razao_social", "area_atuacao").
		From("empresa").
		OrderBy("razao_social").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getEmpresasSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	empresas := make([]entity.Empresa, 0)
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(&e.Cnpj, &e.RazaoSocial, &e.AreaAtuacao); err != nil {
			return nil, err
		}
		empresas = append(empresas, e)
	}

	return empresas, rows.Err()
}

func (r *EmpresaRepo) GetEmpresaByCnpj(ctx context.Context, cnpj string) (*entity.Empresa, error) {
	getEmpresaSql, args, _ := r.SqlBuilder.
		Select("cnpj", "razao_social", "area_atuacao").
		From("empresa").
		Where("cnpj = ?", cnpj).
		ToSql()

	var empresa entity.Empresa
	err := r.Database.QueryRowContext(ctx, getEmpresaSql, args...).
		Scan(&empresa.Cnpj, &empresa.RazaoSocial, &empresa.AreaAtuacao)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &empresa, nil
}

func (r *EmpresaRepo) CreateEmpresa(ctx context.Context, input *entity.CreateEmpresaInput) error {
	createEmpresaSql, args, _ := r.SqlBuilder.
		Insert("empresa").
		Columns("cnpj", "razao_social", "area_atuacao").
		Values(input.Cnpj, input.RazaoSocial, input.AreaAtuacao).
		ToSql()

	if _, err := r.Database.ExecContext(ctx, createEmpresaSql, args...); err != nil {
		return translateError(err)
	}

	return nil
}

func (r *EmpresaRepo) UpdateEmpresa(ctx context.Context, cnpj string, changes map[string]any) error {
	return updateByKey(ctx, r.Postgres, entity.EmpresaSchema, cnpj, changes)
}

func (r *EmpresaRepo) DeleteEmpresa(ctx context.Context, cnpj string) error {
	return deleteByKey(ctx, r.Postgres, entity.EmpresaSchema.Table, entity.EmpresaSchema.KeyColumn, cnpj)
}
