package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo/repo_errors"
	"reciclame-api/pkg/postgres"
)

var coletaColumns = []string{"id_coleta", "data", "status", "cpf", "id_ponto"}

type ColetaRepo struct {
	*postgres.Postgres
}

func NewColetaRepo(pgdb *postgres.Postgres) *ColetaRepo {
	return &ColetaRepo{pgdb}
}

func (r *ColetaRepo) GetColetas(ctx context.Context) ([]entity.Coleta, error) {
	getColetasSql, args, _ := r.SqlBuilder.
		Select(coletaColumns...).
		From("coleta").
		OrderBy("data DESC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getColetasSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coletas := make([]entity.Coleta, 0)
	for rows.Next() {
		var c entity.Coleta
		if err := rows.Scan(&c.IdColeta, &c.Data, &c.Status, &c.Cpf, &c.IdPonto); err != nil {
			return nil, err
		}
		coletas = append(coletas, c)
	}

	return coletas, rows.Err()
}

func (r *ColetaRepo) GetColetaById(ctx context.Context, id int64) (*entity.Coleta, error) {
	getColetaSql, args, _ := r.SqlBuilder.
		Select(coletaColumns...).
		From("coleta").
		Where("id_coleta = ?", id).
		ToSql()

	var c entity.Coleta
	err := r.Database.QueryRowContext(ctx, getColetaSql, args...).
		Scan(&c.IdColeta, &c.Data, &c.Status, &c.Cpf, &c.IdPonto)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &c, nil
}

func (r *ColetaRepo) CreateColeta(ctx context.Context, coleta *entity.Coleta) (int64, error) {
	createColetaSql, args, _ := r.SqlBuilder.
		Insert("coleta").
		Columns("data", "status", "cpf", "id_ponto").
		Values(coleta.Data, coleta.Status, coleta.Cpf, coleta.IdPonto).
		Suffix("RETURNING id_coleta").
		ToSql()

	var id int64
	if err := r.Database.QueryRowContext(ctx, createColetaSql, args...).Scan(&id); err != nil {
		return 0, translateError(err)
	}

	return id, nil
}

func (r *ColetaRepo) UpdateColeta(ctx context.Context, id int64, changes map[string]any) error {
	return updateByKey(ctx, r.Postgres, entity.ColetaSchema, id, changes)
}

func (r *ColetaRepo) DeleteColeta(ctx context.Context, id int64) error {
	return deleteByKey(ctx, r.Postgres, entity.ColetaSchema.Table, entity.ColetaSchema.KeyColumn, id)
}

func (r *ColetaRepo) GetColetasResiduosByCpf(ctx context.Context, cpf string) ([]entity.ColetaResiduos, error) {
	getViewSql, args, _ := r.SqlBuilder.
		Select("id_coleta", "data", "status", "cpf", "nome_pessoa", "localizacao", "tipos_residuos",
			"peso_total", "pontos_coleta", "status_formatado", "data_formatada").
		From("view_coletas_pessoa").
		Where("cpf = ?", cpf).
		OrderBy("data DESC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getViewSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]entity.ColetaResiduos, 0)
	for rows.Next() {
		var c entity.ColetaResiduos
		err := rows.Scan(&c.IdColeta, &c.Data, &c.Status, &c.Cpf, &c.NomePessoa, &c.Localizacao,
			&c.TiposResiduos, &c.PesoTotal, &c.PontosColeta, &c.StatusFormatado, &c.DataFormatada)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}

	return result, rows.Err()
}
