package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo/repo_errors"
	"reciclame-api/pkg/postgres"
)

type TipoResiduoRepo struct {
	*postgres.Postgres
}

func NewTipoResiduoRepo(pgdb *postgres.Postgres) *TipoResiduoRepo {
	return &TipoResiduoRepo{pgdb}
}

func (r *TipoResiduoRepo) GetTiposResiduos(ctx context.Context) ([]entity.TipoResiduo, error) {
	getTiposSql, args, _ := r.SqlBuilder.
		Select("id_tipo", "nome", "descricao").
		From("tipo_residuo").
		OrderBy("nome").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getTiposSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tipos := make([]entity.TipoResiduo, 0)
	for rows.Next() {
		var t entity.TipoResiduo
		if err := rows.Scan(&t.IdTipo, &t.Nome, &t.Descricao); err != nil {
			return nil, err
		}
		tipos = append(tipos, t)
	}

	return tipos, rows.Err()
}

func (r *TipoResiduoRepo) GetTipoResiduoById(ctx context.Context, id int64) (*entity.TipoResiduo, error) {
	getTipoSql, args, _ := r.SqlBuilder.
		Select("id_tipo", "nome", "descricao").
		From("tipo_residuo").
		Where("id_tipo = ?", id).
		ToSql()

	var tipo entity.TipoResiduo
	err := r.Database.QueryRowContext(ctx, getTipoSql, args...).Scan(&tipo.IdTipo, &tipo.Nome, &tipo.Descricao)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &tipo, nil
}

func (r *TipoResiduoRepo) CreateTipoResiduo(ctx context.Context, input *entity.CreateTipoResiduoInput) (int64, error) {
	createTipoSql, args, _ := r.SqlBuilder.
		Insert("tipo_residuo").
		Columns("nome", "descricao").
		Values(input.Nome, input.Descricao).
		Suffix("RETURNING id_tipo").
		ToSql()

	var id int64
	if err := r.Database.QueryRowContext(ctx, createTipoSql, args...).Scan(&id); err != nil {
		return 0, translateError(err)
	}

	return id, nil
}

func (r *TipoResiduoRepo) UpdateTipoResiduo(ctx context.Context, id int64, changes map[string]any) error {
	return updateByKey(ctx, r.Postgres, entity.TipoResiduoSchema, id, changes)
}

func (r *TipoResiduoRepo) DeleteTipoResiduo(ctx context.Context, id int64) error {
	return deleteByKey(ctx, r.Postgres, entity.TipoResiduoSchema.Table, entity.TipoResiduoSchema.KeyColumn, id)
}
