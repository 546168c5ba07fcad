package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo/repo_errors"
	"reciclame-api/pkg/postgres"
)

// tipos_aceitos is derived from ponto_coleta_tipo.
const tiposAceitosColumn = `COALESCE((SELECT string_agg(t.nome, ', ' ORDER BY t.nome)
	FROM ponto_coleta_tipo pct JOIN tipo_residuo t ON t.id_tipo = pct.id_tipo
	WHERE pct.id_ponto = p.id_ponto), '') AS tipos_aceitos`

type PontoColetaRepo struct {
	*postgres.Postgres
}

func NewPontoColetaRepo(pgdb *postgres.Postgres) *PontoColetaRepo {
	return &PontoColetaRepo{pgdb}
}

func (r *PontoColetaRepo) GetPontosColeta(ctx context.Context) ([]entity.PontoColeta, error) {
	getPontosSql, args, _ := r.SqlBuilder.
		Select("p.id_ponto", "p.localizacao", "p.capacidade", tiposAceitosColumn).
		From("ponto_coleta p").
		OrderBy("p.id_ponto").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getPontosSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pontos := make([]entity.PontoColeta, 0)
	for rows.Next() {
		var p entity.PontoColeta
		if err := rows.Scan(&p.IdPonto, &p.Localizacao, &p.Capacidade, &p.TiposAceitos); err != nil {
			return nil, err
		}
		pontos = append(pontos, p)
	}

	return pontos, rows.Err()
}

func (r *PontoColetaRepo) GetPontoColetaById(ctx context.Context, id int64) (*entity.PontoColeta, error) {
	getPontoSql, args, _ := r.SqlBuilder.
		Select("p.id_ponto", "p.localizacao", "p.capacidade", tiposAceitosColumn).
		From("ponto_coleta p").
		Where("p.id_ponto = ?", id).
		ToSql()

	var ponto entity.PontoColeta
	err := r.Database.QueryRowContext(ctx, getPontoSql, args...).
		Scan(&ponto.IdPonto, &ponto.Localizacao, &ponto.Capacidade, &ponto.TiposAceitos)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &ponto, nil
}

func (r *PontoColetaRepo) CreatePontoColetaComTipo(ctx context.Context, input *entity.CreatePontoColetaInput) (int64, error) {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	tipoExistsSql, args, _ := r.SqlBuilder.
		Select("id_tipo").
		From("tipo_residuo").
		Where("id_tipo = ?", int64(input.Tipo)).
		RunWith(tx).
		ToSql()

	var idTipo int64
	if err = tx.QueryRowContext(ctx, tipoExistsSql, args...).Scan(&idTipo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, rollback(tx, repo_errors.ErrNotFound)
		}

		return 0, rollback(tx, err)
	}

	createPontoSql, args, _ := r.SqlBuilder.
		Insert("ponto_coleta").
		Columns("localizacao", "capacidade").
		Values(input.Localizacao, input.Capacidade.Int64Ptr()).
		Suffix("RETURNING id_ponto").
		RunWith(tx).
		ToSql()

	var idPonto int64
	if err = tx.QueryRowContext(ctx, createPontoSql, args...).Scan(&idPonto); err != nil {
		return 0, rollback(tx, translateError(err))
	}

	linkTipoSql, args, _ := r.SqlBuilder.
		Insert("ponto_coleta_tipo").
		Columns("id_ponto", "id_tipo").
		Values(idPonto, idTipo).
		RunWith(tx).
		ToSql()

	if _, err = tx.ExecContext(ctx, linkTipoSql, args...); err != nil {
		return 0, rollback(tx, translateError(err))
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	return idPonto, nil
}

func (r *PontoColetaRepo) UpdatePontoColeta(ctx context.Context, id int64, changes map[string]any) error {
	return updateByKey(ctx, r.Postgres, entity.PontoColetaSchema, id, changes)
}

func (r *PontoColetaRepo) DeletePontoColeta(ctx context.Context, id int64) error {
	return deleteByKey(ctx, r.Postgres, entity.PontoColetaSchema.Table, entity.PontoColetaSchema.KeyColumn, id)
}
