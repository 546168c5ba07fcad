package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo/repo_errors"
	"reciclame-api/pkg/postgres"
)

var residuoColumns = []string{"id_residuo", "id_tipo", "peso", "data_registro", "id_coop", "cnpj_empresa"}

type ResiduoRepo struct {
	*postgres.Postgres
}

func NewResiduoRepo(pgdb *postgres.Postgres) *ResiduoRepo {
	return &ResiduoRepo{pgdb}
}

func scanResiduo(row interface{ Scan(...any) error }, r *entity.Residuo) error {
	return row.Scan(&r.IdResiduo, &r.IdTipo, &r.Peso, &r.DataRegistro, &r.IdCoop, &r.CnpjEmpresa)
}

func (r *ResiduoRepo) GetResiduos(ctx context.Context) ([]entity.Residuo, error) {
	getResiduosSql, args, _ := r.SqlBuilder.
		Select(residuoColumns...).
		From("residuo").
		OrderBy("id_residuo").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getResiduosSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	residuos := make([]entity.Residuo, 0)
	for rows.Next() {
		var res entity.Residuo
		if err := scanResiduo(rows, &res); err != nil {
			return nil, err
		}
		residuos = append(residuos, res)
	}

	return residuos, rows.Err()
}

func (r *ResiduoRepo) GetResiduoById(ctx context.Context, id int64) (*entity.Residuo, error) {
	getResiduoSql, args, _ := r.SqlBuilder.
		Select(residuoColumns...).
		From("residuo").
		Where("id_residuo = ?", id).
		ToSql()

	var residuo entity.Residuo
	if err := scanResiduo(r.Database.QueryRowContext(ctx, getResiduoSql, args...), &residuo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &residuo, nil
}

// RegisterResiduo stores the residue, links it to the collection and marks the collection as completed.
func (r *ResiduoRepo) RegisterResiduo(ctx context.Context, input *entity.RegisterResiduoInput) (int64, error) {
	pesoColetado := float64(input.Peso)
	if input.PesoColetado != nil {
		pesoColetado = float64(*input.PesoColetado)
	}

	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	lockColetaSql, args, _ := r.SqlBuilder.
		Select("id_coleta").
		From("coleta").
		Where("id_coleta = ?", int64(input.IdColeta)).
		Suffix("FOR UPDATE").
		RunWith(tx).
		ToSql()

	var idColeta int64
	if err = tx.QueryRowContext(ctx, lockColetaSql, args...).Scan(&idColeta); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, rollback(tx, repo_errors.ErrNotFound)
		}

		return 0, rollback(tx, err)
	}

	createResiduoSql, args, _ := r.SqlBuilder.
		Insert("residuo").
		Columns("id_tipo", "peso", "id_coop", "cnpj_empresa").
		Values(int64(input.IdTipo), float64(input.Peso), input.IdCoop.Int64Ptr(), input.CnpjEmpresa).
		Suffix("RETURNING id_residuo").
		RunWith(tx).
		ToSql()

	var idResiduo int64
	if err = tx.QueryRowContext(ctx, createResiduoSql, args...).Scan(&idResiduo); err != nil {
		return 0, rollback(tx, translateError(err))
	}

	linkSql, args, _ := r.SqlBuilder.
		Insert("coleta_residuo").
		Columns("id_coleta", "id_residuo", "peso_coletado").
		Values(idColeta, idResiduo, pesoColetado).
		RunWith(tx).
		ToSql()

	if _, err = tx.ExecContext(ctx, linkSql, args...); err != nil {
		return 0, rollback(tx, translateError(err))
	}

	finishColetaSql, args, _ := r.SqlBuilder.
		Update("coleta").
		Set("status", entity.ColetaConcluida).
		Where("id_coleta = ?", idColeta).
		RunWith(tx).
		ToSql()

	result, err := tx.ExecContext(ctx, finishColetaSql, args...)
	if err != nil {
		return 0, rollback(tx, err)
	}
	if err = expectAffected(result); err != nil {
		return 0, rollback(tx, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	return idResiduo, nil
}

func (r *ResiduoRepo) UpdateResiduo(ctx context.Context, id int64, changes map[string]any) error {
	return updateByKey(ctx, r.Postgres, entity.ResiduoSchema, id, changes)
}

func (r *ResiduoRepo) DeleteResiduo(ctx context.Context, id int64) error {
	return deleteByKey(ctx, r.Postgres, entity.ResiduoSchema.Table, entity.ResiduoSchema.KeyColumn, id)
}
