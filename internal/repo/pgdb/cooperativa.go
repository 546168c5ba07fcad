package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo/repo_errors"
	"reciclame-api/pkg/postgres"
)

var cooperativaColumns = []string{
	"id_coop", "nome", "endereco_rua", "endereco_numero", "endereco_bairro",
	"endereco_cidade", "endereco_uf", "capacidade_processamento",
}

type CooperativaRepo struct {
	*postgres.Postgres
}

func NewCooperativaRepo(pgdb *postgres.Postgres) *CooperativaRepo {
	return &CooperativaRepo{pgdb}
}

func scanCooperativa(row interface{ Scan(...any) error }, c *entity.Cooperativa) error {
	return row.Scan(&c.IdCoop, &c.Nome, &c.EnderecoRua, &c.EnderecoNumero, &c.EnderecoBairro,
		&c.EnderecoCidade, &c.EnderecoUf, &c.CapacidadeProcessamento)
}

func (r *CooperativaRepo) GetCooperativas(ctx context.Context) ([]entity.Cooperativa, error) {
	getCooperativasSql, args, _ := r.SqlBuilder.
		Select(cooperativaColumns...).
		From("cooperativa").
		OrderBy("id_coop").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getCooperativasSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cooperativas := make([]entity.Cooperativa, 0)
	for rows.Next() {
		var c entity.Cooperativa
		if err := scanCooperativa(rows, &c); err != nil {
			return nil, err
		}
		cooperativas = append(cooperativas, c)
	}

	return cooperativas, rows.Err()
}

func (r *CooperativaRepo) GetCooperativaById(ctx context.Context, id int64) (*entity.Cooperativa, error) {
	getCooperativaSql, args, _ := r.SqlBuilder.
		Select(cooperativaColumns...).
		From("cooperativa").
		Where("id_coop = ?", id).
		ToSql()

	var cooperativa entity.Cooperativa
	err := scanCooperativa(r.Database.QueryRowContext(ctx, getCooperativaSql, args...), &cooperativa)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &cooperativa, nil
}

func (r *CooperativaRepo) CreateCooperativa(ctx context.Context, input *entity.CreateCooperativaInput) (int64, error) {
	createCooperativaSql, args, _ := r.SqlBuilder.
		Insert("cooperativa").
		Columns(cooperativaColumns[1:]...).
		Values(input.Nome, input.EnderecoRua, input.EnderecoNumero, input.EnderecoBairro,
			input.EnderecoCidade, input.EnderecoUf, input.CapacidadeProcessamento).
		Suffix("RETURNING id_coop").
		ToSql()

	var id int64
	if err := r.Database.QueryRowContext(ctx, createCooperativaSql, args...).Scan(&id); err != nil {
		return 0, translateError(err)
	}

	return id, nil
}

func (r *CooperativaRepo) UpdateCooperativa(ctx context.Context, id int64, changes map[string]any) error {
	return updateByKey(ctx, r.Postgres, entity.CooperativaSchema, id, changes)
}

func (r *CooperativaRepo) DeleteCooperativa(ctx context.Context, id int64) error {
	return deleteByKey(ctx, r.Postgres, entity.CooperativaSchema.Table, entity.CooperativaSchema.KeyColumn, id)
}
