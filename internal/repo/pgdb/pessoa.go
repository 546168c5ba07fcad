package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo/repo_errors"
	"reciclame-api/pkg/postgres"
)

var pessoaColumns = []string{
	"cpf", "nome", "endereco_rua", "endereco_numero", "endereco_bairro",
	"endereco_cidade", "endereco_uf", "data_nascimento", "telefone", "email",
}

type PessoaRepo struct {
	*postgres.Postgres
}

func NewPessoaRepo(pgdb *postgres.Postgres) *PessoaRepo {
	return &PessoaRepo{pgdb}
}

func scanPessoa(row interface{ Scan(...any) error }, p *entity.Pessoa) error {
	return row.Scan(&p.Cpf, &p.Nome, &p.EnderecoRua, &p.EnderecoNumero, &p.EnderecoBairro,
		&p.EnderecoCidade, &p.EnderecoUf, &p.DataNascimento, &p.Telefone, &p.Email)
}

func (r *PessoaRepo) GetPessoas(ctx context.Context) ([]entity.Pessoa, error) {
	getPessoasSql, args, _ := r.SqlBuilder.
		Select(pessoaColumns...).
		From("pessoa").
		OrderBy("nome").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getPessoasSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pessoas := make([]entity.Pessoa, 0)
	for rows.Next() {
		var p entity.Pessoa
		if err := scanPessoa(rows, &p); err != nil {
			return nil, err
		}
		pessoas = append(pessoas, p)
	}

	return pessoas, rows.Err()
}

func (r *PessoaRepo) GetPessoaByCpf(ctx context.Context, cpf string) (*entity.Pessoa, error) {
	getPessoaSql, args, _ := r.SqlBuilder.
		Select(pessoaColumns...).
		From("pessoa").
		Where("cpf = ?", cpf).
		ToSql()

	var pessoa entity.Pessoa
	err := scanPessoa(r.Database.QueryRowContext(ctx, getPessoaSql, args...), &pessoa)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &pessoa, nil
}

func (r *PessoaRepo) CreatePessoa(ctx context.Context, input *entity.CreatePessoaInput) error {
	createPessoaSql, args, _ := r.SqlBuilder.
		Insert("pessoa").
		Columns(pessoaColumns...).
		Values(input.Cpf, input.Nome, input.EnderecoRua, input.EnderecoNumero, input.EnderecoBairro,
			input.EnderecoCidade, input.EnderecoUf, input.DataNascimento, input.Telefone, input.Email).
		ToSql()

	if _, err := r.Database.ExecContext(ctx, createPessoaSql, args...); err != nil {
		return translateError(err)
	}

	return nil
}

func (r *PessoaRepo) UpdatePessoa(ctx context.Context, cpf string, changes map[string]any) error {
	return updateByKey(ctx, r.Postgres, entity.PessoaSchema, cpf, changes)
}

func (r *PessoaRepo) DeletePessoa(ctx context.Context, cpf string) error {
	return deleteByKey(ctx, r.Postgres, entity.PessoaSchema.Table, entity.PessoaSchema.KeyColumn, cpf)
}
