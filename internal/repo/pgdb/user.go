package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo/repo_errors"
	"reciclame-api/pkg/postgres"
)

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pgdb *postgres.Postgres) *UserRepo {
	return &UserRepo{pgdb}
}

func (r *UserRepo) GetUserByCpf(ctx context.Context, cpf string) (*entity.User, error) {
	getUserSql, args, _ := r.SqlBuilder.
		Select("g.id", "g.cpf", "p.nome", "g.nivel_acesso", "g.senha_hash").
		From("grupos_usuarios g").
		InnerJoin("pessoa p ON p.cpf = g.cpf").
		Where("g.cpf = ?", cpf).
		ToSql()

	var user entity.User
	err := r.Database.QueryRowContext(ctx, getUserSql, args...).
		Scan(&user.Id, &user.Cpf, &user.Nome, &user.NivelAcesso, &user.SenhaHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) CreateUser(ctx context.Context, cpf string, senhaHash string, nivelAcesso string) (int64, error) {
	createUserSql, args, _ := r.SqlBuilder.
		Insert("grupos_usuarios").
		Columns("cpf", "nivel_acesso", "senha_hash").
		Values(cpf, nivelAcesso, senhaHash).
		Suffix("RETURNING id").
		ToSql()

	var id int64
	if err := r.Database.QueryRowContext(ctx, createUserSql, args...).Scan(&id); err != nil {
		return 0, translateError(err)
	}

	return id, nil
}

func (r *UserRepo) UpdateNivelAcesso(ctx context.Context, cpf string, nivelAcesso string) error {
	updateSql, args, _ := r.SqlBuilder.
		Update("grupos_usuarios").
		Set("nivel_acesso", nivelAcesso).
		Where("cpf = ?", cpf).
		ToSql()

	result, err := r.Database.ExecContext(ctx, updateSql, args...)
	if err != nil {
		return err
	}

	return expectAffected(result)
}
