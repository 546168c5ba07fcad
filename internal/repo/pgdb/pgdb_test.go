package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/patch"
	"reciclame-api/internal/repo/repo_errors"
	"reciclame-api/pkg/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func newMock(t *testing.T) (*postgres.Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		db.Close()
	})
	return postgres.New(db), mock
}

func q(s string) string {
	return regexp.QuoteMeta(s)
}

func TestPessoaRepo_GetPessoaByCpf(t *testing.T) {
	p, mock := newMock(t)
	repo := NewPessoaRepo(p)

	cols := []string{"cpf", "nome", "endereco_rua", "endereco_numero", "endereco_bairro",
		"endereco_cidade", "endereco_uf", "data_nascimento", "telefone", "email"}
	mock.ExpectQuery(q("SELECT cpf, nome, endereco_rua, endereco_numero, endereco_bairro, endereco_cidade, endereco_uf, data_nascimento, telefone, email FROM pessoa WHERE cpf = $1")).
		WithArgs("12345678900").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			"12345678900", "Maria", "Rua A", nil, nil, "Recife", "PE",
			time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC), nil, "maria@example.com"))

	got, err := repo.GetPessoaByCpf(context.Background(), "12345678900")
	if err != nil {
		t.Fatalf("GetPessoaByCpf: %v", err)
	}
	if got.Nome != "Maria" || got.EnderecoUf == nil || *got.EnderecoUf != "PE" {
		t.Errorf("unexpected pessoa %+v", got)
	}
	if got.EnderecoNumero != nil {
		t.Errorf("EnderecoNumero = %v, expected nil", *got.EnderecoNumero)
	}
	if got.DataNascimento == nil || got.DataNascimento.String() != "1990-03-15" {
		t.Errorf("DataNascimento = %v", got.DataNascimento)
	}
}

func TestPessoaRepo_GetPessoaByCpf_NotFound(t *testing.T) {
	p, mock := newMock(t)
	repo := NewPessoaRepo(p)

	mock.ExpectQuery(q("FROM pessoa WHERE cpf = $1")).
		WithArgs("000").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetPessoaByCpf(context.Background(), "000")
	if !errors.Is(err, repo_errors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateByKey(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "row updated", affected: 1},
		{name: "no such row", affected: 0, wantErr: repo_errors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, mock := newMock(t)
			repo := NewPessoaRepo(p)

			mock.ExpectExec(q("UPDATE pessoa SET email = $1, nome = $2 WHERE cpf = $3")).
				WithArgs("ana@example.com", "Ana", "12345678900").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.UpdatePessoa(context.Background(), "12345678900", map[string]any{
				"nome":  "Ana",
				"email": "ana@example.com",
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("UpdatePessoa() error = %v, expected %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateByKey_NoChanges(t *testing.T) {
	p, _ := newMock(t)

	err := NewEmpresaRepo(p).UpdateEmpresa(context.Background(), "12345678000199", nil)
	if !errors.Is(err, patch.ErrNoFields) {
		t.Errorf("expected ErrNoFields, got %v", err)
	}
}

func TestDeleteByKey(t *testing.T) {
	p, mock := newMock(t)
	repo := NewCooperativaRepo(p)

	mock.ExpectExec(q("DELETE FROM cooperativa WHERE id_coop = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q("DELETE FROM cooperativa WHERE id_coop = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteCooperativa(context.Background(), 4); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.DeleteCooperativa(context.Background(), 4); !errors.Is(err, repo_errors.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestEmpresaRepo_CreateEmpresa_Duplicate(t *testing.T) {
	p, mock := newMock(t)
	repo := NewEmpresaRepo(p)

	mock.ExpectExec(q("INSERT INTO empresa (cnpj,razao_social,area_atuacao) VALUES ($1,$2,$3)")).
		WithArgs("12345678000199", "Eco Ltda", nil).
		WillReturnError(&pq.Error{Code: "23505", Detail: "Key (cnpj) already exists."})

	err := repo.CreateEmpresa(context.Background(), &entity.CreateEmpresaInput{
		Cnpj:        "12345678000199",
		RazaoSocial: "Eco Ltda",
	})
	if !errors.Is(err, repo_errors.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "pq unique", err: &pq.Error{Code: "23505"}, want: repo_errors.ErrAlreadyExists},
		{name: "pq foreign key", err: &pq.Error{Code: "23503"}, want: repo_errors.ErrInvalidReference},
		{name: "pgx unique", err: &pgconn.PgError{Code: "23505"}, want: repo_errors.ErrAlreadyExists},
		{name: "pgx foreign key", err: &pgconn.PgError{Code: "23503"}, want: repo_errors.ErrInvalidReference},
		{name: "pq value too long", err: &pq.Error{Code: "22001"}, want: repo_errors.ErrInvalidValue},
		{name: "pq numeric overflow", err: &pq.Error{Code: "22003"}, want: repo_errors.ErrInvalidValue},
		{name: "pq check", err: &pq.Error{Code: "23514"}, want: repo_errors.ErrInvalidValue},
		{name: "pq not null", err: &pq.Error{Code: "23502"}, want: repo_errors.ErrInvalidValue},
		{name: "pgx value too long", err: &pgconn.PgError{Code: "22001"}, want: repo_errors.ErrInvalidValue},
		{name: "pgx bad text representation", err: &pgconn.PgError{Code: "22P02"}, want: repo_errors.ErrInvalidValue},
		{name: "pgx check", err: &pgconn.PgError{Code: "23514"}, want: repo_errors.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateError(tt.err); !errors.Is(got, tt.want) {
				t.Errorf("translateError() = %v, expected %v", got, tt.want)
			}
		})
	}

	plain := errors.New("connection reset")
	if got := translateError(plain); got != plain {
		t.Errorf("unrelated error was rewritten: %v", got)
	}
}

func TestPontoColetaRepo_CreatePontoColetaComTipo(t *testing.T) {
	p, mock := newMock(t)
	repo := NewPontoColetaRepo(p)
	capacidade := entity.FlexInt(500)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT id_tipo FROM tipo_residuo WHERE id_tipo = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id_tipo"}).AddRow(int64(2)))
	mock.ExpectQuery(q("INSERT INTO ponto_coleta (localizacao,capacidade) VALUES ($1,$2) RETURNING id_ponto")).
		WithArgs("Praça Central", int64(500)).
		WillReturnRows(sqlmock.NewRows([]string{"id_ponto"}).AddRow(int64(11)))
	mock.ExpectExec(q("INSERT INTO ponto_coleta_tipo (id_ponto,id_tipo) VALUES ($1,$2)")).
		WithArgs(int64(11), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.CreatePontoColetaComTipo(context.Background(), &entity.CreatePontoColetaInput{
		Localizacao: "Praça Central",
		Capacidade:  &capacidade,
		Tipo:        2,
	})
	if err != nil {
		t.Fatalf("CreatePontoColetaComTipo: %v", err)
	}
	if id != 11 {
		t.Errorf("id = %d, expected 11", id)
	}
}

func TestPontoColetaRepo_CreatePontoColetaComTipo_UnknownTipo(t *testing.T) {
	p, mock := newMock(t)
	repo := NewPontoColetaRepo(p)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT id_tipo FROM tipo_residuo WHERE id_tipo = $1")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.CreatePontoColetaComTipo(context.Background(), &entity.CreatePontoColetaInput{
		Localizacao: "Praça Central",
		Tipo:        99,
	})
	if !errors.Is(err, repo_errors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResiduoRepo_RegisterResiduo(t *testing.T) {
	p, mock := newMock(t)
	repo := NewResiduoRepo(p)
	cnpj := "12345678000199"

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT id_coleta FROM coleta WHERE id_coleta = $1 FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id_coleta"}).AddRow(int64(7)))
	mock.ExpectQuery(q("INSERT INTO residuo (id_tipo,peso,id_coop,cnpj_empresa) VALUES ($1,$2,$3,$4) RETURNING id_residuo")).
		WithArgs(int64(1), 12.5, nil, cnpj).
		WillReturnRows(sqlmock.NewRows([]string{"id_residuo"}).AddRow(int64(30)))
	mock.ExpectExec(q("INSERT INTO coleta_residuo (id_coleta,id_residuo,peso_coletado) VALUES ($1,$2,$3)")).
		WithArgs(int64(7), int64(30), 12.5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q("UPDATE coleta SET status = $1 WHERE id_coleta = $2")).
		WithArgs("concluida", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.RegisterResiduo(context.Background(), &entity.RegisterResiduoInput{
		IdTipo:      1,
		Peso:        12.5,
		CnpjEmpresa: &cnpj,
		IdColeta:    7,
	})
	if err != nil {
		t.Fatalf("RegisterResiduo: %v", err)
	}
	if id != 30 {
		t.Errorf("id = %d, expected 30", id)
	}
}

func TestResiduoRepo_RegisterResiduo_UnknownColeta(t *testing.T) {
	p, mock := newMock(t)
	repo := NewResiduoRepo(p)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT id_coleta FROM coleta WHERE id_coleta = $1 FOR UPDATE")).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.RegisterResiduo(context.Background(), &entity.RegisterResiduoInput{
		IdTipo:   1,
		Peso:     3,
		IdColeta: 404,
	})
	if !errors.Is(err, repo_errors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResiduoRepo_RegisterResiduo_RollsBackOnInsertFailure(t *testing.T) {
	p, mock := newMock(t)
	repo := NewResiduoRepo(p)

	mock.ExpectBegin()
	mock.ExpectQuery(q("FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id_coleta"}).AddRow(int64(7)))
	mock.ExpectQuery(q("INSERT INTO residuo")).
		WillReturnError(&pq.Error{Code: "23503", Detail: "Key (id_tipo)=(42) is not present."})
	mock.ExpectRollback()

	_, err := repo.RegisterResiduo(context.Background(), &entity.RegisterResiduoInput{
		IdTipo:   42,
		Peso:     3,
		IdColeta: 7,
	})
	if !errors.Is(err, repo_errors.ErrInvalidReference) {
		t.Errorf("expected ErrInvalidReference, got %v", err)
	}
}

func TestColetaRepo_GetColetasResiduosByCpf(t *testing.T) {
	p, mock := newMock(t)
	repo := NewColetaRepo(p)
	when := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(q("FROM view_coletas_pessoa WHERE cpf = $1 ORDER BY data DESC")).
		WithArgs("12345678900").
		WillReturnRows(sqlmock.NewRows([]string{"id_coleta", "data", "status", "cpf", "nome_pessoa",
			"localizacao", "tipos_residuos", "peso_total", "pontos_coleta", "status_formatado", "data_formatada"}).
			AddRow(int64(3), when, "concluida", "12345678900", "Maria", "Praça Central",
				"Papel, Vidro", 18.5, int64(1), "Concluída", "01/06/2024 09:30"))

	rows, err := repo.GetColetasResiduosByCpf(context.Background(), "12345678900")
	if err != nil {
		t.Fatalf("GetColetasResiduosByCpf: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, expected 1", len(rows))
	}
	if rows[0].TiposResiduos != "Papel, Vidro" || rows[0].PesoTotal != 18.5 {
		t.Errorf("unexpected row %+v", rows[0])
	}
}

func TestUserRepo_UpdateNivelAcesso_NotFound(t *testing.T) {
	p, mock := newMock(t)
	repo := NewUserRepo(p)

	mock.ExpectExec(q("UPDATE grupos_usuarios SET nivel_acesso = $1 WHERE cpf = $2")).
		WithArgs("adm", "11111111111").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateNivelAcesso(context.Background(), "11111111111", "adm")
	if !errors.Is(err, repo_errors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
