package repo

import (
	"context"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo/pgdb"
	"reciclame-api/pkg/postgres"
)

type Diagnostics interface {
	Ping(ctx context.Context) error
}

type Pessoa interface {
	GetPessoas(ctx context.Context) ([]entity.Pessoa, error)
	GetPessoaByCpf(ctx context.Context, cpf string) (*entity.Pessoa, error)
	CreatePessoa(ctx context.Context, input *entity.CreatePessoaInput) error
	UpdatePessoa(ctx context.Context, cpf string, changes map[string]any) error
	DeletePessoa(ctx context.Context, cpf string) error
}

type Empresa interface {
	GetEmpresas(ctx context.Context) ([]entity.Empresa, error)
	GetEmpresaByCnpj(ctx context.Context, cnpj string) (*entity.Empresa, error)
	CreateEmpresa(ctx context.Context, input *entity.CreateEmpresaInput) error
	UpdateEmpresa(ctx context.Context, cnpj string, changes map[string]any) error
	DeleteEmpresa(ctx context.Context, cnpj string) error
}

type Cooperativa interface {
	GetCooperativas(ctx context.Context) ([]entity.Cooperativa, error)
	GetCooperativaById(ctx context.Context, id int64) (*entity.Cooperativa, error)
	CreateCooperativa(ctx context.Context, input *entity.CreateCooperativaInput) (int64, error)
	UpdateCooperativa(ctx context.Context, id int64, changes map[string]any) error
	DeleteCooperativa(ctx context.Context, id int64) error
}

type TipoResiduo interface {
	GetTiposResiduos(ctx context.Context) ([]entity.TipoResiduo, error)
	GetTipoResiduoById(ctx context.Context, id int64) (*entity.TipoResiduo, error)
	CreateTipoResiduo(ctx context.Context, input *entity.CreateTipoResiduoInput) (int64, error)
	UpdateTipoResiduo(ctx context.Context, id int64, changes map[string]any) error
	DeleteTipoResiduo(ctx context.Context, id int64) error
}

type PontoColeta interface {
	GetPontosColeta(ctx context.Context) ([]entity.PontoColeta, error)
	GetPontoColetaById(ctx context.Context, id int64) (*entity.PontoColeta, error)
	// CreatePontoColetaComTipo returns repo_errors.ErrNotFound when the waste type does not exist.
	CreatePontoColetaComTipo(ctx context.Context, input *entity.CreatePontoColetaInput) (int64, error)
	UpdatePontoColeta(ctx context.Context, id int64, changes map[string]any) error
	DeletePontoColeta(ctx context.Context, id int64) error
}

type Residuo interface {
	GetResiduos(ctx context.Context) ([]entity.Residuo, error)
	GetResiduoById(ctx context.Context, id int64) (*entity.Residuo, error)
	// RegisterResiduo returns repo_errors.ErrNotFound when the collection does not exist.
	RegisterResiduo(ctx context.Context, input *entity.RegisterResiduoInput) (int64, error)
	UpdateResiduo(ctx context.Context, id int64, changes map[string]any) error
	DeleteResiduo(ctx context.Context, id int64) error
}

type Coleta interface {
	GetColetas(ctx context.Context) ([]entity.Coleta, error)
	GetColetaById(ctx context.Context, id int64) (*entity.Coleta, error)
	CreateColeta(ctx context.Context, coleta *entity.Coleta) (int64, error)
	UpdateColeta(ctx context.Context, id int64, changes map[string]any) error
	DeleteColeta(ctx context.Context, id int64) error
	GetColetasResiduosByCpf(ctx context.Context, cpf string) ([]entity.ColetaResiduos, error)
}

type User interface {
	GetUserByCpf(ctx context.Context, cpf string) (*entity.User, error)
	CreateUser(ctx context.Context, cpf string, senhaHash string, nivelAcesso string) (int64, error)
	UpdateNivelAcesso(ctx context.Context, cpf string, nivelAcesso string) error
}

type Repositories struct {
	Diagnostics
	Pessoa
	Empresa
	Cooperativa
	TipoResiduo
	PontoColeta
	Residuo
	Coleta
	User
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		Pessoa:      pgdb.NewPessoaRepo(p),
		Empresa:     pgdb.NewEmpresaRepo(p),
		Cooperativa: pgdb.NewCooperativaRepo(p),
		TipoResiduo: pgdb.NewTipoResiduoRepo(p),
		PontoColeta: pgdb.NewPontoColetaRepo(p),
		Residuo:     pgdb.NewResiduoRepo(p),
		Coleta:      pgdb.NewColetaRepo(p),
		User:        pgdb.NewUserRepo(p),
	}
}
