package service

import (
	"context"

	"reciclame-api/internal/cache"
	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo"
)

type Diagnostics interface {
	Ping(ctx context.Context) error
}

type Pessoa interface {
	GetPessoas(ctx context.Context) ([]entity.Pessoa, error)
	GetPessoaByCpf(ctx context.Context, cpf string) (*entity.Pessoa, error)
	CreatePessoa(ctx context.Context, input *entity.CreatePessoaInput) error
	UpdatePessoa(ctx context.Context, cpf string, body map[string]any) error
	DeletePessoa(ctx context.Context, cpf string) error
}

type Empresa interface {
	GetEmpresas(ctx context.Context) ([]entity.Empresa, error)
	GetEmpresaByCnpj(ctx context.Context, cnpj string) (*entity.Empresa, error)
	CreateEmpresa(ctx context.Context, input *entity.CreateEmpresaInput) error
	UpdateEmpresa(ctx context.Context, cnpj string, body map[string]any) error
	DeleteEmpresa(ctx context.Context, cnpj string) error
}

type Cooperativa interface {
	GetCooperativas(ctx context.Context) ([]entity.Cooperativa, error)
	GetCooperativaById(ctx context.Context, id int64) (*entity.Cooperativa, error)
	CreateCooperativa(ctx context.Context, input *entity.CreateCooperativaInput) (int64, error)
	UpdateCooperativa(ctx context.Context, id int64, body map[string]any) error
	DeleteCooperativa(ctx context.Context, id int64) error
}

type TipoResiduo interface {
	GetTiposResiduos(ctx context.Context) ([]entity.TipoResiduo, error)
	GetTipoResiduoById(ctx context.Context, id int64) (*entity.TipoResiduo, error)
	CreateTipoResiduo(ctx context.Context, input *entity.CreateTipoResiduoInput) (int64, error)
	UpdateTipoResiduo(ctx context.Context, id int64, body map[string]any) error
	DeleteTipoResiduo(ctx context.Context, id int64) error
}

type PontoColeta interface {
	GetPontosColeta(ctx context.Context) ([]entity.PontoColeta, error)
	GetPontoColetaById(ctx context.Context, id int64) (*entity.PontoColeta, error)
	CreatePontoColeta(ctx context.Context, input *entity.CreatePontoColetaInput) (int64, error)
	UpdatePontoColeta(ctx context.Context, id int64, body map[string]any) error
	DeletePontoColeta(ctx context.Context, id int64) error
}

type Residuo interface {
	GetResiduos(ctx context.Context) ([]entity.Residuo, error)
	GetResiduoById(ctx context.Context, id int64) (*entity.Residuo, error)
	RegisterResiduo(ctx context.Context, input *entity.RegisterResiduoInput) (int64, error)
	UpdateResiduo(ctx context.Context, id int64, body map[string]any) error
	DeleteResiduo(ctx context.Context, id int64) error
}

type Coleta interface {
	GetColetas(ctx context.Context) ([]entity.Coleta, error)
	GetColetaById(ctx context.Context, id int64) (*entity.Coleta, error)
	CreateColeta(ctx context.Context, input *entity.CreateColetaInput) (int64, error)
	UpdateColeta(ctx context.Context, id int64, body map[string]any) error
	DeleteColeta(ctx context.Context, id int64) error
	GetColetasResiduosByCpf(ctx context.Context, cpf string) ([]entity.ColetaResiduos, error)
}

type Auth interface {
	Login(ctx context.Context, input *entity.LoginInput) (*entity.UserOutputModel, error)
	Register(ctx context.Context, input *entity.RegisterUserInput) (*entity.UserOutputModel, error)
	UpdateNivelAcesso(ctx context.Context, cpf string, nivel string) error
}

type Services struct {
	Diagnostics Diagnostics
	Pessoa      Pessoa
	Empresa     Empresa
	Cooperativa Cooperativa
	TipoResiduo TipoResiduo
	PontoColeta PontoColeta
	Residuo     Residuo
	Coleta      Coleta
	Auth        Auth
}

func NewServices(repos *repo.Repositories, c *cache.Cache) *Services {
	return &Services{
		Diagnostics: NewDiagnosticsService(repos, c),
		Pessoa:      NewPessoaService(repos, c),
		Empresa:     NewEmpresaService(repos, c),
		Cooperativa: NewCooperativaService(repos, c),
		TipoResiduo: NewTipoResiduoService(repos, c),
		PontoColeta: NewPontoColetaService(repos, c),
		Residuo:     NewResiduoService(repos, c),
		Coleta:      NewColetaService(repos, c),
		Auth:        NewAuthService(repos),
	}
}
