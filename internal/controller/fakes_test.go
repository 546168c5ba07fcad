package controller

import (
	"context"
	"errors"
	"sync"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/service"
)

type fakeDiagnostics struct {
	err error
}

func (f *fakeDiagnostics) Ping(context.Context) error {
	return f.err
}

type fakePessoaService struct {
	mu   sync.Mutex
	rows map[string]entity.Pessoa
}

func newFakePessoaService(seed ...entity.Pessoa) *fakePessoaService {
	f := &fakePessoaService{rows: make(map[string]entity.Pessoa)}
	for _, p := range seed {
		f.rows[p.Cpf] = p
	}
	return f
}

func (f *fakePessoaService) GetPessoas(context.Context) ([]entity.Pessoa, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Pessoa, 0, len(f.rows))
	for _, p := range f.rows {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePessoaService) GetPessoaByCpf(_ context.Context, cpf string) (*entity.Pessoa, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[cpf]
	if !ok {
		return nil, service.ErrPessoaNotFound
	}
	return &p, nil
}

func (f *fakePessoaService) CreatePessoa(_ context.Context, in *entity.CreatePessoaInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[in.Cpf]; ok {
		return service.ErrAlreadyExists
	}
	f.rows[in.Cpf] = entity.Pessoa{Cpf: in.Cpf, Nome: in.Nome, Email: in.Email}
	return nil
}

func (f *fakePessoaService) UpdatePessoa(_ context.Context, cpf string, body map[string]any) error {
	changes, err := entity.PessoaSchema.Changes(body)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[cpf]
	if !ok {
		return service.ErrPessoaNotFound
	}
	if nome, ok := changes["nome"].(string); ok {
		p.Nome = nome
	}
	f.rows[cpf] = p
	return nil
}

func (f *fakePessoaService) DeletePessoa(_ context.Context, cpf string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[cpf]; !ok {
		return service.ErrPessoaNotFound
	}
	delete(f.rows, cpf)
	return nil
}

type fakeEmpresaService struct {
	mu   sync.Mutex
	rows map[string]entity.Empresa
}

func newFakeEmpresaService() *fakeEmpresaService {
	return &fakeEmpresaService{rows: make(map[string]entity.Empresa)}
}

func (f *fakeEmpresaService) GetEmpresas(context.Context) ([]entity.Empresa, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Empresa, 0, len(f.rows))
	for _, e := range f.rows {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmpresaService) GetEmpresaByCnpj(_ context.Context, cnpj string) (*entity.Empresa, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.rows[cnpj]
	if !ok {
		return nil, service.ErrEmpresaNotFound
	}
	return &e, nil
}

func (f *fakeEmpresaService) CreateEmpresa(_ context.Context, in *entity.CreateEmpresaInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[in.Cnpj]; ok {
		return service.ErrAlreadyExists
	}
	f.rows[in.Cnpj] = entity.Empresa{Cnpj: in.Cnpj, RazaoSocial: in.RazaoSocial, AreaAtuacao: in.AreaAtuacao}
	return nil
}

func (f *fakeEmpresaService) UpdateEmpresa(_ context.Context, cnpj string, body map[string]any) error {
	if _, err := entity.EmpresaSchema.Changes(body); err != nil {
		return err
	}
	if _, err := f.GetEmpresaByCnpj(context.Background(), cnpj); err != nil {
		return err
	}
	return nil
}

func (f *fakeEmpresaService) DeleteEmpresa(_ context.Context, cnpj string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[cnpj]; !ok {
		return service.ErrEmpresaNotFound
	}
	delete(f.rows, cnpj)
	return nil
}

// brokenColetaService fails every call with err.
type brokenColetaService struct {
	err error
}

func (f *brokenColetaService) GetColetas(context.Context) ([]entity.Coleta, error) {
	return nil, f.err
}

func (f *brokenColetaService) GetColetaById(context.Context, int64) (*entity.Coleta, error) {
	return nil, f.err
}

func (f *brokenColetaService) CreateColeta(context.Context, *entity.CreateColetaInput) (int64, error) {
	return 0, f.err
}

func (f *brokenColetaService) UpdateColeta(context.Context, int64, map[string]any) error {
	return f.err
}

func (f *brokenColetaService) DeleteColeta(context.Context, int64) error {
	return f.err
}

func (f *brokenColetaService) GetColetasResiduosByCpf(context.Context, string) ([]entity.ColetaResiduos, error) {
	return nil, f.err
}

type fakeAccount struct {
	password string
	user     entity.UserOutputModel
}

type fakeAuthService struct {
	accounts map[string]fakeAccount
}

func (f *fakeAuthService) Login(_ context.Context, in *entity.LoginInput) (*entity.UserOutputModel, error) {
	acc, ok := f.accounts[service.NormalizeCpf(in.Cpf)]
	if !ok || acc.password != in.Password {
		return nil, service.ErrInvalidCredentials
	}
	return &acc.user, nil
}

func (f *fakeAuthService) Register(_ context.Context, in *entity.RegisterUserInput) (*entity.UserOutputModel, error) {
	cpf := service.NormalizeCpf(in.Cpf)
	if _, ok := f.accounts[cpf]; ok {
		return nil, service.ErrAlreadyExists
	}
	user := entity.UserOutputModel{Id: int64(len(f.accounts) + 1), Cpf: cpf, NivelAcesso: entity.NivelUsuario, IsUser: true}
	f.accounts[cpf] = fakeAccount{password: in.Password, user: user}
	return &user, nil
}

func (f *fakeAuthService) UpdateNivelAcesso(_ context.Context, cpf string, nivel string) error {
	switch nivel {
	case entity.NivelAdm, entity.NivelUsuario, entity.NivelExterno:
	default:
		return service.ErrInvalidNivelAcesso
	}
	if _, ok := f.accounts[service.NormalizeCpf(cpf)]; !ok {
		return service.ErrUserNotFound
	}
	return nil
}

var errConnRefused = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
