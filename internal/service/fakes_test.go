package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"reciclame-api/internal/cache"
	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo/repo_errors"
)

func newTestCache() (*cache.Cache, *cache.LRUStore) {
	store := cache.NewLRUStore(128, time.Minute)
	return cache.New(store, 300*time.Second, nil), store
}

type fakePessoaRepo struct {
	mu          sync.Mutex
	rows        map[string]entity.Pessoa
	getCalls    int
	updateCalls int
}

func newFakePessoaRepo() *fakePessoaRepo {
	return &fakePessoaRepo{rows: make(map[string]entity.Pessoa)}
}

func (r *fakePessoaRepo) GetPessoas(context.Context) ([]entity.Pessoa, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Pessoa, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePessoaRepo) GetPessoaByCpf(_ context.Context, cpf string) (*entity.Pessoa, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	p, ok := r.rows[cpf]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	return &p, nil
}

func (r *fakePessoaRepo) CreatePessoa(_ context.Context, in *entity.CreatePessoaInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[in.Cpf]; ok {
		return repo_errors.ErrAlreadyExists
	}
	r.rows[in.Cpf] = entity.Pessoa{
		Cpf:            in.Cpf,
		Nome:           in.Nome,
		EnderecoCidade: in.EnderecoCidade,
		EnderecoUf:     in.EnderecoUf,
		DataNascimento: in.DataNascimento,
		Email:          in.Email,
	}
	return nil
}

func (r *fakePessoaRepo) UpdatePessoa(_ context.Context, cpf string, changes map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	p, ok := r.rows[cpf]
	if !ok {
		return repo_errors.ErrNotFound
	}
	for k, v := range changes {
		switch k {
		case "nome":
			p.Nome = v.(string)
		case "email":
			if v == nil {
				p.Email = nil
			} else {
				s := v.(string)
				p.Email = &s
			}
		default:
			return errors.New("fake: unsupported column " + k)
		}
	}
	r.rows[cpf] = p
	return nil
}

func (r *fakePessoaRepo) DeletePessoa(_ context.Context, cpf string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[cpf]; !ok {
		return repo_errors.ErrNotFound
	}
	delete(r.rows, cpf)
	return nil
}

type fakeEmpresaRepo struct {
	rows     map[string]entity.Empresa
	getCalls int
}

func (r *fakeEmpresaRepo) GetEmpresas(context.Context) ([]entity.Empresa, error) {
	out := make([]entity.Empresa, 0, len(r.rows))
	for _, e := range r.rows {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmpresaRepo) GetEmpresaByCnpj(_ context.Context, cnpj string) (*entity.Empresa, error) {
	r.getCalls++
	e, ok := r.rows[cnpj]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	return &e, nil
}

func (r *fakeEmpresaRepo) CreateEmpresa(_ context.Context, in *entity.CreateEmpresaInput) error {
	if _, ok := r.rows[in.Cnpj]; ok {
		return repo_errors.ErrAlreadyExists
	}
	r.rows[in.Cnpj] = entity.Empresa{Cnpj: in.Cnpj, RazaoSocial: in.RazaoSocial, AreaAtuacao: in.AreaAtuacao}
	return nil
}

func (r *fakeEmpresaRepo) UpdateEmpresa(_ context.Context, cnpj string, changes map[string]any) error {
	e, ok := r.rows[cnpj]
	if !ok {
		return repo_errors.ErrNotFound
	}
	if v, ok := changes["razao_social"]; ok {
		e.RazaoSocial = v.(string)
	}
	r.rows[cnpj] = e
	return nil
}

func (r *fakeEmpresaRepo) DeleteEmpresa(_ context.Context, cnpj string) error {
	if _, ok := r.rows[cnpj]; !ok {
		return repo_errors.ErrNotFound
	}
	delete(r.rows, cnpj)
	return nil
}

type fakeColetaRepo struct {
	rows    map[int64]entity.Coleta
	nextId  int64
	created []entity.Coleta
}

func newFakeColetaRepo() *fakeColetaRepo {
	return &fakeColetaRepo{rows: make(map[int64]entity.Coleta)}
}

func (r *fakeColetaRepo) GetColetas(context.Context) ([]entity.Coleta, error) {
	out := make([]entity.Coleta, 0, len(r.rows))
	for _, c := range r.rows {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeColetaRepo) GetColetaById(_ context.Context, id int64) (*entity.Coleta, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	return &c, nil
}

func (r *fakeColetaRepo) CreateColeta(_ context.Context, c *entity.Coleta) (int64, error) {
	r.nextId++
	c.IdColeta = r.nextId
	r.rows[c.IdColeta] = *c
	r.created = append(r.created, *c)
	return c.IdColeta, nil
}

func (r *fakeColetaRepo) UpdateColeta(_ context.Context, id int64, changes map[string]any) error {
	c, ok := r.rows[id]
	if !ok {
		return repo_errors.ErrNotFound
	}
	if v, ok := changes["status"]; ok {
		c.Status = v.(string)
	}
	r.rows[id] = c
	return nil
}

func (r *fakeColetaRepo) DeleteColeta(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return repo_errors.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeColetaRepo) GetColetasResiduosByCpf(context.Context, string) ([]entity.ColetaResiduos, error) {
	return nil, nil
}

// fakeResiduoRepo completes collections stored in coletas.
type fakeResiduoRepo struct {
	coletas *fakeColetaRepo
	nextId  int64
}

func (r *fakeResiduoRepo) GetResiduos(context.Context) ([]entity.Residuo, error) {
	return nil, nil
}

func (r *fakeResiduoRepo) GetResiduoById(context.Context, int64) (*entity.Residuo, error) {
	return nil, repo_errors.ErrNotFound
}

func (r *fakeResiduoRepo) RegisterResiduo(_ context.Context, in *entity.RegisterResiduoInput) (int64, error) {
	c, ok := r.coletas.rows[int64(in.IdColeta)]
	if !ok {
		return 0, repo_errors.ErrNotFound
	}
	c.Status = entity.ColetaConcluida
	r.coletas.rows[c.IdColeta] = c
	r.nextId++
	return r.nextId, nil
}

func (r *fakeResiduoRepo) UpdateResiduo(context.Context, int64, map[string]any) error {
	return repo_errors.ErrNotFound
}

func (r *fakeResiduoRepo) DeleteResiduo(context.Context, int64) error {
	return repo_errors.ErrNotFound
}

type fakeUserRepo struct {
	pessoas map[string]string
	users   map[string]entity.User
	nextId  int64
}

func newFakeUserRepo(pessoas map[string]string) *fakeUserRepo {
	return &fakeUserRepo{pessoas: pessoas, users: make(map[string]entity.User)}
}

func (r *fakeUserRepo) GetUserByCpf(_ context.Context, cpf string) (*entity.User, error) {
	u, ok := r.users[cpf]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) CreateUser(_ context.Context, cpf string, hash string, nivel string) (int64, error) {
	nome, ok := r.pessoas[cpf]
	if !ok {
		return 0, repo_errors.ErrInvalidReference
	}
	if _, ok := r.users[cpf]; ok {
		return 0, repo_errors.ErrAlreadyExists
	}
	r.nextId++
	r.users[cpf] = entity.User{Id: r.nextId, Cpf: cpf, Nome: nome, NivelAcesso: nivel, SenhaHash: hash}
	return r.nextId, nil
}

func (r *fakeUserRepo) UpdateNivelAcesso(_ context.Context, cpf string, nivel string) error {
	u, ok := r.users[cpf]
	if !ok {
		return repo_errors.ErrNotFound
	}
	u.NivelAcesso = nivel
	r.users[cpf] = u
	return nil
}

type fakeDiagnosticsRepo struct {
	err error
}

func (r fakeDiagnosticsRepo) Ping(context.Context) error {
	return r.err
}
