package service

import (
	"context"

	"reciclame-api/internal/cache"
	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo"
)

type PessoaService struct {
	pessoaRepo repo.Pessoa
	cache      *cache.Cache
}

func NewPessoaService(repos *repo.Repositories, c *cache.Cache) *PessoaService {
	return &PessoaService{
		pessoaRepo: repos.Pessoa,
		cache:      c,
	}
}

func (s *PessoaService) GetPessoas(ctx context.Context) ([]entity.Pessoa, error) {
	return s.pessoaRepo.GetPessoas(ctx)
}

func (s *PessoaService) GetPessoaByCpf(ctx context.Context, cpf string) (*entity.Pessoa, error) {
	return cachedGet(ctx, s.cache, cache.Key(pessoaPrefix, cpf), func(ctx context.Context) (*entity.Pessoa, error) {
		return s.pessoaRepo.GetPessoaByCpf(ctx, cpf)
	}, ErrPessoaNotFound)
}

func (s *PessoaService) CreatePessoa(ctx context.Context, input *entity.CreatePessoaInput) error {
	if err := s.pessoaRepo.CreatePessoa(ctx, input); err != nil {
		return mapRepoError(err, ErrPessoaNotFound)
	}

	return nil
}

func (s *PessoaService) UpdatePessoa(ctx context.Context, cpf string, body map[string]any) error {
	return patchAndInvalidate(ctx, s.cache, cache.Key(pessoaPrefix, cpf), entity.PessoaSchema, body,
		func(ctx context.Context, changes map[string]any) error {
			return s.pessoaRepo.UpdatePessoa(ctx, cpf, changes)
		}, ErrPessoaNotFound)
}

func (s *PessoaService) DeletePessoa(ctx context.Context, cpf string) error {
	return deleteAndInvalidate(ctx, s.cache, cache.Key(pessoaPrefix, cpf), func(ctx context.Context) error {
		return s.pessoaRepo.DeletePessoa(ctx, cpf)
	}, ErrPessoaNotFound)
}
