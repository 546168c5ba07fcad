package service

import (
	"context"

	"reciclame-api/internal/cache"
	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo"
)

type EmpresaService struct {
	empresaRepo repo.Empresa
	cache       *cache.Cache
}

func NewEmpresaService(repos *repo.Repositories, c *cache.Cache) *EmpresaService {
	return &EmpresaService{
		empresaRepo: repos.Empresa,
		cache:       c,
	}
}

func (s *EmpresaService) GetEmpresas(ctx context.Context) ([]entity.Empresa, error) {
	return s.empresaRepo.GetEmpresas(ctx)
}

func (s *EmpresaService) GetEmpresaByCnpj(ctx context.Context, cnpj string) (*entity.Empresa, error) {
	return cachedGet(ctx, s.cache, cache.Key(empresaPrefix, cnpj), func(ctx context.Context) (*entity.Empresa, error) {
		return s.empresaRepo.GetEmpresaByCnpj(ctx, cnpj)
	}, ErrEmpresaNotFound)
}

func (s *EmpresaService) CreateEmpresa(ctx context.Context, input *entity.CreateEmpresaInput) error {
	if err := s.empresaRepo.CreateEmpresa(ctx, input); err != nil {
		return mapRepoError(err, ErrEmpresaNotFound)
	}

	return nil
}

func (s *EmpresaService) UpdateEmpresa(ctx context.Context, cnpj string, body map[string]any) error {
	return patchAndInvalidate(ctx, s.cache, cache.Key(empresaPrefix, cnpj), entity.EmpresaSchema, body,
		func(ctx context.Context, changes map[string]any) error {
			return s.empresaRepo.UpdateEmpresa(ctx, cnpj, changes)
		}, ErrEmpresaNotFound)
}

func (s *EmpresaService) DeleteEmpresa(ctx context.Context, cnpj string) error {
	return deleteAndInvalidate(ctx, s.cache, cache.Key(empresaPrefix, cnpj), func(ctx context.Context) error {
		return s.empresaRepo.DeleteEmpresa(ctx, cnpj)
	}, ErrEmpresaNotFound)
}
