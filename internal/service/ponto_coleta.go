package service

import (
	"context"

	"reciclame-api/internal/cache"
	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo"
)

type PontoColetaService struct {
	pontoColetaRepo repo.PontoColeta
	cache           *cache.Cache
}

func NewPontoColetaService(repos *repo.Repositories, c *cache.Cache) *PontoColetaService {
	return &PontoColetaService{
		pontoColetaRepo: repos.PontoColeta,
		cache:           c,
	}
}

func (s *PontoColetaService) GetPontosColeta(ctx context.Context) ([]entity.PontoColeta, error) {
	return s.pontoColetaRepo.GetPontosColeta(ctx)
}

func (s *PontoColetaService) GetPontoColetaById(ctx context.Context, id int64) (*entity.PontoColeta, error) {
	return cachedGet(ctx, s.cache, cache.Key(pontoColetaPrefix, id), func(ctx context.Context) (*entity.PontoColeta, error) {
		return s.pontoColetaRepo.GetPontoColetaById(ctx, id)
	}, ErrPontoColetaNotFound)
}

// CreatePontoColeta creates the point and registers the accepted waste type atomically.
func (s *PontoColetaService) CreatePontoColeta(ctx context.Context, input *entity.CreatePontoColetaInput) (int64, error) {
	id, err := s.pontoColetaRepo.CreatePontoColetaComTipo(ctx, input)
	if err != nil {
		return 0, mapRepoError(err, ErrTipoResiduoNotFound)
	}

	return id, nil
}

func (s *PontoColetaService) UpdatePontoColeta(ctx context.Context, id int64, body map[string]any) error {
	return patchAndInvalidate(ctx, s.cache, cache.Key(pontoColetaPrefix, id), entity.PontoColetaSchema, body,
		func(ctx context.Context, changes map[string]any) error {
			return s.pontoColetaRepo.UpdatePontoColeta(ctx, id, changes)
		}, ErrPontoColetaNotFound)
}

func (s *PontoColetaService) DeletePontoColeta(ctx context.Context, id int64) error {
	return deleteAndInvalidate(ctx, s.cache, cache.Key(pontoColetaPrefix, id), func(ctx context.Context) error {
		return s.pontoColetaRepo.DeletePontoColeta(ctx, id)
	}, ErrPontoColetaNotFound)
}
